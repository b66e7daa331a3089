package deal

import "testing"

func TestCatalogComposition(t *testing.T) {
	cards := catalog()
	if len(cards) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(cards))
	}

	kinds := map[CardKind]int{}
	for _, c := range cards {
		kinds[c.Kind]++
	}
	if kinds[KindProperty] != 39 {
		t.Errorf("expected 39 property cards, got %d", kinds[KindProperty])
	}
	if kinds[KindRent] != 13 {
		t.Errorf("expected 13 rent cards, got %d", kinds[KindRent])
	}
	if kinds[KindAction] != 36 {
		t.Errorf("expected 36 action cards, got %d", kinds[KindAction])
	}
	if kinds[KindMoney] != 20 {
		t.Errorf("expected 20 money cards, got %d", kinds[KindMoney])
	}
}

func TestCatalogIDsAreDense(t *testing.T) {
	cards := catalog()
	seen := map[int]bool{}
	for _, c := range cards {
		if c.ID < 1 || c.ID > DeckSize {
			t.Fatalf("card id %d out of range", c.ID)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate card id %d", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestCatalogSolidsMatchSetSizes(t *testing.T) {
	perColor := map[Color]int{}
	for _, c := range catalog() {
		if c.Kind == KindProperty && !c.Wild {
			perColor[c.Colors[0]]++
		}
	}
	// Every color has exactly enough solid cards for one full set;
	// wilds provide the extras.
	for _, color := range AllColors {
		if perColor[color] != FullSetSize(color) {
			t.Errorf("%s: %d solid cards for set size %d", color, perColor[color], FullSetSize(color))
		}
	}
}

func TestCatalogTenColorWildIsWorthless(t *testing.T) {
	found := 0
	for _, c := range catalog() {
		if c.Kind == KindProperty && c.Wild && len(c.Colors) == len(AllColors) {
			found++
			if c.Value != 0 {
				t.Errorf("ten-color wild has value %d, want 0", c.Value)
			}
		}
	}
	if found != 2 {
		t.Fatalf("expected 2 ten-color wilds, got %d", found)
	}
}

func TestRentLadders(t *testing.T) {
	cases := []struct {
		color  Color
		ladder []int
	}{
		{Brown, []int{1, 2}},
		{Blue, []int{3, 8}},
		{Red, []int{2, 3, 6}},
		{Black, []int{1, 2, 3, 4}},
	}
	for _, tc := range cases {
		got := RentLadder(tc.color)
		if len(got) != len(tc.ladder) {
			t.Fatalf("%s: ladder length %d, want %d", tc.color, len(got), len(tc.ladder))
		}
		for i := range got {
			if got[i] != tc.ladder[i] {
				t.Errorf("%s[%d] = %d, want %d", tc.color, i, got[i], tc.ladder[i])
			}
		}
	}
}
