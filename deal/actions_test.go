package deal

import "testing"

func TestToBankMoney(t *testing.T) {
	g := rigGame(t, "a", "b")
	a := g.Player("a")
	c := giveHand(t, g, a, moneyOf(5))

	mustPlay(t)(g.ToBank("a", c.ID))
	if len(a.Bank) != 1 || a.Bank[0] != c {
		t.Fatalf("expected card in bank")
	}
	if len(a.Hand) != 0 {
		t.Fatalf("expected card removed from hand")
	}
	if g.ActionsRemaining() != 2 {
		t.Errorf("actions remaining %d, want 2", g.ActionsRemaining())
	}
}

func TestToBankRejectsProperty(t *testing.T) {
	g := rigGame(t, "a", "b")
	c := giveHand(t, g, g.Player("a"), solidOf(Red))
	_, err := g.ToBank("a", c.ID)
	wantRuleError(t, err)
}

func TestToBankActionCardUsesFaceValue(t *testing.T) {
	g := rigGame(t, "a", "b")
	a := g.Player("a")
	c := giveHand(t, g, a, byName(NameDealBreaker))
	mustPlay(t)(g.ToBank("a", c.ID))
	if a.Bank[0].Value != 5 {
		t.Errorf("banked value %d, want 5", a.Bank[0].Value)
	}
}

func TestToPropertiesSolid(t *testing.T) {
	g := rigGame(t, "a", "b")
	a := g.Player("a")
	c := giveHand(t, g, a, solidOf(Red))

	mustPlay(t)(g.ToProperties("a", c.ID, ""))
	if len(a.Properties[Red]) != 1 {
		t.Fatalf("expected card in red group")
	}
	if g.ActionsRemaining() != 2 {
		t.Errorf("actions remaining %d, want 2", g.ActionsRemaining())
	}
}

func TestToPropertiesWildPicksColor(t *testing.T) {
	g := rigGame(t, "a", "b")
	a := g.Player("a")
	c := giveHand(t, g, a, wildOf(Red, Yellow))

	mustPlay(t)(g.ToProperties("a", c.ID, Yellow))
	if c.CurrentColor != Yellow {
		t.Errorf("current color %q, want yellow", c.CurrentColor)
	}
	if len(a.Properties[Yellow]) != 1 {
		t.Fatalf("expected card in yellow group")
	}
}

func TestToPropertiesWildRejectsForeignColor(t *testing.T) {
	g := rigGame(t, "a", "b")
	c := giveHand(t, g, g.Player("a"), wildOf(Red, Yellow))
	_, err := g.ToProperties("a", c.ID, Blue)
	wantRuleError(t, err)
}

func TestHouseNeedsCompleteSet(t *testing.T) {
	g := rigGame(t, "a", "b")
	a := g.Player("a")
	giveTable(t, g, a, Red, solidOf(Red))
	house := giveHand(t, g, a, byName(NameHouse))
	_, err := g.ToProperties("a", house.ID, Red)
	wantRuleError(t, err)
}

func TestHouseOnCompleteSet(t *testing.T) {
	g := rigGame(t, "a", "b")
	a := g.Player("a")
	giveCompleteSet(t, g, a, Red)
	house := giveHand(t, g, a, byName(NameHouse))

	mustPlay(t)(g.ToProperties("a", house.ID, Red))
	if a.buildingCount(Red, NameHouse) != 1 {
		t.Fatalf("expected house on red set")
	}
	if a.rentFor(Red) != 6+3 {
		t.Errorf("rent %d, want 9", a.rentFor(Red))
	}
}

func TestSecondHouseRejected(t *testing.T) {
	g := rigGame(t, "a", "b")
	a := g.Player("a")
	giveCompleteSet(t, g, a, Red)
	giveTable(t, g, a, Red, byName(NameHouse))
	second := giveHand(t, g, a, byName(NameHouse))
	_, err := g.ToProperties("a", second.ID, Red)
	wantRuleError(t, err)
}

func TestHotelNeedsHouse(t *testing.T) {
	g := rigGame(t, "a", "b")
	a := g.Player("a")
	giveCompleteSet(t, g, a, Red)
	hotel := giveHand(t, g, a, byName(NameHotel))
	_, err := g.ToProperties("a", hotel.ID, Red)
	wantRuleError(t, err)
}

func TestHotelAfterHouse(t *testing.T) {
	g := rigGame(t, "a", "b")
	a := g.Player("a")
	giveCompleteSet(t, g, a, Red)
	giveTable(t, g, a, Red, byName(NameHouse))
	hotel := giveHand(t, g, a, byName(NameHotel))

	mustPlay(t)(g.ToProperties("a", hotel.ID, Red))
	if a.rentFor(Red) != 6+3+4 {
		t.Errorf("rent %d, want 13", a.rentFor(Red))
	}
}

func TestBuildingsRejectedOnRailroadsAndUtilities(t *testing.T) {
	g := rigGame(t, "a", "b")
	a := g.Player("a")
	giveCompleteSet(t, g, a, Black)
	house := giveHand(t, g, a, byName(NameHouse))
	_, err := g.ToProperties("a", house.ID, Black)
	wantRuleError(t, err)
}

func TestPassGoDrawsTwo(t *testing.T) {
	g := rigGame(t, "a", "b")
	a := g.Player("a")
	c := giveHand(t, g, a, byName(NamePassGo))
	before := g.DeckCount()

	mustPlay(t)(cardsFirst(g.PassGo("a", c.ID)))
	if len(a.Hand) != 2 {
		t.Fatalf("hand size %d, want 2", len(a.Hand))
	}
	if g.DeckCount() != before-2 {
		t.Errorf("deck count %d, want %d", g.DeckCount(), before-2)
	}
	if !inDiscard(g, c) {
		t.Errorf("expected Pass Go in discard pile")
	}
}

func cardsFirst(cards []*Card, err error) (*Card, error) {
	if len(cards) > 0 {
		return cards[0], err
	}
	return nil, err
}

func TestReassignWildIsFree(t *testing.T) {
	g := rigGame(t, "a", "b")
	a := g.Player("a")
	c := giveTable(t, g, a, Red, wildOf(Red, Yellow))

	if err := g.ReassignWild("a", c.ID, Yellow); err != nil {
		t.Fatalf("ReassignWild: %v", err)
	}
	if c.CurrentColor != Yellow {
		t.Errorf("current color %q, want yellow", c.CurrentColor)
	}
	if len(a.Properties[Red]) != 0 {
		t.Errorf("expected red group emptied")
	}
	if g.ActionsRemaining() != 3 {
		t.Errorf("actions remaining %d, want 3 for a free move", g.ActionsRemaining())
	}
}

func TestReassignWildRejectsSolid(t *testing.T) {
	g := rigGame(t, "a", "b")
	c := giveTable(t, g, g.Player("a"), Red, solidOf(Red))
	wantRuleError(t, g.ReassignWild("a", c.ID, Red))
}

func TestReassignWildEvictsUnsupportedHouse(t *testing.T) {
	g := rigGame(t, "a", "b")
	a := g.Player("a")
	giveCompleteSet(t, g, a, Brown)
	wild := giveTable(t, g, a, Brown, wildOf(Brown, LightBlue))
	house := giveTable(t, g, a, Brown, byName(NameHouse))

	// Set stays complete without the wild, house stays.
	if err := g.ReassignWild("a", wild.ID, LightBlue); err != nil {
		t.Fatalf("ReassignWild: %v", err)
	}
	if a.buildingCount(Brown, NameHouse) != 1 {
		t.Fatalf("house should survive while the set is complete")
	}

	// Breaking the set evicts the house to the bank.
	solid := a.Properties[Brown][0]
	a.removeProperty(Brown, solid)
	a.upkeep(Brown)
	if a.buildingCount(Brown, NameHouse) != 0 {
		t.Fatalf("expected house evicted")
	}
	if a.bankCard(house.ID) == nil {
		t.Fatalf("expected house banked at face value")
	}
}
