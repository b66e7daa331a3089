package deal

import (
	"math/rand"
	"testing"
)

func TestDeckDrawExhaustsAndStops(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(1)))
	drawn := d.Draw(DeckSize + 10)
	if len(drawn) != DeckSize {
		t.Fatalf("drew %d cards, want %d", len(drawn), DeckSize)
	}
	if d.Count() != 0 {
		t.Fatalf("count %d, want 0", d.Count())
	}
	if extra := d.Draw(1); len(extra) != 0 {
		t.Fatalf("empty deck with empty discard should yield nothing")
	}
}

func TestDeckReshufflesDiscardMidDraw(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(1)))
	drawn := d.Draw(DeckSize)
	for _, c := range drawn[:10] {
		d.Discard(c)
	}

	again := d.Draw(4)
	if len(again) != 4 {
		t.Fatalf("drew %d cards from the recycled discard, want 4", len(again))
	}
	if len(d.DiscardPile()) != 0 {
		t.Fatalf("discard pile should be folded back into the draw pile")
	}
	if d.Count() != 6 {
		t.Fatalf("count %d, want 6", d.Count())
	}
}

func TestDeckShuffleIsSeedStable(t *testing.T) {
	a := NewDeck(rand.New(rand.NewSource(99))).Draw(10)
	b := NewDeck(rand.New(rand.NewSource(99))).Draw(10)
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same seed diverged at card %d", i)
		}
	}
}
