package deal

import "testing"

// rigGame seats players and jumps straight to the first player's turn
// without dealing, so tests hand out exactly the cards they need.
func rigGame(t *testing.T, ids ...string) *Game {
	t.Helper()
	g := NewGame(1)
	for _, id := range ids {
		if _, err := g.AddPlayer(id, "player "+id); err != nil {
			t.Fatalf("AddPlayer(%s): %v", id, err)
		}
	}
	g.turn = 0
	g.actions = actionsPerTurn
	g.phase = PhaseActions
	return g
}

// takeCard pulls a matching card out of the draw pile so ids stay
// unique across deck, hands and tables.
func takeCard(t *testing.T, g *Game, match func(*Card) bool) *Card {
	t.Helper()
	for i, c := range g.deck.draw {
		if match(c) {
			g.deck.draw = append(g.deck.draw[:i], g.deck.draw[i+1:]...)
			return c
		}
	}
	t.Fatalf("no matching card left in draw pile")
	return nil
}

func giveHand(t *testing.T, g *Game, p *Player, match func(*Card) bool) *Card {
	t.Helper()
	c := takeCard(t, g, match)
	p.Hand = append(p.Hand, c)
	return c
}

func giveTable(t *testing.T, g *Game, p *Player, color Color, match func(*Card) bool) *Card {
	t.Helper()
	c := takeCard(t, g, match)
	p.addProperty(c, color)
	return c
}

func giveBank(t *testing.T, g *Game, p *Player, match func(*Card) bool) *Card {
	t.Helper()
	c := takeCard(t, g, match)
	p.addToBank(c)
	return c
}

func giveCompleteSet(t *testing.T, g *Game, p *Player, color Color) []*Card {
	t.Helper()
	cards := make([]*Card, 0, FullSetSize(color))
	for i := 0; i < FullSetSize(color); i++ {
		cards = append(cards, giveTable(t, g, p, color, solidOf(color)))
	}
	return cards
}

func byName(name string) func(*Card) bool {
	return func(c *Card) bool { return c.Name == name }
}

func moneyOf(v int) func(*Card) bool {
	return func(c *Card) bool { return c.Kind == KindMoney && c.Value == v }
}

func solidOf(color Color) func(*Card) bool {
	return func(c *Card) bool {
		return c.Kind == KindProperty && !c.Wild && c.CurrentColor == color
	}
}

func wildOf(a, b Color) func(*Card) bool {
	return func(c *Card) bool {
		return c.Wild && len(c.Colors) == 2 && c.AllowsColor(a) && c.AllowsColor(b)
	}
}

func rentOf(color Color) func(*Card) bool {
	return func(c *Card) bool {
		return c.Kind == KindRent && len(c.Colors) == 2 && c.AllowsColor(color)
	}
}

func multicolorRent() func(*Card) bool {
	return func(c *Card) bool {
		return c.Kind == KindRent && len(c.Colors) == len(AllColors)
	}
}

func anyColorWild() func(*Card) bool {
	return func(c *Card) bool {
		return c.Kind == KindProperty && c.Wild && len(c.Colors) == len(AllColors)
	}
}

// mustPlay binds t so a two-value play call can feed the returned
// check directly: mustPlay(t)(g.ToBank(id, cardID)).
func mustPlay(t *testing.T) func(*Card, error) *Card {
	return func(card *Card, err error) *Card {
		t.Helper()
		if err != nil {
			t.Fatalf("play failed: %v", err)
		}
		return card
	}
}

func wantRuleError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected rule rejection, got nil")
	}
	if _, ok := err.(RuleError); !ok {
		t.Fatalf("expected RuleError, got %T: %v", err, err)
	}
}

func inDiscard(g *Game, card *Card) bool {
	for _, c := range g.deck.DiscardPile() {
		if c == card {
			return true
		}
	}
	return false
}
