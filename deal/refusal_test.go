package deal

import (
	"errors"
	"testing"
)

func openBirthday(t *testing.T, g *Game) {
	t.Helper()
	c := giveHand(t, g, g.Player("a"), byName(NameItsYourBirthday))
	mustPlay(t)(g.PlayBirthday("a", c.ID))
}

func TestDeclineOpensPayment(t *testing.T) {
	g := rigGame(t, "a", "b")
	openBirthday(t, g)

	out, err := g.RefusalDecision("b", false)
	if err != nil {
		t.Fatalf("RefusalDecision: %v", err)
	}
	if out.Payment == nil {
		t.Fatalf("expected pending payment")
	}
	if out.Payment.Payer.ID != "b" || out.Payment.Recipient.ID != "a" || out.Payment.Amount != 2 {
		t.Fatalf("payment %+v, want b owes a 2", out.Payment)
	}
	if g.Phase() != PhasePayment {
		t.Errorf("phase %v, want payment", g.Phase())
	}
}

func TestRefusalRejectsWrongPlayer(t *testing.T) {
	g := rigGame(t, "a", "b", "c")
	openBirthday(t, g)

	if _, err := g.RefusalDecision("c", false); !errors.Is(err, ErrNotYourDecision) {
		t.Fatalf("expected ErrNotYourDecision, got %v", err)
	}
	if _, err := g.RefusalDecision("a", false); !errors.Is(err, ErrNotYourDecision) {
		t.Fatalf("actor cannot decide the first round, got %v", err)
	}
}

func TestJustSayNoFlipsDecision(t *testing.T) {
	g := rigGame(t, "a", "b")
	jsn := giveHand(t, g, g.Player("b"), byName(NameJustSayNo))
	openBirthday(t, g)

	out, err := g.RefusalDecision("b", true)
	if err != nil {
		t.Fatalf("RefusalDecision: %v", err)
	}
	if !out.JustSayNoPlayed || out.JustSayNoCard != jsn {
		t.Fatalf("expected the played Just Say No in the outcome")
	}
	if out.Decider.ID != "a" {
		t.Fatalf("decider %q, want a", out.Decider.ID)
	}
	if !inDiscard(g, jsn) {
		t.Errorf("Just Say No should be discarded when played")
	}
	ns, _ := g.NegotiationState()
	if ns.JustSayNoCount != 1 {
		t.Errorf("chain count %d, want 1", ns.JustSayNoCount)
	}
}

func TestJustSayNoWithoutCardRejected(t *testing.T) {
	g := rigGame(t, "a", "b")
	openBirthday(t, g)
	_, err := g.RefusalDecision("b", true)
	wantRuleError(t, err)
}

func TestOddChainCancelsForCurrentTarget(t *testing.T) {
	g := rigGame(t, "a", "b", "c")
	giveHand(t, g, g.Player("b"), byName(NameJustSayNo))
	openBirthday(t, g)

	if _, err := g.RefusalDecision("b", true); err != nil {
		t.Fatalf("play jsn: %v", err)
	}
	out, err := g.RefusalDecision("a", false)
	if err != nil {
		t.Fatalf("decline: %v", err)
	}
	if !out.Cancelled {
		t.Fatalf("expected cancellation for b")
	}
	// c still owes a fresh chain.
	if !out.NewTargetChain || out.Decider.ID != "c" {
		t.Fatalf("expected chain to move to c, got %+v", out)
	}
	ns, _ := g.NegotiationState()
	if ns.JustSayNoCount != 0 {
		t.Errorf("chain count %d, want reset to 0", ns.JustSayNoCount)
	}
}

func TestEvenChainReinstatesDemand(t *testing.T) {
	g := rigGame(t, "a", "b")
	giveHand(t, g, g.Player("b"), byName(NameJustSayNo))
	giveHand(t, g, g.Player("a"), byName(NameJustSayNo))
	openBirthday(t, g)

	if _, err := g.RefusalDecision("b", true); err != nil {
		t.Fatalf("b jsn: %v", err)
	}
	if _, err := g.RefusalDecision("a", true); err != nil {
		t.Fatalf("a counter jsn: %v", err)
	}
	out, err := g.RefusalDecision("b", false)
	if err != nil {
		t.Fatalf("b decline: %v", err)
	}
	if out.Payment == nil {
		t.Fatalf("two refusals cancel out, payment should stand")
	}
}

func TestCancelledLastTargetClosesNegotiation(t *testing.T) {
	g := rigGame(t, "a", "b")
	giveHand(t, g, g.Player("b"), byName(NameJustSayNo))
	openBirthday(t, g)

	if _, err := g.RefusalDecision("b", true); err != nil {
		t.Fatalf("play jsn: %v", err)
	}
	out, err := g.RefusalDecision("a", false)
	if err != nil {
		t.Fatalf("decline: %v", err)
	}
	if !out.Cancelled || !out.Done {
		t.Fatalf("expected closed negotiation, got %+v", out)
	}
	if g.Phase() != PhaseActions {
		t.Errorf("phase %v, want actions", g.Phase())
	}
	if g.CurrentTurn() != "a" {
		t.Errorf("turn should stay with a while actions remain")
	}
}

func TestTurnAdvancesAfterNegotiationWhenBudgetSpent(t *testing.T) {
	g := rigGame(t, "a", "b")
	giveHand(t, g, g.Player("b"), byName(NameJustSayNo))
	c := giveHand(t, g, g.Player("a"), byName(NameItsYourBirthday))

	g.actions = 1
	mustPlay(t)(g.PlayBirthday("a", c.ID))
	if _, err := g.RefusalDecision("b", true); err != nil {
		t.Fatalf("play jsn: %v", err)
	}
	if _, err := g.RefusalDecision("a", false); err != nil {
		t.Fatalf("decline: %v", err)
	}
	if g.CurrentTurn() != "b" {
		t.Fatalf("turn should advance once the deferred budget hits zero")
	}
}
