package deal

// Demand plays target opponents and run through the Just Say No chain
// before their effect applies. Payment demands then wait in
// PhasePayment for the payer's card selection (payment.go).

type DemandKind byte

const (
	DemandRent        DemandKind = 1
	DemandDebt        DemandKind = 2
	DemandBirthday    DemandKind = 3
	DemandSlyDeal     DemandKind = 4
	DemandForcedDeal  DemandKind = 5
	DemandDealBreaker DemandKind = 6
)

var DemandKindDictionary = map[DemandKind]string{
	DemandRent:        "rent",
	DemandDebt:        "debt_collector",
	DemandBirthday:    "its_your_birthday",
	DemandSlyDeal:     "sly_deal",
	DemandForcedDeal:  "forced_deal",
	DemandDealBreaker: "deal_breaker",
}

type negotiation struct {
	kind  DemandKind
	actor *Player
	card  *Card

	// payment demands
	amount  int
	doubled bool

	// steal demands
	targetCard *Card
	offerCard  *Card
	setColor   Color
	setCards   []*Card

	// targets still owing a decision, head first. A fresh Just Say No
	// chain runs per target.
	targets  []*Player
	jsnCount int
	decider  *Player
	paying   bool
}

// NegotiationState is a read-only view for the session layer.
type NegotiationState struct {
	Kind            DemandKind
	CardID          int
	ActorID         string
	TargetID        string
	TargetIDs       []string
	DeciderID       string
	Amount          int
	Doubled         bool
	JustSayNoCount  int
	AwaitingPayment bool
}

func (g *Game) NegotiationState() (NegotiationState, bool) {
	n := g.neg
	if n == nil {
		return NegotiationState{}, false
	}
	targetIDs := make([]string, len(n.targets))
	for i, t := range n.targets {
		targetIDs[i] = t.ID
	}
	return NegotiationState{
		Kind:            n.kind,
		CardID:          n.card.ID,
		ActorID:         n.actor.ID,
		TargetID:        n.targets[0].ID,
		TargetIDs:       targetIDs,
		DeciderID:       n.decider.ID,
		Amount:          n.amount,
		Doubled:         n.doubled,
		JustSayNoCount:  n.jsnCount,
		AwaitingPayment: n.paying,
	}, true
}

// opponentsOf lists the other seats in turn order starting at the
// actor's left.
func (g *Game) opponentsOf(actor *Player) []*Player {
	var idx int
	for i, p := range g.players {
		if p == actor {
			idx = i
			break
		}
	}
	out := make([]*Player, 0, len(g.players)-1)
	for i := 1; i < len(g.players); i++ {
		out = append(out, g.players[(idx+i)%len(g.players)])
	}
	return out
}

func (g *Game) openDemand(n *negotiation, cost int, discards ...*Card) {
	for _, c := range discards {
		n.actor.removeFromHand(c)
		g.deck.Discard(c)
	}
	g.actions -= cost
	n.decider = n.targets[0]
	g.neg = n
	g.phase = PhaseRefusal
}

// PaymentDue binds an owed payment to one payer.
type PaymentDue struct {
	Payer     *Player
	Recipient *Player
	Amount    int
}

// StealResult describes an applied steal effect.
type StealResult struct {
	Kind   DemandKind
	Actor  *Player
	Target *Player
	Taken  []*Card
	Given  *Card
	Color  Color
}

// Outcome is what a refusal decision produced. Exactly one of the
// branches is meaningful: a continued chain (Decider set), a pending
// payment, an applied steal, or a cancellation; Done marks the
// negotiation fully closed.
type Outcome struct {
	JustSayNoPlayed bool
	JustSayNoCard   *Card
	Decider         *Player
	NewTargetChain  bool
	Cancelled       bool
	Payment         *PaymentDue
	Steal           *StealResult
	Done            bool
}

// RefusalDecision is the current decision holder's answer: play a Just
// Say No (flipping the decision to the other side) or let the chain
// resolve. An odd number of refusals cancels the effect for the
// current target only.
func (g *Game) RefusalDecision(playerID string, playJustSayNo bool) (*Outcome, error) {
	if g.phase != PhaseRefusal || g.neg == nil {
		return nil, ErrNoNegotiation
	}
	n := g.neg
	if n.decider.ID != playerID {
		return nil, ErrNotYourDecision
	}

	if playJustSayNo {
		jsn := findByName(n.decider.Hand, NameJustSayNo)
		if jsn == nil {
			return nil, errRule("no Just Say No in hand")
		}
		n.decider.removeFromHand(jsn)
		g.deck.Discard(jsn)
		n.jsnCount++
		if n.decider == n.actor {
			n.decider = n.targets[0]
		} else {
			n.decider = n.actor
		}
		return &Outcome{JustSayNoPlayed: true, JustSayNoCard: jsn, Decider: n.decider}, nil
	}

	if n.jsnCount%2 == 1 {
		next, done := g.advanceNegotiation()
		return &Outcome{Cancelled: true, Decider: next, NewTargetChain: next != nil, Done: done}, nil
	}

	switch n.kind {
	case DemandRent, DemandDebt, DemandBirthday:
		n.paying = true
		g.phase = PhasePayment
		return &Outcome{Payment: &PaymentDue{Payer: n.targets[0], Recipient: n.actor, Amount: n.amount}}, nil
	default:
		steal := g.applySteal()
		next, done := g.advanceNegotiation()
		return &Outcome{Steal: steal, Decider: next, NewTargetChain: next != nil, Done: done}, nil
	}
}

func (g *Game) applySteal() *StealResult {
	n := g.neg
	target := n.targets[0]
	res := &StealResult{Kind: n.kind, Actor: n.actor, Target: target}

	switch n.kind {
	case DemandSlyDeal:
		from, _ := target.PropertyCard(n.targetCard.ID)
		target.removeProperty(from, n.targetCard)
		n.actor.addProperty(n.targetCard, n.targetCard.CurrentColor)
		target.upkeep(from)
		n.actor.upkeep(n.targetCard.CurrentColor)
		res.Taken = []*Card{n.targetCard}
		res.Color = n.targetCard.CurrentColor

	case DemandForcedDeal:
		targetFrom, _ := target.PropertyCard(n.targetCard.ID)
		actorFrom, _ := n.actor.PropertyCard(n.offerCard.ID)
		target.removeProperty(targetFrom, n.targetCard)
		n.actor.removeProperty(actorFrom, n.offerCard)
		n.actor.addProperty(n.targetCard, n.targetCard.CurrentColor)
		target.addProperty(n.offerCard, n.offerCard.CurrentColor)
		target.upkeep(targetFrom)
		target.upkeep(n.offerCard.CurrentColor)
		n.actor.upkeep(actorFrom)
		n.actor.upkeep(n.targetCard.CurrentColor)
		res.Taken = []*Card{n.targetCard}
		res.Given = n.offerCard
		res.Color = n.targetCard.CurrentColor

	case DemandDealBreaker:
		// Chosen properties move along with every building on the
		// group.
		taken := append([]*Card(nil), n.setCards...)
		for _, c := range target.Properties[n.setColor] {
			if c.IsBuilding() {
				taken = append(taken, c)
			}
		}
		for _, c := range taken {
			target.removeProperty(n.setColor, c)
			n.actor.addProperty(c, n.setColor)
		}
		target.upkeep(n.setColor)
		n.actor.upkeep(n.setColor)
		res.Taken = taken
		res.Color = n.setColor
	}

	g.checkWin(n.actor)
	return res
}

// advanceNegotiation moves to the next target's chain or closes the
// negotiation, advancing the turn if the action budget ran out while
// the demand was in flight.
func (g *Game) advanceNegotiation() (*Player, bool) {
	n := g.neg
	n.targets = n.targets[1:]
	n.jsnCount = 0
	n.paying = false
	if g.winner == nil && len(n.targets) > 0 {
		n.decider = n.targets[0]
		g.phase = PhaseRefusal
		return n.decider, false
	}
	g.neg = nil
	if g.winner != nil {
		return nil, true
	}
	g.phase = PhaseActions
	if g.actions <= 0 {
		g.advanceTurn()
	}
	return nil, true
}

func findByName(cards []*Card, name string) *Card {
	for _, c := range cards {
		if c.Kind == KindAction && c.Name == name {
			return c
		}
	}
	return nil
}
