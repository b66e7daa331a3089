package deal

// PaymentResult reports a settled payment plus what the negotiation
// does next (another target's chain, or done).
type PaymentResult struct {
	Payer          *Player
	Recipient      *Player
	Paid           []*Card
	Amount         int
	Decider        *Player
	NewTargetChain bool
	Done           bool
}

type paymentPick struct {
	card     *Card
	fromBank bool
	color    Color
}

// SettlePayment resolves the pending charge with the payer's selected
// cards. Selected total must cover the amount, or the payer's whole
// wealth when that is smaller; overpayment is kept.
func (g *Game) SettlePayment(playerID string, cardIDs []int) (*PaymentResult, error) {
	if g.phase != PhasePayment || g.neg == nil || !g.neg.paying {
		return nil, ErrNoNegotiation
	}
	n := g.neg
	payer := n.targets[0]
	if payer.ID != playerID {
		return nil, ErrNotYourDecision
	}
	recipient := n.actor

	picks := make([]paymentPick, 0, len(cardIDs))
	seen := make(map[int]bool, len(cardIDs))
	total := 0
	for _, id := range cardIDs {
		if seen[id] {
			return nil, errRule("duplicate card in payment")
		}
		seen[id] = true
		if c := payer.bankCard(id); c != nil {
			picks = append(picks, paymentPick{card: c, fromBank: true})
			total += c.Value
			continue
		}
		if color, c := payer.PropertyCard(id); c != nil {
			picks = append(picks, paymentPick{card: c, color: color})
			total += c.Value
			continue
		}
		return nil, errRule("card not available for payment")
	}

	owed := n.amount
	if wealth := payer.totalWealth(); wealth < owed {
		owed = wealth
	}
	if total < owed {
		return nil, errRule("payment does not cover the amount owed")
	}

	paid := make([]*Card, 0, len(picks))
	payerTouched := make(map[Color]bool)
	recipientTouched := make(map[Color]bool)
	for _, pick := range picks {
		paid = append(paid, pick.card)
		if pick.fromBank {
			payer.removeFromBank(pick.card)
			recipient.addToBank(pick.card)
			continue
		}
		payer.removeProperty(pick.color, pick.card)
		payerTouched[pick.color] = true
		if pick.card.IsProperty() {
			recipient.addProperty(pick.card, pick.card.CurrentColor)
			recipientTouched[pick.card.CurrentColor] = true
		} else {
			// Buildings surrendered as payment convert to bank value.
			recipient.addToBank(pick.card)
		}
	}
	for color := range payerTouched {
		payer.upkeep(color)
	}
	for color := range recipientTouched {
		recipient.upkeep(color)
	}

	g.checkWin(recipient)
	next, done := g.advanceNegotiation()
	return &PaymentResult{
		Payer:          payer,
		Recipient:      recipient,
		Paid:           paid,
		Amount:         n.amount,
		Decider:        next,
		NewTargetChain: next != nil,
		Done:           done,
	}, nil
}
