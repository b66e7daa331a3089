package room

import (
	"errors"

	"github.com/Aditya130805/MonopolyDeal/deal"
)

func errRule(msg string) error { return errors.New(msg) }

// rentTypeFor labels a payment demand the way clients expect it in
// rent_pre_request and rent_request frames.
func rentTypeFor(action string) string {
	switch action {
	case "double_the_rent":
		return "double_the_rent"
	case "its_your_birthday":
		return "it's your birthday"
	case "debt_collector":
		return "debt collector"
	default:
		return "rent"
	}
}

func (r *Room) playerName(id string) string {
	if r.game != nil {
		if p := r.game.Player(id); p != nil {
			return p.Name
		}
	}
	if m := r.members[id]; m != nil {
		return m.name
	}
	return ""
}

func (r *Room) handleCardPlay(c *client, msg clientMessage) error {
	if r.game == nil {
		r.reject(c, deal.ErrNotStarted)
		return nil
	}

	switch msg.Action {
	case "to_bank":
		if msg.Card == nil {
			r.reject(c, errRule("missing card"))
			return nil
		}
		card, err := r.game.ToBank(c.playerID, msg.Card.ID)
		if err != nil {
			r.reject(c, err)
			return nil
		}
		r.broadcastCardPlayed(c.playerID, "to_bank", "to_bank", card)
		r.broadcastGameState()

	case "to_properties":
		return r.handleToProperties(c, msg)

	case "pass_go":
		if msg.Card == nil {
			r.reject(c, errRule("missing card"))
			return nil
		}
		var card *deal.Card
		if p := r.game.Player(c.playerID); p != nil {
			card = p.HandCard(msg.Card.ID)
		}
		if _, err := r.game.PassGo(c.playerID, msg.Card.ID); err != nil {
			r.reject(c, err)
			return nil
		}
		r.broadcastCardPlayed(c.playerID, "pass_go", "action", card)
		r.broadcastGameState()

	case "its_your_birthday":
		return r.handleDemandPlay(c, msg, func(cardID int) (*deal.Card, error) {
			return r.game.PlayBirthday(c.playerID, cardID)
		})

	case "debt_collector":
		return r.handleDemandPlay(c, msg, func(cardID int) (*deal.Card, error) {
			return r.game.PlayDebtCollector(c.playerID, cardID, msg.TargetPlayer)
		})

	case "rent":
		return r.handleDemandPlay(c, msg, func(cardID int) (*deal.Card, error) {
			return r.game.PlayRent(c.playerID, cardID, msg.RentAmount)
		})

	case "multicolor_rent":
		return r.handleDemandPlay(c, msg, func(cardID int) (*deal.Card, error) {
			return r.game.PlayMulticolorRent(c.playerID, cardID, msg.RentAmount, msg.TargetPlayer)
		})

	case "double_the_rent":
		return r.handleDoubleTheRent(c, msg)

	case "sly_deal":
		if msg.TargetProperty == nil {
			r.reject(c, errRule("missing target property"))
			return nil
		}
		return r.handleDemandPlay(c, msg, func(cardID int) (*deal.Card, error) {
			return r.game.PlaySlyDeal(c.playerID, cardID, msg.TargetProperty.ID)
		})

	case "forced_deal":
		if msg.TargetProperty == nil || msg.UserProperty == nil {
			r.reject(c, errRule("missing swap properties"))
			return nil
		}
		return r.handleDemandPlay(c, msg, func(cardID int) (*deal.Card, error) {
			return r.game.PlayForcedDeal(c.playerID, cardID, msg.TargetProperty.ID, msg.UserProperty.ID)
		})

	case "deal_breaker":
		ids := make([]int, 0, len(msg.TargetSet))
		for _, ref := range msg.TargetSet {
			ids = append(ids, ref.ID)
		}
		return r.handleDemandPlay(c, msg, func(cardID int) (*deal.Card, error) {
			return r.game.PlayDealBreaker(c.playerID, cardID, ids, deal.Color(msg.TargetColor))
		})

	default:
		r.reject(c, errRule("unknown action: "+msg.Action))
	}
	return nil
}

// to_properties covers both placing a hand card and retagging a wild
// already on the table; the card's location picks the operation.
func (r *Room) handleToProperties(c *client, msg clientMessage) error {
	if msg.Card == nil {
		r.reject(c, errRule("missing card"))
		return nil
	}
	p := r.game.Player(c.playerID)
	if p == nil {
		r.reject(c, deal.ErrUnknownPlayer)
		return nil
	}
	color := deal.Color(msg.Card.CurrentColor)

	if p.HandCard(msg.Card.ID) != nil {
		card, err := r.game.ToProperties(c.playerID, msg.Card.ID, color)
		if err != nil {
			r.reject(c, err)
			return nil
		}
		r.broadcastCardPlayed(c.playerID, "to_properties", "to_properties", card)
		r.broadcastGameState()
		return nil
	}

	if err := r.game.ReassignWild(c.playerID, msg.Card.ID, color); err != nil {
		r.reject(c, err)
		return nil
	}
	_, card := p.PropertyCard(msg.Card.ID)
	r.broadcastCardPlayed(c.playerID, "to_properties", "to_properties", card)
	r.broadcastGameState()
	return nil
}

// handleDemandPlay runs any single-card demand play and opens the
// shared announcement plus refusal flow.
func (r *Room) handleDemandPlay(c *client, msg clientMessage, play func(cardID int) (*deal.Card, error)) error {
	if msg.Card == nil {
		r.reject(c, errRule("missing card"))
		return nil
	}
	card, err := play(msg.Card.ID)
	if err != nil {
		r.reject(c, err)
		return nil
	}
	r.openDemandFlow(c, msg.Action, card)
	return nil
}

func (r *Room) handleDoubleTheRent(c *client, msg clientMessage) error {
	if msg.Card == nil || msg.DoubleTheRentCard == nil {
		r.reject(c, errRule("missing card"))
		return nil
	}
	p := r.game.Player(c.playerID)
	var double *deal.Card
	if p != nil {
		double = p.HandCard(msg.DoubleTheRentCard.ID)
	}
	rent, err := r.game.PlayDoubleTheRent(c.playerID, msg.Card.ID, msg.DoubleTheRentCard.ID, msg.RentAmount, msg.TargetPlayer)
	if err != nil {
		r.reject(c, err)
		return nil
	}
	r.broadcastCardPlayed(c.playerID, "double_the_rent", "action", double)
	r.openDemandFlow(c, "double_the_rent", rent)
	return nil
}

// openDemandFlow announces the played demand card, tells would-be
// payers what is coming, and prompts the first refusal decision.
func (r *Room) openDemandFlow(c *client, action string, card *deal.Card) {
	ns, ok := r.game.NegotiationState()
	if !ok {
		// Every target had nothing to answer with; should not happen
		// since chains always open, but stay safe.
		r.broadcastGameState()
		return
	}
	r.demand = &demandMeta{
		card:     card,
		action:   action,
		rentType: rentTypeFor(action),
		amount:   ns.Amount,
	}
	r.broadcastCardPlayed(c.playerID, action, "action", card)

	if ns.Amount > 0 {
		r.broadcast(rentPreRequestEvent{
			Type:        "rent_pre_request",
			Amount:      ns.Amount,
			RentType:    r.demand.rentType,
			RecipientID: ns.ActorID,
			PlayerIDs:   ns.TargetIDs,
		})
	}
	r.promptRefusal(ns)
	r.broadcastGameState()
}

func (r *Room) promptRefusal(ns deal.NegotiationState) {
	opponent := ns.ActorID
	if ns.DeciderID == ns.ActorID {
		opponent = ns.TargetID
	}
	r.broadcast(refusalChoiceEvent{
		Type:         "refusal_choice",
		PlayerID:     ns.DeciderID,
		PlayerName:   r.playerName(ns.DeciderID),
		OpponentID:   opponent,
		OpponentName: r.playerName(opponent),
		Demand:       r.demandAction(),
		Amount:       ns.Amount,
		JustSayNos:   ns.JustSayNoCount,
	})
}

func (r *Room) demandAction() string {
	if r.demand != nil {
		return r.demand.action
	}
	return ""
}

func (r *Room) handleRefusalResponse(c *client, msg clientMessage) error {
	if r.game == nil {
		r.reject(c, deal.ErrNotStarted)
		return nil
	}
	before, _ := r.game.NegotiationState()
	outcome, err := r.game.RefusalDecision(c.playerID, msg.PlayJustSayNo)
	if err != nil {
		r.reject(c, err)
		return nil
	}

	opponent := before.ActorID
	if c.playerID == before.ActorID {
		opponent = before.TargetID
	}
	r.broadcast(refusalResponseEvent{
		Type:          "refusal_response",
		PlayJustSayNo: outcome.JustSayNoPlayed,
		PlayerID:      c.playerID,
		PlayerName:    r.playerName(c.playerID),
		OpponentID:    opponent,
		OpponentName:  r.playerName(opponent),
		Card:          outcome.JustSayNoCard,
	})

	if outcome.JustSayNoPlayed {
		r.broadcastCardPlayed(c.playerID, "just_say_no", "action", outcome.JustSayNoCard)
		if ns, ok := r.game.NegotiationState(); ok {
			r.promptRefusal(ns)
		}
		r.broadcastGameState()
		return nil
	}

	r.resolveOutcome(outcome)
	return nil
}

// resolveOutcome carries a declined refusal to its effect: a payment
// request, an applied steal, or a cancellation, then either prompts
// the next target or closes the demand.
func (r *Room) resolveOutcome(outcome *deal.Outcome) {
	switch {
	case outcome.Payment != nil:
		r.broadcast(rentRequestEvent{
			Type:        "rent_request",
			Amount:      outcome.Payment.Amount,
			RentType:    r.demandRentType(),
			RecipientID: outcome.Payment.Recipient.ID,
			PlayerID:    outcome.Payment.Payer.ID,
		})
		r.broadcastGameState()
		return

	case outcome.Steal != nil:
		r.broadcastSteal(outcome.Steal)
	}

	r.afterNegotiationStep(outcome.NewTargetChain, outcome.Done)
}

func (r *Room) demandRentType() string {
	if r.demand != nil {
		return r.demand.rentType
	}
	return "rent"
}

func (r *Room) broadcastSteal(s *deal.StealResult) {
	switch s.Kind {
	case deal.DemandSlyDeal:
		r.broadcast(propertyStolenEvent{
			Type:       "property_stolen",
			PlayerID:   s.Actor.ID,
			TargetID:   s.Target.ID,
			PlayerName: s.Actor.Name,
			TargetName: s.Target.Name,
			Property:   s.Taken[0],
		})
	case deal.DemandForcedDeal:
		r.broadcast(propertySwapEvent{
			Type:        "property_swap",
			Property1:   s.Taken[0],
			Property2:   s.Given,
			Player1ID:   s.Actor.ID,
			Player2ID:   s.Target.ID,
			Player1Name: s.Actor.Name,
			Player2Name: s.Target.Name,
		})
	case deal.DemandDealBreaker:
		r.broadcast(dealBreakerOverlayEvent{
			Type:        "deal_breaker_overlay",
			PlayerName:  s.Actor.Name,
			TargetName:  s.Target.Name,
			Color:       s.Color,
			PropertySet: s.Taken,
		})
	}
}

// afterNegotiationStep runs once one target's chain has fully
// resolved: prompt the next target or drop the demand state.
func (r *Room) afterNegotiationStep(newChain, done bool) {
	if newChain {
		if ns, ok := r.game.NegotiationState(); ok {
			r.promptRefusal(ns)
		}
	}
	if done {
		r.demand = nil
	}
	r.broadcastGameState()
}

func (r *Room) handleRentPayment(c *client, msg clientMessage) error {
	if r.game == nil {
		r.reject(c, deal.ErrNotStarted)
		return nil
	}
	var selected []int
	if msg.Card != nil {
		selected = msg.Card.SelectedCards
	}
	result, err := r.game.SettlePayment(c.playerID, selected)
	if err != nil {
		r.reject(c, err)
		return nil
	}

	r.broadcast(rentPaidEvent{
		Type:          "rent_paid",
		RecipientID:   result.Recipient.ID,
		PlayerID:      result.Payer.ID,
		SelectedCards: result.Paid,
		PlayerName:    result.Payer.Name,
		RecipientName: result.Recipient.Name,
	})
	r.afterNegotiationStep(result.NewTargetChain, result.Done)
	return nil
}

// resendRentRequest re-sends the pending payment prompt to one client
// that asked for it, typically after a reconnect of its UI state.
func (r *Room) resendRentRequest(conn Conn) {
	if r.game == nil {
		return
	}
	ns, ok := r.game.NegotiationState()
	if !ok || !ns.AwaitingPayment {
		return
	}
	r.sendTo(conn, rentRequestEvent{
		Type:        "rent_request",
		Amount:      ns.Amount,
		RentType:    r.demandRentType(),
		RecipientID: ns.ActorID,
		PlayerID:    ns.TargetID,
	})
}

func (r *Room) broadcastCardPlayed(playerID, action, actionType string, card *deal.Card) {
	r.broadcast(cardPlayedEvent{
		Type:       "card_played",
		PlayerID:   playerID,
		Action:     action,
		ActionType: actionType,
		Card:       card,
	})
}
