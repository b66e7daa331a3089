package deal

// Steal-family plays: Sly Deal, Forced Deal, Deal Breaker. The effect
// itself applies in applySteal once the refusal chain resolves.

// stealTarget resolves an opponent's table card eligible for stealing:
// a property card outside any complete set, never a building.
func (g *Game) stealTarget(actor *Player, cardID int) (*Player, *Card, error) {
	for _, opp := range g.opponentsOf(actor) {
		color, c := opp.PropertyCard(cardID)
		if c == nil {
			continue
		}
		if !c.IsProperty() {
			return nil, nil, errRule("buildings cannot be stolen")
		}
		if opp.IsCompleteSet(color) {
			return nil, nil, errRule("cards in a complete set cannot be stolen")
		}
		return opp, c, nil
	}
	return nil, nil, errRule("target card not found on any opponent's table")
}

// PlaySlyDeal steals one opponent property.
func (g *Game) PlaySlyDeal(playerID string, cardID, targetCardID int) (*Card, error) {
	p, err := g.checkTurn(playerID)
	if err != nil {
		return nil, err
	}
	c := p.HandCard(cardID)
	if c == nil || !c.IsAction(NameSlyDeal) {
		return nil, errRule("no Sly Deal card in hand")
	}
	target, stolen, err := g.stealTarget(p, targetCardID)
	if err != nil {
		return nil, err
	}
	g.openDemand(&negotiation{
		kind:       DemandSlyDeal,
		actor:      p,
		card:       c,
		targetCard: stolen,
		targets:    []*Player{target},
	}, 1, c)
	return c, nil
}

// PlayForcedDeal swaps one own property for one opponent property.
func (g *Game) PlayForcedDeal(playerID string, cardID, targetCardID, ownCardID int) (*Card, error) {
	p, err := g.checkTurn(playerID)
	if err != nil {
		return nil, err
	}
	c := p.HandCard(cardID)
	if c == nil || !c.IsAction(NameForcedDeal) {
		return nil, errRule("no Forced Deal card in hand")
	}
	target, stolen, err := g.stealTarget(p, targetCardID)
	if err != nil {
		return nil, err
	}
	_, offer := p.PropertyCard(ownCardID)
	if offer == nil || !offer.IsProperty() {
		return nil, errRule("you must offer a property of your own")
	}
	g.openDemand(&negotiation{
		kind:       DemandForcedDeal,
		actor:      p,
		card:       c,
		targetCard: stolen,
		offerCard:  offer,
		targets:    []*Player{target},
	}, 1, c)
	return c, nil
}

// PlayDealBreaker takes a complete set. The caller names exactly
// full-set-size property cards from one opponent group; buildings on
// the group follow automatically.
func (g *Game) PlayDealBreaker(playerID string, cardID int, targetCardIDs []int, color Color) (*Card, error) {
	p, err := g.checkTurn(playerID)
	if err != nil {
		return nil, err
	}
	c := p.HandCard(cardID)
	if c == nil || !c.IsAction(NameDealBreaker) {
		return nil, errRule("no Deal Breaker card in hand")
	}
	if !ValidColor(color) {
		return nil, errRule("unknown color")
	}
	if len(targetCardIDs) != FullSetSize(color) {
		return nil, errRule("deal breaker must take exactly a full set")
	}

	var target *Player
	chosen := make([]*Card, 0, len(targetCardIDs))
	seen := make(map[int]bool, len(targetCardIDs))
	for _, id := range targetCardIDs {
		if seen[id] {
			return nil, errRule("duplicate card in target set")
		}
		seen[id] = true
		owner, card, cardColor := g.findOpponentProperty(p, id)
		if card == nil || !card.IsProperty() || cardColor != color {
			return nil, errRule("target set is not a complete " + string(color) + " set")
		}
		if target == nil {
			target = owner
		} else if target != owner {
			return nil, errRule("target set spans multiple players")
		}
		chosen = append(chosen, card)
	}
	if target == nil || !target.IsCompleteSet(color) {
		return nil, errRule("target set is not complete")
	}

	g.openDemand(&negotiation{
		kind:     DemandDealBreaker,
		actor:    p,
		card:     c,
		setColor: color,
		setCards: chosen,
		targets:  []*Player{target},
	}, 1, c)
	return c, nil
}

func (g *Game) findOpponentProperty(actor *Player, cardID int) (*Player, *Card, Color) {
	for _, opp := range g.opponentsOf(actor) {
		if color, c := opp.PropertyCard(cardID); c != nil {
			return opp, c, color
		}
	}
	return nil, nil, ""
}
