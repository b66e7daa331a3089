package deal

// Plain plays: bank, table placement, Pass Go, wild reassignment.
// Demand plays (rent, steals) live in demand.go.

// ToBank moves any non-property card from hand to the player's bank.
func (g *Game) ToBank(playerID string, cardID int) (*Card, error) {
	p, err := g.checkTurn(playerID)
	if err != nil {
		return nil, err
	}
	c := p.HandCard(cardID)
	if c == nil {
		return nil, errRule("card not in hand")
	}
	if c.IsProperty() {
		return nil, errRule("property cards cannot be banked")
	}
	p.removeFromHand(c)
	p.addToBank(c)
	g.commit(p, 1)
	return c, nil
}

// ToProperties places a property card, House or Hotel from hand onto
// the player's table. color names the target group; for solid
// properties it may be empty.
func (g *Game) ToProperties(playerID string, cardID int, color Color) (*Card, error) {
	p, err := g.checkTurn(playerID)
	if err != nil {
		return nil, err
	}
	c := p.HandCard(cardID)
	if c == nil {
		return nil, errRule("card not in hand")
	}

	switch {
	case c.IsProperty():
		if color == "" {
			color = c.Colors[0]
		}
		if !ValidColor(color) {
			return nil, errRule("unknown color")
		}
		if !c.AllowsColor(color) {
			return nil, errRule("card cannot be played as " + string(color))
		}
		p.removeFromHand(c)
		p.addProperty(c, color)

	case c.IsBuilding():
		if err := g.checkBuilding(p, c, color); err != nil {
			return nil, err
		}
		p.removeFromHand(c)
		p.addProperty(c, color)

	default:
		return nil, errRule("card cannot be placed on the table")
	}

	g.commit(p, 1)
	return c, nil
}

// Buildings go on complete street sets only. One House per complete
// set, one Hotel per set that already holds a House.
func (g *Game) checkBuilding(p *Player, c *Card, color Color) error {
	if !ValidColor(color) {
		return errRule("unknown color")
	}
	if color == Black || color == Mint {
		return errRule("buildings cannot go on railroads or utilities")
	}
	complete := p.completeSets(color)
	if complete == 0 {
		return errRule(c.Name + " needs a complete set")
	}
	houses := p.buildingCount(color, NameHouse)
	if c.Name == NameHouse {
		if houses >= complete {
			return errRule("set already has a house")
		}
		return nil
	}
	if houses == 0 {
		return errRule("hotel needs a house first")
	}
	if p.buildingCount(color, NameHotel) >= houses {
		return errRule("set already has a hotel")
	}
	return nil
}

// PassGo discards the card and draws two.
func (g *Game) PassGo(playerID string, cardID int) ([]*Card, error) {
	p, err := g.checkTurn(playerID)
	if err != nil {
		return nil, err
	}
	c := p.HandCard(cardID)
	if c == nil {
		return nil, errRule("card not in hand")
	}
	if !c.IsAction(NamePassGo) {
		return nil, errRule("not a Pass Go card")
	}
	p.removeFromHand(c)
	g.deck.Discard(c)
	drawn := p.Draw(g.deck, 2)
	g.commit(p, 1)
	return drawn, nil
}

// ReassignWild retags a wild property already on the table. Free: no
// action slot is consumed, but only on the owner's turn.
func (g *Game) ReassignWild(playerID string, cardID int, color Color) error {
	p, err := g.checkTurn(playerID)
	if err != nil {
		return err
	}
	from, c := p.PropertyCard(cardID)
	if c == nil {
		return errRule("card not on your table")
	}
	if !c.IsProperty() || !c.Wild {
		return errRule("only wild properties can be reassigned")
	}
	if !ValidColor(color) || !c.AllowsColor(color) {
		return errRule("card cannot be played as " + string(color))
	}
	if from == color {
		return nil
	}
	p.removeProperty(from, c)
	p.addProperty(c, color)
	p.upkeep(from)
	p.upkeep(color)
	g.checkWin(p)
	return nil
}
