package deal

// Rent-family plays. Clients send the amount they computed; the engine
// recomputes every legal amount for the played card and rejects claims
// that match none of them.

// rentChoices lists the amounts the player could legally charge with
// this rent card, one per claimable color they own properties in.
func (g *Game) rentChoices(p *Player, rentCard *Card) []int {
	var out []int
	for _, color := range rentCard.Colors {
		if r := p.rentFor(color); r > 0 {
			out = append(out, r)
		}
	}
	return out
}

func validRentAmount(choices []int, amount, factor int) bool {
	for _, c := range choices {
		if c*factor == amount {
			return true
		}
	}
	return false
}

func (g *Game) rentCardFromHand(p *Player, cardID int, multicolor bool) (*Card, error) {
	c := p.HandCard(cardID)
	if c == nil {
		return nil, errRule("card not in hand")
	}
	if c.Kind != KindRent {
		return nil, errRule("not a rent card")
	}
	if multicolor != (len(c.Colors) == len(AllColors)) {
		if multicolor {
			return nil, errRule("not a multicolor rent card")
		}
		return nil, errRule("multicolor rent needs a single target")
	}
	return c, nil
}

// PlayRent charges every opponent with a two-color rent card.
func (g *Game) PlayRent(playerID string, cardID, amount int) (*Card, error) {
	p, err := g.checkTurn(playerID)
	if err != nil {
		return nil, err
	}
	c, err := g.rentCardFromHand(p, cardID, false)
	if err != nil {
		return nil, err
	}
	if !validRentAmount(g.rentChoices(p, c), amount, 1) {
		return nil, errRule("rent amount does not match your properties")
	}
	g.openDemand(&negotiation{
		kind:    DemandRent,
		actor:   p,
		card:    c,
		amount:  amount,
		targets: g.opponentsOf(p),
	}, 1, c)
	return c, nil
}

// PlayMulticolorRent charges one chosen opponent for any owned color.
func (g *Game) PlayMulticolorRent(playerID string, cardID, amount int, targetID string) (*Card, error) {
	p, err := g.checkTurn(playerID)
	if err != nil {
		return nil, err
	}
	c, err := g.rentCardFromHand(p, cardID, true)
	if err != nil {
		return nil, err
	}
	target := g.Player(targetID)
	if target == nil || target == p {
		return nil, errRule("invalid rent target")
	}
	if !validRentAmount(g.rentChoices(p, c), amount, 1) {
		return nil, errRule("rent amount does not match your properties")
	}
	g.openDemand(&negotiation{
		kind:    DemandRent,
		actor:   p,
		card:    c,
		amount:  amount,
		targets: []*Player{target},
	}, 1, c)
	return c, nil
}

// PlayDoubleTheRent plays a rent card and a Double The Rent together.
// The pair costs two action slots, so both must remain.
func (g *Game) PlayDoubleTheRent(playerID string, rentCardID, doubleCardID, amount int, targetID string) (*Card, error) {
	p, err := g.checkTurn(playerID)
	if err != nil {
		return nil, err
	}
	if g.actions < 2 {
		return nil, errRule("double the rent needs two remaining actions")
	}
	double := p.HandCard(doubleCardID)
	if double == nil || !double.IsAction(NameDoubleTheRent) {
		return nil, errRule("no Double The Rent card in hand")
	}
	rent := p.HandCard(rentCardID)
	if rent == nil || rent.Kind != KindRent {
		return nil, errRule("no rent card in hand")
	}

	multicolor := len(rent.Colors) == len(AllColors)
	var targets []*Player
	if multicolor {
		target := g.Player(targetID)
		if target == nil || target == p {
			return nil, errRule("invalid rent target")
		}
		targets = []*Player{target}
	} else {
		targets = g.opponentsOf(p)
	}
	if !validRentAmount(g.rentChoices(p, rent), amount, 2) {
		return nil, errRule("rent amount does not match your properties")
	}
	g.openDemand(&negotiation{
		kind:    DemandRent,
		actor:   p,
		card:    rent,
		amount:  amount,
		doubled: true,
		targets: targets,
	}, 2, rent, double)
	return rent, nil
}

// PlayDebtCollector demands 5M from one opponent.
func (g *Game) PlayDebtCollector(playerID string, cardID int, targetID string) (*Card, error) {
	p, err := g.checkTurn(playerID)
	if err != nil {
		return nil, err
	}
	c := p.HandCard(cardID)
	if c == nil || !c.IsAction(NameDebtCollector) {
		return nil, errRule("no Debt Collector card in hand")
	}
	target := g.Player(targetID)
	if target == nil || target == p {
		return nil, errRule("invalid target")
	}
	g.openDemand(&negotiation{
		kind:    DemandDebt,
		actor:   p,
		card:    c,
		amount:  5,
		targets: []*Player{target},
	}, 1, c)
	return c, nil
}

// PlayBirthday demands 2M from every opponent.
func (g *Game) PlayBirthday(playerID string, cardID int) (*Card, error) {
	p, err := g.checkTurn(playerID)
	if err != nil {
		return nil, err
	}
	c := p.HandCard(cardID)
	if c == nil || !c.IsAction(NameItsYourBirthday) {
		return nil, errRule("no It's Your Birthday card in hand")
	}
	g.openDemand(&negotiation{
		kind:    DemandBirthday,
		actor:   p,
		card:    c,
		amount:  2,
		targets: g.opponentsOf(p),
	}, 1, c)
	return c, nil
}
