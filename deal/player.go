package deal

// Player holds one seat's cards. All mutation happens through Game
// methods; Player methods assume the caller already validated the play.
type Player struct {
	ID   string
	Name string

	Hand []*Card
	Bank []*Card

	// Properties groups table cards by the color they currently count
	// toward. House and Hotel cards sit inside the group they augment.
	Properties map[Color][]*Card
}

func NewPlayer(id, name string) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		Properties: make(map[Color][]*Card),
	}
}

func (p *Player) Draw(d *Deck, n int) []*Card {
	drawn := d.Draw(n)
	p.Hand = append(p.Hand, drawn...)
	return drawn
}

func (p *Player) HandCard(id int) *Card {
	for _, c := range p.Hand {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (p *Player) removeFromHand(target *Card) {
	for i, c := range p.Hand {
		if c == target {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return
		}
	}
}

func (p *Player) bankCard(id int) *Card {
	for _, c := range p.Bank {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (p *Player) removeFromBank(target *Card) {
	for i, c := range p.Bank {
		if c == target {
			p.Bank = append(p.Bank[:i], p.Bank[i+1:]...)
			return
		}
	}
}

// PropertyCard locates a table card by id and the color group holding
// it. House and Hotel cards are found too.
func (p *Player) PropertyCard(id int) (Color, *Card) {
	for color, group := range p.Properties {
		for _, c := range group {
			if c.ID == id {
				return color, c
			}
		}
	}
	return "", nil
}

func (p *Player) addToBank(c *Card) {
	p.Bank = append(p.Bank, c)
}

// addProperty appends a card to a color group, retagging wilds.
func (p *Player) addProperty(c *Card, color Color) {
	if c.IsProperty() {
		c.CurrentColor = color
	}
	p.Properties[color] = append(p.Properties[color], c)
}

func (p *Player) removeProperty(color Color, target *Card) {
	group := p.Properties[color]
	for i, c := range group {
		if c == target {
			group = append(group[:i], group[i+1:]...)
			break
		}
	}
	if len(group) == 0 {
		delete(p.Properties, color)
	} else {
		p.Properties[color] = group
	}
}

// propertyCount counts property cards in a group, excluding buildings.
func (p *Player) propertyCount(color Color) int {
	n := 0
	for _, c := range p.Properties[color] {
		if c.IsProperty() {
			n++
		}
	}
	return n
}

func (p *Player) buildingCount(color Color, name string) int {
	n := 0
	for _, c := range p.Properties[color] {
		if c.IsAction(name) {
			n++
		}
	}
	return n
}

// completeSets is how many full sets the color group currently forms.
// Extra cards of one color can stack into a second set (four blacks
// plus two wilds is one full set plus spares, six is two sets).
func (p *Player) completeSets(color Color) int {
	size := FullSetSize(color)
	if size == 0 {
		return 0
	}
	return p.propertyCount(color) / size
}

// IsCompleteSet reports whether the group holds at least one full set.
func (p *Player) IsCompleteSet(color Color) bool {
	return p.completeSets(color) > 0
}

// HasWon checks the win condition: full sets in three or more distinct
// colors.
func (p *Player) HasWon() bool {
	won := 0
	for color := range p.Properties {
		if p.IsCompleteSet(color) {
			won++
		}
	}
	return won >= 3
}

// upkeep evicts buildings a group can no longer support. Houses beyond
// the number of complete sets, then Hotels beyond the number of Houses,
// move to the owner's bank at face value.
func (p *Player) upkeep(color Color) {
	complete := p.completeSets(color)
	for p.buildingCount(color, NameHouse) > complete {
		p.evictBuilding(color, NameHouse)
	}
	for p.buildingCount(color, NameHotel) > p.buildingCount(color, NameHouse) {
		p.evictBuilding(color, NameHotel)
	}
	if len(p.Properties[color]) == 0 {
		delete(p.Properties, color)
	}
}

func (p *Player) evictBuilding(color Color, name string) {
	group := p.Properties[color]
	for i := len(group) - 1; i >= 0; i-- {
		if group[i].IsAction(name) {
			c := group[i]
			p.removeProperty(color, c)
			p.addToBank(c)
			return
		}
	}
}

// totalWealth is the face value of everything the player could pay
// with: bank plus table, buildings included.
func (p *Player) totalWealth() int {
	total := 0
	for _, c := range p.Bank {
		total += c.Value
	}
	for _, group := range p.Properties {
		for _, c := range group {
			total += c.Value
		}
	}
	return total
}

// rentFor computes the rent this player can charge for one of their
// color groups: ladder by property count (capped at the full set) plus
// 3 per House and 4 per Hotel.
func (p *Player) rentFor(color Color) int {
	count := p.propertyCount(color)
	if count == 0 {
		return 0
	}
	ladder := RentLadder(color)
	if count > len(ladder) {
		count = len(ladder)
	}
	rent := ladder[count-1]
	rent += 3 * p.buildingCount(color, NameHouse)
	rent += 4 * p.buildingCount(color, NameHotel)
	return rent
}
