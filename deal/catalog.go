package deal

import "fmt"

// The canonical deck. Composition is fixed; ids are assigned densely in
// catalog order before the shuffle so deterministic seeds reproduce
// identical games.

type propertySpec struct {
	name  string
	color Color
	value int
}

var solidProperties = []propertySpec{
	{"Mediterranean Avenue", Brown, 1},
	{"Baltic Avenue", Brown, 1},

	{"Water Works", Mint, 2},
	{"Electric Company", Mint, 2},

	{"Connecticut Avenue", LightBlue, 1},
	{"Vermont Avenue", LightBlue, 1},
	{"Oriental Avenue", LightBlue, 1},

	{"St. Charles Place", Pink, 2},
	{"States Avenue", Pink, 2},
	{"Virginia Avenue", Pink, 2},

	{"Tennessee Avenue", Orange, 2},
	{"New York Avenue", Orange, 2},
	{"St. James Place", Orange, 2},

	{"Illinois Avenue", Red, 3},
	{"Indiana Avenue", Red, 3},
	{"Kentucky Avenue", Red, 3},

	{"Atlantic Avenue", Yellow, 3},
	{"Marvin Gardens", Yellow, 3},
	{"Ventnor Avenue", Yellow, 3},

	{"Pacific Avenue", Green, 4},
	{"North Carolina Avenue", Green, 4},
	{"Pennsylvania Avenue", Green, 4},

	{"Boardwalk", Blue, 4},
	{"Park Place", Blue, 4},

	{"Short Line", Black, 2},
	{"Pennsylvania Railroad", Black, 2},
	{"Reading Railroad", Black, 2},
	{"B. & O. Railroad", Black, 2},
}

type wildSpec struct {
	colors []Color
	value  int
	count  int
}

var wildProperties = []wildSpec{
	{[]Color{Blue, Green}, 4, 1},
	{[]Color{Red, Yellow}, 3, 2},
	{[]Color{Pink, Orange}, 2, 2},
	{[]Color{Black, Mint}, 2, 1},
	{[]Color{Black, LightBlue}, 4, 1},
	{[]Color{Black, Green}, 4, 1},
	{[]Color{Brown, LightBlue}, 1, 1},
	{AllColors, 0, 2},
}

type rentSpec struct {
	colors []Color
	count  int
}

var rentCards = []rentSpec{
	{AllColors, 3},
	{[]Color{Blue, Green}, 2},
	{[]Color{Mint, Black}, 2},
	{[]Color{Red, Yellow}, 2},
	{[]Color{Orange, Pink}, 2},
	{[]Color{Brown, LightBlue}, 2},
}

type actionSpec struct {
	name  string
	value int
	count int
}

var actionCards = []actionSpec{
	{NameDealBreaker, 5, 2},
	{NameDebtCollector, 3, 3},
	{NameDoubleTheRent, 1, 2},
	{NameJustSayNo, 4, 3},
	{NameSlyDeal, 3, 3},
	{NameItsYourBirthday, 2, 3},
	{NameHouse, 3, 3},
	{NameHotel, 4, 3},
	{NamePassGo, 1, 10},
	{NameForcedDeal, 3, 4},
}

var moneyCards = []struct {
	value int
	count int
}{
	{1, 6}, {2, 5}, {3, 3}, {4, 3}, {5, 2}, {10, 1},
}

// DeckSize is the number of cards in the canonical composition.
const DeckSize = 108

func catalog() []*Card {
	cards := make([]*Card, 0, DeckSize)
	nextID := 1
	add := func(c *Card) {
		c.ID = nextID
		nextID++
		cards = append(cards, c)
	}

	for _, spec := range solidProperties {
		add(&Card{
			Kind:         KindProperty,
			Name:         spec.name,
			Value:        spec.value,
			Colors:       []Color{spec.color},
			CurrentColor: spec.color,
		})
	}
	for _, spec := range wildProperties {
		name := "Wild Property"
		if len(spec.colors) == len(AllColors) {
			name = "Wild"
		}
		for i := 0; i < spec.count; i++ {
			add(&Card{
				Kind:         KindProperty,
				Name:         name,
				Value:        spec.value,
				Colors:       spec.colors,
				CurrentColor: spec.colors[0],
				Wild:         true,
			})
		}
	}
	for _, spec := range rentCards {
		name := NameRent
		if len(spec.colors) == len(AllColors) {
			name = NameMulticolorRent
		}
		value := 1
		if name == NameMulticolorRent {
			value = 3
		}
		for i := 0; i < spec.count; i++ {
			add(&Card{
				Kind:        KindRent,
				Name:        name,
				Value:       value,
				Colors:      spec.colors,
				Description: actionDescriptions[name],
			})
		}
	}
	for _, spec := range actionCards {
		for i := 0; i < spec.count; i++ {
			add(&Card{
				Kind:        KindAction,
				Name:        spec.name,
				Value:       spec.value,
				Description: actionDescriptions[spec.name],
			})
		}
	}
	for _, spec := range moneyCards {
		for i := 0; i < spec.count; i++ {
			add(&Card{Kind: KindMoney, Name: fmt.Sprintf("$%d Million", spec.value), Value: spec.value})
		}
	}
	return cards
}
