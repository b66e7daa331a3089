package deal

import "encoding/json"

// CardKind discriminates the four card variants.
type CardKind byte

const (
	KindProperty CardKind = 1
	KindAction   CardKind = 2
	KindRent     CardKind = 3
	KindMoney    CardKind = 4
)

var CardKindDictionary = map[CardKind]string{
	KindProperty: "property",
	KindAction:   "action",
	KindRent:     "rent",
	KindMoney:    "money",
}

// Action card names as printed on the cards. Rent cards share the two
// fixed names below.
const (
	NameDealBreaker     = "Deal Breaker"
	NameDebtCollector   = "Debt Collector"
	NameDoubleTheRent   = "Double The Rent"
	NameJustSayNo       = "Just Say No"
	NameSlyDeal         = "Sly Deal"
	NameForcedDeal      = "Forced Deal"
	NameItsYourBirthday = "It's Your Birthday"
	NameHouse           = "House"
	NameHotel           = "Hotel"
	NamePassGo          = "Pass Go"
	NameRent            = "Rent"
	NameMulticolorRent  = "Multicolor Rent"
)

var actionDescriptions = map[string]string{
	NameDealBreaker:     "Steal a complete property set from any player",
	NameForcedDeal:      "Swap any property with another player",
	NameSlyDeal:         "Steal a property card from any player",
	NameDebtCollector:   "Force any player to pay you 5M",
	NameDoubleTheRent:   "Use with a Rent card to double the rent value",
	NameItsYourBirthday: "All players must pay you 2M as a birthday gift",
	NamePassGo:          "Draw 2 extra cards from the deck",
	NameHouse:           "Add to a full property set to add 3M to the rent value",
	NameHotel:           "Add to a full property set with a house to add 4M to the rent value",
	NameJustSayNo:       "Cancel an action card played against you",
	NameRent:            "Collect rent from all players for any of the two colors",
	NameMulticolorRent:  "Collect rent from ONE player for any property",
}

// Card is created once at deck construction and thereafter only moves
// between the draw pile, the discard pile, hands, banks and property
// tables. The sole mutable field is CurrentColor (wild reassignment).
type Card struct {
	ID   int
	Kind CardKind
	Name string

	// Value is the bankable worth. Zero for the ten-color wild, which
	// cannot be banked.
	Value int

	// Colors holds the playable colors of a property card, or the
	// claimable colors of a rent card.
	Colors []Color

	// CurrentColor is the color a property currently counts toward.
	CurrentColor Color

	Wild        bool
	Description string
}

func (c *Card) IsProperty() bool { return c.Kind == KindProperty }
func (c *Card) IsMoney() bool    { return c.Kind == KindMoney }

func (c *Card) IsAction(name string) bool {
	return c.Kind == KindAction && c.Name == name
}

// IsBuilding reports whether the card is a House or Hotel, which live
// inside property groups once placed.
func (c *Card) IsBuilding() bool {
	return c.Kind == KindAction && (c.Name == NameHouse || c.Name == NameHotel)
}

// AllowsColor reports whether a property card may count toward color c.
func (c *Card) AllowsColor(color Color) bool {
	for _, allowed := range c.Colors {
		if allowed == color {
			return true
		}
	}
	return false
}

type propertyJSON struct {
	Type         string  `json:"type"`
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Color        []Color `json:"color"`
	CurrentColor Color   `json:"currentColor"`
	Value        *int    `json:"value"`
	Rent         []int   `json:"rent"`
	IsWild       bool    `json:"isWild"`
}

type actionJSON struct {
	Type        string  `json:"type"`
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Value       int     `json:"value"`
	Description string  `json:"description"`
	RentColors  []Color `json:"rentColors,omitempty"`
}

type moneyJSON struct {
	Type  string `json:"type"`
	ID    int    `json:"id"`
	Value int    `json:"value"`
}

// MarshalJSON emits the kind-specific wire shape. Rent cards serialize
// with type "action" plus a rentColors list, matching what clients
// expect; the ten-color wild serializes with a null value.
func (c *Card) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindProperty:
		var value *int
		if !c.Wild || len(c.Colors) < len(AllColors) {
			v := c.Value
			value = &v
		}
		return json.Marshal(propertyJSON{
			Type:         "property",
			ID:           c.ID,
			Name:         c.Name,
			Color:        c.Colors,
			CurrentColor: c.CurrentColor,
			Value:        value,
			Rent:         RentLadder(c.CurrentColor),
			IsWild:       c.Wild,
		})
	case KindMoney:
		return json.Marshal(moneyJSON{Type: "money", ID: c.ID, Value: c.Value})
	default:
		return json.Marshal(actionJSON{
			Type:        "action",
			ID:          c.ID,
			Name:        c.Name,
			Value:       c.Value,
			Description: c.Description,
			RentColors:  c.Colors,
		})
	}
}
