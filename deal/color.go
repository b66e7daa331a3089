package deal

// Color is a property color group. The wire uses the lowercase names
// verbatim, including the space in "light blue".
type Color string

const (
	Brown     Color = "brown"
	Mint      Color = "mint"
	LightBlue Color = "light blue"
	Pink      Color = "pink"
	Orange    Color = "orange"
	Red       Color = "red"
	Yellow    Color = "yellow"
	Green     Color = "green"
	Blue      Color = "blue"
	Black     Color = "black"
)

// AllColors in canonical order. Multicolor wilds and multicolor rent
// cards claim this full list.
var AllColors = []Color{Brown, Mint, LightBlue, Pink, Orange, Red, Yellow, Green, Blue, Black}

// rentLadders[c][n-1] is the rent owed for n properties of color c.
var rentLadders = map[Color][]int{
	Brown:     {1, 2},
	Mint:      {1, 2},
	LightBlue: {1, 2, 3},
	Pink:      {1, 2, 4},
	Orange:    {1, 3, 5},
	Red:       {2, 3, 6},
	Yellow:    {2, 4, 6},
	Green:     {2, 4, 7},
	Blue:      {3, 8},
	Black:     {1, 2, 3, 4},
}

// A color's full set holds exactly len(rentLadders[c]) property cards.
func FullSetSize(c Color) int { return len(rentLadders[c]) }

// RentLadder returns the rent ladder for a color. The returned slice is
// shared; callers must not mutate it.
func RentLadder(c Color) []int { return rentLadders[c] }

func ValidColor(c Color) bool {
	_, ok := rentLadders[c]
	return ok
}
