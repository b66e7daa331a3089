package deal

// Wire snapshot of the whole game, shaped exactly as clients consume
// it. Slices are fresh copies; the *Card values are shared, so callers
// must marshal before any further engine mutation.

type PlayerState struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Hand       []*Card           `json:"hand"`
	Properties map[Color][]*Card `json:"properties"`
	Bank       []*Card           `json:"bank"`
}

type State struct {
	DeckCount        int           `json:"deck_count"`
	Players          []PlayerState `json:"players"`
	DiscardPile      []*Card       `json:"discard_pile"`
	CurrentTurn      *string       `json:"current_turn"`
	Winner           *string       `json:"winner"`
	ActionsRemaining int           `json:"actions_remaining"`
}

func (g *Game) State() State {
	s := State{
		DeckCount:        g.deck.Count(),
		Players:          make([]PlayerState, 0, len(g.players)),
		DiscardPile:      append([]*Card(nil), g.deck.DiscardPile()...),
		ActionsRemaining: g.actions,
	}
	for _, p := range g.players {
		props := make(map[Color][]*Card, len(p.Properties))
		for color, group := range p.Properties {
			props[color] = append([]*Card(nil), group...)
		}
		s.Players = append(s.Players, PlayerState{
			ID:         p.ID,
			Name:       p.Name,
			Hand:       append([]*Card(nil), p.Hand...),
			Properties: props,
			Bank:       append([]*Card(nil), p.Bank...),
		})
	}
	if turn := g.CurrentTurn(); turn != "" {
		s.CurrentTurn = &turn
	}
	if g.winner != nil {
		id := g.winner.ID
		s.Winner = &id
	}
	return s
}
