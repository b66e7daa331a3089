package deal

import "math/rand"

// Phase is the game's coarse state.
type Phase byte

const (
	PhaseLobby   Phase = 0
	PhaseActions Phase = 1
	PhaseRefusal Phase = 2
	PhasePayment Phase = 3
	PhaseOver    Phase = 4
)

var PhaseDictionary = map[Phase]string{
	PhaseLobby:   "lobby",
	PhaseActions: "actions",
	PhaseRefusal: "refusal",
	PhasePayment: "payment",
	PhaseOver:    "over",
}

const (
	MaxPlayers     = 4
	MinPlayers     = 2
	openingHand    = 5
	turnDraw       = 2
	emptyHandDraw  = 5
	actionsPerTurn = 3
)

// Game is the authoritative state of one match. It is not safe for
// concurrent use; the room actor serializes access.
type Game struct {
	deck    *Deck
	players []*Player
	turn    int
	actions int
	winner  *Player
	phase   Phase
	neg     *negotiation
	rng     *rand.Rand
}

// NewGame creates an empty game. The seed drives the shuffle and the
// turn-order randomization, so a fixed seed replays identically.
func NewGame(seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))
	return &Game{
		deck:  NewDeck(rng),
		phase: PhaseLobby,
		rng:   rng,
	}
}

// AddPlayer seats a player before the game starts.
func (g *Game) AddPlayer(id, name string) (*Player, error) {
	if g.phase != PhaseLobby {
		return nil, errRule("game already started")
	}
	if len(g.players) >= MaxPlayers {
		return nil, errRule("game is full")
	}
	if g.Player(id) != nil {
		return nil, errRule("player already seated")
	}
	p := NewPlayer(id, name)
	g.players = append(g.players, p)
	return p, nil
}

// RemovePlayer unseats a player. Only allowed before the game starts;
// once dealt, a seat's cards stay on the table.
func (g *Game) RemovePlayer(id string) bool {
	if g.phase != PhaseLobby {
		return false
	}
	for i, p := range g.players {
		if p.ID == id {
			g.players = append(g.players[:i], g.players[i+1:]...)
			return true
		}
	}
	return false
}

// Start shuffles the seating order, deals the opening hands and begins
// the first turn.
func (g *Game) Start() error {
	if g.phase != PhaseLobby {
		return errRule("game already started")
	}
	if len(g.players) < MinPlayers {
		return errRule("need at least 2 players")
	}
	g.rng.Shuffle(len(g.players), func(i, j int) {
		g.players[i], g.players[j] = g.players[j], g.players[i]
	})
	for _, p := range g.players {
		p.Draw(g.deck, openingHand)
	}
	g.turn = 0
	g.beginTurn()
	return nil
}

func (g *Game) beginTurn() {
	p := g.players[g.turn]
	g.actions = actionsPerTurn
	if len(p.Hand) == 0 {
		p.Draw(g.deck, emptyHandDraw)
	} else {
		p.Draw(g.deck, turnDraw)
	}
	g.phase = PhaseActions
}

func (g *Game) current() *Player { return g.players[g.turn] }

// Player finds a seated player by id, nil if absent.
func (g *Game) Player(id string) *Player {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (g *Game) Players() []*Player    { return g.players }
func (g *Game) Phase() Phase          { return g.phase }
func (g *Game) Started() bool         { return g.phase != PhaseLobby }
func (g *Game) Winner() *Player       { return g.winner }
func (g *Game) ActionsRemaining() int { return g.actions }
func (g *Game) DeckCount() int        { return g.deck.Count() }
func (g *Game) DiscardPile() []*Card  { return g.deck.DiscardPile() }

// CurrentTurn is the id of the player whose turn it is, empty before
// start.
func (g *Game) CurrentTurn() string {
	if g.phase == PhaseLobby || len(g.players) == 0 {
		return ""
	}
	return g.players[g.turn].ID
}

// checkTurn guards a normal card play by the current player.
func (g *Game) checkTurn(playerID string) (*Player, error) {
	switch g.phase {
	case PhaseLobby:
		return nil, ErrNotStarted
	case PhaseOver:
		return nil, ErrGameOver
	case PhaseRefusal, PhasePayment:
		return nil, errRule("an action is still being resolved")
	}
	p := g.Player(playerID)
	if p == nil {
		return nil, ErrUnknownPlayer
	}
	if p != g.current() {
		return nil, ErrOutOfTurn
	}
	return p, nil
}

// SkipTurn forfeits the rest of the current player's actions.
func (g *Game) SkipTurn(playerID string) error {
	if _, err := g.checkTurn(playerID); err != nil {
		return err
	}
	g.actions = 0
	g.advanceTurn()
	return nil
}

func (g *Game) advanceTurn() {
	g.turn = (g.turn + 1) % len(g.players)
	g.beginTurn()
}

// commit burns n action slots after a successful play and advances the
// turn when the budget is spent. Turn advance is deferred while a
// negotiation is open.
func (g *Game) commit(p *Player, n int) {
	g.actions -= n
	if g.checkWin(p) {
		return
	}
	if g.neg == nil && g.actions <= 0 {
		g.advanceTurn()
	}
}

func (g *Game) checkWin(p *Player) bool {
	if g.winner != nil {
		return true
	}
	if p.HasWon() {
		g.winner = p
		g.phase = PhaseOver
		return true
	}
	return false
}
