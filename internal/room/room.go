package room

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Aditya130805/MonopolyDeal/deal"
	"github.com/Aditya130805/MonopolyDeal/internal/directory"
	"github.com/Aditya130805/MonopolyDeal/internal/users"
)

// Conn is the transport handle the gateway registers with a room.
type Conn interface {
	ID() string
	Send(data []byte)
	Close()
}

var ErrRoomClosed = errors.New("room closed")

const idleRoomTTL = 10 * time.Minute

type client struct {
	conn     Conn
	playerID string
	name     string
	ready    bool
}

type eventType int

const (
	eventMessage eventType = iota
	eventDisconnect
	eventStop
)

type event struct {
	typ  eventType
	conn Conn
	data []byte
	resp chan error
}

// demandMeta is presentation state for the in-flight demand: the card
// shown in prompts and the rent_type label. The engine stays the
// authority on the negotiation itself.
type demandMeta struct {
	card     *deal.Card
	action   string
	rentType string
	amount   int
}

// Room is the per-room actor. One goroutine owns all state; the
// gateway feeds it through Submit/Disconnect.
type Room struct {
	Code string

	game    *deal.Game
	started bool

	clients map[string]*client // conn id -> client
	members map[string]*client // admitted player id -> client
	order   []string           // admission order of player ids

	lastState  map[string]json.RawMessage
	demand     *demandMeta
	emptySince time.Time

	events   chan event
	done     chan struct{}
	closed   bool
	stopOnce sync.Once

	log       *zap.Logger
	directory directory.Service
	users     users.Service
	onEmpty   func(code string)
	seed      func() int64
}

func New(code string, dir directory.Service, userSvc users.Service, log *zap.Logger, onEmpty func(code string)) *Room {
	r := &Room{
		Code:       code,
		clients:    make(map[string]*client),
		members:    make(map[string]*client),
		emptySince: time.Now(),
		events:     make(chan event, 256),
		done:       make(chan struct{}),
		log:        log.Named("room").With(zap.String("room", code)),
		directory:  dir,
		users:      userSvc,
		onEmpty:    onEmpty,
		seed:       func() int64 { return time.Now().UnixNano() },
	}
	go r.run()
	r.log.Info("room actor started")
	return r
}

// Submit queues an inbound frame and waits for the actor to process
// it. The returned error is the handler's verdict; protocol-level
// rejections are sent to the client directly and return nil here.
func (r *Room) Submit(conn Conn, data []byte) error {
	resp := make(chan error, 1)
	select {
	case r.events <- event{typ: eventMessage, conn: conn, data: data, resp: resp}:
	case <-r.done:
		return ErrRoomClosed
	}
	select {
	case err := <-resp:
		return err
	case <-r.done:
		return ErrRoomClosed
	}
}

// Disconnect tells the actor a connection went away. Fire and forget.
func (r *Room) Disconnect(conn Conn) {
	select {
	case r.events <- event{typ: eventDisconnect, conn: conn}:
	case <-r.done:
	}
}

func (r *Room) Stop() {
	select {
	case r.events <- event{typ: eventStop}:
	case <-r.done:
	}
}

func (r *Room) run() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case e := <-r.events:
			err := r.handleEvent(e)
			if e.resp != nil {
				e.resp <- err
			}
		case <-ticker.C:
			r.tick()
		case <-r.done:
			r.log.Info("room actor stopped")
			return
		}
	}
}

func (r *Room) handleEvent(e event) error {
	if r.closed && e.typ != eventStop {
		return ErrRoomClosed
	}
	switch e.typ {
	case eventMessage:
		return r.handleMessage(e.conn, e.data)
	case eventDisconnect:
		r.handleDisconnect(e.conn)
		return nil
	case eventStop:
		r.stop()
		return nil
	default:
		return fmt.Errorf("unknown event type: %d", e.typ)
	}
}

func (r *Room) tick() {
	if len(r.clients) > 0 || r.emptySince.IsZero() {
		return
	}
	if time.Since(r.emptySince) < idleRoomTTL {
		return
	}
	r.log.Info("reaping idle room")
	if len(r.members) == 0 {
		_ = r.directory.Delete(r.Code)
	}
	r.stop()
}

func (r *Room) stop() {
	r.stopOnce.Do(func() {
		r.closed = true
		close(r.done)
		for _, c := range r.clients {
			c.conn.Close()
		}
		if r.onEmpty != nil {
			r.onEmpty(r.Code)
		}
	})
}

func (r *Room) handleMessage(conn Conn, data []byte) error {
	msg, err := parseClientMessage(data)
	if err != nil {
		r.sendTo(conn, rejectionEvent{Type: "rejection", Data: "invalid message"})
		return nil
	}

	if msg.Action == "establish_connection" {
		return r.handleEstablish(conn, msg.PlayerID)
	}

	c := r.clients[conn.ID()]
	if c == nil || c.playerID == "" {
		r.sendTo(conn, rejectionEvent{Type: "rejection", Data: "connection not established"})
		return nil
	}
	// Clients only act as themselves.
	if msg.Player != "" && msg.Player != c.playerID {
		r.sendTo(conn, rejectionEvent{Type: "rejection", Data: "player id mismatch"})
		return nil
	}

	switch msg.Action {
	case "player_ready":
		c.ready = msg.IsReady
		r.syncDirectory()
		r.broadcastRoomUpdate()
		return nil
	case "start_game":
		return r.handleStartGame(c)
	case "initial_game_state":
		if r.game != nil {
			r.sendTo(conn, r.buildGameUpdate(true, false))
		}
		return nil
	case "refusal_choice":
		// Overlay data is client-defined; rebroadcast as-is.
		r.rebroadcast(data, "refusal_choice")
		return nil
	case "refusal_response":
		return r.handleRefusalResponse(c, msg)
	case "rent_payment":
		return r.handleRentPayment(c, msg)
	case "rent_request":
		r.resendRentRequest(conn)
		return nil
	case "rent_paid":
		// Client-side ack, nothing to do.
		return nil
	case "skip_turn":
		if r.game == nil {
			r.reject(c, errors.New("game has not started"))
			return nil
		}
		if err := r.game.SkipTurn(c.playerID); err != nil {
			r.reject(c, err)
			return nil
		}
		r.broadcastGameState()
		return nil
	default:
		return r.handleCardPlay(c, msg)
	}
}

func (r *Room) handleEstablish(conn Conn, playerID string) error {
	if existing := r.clients[conn.ID()]; existing != nil && existing.playerID != "" {
		r.sendTo(conn, rejectionEvent{Type: "rejection", Data: "Connection already established"})
		return nil
	}

	user, err := r.users.Get(playerID)
	if err != nil {
		r.rejectAndClose(conn, "User does not exist")
		return nil
	}
	if r.started {
		r.rejectAndClose(conn, "Game has already started")
		return nil
	}
	if _, dup := r.members[playerID]; dup {
		r.rejectAndClose(conn, "Player already in room")
		return nil
	}
	if len(r.members) >= directory.DefaultMaxPlayers {
		r.rejectAndClose(conn, "Room is full")
		return nil
	}

	c := &client{conn: conn, playerID: playerID, name: user.Username}
	r.clients[conn.ID()] = c
	r.members[playerID] = c
	r.order = append(r.order, playerID)
	r.emptySince = time.Time{}
	r.syncDirectory()
	r.log.Info("player admitted", zap.String("player", playerID), zap.String("name", user.Username))
	r.broadcastRoomUpdate()
	return nil
}

func (r *Room) rejectAndClose(conn Conn, reason string) {
	r.log.Info("rejecting connection", zap.String("reason", reason))
	r.sendTo(conn, rejectionEvent{Type: "rejection", Data: reason})
	delete(r.clients, conn.ID())
	conn.Close()
}

func (r *Room) handleStartGame(c *client) error {
	if r.started {
		r.reject(c, errors.New("game already started"))
		return nil
	}
	if len(r.members) < deal.MinPlayers {
		r.reject(c, errors.New("need at least 2 players to start"))
		return nil
	}

	g := deal.NewGame(r.seed())
	for _, id := range r.order {
		member := r.members[id]
		if _, err := g.AddPlayer(member.playerID, member.name); err != nil {
			r.reject(c, err)
			return nil
		}
	}
	if err := g.Start(); err != nil {
		r.reject(c, err)
		return nil
	}
	r.game = g
	r.started = true
	r.lastState = nil
	if err := r.directory.SetStarted(r.Code, true); err != nil {
		r.log.Warn("directory update failed", zap.Error(err))
	}
	r.log.Info("game started", zap.Int("players", len(r.members)))

	r.broadcast(gameStartedEvent{Type: "game_started", Message: "The game has started!"})
	r.broadcastGameState()
	return nil
}

func (r *Room) handleDisconnect(conn Conn) {
	c, ok := r.clients[conn.ID()]
	delete(r.clients, conn.ID())
	if !ok {
		if len(r.clients) == 0 && r.emptySince.IsZero() {
			r.emptySince = time.Now()
		}
		return
	}

	if c.playerID != "" {
		delete(r.members, c.playerID)
		for i, id := range r.order {
			if id == c.playerID {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
		r.log.Info("player disconnected", zap.String("player", c.playerID))
		r.syncDirectory()
		if r.started {
			r.broadcast(playerDisconnectedEvent{
				Type:       "player_disconnected",
				PlayerID:   c.playerID,
				PlayerName: c.name,
			})
		} else {
			r.broadcastRoomUpdate()
		}
		if len(r.members) == 0 {
			_ = r.directory.Delete(r.Code)
			r.log.Info("room empty, shutting down")
			r.stop()
			return
		}
	}
	if len(r.clients) == 0 {
		r.emptySince = time.Now()
	}
}

// reject sends an engine or protocol error back to one client only.
func (r *Room) reject(c *client, err error) {
	r.sendTo(c.conn, rejectionEvent{Type: "rejection", Data: err.Error()})
}

func (r *Room) sendTo(conn Conn, v any) {
	if data := marshalEvent(v); data != nil {
		conn.Send(data)
	}
}

func (r *Room) broadcast(v any) {
	data := marshalEvent(v)
	if data == nil {
		return
	}
	for _, c := range r.clients {
		c.conn.Send(data)
	}
}

// rebroadcast forwards a client frame to the whole room under the
// given type.
func (r *Room) rebroadcast(data []byte, typ string) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}
	delete(payload, "action")
	payload["type"] = typ
	r.broadcast(payload)
}

// syncDirectory pushes the current roster into the directory record so
// the REST surface reflects seats and ready flags.
func (r *Room) syncDirectory() {
	roster := make([]directory.RosterPlayer, 0, len(r.order))
	for _, id := range r.order {
		member := r.members[id]
		roster = append(roster, directory.RosterPlayer{ID: member.playerID, Name: member.name, Ready: member.ready})
	}
	if err := r.directory.SetRoster(r.Code, roster); err != nil {
		r.log.Warn("directory update failed", zap.Error(err))
	}
}

func (r *Room) broadcastRoomUpdate() {
	roster := make([]rosterEntry, 0, len(r.order))
	for _, id := range r.order {
		member := r.members[id]
		roster = append(roster, rosterEntry{ID: member.playerID, Name: member.name, IsReady: member.ready})
	}
	r.broadcast(roomUpdateEvent{
		Type:        "room_update",
		ID:          r.Code,
		PlayerCount: len(r.members),
		MaxPlayers:  directory.DefaultMaxPlayers,
		HasStarted:  r.started,
		Players:     roster,
	})
}

// stateFields marshals each top-level field of the wire state
// separately so the diff can compare them byte-wise.
func (r *Room) stateFields() map[string]json.RawMessage {
	state := r.game.State()
	fields := make(map[string]json.RawMessage, 6)
	put := func(key string, v any) {
		data, err := json.Marshal(v)
		if err != nil {
			data = []byte("null")
		}
		fields[key] = data
	}
	put("deck_count", state.DeckCount)
	put("players", state.Players)
	put("discard_pile", state.DiscardPile)
	put("current_turn", state.CurrentTurn)
	put("winner", state.Winner)
	put("actions_remaining", state.ActionsRemaining)
	return fields
}

// buildGameUpdate assembles a game_update frame. Diff updates carry
// only the top-level fields whose serialized form changed since the
// last broadcast; advance moves the baseline forward.
func (r *Room) buildGameUpdate(full, advance bool) gameUpdateEvent {
	fields := r.stateFields()
	state := fields
	if !full && r.lastState != nil {
		state = make(map[string]json.RawMessage)
		for key, value := range fields {
			if prev, ok := r.lastState[key]; !ok || string(prev) != string(value) {
				state[key] = value
			}
		}
	} else {
		full = true
	}
	if advance {
		r.lastState = fields
	}
	return gameUpdateEvent{Type: "game_update", IsFullState: full, State: state}
}

func (r *Room) broadcastGameState() {
	full := r.lastState == nil
	r.broadcast(r.buildGameUpdate(full, true))
}
