package room

import (
	"encoding/json"

	"github.com/Aditya130805/MonopolyDeal/deal"
)

// Outbound events. Each struct marshals to one websocket frame; the
// Type value is what clients switch on.

type rosterEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsReady bool   `json:"isReady"`
}

type roomUpdateEvent struct {
	Type        string        `json:"type"`
	ID          string        `json:"id"`
	PlayerCount int           `json:"player_count"`
	MaxPlayers  int           `json:"max_players"`
	HasStarted  bool          `json:"has_started"`
	Players     []rosterEntry `json:"players"`
}

type rejectionEvent struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

type gameStartedEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type gameUpdateEvent struct {
	Type        string                     `json:"type"`
	IsFullState bool                       `json:"is_full_state"`
	State       map[string]json.RawMessage `json:"state"`
}

type cardPlayedEvent struct {
	Type       string     `json:"type"`
	PlayerID   string     `json:"player_id"`
	Action     string     `json:"action"`
	ActionType string     `json:"action_type"`
	Card       *deal.Card `json:"card"`
}

// rent_pre_request announces a payment demand before the refusal
// chains run; rent_request binds one payer once their chain resolves.
type rentPreRequestEvent struct {
	Type        string   `json:"type"`
	Amount      int      `json:"amount"`
	RentType    string   `json:"rent_type"`
	RecipientID string   `json:"recipient_id"`
	PlayerIDs   []string `json:"player_ids"`
}

type rentRequestEvent struct {
	Type        string `json:"type"`
	Amount      int    `json:"amount"`
	RentType    string `json:"rent_type"`
	RecipientID string `json:"recipient_id"`
	PlayerID    string `json:"player_id"`
}

type rentPaidEvent struct {
	Type          string       `json:"type"`
	RecipientID   string       `json:"recipient_id"`
	PlayerID      string       `json:"player_id"`
	SelectedCards []*deal.Card `json:"selected_cards"`
	PlayerName    string       `json:"player_name"`
	RecipientName string       `json:"recipient_name"`
}

type propertyStolenEvent struct {
	Type       string     `json:"type"`
	PlayerID   string     `json:"player_id"`
	TargetID   string     `json:"target_id"`
	PlayerName string     `json:"player_name"`
	TargetName string     `json:"target_name"`
	Property   *deal.Card `json:"property"`
}

type propertySwapEvent struct {
	Type        string     `json:"type"`
	Property1   *deal.Card `json:"property1"`
	Property2   *deal.Card `json:"property2"`
	Player1ID   string     `json:"player1_id"`
	Player2ID   string     `json:"player2_id"`
	Player1Name string     `json:"player1_name"`
	Player2Name string     `json:"player2_name"`
}

type dealBreakerOverlayEvent struct {
	Type        string       `json:"type"`
	PlayerName  string       `json:"player_name"`
	TargetName  string       `json:"target_name"`
	Color       deal.Color   `json:"color"`
	PropertySet []*deal.Card `json:"property_set"`
}

// refusal_choice asks the decision holder whether to play Just Say No.
type refusalChoiceEvent struct {
	Type         string `json:"type"`
	PlayerID     string `json:"playerId"`
	PlayerName   string `json:"playerName"`
	OpponentID   string `json:"opponentId"`
	OpponentName string `json:"opponentName"`
	Demand       string `json:"demand"`
	Amount       int    `json:"amount,omitempty"`
	JustSayNos   int    `json:"justSayNoCount"`
}

type refusalResponseEvent struct {
	Type          string     `json:"type"`
	PlayJustSayNo bool       `json:"playJustSayNo"`
	PlayerID      string     `json:"playerId"`
	PlayerName    string     `json:"playerName"`
	OpponentID    string     `json:"opponentId"`
	OpponentName  string     `json:"opponentName"`
	Card          *deal.Card `json:"card,omitempty"`
}

type playerDisconnectedEvent struct {
	Type       string `json:"type"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

func marshalEvent(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}
