package room

import (
	"bytes"
	"encoding/json"
)

// cardRef is a client-side card reference. Clients send either a bare
// id or a card object; only the fields below matter server-side.
type cardRef struct {
	ID            int    `json:"id"`
	CurrentColor  string `json:"currentColor"`
	SelectedCards []int  `json:"selected_cards"`
}

func (r *cardRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] != '{' {
		return json.Unmarshal(data, &r.ID)
	}
	type plain cardRef
	return json.Unmarshal(data, (*plain)(r))
}

// clientMessage is the union of every inbound frame. Action selects
// which fields are meaningful.
type clientMessage struct {
	Action string `json:"action"`

	// establish_connection / player_ready
	PlayerID string `json:"player_id"`
	IsReady  bool   `json:"isReady"`

	// card plays
	Player            string    `json:"player"`
	Card              *cardRef  `json:"card"`
	TargetPlayer      string    `json:"targetPlayer"`
	RentAmount        int       `json:"rentAmount"`
	DoubleTheRentCard *cardRef  `json:"double_the_rent_card"`
	TargetProperty    *cardRef  `json:"target_property"`
	UserProperty      *cardRef  `json:"user_property"`
	TargetSet         []cardRef `json:"target_set"`
	TargetColor       string    `json:"target_color"`

	// rent_payment
	RecipientID string `json:"recipient_id"`

	// refusal chain
	RefusalPlayer   string `json:"playerId"`
	RefusalOpponent string `json:"opponentId"`
	PlayJustSayNo   bool   `json:"playJustSayNo"`
}

func parseClientMessage(data []byte) (clientMessage, error) {
	var msg clientMessage
	err := json.Unmarshal(data, &msg)
	return msg, err
}
