package deal

import (
	"encoding/json"
	"testing"
)

func TestStateSnapshot(t *testing.T) {
	g := rigGame(t, "a", "b")
	a := g.Player("a")
	giveHand(t, g, a, moneyOf(1))
	giveTable(t, g, a, Red, solidOf(Red))
	giveBank(t, g, a, moneyOf(5))

	s := g.State()
	if s.CurrentTurn == nil || *s.CurrentTurn != "a" {
		t.Fatalf("current turn %v, want a", s.CurrentTurn)
	}
	if s.Winner != nil {
		t.Fatalf("no winner expected")
	}
	if s.ActionsRemaining != 3 {
		t.Errorf("actions remaining %d, want 3", s.ActionsRemaining)
	}
	if len(s.Players) != 2 {
		t.Fatalf("players %d, want 2", len(s.Players))
	}
	if len(s.Players[0].Hand) != 1 || len(s.Players[0].Bank) != 1 {
		t.Errorf("player snapshot missing cards")
	}
}

func TestStateBeforeStartHasNoTurn(t *testing.T) {
	g := NewGame(1)
	g.AddPlayer("a", "a")
	s := g.State()
	if s.CurrentTurn != nil {
		t.Fatalf("expected nil current turn before start")
	}
}

func TestPropertyCardWireShape(t *testing.T) {
	g := rigGame(t, "a", "b")
	c := giveTable(t, g, g.Player("a"), Red, solidOf(Red))

	var got map[string]any
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["type"] != "property" {
		t.Errorf("type %v, want property", got["type"])
	}
	if got["currentColor"] != "red" {
		t.Errorf("currentColor %v, want red", got["currentColor"])
	}
	rent, ok := got["rent"].([]any)
	if !ok || len(rent) != FullSetSize(Red) {
		t.Errorf("rent ladder %v, want %d entries", got["rent"], FullSetSize(Red))
	}
	if got["isWild"] != false {
		t.Errorf("isWild %v, want false", got["isWild"])
	}
}

func TestTenColorWildMarshalsNullValue(t *testing.T) {
	g := rigGame(t, "a", "b")
	c := takeCard(t, g, func(c *Card) bool {
		return c.Wild && len(c.Colors) == len(AllColors)
	})

	var got map[string]any
	data, _ := json.Marshal(c)
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, present := got["value"]; !present || v != nil {
		t.Errorf("value %v, want explicit null", v)
	}
	if got["isWild"] != true {
		t.Errorf("isWild %v, want true", got["isWild"])
	}
}

func TestMoneyCardWireShape(t *testing.T) {
	g := rigGame(t, "a", "b")
	c := takeCard(t, g, moneyOf(10))

	var got map[string]any
	data, _ := json.Marshal(c)
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["type"] != "money" {
		t.Errorf("type %v, want money", got["type"])
	}
	if got["value"] != float64(10) {
		t.Errorf("value %v, want 10", got["value"])
	}
	if _, present := got["name"]; present {
		t.Errorf("money cards do not expose a name on the wire")
	}
}

func TestRentCardMarshalsAsAction(t *testing.T) {
	g := rigGame(t, "a", "b")
	c := takeCard(t, g, rentOf(Brown))

	var got map[string]any
	data, _ := json.Marshal(c)
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["type"] != "action" {
		t.Errorf("type %v, want action", got["type"])
	}
	colors, ok := got["rentColors"].([]any)
	if !ok || len(colors) != 2 {
		t.Errorf("rentColors %v, want two entries", got["rentColors"])
	}
}
