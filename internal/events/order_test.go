package events

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestOrderPlacedPayload(t *testing.T) {
	ev := NewOrderPlaced("ord_1_abcdefghi", "Ana", 2, json.Number("3.5"), 1700000000)
	if _, err := uuid.Parse(ev.EventID); err != nil {
		t.Fatalf("event_id no es uuid: %q", ev.EventID)
	}

	b, err := ev.Payload()
	if err != nil {
		t.Fatalf("Payload: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json inválido: %v", err)
	}
	if got["order_id"] != "ord_1_abcdefghi" || got["customer"] != "Ana" {
		t.Fatalf("payload=%s", b)
	}
	if got["item_count"] != float64(2) || got["total_items"] != 3.5 || got["created_at"] != float64(1700000000) {
		t.Fatalf("payload=%s", b)
	}
}

func TestNewOrderPlaced_UniqueEventIDs(t *testing.T) {
	a := NewOrderPlaced("o", "c", 1, "1", 1)
	b := NewOrderPlaced("o", "c", 1, "1", 1)
	if a.EventID == b.EventID {
		t.Fatalf("event ids repetidos: %s", a.EventID)
	}
}
