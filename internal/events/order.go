// Package events announces completed checkouts to downstream consumers.
package events

import (
	"encoding/json"

	"github.com/google/uuid"
)

const OrderPlacedKey = "order.placed"

type OrderPlaced struct {
	EventID    string      `json:"event_id"`
	OrderID    string      `json:"order_id"`
	Customer   string      `json:"customer"`
	ItemCount  int         `json:"item_count"`
	TotalItems json.Number `json:"total_items"`
	CreatedAt  int64       `json:"created_at"`
}

// NewOrderPlaced stamps a fresh event id.
func NewOrderPlaced(orderID, customer string, itemCount int, totalItems json.Number, createdAt int64) OrderPlaced {
	return OrderPlaced{
		EventID:    uuid.NewString(),
		OrderID:    orderID,
		Customer:   customer,
		ItemCount:  itemCount,
		TotalItems: totalItems,
		CreatedAt:  createdAt,
	}
}

func (e OrderPlaced) Payload() ([]byte, error) {
	return json.Marshal(e)
}
