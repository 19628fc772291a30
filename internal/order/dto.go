package order

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CheckoutItem documents the minimum shape of a cart line. Extra fields are
// stored untouched.
// swagger:model CheckoutItem
type CheckoutItem struct {
	ID       string `json:"id"       example:"p1"`
	Quantity int    `json:"quantity" example:"2"`
}

// CheckoutPayload is the body accepted by POST /checkout.
// swagger:model CheckoutPayload
type CheckoutPayload struct {
	Name    string         `json:"name"    example:"Ada Lovelace"`
	Phone   string         `json:"phone"   example:"+44 20 7946 0000"`
	Address string         `json:"address" example:"12 St James's Square, London"`
	Items   []CheckoutItem `json:"items"`
}

// swagger:model CheckoutSummary
type CheckoutSummary struct {
	Customer   string      `json:"customer"   example:"Ada Lovelace"`
	ItemCount  int         `json:"itemCount"  example:"1"`
	TotalItems json.Number `json:"totalItems" swaggertype:"number" example:"2"`
}

// swagger:model CheckoutResponse
type CheckoutResponse struct {
	Success   bool            `json:"success"    example:"true"`
	OrderID   string          `json:"orderId"    example:"ord_1700000000000_k3j9x2m1q"`
	Message   string          `json:"message"    example:"Order placed successfully"`
	Timestamp int64           `json:"timestamp"  example:"1700000000"`
	CreatedAt string          `json:"created_at" example:"2023-11-14T22:13:20.000Z"`
	Summary   CheckoutSummary `json:"summary"`
}

// View is an order as returned by the read endpoints.
// swagger:model OrderView
type View struct {
	ID         string `json:"id"         example:"ord_1700000000000_k3j9x2m1q"`
	Name       string `json:"name"       example:"Ada Lovelace"`
	Phone      string `json:"phone"      example:"+44 20 7946 0000"`
	Address    string `json:"address"    example:"12 St James's Square, London"`
	Items      any    `json:"items"      swaggertype:"array,object"`
	CreatedAt  string `json:"created_at" example:"2023-11-14T22:13:20.000Z"`
	ParseError string `json:"parseError,omitempty"`
}

// DecodeItems parses a stored items column. Numbers keep their exact
// text.
func DecodeItems(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode items: trailing data")
	}
	return v, nil
}

// View renders o with its items decoded. On a decode failure the returned
// View still carries every other field.
func (o Order) View() (View, error) {
	v := View{
		ID:        o.ID,
		Name:      o.Name,
		Phone:     o.Phone,
		Address:   o.Address,
		Items:     []any{},
		CreatedAt: FormatUnix(o.CreatedAt),
	}
	items, err := DecodeItems(o.Items)
	if err != nil {
		return v, err
	}
	v.Items = items
	return v, nil
}
