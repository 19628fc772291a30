package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

const (
	MsgMissingFields = "Missing required fields: name, phone, address, items (array)"
	MsgEmptyCart     = "Cart is empty"
	MsgInvalidItem   = "Each item must have id and valid quantity (≥1)"
)

// ValidationError is a 400-class checkout rejection. Item is set only when a
// specific cart entry was at fault.
type ValidationError struct {
	Message string
	Item    any
	HasItem bool
}

func (e *ValidationError) Error() string { return e.Message }

// CheckoutRequest is a validated checkout body. Items are kept as decoded,
// so extra fields and number formatting survive the round trip.
type CheckoutRequest struct {
	Name    string
	Phone   string
	Address string
	Items   []any
}

var one = decimal.NewFromInt(1)

// ParseCheckout decodes and validates a checkout body, stopping at the first
// problem.
func ParseCheckout(body io.Reader) (*CheckoutRequest, *ValidationError) {
	var raw map[string]any
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil || raw == nil {
		return nil, &ValidationError{Message: MsgMissingFields}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &ValidationError{Message: MsgMissingFields}
	}

	name, okName := nonEmptyString(raw["name"])
	phone, okPhone := nonEmptyString(raw["phone"])
	address, okAddress := nonEmptyString(raw["address"])
	items, okItems := raw["items"].([]any)
	if !okName || !okPhone || !okAddress || !okItems {
		return nil, &ValidationError{Message: MsgMissingFields}
	}

	if len(items) == 0 {
		return nil, &ValidationError{Message: MsgEmptyCart}
	}

	for _, it := range items {
		if !validItem(it) {
			return nil, &ValidationError{Message: MsgInvalidItem, Item: it, HasItem: true}
		}
	}

	return &CheckoutRequest{Name: name, Phone: phone, Address: address, Items: items}, nil
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok && s != ""
}

func validItem(it any) bool {
	m, ok := it.(map[string]any)
	if !ok {
		return false
	}
	if !truthy(m["id"]) {
		return false
	}
	q, ok := quantity(m["quantity"])
	return ok && q.GreaterThanOrEqual(one)
}

func quantity(v any) (decimal.Decimal, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(string(n))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// truthy follows the loose rules clients expect for "has a value":
// null, false, "" and zero are empty; anything else counts.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		d, err := decimal.NewFromString(string(x))
		return err != nil || !d.IsZero()
	default:
		return true
	}
}

// ItemsJSON is the text stored in the items column.
func (r *CheckoutRequest) ItemsJSON() (string, error) {
	b, err := json.Marshal(r.Items)
	if err != nil {
		return "", fmt.Errorf("encode items: %w", err)
	}
	return string(b), nil
}

// ItemCount is the number of cart lines.
func (r *CheckoutRequest) ItemCount() int { return len(r.Items) }

// TotalItems sums every quantity exactly.
func (r *CheckoutRequest) TotalItems() json.Number {
	total := decimal.Zero
	for _, it := range r.Items {
		if m, ok := it.(map[string]any); ok {
			if q, ok := quantity(m["quantity"]); ok {
				total = total.Add(q)
			}
		}
	}
	return json.Number(total.String())
}

// ItemKey is the product key an item refers to.
func ItemKey(it any) string {
	m, ok := it.(map[string]any)
	if !ok {
		return ""
	}
	switch id := m["id"].(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	default:
		b, _ := json.Marshal(id)
		return string(b)
	}
}
