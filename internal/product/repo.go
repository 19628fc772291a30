// Package product reads product documents out of a key-value style store.
// Documents are opaque JSON; the only thing the package knows about them is
// their key.
package product

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Store is the product key-value binding.
type Store interface {
	// Keys lists every product key in store order.
	Keys(ctx context.Context) ([]string, error)
	// Get returns the raw JSON document for key, or ErrNotFound.
	Get(ctx context.Context, key string) (json.RawMessage, error)
}
