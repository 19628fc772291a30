package product

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"golang.org/x/sync/errgroup"
)

type Catalog struct {
	store         Store
	maxConcurrent int
}

func NewCatalog(store Store, maxConcurrent int) *Catalog {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}
	return &Catalog{store: store, maxConcurrent: maxConcurrent}
}

// All fetches every document listed by the store. Lookups run concurrently;
// the result keeps key order and silently drops keys that vanished between
// the listing and the fetch, or that hold null. Store errors come back
// unwrapped so callers can surface the store's own message.
func (c *Catalog) All(ctx context.Context) ([]json.RawMessage, error) {
	keys, err := c.store.Keys(ctx)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []json.RawMessage{}, nil
	}

	docs := make([]json.RawMessage, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)

	for i, key := range keys {
		g.Go(func() error {
			doc, err := c.Get(gctx, key)
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]json.RawMessage, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			out = append(out, d)
		}
	}
	return out, nil
}

// Get returns ErrNotFound for a missing key and for a key holding null.
func (c *Catalog) Get(ctx context.Context, key string) (json.RawMessage, error) {
	doc, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(bytes.TrimSpace(doc), []byte("null")) {
		return nil, ErrNotFound
	}
	return doc, nil
}
