package product

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

// Memory is a map-backed Store. Keys come back sorted, like a KV listing.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]json.RawMessage
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string]json.RawMessage)}
}

// LoadMemoryFile seeds a Memory store from a JSON object of key -> document.
func LoadMemoryFile(path string) (*Memory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var docs map[string]json.RawMessage
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	m := NewMemory()
	for k, v := range docs {
		m.docs[k] = v
	}
	return m, nil
}

// Put stores doc under key. doc must be valid JSON.
func (m *Memory) Put(key string, doc json.RawMessage) error {
	if !json.Valid(doc) {
		return fmt.Errorf("product %s: invalid JSON document", key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make(json.RawMessage, len(doc))
	copy(cp, doc)
	m.docs[key] = cp
	return nil
}

func (m *Memory) Keys(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.docs))
	for k := range m.docs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

func (m *Memory) Get(ctx context.Context, key string) (json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return doc, nil
}
