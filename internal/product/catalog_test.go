package product

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// flakyStore lists keys that may not resolve, and can fail or stall per key.
type flakyStore struct {
	keys    []string
	docs    map[string]string
	failKey string
	delay   map[string]time.Duration

	mu       sync.Mutex
	inFlight int
	peak     int
}

func (s *flakyStore) Keys(ctx context.Context) ([]string, error) { return s.keys, nil }

func (s *flakyStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	s.mu.Lock()
	s.inFlight++
	if s.inFlight > s.peak {
		s.peak = s.inFlight
	}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}()

	if d := s.delay[key]; d > 0 {
		time.Sleep(d)
	}
	if key == s.failKey {
		return nil, errors.New("kv unavailable")
	}
	doc, ok := s.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return json.RawMessage(doc), nil
}

func TestCatalogAll_EmptyStoreReturnsEmptySlice(t *testing.T) {
	c := NewCatalog(NewMemory(), 4)
	got, err := c.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected non-nil empty slice, got %#v", got)
	}
	b, _ := json.Marshal(got)
	if string(b) != "[]" {
		t.Fatalf("encodes as %s, want []", b)
	}
}

func TestCatalogAll_KeepsKeyOrderAndDropsMissing(t *testing.T) {
	s := &flakyStore{
		keys: []string{"a", "b", "gone", "c"},
		docs: map[string]string{
			"a": `{"id":"a"}`,
			"b": `{"id":"b"}`,
			"c": `{"id":"c"}`,
		},
		// first key finishes last
		delay: map[string]time.Duration{"a": 30 * time.Millisecond},
	}
	c := NewCatalog(s, 4)

	got, err := c.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	want := []string{`{"id":"a"}`, `{"id":"b"}`, `{"id":"c"}`}
	if len(got) != len(want) {
		t.Fatalf("len=%d, want %d: %s", len(got), len(want), got)
	}
	for i := range want {
		if string(got[i]) != want[i] {
			t.Fatalf("idx %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCatalogAll_PropagatesStoreError(t *testing.T) {
	s := &flakyStore{
		keys:    []string{"a", "b"},
		docs:    map[string]string{"a": `{}`},
		failKey: "b",
	}
	_, err := NewCatalog(s, 2).All(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "kv unavailable" {
		t.Fatalf("error=%q, want the store message unchanged", err)
	}
}

func TestCatalog_NullDocumentIsNotFound(t *testing.T) {
	s := &flakyStore{
		keys: []string{"a", "n", "spaced"},
		docs: map[string]string{
			"a":      `{"id":"a"}`,
			"n":      `null`,
			"spaced": " null\n",
		},
	}
	c := NewCatalog(s, 2)

	got, err := c.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != 1 || string(got[0]) != `{"id":"a"}` {
		t.Fatalf("All=%s", got)
	}
	for _, k := range []string{"n", "spaced"} {
		if _, err := c.Get(context.Background(), k); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Get(%s) err=%v, want ErrNotFound", k, err)
		}
	}
}

func TestCatalogAll_RespectsConcurrencyLimit(t *testing.T) {
	s := &flakyStore{docs: map[string]string{}, delay: map[string]time.Duration{}}
	for _, k := range []string{"k1", "k2", "k3", "k4", "k5", "k6"} {
		s.keys = append(s.keys, k)
		s.docs[k] = `{}`
		s.delay[k] = 10 * time.Millisecond
	}
	if _, err := NewCatalog(s, 2).All(context.Background()); err != nil {
		t.Fatalf("All: %v", err)
	}
	if s.peak > 2 {
		t.Fatalf("peak concurrency=%d, limit 2", s.peak)
	}
}

func TestMemory_PutGetKeys(t *testing.T) {
	m := NewMemory()
	if err := m.Put("b", json.RawMessage(`{"name":"B"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := m.Put("a", json.RawMessage(`{"name":"A"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := m.Put("bad", json.RawMessage(`{nope`)); err == nil {
		t.Fatalf("invalid JSON must be rejected")
	}

	keys, _ := m.Keys(context.Background())
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("keys=%v", keys)
	}
	if _, err := m.Get(context.Background(), "zzz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadMemoryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	seed := `{"p2":{"id":"p2","name":"Mouse"},"p1":{"id":"p1","name":"Keyboard"}}`
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := LoadMemoryFile(path)
	if err != nil {
		t.Fatalf("LoadMemoryFile: %v", err)
	}
	doc, err := m.Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var p map[string]string
	_ = json.Unmarshal(doc, &p)
	if p["name"] != "Keyboard" {
		t.Fatalf("doc=%s", doc)
	}

	if _, err := LoadMemoryFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
