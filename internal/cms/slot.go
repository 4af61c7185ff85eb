package cms

import (
	"context"
	"sync"
)

// LoadFunc produces the value for a collection id.
type LoadFunc[T any] func(ctx context.Context, collectionID string) []T

// Slot holds the currently exposed value of one collection. The previous
// value stays visible while a load is in flight. A load only commits when
// the slot is still open, its context is live and no newer load has started.
type Slot[T any] struct {
	mu       sync.Mutex
	value    []T
	gen      uint64
	closed   bool
	loadFunc LoadFunc[T]

	// committedID and committedGen describe the load behind value.
	// committedGen is 0 until the first commit.
	committedID  string
	committedGen uint64
}

func NewSlot[T any](initial []T, load LoadFunc[T]) *Slot[T] {
	return &Slot[T]{value: initial, loadFunc: load}
}

func (s *Slot[T]) Value() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Load runs the load function for id and reports whether the result was
// committed.
func (s *Slot[T]) Load(ctx context.Context, id string) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	result := s.loadFunc(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.gen || ctx.Err() != nil {
		return false
	}
	s.value = result
	s.committedID = id
	s.committedGen = gen
	return true
}

// SetCollectionID loads unless the most recent load already committed the
// value for id.
func (s *Slot[T]) SetCollectionID(ctx context.Context, id string) bool {
	s.mu.Lock()
	same := s.committedGen != 0 && s.committedGen == s.gen && s.committedID == id
	s.mu.Unlock()
	if same {
		return false
	}
	return s.Load(ctx, id)
}

// Close tears the slot down; in-flight loads are discarded.
func (s *Slot[T]) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
