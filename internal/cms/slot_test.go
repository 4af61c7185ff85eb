package cms

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// gatedLoad blocks every load until its id is released.
type gatedLoad struct {
	mu      sync.Mutex
	started map[string]chan struct{}
	release map[string]chan struct{}
}

func newGatedLoad(ids ...string) *gatedLoad {
	g := &gatedLoad{started: map[string]chan struct{}{}, release: map[string]chan struct{}{}}
	for _, id := range ids {
		g.started[id] = make(chan struct{})
		g.release[id] = make(chan struct{})
	}
	return g
}

func (g *gatedLoad) load(_ context.Context, id string) []string {
	g.mu.Lock()
	started, release := g.started[id], g.release[id]
	g.mu.Unlock()
	close(started)
	<-release
	return []string{"live:" + id}
}

func TestSlotExposesInitialUntilCommit(t *testing.T) {
	g := newGatedLoad("a")
	s := NewSlot([]string{"fallback"}, g.load)

	done := make(chan bool)
	go func() { done <- s.Load(context.Background(), "a") }()

	<-g.started["a"]
	assert.Equal(t, []string{"fallback"}, s.Value())

	close(g.release["a"])
	assert.True(t, <-done)
	assert.Equal(t, []string{"live:a"}, s.Value())
}

func TestSlotDiscardsResultAfterClose(t *testing.T) {
	g := newGatedLoad("a")
	s := NewSlot([]string{"fallback"}, g.load)

	done := make(chan bool)
	go func() { done <- s.Load(context.Background(), "a") }()

	<-g.started["a"]
	s.Close()
	close(g.release["a"])

	assert.False(t, <-done)
	assert.Equal(t, []string{"fallback"}, s.Value())
	assert.False(t, s.Load(context.Background(), "a"), "closed slot must not load")
}

func TestSlotDiscardsSupersededLoad(t *testing.T) {
	g := newGatedLoad("old", "new")
	s := NewSlot([]string{"fallback"}, g.load)

	oldDone := make(chan bool)
	go func() { oldDone <- s.Load(context.Background(), "old") }()
	<-g.started["old"]

	newDone := make(chan bool)
	go func() { newDone <- s.Load(context.Background(), "new") }()
	<-g.started["new"]

	close(g.release["new"])
	assert.True(t, <-newDone)
	close(g.release["old"])
	assert.False(t, <-oldDone)

	assert.Equal(t, []string{"live:new"}, s.Value())
}

func TestSlotDiscardsCancelledLoad(t *testing.T) {
	s := NewSlot([]string{"fallback"}, func(ctx context.Context, id string) []string {
		return []string{"live"}
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, s.Load(ctx, "a"))
	assert.Equal(t, []string{"fallback"}, s.Value())
}

func TestSlotSetCollectionIDReloadsOnlyOnChange(t *testing.T) {
	var calls []string
	s := NewSlot(nil, func(ctx context.Context, id string) []string {
		calls = append(calls, id)
		return []string{id}
	})
	ctx := context.Background()

	assert.True(t, s.SetCollectionID(ctx, "a"))
	assert.False(t, s.SetCollectionID(ctx, "a"))
	assert.True(t, s.SetCollectionID(ctx, "b"))
	assert.True(t, s.SetCollectionID(ctx, "a"))

	assert.Equal(t, []string{"a", "b", "a"}, calls)
	assert.Equal(t, []string{"a"}, s.Value())
}
