package cms

import (
	"context"
	"errors"
	"sync"
	"testing"

	"studio-site/internal/domain/content"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeSource struct {
	mu    sync.Mutex
	calls []string
	items map[string][]content.RawItem
	err   error
}

func (f *fakeSource) FetchCollection(_ context.Context, id string) ([]content.RawItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, id)
	if f.err != nil {
		return nil, f.err
	}
	return f.items[id], nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

var blogFallback = []content.BlogPost{{ID: "sample", Title: "Sample"}}

func TestCollectSampleDataNeverCallsNetwork(t *testing.T) {
	src := &fakeSource{items: map[string][]content.RawItem{"blog": {{ID: "a1"}}}}
	p := NewPipeline(src, Options{UseSampleData: true, Collections: map[content.Kind]string{content.KindBlogPosts: "blog"}})

	got := Collect(context.Background(), p, "blog", content.ToBlogPost, blogFallback)

	assert.Equal(t, blogFallback, got)
	assert.Zero(t, src.callCount())
}

func TestCollectUnsetIDReturnsFallback(t *testing.T) {
	src := &fakeSource{}
	p := NewPipeline(src, Options{})

	got := CollectKind(context.Background(), p, content.KindBlogPosts, content.ToBlogPost, blogFallback)

	assert.Equal(t, blogFallback, got)
	assert.Zero(t, src.callCount())
}

func TestCollectTransformsInOrder(t *testing.T) {
	src := &fakeSource{items: map[string][]content.RawItem{
		"blog": {
			{ID: "a1", FieldData: map[string]any{"title": "Hi"}},
			{ID: "b2", FieldData: map[string]any{"title": "Second", "category": "SPOTLIGHTS"}},
		},
	}}
	p := NewPipeline(src, Options{})

	got := Collect(context.Background(), p, "blog", content.ToBlogPost, blogFallback)

	want := []content.BlogPost{
		{ID: "a1", Slug: "a1", Category: "INDUSTRY NEWS", Title: "Hi"},
		{ID: "b2", Slug: "b2", Category: "SPOTLIGHTS", Title: "Second"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("collect mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"blog"}, src.calls)
}

func TestCollectFailureFallsBackAndLogs(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	src := &fakeSource{err: errors.New("network down")}
	p := NewPipeline(src, Options{Logger: zap.New(core)})

	got := Collect(context.Background(), p, "blog", content.ToBlogPost, blogFallback)

	assert.Equal(t, blogFallback, got)
	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "blog", entries[0].ContextMap()["collection_id"])
		assert.Equal(t, "network down", entries[0].ContextMap()["error"])
	}
}

func TestCollectEmptyResultFallsBack(t *testing.T) {
	src := &fakeSource{items: map[string][]content.RawItem{"blog": {}}}
	p := NewPipeline(src, Options{})

	got := Collect(context.Background(), p, "blog", content.ToBlogPost, blogFallback)

	assert.Equal(t, blogFallback, got)
	assert.Equal(t, 1, src.callCount())
}

func TestNewPipelineCopiesCollections(t *testing.T) {
	ids := map[content.Kind]string{content.KindLeaders: "leaders"}
	p := NewPipeline(nil, Options{Collections: ids})
	ids[content.KindLeaders] = "changed"

	assert.Equal(t, "leaders", p.CollectionID(content.KindLeaders))
}
