package cms

import (
	"context"
	"errors"
	"testing"

	"studio-site/internal/domain/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteStartsWithFallback(t *testing.T) {
	site := NewSite(NewPipeline(&fakeSource{}, Options{}))

	snap := site.Snapshot()
	fb := content.Fallback()
	assert.Equal(t, fb.BlogPosts, snap.BlogPosts)
	assert.Equal(t, fb.Leaders, snap.Leaders)
	assert.Equal(t, fb.ConnectFeatures, snap.ConnectFeatures)
}

func TestSiteRefreshLoadsConfiguredCollections(t *testing.T) {
	src := &fakeSource{items: map[string][]content.RawItem{
		"blog":    {{ID: "a1", FieldData: map[string]any{"title": "Hi"}}},
		"leaders": {{ID: "l2", FieldData: map[string]any{"name": "B", "order": float64(2)}}, {ID: "l1", FieldData: map[string]any{"name": "A", "order": float64(1)}}},
		"broken":  nil,
	}}
	p := NewPipeline(src, Options{Collections: map[content.Kind]string{
		content.KindBlogPosts: "blog",
		content.KindLeaders:   "leaders",
		content.KindPortfolio: "broken",
	}})
	site := NewSite(p)

	site.Refresh(context.Background())
	snap := site.Snapshot()

	require.Len(t, snap.BlogPosts, 1)
	assert.Equal(t, "a1", snap.BlogPosts[0].ID)
	require.Len(t, snap.Leaders, 2)
	assert.Equal(t, "l2", snap.Leaders[0].ID, "provider order is preserved")
	assert.Equal(t, content.Fallback().Portfolio, snap.Portfolio)
	assert.Equal(t, content.Fallback().Testimonials, snap.Testimonials)
	assert.Equal(t, 3, src.callCount(), "only configured kinds hit the network")
}

func TestSiteRefreshFailureKeepsFallback(t *testing.T) {
	src := &fakeSource{err: errors.New("proxy unreachable")}
	p := NewPipeline(src, Options{Collections: map[content.Kind]string{content.KindBlogPosts: "blog"}})
	site := NewSite(p)

	site.Refresh(context.Background())

	assert.Equal(t, content.Fallback().BlogPosts, site.Snapshot().BlogPosts)
}

func TestSiteRefreshKind(t *testing.T) {
	src := &fakeSource{items: map[string][]content.RawItem{
		"amenities": {{ID: "m1", FieldData: map[string]any{"name": "Wifi", "icon": "wifi"}}},
	}}
	p := NewPipeline(src, Options{Collections: map[content.Kind]string{content.KindStudioAmenities: "amenities"}})
	site := NewSite(p)

	require.True(t, site.RefreshKind(context.Background(), content.KindStudioAmenities))
	items, ok := site.Collection(content.KindStudioAmenities)
	require.True(t, ok)
	assert.Equal(t, []content.StudioAmenity{{ID: "m1", Name: "Wifi", Icon: "wifi"}}, items)

	assert.False(t, site.RefreshKind(context.Background(), content.Kind("nope")))
	_, ok = site.Collection(content.Kind("nope"))
	assert.False(t, ok)
}

func TestSiteSyncReloadsChangedIDsOnly(t *testing.T) {
	src := &fakeSource{items: map[string][]content.RawItem{
		"blog-v1": {{ID: "v1"}},
		"blog-v2": {{ID: "v2"}},
	}}
	site := NewSite(NewPipeline(src, Options{}))
	ctx := context.Background()

	site.Sync(ctx, map[content.Kind]string{content.KindBlogPosts: "blog-v1"})
	assert.Equal(t, "v1", site.Snapshot().BlogPosts[0].ID)
	first := src.callCount()

	site.Sync(ctx, map[content.Kind]string{content.KindBlogPosts: "blog-v1"})
	assert.Equal(t, first, src.callCount(), "unchanged ids are not refetched")

	site.Sync(ctx, map[content.Kind]string{content.KindBlogPosts: "blog-v2"})
	assert.Equal(t, "v2", site.Snapshot().BlogPosts[0].ID)
}

func TestSiteCloseDiscardsLoads(t *testing.T) {
	src := &fakeSource{items: map[string][]content.RawItem{"blog": {{ID: "a1"}}}}
	p := NewPipeline(src, Options{Collections: map[content.Kind]string{content.KindBlogPosts: "blog"}})
	site := NewSite(p)
	site.Close()

	site.Refresh(context.Background())

	assert.Equal(t, content.Fallback().BlogPosts, site.Snapshot().BlogPosts)
	assert.Zero(t, src.callCount())
}

func TestSiteRefreshUsesIDsFromSync(t *testing.T) {
	src := &fakeSource{items: map[string][]content.RawItem{
		"blog-v1": {{ID: "v1"}},
		"blog-v2": {{ID: "v2"}},
	}}
	p := NewPipeline(src, Options{Collections: map[content.Kind]string{content.KindBlogPosts: "blog-v1"}})
	site := NewSite(p)
	ctx := context.Background()

	site.Refresh(ctx)
	assert.Equal(t, "v1", site.Snapshot().BlogPosts[0].ID)

	site.Sync(ctx, map[content.Kind]string{content.KindBlogPosts: "blog-v2"})
	assert.Equal(t, "v2", site.Snapshot().BlogPosts[0].ID)
	assert.Equal(t, "blog-v2", p.CollectionID(content.KindBlogPosts))

	site.Refresh(ctx)
	assert.Equal(t, "v2", site.Snapshot().BlogPosts[0].ID)

	require.True(t, site.RefreshKind(ctx, content.KindBlogPosts))
	assert.Equal(t, "v2", site.Snapshot().BlogPosts[0].ID)
}

func TestSiteSyncUnsetsMissingKinds(t *testing.T) {
	src := &fakeSource{items: map[string][]content.RawItem{"leaders": {{ID: "l1"}}}}
	p := NewPipeline(src, Options{Collections: map[content.Kind]string{content.KindLeaders: "leaders"}})
	site := NewSite(p)
	ctx := context.Background()

	site.Refresh(ctx)
	require.Equal(t, "l1", site.Snapshot().Leaders[0].ID)

	site.Sync(ctx, map[content.Kind]string{})

	assert.Empty(t, p.CollectionID(content.KindLeaders))
	assert.Equal(t, content.Fallback().Leaders, site.Snapshot().Leaders)
}
