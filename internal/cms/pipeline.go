package cms

import (
	"context"
	"maps"
	"sync"

	"studio-site/internal/domain/content"

	"go.uber.org/zap"
)

// Pipeline fetches collections through a Source and substitutes fallback
// content whenever live data is disabled, unconfigured or unavailable.
type Pipeline struct {
	source    Source
	useSample bool
	log       *zap.Logger

	mu          sync.RWMutex
	collections map[content.Kind]string
}

type Options struct {
	// Collections maps kinds to collection ids. Missing kinds are served from
	// fallback content.
	Collections map[content.Kind]string
	// UseSampleData disables every network call.
	UseSampleData bool
	Logger        *zap.Logger
}

func NewPipeline(source Source, opts Options) *Pipeline {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		source:      source,
		collections: copyIDs(opts.Collections),
		useSample:   opts.UseSampleData,
		log:         log,
	}
}

// CollectionID returns the id configured for kind, "" when unset.
func (p *Pipeline) CollectionID(kind content.Kind) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.collections[kind]
}

// SetCollections replaces the kind to id mapping. Kinds missing from ids
// become unset.
func (p *Pipeline) SetCollections(ids map[content.Kind]string) {
	next := copyIDs(ids)
	p.mu.Lock()
	p.collections = next
	p.mu.Unlock()
}

func copyIDs(ids map[content.Kind]string) map[content.Kind]string {
	out := make(map[content.Kind]string, len(ids))
	maps.Copy(out, ids)
	return out
}

// Collect runs one fetch-transform-fallback pass. It never fails: every
// error is logged and answered with fallback. Items keep provider order.
func Collect[T any](ctx context.Context, p *Pipeline, collectionID string, transform func(content.RawItem) T, fallback []T) []T {
	if p.useSample || collectionID == "" || p.source == nil {
		return fallback
	}

	items, err := p.source.FetchCollection(ctx, collectionID)
	if err != nil {
		p.log.Warn("failed to fetch collection, using fallback",
			zap.String("collection_id", collectionID),
			zap.Error(err))
		return fallback
	}
	if len(items) == 0 {
		p.log.Info("collection is empty, using fallback", zap.String("collection_id", collectionID))
		return fallback
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, transform(item))
	}
	return out
}

// CollectKind is Collect for the id configured for kind.
func CollectKind[T any](ctx context.Context, p *Pipeline, kind content.Kind, transform func(content.RawItem) T, fallback []T) []T {
	return Collect(ctx, p, p.CollectionID(kind), transform, fallback)
}
