package cms

import (
	"context"

	"studio-site/internal/domain/content"

	"golang.org/x/sync/errgroup"
)

// Snapshot is the current content of every collection.
type Snapshot struct {
	BlogPosts          []content.BlogPost          `json:"blogPosts"`
	Portfolio          []content.PortfolioItem     `json:"portfolio"`
	DronePortfolio     []content.PortfolioItem     `json:"dronePortfolio"`
	Leaders            []content.Leader            `json:"leaders"`
	TourSlides         []content.TourSlide         `json:"tourSlides"`
	ClientLogos        []content.ClientLogo        `json:"clientLogos"`
	Testimonials       []content.Testimonial       `json:"testimonials"`
	HeroContent        []content.HeroContent       `json:"heroContent"`
	PageContent        []content.PageContent       `json:"pageContent"`
	PrivacyContent     []content.LegalContent      `json:"privacyContent"`
	TermsContent       []content.LegalContent      `json:"termsContent"`
	IndustrySolutions  []content.IndustrySolution  `json:"industrySolutions"`
	ProductionServices []content.ProductionService `json:"productionServices"`
	StudioAmenities    []content.StudioAmenity     `json:"studioAmenities"`
	ConnectFeatures    []content.ConnectFeature    `json:"connectFeatures"`
}

type collectionSlot interface {
	load(ctx context.Context, id string) bool
	sync(ctx context.Context, id string) bool
	current() any
	close()
}

type typedSlot[T any] struct {
	*Slot[T]
}

func (s typedSlot[T]) load(ctx context.Context, id string) bool { return s.Load(ctx, id) }
func (s typedSlot[T]) sync(ctx context.Context, id string) bool { return s.SetCollectionID(ctx, id) }
func (s typedSlot[T]) current() any                             { return s.Value() }
func (s typedSlot[T]) close()                                   { s.Close() }

// Site keeps one result slot per collection kind. Slots are independent:
// each is written only by its own loads.
type Site struct {
	pipeline *Pipeline
	slots    map[content.Kind]collectionSlot

	blogPosts          *Slot[content.BlogPost]
	portfolio          *Slot[content.PortfolioItem]
	dronePortfolio     *Slot[content.PortfolioItem]
	leaders            *Slot[content.Leader]
	tourSlides         *Slot[content.TourSlide]
	clientLogos        *Slot[content.ClientLogo]
	testimonials       *Slot[content.Testimonial]
	heroContent        *Slot[content.HeroContent]
	pageContent        *Slot[content.PageContent]
	privacyContent     *Slot[content.LegalContent]
	termsContent       *Slot[content.LegalContent]
	industrySolutions  *Slot[content.IndustrySolution]
	productionServices *Slot[content.ProductionService]
	studioAmenities    *Slot[content.StudioAmenity]
	connectFeatures    *Slot[content.ConnectFeature]
}

func newKindSlot[T any](p *Pipeline, transform func(content.RawItem) T, fallback []T) *Slot[T] {
	return NewSlot(fallback, func(ctx context.Context, id string) []T {
		return Collect(ctx, p, id, transform, fallback)
	})
}

// NewSite builds slots seeded with the bundled fallback content.
func NewSite(p *Pipeline) *Site {
	fb := content.Fallback()
	s := &Site{
		pipeline:           p,
		blogPosts:          newKindSlot(p, content.ToBlogPost, fb.BlogPosts),
		portfolio:          newKindSlot(p, content.ToPortfolioItem, fb.Portfolio),
		dronePortfolio:     newKindSlot(p, content.ToPortfolioItem, fb.DronePortfolio),
		leaders:            newKindSlot(p, content.ToLeader, fb.Leaders),
		tourSlides:         newKindSlot(p, content.ToTourSlide, fb.TourSlides),
		clientLogos:        newKindSlot(p, content.ToClientLogo, fb.ClientLogos),
		testimonials:       newKindSlot(p, content.ToTestimonial, fb.Testimonials),
		heroContent:        newKindSlot(p, content.ToHeroContent, fb.HeroContent),
		pageContent:        newKindSlot(p, content.ToPageContent, fb.PageContent),
		privacyContent:     newKindSlot(p, content.ToLegalContent, fb.PrivacyContent),
		termsContent:       newKindSlot(p, content.ToLegalContent, fb.TermsContent),
		industrySolutions:  newKindSlot(p, content.ToIndustrySolution, fb.IndustrySolutions),
		productionServices: newKindSlot(p, content.ToProductionService, fb.ProductionServices),
		studioAmenities:    newKindSlot(p, content.ToStudioAmenity, fb.StudioAmenities),
		connectFeatures:    newKindSlot(p, content.ToConnectFeature, fb.ConnectFeatures),
	}
	s.slots = map[content.Kind]collectionSlot{
		content.KindBlogPosts:          typedSlot[content.BlogPost]{s.blogPosts},
		content.KindPortfolio:          typedSlot[content.PortfolioItem]{s.portfolio},
		content.KindDronePortfolio:     typedSlot[content.PortfolioItem]{s.dronePortfolio},
		content.KindLeaders:            typedSlot[content.Leader]{s.leaders},
		content.KindTourSlides:         typedSlot[content.TourSlide]{s.tourSlides},
		content.KindClientLogos:        typedSlot[content.ClientLogo]{s.clientLogos},
		content.KindTestimonials:       typedSlot[content.Testimonial]{s.testimonials},
		content.KindHeroContent:        typedSlot[content.HeroContent]{s.heroContent},
		content.KindPageContent:        typedSlot[content.PageContent]{s.pageContent},
		content.KindPrivacyContent:     typedSlot[content.LegalContent]{s.privacyContent},
		content.KindTermsContent:       typedSlot[content.LegalContent]{s.termsContent},
		content.KindIndustrySolutions:  typedSlot[content.IndustrySolution]{s.industrySolutions},
		content.KindProductionServices: typedSlot[content.ProductionService]{s.productionServices},
		content.KindStudioAmenities:    typedSlot[content.StudioAmenity]{s.studioAmenities},
		content.KindConnectFeatures:    typedSlot[content.ConnectFeature]{s.connectFeatures},
	}
	return s
}

// Refresh reloads every collection concurrently using the pipeline's
// configured ids. There is no barrier between collections beyond waiting for
// all of them to finish; failures are absorbed by the pipeline.
func (s *Site) Refresh(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	for kind, slot := range s.slots {
		id := s.pipeline.CollectionID(kind)
		g.Go(func() error {
			slot.load(gctx, id)
			return nil
		})
	}
	_ = g.Wait()
}

// Sync switches the site to a new kind to id mapping and reloads only the
// kinds whose collection id changed since their last committed load. Kinds
// missing from ids are treated as unset. Later Refresh calls use the new
// mapping.
func (s *Site) Sync(ctx context.Context, ids map[content.Kind]string) {
	s.pipeline.SetCollections(ids)

	g, gctx := errgroup.WithContext(ctx)
	for kind, slot := range s.slots {
		id := ids[kind]
		g.Go(func() error {
			slot.sync(gctx, id)
			return nil
		})
	}
	_ = g.Wait()
}

// RefreshKind reloads a single collection. It reports false for unknown kinds.
func (s *Site) RefreshKind(ctx context.Context, kind content.Kind) bool {
	slot, ok := s.slots[kind]
	if !ok {
		return false
	}
	slot.load(ctx, s.pipeline.CollectionID(kind))
	return true
}

// Collection returns the current value of one kind as its typed slice.
func (s *Site) Collection(kind content.Kind) (any, bool) {
	slot, ok := s.slots[kind]
	if !ok {
		return nil, false
	}
	return slot.current(), true
}

func (s *Site) Snapshot() Snapshot {
	return Snapshot{
		BlogPosts:          s.blogPosts.Value(),
		Portfolio:          s.portfolio.Value(),
		DronePortfolio:     s.dronePortfolio.Value(),
		Leaders:            s.leaders.Value(),
		TourSlides:         s.tourSlides.Value(),
		ClientLogos:        s.clientLogos.Value(),
		Testimonials:       s.testimonials.Value(),
		HeroContent:        s.heroContent.Value(),
		PageContent:        s.pageContent.Value(),
		PrivacyContent:     s.privacyContent.Value(),
		TermsContent:       s.termsContent.Value(),
		IndustrySolutions:  s.industrySolutions.Value(),
		ProductionServices: s.productionServices.Value(),
		StudioAmenities:    s.studioAmenities.Value(),
		ConnectFeatures:    s.connectFeatures.Value(),
	}
}

// Close discards every in-flight load.
func (s *Site) Close() {
	for _, slot := range s.slots {
		slot.close()
	}
}
