package content

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed fallback.yaml
var fallbackYAML []byte

// Samples holds the bundled fallback collection for every kind.
type Samples struct {
	BlogPosts          []BlogPost          `yaml:"blogPosts"`
	Portfolio          []PortfolioItem     `yaml:"portfolio"`
	DronePortfolio     []PortfolioItem     `yaml:"dronePortfolio"`
	Leaders            []Leader            `yaml:"leaders"`
	TourSlides         []TourSlide         `yaml:"tourSlides"`
	ClientLogos        []ClientLogo        `yaml:"clientLogos"`
	Testimonials       []Testimonial       `yaml:"testimonials"`
	HeroContent        []HeroContent       `yaml:"heroContent"`
	PageContent        []PageContent       `yaml:"pageContent"`
	PrivacyContent     []LegalContent      `yaml:"privacyContent"`
	TermsContent       []LegalContent      `yaml:"termsContent"`
	IndustrySolutions  []IndustrySolution  `yaml:"industrySolutions"`
	ProductionServices []ProductionService `yaml:"productionServices"`
	StudioAmenities    []StudioAmenity     `yaml:"studioAmenities"`
	ConnectFeatures    []ConnectFeature    `yaml:"connectFeatures"`
}

var (
	samplesOnce sync.Once
	samples     Samples
	samplesErr  error
)

// ParseSamples decodes a fallback document.
func ParseSamples(data []byte) (Samples, error) {
	var s Samples
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Samples{}, fmt.Errorf("decode fallback content: %w", err)
	}
	return s, nil
}

// Fallback returns a fresh copy of the bundled sample content. The embedded
// document is part of the binary, so a decode failure is a build defect and
// panics.
func Fallback() Samples {
	samplesOnce.Do(func() {
		samples, samplesErr = ParseSamples(fallbackYAML)
	})
	if samplesErr != nil {
		panic(samplesErr)
	}
	return samples.clone()
}

// clone copies every slice and every media pointer, so nothing reachable
// from the result is shared with s.
func (s Samples) clone() Samples {
	return Samples{
		BlogPosts: cloneEach(s.BlogPosts, func(b BlogPost) BlogPost {
			b.Thumbnail = cloneString(b.Thumbnail)
			return b
		}),
		Portfolio:      cloneEach(s.Portfolio, clonePortfolioItem),
		DronePortfolio: cloneEach(s.DronePortfolio, clonePortfolioItem),
		Leaders: cloneEach(s.Leaders, func(l Leader) Leader {
			l.Photo = cloneString(l.Photo)
			return l
		}),
		TourSlides: cloneEach(s.TourSlides, func(ts TourSlide) TourSlide {
			ts.Image = cloneString(ts.Image)
			return ts
		}),
		ClientLogos: cloneEach(s.ClientLogos, func(cl ClientLogo) ClientLogo {
			cl.Logo = cloneString(cl.Logo)
			cl.URL = cloneString(cl.URL)
			return cl
		}),
		Testimonials: cloneEach(s.Testimonials, func(t Testimonial) Testimonial {
			t.Photo = cloneString(t.Photo)
			return t
		}),
		HeroContent: cloneEach(s.HeroContent, func(h HeroContent) HeroContent {
			h.HeroImage = cloneString(h.HeroImage)
			return h
		}),
		PageContent:        slices.Clone(s.PageContent),
		PrivacyContent:     slices.Clone(s.PrivacyContent),
		TermsContent:       slices.Clone(s.TermsContent),
		IndustrySolutions:  slices.Clone(s.IndustrySolutions),
		ProductionServices: slices.Clone(s.ProductionServices),
		StudioAmenities:    slices.Clone(s.StudioAmenities),
		ConnectFeatures:    slices.Clone(s.ConnectFeatures),
	}
}

func clonePortfolioItem(p PortfolioItem) PortfolioItem {
	p.Thumbnail = cloneString(p.Thumbnail)
	p.VideoURL = cloneString(p.VideoURL)
	return p
}

func cloneEach[T any](items []T, fn func(T) T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
