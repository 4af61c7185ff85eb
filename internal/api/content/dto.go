package contentapi

import (
	"studio-site/internal/cms"
	"studio-site/internal/domain/content"
)

// SiteContentResponse is the snapshot with the ordering and grouping the
// pages render applied.
type SiteContentResponse struct {
	BlogPosts         []content.BlogPost         `json:"blogPosts"`
	Portfolio         []content.PortfolioItem    `json:"portfolio"`
	DronePortfolio    []content.PortfolioItem    `json:"dronePortfolio"`
	Leaders           []content.Leader           `json:"leaders"`
	TourSlides        []content.TourSlide        `json:"tourSlides"`
	ClientLogos       []content.ClientLogo       `json:"clientLogos"`
	Testimonials      []content.Testimonial      `json:"testimonials"`
	HeroContent       []content.HeroContent      `json:"heroContent"`
	PageContent       []content.PageContent      `json:"pageContent"`
	PrivacyContent    []content.LegalContent     `json:"privacyContent"`
	TermsContent      []content.LegalContent     `json:"termsContent"`
	IndustrySolutions []content.IndustrySolution `json:"industrySolutions"`
	StudioAmenities   []content.StudioAmenity    `json:"studioAmenities"`

	ProductionServices    []content.ServiceGroup   `json:"productionServices"`
	CoworkingFeatures     []content.ConnectFeature `json:"coworkingFeatures"`
	PrivateOfficeFeatures []content.ConnectFeature `json:"privateOfficeFeatures"`
}

type CollectionResponse struct {
	Kind  content.Kind `json:"kind"`
	Items any          `json:"items"`
}

func toSiteContent(s cms.Snapshot) SiteContentResponse {
	return SiteContentResponse{
		BlogPosts:         s.BlogPosts,
		Portfolio:         s.Portfolio,
		DronePortfolio:    s.DronePortfolio,
		Leaders:           content.SortByOrder(s.Leaders),
		TourSlides:        content.SortByOrder(s.TourSlides),
		ClientLogos:       content.SortByOrder(s.ClientLogos),
		Testimonials:      s.Testimonials,
		HeroContent:       s.HeroContent,
		PageContent:       content.SortByOrder(s.PageContent),
		PrivacyContent:    content.SortByOrder(s.PrivacyContent),
		TermsContent:      content.SortByOrder(s.TermsContent),
		IndustrySolutions: content.SortByOrder(s.IndustrySolutions),
		StudioAmenities:   content.SortByOrder(s.StudioAmenities),

		ProductionServices:    content.GroupProductionServices(s.ProductionServices),
		CoworkingFeatures:     content.FeaturesForPlan(s.ConnectFeatures, content.PlanCoworking),
		PrivateOfficeFeatures: content.FeaturesForPlan(s.ConnectFeatures, content.PlanPrivateOffice),
	}
}
