package content

import "strings"

// Kind names a content collection type served by the site.
type Kind string

const (
	KindBlogPosts          Kind = "blog-posts"
	KindClientLogos        Kind = "client-logos"
	KindDronePortfolio     Kind = "drone-portfolio"
	KindLeaders            Kind = "leaders"
	KindPortfolio          Kind = "portfolio"
	KindTourSlides         Kind = "tour-slides"
	KindHeroContent        Kind = "hero-content"
	KindPageContent        Kind = "page-content"
	KindTestimonials       Kind = "testimonials"
	KindPrivacyContent     Kind = "privacy-content"
	KindTermsContent       Kind = "terms-content"
	KindIndustrySolutions  Kind = "industry-solutions"
	KindProductionServices Kind = "production-services"
	KindStudioAmenities    Kind = "studio-amenities"
	KindConnectFeatures    Kind = "connect-features"
)

var allKinds = []Kind{
	KindBlogPosts,
	KindClientLogos,
	KindDronePortfolio,
	KindLeaders,
	KindPortfolio,
	KindTourSlides,
	KindHeroContent,
	KindPageContent,
	KindTestimonials,
	KindPrivacyContent,
	KindTermsContent,
	KindIndustrySolutions,
	KindProductionServices,
	KindStudioAmenities,
	KindConnectFeatures,
}

// Kinds returns every known kind in a fixed order.
func Kinds() []Kind {
	return append([]Kind(nil), allKinds...)
}

// ParseKind accepts "blog-posts", "blog_posts" or "BLOG_POSTS".
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	for _, known := range allKinds {
		if known == k {
			return k, true
		}
	}
	return "", false
}

// EnvName is the upper snake form used in environment keys, e.g. BLOG_POSTS.
func (k Kind) EnvName() string {
	return strings.ToUpper(strings.ReplaceAll(string(k), "-", "_"))
}
