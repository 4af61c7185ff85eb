package content

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

const (
	DefaultBlogCategory      = "INDUSTRY NEWS"
	DefaultPortfolioCategory = "COMMERCIAL"

	blogDateLayout  = "Jan 2, 2006"
	legalDateLayout = "January 2, 2006"
)

// productionCategories maps Webflow option ids of the production-service
// category field to display labels.
var productionCategories = map[string]string{
	"df4735b4a60a29e3a8775c71f1d053c6": "PRE-PRODUCTION",
	"60d5212edeac7b5cf401ce7445daac3e": "PRODUCTION SUPPORT",
	"fd76b57bef03c1cab74fdc1253c10d55": "POST-PRODUCTION",
	"cd494a6b678588350d94e7614f4e6dd1": "FABRICATION",
}

// videoEmbed matches the player URLs Webflow writes into video figures.
var videoEmbed = regexp.MustCompile(`^https://(www\.youtube\.com/embed/|www\.youtube-nocookie\.com/embed/|player\.vimeo\.com/video/)[\w-]+(\?[\w=&.%-]*)?$`)

// richText strips scripts and unsafe attributes from CMS rich-text fields
// but keeps the figure classes and video iframes Webflow rich text uses.
// bluemonday policies are safe for concurrent use once built.
var richText = newRichTextPolicy()

func newRichTextPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("figure", "div", "p")
	p.AllowAttrs("src").Matching(videoEmbed).OnElements("iframe")
	p.AllowAttrs("allowfullscreen").OnElements("iframe")
	return p
}

// ProductionCategoryLabel resolves a category token, unknown tokens pass through.
func ProductionCategoryLabel(token string) string {
	if label, ok := productionCategories[token]; ok {
		return label
	}
	return token
}

func sanitizeRich(s string) string {
	if s == "" {
		return ""
	}
	return richText.Sanitize(s)
}

func ToBlogPost(item RawItem) BlogPost {
	f := item.fields()
	return BlogPost{
		ID:        item.ID,
		Slug:      f.StringOr("slug", item.ID),
		Category:  f.StringOr("category", DefaultBlogCategory),
		Title:     f.String("title"),
		Date:      f.Date("date", blogDateLayout),
		Thumbnail: f.AssetURL("thumbnail"),
		Excerpt:   f.String("excerpt"),
		Content:   sanitizeRich(f.String("content")),
		Author:    f.String("author"),
	}
}

func ToPortfolioItem(item RawItem) PortfolioItem {
	f := item.fields()
	return PortfolioItem{
		ID:          item.ID,
		Category:    f.StringOr("category", DefaultPortfolioCategory),
		Title:       f.String("title"),
		Client:      f.String("client"),
		Thumbnail:   f.AssetURL("thumbnail"),
		VideoURL:    f.OptString("video-url"),
		Description: f.String("description"),
	}
}

func ToLeader(item RawItem) Leader {
	f := item.fields()
	return Leader{
		ID:         item.ID,
		Name:       f.String("name"),
		Title:      f.String("title"),
		Bio:        f.String("bio"),
		Philosophy: f.String("philosophy"),
		Photo:      f.AssetURL("photo"),
		Order:      f.Int("order"),
	}
}

func ToTourSlide(item RawItem) TourSlide {
	f := item.fields()
	return TourSlide{
		ID:          item.ID,
		Title:       f.String("title"),
		Description: f.String("description"),
		Image:       f.AssetURL("image"),
		Order:       f.Int("order"),
	}
}

func ToClientLogo(item RawItem) ClientLogo {
	f := item.fields()
	return ClientLogo{
		ID:    item.ID,
		Name:  f.String("name"),
		Logo:  f.AssetURL("logo"),
		URL:   f.OptString("url"),
		Order: f.Int("order"),
	}
}

func ToTestimonial(item RawItem) Testimonial {
	f := item.fields()
	return Testimonial{
		ID:      item.ID,
		Quote:   f.String("quote"),
		Author:  f.String("author"),
		Title:   f.String("title"),
		Company: f.String("company"),
		Photo:   f.AssetURL("photo"),
	}
}

func ToLegalContent(item RawItem) LegalContent {
	f := item.fields()
	return LegalContent{
		ID:          item.ID,
		Title:       f.String("title"),
		Content:     sanitizeRich(f.String("content")),
		LastUpdated: f.Date("last-updated", legalDateLayout),
		Order:       f.Int("order"),
	}
}

func ToIndustrySolution(item RawItem) IndustrySolution {
	f := item.fields()
	return IndustrySolution{
		ID:       item.ID,
		Industry: f.String("industry"),
		Sub:      f.String("sub"),
		Title:    f.String("title"),
		Desc:     f.String("desc"),
		Link:     f.String("link"),
		Order:    f.Int("order"),
	}
}

func ToHeroContent(item RawItem) HeroContent {
	f := item.fields()
	return HeroContent{
		ID:         item.ID,
		Page:       f.String("page"),
		Tag:        f.String("tag"),
		Title:      f.String("title"),
		Subtitle:   f.String("subtitle"),
		ButtonText: f.String("button-text"),
		ButtonLink: f.String("button-link"),
		HeroImage:  f.AssetURL("hero-image"),
	}
}

func ToPageContent(item RawItem) PageContent {
	f := item.fields()
	return PageContent{
		ID:      item.ID,
		Page:    f.String("page"),
		Section: f.String("section"),
		Title:   f.String("title"),
		Content: sanitizeRich(f.String("content")),
		Order:   f.Int("order"),
	}
}

func ToProductionService(item RawItem) ProductionService {
	f := item.fields()
	return ProductionService{
		ID:            item.ID,
		Category:      ProductionCategoryLabel(f.String("category")),
		Name:          f.String("name"),
		Description:   f.String("description"),
		Order:         f.Int("order"),
		CategoryOrder: f.Int("category-order"),
	}
}

func ToStudioAmenity(item RawItem) StudioAmenity {
	f := item.fields()
	return StudioAmenity{
		ID:    item.ID,
		Name:  f.String("name"),
		Icon:  f.String("icon"),
		Order: f.Int("order"),
	}
}

func ToConnectFeature(item RawItem) ConnectFeature {
	f := item.fields()
	return ConnectFeature{
		ID:          item.ID,
		PlanType:    f.String("plan-type"),
		FeatureName: f.String("feature-name"),
		Order:       f.Int("order"),
	}
}
