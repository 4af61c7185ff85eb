package content

// View models. Every field is always present in JSON; media and link fields
// that may be missing are pointers so they render as null.

type BlogPost struct {
	ID        string  `json:"id" yaml:"id"`
	Slug      string  `json:"slug" yaml:"slug"`
	Category  string  `json:"category" yaml:"category"`
	Title     string  `json:"title" yaml:"title"`
	Date      string  `json:"date" yaml:"date"`
	Thumbnail *string `json:"thumbnail" yaml:"thumbnail"`
	Excerpt   string  `json:"excerpt" yaml:"excerpt"`
	Content   string  `json:"content" yaml:"content"`
	Author    string  `json:"author" yaml:"author"`
}

type PortfolioItem struct {
	ID          string  `json:"id" yaml:"id"`
	Category    string  `json:"category" yaml:"category"`
	Title       string  `json:"title" yaml:"title"`
	Client      string  `json:"client" yaml:"client"`
	Thumbnail   *string `json:"thumbnail" yaml:"thumbnail"`
	VideoURL    *string `json:"videoUrl" yaml:"videoUrl"`
	Description string  `json:"description" yaml:"description"`
}

type Leader struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Title      string  `json:"title" yaml:"title"`
	Bio        string  `json:"bio" yaml:"bio"`
	Philosophy string  `json:"philosophy" yaml:"philosophy"`
	Photo      *string `json:"photo" yaml:"photo"`
	Order      int     `json:"order" yaml:"order"`
}

type TourSlide struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Image       *string `json:"image" yaml:"image"`
	Order       int     `json:"order" yaml:"order"`
}

type ClientLogo struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Logo  *string `json:"logo" yaml:"logo"`
	URL   *string `json:"url" yaml:"url"`
	Order int     `json:"order" yaml:"order"`
}

type Testimonial struct {
	ID      string  `json:"id" yaml:"id"`
	Quote   string  `json:"quote" yaml:"quote"`
	Author  string  `json:"author" yaml:"author"`
	Title   string  `json:"title" yaml:"title"`
	Company string  `json:"company" yaml:"company"`
	Photo   *string `json:"photo" yaml:"photo"`
}

// LegalContent backs both the privacy and the terms pages.
type LegalContent struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Content     string `json:"content" yaml:"content"`
	LastUpdated string `json:"lastUpdated" yaml:"lastUpdated"`
	Order       int    `json:"order" yaml:"order"`
}

type IndustrySolution struct {
	ID       string `json:"id" yaml:"id"`
	Industry string `json:"industry" yaml:"industry"`
	Sub      string `json:"sub" yaml:"sub"`
	Title    string `json:"title" yaml:"title"`
	Desc     string `json:"desc" yaml:"desc"`
	Link     string `json:"link" yaml:"link"`
	Order    int    `json:"order" yaml:"order"`
}

type HeroContent struct {
	ID         string  `json:"id" yaml:"id"`
	Page       string  `json:"page" yaml:"page"`
	Tag        string  `json:"tag" yaml:"tag"`
	Title      string  `json:"title" yaml:"title"`
	Subtitle   string  `json:"subtitle" yaml:"subtitle"`
	ButtonText string  `json:"buttonText" yaml:"buttonText"`
	ButtonLink string  `json:"buttonLink" yaml:"buttonLink"`
	HeroImage  *string `json:"heroImage" yaml:"heroImage"`
}

type PageContent struct {
	ID      string `json:"id" yaml:"id"`
	Page    string `json:"page" yaml:"page"`
	Section string `json:"section" yaml:"section"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	Order   int    `json:"order" yaml:"order"`
}

type ProductionService struct {
	ID            string `json:"id" yaml:"id"`
	Category      string `json:"category" yaml:"category"`
	Name          string `json:"name" yaml:"name"`
	Description   string `json:"description" yaml:"description"`
	Order         int    `json:"order" yaml:"order"`
	CategoryOrder int    `json:"categoryOrder" yaml:"categoryOrder"`
}

type StudioAmenity struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon" yaml:"icon"`
	Order int    `json:"order" yaml:"order"`
}

type ConnectFeature struct {
	ID          string `json:"id" yaml:"id"`
	PlanType    string `json:"planType" yaml:"planType"`
	FeatureName string `json:"featureName" yaml:"featureName"`
	Order       int    `json:"order" yaml:"order"`
}

// Ordered is implemented by view models carrying an explicit order field.
type Ordered interface {
	SortOrder() int
}

func (l Leader) SortOrder() int            { return l.Order }
func (t TourSlide) SortOrder() int         { return t.Order }
func (c ClientLogo) SortOrder() int        { return c.Order }
func (l LegalContent) SortOrder() int      { return l.Order }
func (i IndustrySolution) SortOrder() int  { return i.Order }
func (p PageContent) SortOrder() int       { return p.Order }
func (p ProductionService) SortOrder() int { return p.Order }
func (s StudioAmenity) SortOrder() int     { return s.Order }
func (c ConnectFeature) SortOrder() int    { return c.Order }
