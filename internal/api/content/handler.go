package contentapi

import (
	"net/http"

	"studio-site/internal/api/proxy"
	"studio-site/internal/cms"
	"studio-site/internal/domain/content"

	"github.com/gin-gonic/gin"
)

// Handler serves site content. Collection failures never reach the caller:
// the pipeline answers them with fallback content. Successful responses carry
// the proxy's cache policy so a CDN in front absorbs repeat page views.
type Handler struct {
	site *cms.Site
}

func NewHandler(site *cms.Site) *Handler {
	return &Handler{site: site}
}

// GET /api/content
func (h *Handler) GetSiteContent(c *gin.Context) {
	h.site.Refresh(c.Request.Context())
	c.Header("Cache-Control", proxy.CacheControl)
	c.JSON(http.StatusOK, toSiteContent(h.site.Snapshot()))
}

// GET /api/content/:kind
func (h *Handler) GetCollection(c *gin.Context) {
	kind, ok := content.ParseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown collection"})
		return
	}

	h.site.RefreshKind(c.Request.Context(), kind)
	items, _ := h.site.Collection(kind)
	c.Header("Cache-Control", proxy.CacheControl)
	c.JSON(http.StatusOK, CollectionResponse{Kind: kind, Items: items})
}

// GET /api/hero/:page
func (h *Handler) GetHero(c *gin.Context) {
	h.site.RefreshKind(c.Request.Context(), content.KindHeroContent)
	hero := content.HeroForPage(h.site.Snapshot().HeroContent, c.Param("page"))
	if hero == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hero not found"})
		return
	}
	c.Header("Cache-Control", proxy.CacheControl)
	c.JSON(http.StatusOK, hero)
}
