package routes

import (
	"slices"
	"time"

	contentapi "studio-site/internal/api/content"
	formsapi "studio-site/internal/api/forms"
	"studio-site/internal/api/proxy"
	"studio-site/internal/app/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Proxy   *proxy.Handler
	Content *contentapi.Handler
	Forms   *formsapi.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// The proxy answers every method itself so it can send 405 with Allow.
	r.Any("/api/collection-proxy", h.Proxy.ListItems)
	r.Any("/api/webflow/items", h.Proxy.ListItems)

	r.GET("/api/content", h.Content.GetSiteContent)
	r.GET("/api/content/:kind", h.Content.GetCollection)
	r.GET("/api/hero/:page", h.Content.GetHero)

	// ✅ Apply input sanitization to public form routes only
	public := r.Group("/api/forms")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/:type", h.Forms.Submit)
	public.POST("/:type/events", h.Forms.Track)
}

// NewRouter builds the engine with the shared middleware stack.
func NewRouter(log *zap.Logger, corsOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(log), middleware.Recovery(log))

	// ✅ Add CORS middleware BEFORE registering routes
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(corsOrigins) == 0 || slices.Contains(corsOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	r.Use(cors.New(corsCfg))

	RegisterRoutes(r, h)
	return r
}
