package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"studio-site/internal/infra/webflow"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MaxLimit     = 100
	CacheControl = "s-maxage=300, stale-while-revalidate=600"
)

// ItemLister is the slice of the Webflow client the proxy needs.
type ItemLister interface {
	ListItems(ctx context.Context, token string, p webflow.ListParams) ([]byte, error)
}

type Handler struct {
	allowed atomic.Pointer[AllowList]
	items   ItemLister
	token   func() (string, error)
	log     *zap.Logger
}

// NewHandler wires the proxy. token is consulted on every request so a
// missing credential is reported per request instead of at startup.
func NewHandler(allowed AllowList, items ItemLister, token func() (string, error), log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Handler{items: items, token: token, log: log}
	h.allowed.Store(&allowed)
	return h
}

// SetAllowList replaces the allow-list after a configuration reload.
// Requests already past the check keep the list they saw.
func (h *Handler) SetAllowList(allowed AllowList) {
	h.allowed.Store(&allowed)
}

// GET /api/collection-proxy
func (h *Handler) ListItems(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.Header("Allow", http.MethodGet)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
		return
	}

	token, err := h.token()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	params := ParseListParams(c)
	if params.CollectionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query param: collectionId"})
		return
	}
	if !h.allowed.Load().Allows(params.CollectionID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Collection not allowed"})
		return
	}

	body, err := h.items.ListItems(c.Request.Context(), token, params)
	if err != nil {
		var upstream *webflow.UpstreamError
		if errors.As(err, &upstream) {
			h.log.Warn("webflow upstream error",
				zap.String("collection_id", params.CollectionID),
				zap.Int("status", upstream.Status))
			c.JSON(http.StatusBadGateway, gin.H{
				"error":  "Webflow upstream error",
				"status": upstream.Status,
				"body":   upstream.Body,
			})
			return
		}
		h.log.Error("webflow request failed", zap.String("collection_id", params.CollectionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !json.Valid(body) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid JSON from Webflow"})
		return
	}

	c.Header("Cache-Control", CacheControl)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// ParseListParams reads the query string. live defaults to "1"; limit
// defaults to 100 and is capped at MaxLimit; offset defaults to 0 and never
// goes below it. Unparseable numbers fall back to the defaults.
func ParseListParams(c *gin.Context) webflow.ListParams {
	return webflow.ListParams{
		CollectionID: strings.TrimSpace(c.Query("collectionId")),
		Live:         c.DefaultQuery("live", "1") == "1",
		Limit:        min(queryInt(c, "limit", MaxLimit), MaxLimit),
		Offset:       max(queryInt(c, "offset", 0), 0),
	}
}

func queryInt(c *gin.Context, key string, def int) int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}
