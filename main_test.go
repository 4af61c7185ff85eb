package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studio-site/config"
	"studio-site/internal/api/proxy"
	"studio-site/internal/cms"
	"studio-site/internal/domain/content"
	"studio-site/internal/infra/webflow"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPrintCollections(t *testing.T) {
	t.Setenv("COLLECTION_LEADERS", "leaders-id")

	var buf bytes.Buffer
	printCollections(&buf, config.FromEnv())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 15)
	assert.Contains(t, buf.String(), "leaders")
	assert.Contains(t, buf.String(), "leaders-id")
	assert.Contains(t, buf.String(), "(unset)")
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()

	for _, name := range []string{"serve", "fetch", "collections"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

type emptyLister struct{}

func (emptyLister) ListItems(context.Context, string, webflow.ListParams) ([]byte, error) {
	return []byte(`{"items":[]}`), nil
}

func TestReloadSwitchesCollections(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, kind := range content.Kinds() {
		t.Setenv("COLLECTION_"+kind.EnvName(), "")
		t.Setenv("VITE_COLLECTION_"+kind.EnvName(), "")
	}
	t.Setenv("COLLECTION_BLOG_POSTS", "blog-v2")

	p := cms.NewPipeline(nil, cms.Options{Collections: map[content.Kind]string{content.KindBlogPosts: "blog-v1"}})
	site := cms.NewSite(p)
	px := proxy.NewHandler(proxy.NewAllowList("blog-v1"), emptyLister{}, func() (string, error) { return "tok", nil }, nil)
	a := &app{cfg: config.FromEnv(), log: zap.NewNop()}

	a.reload(context.Background(), site, px)

	assert.Equal(t, "blog-v2", p.CollectionID(content.KindBlogPosts))

	r := gin.New()
	r.GET("/api/collection-proxy", px.ListItems)
	status := func(id string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/collection-proxy?collectionId="+id, nil))
		return w.Code
	}
	assert.Equal(t, http.StatusOK, status("blog-v2"))
	assert.Equal(t, http.StatusForbidden, status("blog-v1"))
}
