package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studio-site/config"
	contentapi "studio-site/internal/api/content"
	formsapi "studio-site/internal/api/forms"
	"studio-site/internal/api/proxy"
	routes "studio-site/internal/app/http"
	"studio-site/internal/cms"
	"studio-site/internal/forms"
	"studio-site/internal/infra/webflow"
	"studio-site/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the process-wide collaborators built once from configuration.
type app struct {
	cfg *config.Config
	log *zap.Logger
}

func newApp() (*app, error) {
	cfg := config.LoadEnv()
	log, err := logging.New(cfg.LogLevel, cfg.Development())
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log}, nil
}

func (a *app) pipeline() *cms.Pipeline {
	return cms.NewPipeline(cms.NewProxyClient(a.cfg.ProxyURL), cms.Options{
		Collections:   a.cfg.Collections,
		UseSampleData: a.cfg.UseSampleData,
		Logger:        a.log.Named("cms"),
	})
}

func (a *app) handlers(site *cms.Site) routes.Handlers {
	wf := webflow.NewClient(a.cfg.WebflowBaseURL, a.cfg.WebflowAPIVersion)
	allowed := proxy.NewAllowList(a.cfg.CollectionIDs()...)

	return routes.Handlers{
		Proxy:   proxy.NewHandler(allowed, wf, a.cfg.Token, a.log.Named("proxy")),
		Content: contentapi.NewHandler(site),
		Forms: formsapi.NewHandler(
			forms.NewSubmitter(a.cfg.AssemblyFormEndpoint, a.cfg.AssemblyAPIKey),
			forms.LogTracker{Log: a.log.Named("forms")},
			a.log.Named("forms"),
		),
	}
}

// reload re-reads the collection ids on SIGHUP. The proxy allow-list and
// the site switch to the new mapping; kinds whose id changed are refetched.
func (a *app) reload(ctx context.Context, site *cms.Site, px *proxy.Handler) {
	cfg, err := config.Reload()
	if err != nil {
		a.log.Error("config reload failed", zap.Error(err))
		return
	}
	px.SetAllowList(proxy.NewAllowList(cfg.CollectionIDs()...))
	site.Sync(ctx, cfg.Collections)
	a.log.Info("config reloaded", zap.Int("collections", len(cfg.Collections)))
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "studio-site",
		Short:        "Content backend for the studio website",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context())
			},
		},
		newFetchCommand(),
		newCollectionsCommand(),
	)
	return root
}

func runServe(ctx context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.log.Sync() //nolint:errcheck

	if !a.cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	if a.cfg.WebflowToken == "" {
		a.log.Warn("WEBFLOW_API_TOKEN is not set, proxy requests will fail")
	}

	site := cms.NewSite(a.pipeline())
	defer site.Close()

	h := a.handlers(site)
	r := routes.NewRouter(a.log, a.cfg.CORSOrigin, h)
	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening",
			zap.String("addr", srv.Addr),
			zap.Int("collections", len(a.cfg.Collections)),
			zap.Bool("sample_data", a.cfg.UseSampleData))
		errCh <- srv.ListenAndServe()
	}()

serve:
	for {
		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("listen: %w", err)
		case <-hup:
			a.reload(ctx, site, h.Proxy)
		case <-ctx.Done():
			break serve
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	a.log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
