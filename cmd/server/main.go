package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/janisto/lazydrobe/internal/app"
	"github.com/janisto/lazydrobe/internal/http/health"
	"github.com/janisto/lazydrobe/internal/http/v1/routes"
	"github.com/janisto/lazydrobe/internal/platform/config"
	applog "github.com/janisto/lazydrobe/internal/platform/logging"
	appmiddleware "github.com/janisto/lazydrobe/internal/platform/middleware"
	"github.com/janisto/lazydrobe/internal/platform/respond"
	"github.com/janisto/lazydrobe/internal/seed"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		applog.LogError(ctx, "server failed", err)
		_ = applog.Sync()
		os.Exit(1)
	}
	applog.LogInfo(context.Background(), "server exited")
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Weather.APIKey == "" {
		applog.LogWarn(ctx, "forecast api key not set; weather endpoints will answer 503")
	}

	data := &seed.Data{}
	if cfg.SeedFile != "" {
		if data, err = seed.LoadFile(cfg.SeedFile); err != nil {
			return err
		}
		applog.LogInfo(ctx, "seed loaded",
			zap.String("file", cfg.SeedFile),
			zap.Int("items", len(data.Items)),
			zap.Int("outfits", len(data.Outfits)),
		)
	}

	shell, err := app.New(cfg, data)
	if err != nil {
		return err
	}
	defer shell.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, shell, Version),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		// Covers the synchronous forecast fetch plus encoding.
		WriteTimeout:   cfg.Weather.Timeout + 5*time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 64 << 10, // 64 KB
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}
	applog.LogInfo(ctx, "server listening", zap.String("addr", ln.Addr().String()))
	return serve(ctx, srv, ln)
}

// serve runs srv on ln until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		applog.LogInfo(context.Background(), "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func newRouter(cfg config.Config, shell *app.App, version string) chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.AllowedOrigins...),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP and X-Forwarded-For. Only run behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler(version))

	humaCfg := huma.DefaultConfig("LazYdrobe API", version)
	humaCfg.DocsPath = "/api-docs"
	api := humachi.New(router, humaCfg)
	addCBORContent(api)

	routes.Register(api, shell)
	return router
}

// addCBORContent advertises application/cbor wherever the OpenAPI document lists JSON.
func addCBORContent(api huma.API) {
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)
}
