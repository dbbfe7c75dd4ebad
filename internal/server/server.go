package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nfrund/octofit/internal/apiclient"
	"github.com/nfrund/octofit/internal/app"
	"github.com/nfrund/octofit/internal/config"
	"github.com/nfrund/octofit/internal/diagnostics"
	"github.com/nfrund/octofit/internal/logging"
	"github.com/nfrund/octofit/internal/middleware"
	"github.com/nfrund/octofit/internal/module"
	"github.com/nfrund/octofit/internal/pubsub"
	"github.com/nfrund/octofit/internal/registry"
	"github.com/nfrund/octofit/internal/rendering"
	"github.com/nfrund/octofit/internal/shell"
	"github.com/nfrund/octofit/web/src/templates/layouts"
)

// Options tune a Server beyond what the config provides.
type Options struct {
	// Logger replaces the logger built from the config.
	Logger *slog.Logger
	// Metrics replaces the default Prometheus registry for HTTP metrics
	// and /metrics.
	Metrics *prometheus.Registry
	// Now overrides the wall clock.
	Now func() time.Time
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E     *echo.Echo
	Cfg   config.Provider
	Shell *shell.Shell

	logger   *slog.Logger
	bus      *pubsub.WatermillBridge
	registry *registry.Registry
	modules  []module.Module
	gatherer prometheus.Gatherer

	// ctx bounds background work started by modules; Shutdown cancels it.
	ctx           context.Context
	cancel        context.CancelFunc
	tracerCleanup func()
}

// New wires every service and module and registers all routes.
func New(cfg config.Provider, opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{Cfg: cfg, logger: logger, ctx: ctx, cancel: cancel}

	tracer, cleanup, err := pubsub.SetupOTel(ctx, pubsub.TracingConfig{
		Enabled:        cfg.GetTracingEnabled(),
		ServiceName:    cfg.GetTracingServiceName(),
		ServiceVersion: layouts.Version,
		ZipkinURL:      cfg.GetZipkinURL(),
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}
	s.tracerCleanup = cleanup

	client, err := apiclient.New(cfg.GetAPIBaseURL(), apiclient.WithTracer(tracer))
	if err != nil {
		s.release()
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	s.bus = pubsub.NewWatermillBridge(pubsub.WithTracer(tracer), pubsub.WithLogger(logger))
	renderer := rendering.NewUniversalRenderer()
	s.Shell = shell.New(shell.Options{
		Renderer: renderer,
		Notifier: diagnostics.NewBusNotifier(s.bus, logger),
		TTL:      cfg.GetMountTTL(),
		Now:      opts.Now,
	})

	s.registry = registry.New()
	registry.Set(s.registry, registry.PublisherKey, pubsub.Publisher(s.bus))
	registry.Set(s.registry, registry.SubscriberKey, pubsub.Subscriber(s.bus))
	registry.Set(s.registry, registry.RendererKey, rendering.Renderer(renderer))
	registry.Set(s.registry, registry.APIClientKey, client)
	registry.Set(s.registry, shell.Key, s.Shell)

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	s.gatherer = prometheus.DefaultGatherer
	if opts.Metrics != nil {
		registerer = opts.Metrics
		// Data-view collectors always live on the default registry.
		s.gatherer = prometheus.Gatherers{opts.Metrics, prometheus.DefaultGatherer}
	}

	s.E = echo.New()
	s.E.HideBanner = true
	s.E.Renderer = renderer
	s.E.Validator = shell.NewValidator()
	setupErrorHandling(s.E)

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	s.E.Use(echomw.RequestID())
	s.E.Use(echomw.Recover())
	s.E.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "octofit",
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))
	s.E.Use(session.Middleware(store))
	s.E.Use(middleware.SessionID)
	s.E.Use(middleware.Logger)

	s.modules = app.NewModules(app.Dependencies{
		Client:     client,
		DelayScale: cfg.GetDelayScale(),
		Logger:     logger,
		Now:        opts.Now,
	})
	if err := s.bootModules(); err != nil {
		s.release()
		return nil, err
	}

	s.RegisterRoutes()
	return s, nil
}

// bootModules boots every module in order on the root group.
func (s *Server) bootModules() error {
	router := s.E.Group("")
	for _, m := range s.modules {
		if err := m.Boot(s.ctx, router, s.registry); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
		s.logger.Debug("Module booted", "module", m.Name())
	}
	return nil
}

// release frees what New acquired before the server is returned.
func (s *Server) release() {
	s.cancel()
	if s.bus != nil {
		_ = s.bus.Close()
	}
	if s.tracerCleanup != nil {
		s.tracerCleanup()
	}
}
