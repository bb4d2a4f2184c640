// Package main is the entry point for the board. It wires all dependencies
// using samber/do v2, runs the HTTP server and the webhook dispatcher, and
// handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"golang.org/x/sync/errgroup"

	adapthttp "github.com/ianto3/projectboard/internal/adapters/http"
	"github.com/ianto3/projectboard/internal/adapters/http/handlers"
	"github.com/ianto3/projectboard/internal/adapters/http/middleware"
	"github.com/ianto3/projectboard/internal/adapters/http/session"
	"github.com/ianto3/projectboard/internal/adapters/http/sse"
	"github.com/ianto3/projectboard/internal/adapters/web"

	"github.com/ianto3/projectboard/internal/adapters/clients/webhook"
	"github.com/ianto3/projectboard/internal/app"
	"github.com/ianto3/projectboard/internal/app/store"
	"github.com/ianto3/projectboard/internal/domain/project"
	"github.com/ianto3/projectboard/internal/platform/config"
	"github.com/ianto3/projectboard/internal/platform/health"
	"github.com/ianto3/projectboard/internal/platform/httpclient"
	"github.com/ianto3/projectboard/internal/platform/logging"
	"github.com/ianto3/projectboard/internal/platform/telemetry"
	"github.com/ianto3/projectboard/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	broker := do.MustInvoke[*sse.Broker](injector)
	registry.Register(broker)

	// Open event streams would hold Shutdown until its deadline.
	server.OnShutdown(broker.Close)

	projectStore := do.MustInvoke[*store.ProjectStore](injector)
	untrack := app.TrackProjects(projectStore, otel.metrics)
	defer untrack()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.Start)

	if cfg.Webhook.Enabled {
		notifier := do.MustInvoke[*webhook.Notifier](injector)
		registry.Register(notifier)
		detach := notifier.Attach(projectStore)
		defer detach()
		g.Go(func() error { return notifier.Run(gctx) })
	}

	// Wait for a shutdown signal or the first component failure.
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// The single store every view, handler and subscriber shares.
	do.Provide(injector, func(_ do.Injector) (*store.ProjectStore, error) {
		return store.NewProjectStore(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectStore, error) {
		return do.MustInvoke[*store.ProjectStore](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		s := do.MustInvoke[ports.ProjectStore](i)
		return app.NewProjectService(s, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*sse.Broker, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return sse.New(cfg.Events.ClientBuffer, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*web.Board, error) {
		s := do.MustInvoke[ports.ProjectStore](i)
		broker := do.MustInvoke[*sse.Broker](i)

		lists := make([]*web.ListView, 0, len(project.Statuses()))
		for _, status := range project.Statuses() {
			l, err := web.NewListView(s, status,
				web.WithRenderHook(broker.PublishFragment),
				web.WithListLogger(logger),
			)
			if err != nil {
				return nil, err
			}
			lists = append(lists, l)
		}
		return web.NewBoard(web.NewFormView(s, logger), lists...), nil
	})

	do.Provide(injector, func(i do.Injector) (*webhook.Notifier, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Webhook.Client, webhook.Name, metrics, logger)
		return webhook.New(client, cfg.Webhook.QueueSize, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BoardHandler, error) {
		board := do.MustInvoke[*web.Board](i)
		return handlers.NewBoardHandler(board, session.New(cfg.Session)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.EventsHandler, error) {
		broker := do.MustInvoke[*sse.Broker](i)
		board := do.MustInvoke[*web.Board](i)
		return handlers.NewEventsHandler(broker, board, cfg.Events.Heartbeat), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		svc := do.MustInvoke[ports.ProjectService](i)
		return handlers.NewProjectHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		routes := adapthttp.Routes{
			Board:    do.MustInvoke[*handlers.BoardHandler](i),
			Events:   do.MustInvoke[*handlers.EventsHandler](i),
			Projects: do.MustInvoke[*handlers.ProjectHandler](i),
			Health:   do.MustInvoke[*handlers.HealthHandler](i),
			Static:   web.Static(),
		}

		return adapthttp.NewRouter(routes, cfg.Server.WriteTimeout,
			middleware.Pipeline(logger, metrics)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
