// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

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

	_ "github.com/tomtom215/engagepredict/docs" // generated swagger docs
	"github.com/tomtom215/engagepredict/internal/api"
	"github.com/tomtom215/engagepredict/internal/auth"
	"github.com/tomtom215/engagepredict/internal/config"
	"github.com/tomtom215/engagepredict/internal/engine"
	"github.com/tomtom215/engagepredict/internal/ensemble"
	"github.com/tomtom215/engagepredict/internal/events"
	"github.com/tomtom215/engagepredict/internal/history"
	"github.com/tomtom215/engagepredict/internal/logging"
	"github.com/tomtom215/engagepredict/internal/media"
	"github.com/tomtom215/engagepredict/internal/supervisor"
	"github.com/tomtom215/engagepredict/internal/supervisor/services"
)

// busStartTimeout bounds the wait for event subscribers before the API
// starts accepting predictions.
const busStartTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("addr", cfg.Server.Addr()).
		Bool("jwt_enabled", cfg.Auth.Enabled()).
		Bool("history_enabled", cfg.History.Enabled).
		Msg("Starting EngagePredict")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().
			Strs("cors_origins", cfg.Security.CORSOrigins).
			Msg("Wildcard CORS origin with bearer authentication enabled; restrict CORS_ORIGINS in production")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Server stopped with error")
		stop()
		os.Exit(1)
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run wires the components and blocks until ctx is canceled or the
// supervisor tree fails.
func run(ctx context.Context, cfg *config.Config) error {
	predictor := ensemble.LoadOrFallback(cfg.Models.Dir, logging.WithComponent("ensemble"))
	if predictor == nil && cfg.Models.Required {
		return fmt.Errorf("trained models required but not loadable from %q", cfg.Models.Dir)
	}

	analyzer := media.NewAnalyzer(media.Config{
		CacheSize: cfg.Media.CacheSize,
		CacheTTL:  cfg.Media.CacheTTL,
	}, logging.Logger())

	breaker := engine.DefaultBreakerConfig()
	breaker.FailureThreshold = cfg.Engine.Breaker.FailureThreshold
	breaker.Timeout = cfg.Engine.Breaker.Timeout

	eng, err := engine.New(engine.Deps{
		Predictor: predictor,
		Media:     analyzer,
		Logger:    logging.Logger(),
		Rand:      engine.NewRandSource(cfg.Engine.Seed),
	}, engine.WithBreaker(breaker))
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	treeCtx, cancelTree := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(treeCtx)

	var treeErr error
	treeDone := make(chan struct{})
	go func() {
		treeErr = <-errCh
		close(treeDone)
	}()

	// Closers run after the tree has stopped, newest first.
	var closers []func()
	defer func() {
		cancelTree()
		<-treeDone
		reportUnstopped(tree)
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	// History is optional; without it predictions are served but not recorded.
	var (
		store     *history.BadgerStore
		bus       *events.Bus
		reader    api.HistoryReader
		publisher api.EventPublisher
	)
	if cfg.History.Enabled {
		store, err = history.Open(history.Config{
			Path:         cfg.History.Path,
			InMemory:     cfg.History.InMemory,
			DefaultLimit: cfg.History.DefaultLimit,
			MaxLimit:     cfg.History.MaxLimit,
		}, logging.Logger())
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		closers = append(closers, func() {
			if err := store.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing history store")
			}
		})

		bus, err = events.NewBus(events.DefaultBusConfig(), logging.Logger())
		if err != nil {
			return fmt.Errorf("create event bus: %w", err)
		}
		closers = append(closers, func() {
			if err := bus.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing event bus")
			}
		})
		bus.RegisterHistoryRecorder(store)
		bus.RegisterPoisonLogger()

		tree.AddMessagingService(services.NewEventRouterService(bus, logging.Logger()))
		if err := waitForBus(ctx, bus); err != nil {
			return err
		}

		reader = store
		publisher = bus
	} else {
		logging.Info().Msg("Prediction history disabled (HISTORY_ENABLED=false)")
	}

	var gc services.GarbageCollector
	if store != nil {
		gc = store
	}
	tree.AddDataService(services.NewMaintenanceService(gc, analyzer, services.MaintenanceConfig{}, logging.Logger()))

	identifier, err := newIdentifier(cfg)
	if err != nil {
		return err
	}

	handler := api.NewHandler(eng, reader, publisher, api.HandlerConfig{
		MaxUploadBytes: cfg.Media.MaxUploadBytes,
		HeaderIdentity: !cfg.Auth.Enabled(),
	})
	mwCfg := api.DefaultChiMiddlewareConfig()
	if len(cfg.Security.CORSOrigins) > 0 {
		mwCfg.CORSAllowedOrigins = cfg.Security.CORSOrigins
	}
	mwCfg.RateLimitRequests = cfg.Security.RateLimitReqs
	mwCfg.RateLimitWindow = cfg.Security.RateLimitWindow
	mwCfg.RateLimitDisabled = cfg.Security.RateLimitDisabled

	router := api.NewRouter(handler, api.NewChiMiddleware(mwCfg), identifier)
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}
	apiToken := tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))

	select {
	case <-ctx.Done():
		// Drain HTTP first so accepted predictions still reach the recorder.
		logging.Info().Msg("Received shutdown signal")
		if err := tree.RemoveAPIService(apiToken, cfg.Server.ShutdownTimeout); err != nil {
			logging.Warn().Err(err).Msg("HTTP server did not stop cleanly")
		}
		return nil
	case <-treeDone:
		if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
			return fmt.Errorf("supervisor tree: %w", treeErr)
		}
		return nil
	}
}

// waitForBus blocks until every event handler is subscribed.
func waitForBus(ctx context.Context, bus *events.Bus) error {
	timer := time.NewTimer(busStartTimeout)
	defer timer.Stop()

	select {
	case <-bus.Running():
		logging.Info().Msg("Event bus running")
		return nil
	case <-timer.C:
		return errors.New("event bus did not start in time")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// newIdentifier selects bearer-token identity when a JWT secret is
// configured, otherwise the X-User-ID header.
func newIdentifier(cfg *config.Config) (auth.Identifier, error) {
	if !cfg.Auth.Enabled() {
		logging.Warn().Msg("JWT_SECRET not set; history identity is taken from the X-User-ID header")
		return auth.NewHeaderAuthenticator(), nil
	}
	manager, err := auth.NewJWTManager(cfg.Auth.JWTSecret, auth.DefaultTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("create JWT manager: %w", err)
	}
	return auth.NewJWTAuthenticator(manager), nil
}

func reportUnstopped(tree *supervisor.SupervisorTree) {
	unstopped, err := tree.UnstoppedServiceReport()
	if err != nil {
		logging.Warn().Err(err).Msg("Could not collect unstopped service report")
		return
	}
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
}
