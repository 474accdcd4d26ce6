// @title snapevents API
// @version 1.0
// @description Upcoming events listing, block rendering, iCalendar feed and editor endpoints.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snapevents/config"
	_ "snapevents/docs"
	"snapevents/internal/adapters/auth"
	"snapevents/internal/adapters/content"
	"snapevents/internal/adapters/ical"
	"snapevents/internal/adapters/render"
	"snapevents/internal/adapters/scheduler"
	deliveryhttp "snapevents/internal/delivery/http"
	"snapevents/internal/delivery/http/controllers"
	"snapevents/internal/delivery/http/middleware"
	"snapevents/internal/domain"
	"snapevents/internal/repository/memory"
	"snapevents/internal/repository/postgres"
	"snapevents/internal/repository/redis"
	"snapevents/internal/services"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required in production")
	}

	eventRepo, userRepo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var cache domain.ListingCache
	if cfg.RedisURL != "" {
		lc, err := redis.Open(ctx, cfg.RedisURL, redis.DefaultPrefix, cfg.CacheTTL)
		if err != nil {
			logger.Warn("listing cache disabled", "err", err)
		} else {
			defer lc.Close()
			cache = lc
			purger := scheduler.NewCachePurger(lc, cfg.Location, logger)
			if err := purger.Start(cfg.CachePurgeSchedule); err != nil {
				return err
			}
			defer func() { <-purger.Stop().Done() }()
		}
	}

	formatter := content.NewFormatter()
	renderer, err := render.New()
	if err != nil {
		return err
	}
	site, err := url.Parse(cfg.SiteURL)
	if err != nil {
		return fmt.Errorf("parse SITE_URL: %w", err)
	}
	feed := ical.NewFeed(formatter, cfg.SiteURL, "Upcoming events", site.Hostname())
	tokens := auth.NewJWT(cfg.JWTSecret)

	var query domain.EventQueryService = services.NewEventQueryService(eventRepo, formatter, cfg.SiteURL, cfg.Location, cfg.ContextTimeout)
	if cache != nil {
		query = services.NewCachedEventQueryService(query, cache, cfg.Location, logger)
	}
	blocks := services.NewBlockService(query, renderer, cfg.SiteURL+"/events")
	editor := services.NewEventEditorService(eventRepo, formatter, cache, logger, cfg.ContextTimeout)
	authSvc := services.NewAuthService(userRepo, auth.NewBcryptHasher(auth.DefaultCost), tokens, cfg.JWTExpiry, cfg.ContextTimeout)

	if cfg.EditorEmail != "" && cfg.EditorPassword != "" {
		u, err := authSvc.EnsureEditor(ctx, cfg.EditorEmail, cfg.EditorPassword, "Editor")
		if err != nil {
			return fmt.Errorf("bootstrap editor: %w", err)
		}
		logger.Info("editor account ready", "email", u.Email)
	}

	router := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Listing: controllers.NewListingController(logger, query),
		Block:   controllers.NewBlockController(logger, blocks),
		Page:    controllers.NewEventPageController(logger, query, formatter, renderer, cfg.SiteURL),
		Feed:    controllers.NewFeedController(logger, query, feed),
		Auth:    controllers.NewAuthController(logger, authSvc),
		Editor:  controllers.NewEditorController(logger, editor),
	}, tokens, logger)

	var handler http.Handler = router
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment, "store", cfg.StoreDriver, "cache", cache != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore returns the repositories for the configured driver and a func
// releasing them.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.EventRepository, domain.UserRepository, func(), error) {
	if cfg.StoreDriver == config.StoreMemory {
		events := memory.NewEventRepository()
		if cfg.SeedFile != "" {
			n, err := memory.LoadSeedFile(ctx, events, cfg.SeedFile)
			if err != nil {
				return nil, nil, nil, err
			}
			logger.Info("seeded events", "file", cfg.SeedFile, "count", n)
		}
		return events, memory.NewUserRepository(), func() {}, nil
	}

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := postgres.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}
	return postgres.NewEventRepository(db), postgres.NewUserRepository(db), closer(db, logger), nil
}

func closer(db *sql.DB, logger *slog.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Error("close database", "err", err)
		}
	}
}
