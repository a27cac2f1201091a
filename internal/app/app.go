// AngelaMos | 2026
// app.go

// Package app assembles the service from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/sage-nfm/internal/auth"
	"github.com/carterperez-dev/sage-nfm/internal/checkin"
	"github.com/carterperez-dev/sage-nfm/internal/config"
	"github.com/carterperez-dev/sage-nfm/internal/core"
	"github.com/carterperez-dev/sage-nfm/internal/dashboard"
	"github.com/carterperez-dev/sage-nfm/internal/health"
	"github.com/carterperez-dev/sage-nfm/internal/middleware"
	"github.com/carterperez-dev/sage-nfm/internal/mps"
	"github.com/carterperez-dev/sage-nfm/internal/persistence"
	"github.com/carterperez-dev/sage-nfm/internal/server"
	"github.com/carterperez-dev/sage-nfm/internal/system"
	"github.com/carterperez-dev/sage-nfm/internal/user"
)

const drainDelay = 5 * time.Second

type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   persistence.Manager
	redis   *core.Redis
	limiter *middleware.RateLimiter
	health  *health.Handler
	server  *server.Server
}

// New opens the store, fixing the storage mode for the life of the App,
// and builds the HTTP router.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := persistence.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		_ = store.Close() //nolint:errcheck // startup failure cleanup
		return nil, fmt.Errorf("init tokens: %w", err)
	}
	if cfg.JWT.Secret == config.DevelopmentJWTSecret {
		logger.Warn("using the development JWT secret; set JWT_SECRET")
	}

	a := &App{
		cfg:    cfg,
		logger: logger,
		store:  store,
		redis:  core.OpenOptionalRedis(ctx, cfg.Redis, logger),
	}

	deps := []health.Dependency{{Name: "store", Checker: store}}
	if a.redis != nil {
		deps = append(deps, health.Dependency{
			Name:     "redis",
			Checker:  a.redis,
			Optional: true,
		})
	}

	a.health = health.NewHandler(health.Info{
		Name:      cfg.App.Name,
		Version:   cfg.App.Version,
		StoreMode: string(store.Mode()),
	}, deps...)

	a.server = server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: a.health,
		Logger:        logger,
	})

	a.routes(tokens)

	logger.Info("application assembled",
		"store_mode", store.Mode(),
		"redis", a.redis != nil,
	)

	return a, nil
}

func (a *App) routes(tokens *auth.TokenManager) {
	router := a.server.Router()

	metrics := middleware.NewMetrics("sage_nfm")
	metrics.SetStoreMode(string(a.store.Mode()))

	router.NotFound(health.NotFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer(a.logger))
	router.Use(middleware.Logger(a.logger))
	router.Use(metrics.Middleware)
	router.Use(middleware.SecurityHeaders(a.cfg.IsProduction()))
	router.Use(middleware.CORS(a.cfg.CORS))
	router.Use(middleware.MaxBodySize(a.cfg.Server.MaxBodyBytes))

	if a.cfg.RateLimit.Enabled {
		var client *redis.Client
		if a.redis != nil {
			client = a.redis.Client
		}
		a.limiter = middleware.NewRateLimiter(client, middleware.RateLimitConfig{
			Limit: middleware.PerWindow(
				a.cfg.RateLimit.Requests,
				a.cfg.RateLimit.Burst,
				a.cfg.RateLimit.Window,
			),
			FailOpen:   true,
			BypassFunc: isProbe,
		})
		router.Use(a.limiter.Handler)
	}

	a.health.RegisterRoutes(router)
	router.Handle("/metrics", metrics.Handler())

	userSvc := user.NewService(a.store.Users())
	authSvc := auth.NewService(tokens, userSvc)
	mpsSvc := mps.NewService(a.store.Mps())
	checkinSvc := checkin.NewService(a.store.Checkins())
	dashboardSvc := dashboard.NewService(mpsSvc, checkinSvc)

	systemCfg := system.HandlerConfig{
		StoreMode: string(a.store.Mode()),
		DBStats:   a.store.DBStats,
		StorePing: a.store.Ping,
	}
	if a.redis != nil {
		systemCfg.RedisStats = a.redis.PoolStats
		systemCfg.RedisPing = a.redis.Ping
	}

	authenticator := middleware.Authenticator(tokens)

	router.Route("/api", func(r chi.Router) {
		r.Get("/", a.health.APIStatus)

		auth.NewHandler(authSvc).RegisterRoutes(r, authenticator)
		mps.NewHandler(mpsSvc).RegisterRoutes(r, authenticator)
		checkin.NewHandler(checkinSvc).RegisterRoutes(r, authenticator)
		dashboard.NewHandler(dashboardSvc).RegisterRoutes(r, authenticator)
		system.NewHandler(systemCfg).RegisterRoutes(r, authenticator)
	})
}

func (a *App) Handler() http.Handler {
	return a.server.Router()
}

func (a *App) StoreMode() persistence.Mode {
	return a.store.Mode()
}

// Run serves until ctx is cancelled or the listener fails, then shuts the
// server down gracefully.
func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- a.server.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	return a.server.Shutdown(shutdownCtx, drainDelay)
}

func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}

	return errors.Join(
		a.redis.Close(),
		a.store.Close(),
	)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	core.JSONError(w, core.NewAppError(
		nil,
		"method "+r.Method+" not allowed on "+r.URL.Path,
		http.StatusMethodNotAllowed,
		"METHOD_NOT_ALLOWED",
	))
}

func isProbe(r *http.Request) bool {
	switch r.URL.Path {
	case "/healthz", "/livez", "/readyz", "/metrics":
		return true
	}
	return false
}
