package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/truck-portal/config"
	"github.com/daniilsolovey/truck-portal/internal/auth"
	"github.com/daniilsolovey/truck-portal/internal/db"
	"github.com/daniilsolovey/truck-portal/internal/portal"
	"github.com/daniilsolovey/truck-portal/internal/rpc"
)

type App struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *pg.DB
	Redis  *redis.Client
	Echo   *echo.Echo

	manager   *portal.Manager
	authn     *auth.Authenticator
	rpcServer *zenrpc.Server
}

// New wires the application. redisClient may be nil, then logout does not revoke tokens.
func New(cfg *config.Config, dbConnect *pg.DB, redisClient *redis.Client, logger *slog.Logger) *App {
	if cfg.App.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryLogger(logger))
	}

	var revoker auth.Revoker = auth.NopRevoker{}
	if redisClient != nil {
		revoker = auth.NewRedisRevoker(redisClient)
	}

	manager := portal.NewManager(db.New(dbConnect), logger, cfg.App.DegradeReads)
	authn := auth.NewAuthenticator(
		auth.NewSessions(cfg.Auth.Secret, cfg.Auth.TokenTTL),
		revoker,
		manager,
		cfg.Auth.OwnerOpenID,
		logger,
	)

	a := &App{
		Config:    cfg,
		Logger:    logger,
		DB:        dbConnect,
		Redis:     redisClient,
		manager:   manager,
		authn:     authn,
		rpcServer: rpc.New(logger, manager, authn),
	}
	a.Echo = a.registerRoutes()

	return a
}

func (a *App) Run(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "starting server", "addr", a.Config.Addr())
	return a.Echo.Start(a.Config.Addr())
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	if a.Redis != nil {
		err = errors.Join(err, a.Redis.Close())
	}

	return errors.Join(err, a.DB.Close())
}
