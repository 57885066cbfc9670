package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/truck-portal/config"
	"github.com/daniilsolovey/truck-portal/internal/app"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	flEnv    = flag.String("env-file", ".env", "optional dotenv file with secrets")
	lg       *slog.Logger
)

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	if err := godotenv.Load(*flEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		exitOnError(err)
	}

	cfg, err := config.Load(*flConfig)
	if err != nil {
		exitOnError(err)
	}

	ctx := context.Background()

	db := pg.Connect(&cfg.Database)
	if err := db.Ping(ctx); err != nil {
		db.Close()
		exitOnError(err)
	}

	var rds *redis.Client
	if cfg.Redis.Addr != "" {
		rds = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := rds.Ping(ctx).Err(); err != nil {
			rds.Close()
			db.Close()
			exitOnError(err)
		}
	} else {
		lg.Warn("redis is not configured, logout will not revoke tokens")
	}

	service := app.New(cfg, db, rds, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
