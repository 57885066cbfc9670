package db

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/daniilsolovey/truck-portal/migrations"
)

// Migration commands supported by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// OpenSQL opens a database/sql handle with the same connection settings as opt.
func OpenSQL(opt *pg.Options) (*sql.DB, error) {
	host, port, err := net.SplitHostPort(opt.Addr)
	if err != nil {
		return nil, fmt.Errorf("parse addr %q: %w", opt.Addr, err)
	}

	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("parse port %q: %w", port, err)
	}

	return stdlib.OpenDB(pgx.ConnConfig{
		Host:      host,
		Port:      uint16(p),
		Database:  opt.Database,
		User:      opt.User,
		Password:  opt.Password,
		TLSConfig: opt.TLSConfig,
	}), nil
}

// Migrate runs a goose command against the embedded migrations.
func Migrate(ctx context.Context, sqldb *sql.DB, command string) error {
	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	switch command {
	case MigrateUp:
		err := goose.UpContext(ctx, sqldb, ".")
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
	case MigrateDown:
		err := goose.DownContext(ctx, sqldb, ".")
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
	case MigrateStatus:
		err := goose.StatusContext(ctx, sqldb, ".")
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}

	return nil
}
