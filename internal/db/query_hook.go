package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-pg/pg/v10"
)

// QueryLogger logs every executed statement with its duration at debug level.
// Failed statements are logged at warn level.
type QueryLogger struct {
	logger *slog.Logger
}

func NewQueryLogger(logger *slog.Logger) *QueryLogger {
	return &QueryLogger{logger: logger}
}

func (ql *QueryLogger) BeforeQuery(ctx context.Context, _ *pg.QueryEvent) (context.Context, error) {
	return ctx, nil
}

func (ql *QueryLogger) AfterQuery(ctx context.Context, event *pg.QueryEvent) error {
	query, err := event.FormattedQuery()
	if err != nil {
		ql.logger.ErrorContext(ctx, "failed to format query", "err", err)
		return nil
	}

	level := slog.LevelDebug
	if event.Err != nil {
		level = slog.LevelWarn
	}

	ql.logger.Log(ctx, level, "sql",
		"query", string(query),
		"duration", time.Since(event.StartTime),
		"err", event.Err,
	)

	return nil
}
