package portal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daniilsolovey/truck-portal/internal/db"
)

type Manager struct {
	db     *db.Repository
	logger *slog.Logger

	// degradeReads turns unavailable storage on reads into empty results.
	degradeReads bool
}

func NewManager(repo *db.Repository, logger *slog.Logger, degradeReads bool) *Manager {
	return &Manager{
		db:           repo,
		logger:       logger,
		degradeReads: degradeReads,
	}
}

// readFailed logs a failed read and returns the error to report.
// A nil result means the caller returns an empty value.
func (m *Manager) readFailed(ctx context.Context, op string, err error) error {
	if !IsUnavailable(err) {
		m.logger.ErrorContext(ctx, "query failed", "op", op, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	m.logger.ErrorContext(ctx, "storage unavailable", "op", op, "degraded", m.degradeReads, "err", err)
	if m.degradeReads {
		return nil
	}

	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}

// writeFailed logs a failed write. Writes are never degraded.
func (m *Manager) writeFailed(ctx context.Context, op string, err error) error {
	m.logger.ErrorContext(ctx, "write failed", "op", op, "err", err)
	if IsUnavailable(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func (m *Manager) Ping(ctx context.Context) error {
	return m.db.Ping(ctx)
}
