package portal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/truck-portal/internal/db"
)

type fakePGError struct{}

func (fakePGError) Error() string            { return "ERROR #42703 column does not exist" }
func (fakePGError) Field(byte) string        { return "42703" }
func (fakePGError) IntegrityViolation() bool { return false }

func TestIsUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", fmt.Errorf("query: %w", context.Canceled), false},
		{"not found", fmt.Errorf("job 1: %w", ErrNotFound), false},
		{"server error", fmt.Errorf("failed to query jobs: %w", fakePGError{}), false},
		{"dial error", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, true},
		{"connection reset", fmt.Errorf("failed to query jobs: %w", io.EOF), true},
		{"deadline", context.DeadlineExceeded, true},
		{"closed pool", errors.New("pg: database is closed"), true},
		{"already classified", fmt.Errorf("jobs: %w", ErrUnavailable), true},
		{"unknown", errors.New("pg: Model(unsupported []int)"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUnavailable(tt.err))
		})
	}
}

func TestEnumHas(t *testing.T) {
	assert.True(t, JobRegions.Has("other"))
	assert.False(t, Regions.Has("other"))
	assert.False(t, CourseLevels.Has(""))
}

// unreachableManager returns a manager over a database that refuses connections.
func unreachableManager(t *testing.T, degrade bool) *Manager {
	t.Helper()

	conn := pg.Connect(&pg.Options{
		Addr:        "127.0.0.1:1",
		User:        "nobody",
		Database:    "nowhere",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  0,
		PoolSize:    1,
	})
	t.Cleanup(func() { _ = conn.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager(db.New(conn), logger, degrade)
}

func TestManager_Unavailable(t *testing.T) {
	ctx := context.Background()

	t.Run("reads report unavailable", func(t *testing.T) {
		m := unreachableManager(t, false)

		jobs, err := m.Jobs(ctx, &db.JobSearch{Region: strPtr("europe")}, db.NewPager(nil, nil))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Empty(t, jobs)

		course, err := m.CourseByID(ctx, 1)
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Nil(t, course)

		_, err = m.Stats(ctx)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("degraded reads return empty results", func(t *testing.T) {
		m := unreachableManager(t, true)

		jobs, err := m.Jobs(ctx, nil, db.NewPager(nil, nil))
		require.NoError(t, err)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)

		schools, err := m.Schools(ctx, nil, db.NewPager(nil, nil))
		require.NoError(t, err)
		assert.Empty(t, schools)

		listing, err := m.ListingByID(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, listing)

		count, err := m.CountArticles(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, count)

		stats, err := m.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, &Stats{}, stats)
	})

	t.Run("writes are never degraded", func(t *testing.T) {
		m := unreachableManager(t, true)

		_, err := m.SaveJob(ctx, 1, 1)
		assert.ErrorIs(t, err, ErrUnavailable)

		_, err = m.CreateListing(ctx, 1, Listing{})
		assert.ErrorIs(t, err, ErrUnavailable)

		_, err = m.UpsertSession(ctx, SignIn{OpenID: "someone"})
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func strPtr(s string) *string { return &s }
