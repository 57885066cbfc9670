package portal

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"

	"github.com/go-pg/pg/v10"
)

var (
	// ErrUnavailable marks failures to reach the database.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrNotFound is returned by mutations that reference a missing row.
	ErrNotFound = errors.New("not found")
)

// pool errors are internal to go-pg.
var unavailableMessages = []string{
	"pg: database is closed",
	"pg: connection pool timeout",
}

// IsUnavailable reports whether err means the database could not be reached,
// as opposed to a query rejected by a reachable server.
func IsUnavailable(err error) bool {
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled) {
		return false
	}

	if errors.Is(err, ErrUnavailable) || errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := err.Error()
	for _, m := range unavailableMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}

	return false
}
