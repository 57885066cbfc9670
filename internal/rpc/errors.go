package rpc

import (
	"errors"
	"net/http"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/truck-portal/internal/portal"
)

var (
	ErrNotLoggedIn  = zenrpc.NewStringError(http.StatusUnauthorized, "not logged in")
	ErrAccessDenied = zenrpc.NewStringError(http.StatusForbidden, "access denied")
	ErrUnavailable  = zenrpc.NewStringError(http.StatusServiceUnavailable, "storage unavailable")
	ErrInternal     = zenrpc.NewStringError(http.StatusInternalServerError, "internal error")
)

// rpcError maps a non-nil error to a JSON-RPC error. Errors already mapped pass through.
func rpcError(err error) *zenrpc.Error {
	var zErr *zenrpc.Error
	switch {
	case errors.As(err, &zErr):
		return zErr
	case errors.Is(err, portal.ErrUnavailable):
		return ErrUnavailable
	case errors.Is(err, portal.ErrNotFound):
		return zenrpc.NewStringError(http.StatusNotFound, err.Error())
	}

	return ErrInternal
}

// newError is rpcError for service return values.
func newError(err error) error {
	if err == nil {
		return nil
	}
	return rpcError(err)
}

func errorResponse(err error) zenrpc.Response {
	e := rpcError(err)
	return zenrpc.NewResponseError(nil, e.Code, e.Message, nil)
}
