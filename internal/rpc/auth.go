package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/truck-portal/internal/auth"
)

// AuthService exposes the current session.
type AuthService struct {
	zenrpc.Service
	authn *auth.Authenticator
}

func NewAuthService(authn *auth.Authenticator) *AuthService {
	return &AuthService{authn: authn}
}

// Me returns the caller or null for anonymous requests.
//
//zenrpc:return current user or null
func (s AuthService) Me(ctx context.Context) (*User, error) {
	return NewUser(auth.UserFromContext(ctx)), nil
}

// Logout revokes the session token and clears the session cookie.
//
//zenrpc:return mutation result
//zenrpc:500 revocation failed
func (s AuthService) Logout(ctx context.Context) (*MutationResult, error) {
	session := auth.SessionFromContext(ctx)
	if session == nil {
		return &MutationResult{Success: true}, nil
	}

	if err := s.authn.Logout(ctx, session.Claims); err != nil {
		return nil, newError(err)
	}
	session.ClearCookie()

	return &MutationResult{Success: true}, nil
}
