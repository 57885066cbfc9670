package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/daniilsolovey/truck-portal/internal/portal"
)

const loginMethod = "session"

// UserStore records sign-ins.
type UserStore interface {
	UpsertSession(ctx context.Context, in portal.SignIn) (*portal.User, error)
}

type Authenticator struct {
	sessions    *Sessions
	revoker     Revoker
	users       UserStore
	ownerOpenID string
	logger      *slog.Logger
}

func NewAuthenticator(sessions *Sessions, revoker Revoker, users UserStore, ownerOpenID string, logger *slog.Logger) *Authenticator {
	if revoker == nil {
		revoker = NopRevoker{}
	}

	return &Authenticator{
		sessions:    sessions,
		revoker:     revoker,
		users:       users,
		ownerOpenID: ownerOpenID,
		logger:      logger,
	}
}

// Authenticate resolves token to a user. Invalid, expired or revoked tokens resolve to nil user
// and nil error; an error means the sign-in could not be recorded, claims are still returned then.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*portal.User, *Claims, error) {
	if token == "" {
		return nil, nil, nil
	}

	claims, err := a.sessions.Parse(token)
	if err != nil {
		a.logger.DebugContext(ctx, "session rejected", "err", err)
		return nil, nil, nil
	}

	revoked, err := a.revoker.IsRevoked(ctx, claims.Id)
	if err != nil {
		a.logger.WarnContext(ctx, "revocation check failed, treating session as anonymous", "err", err)
		return nil, nil, nil
	} else if revoked {
		return nil, nil, nil
	}

	user, err := a.users.UpsertSession(ctx, portal.SignIn{
		OpenID:      claims.Subject,
		Name:        claims.Name,
		LoginMethod: loginMethod,
		Admin:       a.ownerOpenID != "" && claims.Subject == a.ownerOpenID,
	})
	if err != nil {
		return nil, claims, fmt.Errorf("sign in: %w", err)
	}

	return user, claims, nil
}

// Logout revokes the session token until it would expire anyway.
func (a *Authenticator) Logout(ctx context.Context, claims *Claims) error {
	if claims == nil {
		return nil
	}

	if err := a.revoker.Revoke(ctx, claims.Id, claims.TTL(time.Now())); err != nil {
		return err
	}

	return nil
}

// Issue mints a session token for openID.
func (a *Authenticator) Issue(openID, name string) (string, error) {
	return a.sessions.Issue(openID, name)
}
