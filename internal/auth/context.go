package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/daniilsolovey/truck-portal/internal/portal"
)

const DefaultCookieName = "truck_session"

type (
	userKey    struct{}
	sessionKey struct{}
)

// Session is the raw session of the current request.
type Session struct {
	Token      string
	CookieName string
	Secure     bool

	// Claims are set when the token was valid.
	Claims *Claims

	w http.ResponseWriter
}

func NewSession(token, cookieName string, secure bool, w http.ResponseWriter) *Session {
	return &Session{Token: token, CookieName: cookieName, Secure: secure, w: w}
}

// ClearCookie expires the session cookie on the client.
func (s *Session) ClearCookie() {
	if s == nil || s.w == nil {
		return
	}

	http.SetCookie(s.w, &http.Cookie{
		Name:     s.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}

func WithUser(ctx context.Context, u *portal.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromContext returns the authenticated caller or nil.
func UserFromContext(ctx context.Context) *portal.User {
	u, _ := ctx.Value(userKey{}).(*portal.User)
	return u
}
