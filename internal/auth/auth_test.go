package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/truck-portal/internal/db"
	"github.com/daniilsolovey/truck-portal/internal/portal"
)

const testSecret = "test-secret"

type stubUsers struct {
	calls []portal.SignIn
	err   error
}

func (s *stubUsers) UpsertSession(_ context.Context, in portal.SignIn) (*portal.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.calls = append(s.calls, in)

	u := &portal.User{}
	u.ID = len(s.calls)
	u.OpenID = in.OpenID
	u.Role = db.RoleUser
	if in.Admin {
		u.Role = db.RoleAdmin
	}
	return u, nil
}

type memRevoker map[string]time.Duration

func (m memRevoker) Revoke(_ context.Context, id string, ttl time.Duration) error {
	m[id] = ttl
	return nil
}

func (m memRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	_, ok := m[id]
	return ok, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessions(t *testing.T) {
	s := NewSessions(testSecret, time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, err := s.Issue("open-1", "Max")
		require.NoError(t, err)

		claims, err := s.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "open-1", claims.Subject)
		assert.Equal(t, "Max", claims.Name)
		assert.NotEmpty(t, claims.Id)
		assert.InDelta(t, time.Hour.Seconds(), claims.TTL(time.Now()).Seconds(), 5)
	})

	t.Run("unique token ids", func(t *testing.T) {
		a, err := s.Issue("open-1", "")
		require.NoError(t, err)
		b, err := s.Issue("open-1", "")
		require.NoError(t, err)

		ca, _ := s.Parse(a)
		cb, _ := s.Parse(b)
		assert.NotEqual(t, ca.Id, cb.Id)
	})

	t.Run("empty open id", func(t *testing.T) {
		_, err := s.Issue("", "x")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewSessions("other", time.Hour).Issue("open-1", "")
		require.NoError(t, err)

		_, err = s.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewSessions(testSecret, time.Hour)
		old.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := old.Issue("open-1", "")
		require.NoError(t, err)

		_, err = s.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		claims := Claims{StandardClaims: jwt.StandardClaims{Subject: "open-1", Id: "x", ExpiresAt: time.Now().Add(time.Hour).Unix()}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = s.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.Parse("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPolicy(t *testing.T) {
	p := NewPolicy(map[string]Access{
		"academy.enrollCourse": Protected,
		"admin.getStats":       AdminOnly,
	})

	user := &portal.User{}
	user.Role = db.RoleUser
	admin := &portal.User{}
	admin.Role = db.RoleAdmin

	tests := []struct {
		name      string
		namespace string
		method    string
		user      *portal.User
		want      Decision
	}{
		{"public anonymous", "academy", "getCourses", nil, Allow},
		{"protected anonymous", "academy", "enrollCourse", nil, Unauthenticated},
		{"protected user", "academy", "enrollcourse", user, Allow},
		{"admin anonymous", "admin", "getStats", nil, Unauthenticated},
		{"admin non admin", "admin", "getstats", user, Forbidden},
		{"admin admin", "admin", "getStats", admin, Allow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Decide(tt.namespace, tt.method, tt.user))
		})
	}

	assert.Equal(t, "forbidden", Forbidden.String())
}

func TestAuthenticator(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessions(testSecret, time.Hour)

	t.Run("anonymous", func(t *testing.T) {
		a := NewAuthenticator(sessions, nil, &stubUsers{}, "", discardLogger())

		user, claims, err := a.Authenticate(ctx, "")
		require.NoError(t, err)
		assert.Nil(t, user)
		assert.Nil(t, claims)

		user, _, err = a.Authenticate(ctx, "broken")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("valid token signs in", func(t *testing.T) {
		users := &stubUsers{}
		a := NewAuthenticator(sessions, nil, users, "owner", discardLogger())

		token, err := a.Issue("driver", "Max")
		require.NoError(t, err)

		user, claims, err := a.Authenticate(ctx, token)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "driver", user.OpenID)
		assert.False(t, user.IsAdmin())
		assert.Equal(t, "driver", claims.Subject)
		require.Len(t, users.calls, 1)
		assert.Equal(t, "Max", users.calls[0].Name)
	})

	t.Run("owner is promoted", func(t *testing.T) {
		a := NewAuthenticator(sessions, nil, &stubUsers{}, "owner", discardLogger())
		token, _ := a.Issue("owner", "")

		user, _, err := a.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
	})

	t.Run("logout revokes", func(t *testing.T) {
		revoked := memRevoker{}
		a := NewAuthenticator(sessions, revoked, &stubUsers{}, "", discardLogger())
		token, _ := a.Issue("driver", "")

		_, claims, err := a.Authenticate(ctx, token)
		require.NoError(t, err)
		require.NoError(t, a.Logout(ctx, claims))
		assert.Contains(t, revoked, claims.Id)

		user, _, err := a.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		a := NewAuthenticator(sessions, nil, &stubUsers{err: portal.ErrUnavailable}, "", discardLogger())
		token, _ := a.Issue("driver", "")

		user, claims, err := a.Authenticate(ctx, token)
		assert.ErrorIs(t, err, portal.ErrUnavailable)
		assert.Nil(t, user)
		require.NotNil(t, claims)
		assert.Equal(t, "driver", claims.Subject)
	})

	t.Run("unreachable redis fails closed", func(t *testing.T) {
		client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
		t.Cleanup(func() { _ = client.Close() })

		a := NewAuthenticator(sessions, NewRedisRevoker(client), &stubUsers{}, "", discardLogger())
		token, _ := a.Issue("driver", "")

		user, _, err := a.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestSessionClearCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	s := NewSession("token", DefaultCookieName, false, rec)
	s.ClearCookie()

	header := rec.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(header, DefaultCookieName+"="))
	assert.Contains(t, header, "Max-Age=0")

	var nilSession *Session
	assert.NotPanics(t, nilSession.ClearCookie)
	assert.Nil(t, SessionFromContext(context.Background()))
	assert.Nil(t, UserFromContext(context.Background()))
	assert.Same(t, s, SessionFromContext(WithSession(context.Background(), s)))
}
