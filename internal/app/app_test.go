package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/truck-portal/config"
	"github.com/daniilsolovey/truck-portal/internal/auth"
	"github.com/daniilsolovey/truck-portal/internal/i18n"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Port = config.DefaultPort
	cfg.App.AllowedOrigins = []string{"http://localhost:5173"}
	cfg.Auth.Secret = "app-test-secret"
	cfg.Auth.CookieName = config.DefaultCookieName
	cfg.Auth.TokenTTL = time.Hour

	conn := pg.Connect(&pg.Options{
		Addr:        "127.0.0.1:1",
		User:        "nobody",
		Database:    "nowhere",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  0,
		PoolSize:    1,
	})
	t.Cleanup(func() { _ = conn.Close() })

	return New(cfg, conn, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, healthPath, nil)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
}

func TestSessionMiddleware(t *testing.T) {
	a := newTestApp(t)

	capture := func(session **auth.Session, lang *i18n.Language) echo.HandlerFunc {
		return func(c echo.Context) error {
			*session = auth.SessionFromContext(c.Request().Context())
			*lang = i18n.FromContext(c.Request().Context())
			return c.NoContent(http.StatusNoContent)
		}
	}

	t.Run("cookie and accept-language", func(t *testing.T) {
		var (
			session *auth.Session
			lang    i18n.Language
		)

		req := httptest.NewRequest(http.MethodPost, rpcPath, nil)
		req.AddCookie(&http.Cookie{Name: config.DefaultCookieName, Value: "cookie-token"})
		req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
		req.Header.Set("Accept-Language", "de-DE,de;q=0.9,en;q=0.8")
		rec := httptest.NewRecorder()

		c := a.Echo.NewContext(req, rec)
		require.NoError(t, a.sessionMiddleware(capture(&session, &lang))(c))

		require.NotNil(t, session)
		assert.Equal(t, "cookie-token", session.Token)
		assert.Equal(t, i18n.German, lang)
	})

	t.Run("bearer token", func(t *testing.T) {
		var (
			session *auth.Session
			lang    i18n.Language
		)

		req := httptest.NewRequest(http.MethodPost, rpcPath, nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
		rec := httptest.NewRecorder()

		c := a.Echo.NewContext(req, rec)
		require.NoError(t, a.sessionMiddleware(capture(&session, &lang))(c))

		require.NotNil(t, session)
		assert.Equal(t, "header-token", session.Token)
		assert.Equal(t, i18n.English, lang)
	})
}

func TestRPCEndpoint(t *testing.T) {
	a := newTestApp(t)

	token, err := a.authn.Issue("driver-42", "Driver")
	require.NoError(t, err)

	t.Run("anonymous me", func(t *testing.T) {
		body := `{"jsonrpc":"2.0","id":1,"method":"auth.me","params":{}}`
		req := httptest.NewRequest(http.MethodPost, rpcPath, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		a.Echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Result json.RawMessage `json:"result"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.JSONEq(t, "null", string(resp.Result))
	})

	t.Run("signed-in caller reads without storage", func(t *testing.T) {
		body := `{"jsonrpc":"2.0","id":1,"method":"auth.me","params":{}}`
		req := httptest.NewRequest(http.MethodPost, rpcPath, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		a.Echo.ServeHTTP(rec, req)

		var resp struct {
			Result json.RawMessage `json:"result"`
			Error  *struct {
				Code int `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Nil(t, resp.Error)
		assert.JSONEq(t, "null", string(resp.Result))
	})

	t.Run("signed-in caller cannot write without storage", func(t *testing.T) {
		body := `{"jsonrpc":"2.0","id":1,"method":"jobs.saveJob","params":{"jobId":1}}`
		req := httptest.NewRequest(http.MethodPost, rpcPath, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		a.Echo.ServeHTTP(rec, req)

		var resp struct {
			Error *struct {
				Code int `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, http.StatusServiceUnavailable, resp.Error.Code)
	})
}
