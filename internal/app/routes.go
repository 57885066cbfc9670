package app

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/daniilsolovey/truck-portal/internal/auth"
	"github.com/daniilsolovey/truck-portal/internal/i18n"
)

const (
	rpcPath    = "/v1/rpc/"
	healthPath = "/health"

	healthTimeout = 2 * time.Second
	bearerPrefix  = "Bearer "
)

func (a *App) registerRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(a.loggingMiddleware)
	if len(a.Config.App.AllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     a.Config.App.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderAcceptEncoding, "Accept-Language"},
			AllowCredentials: true,
		}))
	}

	e.GET(healthPath, a.handleHealth)

	rpcHandler := echo.WrapHandler(a.rpcServer)
	e.Any(rpcPath, rpcHandler, a.sessionMiddleware)
	e.Any(rpcPath+"*", rpcHandler, a.sessionMiddleware)

	return e
}

func (a *App) handleHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	if err := a.manager.Ping(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "health check failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// sessionMiddleware puts the raw session and the preferred language into the request context.
// Tokens are read from the session cookie first, then from the Authorization header.
func (a *App) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()

		token := ""
		if cookie, err := r.Cookie(a.Config.Auth.CookieName); err == nil {
			token = cookie.Value
		} else if h := r.Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, bearerPrefix) {
			token = strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
		}

		session := auth.NewSession(token, a.Config.Auth.CookieName, a.Config.Auth.SecureCookies, c.Response())
		ctx := auth.WithSession(r.Context(), session)
		ctx = i18n.WithLanguage(ctx, i18n.Match(r.Header.Get("Accept-Language")))

		c.SetRequest(r.WithContext(ctx))
		return next(c)
	}
}

func (a *App) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		r := c.Request()
		a.Logger.InfoContext(r.Context(), "HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}
