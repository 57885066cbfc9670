package rpc

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"

	"github.com/daniilsolovey/truck-portal/internal/auth"
)

// Procedure access classes. Unlisted procedures are public.
var Policy = auth.NewPolicy(map[string]auth.Access{
	"academy.enrollCourse":      auth.Protected,
	"jobs.saveJob":              auth.Protected,
	"marketplace.createListing": auth.Protected,
	"admin.getStats":            auth.AdminOnly,
	"admin.getScrapingStatus":   auth.AdminOnly,
})

// WithAuth resolves the caller from the request session and checks the procedure policy
// before the handler runs. Public procedures run anonymously when the sign-in cannot be recorded.
func WithAuth(logger *slog.Logger, authn *auth.Authenticator, policy auth.Policy) zenrpc.MiddlewareFunc {
	return func(h zenrpc.InvokeFunc) zenrpc.InvokeFunc {
		return func(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
			namespace := zenrpc.NamespaceFromContext(ctx)

			if s := auth.SessionFromContext(ctx); s != nil && s.Token != "" {
				user, claims, err := authn.Authenticate(ctx, s.Token)
				s.Claims = claims
				if err != nil {
					if policy.Access(namespace, method) != auth.Public {
						return errorResponse(err)
					}
					logger.WarnContext(ctx, "sign-in failed, continuing anonymously",
						"namespace", namespace, "method", method, "err", err)
				} else if user != nil {
					ctx = auth.WithUser(ctx, user)
				}
			}

			switch policy.Decide(namespace, method, auth.UserFromContext(ctx)) {
			case auth.Unauthenticated:
				return errorResponse(ErrNotLoggedIn)
			case auth.Forbidden:
				return errorResponse(ErrAccessDenied)
			}

			return h(ctx, method, params)
		}
	}
}

// WithKnownParams rejects named params a procedure does not declare, so a filter field sent
// outside the filter object fails instead of being dropped.
func WithKnownParams(schema smd.Schema) zenrpc.MiddlewareFunc {
	known := make(map[string]map[string]struct{}, len(schema.Services))
	for name, service := range schema.Services {
		params := make(map[string]struct{}, len(service.Parameters))
		for _, p := range service.Parameters {
			params[strings.ToLower(p.Name)] = struct{}{}
		}
		known[strings.ToLower(name)] = params
	}

	return func(h zenrpc.InvokeFunc) zenrpc.InvokeFunc {
		return func(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
			declared, ok := known[zenrpc.NamespaceFromContext(ctx)+"."+method]
			if !ok || len(params) == 0 || zenrpc.IsArray(params) {
				return h(ctx, method, params)
			}

			var named map[string]json.RawMessage
			if err := json.Unmarshal(params, &named); err != nil {
				return h(ctx, method, params)
			}

			for key := range named {
				if _, ok := declared[strings.ToLower(key)]; !ok {
					return errorResponse(invalid(key, "unknown parameter"))
				}
			}

			return h(ctx, method, params)
		}
	}
}
