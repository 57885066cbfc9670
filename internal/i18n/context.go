package i18n

import "context"

type ctxKey struct{}

func WithLanguage(ctx context.Context, l Language) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request language or Default.
func FromContext(ctx context.Context) Language {
	if l, ok := ctx.Value(ctxKey{}).(Language); ok && l.Valid() {
		return l
	}
	return Default
}
