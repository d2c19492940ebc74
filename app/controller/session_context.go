package controller

import (
	"context"

	"surya-admin/models"
)

type contextKey string

const (
	sessionKey contextKey = "session"
	tokenKey   contextKey = "sessionToken"
)

// WithSession stores the verified session and its raw token on the request
// context
func WithSession(ctx context.Context, session *models.Session, token string) context.Context {
	ctx = context.WithValue(ctx, sessionKey, session)
	return context.WithValue(ctx, tokenKey, token)
}

// SessionFromContext returns the verified session, if any
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*models.Session)
	return session, ok
}

// TokenFromContext returns the raw token the session was verified from. The
// invoice renderer reuses it when handing a URL to the headless browser.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
