package server

import (
	"context"

	"github.com/storefrontkit/storefront-auth/sessions"
)

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession returns a context carrying the request's session.
func WithSession(ctx context.Context, session *sessions.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext returns the session attached by the session
// middleware, or false when the request carried none.
func SessionFromContext(ctx context.Context) (*sessions.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(*sessions.Session)
	return session, ok && session != nil
}
