// Package httpctx carries the authenticated identity on request contexts.
package httpctx

import (
	"context"

	"github.com/mkozyrev/weekplanner/internal/model"
)

type contextKey int

// identityKey is the context key used to store the authenticated identity.
const identityKey contextKey = iota

// Manager sets and retrieves the authenticated identity on a request
// context. The identity lives only for the duration of the request.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext returns a child context carrying the identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext retrieves the identity set by the authentication
// middleware. The boolean is false for unauthenticated contexts.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	return identity, ok
}
