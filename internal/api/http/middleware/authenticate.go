package middleware

import (
	"net/http"
	"strings"

	"github.com/mkozyrev/weekplanner/internal/apierr"
	"github.com/mkozyrev/weekplanner/internal/api/http/handler"
	"github.com/mkozyrev/weekplanner/internal/logger"
	"github.com/mkozyrev/weekplanner/internal/model"
)

// TokenManager resolves identities from bearer tokens.
type TokenManager interface {
	Parse(token string) (model.Identity, error)
}

// Authenticate validates bearer tokens and injects the caller identity into
// the request context. Each request is verified independently; there is no
// session state to consult.
type Authenticate struct {
	tokenManager   TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager TokenManager, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenManager: tokenManager, contextManager: contextManager, logger: logger}
}

// Handle rejects the request unless the Authorization header carries a
// valid bearer token. Failure reasons map to distinct codes (NO_TOKEN,
// INVALID_TOKEN_FORMAT, INVALID_TOKEN) but all reject with 401.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.authenticate(r)
		if err != nil {
			handler.WriteError(w, m.logger, err)
			return
		}

		ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticate(r *http.Request) (model.Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return model.Identity{}, apierr.NewErrMissingToken()
	}

	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
		return model.Identity{}, apierr.NewErrInvalidTokenFormat()
	}

	identity, err := m.tokenManager.Parse(tokenString)
	if err != nil {
		// The parse error distinguishes expired from forged tokens for the
		// log; the client sees one uniform rejection.
		m.logger.Info("Authenticate middleware: token rejected",
			"error", err.Error())
		return model.Identity{}, apierr.NewErrInvalidToken()
	}

	return identity, nil
}
