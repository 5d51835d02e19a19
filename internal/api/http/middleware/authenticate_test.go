package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkozyrev/weekplanner/internal/api/http/httpctx"
	"github.com/mkozyrev/weekplanner/internal/mocks"
	"github.com/mkozyrev/weekplanner/internal/model"
	"github.com/mkozyrev/weekplanner/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	validIdentity := model.Identity{UserID: uuid.New(), Email: "alice@example.com"}

	tests := []struct {
		name        string
		authHeader  string
		parseResult model.Identity
		parseErr    error
		wantStatus  int
		wantCode    string
		wantNext    bool
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "NO_TOKEN",
		},
		{
			name:       "scheme without token",
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN_FORMAT",
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN_FORMAT",
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			parseErr:   assert.AnError,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:        "valid token",
			authHeader:  "Bearer good-token",
			parseResult: validIdentity,
			wantStatus:  http.StatusOK,
			wantNext:    true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokMan := &mocks.TokenManager{}
			if tt.parseErr != nil {
				tokMan.On("Parse", "bad-token").Return(model.Identity{}, tt.parseErr)
			}
			if tt.parseResult.UserID != uuid.Nil {
				tokMan.On("Parse", "good-token").Return(tt.parseResult, nil)
			}

			ctxMgr := httpctx.NewManager()
			m := NewAuthenticate(tokMan, ctxMgr, testutil.MakeNoopLogger())

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				identity, ok := ctxMgr.GetIdentityFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, validIdentity, identity)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			m.Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if tt.wantCode != "" {
				var body struct {
					Success bool `json:"success"`
					Error   struct {
						Code string `json:"code"`
					} `json:"error"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.False(t, body.Success)
				assert.Equal(t, tt.wantCode, body.Error.Code)
			}
		})
	}
}

func TestAuthenticate_CaseInsensitiveScheme(t *testing.T) {
	t.Parallel()

	identity := model.Identity{UserID: uuid.New(), Email: "alice@example.com"}
	tokMan := &mocks.TokenManager{}
	tokMan.On("Parse", "token").Return(identity, nil)

	m := NewAuthenticate(tokMan, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "bearer token")
	rec := httptest.NewRecorder()

	m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
