package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mkozyrev/weekplanner/internal/apierr"
	"github.com/mkozyrev/weekplanner/internal/logger"
	"github.com/mkozyrev/weekplanner/internal/model"
	"github.com/mkozyrev/weekplanner/internal/service"
)

// AuthService defines registration, login and profile operations.
type AuthService interface {
	Register(ctx context.Context, params service.RegisterParams) (model.User, string, error)
	Login(ctx context.Context, params service.LoginParams) (model.User, string, error)
	GetUser(ctx context.Context, userID uuid.UUID) (model.User, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the wire form of a user; the password hash never
// appears here.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type sessionResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

// Register creates a new account and returns the user with a fresh token.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, h.logger, apierr.NewErrValidation("invalid request body"))
		return
	}

	h.logger.Debug("Auth handler: processing registration request",
		"email", req.Email)

	user, tokenString, err := h.authService.Register(r.Context(), service.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.logger.Info("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		WriteError(w, h.logger, err)
		return
	}

	WriteData(w, http.StatusCreated, sessionResponse{
		User:  toUserResponse(user),
		Token: tokenString,
	})
}

// Login verifies credentials and returns the user with a fresh token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, h.logger, apierr.NewErrValidation("invalid request body"))
		return
	}

	h.logger.Debug("Auth handler: processing login request",
		"email", req.Email)

	user, tokenString, err := h.authService.Login(r.Context(), service.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		WriteError(w, h.logger, err)
		return
	}

	WriteData(w, http.StatusOK, sessionResponse{
		User:  toUserResponse(user),
		Token: tokenString,
	})
}

// Me returns the profile of the authenticated caller.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, h.logger, apierr.NewErrMissingToken())
		return
	}

	user, err := h.authService.GetUser(r.Context(), identity.UserID)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	WriteData(w, http.StatusOK, toUserResponse(user))
}
