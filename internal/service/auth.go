package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/mkozyrev/weekplanner/internal/apierr"
	"github.com/mkozyrev/weekplanner/internal/logger"
	"github.com/mkozyrev/weekplanner/internal/model"
)

// emailShape is a minimal local@domain.tld check; real validation happens
// when the confirmation mail bounces, which this service does not send.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 8

// Auth orchestrates registration and login over the user store, the
// password hasher and the token manager.
type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// RegisterParams contains parameters to register a user.
type RegisterParams struct {
	Email    string
	Password string
	Name     string
}

// LoginParams contains parameters to log a user in.
type LoginParams struct {
	Email    string
	Password string
}

// Register validates input, stores a new user with a hashed password and
// issues an identity token. The password itself is never persisted or
// logged.
func (a *Auth) Register(ctx context.Context, params RegisterParams) (model.User, string, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	if err := validateRegistration(params); err != nil {
		return model.User{}, "", err
	}

	existingUser, err := a.userStore.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists",
			"email", params.Email)
		return model.User{}, "", apierr.NewErrEmailExists()
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		PasswordHash: hash,
		Name:         params.Name,
		CreatedAt:    time.Now(),
	}

	savedUser, err := a.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrDuplicateEmail) {
		// The existence check above can race with a concurrent
		// registration; the unique index is the authority.
		a.logger.Info("Auth service: concurrent registration lost the race",
			"email", params.Email)
		return model.User{}, "", apierr.NewErrEmailExists()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := a.tokenManager.Generate(savedUser.ID, savedUser.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registered successfully",
		"email", savedUser.Email,
		"user_id", savedUser.ID)

	return savedUser, tokenString, nil
}

// Login verifies credentials and issues an identity token. An unknown email
// and a wrong password produce the same failure so accounts cannot be
// enumerated.
func (a *Auth) Login(ctx context.Context, params LoginParams) (model.User, string, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", params.Email)

	if params.Email == "" || params.Password == "" {
		return model.User{}, "", apierr.NewErrValidation("email and password are required")
	}

	user, err := a.userStore.GetByEmail(ctx, params.Email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", apierr.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(params.Password, user.PasswordHash) {
		a.logger.Info("Auth service: password mismatch",
			"email", params.Email)
		return model.User{}, "", apierr.NewErrInvalidCredentials()
	}

	tokenString, err := a.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in successfully",
		"email", user.Email,
		"user_id", user.ID)

	return user, tokenString, nil
}

// GetUser returns the user for an authenticated identity.
func (a *Auth) GetUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierr.NewErrInvalidToken()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func validateRegistration(params RegisterParams) error {
	if params.Email == "" || params.Password == "" || params.Name == "" {
		return apierr.NewErrValidation("email, password and name are required")
	}
	if !emailShape.MatchString(params.Email) {
		return apierr.NewErrValidation("email must look like local@domain.tld")
	}
	if len(params.Password) < minPasswordLength {
		return apierr.NewErrValidation("password must be at least 8 characters")
	}
	return nil
}
