package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mkozyrev/weekplanner/internal/model"
	"github.com/mkozyrev/weekplanner/internal/service"
)

// AuthService is a mock implementation of the handler AuthService interface.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, params service.RegisterParams) (model.User, string, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.String(1), args.Error(2)
}

func (m *AuthService) Login(ctx context.Context, params service.LoginParams) (model.User, string, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.String(1), args.Error(2)
}

func (m *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.User), args.Error(1)
}
