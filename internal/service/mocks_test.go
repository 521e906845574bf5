package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avelinom/vidgate/internal/domain"
)

// MockUserRepository mocks the domain.UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Insert(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

// MockVideoRepository mocks the domain.VideoRepository interface
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) ListActive(ctx context.Context, limit int64) ([]domain.Video, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockVideoRepository) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoRepository) SeedIfEmpty(ctx context.Context, videos []domain.Video) (int64, error) {
	args := m.Called(ctx, videos)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockDashboardCache mocks the DashboardCache interface
type MockDashboardCache struct {
	mock.Mock
}

func (m *MockDashboardCache) Get(ctx context.Context, limit int64) ([]domain.DashboardItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DashboardItem), args.Error(1)
}

func (m *MockDashboardCache) Set(ctx context.Context, limit int64, items []domain.DashboardItem) error {
	args := m.Called(ctx, limit, items)
	return args.Error(0)
}
