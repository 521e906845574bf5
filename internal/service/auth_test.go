package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/avelinom/vidgate/internal/domain"
	"github.com/avelinom/vidgate/internal/security"
)

func newTestAuthService(users domain.UserRepository) *AuthService {
	hasher := security.NewPasswordHasher(bcrypt.MinCost)
	jwt := security.NewJWTManager("test-secret-key-with-32-chars!!", 24*time.Hour)
	return NewAuthService(users, hasher, jwt)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := newTestAuthService(mockUsers)

		id := primitive.NewObjectID()
		mockUsers.On("FindByEmail", ctx, "a@b.com").Return(nil, nil)
		mockUsers.On("Insert", ctx, mock.AnythingOfType("*domain.User")).Return(id, nil)

		user, err := svc.Signup(ctx, domain.SignupRequest{Email: "a@b.com", Password: "pw1", Name: "Ann"})
		assert.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "a@b.com", user.Email)
		assert.Equal(t, "Ann", user.Name)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "pw1", user.PasswordHash)
		assert.False(t, user.CreatedAt.IsZero())

		mockUsers.AssertExpectations(t)
	})

	t.Run("email taken", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := newTestAuthService(mockUsers)

		mockUsers.On("FindByEmail", ctx, "a@b.com").Return(&domain.User{Email: "a@b.com"}, nil)

		_, err := svc.Signup(ctx, domain.SignupRequest{Email: "a@b.com", Password: "pw1"})
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
		mockUsers.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("duplicate lost race surfaces from insert", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := newTestAuthService(mockUsers)

		mockUsers.On("FindByEmail", ctx, "a@b.com").Return(nil, nil)
		mockUsers.On("Insert", ctx, mock.AnythingOfType("*domain.User")).
			Return(primitive.NilObjectID, domain.ErrEmailTaken)

		_, err := svc.Signup(ctx, domain.SignupRequest{Email: "a@b.com", Password: "pw1"})
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hasher := security.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("pw1")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	stored := &domain.User{
		ID:           primitive.NewObjectID(),
		Email:        "a@b.com",
		PasswordHash: hash,
	}

	t.Run("success yields usable token", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := newTestAuthService(mockUsers)

		mockUsers.On("FindByEmail", ctx, "a@b.com").Return(stored, nil)

		token, err := svc.Login(ctx, domain.LoginRequest{Email: "a@b.com", Password: "pw1"})
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		jwt := security.NewJWTManager("test-secret-key-with-32-chars!!", 24*time.Hour)
		sub, err := jwt.Validate(token)
		assert.NoError(t, err)
		assert.Equal(t, stored.ID.Hex(), sub)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := newTestAuthService(mockUsers)

		mockUsers.On("FindByEmail", ctx, "missing@b.com").Return(nil, nil)
		mockUsers.On("FindByEmail", ctx, "a@b.com").Return(stored, nil)

		_, errAbsent := svc.Login(ctx, domain.LoginRequest{Email: "missing@b.com", Password: "pw1"})
		_, errWrong := svc.Login(ctx, domain.LoginRequest{Email: "a@b.com", Password: "wrong"})

		assert.ErrorIs(t, errAbsent, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, domain.ErrInvalidCredentials)
		assert.Equal(t, errAbsent.Error(), errWrong.Error())
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success excludes password", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := newTestAuthService(mockUsers)

		id := primitive.NewObjectID()
		mockUsers.On("FindByID", ctx, id).Return(&domain.User{
			ID:    id,
			Name:  "Ann",
			Email: "a@b.com",
		}, nil)

		profile, err := svc.CurrentUser(ctx, id.Hex())
		assert.NoError(t, err)
		assert.Equal(t, id.Hex(), profile.ID)
		assert.Equal(t, "a@b.com", profile.Email)
	})

	t.Run("deleted account", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := newTestAuthService(mockUsers)

		id := primitive.NewObjectID()
		mockUsers.On("FindByID", ctx, id).Return(nil, nil)

		_, err := svc.CurrentUser(ctx, id.Hex())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("malformed subject", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := newTestAuthService(mockUsers)

		_, err := svc.CurrentUser(ctx, "not-an-object-id")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		mockUsers.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}
