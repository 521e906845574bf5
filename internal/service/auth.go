package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avelinom/vidgate/internal/domain"
	"github.com/avelinom/vidgate/internal/security"
)

// AuthService handles signup, login, and identity resolution.
type AuthService struct {
	users  domain.UserRepository
	hasher *security.PasswordHasher
	jwt    *security.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(users domain.UserRepository, hasher *security.PasswordHasher, jwt *security.JWTManager) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Signup creates a new account. It does not auto-login. The lookup here
// is best-effort; the unique email index backs it up, so a concurrent
// duplicate still surfaces as domain.ErrEmailTaken from Insert.
func (s *AuthService) Signup(ctx context.Context, input domain.SignupRequest) (*domain.User, error) {
	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input domain.LoginRequest) (string, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.jwt.Issue(user.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// CurrentUser resolves a token subject to a profile, password excluded.
// An account deleted between token issuance and this call surfaces as
// domain.ErrUserNotFound.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.Profile, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	return domain.NewProfile(user), nil
}
