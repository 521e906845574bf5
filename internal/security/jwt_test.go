package security_test

import (
	"testing"
	"time"

	"github.com/avelinom/vidgate/internal/security"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestJWTManager_IssueAndValidate(t *testing.T) {
	manager := security.NewJWTManager("test-secret-key-with-32-chars!!", 24*time.Hour)

	userID := primitive.NewObjectID().Hex()

	token, err := manager.Issue(userID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	if token == "" {
		t.Error("token is empty")
	}

	got, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if got != userID {
		t.Errorf("subject mismatch: got %v, want %v", got, userID)
	}
}

func TestJWTManager_InvalidToken(t *testing.T) {
	manager := security.NewJWTManager("test-secret-key-with-32-chars!!", 24*time.Hour)

	// Invalid token format
	if _, err := manager.Validate("invalid-token"); err == nil {
		t.Error("expected error for invalid token, got nil")
	}

	// Empty token
	if _, err := manager.Validate(""); err == nil {
		t.Error("expected error for empty token, got nil")
	}

	// Token signed with different secret
	otherManager := security.NewJWTManager("different-secret-key-32-chars!!", 24*time.Hour)
	token, _ := otherManager.Issue(primitive.NewObjectID().Hex())

	if _, err := manager.Validate(token); err == nil {
		t.Error("expected error for token signed with different secret, got nil")
	}
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := security.NewJWTManager("test-secret-key-with-32-chars!!", -time.Minute)

	token, err := manager.Issue(primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := manager.Validate(token); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestJWTManager_TokenTTL(t *testing.T) {
	ttl := 24 * time.Hour
	manager := security.NewJWTManager("test-secret-key-with-32-chars!!", ttl)

	if manager.TokenTTL() != ttl {
		t.Errorf("token TTL mismatch: got %v, want %v", manager.TokenTTL(), ttl)
	}
}
