package security_test

import (
	"testing"

	"github.com/avelinom/vidgate/internal/security"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := security.NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("securePassword123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "" {
		t.Error("expected non-empty hash")
	}
	if hash == "securePassword123" {
		t.Error("hash should not equal plaintext password")
	}

	if !hasher.Verify("securePassword123", hash) {
		t.Error("expected correct password to verify")
	}
	if hasher.Verify("wrongPassword456", hash) {
		t.Error("expected wrong password to fail verification")
	}
	if hasher.Verify("", hash) {
		t.Error("expected empty password to fail verification")
	}
}

func TestPasswordHasher_FreshSaltPerCall(t *testing.T) {
	hasher := security.NewPasswordHasher(bcrypt.MinCost)

	hash1, err := hasher.Hash("securePassword123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hash2, err := hasher.Hash("securePassword123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("same password should produce different hashes due to salt")
	}
}

func TestPasswordHasher_InvalidHash(t *testing.T) {
	hasher := security.NewPasswordHasher(bcrypt.MinCost)

	if hasher.Verify("password", "not-a-valid-bcrypt-hash") {
		t.Error("expected invalid hash format to fail verification")
	}
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	// Out-of-range costs fall back to the default rather than failing
	// every Hash call later.
	hasher := security.NewPasswordHasher(99)

	hash, err := hasher.Hash("pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("failed to read cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}
