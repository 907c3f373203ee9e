package auth

import (
	"strings"
	"testing"
)

func TestPasswordServiceImpl_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("securepassword123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	if hash == "securepassword123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	if !svc.Verify(hash, "securepassword123") {
		t.Error("expected the original password to verify")
	}
	if svc.Verify(hash, "wrongpassword") {
		t.Error("expected a wrong password to fail")
	}
	if svc.Verify(hash, "") {
		t.Error("expected an empty password to fail")
	}
}

func TestPasswordServiceImpl_HashesAreSalted(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	second, err := svc.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestPasswordServiceImpl_Verify_BadHash(t *testing.T) {
	svc := NewPasswordService()

	if svc.Verify("not-a-bcrypt-hash", "anything") {
		t.Error("expected verification against garbage to fail")
	}
}
