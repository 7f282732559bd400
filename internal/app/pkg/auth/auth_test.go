package auth

import (
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(42, "MANAGER")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.AccountID != 42 || claims.Role != "MANAGER" {
		t.Errorf("claims = %+v, want account 42 role MANAGER", claims)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _ := NewTokenIssuer("secret-a", time.Hour).Issue(1, "USER")

	if _, err := NewTokenIssuer("secret-b", time.Hour).Validate(token); err == nil {
		t.Error("token signed with another secret must be rejected")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	token, _ := NewTokenIssuer("secret", -time.Minute).Issue(1, "USER")

	if _, err := NewTokenIssuer("secret", -time.Minute).Validate(token); err == nil {
		t.Error("expired token must be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "s3cret!" {
		t.Error("hash must differ from plain text")
	}
	if !CheckPassword(hash, "s3cret!") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password must not verify")
	}
}
