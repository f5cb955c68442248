package services

import "testing"

func TestAuthService_TokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(nil, "test-secret")
	token, err := svc.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	id, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if id != 42 {
		t.Errorf("organizer id = %d, want 42", id)
	}
}

func TestAuthService_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewAuthService(nil, "secret-a").GenerateToken(1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewAuthService(nil, "secret-b").ValidateToken(token); err == nil {
		t.Error("token signed with a different secret validated")
	}
}

func TestAuthService_RejectsGarbageToken(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(nil, "secret")
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token validated")
	}
}
