package store

import (
	"testing"
	"time"

	"pacifisai/pkg/domain"
)

func TestJWTSessionStoreRoundTrip(t *testing.T) {
	s, err := NewJWTSessionStore("test-secret", time.Minute, nil)
	if err != nil {
		t.Fatalf("new jwt session store: %v", err)
	}
	identity := domain.Identity{ID: "acct-1", Email: "a@example.com"}
	token, err := s.NewSession(identity)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	got, ok, err := s.GetIdentityByToken(token)
	if err != nil || !ok || got != identity {
		t.Fatalf("resolve token: got=%+v ok=%v err=%v", got, ok, err)
	}
}

func TestJWTSessionStoreRejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTSessionStore("secret-a", time.Minute, nil)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	verifier, err := NewJWTSessionStore("secret-b", time.Minute, nil)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	token, err := issuer.NewSession(domain.Identity{ID: "acct-1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, ok, err := verifier.GetIdentityByToken(token); err != nil || ok {
		t.Fatalf("foreign signature should read as absent, ok=%v err=%v", ok, err)
	}
	if _, ok, _ := issuer.GetIdentityByToken("not-a-token"); ok {
		t.Fatalf("garbage token should read as absent")
	}
}

func TestJWTSessionStoreLogoutRevokes(t *testing.T) {
	s, err := NewJWTSessionStore("test-secret", time.Minute, nil)
	if err != nil {
		t.Fatalf("new jwt session store: %v", err)
	}
	token, err := s.NewSession(domain.Identity{ID: "acct-1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := s.DeleteSession(token); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, ok, err := s.GetIdentityByToken(token); err != nil || ok {
		t.Fatalf("revoked token should read as absent, ok=%v err=%v", ok, err)
	}
	if err := s.DeleteSession(token); err != nil {
		t.Fatalf("delete is idempotent: %v", err)
	}
}
