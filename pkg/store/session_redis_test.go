package store

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"pacifisai/pkg/domain"
)

func TestRedisSessionStoreRoundTrip(t *testing.T) {
	redis := miniredis.RunT(t)
	s := NewRedisSessionStore(redis.Addr(), "", time.Minute)

	identity := domain.Identity{ID: "acct-1", Email: "a@example.com"}
	token, err := s.NewSession(identity)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	got, ok, err := s.GetIdentityByToken(token)
	if err != nil || !ok || got != identity {
		t.Fatalf("resolve token: got=%+v ok=%v err=%v", got, ok, err)
	}

	if err := s.DeleteSession(token); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, ok, err := s.GetIdentityByToken(token); err != nil || ok {
		t.Fatalf("deleted session should not resolve, ok=%v err=%v", ok, err)
	}
	if err := s.DeleteSession(token); err != nil {
		t.Fatalf("delete is idempotent: %v", err)
	}
}

func TestRedisSessionStoreExpiry(t *testing.T) {
	redis := miniredis.RunT(t)
	s := NewRedisSessionStore(redis.Addr(), "", time.Minute)

	token, err := s.NewSession(domain.Identity{ID: "acct-1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	redis.FastForward(2 * time.Minute)
	if _, ok, err := s.GetIdentityByToken(token); err != nil || ok {
		t.Fatalf("expired session should read as absent, ok=%v err=%v", ok, err)
	}
}

func TestRedisSessionStoreDiscardsMalformedPayload(t *testing.T) {
	redis := miniredis.RunT(t)
	s := NewRedisSessionStore(redis.Addr(), "", time.Minute)

	token, err := s.NewSession(domain.Identity{ID: "acct-1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := redis.Set("pacifisai:session:"+token, "{broken"); err != nil {
		t.Fatalf("corrupt payload: %v", err)
	}
	if _, ok, err := s.GetIdentityByToken(token); err != nil || ok {
		t.Fatalf("malformed payload should read as absent, ok=%v err=%v", ok, err)
	}
}
