package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pacifisai/pkg/store"
	"pacifisai/services/auth/internal/app"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	memory := store.NewMemoryStore()
	appCore, err := app.New(app.Config{Store: memory, Sessions: memory})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return New(Config{App: appCore})
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &payload)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

type sessionBody struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
	Error string `json:"error"`
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) sessionBody {
	t.Helper()
	var body sessionBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestRegisterLoginSessionLogoutFlow(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	creds := map[string]string{"email": "alice@example.com", "password": "secret1"}

	rec := doJSON(t, router, http.MethodPost, "/auth/register", "", creds)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status: got %d body %s", rec.Code, rec.Body.String())
	}
	registered := decodeSession(t, rec)
	if registered.Token == "" || registered.User.Email != "alice@example.com" {
		t.Fatalf("unexpected register body: %+v", registered)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("password")) {
		t.Fatal("register response must not carry password material")
	}

	rec = doJSON(t, router, http.MethodGet, "/auth/session", registered.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("session status: got %d body %s", rec.Code, rec.Body.String())
	}
	restored := decodeSession(t, rec)
	if restored.User != registered.User {
		t.Fatalf("session identity mismatch: got %+v want %+v", restored.User, registered.User)
	}

	rec = doJSON(t, router, http.MethodPost, "/auth/logout", registered.Token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout status: got %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/auth/session", registered.Token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("session after logout: got %d body %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	creds := map[string]string{"email": "alice@example.com", "password": "secret1"}
	if rec := doJSON(t, router, http.MethodPost, "/auth/register", "", creds); rec.Code != http.StatusCreated {
		t.Fatalf("register status: got %d", rec.Code)
	}
	rec := doJSON(t, router, http.MethodPost, "/auth/register", "", creds)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: got %d body %s", rec.Code, rec.Body.String())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	register := map[string]string{"email": "alice@example.com", "password": "secret1"}
	if rec := doJSON(t, router, http.MethodPost, "/auth/register", "", register); rec.Code != http.StatusCreated {
		t.Fatalf("register status: got %d", rec.Code)
	}

	wrongPassword := doJSON(t, router, http.MethodPost, "/auth/login",
		"", map[string]string{"email": "alice@example.com", "password": "nope99"})
	unknownEmail := doJSON(t, router, http.MethodPost, "/auth/login",
		"", map[string]string{"email": "bob@example.com", "password": "secret1"})

	if wrongPassword.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for both failures, got %d and %d", wrongPassword.Code, unknownEmail.Code)
	}
	if decodeSession(t, wrongPassword).Error != decodeSession(t, unknownEmail).Error {
		t.Fatal("credential failures must render the same message")
	}
}

func TestLogoutWithoutTokenIsNoOp(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Router(), http.MethodPost, "/auth/logout", "", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout without token: got %d body %s", rec.Code, rec.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Router(), http.MethodGet, "/auth/register", "", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
