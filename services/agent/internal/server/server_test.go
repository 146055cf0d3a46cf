package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pacifisai/pkg/domain"
	"pacifisai/pkg/store"
	"pacifisai/services/agent/internal/app"
	"pacifisai/services/agent/internal/matcher"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	appCore, err := app.New(app.Config{
		Store:       store.NewMemoryStore(),
		DelayFactor: 0.01,
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return New(Config{App: appCore})
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &payload)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func openConversation(t *testing.T, router http.Handler) domain.Conversation {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/agent/conversations", map[string]string{"userId": "user-1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("open conversation: got %d body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Conversation domain.Conversation `json:"conversation"`
		Greeting     domain.Message      `json:"greeting"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Greeting.Text != matcher.Greeting.Reply {
		t.Fatalf("unexpected greeting: %q", body.Greeting.Text)
	}
	return body.Conversation
}

func TestConversationFlow(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	conversation := openConversation(t, router)

	rec := doJSON(t, router, http.MethodPost,
		"/agent/conversations/"+conversation.ID+"/messages", map[string]string{"text": "hello there"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("send message: got %d body %s", rec.Code, rec.Body.String())
	}
	var sent struct {
		Message        domain.Message   `json:"message"`
		Reply          domain.Message   `json:"reply"`
		Sentiment      domain.Sentiment `json:"sentiment"`
		LatencySeconds float64          `json:"latencySeconds"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &sent); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := matcher.Match("hello there")
	if sent.Reply.Text != want.Reply || sent.Sentiment != want.Sentiment || sent.LatencySeconds != want.LatencySeconds {
		t.Fatalf("reply mismatch: %+v", sent)
	}

	rec = doJSON(t, router, http.MethodGet, "/agent/conversations/"+conversation.ID+"/messages", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list messages: got %d body %s", rec.Code, rec.Body.String())
	}
	var listed struct {
		Items []domain.Message `json:"items"`
		Count int              `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if listed.Count != 3 {
		t.Fatalf("expected greeting+user+assistant, got %d", listed.Count)
	}

	rec = doJSON(t, router, http.MethodGet, "/agent/conversations?userId=user-1", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), conversation.ID) {
		t.Fatalf("list conversations: got %d body %s", rec.Code, rec.Body.String())
	}
}

func TestSendMessageUnknownConversation(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Router(), http.MethodPost,
		"/agent/conversations/missing/messages", map[string]string{"text": "hello"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body %s", rec.Code, rec.Body.String())
	}
}

func TestSendMessageRequiresText(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()
	conversation := openConversation(t, router)
	rec := doJSON(t, router, http.MethodPost,
		"/agent/conversations/"+conversation.ID+"/messages", map[string]string{"text": ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body %s", rec.Code, rec.Body.String())
	}
}

func TestExportWithoutArchive(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()
	conversation := openConversation(t, router)
	rec := doJSON(t, router, http.MethodPost, "/agent/conversations/"+conversation.ID+"/export", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d body %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodDelete, "/agent/conversations/"+conversation.ID+"/export", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 on delete, got %d body %s", rec.Code, rec.Body.String())
	}
}

func TestListConversationsRequiresUserID(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Router(), http.MethodGet, "/agent/conversations", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body %s", rec.Code, rec.Body.String())
	}
}
