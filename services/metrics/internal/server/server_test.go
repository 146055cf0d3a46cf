package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"pacifisai/services/metrics/internal/app"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{App: app.New()})
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestDatasetEndpoints(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	paths := []string{
		"/metrics/overview",
		"/metrics/analytics",
		"/metrics/feedback",
		"/metrics/knowledge",
		"/metrics/escalation",
		"/metrics/channels",
		"/metrics/notifications",
		"/metrics/empathy",
	}
	for _, path := range paths {
		rec := get(t, router, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: got %d body %s", path, rec.Code, rec.Body.String())
		}
		var payload map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("%s: invalid JSON: %v", path, err)
		}
		if len(payload) == 0 {
			t.Fatalf("%s: empty payload", path)
		}
	}
}

func TestSnapshotEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := get(t, srv.Router(), "/metrics/snapshot")
	if rec.Code != http.StatusOK {
		t.Fatalf("snapshot: got %d body %s", rec.Code, rec.Body.String())
	}
	var snap struct {
		Overview      json.RawMessage `json:"overview"`
		Notifications json.RawMessage `json:"notifications"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snap.Overview) == 0 || len(snap.Notifications) == 0 {
		t.Fatal("snapshot missing sections")
	}
}

func TestKnowledgeImportRejectsNonPDF(t *testing.T) {
	srv := newTestServer(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "junk.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("definitely not a pdf")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/metrics/knowledge/import", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body %s", rec.Code, rec.Body.String())
	}
}

func TestKnowledgeImportRequiresFileField(t *testing.T) {
	srv := newTestServer(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("name", "guide"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/metrics/knowledge/import", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body %s", rec.Code, rec.Body.String())
	}
}

func TestDatasetEndpointsRejectWrites(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/metrics/overview", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
