package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenRouterGenerateText(t *testing.T) {
	var gotAuth, gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotModel, _ = body["model"].(string)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"summary\":\"ok\"}"}}]}`))
	}))
	defer srv.Close()

	svc := newOpenRouterService(srv.URL, "secret-key", "test/model")
	got, err := svc.GenerateText(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"summary":"ok"}` {
		t.Fatalf("unexpected content: %s", got)
	}
	if gotAuth != "Bearer secret-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotModel != "test/model" {
		t.Fatalf("unexpected model: %q", gotModel)
	}
	if svc.Name() != "openrouter:test/model" {
		t.Fatalf("unexpected name: %s", svc.Name())
	}
}

func TestOpenRouterGenerateText_ClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer srv.Close()

	svc := newOpenRouterService(srv.URL, "wrong", "test/model")
	if _, err := svc.GenerateText(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for 401 response")
	}
}
