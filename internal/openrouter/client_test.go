package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/config"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{}
	cfg.OpenRouter.BaseURL = baseURL
	cfg.OpenRouter.APIKey = "sk-test"
	cfg.OpenRouter.DefaultModel = "default/model"
	cfg.OpenRouter.AppURL = "https://example.com"
	cfg.OpenRouter.AppName = "interview-prep"
	return NewClient(cfg)
}

func TestChatCompletion(t *testing.T) {
	var gotBody chatRequest
	var gotHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotHeaders = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "hello"}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	got, err := client.ChatCompletion(context.Background(), Request{
		Messages:    []Message{{Role: "user", Content: "hi"}},
		Temperature: 0.7,
		MaxTokens:   100,
	})
	if err != nil {
		t.Fatalf("chat completion: %v", err)
	}
	if got != "hello" {
		t.Fatalf("unexpected reply %q", got)
	}
	if gotBody.Model != "default/model" {
		t.Fatalf("empty model must fall back to the default, got %q", gotBody.Model)
	}
	if gotHeaders.Get("Authorization") != "Bearer sk-test" {
		t.Fatalf("missing bearer auth header")
	}
	if gotHeaders.Get("HTTP-Referer") != "https://example.com" || gotHeaders.Get("X-Title") != "interview-prep" {
		t.Fatalf("attribution headers missing: %v", gotHeaders)
	}
}

func TestChatCompletionModelOverride(t *testing.T) {
	var gotBody chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "ok"}}},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ChatCompletion(context.Background(), Request{
		Model:    "override/model",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("chat completion: %v", err)
	}
	if gotBody.Model != "override/model" {
		t.Fatalf("model override not forwarded, got %q", gotBody.Model)
	}
}

func TestChatCompletionAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "insufficient credits"},
		})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ChatCompletion(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err == nil || !strings.Contains(err.Error(), "insufficient credits") {
		t.Fatalf("expected provider error message, got %v", err)
	}
}

func TestChatCompletionEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ChatCompletion(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err == nil {
		t.Fatalf("expected error for empty choices")
	}
}

func TestChatCompletionRequiresModel(t *testing.T) {
	cfg := &config.Config{}
	cfg.OpenRouter.BaseURL = "http://localhost:0"
	client := NewClient(cfg)
	_, err := client.ChatCompletion(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err == nil {
		t.Fatalf("expected error when no model is configured")
	}
}
