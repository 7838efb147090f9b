package langfuse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPrompt_LocalFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.txt")
	if err := os.WriteFile(path, []byte("local prompt"), 0o600); err != nil {
		t.Fatal(err)
	}

	// No prompt name configured: go straight to the local file
	prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{SavePath: path})
	if err != nil {
		t.Fatalf("LoadPrompt() error = %v", err)
	}
	if prompt != "local prompt" {
		t.Errorf("prompt = %q", prompt)
	}
}

func TestLoadPrompt_NothingConfigured(t *testing.T) {
	if _, err := LoadPrompt(context.Background(), PromptLoaderConfig{}); err == nil {
		t.Fatal("expected error when neither Langfuse nor a local file is configured")
	}
}

func TestLoadPrompt_FetchesAndCaches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"type":   "text",
			"prompt": "managed prompt",
		})
	}))
	defer server.Close()

	savePath := filepath.Join(t.TempDir(), "cache", "prompt.txt")
	prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{
		BaseURL:    server.URL,
		PublicKey:  "pk",
		SecretKey:  "sk",
		PromptName: "sleep-coach",
		SavePath:   savePath,
	})
	if err != nil {
		t.Fatalf("LoadPrompt() error = %v", err)
	}
	if prompt != "managed prompt" {
		t.Errorf("prompt = %q", prompt)
	}

	cached, err := os.ReadFile(savePath)
	if err != nil {
		t.Fatalf("prompt was not cached locally: %v", err)
	}
	if string(cached) != "managed prompt" {
		t.Errorf("cached prompt = %q", cached)
	}
}

func TestLoadPrompt_ChatPromptFlattens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"type": "chat",
			"prompt": []map[string]any{
				{"role": "system", "content": "You are a coach."},
				{"role": "user", "content": "Report follows."},
			},
		})
	}))
	defer server.Close()

	prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{
		BaseURL:    server.URL,
		PublicKey:  "pk",
		SecretKey:  "sk",
		PromptName: "sleep-coach",
	})
	if err != nil {
		t.Fatalf("LoadPrompt() error = %v", err)
	}
	want := "SYSTEM: You are a coach.\n\nUSER: Report follows."
	if prompt != want {
		t.Errorf("prompt = %q, want %q", prompt, want)
	}
}

func TestLoadPrompt_FetchFailureFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "prompt.txt")
	if err := os.WriteFile(path, []byte("stale but usable"), 0o600); err != nil {
		t.Fatal(err)
	}

	prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{
		BaseURL:    server.URL,
		PublicKey:  "pk",
		SecretKey:  "sk",
		PromptName: "sleep-coach",
		SavePath:   path,
	})
	if err != nil {
		t.Fatalf("LoadPrompt() error = %v", err)
	}
	if prompt != "stale but usable" {
		t.Errorf("prompt = %q", prompt)
	}
}
