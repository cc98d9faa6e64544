package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tutorboard/internal/model"
)

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt("Marie Dupont", "préfère les exercices pratiques")
	if !strings.Contains(prompt, "Étudiant: Marie Dupont.") {
		t.Fatalf("prompt missing student name: %q", prompt)
	}
	if !strings.Contains(prompt, "Notes: préfère les exercices pratiques.") {
		t.Fatalf("prompt missing notes: %q", prompt)
	}

	prompt = BuildSystemPrompt("", "")
	if !strings.Contains(prompt, "Étudiant: inconnu.") {
		t.Fatalf("expected fallback student name, got %q", prompt)
	}
	if strings.Contains(prompt, "Notes:") {
		t.Fatalf("empty notes must be omitted, got %q", prompt)
	}
}

func TestBuildContentsRoleMapping(t *testing.T) {
	history := []*model.ChatMessage{
		{Role: model.ChatRoleUser, Content: "Bonjour"},
		{Role: model.ChatRoleAssistant, Content: "Bonjour!"},
		{Role: model.ChatRoleSystem, Content: "note interne"},
	}

	contents := buildContents("prompt", history)
	if len(contents) != 4 {
		t.Fatalf("expected 4 contents, got %d", len(contents))
	}
	if contents[0].Role != "user" || contents[0].Parts[0].Text != "prompt" {
		t.Fatal("system prompt must be the first user content")
	}
	if contents[1].Role != "user" {
		t.Fatalf("user role mapped to %q", contents[1].Role)
	}
	if contents[2].Role != "model" {
		t.Fatalf("assistant role must map to model, got %q", contents[2].Role)
	}
	if contents[3].Role != "user" {
		t.Fatalf("system role must map to user, got %q", contents[3].Role)
	}
}

func TestCompleteParsesReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query: %s", r.URL.RawQuery)
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Contents) == 0 {
			t.Error("expected non-empty contents")
		}

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "Voici un plan."}}}},
			},
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	reply, err := client.Complete(context.Background(), "Marie", "", []*model.ChatMessage{
		{Role: model.ChatRoleUser, Content: "Propose un plan de cours."},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if reply != "Voici un plan." {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestCompleteEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	reply, err := client.Complete(context.Background(), "Marie", "", nil)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if reply != emptyReply {
		t.Fatalf("expected fallback reply, got %q", reply)
	}
}

func TestCompleteErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	if _, err := client.Complete(context.Background(), "Marie", "", nil); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestCompleteMissingKey(t *testing.T) {
	client := NewClient("")
	if _, err := client.Complete(context.Background(), "Marie", "", nil); err != ErrMissingAPIKey {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}
