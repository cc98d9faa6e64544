// Package ai содержит клиент Gemini API для AI-чата по студенту.
// Один запрос — один ответ; ретраев нет, временный сбой отдаётся
// вызывающему как ошибка.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tutorboard/internal/model"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	modelPath      = "/v1beta/models/gemini-1.5-flash:generateContent"

	// Ответ по умолчанию, если модель не вернула текст
	emptyReply = "Pas de réponse."
)

var ErrMissingAPIKey = errors.New("gemini api key is not configured")

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// NewClientWithBaseURL используется в тестах для подмены эндпоинта
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type contentPart struct {
	Text string `json:"text"`
}

type content struct {
	Role  string        `json:"role"`
	Parts []contentPart `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []contentPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// BuildSystemPrompt собирает системную инструкцию ассистента
// по имени студента и заметкам преподавателя
func BuildSystemPrompt(studentName, studentNotes string) string {
	parts := []string{
		"Tu es un assistant pédagogique.",
		"Objectif: aider l'enseignant à suivre la progression de l'étudiant et proposer des cours adaptés.",
		"Réponds toujours en français, de manière claire et structurée.",
	}

	if studentName == "" {
		studentName = "inconnu"
	}
	parts = append(parts, fmt.Sprintf("Étudiant: %s.", studentName))

	if studentNotes != "" {
		parts = append(parts, fmt.Sprintf("Notes: %s.", studentNotes))
	}

	return strings.Join(parts, " ")
}

// buildContents переводит историю чата в формат Gemini:
// системная инструкция идёт первым user-сообщением, роль assistant
// становится model, всё остальное - user
func buildContents(systemPrompt string, history []*model.ChatMessage) []content {
	contents := []content{
		{Role: "user", Parts: []contentPart{{Text: systemPrompt}}},
	}

	for _, message := range history {
		role := "user"
		if message.Role == model.ChatRoleAssistant {
			role = "model"
		}
		contents = append(contents, content{
			Role:  role,
			Parts: []contentPart{{Text: message.Content}},
		})
	}

	return contents
}

// Complete отправляет историю чата в Gemini и возвращает текст ответа
func (c *Client) Complete(ctx context.Context, studentName, studentNotes string, history []*model.ChatMessage) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	payload := generateRequest{
		Contents: buildContents(BuildSystemPrompt(studentName, studentNotes), history),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + modelPath + "?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(text))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return extractReply(decoded), nil
}

func extractReply(resp generateResponse) string {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return emptyReply
	}
	if text := resp.Candidates[0].Content.Parts[0].Text; text != "" {
		return text
	}
	return emptyReply
}
