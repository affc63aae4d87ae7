// File: services/chat/agent.go
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"soulace/models"
)

// Agent is the external chat-completion contract: one message plus history
// in, one reply out.
type Agent interface {
	Converse(ctx context.Context, message string, history []models.ChatMessage) (string, error)
}

// HTTPAgent calls a remote conversational endpoint.
type HTTPAgent struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPAgent builds an agent client for the configured endpoint.
func NewHTTPAgent(endpoint string) *HTTPAgent {
	return &HTTPAgent{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (a *HTTPAgent) Converse(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"message": message,
		"history": history,
	})
	if err != nil {
		return "", fmt.Errorf("marshal converse request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build converse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("converse request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat agent returned status %d", resp.StatusCode)
	}

	var out struct {
		Reply string `json:"reply"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode agent reply: %w", err)
	}
	return out.Reply, nil
}
