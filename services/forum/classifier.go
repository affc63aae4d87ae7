// File: services/forum/classifier.go
package forum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"soulace/models"
)

// Classifier is the external toxic-content classification contract.
// Implementations must be safe for concurrent use.
type Classifier interface {
	Classify(ctx context.Context, text string) (*models.Verdict, error)
}

// HTTPClassifier calls a remote classification endpoint.
type HTTPClassifier struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPClassifier builds a classifier client for the configured endpoint.
func NewHTTPClassifier(endpoint string) *HTTPClassifier {
	return &HTTPClassifier{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClassifier) Classify(ctx context.Context, text string) (*models.Verdict, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var verdict models.Verdict
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return nil, fmt.Errorf("decode classifier verdict: %w", err)
	}
	return &verdict, nil
}
