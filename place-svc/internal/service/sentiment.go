package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPSentimentClassifier calls the external review-classification endpoint:
// POST {"review": <text>} and a {"predicted_rating": 0|1} response, 1 meaning
// positive. The endpoint takes no authentication.
type HTTPSentimentClassifier struct {
	Endpoint string
	Client   HTTPClient
}

func NewHTTPSentimentClassifier(endpoint string, client HTTPClient) *HTTPSentimentClassifier {
	return &HTTPSentimentClassifier{Endpoint: endpoint, Client: client}
}

func (c *HTTPSentimentClassifier) Classify(ctx context.Context, review string) (bool, error) {
	payload, _ := json.Marshal(map[string]string{"review": review})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("sentiment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("sentiment endpoint returned %d", resp.StatusCode)
	}

	var result struct {
		PredictedRating int `json:"predicted_rating"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("failed to decode sentiment response: %w", err)
	}
	return result.PredictedRating == 1, nil
}
