package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"plateshare/cart-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPDirectory resolves restaurants against place-svc. A 404 maps to a nil
// ref so the service layer owns the not-found error.
type HTTPDirectory struct {
	BaseURL string
	Client  HTTPClient
}

func NewHTTPDirectory(baseURL string, client HTTPClient) *HTTPDirectory {
	return &HTTPDirectory{BaseURL: baseURL, Client: client}
}

func (d *HTTPDirectory) Lookup(ctx context.Context, restaurantID string) (*domain.RestaurantRef, error) {
	url := fmt.Sprintf("%s/api/restaurants/%s", d.BaseURL, restaurantID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("restaurant lookup returned %d", resp.StatusCode)
	}

	var ref domain.RestaurantRef
	if err := json.NewDecoder(resp.Body).Decode(&ref); err != nil {
		return nil, fmt.Errorf("failed to decode restaurant: %w", err)
	}
	return &ref, nil
}
