package domain

import "time"

// Identity is the authenticated user as propagated by the api-gateway.
// A zero UserID means the request is anonymous.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

func (id Identity) Authenticated() bool {
	return id.UserID != ""
}

type CartItem struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customer_id"`
	CustomerName   string     `json:"customer_name"`
	CustomerEmail  string     `json:"customer_email"`
	RestaurantID   string     `json:"restaurant_id"`
	RestaurantName string     `json:"restaurant_name"`
	Items          []CartItem `json:"items"`
	Subtotal       float64    `json:"subtotal"`
	Tax            float64    `json:"tax"`
	Total          float64    `json:"total"`
	Notes          string     `json:"notes,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

// RestaurantRef is the slice of a restaurant record the order flow needs.
type RestaurantRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrderEvent is published to Kafka after an order commits; agg-svc consumes
// it to maintain the derived per-restaurant views.
type OrderEvent struct {
	Type         string     `json:"type"`
	OrderID      string     `json:"order_id"`
	RestaurantID string     `json:"restaurant_id"`
	CustomerID   string     `json:"customer_id"`
	Total        float64    `json:"total"`
	Status       string     `json:"status"`
	Items        []CartItem `json:"items"`
	Timestamp    time.Time  `json:"timestamp"`
}
