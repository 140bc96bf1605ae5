package domain

import "time"

type Restaurant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type Dish struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// Favorite is one user's saved dish, keyed by dish ID. The restaurant name
// is joined in for the favorites listing.
type Favorite struct {
	DishID         string    `json:"dish_id"`
	RestaurantID   string    `json:"restaurant_id"`
	DishName       string    `json:"dish_name"`
	Price          float64   `json:"price"`
	Image          string    `json:"image,omitempty"`
	RestaurantName string    `json:"restaurant_name,omitempty"`
	AddedAt        time.Time `json:"added_at"`
}

// Review carries the positive/negative tag returned by the external
// sentiment classifier at submission time.
type Review struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	Comment      string    `json:"comment"`
	Rating       int       `json:"rating"`
	Positive     bool      `json:"positive"`
	CreatedAt    time.Time `json:"created_at"`
}

type DishPopularity struct {
	DishID       string  `json:"dish_id"`
	DishName     string  `json:"dish_name"`
	RestaurantID string  `json:"restaurant_id"`
	Score        float64 `json:"score"`
}
