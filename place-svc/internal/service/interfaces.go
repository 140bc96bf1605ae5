package service

import (
	"context"

	"plateshare/place-svc/internal/domain"
)

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) (int64, error)
}

type DishRepository interface {
	CreateDish(ctx context.Context, dish *domain.Dish) error
	ListDishes(ctx context.Context, restaurantID string) ([]domain.Dish, error)
	GetDish(ctx context.Context, restaurantID, dishID string) (*domain.Dish, error)
	UpdateDish(ctx context.Context, dish *domain.Dish) (int64, error)
	DeleteDish(ctx context.Context, restaurantID, dishID string) (int64, error)
	TopDishesFromOrders(ctx context.Context, restaurantID string, limit int) ([]domain.DishPopularity, error)
}

type FavoriteRepository interface {
	UpsertFavorite(ctx context.Context, userID string, fav domain.Favorite) error
	DeleteFavorite(ctx context.Context, userID, dishID string) (int64, error)
	ListFavorites(ctx context.Context, userID string) ([]domain.Favorite, error)
}

type ReviewRepository interface {
	InsertReview(ctx context.Context, review *domain.Review) error
	ListReviews(ctx context.Context, restaurantID string) ([]domain.Review, error)
}

// MenuCache holds the rendered menu per restaurant with a short TTL.
type MenuCache interface {
	GetMenu(ctx context.Context, restaurantID string) ([]domain.Dish, bool)
	SetMenu(ctx context.Context, restaurantID string, dishes []domain.Dish) error
	Invalidate(ctx context.Context, restaurantID string) error
}

// PopularityReader reads the dish-popularity rankings agg-svc maintains.
type PopularityReader interface {
	TopDishIDs(ctx context.Context, restaurantID string, limit int) ([]string, []float64, error)
}

// SentimentClassifier tags a review text as positive or negative. Remote
// call; failures are the caller's to absorb.
type SentimentClassifier interface {
	Classify(ctx context.Context, review string) (bool, error)
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, rest *domain.Restaurant) error
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	Update(ctx context.Context, rest *domain.Restaurant) error
}

type DishServiceInterface interface {
	Create(ctx context.Context, dish *domain.Dish) error
	Menu(ctx context.Context, restaurantID string) ([]domain.Dish, error)
	Get(ctx context.Context, restaurantID, dishID string) (*domain.Dish, error)
	Update(ctx context.Context, dish *domain.Dish) error
	Delete(ctx context.Context, restaurantID, dishID string) error
	Popular(ctx context.Context, restaurantID string, limit int) ([]domain.DishPopularity, error)
}

type FavoriteServiceInterface interface {
	Add(ctx context.Context, userID string, fav domain.Favorite) error
	Remove(ctx context.Context, userID, dishID string) error
	List(ctx context.Context, userID string) ([]domain.Favorite, error)
}

type ReviewServiceInterface interface {
	Create(ctx context.Context, review *domain.Review) error
	List(ctx context.Context, restaurantID string) ([]domain.Review, error)
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
var _ DishServiceInterface = (*DishService)(nil)
var _ FavoriteServiceInterface = (*FavoriteService)(nil)
var _ ReviewServiceInterface = (*ReviewService)(nil)
