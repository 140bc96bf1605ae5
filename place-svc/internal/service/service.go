package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"plateshare/place-svc/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrNotAuthenticated   = errors.New("user must be logged in")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrDishNotFound       = errors.New("dish not found")
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrEmptyReview        = errors.New("review text must not be empty")
)

type RestaurantService struct {
	repo RestaurantRepository
}

func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) Create(ctx context.Context, rest *domain.Restaurant) error {
	if rest.ID == "" {
		rest.ID = uuid.NewString()
	}
	return s.repo.CreateRestaurant(ctx, rest)
}

func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	rest, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, ErrRestaurantNotFound
	}
	return rest, nil
}

func (s *RestaurantService) Update(ctx context.Context, rest *domain.Restaurant) error {
	rows, err := s.repo.UpdateRestaurant(ctx, rest)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}

type DishService struct {
	repo       DishRepository
	cache      MenuCache
	popularity PopularityReader
}

func NewDishService(repo DishRepository, cache MenuCache, popularity PopularityReader) *DishService {
	return &DishService{repo: repo, cache: cache, popularity: popularity}
}

func (s *DishService) Create(ctx context.Context, dish *domain.Dish) error {
	if dish.ID == "" {
		dish.ID = uuid.NewString()
	}
	if err := s.repo.CreateDish(ctx, dish); err != nil {
		return err
	}
	s.invalidateMenu(ctx, dish.RestaurantID)
	return nil
}

// Menu serves from the cache when possible; a miss reads the store and
// refills it.
func (s *DishService) Menu(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	if s.cache != nil {
		if dishes, ok := s.cache.GetMenu(ctx, restaurantID); ok {
			return dishes, nil
		}
	}

	dishes, err := s.repo.ListDishes(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetMenu(ctx, restaurantID, dishes); err != nil {
			log.Printf("Warning: failed to cache menu for %s: %v", restaurantID, err)
		}
	}
	return dishes, nil
}

func (s *DishService) Get(ctx context.Context, restaurantID, dishID string) (*domain.Dish, error) {
	dish, err := s.repo.GetDish(ctx, restaurantID, dishID)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, ErrDishNotFound
	}
	return dish, nil
}

func (s *DishService) Update(ctx context.Context, dish *domain.Dish) error {
	rows, err := s.repo.UpdateDish(ctx, dish)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrDishNotFound
	}
	s.invalidateMenu(ctx, dish.RestaurantID)
	return nil
}

func (s *DishService) Delete(ctx context.Context, restaurantID, dishID string) error {
	rows, err := s.repo.DeleteDish(ctx, restaurantID, dishID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrDishNotFound
	}
	s.invalidateMenu(ctx, restaurantID)
	return nil
}

func (s *DishService) invalidateMenu(ctx context.Context, restaurantID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, restaurantID); err != nil {
		log.Printf("Warning: failed to invalidate menu cache for %s: %v", restaurantID, err)
	}
}

// Popular reads the ranking agg-svc keeps in Redis and resolves dish names
// from the store; when the ranking is empty it falls back to counting
// ordered items directly.
func (s *DishService) Popular(ctx context.Context, restaurantID string, limit int) ([]domain.DishPopularity, error) {
	if limit <= 0 {
		limit = 10
	}

	if s.popularity != nil {
		ids, scores, err := s.popularity.TopDishIDs(ctx, restaurantID, limit)
		if err == nil && len(ids) > 0 {
			var top []domain.DishPopularity
			for i, id := range ids {
				dish, err := s.repo.GetDish(ctx, restaurantID, id)
				if err != nil || dish == nil {
					continue
				}
				top = append(top, domain.DishPopularity{
					DishID:       dish.ID,
					DishName:     dish.Name,
					RestaurantID: dish.RestaurantID,
					Score:        scores[i],
				})
			}
			if len(top) > 0 {
				return top, nil
			}
		}
	}

	return s.repo.TopDishesFromOrders(ctx, restaurantID, limit)
}

type FavoriteService struct {
	repo       FavoriteRepository
	restaurant RestaurantRepository
}

func NewFavoriteService(repo FavoriteRepository, restaurant RestaurantRepository) *FavoriteService {
	return &FavoriteService{repo: repo, restaurant: restaurant}
}

// Add is idempotent: favoriting the same dish twice leaves one entry.
func (s *FavoriteService) Add(ctx context.Context, userID string, fav domain.Favorite) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	rest, err := s.restaurant.GetRestaurant(ctx, fav.RestaurantID)
	if err != nil {
		return fmt.Errorf("failed to resolve restaurant: %w", err)
	}
	if rest == nil {
		return ErrRestaurantNotFound
	}
	fav.AddedAt = time.Now().UTC()
	return s.repo.UpsertFavorite(ctx, userID, fav)
}

func (s *FavoriteService) Remove(ctx context.Context, userID, dishID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	rows, err := s.repo.DeleteFavorite(ctx, userID, dishID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (s *FavoriteService) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	return s.repo.ListFavorites(ctx, userID)
}

type ReviewService struct {
	repo       ReviewRepository
	classifier SentimentClassifier
}

func NewReviewService(repo ReviewRepository, classifier SentimentClassifier) *ReviewService {
	return &ReviewService{repo: repo, classifier: classifier}
}

// Create tags the review through the external classifier before storing it.
// A classifier outage must not block the review: the tag defaults to
// negative and the failure is logged.
func (s *ReviewService) Create(ctx context.Context, review *domain.Review) error {
	if review.UserID == "" {
		return ErrNotAuthenticated
	}
	if review.Comment == "" {
		return ErrEmptyReview
	}
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}

	if s.classifier != nil {
		positive, err := s.classifier.Classify(ctx, review.Comment)
		if err != nil {
			log.Printf("Warning: sentiment classification failed: %v", err)
		} else {
			review.Positive = positive
		}
	}

	review.ID = uuid.NewString()
	review.CreatedAt = time.Now().UTC()
	return s.repo.InsertReview(ctx, review)
}

func (s *ReviewService) List(ctx context.Context, restaurantID string) ([]domain.Review, error) {
	return s.repo.ListReviews(ctx, restaurantID)
}
