package storage

import (
	"context"
	"database/sql"

	"plateshare/place-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants (id, name, address, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, rest.ID, rest.Name, rest.Address, rest.Description, rest.ImageURL).
		Scan(&rest.CreatedAt)
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(address, ''), COALESCE(description, ''), COALESCE(image_url, ''), created_at
		FROM restaurants
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Description, &rest.ImageURL, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(address, ''), COALESCE(description, ''), COALESCE(image_url, ''), created_at
		FROM restaurants
		WHERE id = $1
	`, id).Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Description, &rest.ImageURL, &rest.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE restaurants
		SET name = $1, address = $2, description = $3, image_url = $4
		WHERE id = $5
	`, rest.Name, rest.Address, rest.Description, rest.ImageURL, rest.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) CreateDish(ctx context.Context, dish *domain.Dish) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO dishes (id, restaurant_id, name, description, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, dish.ID, dish.RestaurantID, dish.Name, dish.Description, dish.Price, dish.ImageURL).
		Scan(&dish.CreatedAt)
}

func (r *PostgresRepository) ListDishes(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), created_at
		FROM dishes
		WHERE restaurant_id = $1
		ORDER BY name
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description, &dish.Price, &dish.ImageURL, &dish.CreatedAt); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) GetDish(ctx context.Context, restaurantID, dishID string) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), created_at
		FROM dishes
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, dishID).
		Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description, &dish.Price, &dish.ImageURL, &dish.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) UpdateDish(ctx context.Context, dish *domain.Dish) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE dishes
		SET name = $1, description = $2, price = $3, image_url = $4
		WHERE restaurant_id = $5 AND id = $6
	`, dish.Name, dish.Description, dish.Price, dish.ImageURL, dish.RestaurantID, dish.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) DeleteDish(ctx context.Context, restaurantID, dishID string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM dishes WHERE restaurant_id = $1 AND id = $2", restaurantID, dishID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// TopDishesFromOrders is the fallback when the Redis ranking is cold: count
// ordered quantities straight from the order items.
func (r *PostgresRepository) TopDishesFromOrders(ctx context.Context, restaurantID string, limit int) ([]domain.DishPopularity, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT d.id, d.name, d.restaurant_id, COALESCE(SUM(oi.quantity), 0) AS score
		FROM dishes d
		JOIN order_items oi ON d.id = oi.item_id
		JOIN orders o ON oi.order_id = o.id
		WHERE d.restaurant_id = $1
		GROUP BY d.id, d.name, d.restaurant_id
		ORDER BY score DESC
		LIMIT $2
	`, restaurantID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []domain.DishPopularity
	for rows.Next() {
		var p domain.DishPopularity
		if err := rows.Scan(&p.DishID, &p.DishName, &p.RestaurantID, &p.Score); err != nil {
			continue
		}
		top = append(top, p)
	}
	return top, rows.Err()
}

func (r *PostgresRepository) UpsertFavorite(ctx context.Context, userID string, fav domain.Favorite) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO favorites (user_id, dish_id, restaurant_id, dish_name, price, image, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, dish_id) DO UPDATE
		SET added_at = EXCLUDED.added_at
	`, userID, fav.DishID, fav.RestaurantID, fav.DishName, fav.Price, fav.Image, fav.AddedAt)
	return err
}

func (r *PostgresRepository) DeleteFavorite(ctx context.Context, userID, dishID string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = $1 AND dish_id = $2", userID, dishID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) ListFavorites(ctx context.Context, userID string) ([]domain.Favorite, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT f.dish_id, f.restaurant_id, f.dish_name, f.price, COALESCE(f.image, ''),
			COALESCE(r.name, ''), f.added_at
		FROM favorites f
		LEFT JOIN restaurants r ON f.restaurant_id = r.id
		WHERE f.user_id = $1
		ORDER BY f.added_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		var fav domain.Favorite
		if err := rows.Scan(&fav.DishID, &fav.RestaurantID, &fav.DishName, &fav.Price, &fav.Image, &fav.RestaurantName, &fav.AddedAt); err != nil {
			continue
		}
		favorites = append(favorites, fav)
	}
	return favorites, rows.Err()
}

func (r *PostgresRepository) InsertReview(ctx context.Context, review *domain.Review) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reviews (id, restaurant_id, user_id, user_name, comment, rating, positive, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, review.ID, review.RestaurantID, review.UserID, review.UserName,
		review.Comment, review.Rating, review.Positive, review.CreatedAt)
	return err
}

func (r *PostgresRepository) ListReviews(ctx context.Context, restaurantID string) ([]domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, user_id, COALESCE(user_name, 'Anonymous'), comment, rating, positive, created_at
		FROM reviews
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.RestaurantID, &rev.UserID, &rev.UserName, &rev.Comment, &rev.Rating, &rev.Positive, &rev.CreatedAt); err != nil {
			continue
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
