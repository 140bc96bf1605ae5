package storage

import (
	"context"
	"database/sql"
	"fmt"

	"plateshare/cart-svc/internal/domain"
)

type CartPostgres struct {
	DB *sql.DB
}

func NewCartPostgres(db *sql.DB) *CartPostgres {
	return &CartPostgres{DB: db}
}

func (r *CartPostgres) ListItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT item_id, name, price, COALESCE(image, ''), quantity
		FROM cart_items
		WHERE user_id = $1
		ORDER BY added_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Price, &item.Image, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *CartPostgres) UpsertItem(ctx context.Context, userID string, item domain.CartItem) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO cart_items (user_id, item_id, name, price, image, quantity, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id, item_id) DO UPDATE
		SET quantity = EXCLUDED.quantity, price = EXCLUDED.price, added_at = NOW()
	`, userID, item.ItemID, item.Name, item.Price, item.Image, item.Quantity)
	return err
}

func (r *CartPostgres) DeleteItem(ctx context.Context, userID, itemID string) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM cart_items WHERE user_id = $1 AND item_id = $2", userID, itemID)
	return err
}

func (r *CartPostgres) DeleteAll(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM cart_items WHERE user_id = $1", userID)
	return err
}

type OrderPostgres struct {
	DB *sql.DB
}

func NewOrderPostgres(db *sql.DB) *OrderPostgres {
	return &OrderPostgres{DB: db}
}

// InsertOrder writes the order and its item snapshot in one transaction.
func (r *OrderPostgres) InsertOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_id, customer_name, customer_email,
			restaurant_id, restaurant_name, subtotal, tax, total, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, order.ID, order.CustomerID, order.CustomerName, order.CustomerEmail,
		order.RestaurantID, order.RestaurantName, order.Subtotal, order.Tax,
		order.Total, order.Notes, order.Status, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, item_id, name, price, image, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.ID, item.ItemID, item.Name, item.Price, item.Image, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *OrderPostgres) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, customer_id, customer_name, customer_email, restaurant_id,
			restaurant_name, subtotal, tax, total, COALESCE(notes, ''), status, created_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&order.ID, &order.CustomerID, &order.CustomerName, &order.CustomerEmail,
		&order.RestaurantID, &order.RestaurantName, &order.Subtotal, &order.Tax,
		&order.Total, &order.Notes, &order.Status, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.orderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *OrderPostgres) orderItems(ctx context.Context, orderID string) ([]domain.CartItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT item_id, name, price, COALESCE(image, ''), quantity
		FROM order_items
		WHERE order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Price, &item.Image, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *OrderPostgres) ListCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	return r.listOrders(ctx, "customer_id", customerID)
}

func (r *OrderPostgres) ListRestaurantOrders(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return r.listOrders(ctx, "restaurant_id", restaurantID)
}

func (r *OrderPostgres) listOrders(ctx context.Context, column, value string) ([]domain.Order, error) {
	query := fmt.Sprintf(`
		SELECT id, customer_id, customer_name, customer_email, restaurant_id,
			restaurant_name, subtotal, tax, total, COALESCE(notes, ''), status, created_at
		FROM orders
		WHERE %s = $1
		ORDER BY created_at DESC
	`, column)

	rows, err := r.DB.QueryContext(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.CustomerName,
			&order.CustomerEmail, &order.RestaurantID, &order.RestaurantName,
			&order.Subtotal, &order.Tax, &order.Total, &order.Notes,
			&order.Status, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.orderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *OrderPostgres) UpdateStatus(ctx context.Context, orderID, status string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET status = $1 WHERE id = $2", status, orderID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *OrderPostgres) SaveQRCode(ctx context.Context, orderID string, qr []byte) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *OrderPostgres) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRowContext(ctx,
		"SELECT COALESCE(qr_code, '') FROM orders WHERE id = $1", orderID).Scan(&qr)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return qr, err
}
