package service

import (
	"context"

	"plateshare/cart-svc/internal/domain"
)

type CartServiceInterface interface {
	Get(ctx context.Context, user domain.Identity) ([]domain.CartItem, domain.Totals, error)
	AddItem(ctx context.Context, user domain.Identity, item domain.CartItem) ([]domain.CartItem, error)
	UpdateQuantity(ctx context.Context, user domain.Identity, itemID string, quantity int) ([]domain.CartItem, error)
	RemoveItem(ctx context.Context, user domain.Identity, itemID string) ([]domain.CartItem, error)
	Clear(ctx context.Context, user domain.Identity) error
	SubmitOrder(ctx context.Context, user domain.Identity, restaurantID, notes string) (*domain.Order, error)
}

type OrderServiceInterface interface {
	History(ctx context.Context, customerID string) ([]domain.Order, error)
	RestaurantOrders(ctx context.Context, restaurantID string) ([]domain.Order, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	QRCode(ctx context.Context, orderID string) ([]byte, error)
}

type CartRepository interface {
	ListItems(ctx context.Context, userID string) ([]domain.CartItem, error)
	UpsertItem(ctx context.Context, userID string, item domain.CartItem) error
	DeleteItem(ctx context.Context, userID, itemID string) error
	DeleteAll(ctx context.Context, userID string) error
}

type OrderRepository interface {
	InsertOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error)
	ListRestaurantOrders(ctx context.Context, restaurantID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (int64, error)
	SaveQRCode(ctx context.Context, orderID string, qr []byte) error
	GetQRCode(ctx context.Context, orderID string) ([]byte, error)
}

// RestaurantDirectory resolves restaurant identifiers against place-svc.
// A nil result with nil error means the restaurant does not exist.
type RestaurantDirectory interface {
	Lookup(ctx context.Context, restaurantID string) (*domain.RestaurantRef, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, evt domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

var _ CartServiceInterface = (*CartService)(nil)
var _ OrderServiceInterface = (*OrderService)(nil)
