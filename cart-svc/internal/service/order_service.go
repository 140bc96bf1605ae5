package service

import (
	"context"
	"errors"
	"fmt"

	"plateshare/cart-svc/internal/domain"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

type OrderService struct {
	repo      OrderRepository
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, qrEncoder: qr}
}

func (s *OrderService) History(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.repo.ListCustomerOrders(ctx, customerID)
}

// RestaurantOrders is the derived restaurant-side view: it reads the
// authoritative order store by restaurant index instead of a mirrored copy.
func (s *OrderService) RestaurantOrders(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return s.repo.ListRestaurantOrders(ctx, restaurantID)
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !domain.ValidStatus(status) {
		return ErrInvalidStatus
	}
	rows, err := s.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if rows == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *OrderService) QRCode(ctx context.Context, orderID string) ([]byte, error) {
	qr, err := s.repo.GetQRCode(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 {
		// An empty result is ambiguous: the order may be missing, or it may
		// exist without a stored code. Only regenerate for the latter.
		order, err := s.repo.GetOrder(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, ErrOrderNotFound
		}
		if s.qrEncoder == nil {
			return nil, fmt.Errorf("no QR code stored for order %s", orderID)
		}
		regenerated, err := s.qrEncoder.Generate(orderID)
		if err != nil {
			return nil, err
		}
		_ = s.repo.SaveQRCode(ctx, orderID, regenerated)
		return regenerated, nil
	}
	return qr, nil
}
