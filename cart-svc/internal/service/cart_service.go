package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"plateshare/cart-svc/internal/domain"

	"github.com/google/uuid"
)

// TaxRate is fixed; the original product hardcodes 14% with no per-restaurant
// override.
const TaxRate = 0.14

var (
	ErrNotAuthenticated   = errors.New("user must be logged in")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrItemNotFound       = errors.New("item not in cart")
	ErrInvalidQuantity    = errors.New("quantity must not be negative")
)

// session is one user's cart. Each session has its own lock so a slow order
// submission for one user never blocks another. Holding the lock across
// SubmitOrder also makes a rapid double submission see the already-cleared
// cart and fail the empty-cart precondition instead of ordering twice.
type session struct {
	mu     sync.Mutex
	items  []domain.CartItem
	loaded bool
}

type CartService struct {
	mu       sync.Mutex
	sessions map[string]*session

	repo      CartRepository
	orders    OrderRepository
	directory RestaurantDirectory
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewCartService(repo CartRepository, orders OrderRepository, directory RestaurantDirectory, publisher OrderPublisher, qr QRGenerator) *CartService {
	return &CartService{
		sessions:  make(map[string]*session),
		repo:      repo,
		orders:    orders,
		directory: directory,
		publisher: publisher,
		qrEncoder: qr,
	}
}

func (s *CartService) session(userID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &session{}
		s.sessions[userID] = sess
	}
	return sess
}

// ensureLoaded fills the session from the persisted cart the first time a
// user touches it after logging in. Caller holds sess.mu.
func (s *CartService) ensureLoaded(ctx context.Context, sess *session, userID string) error {
	if sess.loaded {
		return nil
	}
	items, err := s.repo.ListItems(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	sess.items = items
	sess.loaded = true
	return nil
}

// CalculateTotals is pure: it never touches the store and two calls over the
// same items yield identical results.
func CalculateTotals(items []domain.CartItem) domain.Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	tax := subtotal * TaxRate
	return domain.Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

func snapshot(items []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}

func (s *CartService) Get(ctx context.Context, user domain.Identity) ([]domain.CartItem, domain.Totals, error) {
	if !user.Authenticated() {
		return nil, domain.Totals{}, ErrNotAuthenticated
	}
	sess := s.session(user.UserID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := s.ensureLoaded(ctx, sess, user.UserID); err != nil {
		return nil, domain.Totals{}, err
	}
	items := snapshot(sess.items)
	return items, CalculateTotals(items), nil
}

// AddItem increments the quantity when the item is already in the cart and
// appends it with quantity 1 otherwise. The store write happens before the
// session mutation, so a failed write leaves the cart untouched; the same
// store-first policy applies to every cart mutation.
func (s *CartService) AddItem(ctx context.Context, user domain.Identity, item domain.CartItem) ([]domain.CartItem, error) {
	if !user.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	sess := s.session(user.UserID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := s.ensureLoaded(ctx, sess, user.UserID); err != nil {
		return nil, err
	}

	idx := -1
	for i := range sess.items {
		if sess.items[i].ItemID == item.ItemID {
			idx = i
			break
		}
	}

	updated := item
	if idx >= 0 {
		updated = sess.items[idx]
		updated.Quantity++
	} else {
		updated.Quantity = 1
	}

	if err := s.repo.UpsertItem(ctx, user.UserID, updated); err != nil {
		return nil, fmt.Errorf("failed to save cart item: %w", err)
	}

	if idx >= 0 {
		sess.items[idx] = updated
	} else {
		sess.items = append(sess.items, updated)
	}
	return snapshot(sess.items), nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, user domain.Identity, itemID string, quantity int) ([]domain.CartItem, error) {
	if !user.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	if quantity < 1 {
		return s.RemoveItem(ctx, user, itemID)
	}

	sess := s.session(user.UserID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := s.ensureLoaded(ctx, sess, user.UserID); err != nil {
		return nil, err
	}

	idx := -1
	for i := range sess.items {
		if sess.items[i].ItemID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	updated := sess.items[idx]
	updated.Quantity = quantity
	if err := s.repo.UpsertItem(ctx, user.UserID, updated); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	sess.items[idx] = updated
	return snapshot(sess.items), nil
}

func (s *CartService) RemoveItem(ctx context.Context, user domain.Identity, itemID string) ([]domain.CartItem, error) {
	if !user.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	sess := s.session(user.UserID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := s.ensureLoaded(ctx, sess, user.UserID); err != nil {
		return nil, err
	}

	idx := -1
	for i := range sess.items {
		if sess.items[i].ItemID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	if err := s.repo.DeleteItem(ctx, user.UserID, itemID); err != nil {
		return nil, fmt.Errorf("failed to delete cart item: %w", err)
	}

	sess.items = append(sess.items[:idx], sess.items[idx+1:]...)
	return snapshot(sess.items), nil
}

func (s *CartService) Clear(ctx context.Context, user domain.Identity) error {
	if !user.Authenticated() {
		return ErrNotAuthenticated
	}
	sess := s.session(user.UserID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.repo.DeleteAll(ctx, user.UserID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	sess.items = nil
	sess.loaded = true
	return nil
}

// SubmitOrder turns the current cart into an order. The order and its items
// are committed in a single transaction to the authoritative order store; the
// per-restaurant view is derived from that store and from the published
// event, so there is no dual write to fail halfway.
//
// The empty-cart check runs against the session before any store or network
// call is made. A session that has not been loaded yet counts as empty: the
// in-memory cart is authoritative for submission, so after a restart the cart
// must be touched (read or mutated) before it can be submitted.
func (s *CartService) SubmitOrder(ctx context.Context, user domain.Identity, restaurantID, notes string) (*domain.Order, error) {
	if !user.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	sess := s.session(user.UserID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if len(sess.items) == 0 {
		return nil, ErrEmptyCart
	}

	restaurant, err := s.directory.Lookup(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	items := snapshot(sess.items)
	totals := CalculateTotals(items)

	customerName := user.Name
	if customerName == "" {
		customerName = "Anonymous"
	}

	order := &domain.Order{
		ID:             uuid.NewString(),
		CustomerID:     user.UserID,
		CustomerName:   customerName,
		CustomerEmail:  user.Email,
		RestaurantID:   restaurant.ID,
		RestaurantName: restaurant.Name,
		Items:          items,
		Subtotal:       totals.Subtotal,
		Tax:            totals.Tax,
		Total:          totals.Total,
		Notes:          notes,
		Status:         domain.StatusPending,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.orders.InsertOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	if s.publisher != nil {
		evt := domain.OrderEvent{
			Type:         "order_created",
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
			CustomerID:   order.CustomerID,
			Total:        order.Total,
			Status:       order.Status,
			Items:        order.Items,
			Timestamp:    order.CreatedAt,
		}
		if err := s.publisher.PublishOrder(ctx, evt); err != nil {
			log.Printf("Warning: failed to publish order event for %s: %v", order.ID, err)
		}
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err != nil {
			log.Printf("Warning: failed to generate QR code for order %s: %v", order.ID, err)
		} else if err := s.orders.SaveQRCode(ctx, order.ID, qr); err != nil {
			log.Printf("Warning: failed to save QR code for order %s: %v", order.ID, err)
		}
	}

	// The order is committed; the cart must empty even if the persisted
	// copy cannot be deleted right now.
	if err := s.repo.DeleteAll(ctx, user.UserID); err != nil {
		log.Printf("Warning: failed to clear persisted cart for %s: %v", user.UserID, err)
	}
	sess.items = nil
	sess.loaded = true

	return order, nil
}
