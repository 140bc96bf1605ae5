package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"plateshare/cart-svc/internal/domain"
	"plateshare/cart-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Cart   service.CartServiceInterface
	Orders service.OrderServiceInterface
}

func NewHandler(cartSvc service.CartServiceInterface, orderSvc service.OrderServiceInterface) *Handler {
	return &Handler{Cart: cartSvc, Orders: orderSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}", h.updateItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{itemId}", h.removeItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.submitOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.orderHistory).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders", h.restaurantOrders).Methods("GET")
}

// identityFrom reads the identity headers the gateway injects after
// verifying the caller's token.
func identityFrom(r *http.Request) domain.Identity {
	return domain.Identity{
		UserID: r.Header.Get("X-User-Id"),
		Name:   r.Header.Get("X-User-Name"),
		Email:  r.Header.Get("X-User-Email"),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidQuantity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "cart-svc",
	})
}

type cartResponse struct {
	Items  []domain.CartItem `json:"items"`
	Totals domain.Totals     `json:"totals"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	items, totals, err := h.Cart.Get(r.Context(), identityFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: items, Totals: totals})
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if item.ItemID == "" || item.Name == "" {
		http.Error(w, "item_id and name are required", http.StatusBadRequest)
		return
	}

	items, err := h.Cart.AddItem(r.Context(), identityFrom(r), item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: items, Totals: service.CalculateTotals(items)})
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Quantity < 0 {
		writeError(w, service.ErrInvalidQuantity)
		return
	}

	items, err := h.Cart.UpdateQuantity(r.Context(), identityFrom(r), itemID, payload.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: items, Totals: service.CalculateTotals(items)})
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	items, err := h.Cart.RemoveItem(r.Context(), identityFrom(r), mux.Vars(r)["itemId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: items, Totals: service.CalculateTotals(items)})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Clear(r.Context(), identityFrom(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RestaurantID string `json:"restaurant_id"`
		Notes        string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.RestaurantID == "" {
		http.Error(w, "restaurant_id is required", http.StatusBadRequest)
		return
	}

	order, err := h.Cart.SubmitOrder(r.Context(), identityFrom(r), payload.RestaurantID, payload.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) orderHistory(w http.ResponseWriter, r *http.Request) {
	user := identityFrom(r)
	if !user.Authenticated() {
		writeError(w, service.ErrNotAuthenticated)
		return
	}
	orders, err := h.Orders.History(r.Context(), user.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) restaurantOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.RestaurantOrders(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], payload.Status); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.QRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}
