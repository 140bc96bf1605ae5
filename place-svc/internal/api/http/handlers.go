package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"plateshare/place-svc/internal/domain"
	"plateshare/place-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Dishes      service.DishServiceInterface
	Favorites   service.FavoriteServiceInterface
	Reviews     service.ReviewServiceInterface
}

func NewHandler(restSvc service.RestaurantServiceInterface, dishSvc service.DishServiceInterface, favSvc service.FavoriteServiceInterface, reviewSvc service.ReviewServiceInterface) *Handler {
	return &Handler{
		Restaurants: restSvc,
		Dishes:      dishSvc,
		Favorites:   favSvc,
		Reviews:     reviewSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PUT")

	r.HandleFunc("/api/restaurants/{restaurantId}/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/popular", h.getPopularDishes).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.getDish).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.updateDish).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.deleteDish).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/reviews", h.createReview).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/reviews", h.getReviews).Methods("GET")

	r.HandleFunc("/api/favorites", h.getFavorites).Methods("GET")
	r.HandleFunc("/api/favorites/{dishId}", h.addFavorite).Methods("PUT")
	r.HandleFunc("/api/favorites/{dishId}", h.removeFavorite).Methods("DELETE")
}

func userIDFrom(r *http.Request) string {
	return r.Header.Get("X-User-Id")
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
	case errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrEmptyReview):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrDishNotFound),
		errors.Is(err, service.ErrFavoriteNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "place-svc",
	})
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if rest.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if err := h.Restaurants.Create(r.Context(), &rest); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest.ID = mux.Vars(r)["id"]
	if err := h.Restaurants.Update(r.Context(), &rest); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.RestaurantID = mux.Vars(r)["restaurantId"]
	if dish.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if err := h.Dishes.Create(r.Context(), &dish); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Dishes.Menu(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getPopularDishes(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	top, err := h.Dishes.Popular(r.Context(), mux.Vars(r)["restaurantId"], limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dish, err := h.Dishes.Get(r.Context(), vars["restaurantId"], vars["dishId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	vars := mux.Vars(r)
	dish.RestaurantID = vars["restaurantId"]
	dish.ID = vars["dishId"]
	if err := h.Dishes.Update(r.Context(), &dish); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Dishes.Delete(r.Context(), vars["restaurantId"], vars["dishId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	review.RestaurantID = mux.Vars(r)["restaurantId"]
	review.UserID = userIDFrom(r)
	review.UserName = r.Header.Get("X-User-Name")

	if err := h.Reviews.Create(r.Context(), &review); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Reviews.List(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) getFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.Favorites.List(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	var fav domain.Favorite
	if err := json.NewDecoder(r.Body).Decode(&fav); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	fav.DishID = mux.Vars(r)["dishId"]
	if fav.RestaurantID == "" {
		http.Error(w, "restaurant_id is required", http.StatusBadRequest)
		return
	}
	if err := h.Favorites.Add(r.Context(), userIDFrom(r), fav); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fav)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.Favorites.Remove(r.Context(), userIDFrom(r), mux.Vars(r)["dishId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
