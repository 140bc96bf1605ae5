package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	AuthSvcURL  string
	CartSvcURL  string
	PlaceSvcURL string
	FeedSvcURL  string
}

type Gateway struct {
	config   Config
	client   HTTPClient
	verifier TokenVerifier
}

func NewGateway(config Config, client HTTPClient, verifier TokenVerifier) *Gateway {
	return &Gateway{
		config:   config,
		client:   client,
		verifier: verifier,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Authenticate resolves the bearer token into identity headers for the
// downstream services. Inbound identity headers are always stripped first so
// callers cannot spoof them; requests without a token pass through anonymous.
func (g *Gateway) Authenticate(w http.ResponseWriter, r *http.Request) bool {
	r.Header.Del("X-User-Id")
	r.Header.Del("X-User-Name")
	r.Header.Del("X-User-Email")

	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return true
	}
	token := strings.TrimPrefix(authorization, "Bearer ")
	if token == authorization || token == "" {
		http.Error(w, "malformed authorization header", http.StatusUnauthorized)
		return false
	}

	identity, err := g.verifier.VerifyToken(r.Context(), token)
	if errors.Is(err, ErrInvalidToken) {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return false
	}
	if err != nil {
		log.Printf("ERROR: Token verification failed: %v", err)
		http.Error(w, "auth provider unavailable", http.StatusBadGateway)
		return false
	}

	r.Header.Set("X-User-Id", identity.ID)
	r.Header.Set("X-User-Name", identity.Name)
	r.Header.Set("X-User-Email", identity.Email)
	return true
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequest(r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("ROUTE: %s %s", r.Method, path)

	// Auth endpoints go to the provider untouched, token and all.
	if strings.HasPrefix(path, "/api/auth/") {
		g.ProxyRequest(w, r, g.config.AuthSvcURL)
		return
	}

	if !g.Authenticate(w, r) {
		return
	}

	if strings.HasPrefix(path, "/api/cart") || strings.HasPrefix(path, "/api/orders") {
		g.ProxyRequest(w, r, g.config.CartSvcURL)
		return
	}

	if strings.HasPrefix(path, "/api/restaurants") || strings.HasPrefix(path, "/api/favorites") {
		// Restaurant order listings live in cart-svc, not place-svc.
		if strings.Contains(path, "/orders") {
			g.ProxyRequest(w, r, g.config.CartSvcURL)
			return
		}
		g.ProxyRequest(w, r, g.config.PlaceSvcURL)
		return
	}

	if strings.HasPrefix(path, "/api/posts") {
		g.ProxyRequest(w, r, g.config.FeedSvcURL)
		return
	}

	log.Printf("[GATEWAY] Unmatched API route: %s", path)
	http.Error(w, "API route not found", http.StatusNotFound)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}
