package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"plateshare/api-gateway/internal/gateway"
	"plateshare/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_CartRoute(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		CartSvcURL: "http://cart-svc",
	}, mockClient, mocks.NewTokenVerifier(t))

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{"items":[]}`)),
		Header:     make(http.Header),
	}
	mockResp.Header.Set("Content-Type", "application/json")

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "cart-svc" && req.URL.Path == "/api/cart"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "items")
}

func TestGateway_RouteHandler_RestaurantOrdersGoToCartSvc(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		CartSvcURL:  "http://cart-svc",
		PlaceSvcURL: "http://place-svc",
	}, mockClient, mocks.NewTokenVerifier(t))

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`[]`)),
		Header:     make(http.Header),
	}

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "cart-svc"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/r1/orders", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGateway_RouteHandler_InjectsIdentity(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	verifier := mocks.NewTokenVerifier(t)
	gw := gateway.NewGateway(gateway.Config{
		FeedSvcURL: "http://feed-svc",
	}, mockClient, verifier)

	verifier.On("VerifyToken", mock.Anything, "tok123").
		Return(&gateway.Identity{ID: "u1", Name: "Alice", Email: "alice@example.com"}, nil).Once()

	mockResp := &http.Response{
		StatusCode: http.StatusCreated,
		Body:       io.NopCloser(strings.NewReader(`{}`)),
		Header:     make(http.Header),
	}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("X-User-Id") == "u1" && req.Header.Get("X-User-Name") == "Alice"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer tok123")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestGateway_RouteHandler_StripsSpoofedIdentity(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		FeedSvcURL: "http://feed-svc",
	}, mockClient, mocks.NewTokenVerifier(t))

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`[]`)),
		Header:     make(http.Header),
	}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("X-User-Id") == ""
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("X-User-Id", "spoofed")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGateway_RouteHandler_InvalidToken(t *testing.T) {
	verifier := mocks.NewTokenVerifier(t)
	gw := gateway.NewGateway(gateway.Config{}, nil, verifier)

	verifier.On("VerifyToken", mock.Anything, "bad").
		Return(nil, gateway.ErrInvalidToken).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGateway_RouteHandler_AuthProviderDown(t *testing.T) {
	verifier := mocks.NewTokenVerifier(t)
	gw := gateway.NewGateway(gateway.Config{}, nil, verifier)

	verifier.On("VerifyToken", mock.Anything, "tok").
		Return(nil, errors.New("connection refused")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, mocks.NewTokenVerifier(t))

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		PlaceSvcURL: "http://invalid",
	}, mockClient, mocks.NewTokenVerifier(t))

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}
