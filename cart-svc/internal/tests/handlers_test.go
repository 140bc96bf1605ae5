package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "plateshare/cart-svc/internal/api/http"
	"plateshare/cart-svc/internal/domain"
	"plateshare/cart-svc/internal/mocks"
	"plateshare/cart-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(cartSvc *mocks.CartServiceInterface, orderSvc *mocks.OrderServiceInterface) *mux.Router {
	handler := &httpapi.Handler{Cart: cartSvc, Orders: orderSvc}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func authedRequest(method, target, payload string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(payload))
	req.Header.Set("X-User-Id", "u1")
	req.Header.Set("X-User-Name", "Alice")
	req.Header.Set("X-User-Email", "alice@example.com")
	return req
}

func TestHandler_addItem(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		authed       bool
		prepareMocks func(cartSvc *mocks.CartServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"item_id":"x","name":"Koshari","price":20}`,
			authed:  true,
			prepareMocks: func(cartSvc *mocks.CartServiceInterface) {
				cartSvc.On("AddItem", mock.Anything, mock.Anything, mock.Anything).
					Return([]domain.CartItem{{ItemID: "x", Name: "Koshari", Price: 20, Quantity: 1}}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"quantity":1`,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			authed:       true,
			prepareMocks: func(cartSvc *mocks.CartServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing_item_id",
			payload:      `{"name":"Koshari"}`,
			authed:       true,
			prepareMocks: func(cartSvc *mocks.CartServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "unauthenticated",
			payload: `{"item_id":"x","name":"Koshari","price":20}`,
			prepareMocks: func(cartSvc *mocks.CartServiceInterface) {
				cartSvc.On("AddItem", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, service.ErrNotAuthenticated).Once()
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cartSvc := mocks.NewCartServiceInterface(t)
			orderSvc := mocks.NewOrderServiceInterface(t)
			router := setupTestRouter(cartSvc, orderSvc)
			testCase.prepareMocks(cartSvc)

			var req *http.Request
			if testCase.authed {
				req = authedRequest("POST", "/api/cart/items", testCase.payload)
			} else {
				req = httptest.NewRequest("POST", "/api/cart/items", bytes.NewBufferString(testCase.payload))
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_updateItem_RejectsNegativeQuantity(t *testing.T) {
	cartSvc := mocks.NewCartServiceInterface(t)
	orderSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(cartSvc, orderSvc)

	req := authedRequest("PUT", "/api/cart/items/x", `{"quantity":-1}`)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_submitOrder(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(cartSvc *mocks.CartServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"restaurant_id":"r1","notes":"ring twice"}`,
			prepareMocks: func(cartSvc *mocks.CartServiceInterface) {
				cartSvc.On("SubmitOrder", mock.Anything, mock.Anything, "r1", "ring twice").
					Return(&domain.Order{ID: "o1", Status: domain.StatusPending, Total: 285}, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":"o1"`,
		},
		{
			name:         "missing_restaurant",
			payload:      `{"notes":""}`,
			prepareMocks: func(cartSvc *mocks.CartServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "empty_cart",
			payload: `{"restaurant_id":"r1"}`,
			prepareMocks: func(cartSvc *mocks.CartServiceInterface) {
				cartSvc.On("SubmitOrder", mock.Anything, mock.Anything, "r1", "").
					Return(nil, service.ErrEmptyCart).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "unknown_restaurant",
			payload: `{"restaurant_id":"ghost"}`,
			prepareMocks: func(cartSvc *mocks.CartServiceInterface) {
				cartSvc.On("SubmitOrder", mock.Anything, mock.Anything, "ghost", "").
					Return(nil, service.ErrRestaurantNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cartSvc := mocks.NewCartServiceInterface(t)
			orderSvc := mocks.NewOrderServiceInterface(t)
			router := setupTestRouter(cartSvc, orderSvc)
			testCase.prepareMocks(cartSvc)

			req := authedRequest("POST", "/api/orders", testCase.payload)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_orderHistory_RequiresIdentity(t *testing.T) {
	cartSvc := mocks.NewCartServiceInterface(t)
	orderSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(cartSvc, orderSvc)

	req := httptest.NewRequest("GET", "/api/orders", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_updateOrderStatus(t *testing.T) {
	cartSvc := mocks.NewCartServiceInterface(t)
	orderSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(cartSvc, orderSvc)

	orderSvc.On("UpdateStatus", mock.Anything, "o1", "completed").Return(nil).Once()

	req := authedRequest("PATCH", "/api/orders/o1/status", `{"status":"completed"}`)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_getOrderQRCode_NotFound(t *testing.T) {
	cartSvc := mocks.NewCartServiceInterface(t)
	orderSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(cartSvc, orderSvc)

	orderSvc.On("QRCode", mock.Anything, "o1").Return(nil, nil).Once()

	req := httptest.NewRequest("GET", "/api/orders/o1/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
