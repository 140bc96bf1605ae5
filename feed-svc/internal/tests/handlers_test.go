package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpapi "plateshare/feed-svc/internal/api/http"
	"plateshare/feed-svc/internal/domain"
	"plateshare/feed-svc/internal/mocks"
	"plateshare/feed-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(t *testing.T) (*mux.Router, *mocks.PostServiceInterface, *mocks.CommentServiceInterface) {
	posts := mocks.NewPostServiceInterface(t)
	comments := mocks.NewCommentServiceInterface(t)
	handler := httpapi.NewHandler(posts, comments)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, posts, comments
}

func TestCreatePostHandler(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		body           string
		prepareMocks   func(posts *mocks.PostServiceInterface)
		expectedStatus int
	}{
		{
			name:   "success",
			userID: "u1",
			body:   `{"description": "Best koshari in town"}`,
			prepareMocks: func(posts *mocks.PostServiceInterface) {
				posts.On("Create", mock.Anything, mock.AnythingOfType("*domain.Post")).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "unauthenticated",
			userID: "",
			body:   `{"description": "Best koshari in town"}`,
			prepareMocks: func(posts *mocks.PostServiceInterface) {
				posts.On("Create", mock.Anything, mock.AnythingOfType("*domain.Post")).
					Return(service.ErrNotAuthenticated).Once()
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid_json",
			userID:         "u1",
			body:           `{"description": `,
			prepareMocks:   func(posts *mocks.PostServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, posts, _ := setupTestRouter(t)
			testCase.prepareMocks(posts)

			req := httptest.NewRequest("POST", "/api/posts", strings.NewReader(testCase.body))
			if testCase.userID != "" {
				req.Header.Set("X-User-Id", testCase.userID)
				req.Header.Set("X-User-Name", "Alice")
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, testCase.expectedStatus, rec.Code)
		})
	}
}

func TestGetPostsHandler_PassesPagination(t *testing.T) {
	router, posts, _ := setupTestRouter(t)
	posts.On("List", mock.Anything, "u1", 5, 10).
		Return([]domain.Post{{ID: "p1", Description: "first"}}, nil).Once()

	req := httptest.NewRequest("GET", "/api/posts?limit=5&offset=10", nil)
	req.Header.Set("X-User-Id", "u1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "p1")
}

func TestUpdatePostHandler_NonAuthorForbidden(t *testing.T) {
	router, posts, _ := setupTestRouter(t)
	posts.On("Update", mock.Anything, "intruder", mock.AnythingOfType("*domain.Post")).
		Return(service.ErrNotAuthor).Once()

	req := httptest.NewRequest("PUT", "/api/posts/p1", strings.NewReader(`{"description": "hijack"}`))
	req.Header.Set("X-User-Id", "intruder")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestToggleLikeHandler(t *testing.T) {
	router, posts, _ := setupTestRouter(t)
	posts.On("ToggleLike", mock.Anything, "u1", "p1").
		Return(&domain.LikeResult{PostID: "p1", Liked: true, Likes: 5}, nil).Once()

	req := httptest.NewRequest("POST", "/api/posts/p1/like", nil)
	req.Header.Set("X-User-Id", "u1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"likes":5`)
}

func TestAddCommentHandler_UnknownPost(t *testing.T) {
	router, _, comments := setupTestRouter(t)
	comments.On("Add", mock.Anything, mock.AnythingOfType("*domain.Comment")).
		Return(service.ErrPostNotFound).Once()

	req := httptest.NewRequest("POST", "/api/posts/ghost/comments", strings.NewReader(`{"text": "hi"}`))
	req.Header.Set("X-User-Id", "u1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCommentHandler(t *testing.T) {
	router, _, comments := setupTestRouter(t)
	comments.On("Delete", mock.Anything, "u1", "p1", "c1").Return(nil).Once()

	req := httptest.NewRequest("DELETE", "/api/posts/p1/comments/c1", nil)
	req.Header.Set("X-User-Id", "u1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
