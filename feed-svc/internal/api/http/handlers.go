package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"plateshare/feed-svc/internal/domain"
	"plateshare/feed-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Posts    service.PostServiceInterface
	Comments service.CommentServiceInterface
}

func NewHandler(postSvc service.PostServiceInterface, commentSvc service.CommentServiceInterface) *Handler {
	return &Handler{Posts: postSvc, Comments: commentSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/posts", h.createPost).Methods("POST")
	r.HandleFunc("/api/posts", h.getPosts).Methods("GET")
	r.HandleFunc("/api/posts/{postId}", h.getPost).Methods("GET")
	r.HandleFunc("/api/posts/{postId}", h.updatePost).Methods("PUT")
	r.HandleFunc("/api/posts/{postId}", h.deletePost).Methods("DELETE")
	r.HandleFunc("/api/posts/{postId}/like", h.toggleLike).Methods("POST")
	r.HandleFunc("/api/posts/{postId}/comments", h.addComment).Methods("POST")
	r.HandleFunc("/api/posts/{postId}/comments", h.getComments).Methods("GET")
	r.HandleFunc("/api/posts/{postId}/comments/{commentId}", h.deleteComment).Methods("DELETE")
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
	case errors.Is(err, service.ErrNotAuthor):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrEmptyPost),
		errors.Is(err, service.ErrEmptyComment):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "feed-svc",
	})
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var post domain.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	post.UserID = userIDFrom(r)
	post.UserName = r.Header.Get("X-User-Name")

	if err := h.Posts.Create(r.Context(), &post); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (h *Handler) getPosts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	posts, err := h.Posts.List(r.Context(), userIDFrom(r), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.Posts.Get(r.Context(), userIDFrom(r), mux.Vars(r)["postId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	var post domain.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	post.ID = mux.Vars(r)["postId"]

	if err := h.Posts.Update(r.Context(), userIDFrom(r), &post); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.Posts.Delete(r.Context(), userIDFrom(r), mux.Vars(r)["postId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	result, err := h.Posts.ToggleLike(r.Context(), userIDFrom(r), mux.Vars(r)["postId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	var comment domain.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	comment.PostID = mux.Vars(r)["postId"]
	comment.UserID = userIDFrom(r)
	comment.UserName = r.Header.Get("X-User-Name")

	if err := h.Comments.Add(r.Context(), &comment); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func (h *Handler) getComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.Comments.List(r.Context(), mux.Vars(r)["postId"])
	if err != nil {
		writeError(w, err)
		return
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Comments.Delete(r.Context(), userIDFrom(r), vars["postId"], vars["commentId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
