package service

import (
	"context"

	"plateshare/feed-svc/internal/domain"
)

type PostServiceInterface interface {
	Create(ctx context.Context, post *domain.Post) error
	List(ctx context.Context, viewerID string, limit, offset int) ([]domain.Post, error)
	Get(ctx context.Context, viewerID, postID string) (*domain.Post, error)
	Update(ctx context.Context, userID string, post *domain.Post) error
	Delete(ctx context.Context, userID, postID string) error
	ToggleLike(ctx context.Context, userID, postID string) (*domain.LikeResult, error)
}

type CommentServiceInterface interface {
	Add(ctx context.Context, comment *domain.Comment) error
	List(ctx context.Context, postID string) ([]domain.Comment, error)
	Delete(ctx context.Context, userID, postID, commentID string) error
}

// PostRepository is the Postgres side of the feed. Readers return nil when
// the row does not exist; the service layer owns the sentinel errors.
type PostRepository interface {
	InsertPost(ctx context.Context, post *domain.Post) error
	ListPosts(ctx context.Context, limit, offset int) ([]domain.Post, error)
	GetPost(ctx context.Context, postID string) (*domain.Post, error)
	UpdatePost(ctx context.Context, post *domain.Post) (int64, error)
	DeletePost(ctx context.Context, postID string) (int64, error)
	AdjustLikes(ctx context.Context, postID string, delta int) (int, error)
}

type CommentRepository interface {
	InsertComment(ctx context.Context, comment *domain.Comment) error
	ListComments(ctx context.Context, postID string) ([]domain.Comment, error)
	ListCommentsForPosts(ctx context.Context, postIDs []string) (map[string][]domain.Comment, error)
	GetComment(ctx context.Context, commentID string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID string) (int64, error)
}

// LikeStore tracks which users liked a post, one Redis set per post.
type LikeStore interface {
	Liked(ctx context.Context, postID, userID string) (bool, error)
	AddLiker(ctx context.Context, postID, userID string) error
	RemoveLiker(ctx context.Context, postID, userID string) error
}

var _ PostServiceInterface = (*PostService)(nil)
var _ CommentServiceInterface = (*CommentService)(nil)
