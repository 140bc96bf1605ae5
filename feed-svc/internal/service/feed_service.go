package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"plateshare/feed-svc/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrNotAuthenticated = errors.New("user must be logged in")
	ErrEmptyPost        = errors.New("post description must not be empty")
	ErrEmptyComment     = errors.New("comment text must not be empty")
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotAuthor        = errors.New("only the author may modify this")
)

const defaultPageSize = 20

type PostService struct {
	repo     PostRepository
	comments CommentRepository
	likes    LikeStore
}

func NewPostService(repo PostRepository, comments CommentRepository, likes LikeStore) *PostService {
	return &PostService{repo: repo, comments: comments, likes: likes}
}

func (s *PostService) Create(ctx context.Context, post *domain.Post) error {
	if post.UserID == "" {
		return ErrNotAuthenticated
	}
	if post.Description == "" {
		return ErrEmptyPost
	}
	post.ID = uuid.NewString()
	post.Likes = 0
	post.CreatedAt = time.Now().UTC()
	return s.repo.InsertPost(ctx, post)
}

// List returns posts newest first with their comments attached. The viewer's
// own likes are marked when an identity is present.
func (s *PostService) List(ctx context.Context, viewerID string, limit, offset int) ([]domain.Post, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := s.repo.ListPosts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	ids := make([]string, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}
	commentsByPost, err := s.comments.ListCommentsForPosts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	for i := range posts {
		posts[i].Comments = commentsByPost[posts[i].ID]
		if posts[i].Comments == nil {
			posts[i].Comments = []domain.Comment{}
		}
		if viewerID != "" {
			liked, err := s.likes.Liked(ctx, posts[i].ID, viewerID)
			if err != nil {
				log.Printf("Warning: failed to read like state for post %s: %v", posts[i].ID, err)
				continue
			}
			posts[i].Liked = liked
		}
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, viewerID, postID string) (*domain.Post, error) {
	post, err := s.repo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	comments, err := s.comments.ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}
	post.Comments = comments
	if post.Comments == nil {
		post.Comments = []domain.Comment{}
	}
	if viewerID != "" {
		if liked, err := s.likes.Liked(ctx, postID, viewerID); err == nil {
			post.Liked = liked
		}
	}
	return post, nil
}

func (s *PostService) Update(ctx context.Context, userID string, post *domain.Post) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	existing, err := s.repo.GetPost(ctx, post.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}
	if existing.UserID != userID {
		return ErrNotAuthor
	}
	if post.Description == "" {
		return ErrEmptyPost
	}
	rows, err := s.repo.UpdatePost(ctx, post)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	existing, err := s.repo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}
	if existing.UserID != userID {
		return ErrNotAuthor
	}
	_, err = s.repo.DeletePost(ctx, postID)
	return err
}

// ToggleLike flips the viewer's like on a post. The post row's counter is the
// authoritative write; the Redis membership set follows, and a set failure
// reverts the counter so no partial state is left behind.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID string) (*domain.LikeResult, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	post, err := s.repo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	liked, err := s.likes.Liked(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read like state: %w", err)
	}

	delta := 1
	if liked {
		delta = -1
	}
	count, err := s.repo.AdjustLikes(ctx, postID, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to update like count: %w", err)
	}

	if liked {
		err = s.likes.RemoveLiker(ctx, postID, userID)
	} else {
		err = s.likes.AddLiker(ctx, postID, userID)
	}
	if err != nil {
		if count, revertErr := s.repo.AdjustLikes(ctx, postID, -delta); revertErr != nil {
			log.Printf("Warning: failed to revert like count for post %s (now %d): %v", postID, count, revertErr)
		}
		return nil, fmt.Errorf("failed to update likers: %w", err)
	}

	return &domain.LikeResult{PostID: postID, Liked: !liked, Likes: count}, nil
}

type CommentService struct {
	repo  CommentRepository
	posts PostRepository
}

func NewCommentService(repo CommentRepository, posts PostRepository) *CommentService {
	return &CommentService{repo: repo, posts: posts}
}

func (s *CommentService) Add(ctx context.Context, comment *domain.Comment) error {
	if comment.UserID == "" {
		return ErrNotAuthenticated
	}
	if comment.Text == "" {
		return ErrEmptyComment
	}
	post, err := s.posts.GetPost(ctx, comment.PostID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now().UTC()
	return s.repo.InsertComment(ctx, comment)
}

func (s *CommentService) List(ctx context.Context, postID string) ([]domain.Comment, error) {
	return s.repo.ListComments(ctx, postID)
}

func (s *CommentService) Delete(ctx context.Context, userID, postID, commentID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	comment, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil || comment.PostID != postID {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return ErrNotAuthor
	}
	rows, err := s.repo.DeleteComment(ctx, commentID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCommentNotFound
	}
	return nil
}
