package storage

import (
	"context"
	"database/sql"
	"fmt"

	"plateshare/feed-svc/internal/domain"

	"github.com/lib/pq"
)

type FeedPostgres struct {
	db *sql.DB
}

func NewFeedPostgres(db *sql.DB) *FeedPostgres {
	return &FeedPostgres{db: db}
}

func (s *FeedPostgres) InsertPost(ctx context.Context, post *domain.Post) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (id, user_id, user_name, user_image, image, description, likes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		post.ID, post.UserID, post.UserName, post.UserImage, post.Image, post.Description, post.Likes, post.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

func (s *FeedPostgres) ListPosts(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, user_name, COALESCE(user_image, ''), COALESCE(image, ''), description, likes, created_at
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.UserName, &p.UserImage, &p.Image, &p.Description, &p.Likes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (s *FeedPostgres) GetPost(ctx context.Context, postID string) (*domain.Post, error) {
	var p domain.Post
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, user_name, COALESCE(user_image, ''), COALESCE(image, ''), description, likes, created_at
		FROM posts WHERE id = $1`, postID).
		Scan(&p.ID, &p.UserID, &p.UserName, &p.UserImage, &p.Image, &p.Description, &p.Likes, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &p, nil
}

func (s *FeedPostgres) UpdatePost(ctx context.Context, post *domain.Post) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE posts SET description = $1, image = $2 WHERE id = $3`,
		post.Description, post.Image, post.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update post: %w", err)
	}
	return result.RowsAffected()
}

func (s *FeedPostgres) DeletePost(ctx context.Context, postID string) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", postID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete post: %w", err)
	}
	return result.RowsAffected()
}

func (s *FeedPostgres) AdjustLikes(ctx context.Context, postID string, delta int) (int, error) {
	var likes int
	err := s.db.QueryRowContext(ctx, `
		UPDATE posts SET likes = GREATEST(likes + $1, 0) WHERE id = $2
		RETURNING likes`, delta, postID).Scan(&likes)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("post %s not found", postID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to adjust likes: %w", err)
	}
	return likes, nil
}

func (s *FeedPostgres) InsertComment(ctx context.Context, comment *domain.Comment) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comments (id, post_id, user_id, user_name, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		comment.ID, comment.PostID, comment.UserID, comment.UserName, comment.Text, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (s *FeedPostgres) ListComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, post_id, user_id, user_name, text, created_at
		FROM comments WHERE post_id = $1
		ORDER BY created_at ASC`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()
	return scanComments(rows)
}

func (s *FeedPostgres) ListCommentsForPosts(ctx context.Context, postIDs []string) (map[string][]domain.Comment, error) {
	byPost := make(map[string][]domain.Comment, len(postIDs))
	if len(postIDs) == 0 {
		return byPost, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, post_id, user_id, user_name, text, created_at
		FROM comments WHERE post_id = ANY($1)
		ORDER BY created_at ASC`, pq.Array(postIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments, err := scanComments(rows)
	if err != nil {
		return nil, err
	}
	for _, c := range comments {
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}
	return byPost, nil
}

func (s *FeedPostgres) GetComment(ctx context.Context, commentID string) (*domain.Comment, error) {
	var c domain.Comment
	err := s.db.QueryRowContext(ctx, `
		SELECT id, post_id, user_id, user_name, text, created_at
		FROM comments WHERE id = $1`, commentID).
		Scan(&c.ID, &c.PostID, &c.UserID, &c.UserName, &c.Text, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &c, nil
}

func (s *FeedPostgres) DeleteComment(ctx context.Context, commentID string) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", commentID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete comment: %w", err)
	}
	return result.RowsAffected()
}

func scanComments(rows *sql.Rows) ([]domain.Comment, error) {
	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.UserName, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
