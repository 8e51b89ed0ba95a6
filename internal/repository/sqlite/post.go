package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/practice-demos/internal/domain"
)

// PostRepository implements domain.PostRepository using SQLite.
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new SQLite-backed PostRepository.
func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{db: db.SqlDB}
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, body FROM posts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Body); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	p := &domain.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, body FROM posts WHERE id = ?`, id,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query post by id: %w", err)
	}
	return p, nil
}

// Upsert inserts post, or replaces the stored post with the same ID.
func (r *PostRepository) Upsert(ctx context.Context, post *domain.Post) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (id, user_id, title, body) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			title = excluded.title,
			body = excluded.body`,
		post.ID, post.UserID, post.Title, post.Body,
	)
	if err != nil {
		return fmt.Errorf("upsert post: %w", err)
	}
	return nil
}

func (r *PostRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}
