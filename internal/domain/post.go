package domain

import "context"

// Post is a blog post as served by the JSON test API.
type Post struct {
	UserID int64  `json:"userId"`
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	List(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	Upsert(ctx context.Context, post *Post) error
	Count(ctx context.Context) (int, error)
}
