package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/msomdec/practice-demos/internal/domain"
	"github.com/msomdec/practice-demos/internal/service"
)

func TestHandlePosts_List(t *testing.T) {
	app := newTestApp(t, appOptions{})

	resp := app.do(t, http.MethodGet, "/posts", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var posts []domain.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		t.Fatalf("decode posts: %v", err)
	}
	if len(posts) != service.SamplePostCount() {
		t.Fatalf("expected %d posts, got %d", service.SamplePostCount(), len(posts))
	}
	for i, p := range posts {
		if p.ID != int64(i+1) {
			t.Fatalf("expected posts ordered by id, got id %d at %d", p.ID, i)
		}
	}
}

func TestHandlePosts_Get(t *testing.T) {
	app := newTestApp(t, appOptions{})

	tests := []struct {
		path   string
		status int
	}{
		{"/posts/1", http.StatusOK},
		{"/posts/999", http.StatusNotFound},
		{"/posts/0", http.StatusBadRequest},
		{"/posts/abc", http.StatusBadRequest},
		{"/this-url-does-not-exist", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := app.do(t, http.MethodGet, tt.path, nil)
			if resp.StatusCode != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}

	resp := app.do(t, http.MethodGet, "/posts/2", nil)
	var post domain.Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		t.Fatalf("decode post: %v", err)
	}
	if post.ID != 2 || post.Title != "qui est esse" {
		t.Fatalf("unexpected post %+v", post)
	}
}
