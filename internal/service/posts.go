package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/msomdec/practice-demos/internal/domain"
)

// DefaultAPIBaseURL is the public JSON test API the network demos call.
const DefaultAPIBaseURL = "https://jsonplaceholder.typicode.com"

// PostClient performs read-only GET requests against a JSON posts API.
type PostClient struct {
	baseURL string
	http    *http.Client
}

// NewPostClient creates a PostClient for baseURL. A zero timeout means the
// request is bounded only by its context.
func NewPostClient(baseURL string, timeout time.Duration) *PostClient {
	return &PostClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// URL returns the absolute URL for path on the configured API.
func (c *PostClient) URL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// GetPost fetches a single post by ID.
func (c *PostClient) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	if err := c.GetJSON(ctx, "posts/"+strconv.FormatInt(id, 10), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts fetches the full post collection.
func (c *PostClient) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := c.GetJSON(ctx, "posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetJSON issues a GET for path and decodes the body into dst. A status
// outside 200-299 yields a *domain.HTTPStatusError and the body is not read.
func (c *PostClient) GetJSON(ctx context.Context, path string, dst any) error {
	target := c.URL(path)
	if _, err := url.Parse(target); err != nil {
		return fmt.Errorf("%w: bad url %q: %v", domain.ErrInvalidInput, target, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.HTTPStatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", target, err)
	}
	return nil
}

// IsHTTPStatus reports whether err carries the given HTTP status code.
func IsHTTPStatus(err error, code int) bool {
	var statusErr *domain.HTTPStatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}
