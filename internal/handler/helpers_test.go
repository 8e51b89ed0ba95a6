package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/practice-demos/internal/handler"
	"github.com/msomdec/practice-demos/internal/repository/sqlite"
	"github.com/msomdec/practice-demos/internal/service"
)

const (
	testShareSecret = "test-secret-for-handler-tests-0123456789"
	testAdminKey    = "handler-test-admin-key"
)

// testApp is a fully wired server backed by a temporary database.
type testApp struct {
	srv    *httptest.Server
	db     *sqlite.DB
	posts  *service.PostService
	runs   *service.RunService
	shares *service.ShareService
}

type appOptions struct {
	demos    func(baseURL string) []service.Demo
	limiter  *service.TokenBucket
	shareTTL time.Duration
}

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func helloDemos(string) []service.Demo {
	return []service.Demo{
		{Name: "hello", Run: func(_ context.Context, c *service.Console) { c.Log("hello from demo") }},
		{Name: "oops", Run: func(_ context.Context, c *service.Console) { c.Error("CATCH:", "expected failure") }},
	}
}

func newTestApp(t *testing.T, opts appOptions) *testApp {
	t.Helper()
	if opts.demos == nil {
		opts.demos = helloDemos
	}
	if opts.shareTTL == 0 {
		opts.shareTTL = time.Hour
	}
	if opts.limiter == nil {
		opts.limiter = service.NewTokenBucket(100, 100)
	}

	db := newTestDB(t)
	posts := service.NewPostService(db.Posts())
	if err := posts.SeedSamples(context.Background()); err != nil {
		t.Fatalf("SeedSamples: %v", err)
	}

	hash, err := service.HashAdminKey(testAdminKey, 4)
	if err != nil {
		t.Fatalf("HashAdminKey: %v", err)
	}
	admin, err := service.NewAdminGuard(hash)
	if err != nil {
		t.Fatalf("NewAdminGuard: %v", err)
	}

	// Routes are registered after the server starts so demos can call back
	// into the local API.
	mux := http.NewServeMux()
	srv := httptest.NewServer(handler.SecurityHeaders(mux))
	t.Cleanup(srv.Close)

	runs := service.NewRunService(db.Runs(), service.NewRunner(opts.demos(srv.URL)))
	shares := service.NewShareService(testShareSecret, opts.shareTTL)
	handler.RegisterRoutes(mux, db, posts, runs, shares, admin, opts.limiter)

	return &testApp{srv: srv, db: db, posts: posts, runs: runs, shares: shares}
}

func (a *testApp) do(t *testing.T, method, path string, header http.Header) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, a.srv.URL+path, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
