package handler

import (
	"net/http"

	"github.com/msomdec/practice-demos/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	db Pinger,
	posts *service.PostService,
	runs *service.RunService,
	shares *service.ShareService,
	admin *service.AdminGuard,
	limiter *service.TokenBucket,
) {
	health := NewHealthHandler(db)
	postHandler := NewPostHandler(posts)
	runHandler := NewRunHandler(runs, shares)

	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimit(limiter, h)
	}

	mux.HandleFunc("GET /healthz", health.HandleHealthz)

	// JSON test API.
	mux.Handle("GET /posts", limited(postHandler.HandleList))
	mux.Handle("GET /posts/{id}", limited(postHandler.HandleGet))

	// Runner and transcripts.
	mux.HandleFunc("GET /{$}", runHandler.HandleHome)
	mux.HandleFunc("GET /runs", runHandler.HandleList)
	mux.Handle("POST /runs", limited(runHandler.HandleCreate))
	mux.Handle("POST /runs/live", limited(runHandler.HandleLive))
	mux.HandleFunc("GET /runs/{id}", runHandler.HandleShow)
	mux.HandleFunc("POST /runs/{id}/share", runHandler.HandleShare)
	mux.HandleFunc("GET /shared/{token}", runHandler.HandleShared)
	mux.Handle("DELETE /runs", RequireAdmin(admin, http.HandlerFunc(runHandler.HandleDeleteAll)))
}
