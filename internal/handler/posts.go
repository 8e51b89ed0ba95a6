package handler

import (
	"net/http"
	"strconv"

	"github.com/msomdec/practice-demos/internal/service"
)

// PostHandler serves the local JSON test API.
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// HandleList returns every post.
// GET /posts
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		writeDomainError(w, "list posts", err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// HandleGet returns a single post.
// GET /posts/{id}
func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "post id must be an integer")
		return
	}

	post, err := h.posts.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, "get post", err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}
