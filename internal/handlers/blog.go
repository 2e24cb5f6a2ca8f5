package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"curiocart/internal/models"
	"curiocart/internal/services"
)

// BlogHandler handles the blog pages.
type BlogHandler struct {
	log  *slog.Logger
	blog services.BlogServiceInterface
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(log *slog.Logger, blog services.BlogServiceInterface) *BlogHandler {
	return &BlogHandler{
		log:  log,
		blog: blog,
	}
}

// BlogPage lists all posts.
func (h *BlogHandler) BlogPage(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.ListPosts(r.Context())
	if err != nil {
		h.log.Error("failed to list blog posts", "error", err)
		http.Error(w, "Failed to load blog", http.StatusInternalServerError)
		return
	}
	render(w, http.StatusOK, "blog.html", map[string]any{"Blogs": posts})
}

// WriteBlogPage shows the editor along with what is already published.
func (h *BlogHandler) WriteBlogPage(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.ListPosts(r.Context())
	if err != nil {
		h.log.Error("failed to list blog posts", "error", err)
		http.Error(w, "Failed to load blog", http.StatusInternalServerError)
		return
	}
	render(w, http.StatusOK, "write_blog.html", map[string]any{"Blogs": posts})
}

// AddPost publishes a new post and returns to the blog.
func (h *BlogHandler) AddPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	req := &models.BlogCreateRequest{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	_, err := h.blog.CreatePost(r.Context(), req)
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		h.log.Error("failed to create blog post", "error", err)
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
	default:
		http.Redirect(w, r, "/blog", http.StatusSeeOther)
	}
}
