package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"curiocart/internal/models"
	"curiocart/internal/services"
)

// ReviewHandler handles the community page and review moderation.
type ReviewHandler struct {
	log     *slog.Logger
	reviews services.ReviewServiceInterface
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(log *slog.Logger, reviews services.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		log:     log,
		reviews: reviews,
	}
}

// CommunityPage shows approved reviews and the submission form.
func (h *ReviewHandler) CommunityPage(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListApproved(r.Context())
	if err != nil {
		h.log.Error("failed to list approved reviews", "error", err)
		http.Error(w, "Failed to load reviews", http.StatusInternalServerError)
		return
	}
	render(w, http.StatusOK, "community.html", map[string]any{"Reviews": reviews})
}

// SubmitReview creates a pending review and sends the visitor back to the
// community page.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	req := &models.ReviewCreateRequest{
		Username: r.FormValue("username"),
		Content:  r.FormValue("content"),
	}

	_, err := h.reviews.Submit(r.Context(), req)
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		h.log.Error("failed to submit review", "error", err)
		http.Error(w, "Failed to submit review", http.StatusInternalServerError)
	default:
		http.Redirect(w, r, "/reviews", http.StatusSeeOther)
	}
}

// OwnerPage shows every review, pending and approved, for moderation.
func (h *ReviewHandler) OwnerPage(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListAll(r.Context())
	if err != nil {
		h.log.Error("failed to list reviews", "error", err)
		http.Error(w, "Failed to load reviews", http.StatusInternalServerError)
		return
	}
	render(w, http.StatusOK, "owner.html", map[string]any{"Reviews": reviews})
}

// Approve marks a review approved. Missing ids are tolerated silently; the
// browser ends up back on the moderation page either way.
func (h *ReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if err := h.reviews.Approve(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.log.Error("failed to approve review", "error", err)
	}
	http.Redirect(w, r, "/owner", http.StatusSeeOther)
}

// Delete removes a review permanently. Deleting a nonexistent id is success.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.reviews.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.log.Error("failed to delete review", "error", err)
	}
	http.Redirect(w, r, "/owner", http.StatusSeeOther)
}
