package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"curiocart/internal/middleware"
	"curiocart/internal/models"
	"curiocart/internal/services"
)

// CartHandler handles the session shopping cart.
type CartHandler struct {
	log     *slog.Logger
	catalog services.CatalogServiceInterface
	carts   *services.CartStore
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(log *slog.Logger, catalog services.CatalogServiceInterface, carts *services.CartStore) *CartHandler {
	return &CartHandler{
		log:     log,
		catalog: catalog,
		carts:   carts,
	}
}

// AddToCart snapshots the product into the session cart and sends the
// browser to the cart page. An unknown or unfetchable product degrades to a
// silent redirect home; the cart is left untouched.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.carts.Add(middleware.SessionID(r.Context()), models.NewCartLine(product))
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// ViewCart renders the session's cart, empty or not.
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	lines := h.carts.Get(middleware.SessionID(r.Context()))
	render(w, http.StatusOK, "cart.html", map[string]any{"Cart": lines})
}

// RemoveFromCart drops every cart line matching the product id. Removing
// from an absent cart is a no-op.
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.carts.Remove(middleware.SessionID(r.Context()), chi.URLParam(r, "id"))
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}
