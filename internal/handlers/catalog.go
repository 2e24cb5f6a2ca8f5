package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"curiocart/internal/middleware"
	"curiocart/internal/models"
	"curiocart/internal/services"
)

// CatalogHandler handles catalogue browsing and the product upload flow.
type CatalogHandler struct {
	log           *slog.Logger
	catalog       services.CatalogServiceInterface
	carts         *services.CartStore
	maxUploadSize int64
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(log *slog.Logger, catalog services.CatalogServiceInterface, carts *services.CartStore, maxUploadSize int64) *CatalogHandler {
	return &CatalogHandler{
		log:           log,
		catalog:       catalog,
		carts:         carts,
		maxUploadSize: maxUploadSize,
	}
}

type cataloguePageData struct {
	Products   []*models.Product
	Category   string
	CartLength int
}

// CataloguePage renders the product list, optionally filtered by category.
// The cart badge reflects the session cart size at render time.
func (h *CatalogHandler) CataloguePage(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = models.CategoryAll
	}

	products, err := h.catalog.ListProducts(r.Context(), category)
	if err != nil {
		h.log.Error("failed to list products", "category", category, "error", err)
		http.Error(w, "Failed to load catalogue", http.StatusInternalServerError)
		return
	}

	render(w, http.StatusOK, "catalogue.html", cataloguePageData{
		Products:   products,
		Category:   category,
		CartLength: h.carts.Len(middleware.SessionID(r.Context())),
	})
}

// ProductPage renders a single product, or the not-found page instead of
// crashing on a missing id.
func (h *CatalogHandler) ProductPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			render(w, http.StatusNotFound, "not_found.html", nil)
			return
		}
		h.log.Error("failed to get product", "id", id, "error", err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	render(w, http.StatusOK, "product.html", map[string]any{"Product": product})
}

// UploadPage renders the product upload form.
func (h *CatalogHandler) UploadPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "upload.html", nil)
}

// UploadProduct accepts the multipart product form. Missing file is the one
// explicit client error; success redirects back to the catalogue only after
// the file and the database row are both durably written.
func (h *CatalogHandler) UploadProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	var (
		reader   io.Reader
		filename string
	)
	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		reader = file
		filename = header.Filename
	case errors.Is(err, http.ErrMissingFile):
		// Leave reader nil; the service answers ErrMissingFile.
	default:
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	req := &models.ProductCreateRequest{
		Name:     r.FormValue("name"),
		Details:  r.FormValue("details"),
		Category: r.FormValue("category"),
		Price:    price,
	}

	_, err = h.catalog.CreateProduct(r.Context(), req, reader, filename)
	switch {
	case errors.Is(err, models.ErrMissingFile):
		http.Error(w, "No file uploaded.", http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		h.log.Error("failed to create product", "error", err)
		http.Error(w, "Failed to upload product", http.StatusInternalServerError)
	default:
		http.Redirect(w, r, "/catalogue", http.StatusSeeOther)
	}
}
