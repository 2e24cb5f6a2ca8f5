package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curiocart/internal/middleware"
	"curiocart/internal/models"
	"curiocart/internal/services"
)

func newCatalogRouter(h *CatalogHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithSessionID(req.Context(), testSessionID)))
		})
	})
	r.Get("/catalogue", h.CataloguePage)
	r.Get("/product/{id}", h.ProductPage)
	r.Post("/upload", h.UploadProduct)
	return r
}

func TestCataloguePageDefaultsToAll(t *testing.T) {
	catalog := newFakeCatalog(testProduct("Brass Compass", "Curios", 19.99))
	h := NewCatalogHandler(discardLogger(), catalog, services.NewCartStore(), 10<<20)
	router := newCatalogRouter(h)

	req := httptest.NewRequest("GET", "/catalogue", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.CategoryAll, catalog.listCategory)
	assert.Contains(t, w.Body.String(), "Brass Compass")
}

func TestCataloguePageFiltersByCategory(t *testing.T) {
	catalog := newFakeCatalog(
		testProduct("Brass Compass", "Curios", 19.99),
		testProduct("Tin Whistle", "Music", 7.50),
	)
	h := NewCatalogHandler(discardLogger(), catalog, services.NewCartStore(), 10<<20)
	router := newCatalogRouter(h)

	req := httptest.NewRequest("GET", "/catalogue?category=Music", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Tin Whistle")
	assert.NotContains(t, body, "Brass Compass")
}

func TestCataloguePageShowsCartLength(t *testing.T) {
	product := testProduct("Brass Compass", "Curios", 19.99)
	carts := services.NewCartStore()
	carts.Add(testSessionID, models.NewCartLine(product))
	carts.Add(testSessionID, models.NewCartLine(product))

	h := NewCatalogHandler(discardLogger(), newFakeCatalog(product), carts, 10<<20)
	router := newCatalogRouter(h)

	req := httptest.NewRequest("GET", "/catalogue", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), "Cart (2)")
}

func TestProductPage(t *testing.T) {
	product := testProduct("Brass Compass", "Curios", 19.99)
	h := NewCatalogHandler(discardLogger(), newFakeCatalog(product), services.NewCartStore(), 10<<20)
	router := newCatalogRouter(h)

	req := httptest.NewRequest("GET", "/product/"+product.ID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Brass Compass")
}

func TestProductPageNotFound(t *testing.T) {
	h := NewCatalogHandler(discardLogger(), newFakeCatalog(), services.NewCartStore(), 10<<20)
	router := newCatalogRouter(h)

	req := httptest.NewRequest("GET", "/product/unknown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no longer in the catalogue")
}

func multipartUpload(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if withFile {
		fw, err := mw.CreateFormFile("image", "compass.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadProductSuccess(t *testing.T) {
	catalog := newFakeCatalog()
	h := NewCatalogHandler(discardLogger(), catalog, services.NewCartStore(), 10<<20)
	router := newCatalogRouter(h)

	body, contentType := multipartUpload(t, map[string]string{
		"name":     "Brass Compass",
		"details":  "A small pocket compass.",
		"category": "Curios",
		"price":    "19.99",
	}, true)

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalogue", w.Header().Get("Location"))
	require.Len(t, catalog.created, 1)
	assert.Equal(t, "Brass Compass", catalog.created[0].Name)
	assert.Equal(t, 19.99, catalog.created[0].Price)
}

func TestUploadProductWithoutFile(t *testing.T) {
	catalog := newFakeCatalog()
	h := NewCatalogHandler(discardLogger(), catalog, services.NewCartStore(), 10<<20)
	router := newCatalogRouter(h)

	body, contentType := multipartUpload(t, map[string]string{
		"name":     "Brass Compass",
		"details":  "A small pocket compass.",
		"category": "Curios",
		"price":    "19.99",
	}, false)

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file uploaded.")
	assert.Empty(t, catalog.created)
}

func TestUploadProductInvalidFields(t *testing.T) {
	catalog := newFakeCatalog()
	h := NewCatalogHandler(discardLogger(), catalog, services.NewCartStore(), 10<<20)
	router := newCatalogRouter(h)

	body, contentType := multipartUpload(t, map[string]string{
		"name":     "",
		"details":  "A small pocket compass.",
		"category": "Curios",
		"price":    "19.99",
	}, true)

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, catalog.created)
}
