package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"curiocart/internal/handlers"
	"curiocart/internal/middleware"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Public  *handlers.PublicHandler
	Catalog *handlers.CatalogHandler
	Cart    *handlers.CartHandler
	Reviews *handlers.ReviewHandler
	Blog    *handlers.BlogHandler
	Auth    *handlers.AuthHandler
}

// NewRouter registers every route unconditionally at startup.
func NewRouter(
	log *slog.Logger,
	session *middleware.SessionMiddleware,
	loginLimiter *middleware.RateLimiter,
	h Handlers,
	uploadDir string,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RecoverMiddleware(log))
	r.Use(middleware.LoggingMiddleware(log))
	r.Use(session.EnsureSession)

	fileServer(r, "/static", http.Dir("web/static"))
	fileServer(r, "/uploads", http.Dir(uploadDir))

	// Public pages
	r.Get("/", h.Public.HomePage)
	r.Get("/about", h.Public.AboutPage)
	r.Get("/contactUs", h.Public.ContactPage)
	r.Get("/faq", h.Public.FAQPage)
	r.Get("/terms", h.Public.TermsPage)
	r.Get("/admin", h.Public.AdminPage)
	r.Get("/login-fail", h.Public.LoginFailPage)
	r.Get("/ownerDashboard", h.Public.OwnerDashboardPage)

	// Catalogue and cart
	r.Get("/catalogue", h.Catalog.CataloguePage)
	r.Get("/product/{id}", h.Catalog.ProductPage)
	r.Post("/cart/add/{id}", h.Cart.AddToCart)
	r.Get("/cart", h.Cart.ViewCart)
	r.Post("/cart/remove/{id}", h.Cart.RemoveFromCart)

	// Community
	r.Get("/reviews", h.Reviews.CommunityPage)
	r.Post("/submit-review", h.Reviews.SubmitReview)

	// Blog
	r.Get("/blog", h.Blog.BlogPage)
	r.Post("/add", h.Blog.AddPost)

	// Login, rate limited per client IP
	r.With(loginLimiter.Limit).Post("/login", h.Auth.Login)

	// Owner routes, gated on the session admin flag
	r.Group(func(r chi.Router) {
		r.Use(session.RequireAdmin)
		r.Get("/owner", h.Reviews.OwnerPage)
		r.Post("/approve/{id}", h.Reviews.Approve)
		r.Post("/delete/{id}", h.Reviews.Delete)
		r.Get("/upload", h.Catalog.UploadPage)
		r.Post("/upload", h.Catalog.UploadProduct)
		r.Get("/writeBlog", h.Blog.WriteBlogPage)
	})

	return r
}

func fileServer(r chi.Router, path string, root http.FileSystem) {
	fs := http.StripPrefix(path, http.FileServer(root))
	r.Get(path+"/*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}
