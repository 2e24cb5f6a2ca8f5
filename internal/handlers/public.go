package handlers

import "net/http"

// PublicHandler serves the static pages.
type PublicHandler struct{}

// NewPublicHandler creates a new public handler.
func NewPublicHandler() *PublicHandler {
	return &PublicHandler{}
}

func (h *PublicHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "home.html", nil)
}

func (h *PublicHandler) AboutPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "about.html", nil)
}

func (h *PublicHandler) ContactPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "contact.html", nil)
}

func (h *PublicHandler) FAQPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "faq.html", nil)
}

func (h *PublicHandler) TermsPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "terms.html", nil)
}

// AdminPage shows the owner login form.
func (h *PublicHandler) AdminPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "admin.html", nil)
}

func (h *PublicHandler) LoginFailPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "login_fail.html", nil)
}

func (h *PublicHandler) OwnerDashboardPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "owner_dashboard.html", nil)
}
