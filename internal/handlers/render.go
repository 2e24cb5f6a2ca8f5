package handlers

import (
	"net/http"

	"curiocart/web/templates"
)

// render writes a page, degrading to a 500 when the template set misbehaves.
func render(w http.ResponseWriter, status int, page string, data any) {
	if err := templates.Render(w, status, page, data); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
