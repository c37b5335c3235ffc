package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const specPath = "/docs/openapi.yaml"

const docsPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>%s</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
  <style>body { margin: 0; } .swagger-ui .topbar { display: none; }</style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "%s",
      dom_id: "#swagger-ui",
      deepLinking: true,
      docExpansion: "list"
    });
  </script>
</body>
</html>`

// DocsHandler serves the Swagger UI and the embedded OpenAPI document
type DocsHandler struct {
	page []byte
	spec []byte
}

// NewDocsHandler creates a docs handler for the given API title and spec
func NewDocsHandler(title string, spec []byte) *DocsHandler {
	return &DocsHandler{
		page: []byte(fmt.Sprintf(docsPage, title, specPath)),
		spec: spec,
	}
}

// RegisterRoutes registers documentation routes
func (h *DocsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/docs", h.UI())
	r.Get("/docs/", http.RedirectHandler("/docs", http.StatusMovedPermanently).ServeHTTP)
	r.Get(specPath, h.Spec())
}

// UI serves the Swagger UI page
func (h *DocsHandler) UI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(h.page)
	}
}

// Spec serves the OpenAPI document
func (h *DocsHandler) Spec() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write(h.spec)
	}
}
