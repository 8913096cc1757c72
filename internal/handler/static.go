package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// HandleHealth handles GET /health requests.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// SPAHandler serves the single-page front-end. Every GET that did not match
// an API route falls through to the entry document so client-side routing
// keeps working after a refresh.
type SPAHandler struct {
	frontendDir string
}

// NewSPAHandler creates a SPAHandler rooted at frontendDir.
func NewSPAHandler(frontendDir string) *SPAHandler {
	return &SPAHandler{frontendDir: frontendDir}
}

// ServeIndex serves the front-end entry document, or 404 when the front-end
// build is not present.
func (h *SPAHandler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusNotFound, errorResponse("not found"))
		return
	}

	index := filepath.Join(h.frontendDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("frontend not found"))
		return
	}

	http.ServeFile(w, r, index)
}

// AssetsHandler returns a file server for the front-end's static assets, or
// nil when the build directory does not exist.
func (h *SPAHandler) AssetsHandler() http.Handler {
	assets := filepath.Join(h.frontendDir, "static")
	if _, err := os.Stat(assets); err != nil {
		return nil
	}
	return http.StripPrefix("/static/", http.FileServer(http.Dir(assets)))
}
