package api

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// StaticHandler serves the landing page and its assets.
type StaticHandler struct {
	files  fs.FS
	logger *slog.Logger
}

// NewStaticHandler creates a StaticHandler over the embedded static tree.
func NewStaticHandler(logger *slog.Logger) *StaticHandler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StaticHandler{files: sub, logger: logger}
}

// Index handles GET /
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := fs.ReadFile(h.files, "index.html")
	if err != nil {
		h.logger.Error("failed to read landing page", "error", err)
		http.Error(w, "landing page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		h.logger.Error("failed to write landing page", "error", err)
	}
}

// Assets serves files below /static/.
func (h *StaticHandler) Assets() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(h.files)))
}
