package api

import (
	"log/slog"
	"net/http"
)

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /api/v1/analyze", h.HandleAnalyzeText)
	mux.HandleFunc("POST /api/v1/analyze/file", h.HandleAnalyzeFile)
	mux.HandleFunc("GET /api/v1/healthz", h.HandleHealthz)
}

// NewRouter assembles the mux with the request ID and logging
// middleware applied to every route.
func NewRouter(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, h)
	return RequestID(RequestLogger(logger, mux))
}
