package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"veritext/internal/config"
	"veritext/internal/detect"
	"veritext/internal/ingest"
)

// Handler serves the analysis endpoints. A nil randomness source
// falls back to the shared system source.
type Handler struct {
	cfg    *config.Config
	logger *slog.Logger
	src    detect.Source
}

func NewHandler(cfg *config.Config, logger *slog.Logger, src detect.Source) *Handler {
	if src == nil {
		src = detect.SystemSource()
	}
	return &Handler{cfg: cfg, logger: logger, src: src}
}

func (h *Handler) HandleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		handleError(w, h.logger, fmt.Errorf("request body: %w", ingest.ErrEmptyContent))
		return
	}
	h.analyze(w, r, req.Text, "inline")
}

func (h *Handler) HandleAnalyzeFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Ingest.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.Ingest.MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handleError(w, h.logger, &HTTPError{Code: http.StatusRequestEntityTooLarge, Message: "upload exceeds size limit"})
		} else {
			handleError(w, h.logger, &HTTPError{Code: http.StatusBadRequest, Message: "malformed multipart form"})
		}
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, h.logger, &HTTPError{Code: http.StatusBadRequest, Message: "missing file field"})
		return
	}
	defer file.Close()

	doc, err := ingest.ParseReader(file, header.Filename)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	h.analyze(w, r, doc.Text, header.Filename)
}

func (h *Handler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request, text, source string) {
	meta := DocumentMeta{
		Source:     source,
		Characters: len(text),
		Words:      len(strings.Fields(text)),
	}
	if h.cfg.Ingest.LanguageGuard {
		if info, ok := ingest.IdentifyLanguage(text); ok {
			meta.Language = info.Code
			meta.LanguageConfidence = info.Confidence
			if !info.English {
				meta.LanguageWarning = "analysis heuristics are calibrated for English text"
			}
		}
	}

	report, err := detect.Analyze(r.Context(), text, h.cfg.Detector, h.src)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		RequestID: RequestIDFrom(r.Context()),
		Document:  meta,
		Analysis:  report,
	})
}
