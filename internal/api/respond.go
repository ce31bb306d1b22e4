package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"veritext/internal/ingest"
)

// HTTPError carries a status code alongside a client-safe message.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Message)
}

type errorBody struct {
	Error string `json:"error"`
}

func decodeJSON(r *http.Request, dst any) error {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/json") {
		return &HTTPError{Code: http.StatusUnsupportedMediaType, Message: "Content-Type must be application/json"}
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &HTTPError{Code: http.StatusBadRequest, Message: "invalid JSON body"}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

// handleError maps ingest sentinel errors and HTTPErrors onto status
// codes; anything unrecognized is logged and reported as a 500.
func handleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var httpErr *HTTPError
	switch {
	case errors.As(err, &httpErr):
		writeError(w, httpErr.Code, httpErr.Message)
	case errors.Is(err, ingest.ErrEmptyContent):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ingest.ErrUnsupportedType):
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
	default:
		logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
