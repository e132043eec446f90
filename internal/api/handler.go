// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/kaheicheng13-source/Interactive-Teaching/internal/catalog"
	"github.com/kaheicheng13-source/Interactive-Teaching/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store     *store.MemoryStore
	catalog   *catalog.Catalog
	gridTiles int // default tile count for new sessions; 0 = one per question
	logger    *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(s *store.MemoryStore, c *catalog.Catalog, gridTiles int, logger *slog.Logger) *Handler {
	return &Handler{
		store:     s,
		catalog:   c,
		gridTiles: gridTiles,
		logger:    logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v. On failure it writes a
// 400 response and returns false (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// decodeJSONOptional is decodeJSON for requests where the body may be
// absent: an empty body leaves v untouched and succeeds. ContentLength
// is not consulted, so chunked bodies decode too.
func decodeJSONOptional(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	respondError(w, http.StatusBadRequest, "invalid json")
	return false
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
