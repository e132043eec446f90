// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires all game endpoints onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Catalog
	mux.HandleFunc("GET /questions", h.listQuestions)
	mux.HandleFunc("GET /questions/count", h.questionCount)
	mux.HandleFunc("GET /categories", h.listCategories)

	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/next", h.nextQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.submitAnswer)
	mux.HandleFunc("DELETE /sessions/{sessionID}", h.deleteSession)
}
