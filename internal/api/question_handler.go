package api

import "net/http"

// ── Request / Response types ────────────────────────────────────────────────

type QuestionCountResponse struct {
	Count int `json:"count"`
}

// QuestionSummary describes a loaded question without revealing its
// answer key or choices.
type QuestionSummary struct {
	ID         int    `json:"id"`
	Category   string `json:"category,omitempty"`
	Difficulty string `json:"difficulty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /questions/count
func (h *Handler) questionCount(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, QuestionCountResponse{Count: h.catalog.Count()})
}

// GET /questions
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions := h.catalog.Questions()
	summaries := make([]QuestionSummary, len(questions))
	for i, q := range questions {
		summaries[i] = QuestionSummary{
			ID:         q.ID,
			Category:   q.Category,
			Difficulty: q.Difficulty,
		}
	}
	respondJSON(w, http.StatusOK, summaries)
}

// GET /categories
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.catalog.Categories()
	if categories == nil {
		categories = []string{}
	}
	respondJSON(w, http.StatusOK, categories)
}
