package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kaheicheng13-source/Interactive-Teaching/internal/domain/gridsession"
	"github.com/kaheicheng13-source/Interactive-Teaching/internal/explain"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Tiles int `json:"tiles,omitempty"` // 0 = one tile per question
}

type SessionResponse struct {
	ID        string   `json:"id"`
	Tiles     []string `json:"tiles"`
	Solved    int      `json:"solved"`
	Total     int      `json:"total"`
	Remaining int      `json:"remaining"`
}

// NextQuestionResponse carries a question to the client with the
// answer key withheld; grading happens server side.
type NextQuestionResponse struct {
	QuestionID int      `json:"question_id"`
	Text       string   `json:"text"`
	Choices    []string `json:"choices"`
	Category   string   `json:"category,omitempty"`
	Difficulty string   `json:"difficulty"`
}

type SubmitAnswerRequest struct {
	TileIndex   int `json:"tile_index"`
	QuestionID  int `json:"question_id"`
	ChoiceIndex int `json:"choice_index"`
}

type SubmitAnswerResponse struct {
	Correct     bool     `json:"correct"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation"`
	Tiles       []string `json:"tiles"`
	Solved      int      `json:"solved"`
	Remaining   int      `json:"remaining"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /sessions
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeJSONOptional(w, r, &req) {
		return
	}

	if h.catalog.Count() == 0 {
		respondError(w, http.StatusConflict, "no questions loaded")
		return
	}

	tiles := req.Tiles
	if tiles <= 0 {
		tiles = h.gridTiles
	}

	session := gridsession.New(h.catalog.Questions(), tiles)
	id := uuid.NewString()
	h.store.SaveSession(id, session)

	h.logger.Info("session created", "session_id", id, "questions", session.Total())
	respondJSON(w, http.StatusCreated, sessionResponse(id, session))
}

// GET /sessions/{sessionID}
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	session, err := h.store.GetSession(sessionID)
	if h.handleStoreError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, sessionResponse(sessionID, session))
}

// POST /sessions/{sessionID}/next
func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	session, err := h.store.GetSession(sessionID)
	if h.handleStoreError(w, err, "session") {
		return
	}

	q, ok := session.PickNext()
	if !ok {
		respondError(w, http.StatusConflict, "session has no questions")
		return
	}

	respondJSON(w, http.StatusOK, NextQuestionResponse{
		QuestionID: q.ID,
		Text:       q.Text,
		Choices:    q.Choices,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	})
}

// POST /sessions/{sessionID}/answers
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	session, err := h.store.GetSession(sessionID)
	if h.handleStoreError(w, err, "session") {
		return
	}

	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := session.RecordAnswer(req.TileIndex, req.QuestionID, req.ChoiceIndex)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	q, _ := session.Question(req.QuestionID)

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{
		Correct:     result.Correct,
		AnswerIndex: result.AnswerIndex,
		Explanation: explain.ForQuestion(q),
		Tiles:       tileStrings(session.Tiles()),
		Solved:      session.Solved(),
		Remaining:   session.Remaining(),
	})
}

// DELETE /sessions/{sessionID}
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	if h.handleStoreError(w, h.store.DeleteSession(sessionID), "session") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func sessionResponse(id string, s *gridsession.Session) SessionResponse {
	return SessionResponse{
		ID:        id,
		Tiles:     tileStrings(s.Tiles()),
		Solved:    s.Solved(),
		Total:     s.Total(),
		Remaining: s.Remaining(),
	}
}

func tileStrings(tiles []gridsession.TileStatus) []string {
	out := make([]string, len(tiles))
	for i, t := range tiles {
		out[i] = string(t)
	}
	return out
}
