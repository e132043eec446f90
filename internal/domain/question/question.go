// Package question turns untyped catalog rows into validated Question
// records. The row side is stringly typed and untrusted; everything
// downstream works only with Question.
package question

import (
	"strconv"
	"strings"

	"github.com/kaheicheng13-source/Interactive-Teaching/internal/tabular"
)

// ChoiceCount is the fixed number of answer choices per question,
// labeled A through D by position.
const ChoiceCount = 4

// Question is one multiple-choice prompt from the catalog.
type Question struct {
	ID          int
	Text        string // may contain embedded newlines
	Choices     []string
	AnswerIndex int // index into Choices, 0..3

	// CorrectLetter is carried from the source schema but never used
	// to derive AnswerIndex. The upstream catalog format defines both
	// columns without resolving which one wins; we read correctIndex
	// only and keep the letter for inspection.
	CorrectLetter string

	Category   string
	Difficulty string
	Tip        string
}

// CorrectText returns the text of the correct choice, or the empty
// string if the record is degenerate.
func (q Question) CorrectText() string {
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Choices) {
		return ""
	}
	return q.Choices[q.AnswerIndex]
}

// FromFields maps one catalog row into a Question under the fixed
// column contract: id, question, A, B, C, D, correctIndex,
// correctLetter, category, difficulty, tip.
//
// Malformed values degrade rather than fail: a non-numeric id becomes
// 0, a non-numeric or out-of-range correctIndex becomes 0 (so choice A
// silently becomes the answer key — an accepted data-quality risk),
// and a blank difficulty becomes "easy". No row is ever rejected.
func FromFields(row tabular.FieldMap) Question {
	q := Question{
		ID:            intOr(row["id"], 0),
		Text:          row["question"],
		Choices:       []string{row["A"], row["B"], row["C"], row["D"]},
		AnswerIndex:   intOr(row["correctIndex"], 0),
		CorrectLetter: strings.TrimSpace(row["correctLetter"]),
		Category:      row["category"],
		Difficulty:    strings.TrimSpace(row["difficulty"]),
		Tip:           row["tip"],
	}

	if q.AnswerIndex < 0 || q.AnswerIndex >= ChoiceCount {
		q.AnswerIndex = 0
	}
	if q.Difficulty == "" {
		q.Difficulty = "easy"
	}

	return q
}

// Build maps every row into a Question, in order.
func Build(rows []tabular.FieldMap) []Question {
	questions := make([]Question, len(rows))
	for i, row := range rows {
		questions[i] = FromFields(row)
	}
	return questions
}

func intOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}
