package question_test

import (
	"testing"

	"github.com/kaheicheng13-source/Interactive-Teaching/internal/domain/question"
	"github.com/kaheicheng13-source/Interactive-Teaching/internal/tabular"
)

func validRow() tabular.FieldMap {
	return tabular.FieldMap{
		"id":            "7",
		"question":      "What does [1,2,3].map(x => x*2) return?",
		"A":             "[2,4,6]",
		"B":             "[1,2,3]",
		"C":             "undefined",
		"D":             "6",
		"correctIndex":  "0",
		"correctLetter": "A",
		"category":      "arrays",
		"difficulty":    "medium",
		"tip":           "map never changes the original array",
	}
}

func TestFromFields_ValidRow(t *testing.T) {
	q := question.FromFields(validRow())

	if q.ID != 7 {
		t.Errorf("expected id 7, got %d", q.ID)
	}
	if len(q.Choices) != question.ChoiceCount {
		t.Fatalf("expected %d choices, got %d", question.ChoiceCount, len(q.Choices))
	}
	if q.AnswerIndex != 0 {
		t.Errorf("expected answer index 0, got %d", q.AnswerIndex)
	}
	if q.CorrectText() != "[2,4,6]" {
		t.Errorf("expected correct text %q, got %q", "[2,4,6]", q.CorrectText())
	}
	if q.Difficulty != "medium" {
		t.Errorf("expected difficulty %q, got %q", "medium", q.Difficulty)
	}
}

func TestFromFields_NonNumericIDFallsBackToZero(t *testing.T) {
	row := validRow()
	row["id"] = "seven"

	q := question.FromFields(row)

	if q.ID != 0 {
		t.Errorf("expected id fallback 0, got %d", q.ID)
	}
}

func TestFromFields_NonNumericCorrectIndexFallsBackToZero(t *testing.T) {
	row := validRow()
	row["correctIndex"] = "B"

	q := question.FromFields(row)

	if q.AnswerIndex != 0 {
		t.Errorf("expected answer index fallback 0, got %d", q.AnswerIndex)
	}
}

func TestFromFields_OutOfRangeCorrectIndexFallsBackToZero(t *testing.T) {
	row := validRow()
	row["correctIndex"] = "9"

	q := question.FromFields(row)

	if q.AnswerIndex != 0 {
		t.Errorf("expected answer index fallback 0, got %d", q.AnswerIndex)
	}
}

func TestFromFields_CorrectLetterIsNotConsulted(t *testing.T) {
	row := validRow()
	row["correctIndex"] = "2"
	row["correctLetter"] = "A"

	q := question.FromFields(row)

	// The letter column is carried but only correctIndex drives the key.
	if q.AnswerIndex != 2 {
		t.Errorf("expected answer index 2 from correctIndex, got %d", q.AnswerIndex)
	}
	if q.CorrectLetter != "A" {
		t.Errorf("expected letter preserved, got %q", q.CorrectLetter)
	}
}

func TestFromFields_DifficultyDefaultsToEasy(t *testing.T) {
	row := validRow()
	row["difficulty"] = "  "

	q := question.FromFields(row)

	if q.Difficulty != "easy" {
		t.Errorf("expected default difficulty %q, got %q", "easy", q.Difficulty)
	}
}

func TestFromFields_MissingChoicesStayEmpty(t *testing.T) {
	row := validRow()
	delete(row, "C")
	delete(row, "D")

	q := question.FromFields(row)

	if len(q.Choices) != question.ChoiceCount {
		t.Fatalf("expected %d choices regardless of row shape, got %d", question.ChoiceCount, len(q.Choices))
	}
	if q.Choices[2] != "" || q.Choices[3] != "" {
		t.Errorf("expected missing choices to be empty, got %v", q.Choices)
	}
}

func TestBuild_MapsEveryRow(t *testing.T) {
	rows := []tabular.FieldMap{validRow(), validRow(), validRow()}

	questions := question.Build(rows)

	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if len(q.Choices) != question.ChoiceCount {
			t.Errorf("question %d: expected %d choices, got %d", i, question.ChoiceCount, len(q.Choices))
		}
		if q.AnswerIndex < 0 || q.AnswerIndex >= question.ChoiceCount {
			t.Errorf("question %d: answer index %d out of range", i, q.AnswerIndex)
		}
	}
}
