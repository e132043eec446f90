// Package explain derives a deterministic human-readable explanation
// for an answered question by pattern-matching the prompt against an
// ordered rule table. It is a pure function of its inputs and never
// fails: any prompt yields at least the correct-answer statement.
package explain

import (
	"strings"

	"github.com/kaheicheng13-source/Interactive-Teaching/internal/domain/question"
)

// ForQuestion explains q using the text of its correct choice.
func ForQuestion(q question.Question) string {
	return Explain(q, q.CorrectText())
}

// Explain builds the explanation for q given the literal text of its
// correct choice.
//
// The output always opens with a statement of the correct answer. Then
// every single-pattern rule whose pattern occurs in the lower-cased
// prompt adds its sentence, in table order, followed by the compound
// rules, followed by the question's tip if present. Lines that are
// identical after trimming and case-folding keep only their first
// occurrence, and the retained lines are joined with a single space.
func Explain(q question.Question, correctText string) string {
	lines := []string{"The correct answer is " + correctText + "."}

	prompt := strings.ToLower(q.Text)

	for _, r := range rules {
		if strings.Contains(prompt, r.Pattern) {
			lines = append(lines, r.Text)
		}
	}

	for _, r := range compoundRules {
		if r.when(prompt) {
			lines = append(lines, r.text)
		}
	}

	if tip := strings.TrimSpace(q.Tip); tip != "" {
		lines = append(lines, asSentence(tip))
	}

	return strings.Join(dedupe(lines), " ")
}

// dedupe keeps the first occurrence of each line, comparing trimmed
// and case-folded text so cosmetic variants collapse too.
func dedupe(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	kept := lines[:0]
	for _, line := range lines {
		key := strings.ToLower(strings.TrimSpace(line))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, line)
	}
	return kept
}

func asSentence(s string) string {
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}
