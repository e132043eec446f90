// Package catalog loads the question set from its configured CSV
// resource. The load happens once at startup; a failed load leaves the
// game with an empty catalog rather than crashing it.
package catalog

import (
	"fmt"
	"os"

	"github.com/kaheicheng13-source/Interactive-Teaching/internal/domain/question"
	"github.com/kaheicheng13-source/Interactive-Teaching/internal/tabular"
)

// Catalog is the immutable set of questions loaded at startup.
type Catalog struct {
	questions []question.Question
}

// Load reads and parses the CSV resource at path. Parsing itself never
// fails — malformed rows degrade to safe defaults — so the only error
// is an unreadable resource.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question catalog: %w", err)
	}
	return FromText(string(data)), nil
}

// FromText builds a catalog from raw CSV text.
func FromText(text string) *Catalog {
	table := tabular.ParseTable(text)
	return &Catalog{questions: question.Build(table.Rows)}
}

// Empty returns a catalog with no questions, for use after a failed
// load.
func Empty() *Catalog {
	return &Catalog{}
}

// Questions returns the loaded questions in catalog order.
func (c *Catalog) Questions() []question.Question {
	return c.questions
}

// Count returns the number of loaded questions.
func (c *Catalog) Count() int {
	return len(c.questions)
}

// Categories returns the distinct category names in first-seen order,
// skipping blanks.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, q := range c.questions {
		if q.Category == "" {
			continue
		}
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		out = append(out, q.Category)
	}
	return out
}
