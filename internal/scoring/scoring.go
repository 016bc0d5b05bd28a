// internal/scoring/scoring.go
//
// Exact-match grading for list-based quizzes (library blanks, grammar fixes).
// Every item carries the same weight, 100/len(ideal); the total is rounded
// once on the aggregate so per-item rounding error never compounds.

package scoring

import (
	"math"
	"strings"
)

// Item is the graded outcome for one submitted answer, in input order.
type Item struct {
	Submitted string // answer as submitted (not normalized)
	Ideal     string // stored ideal answer
	Correct   bool
}

// Grade compares submitted answers against ideal answers index by index.
// Equality is exact after trimming whitespace and lowercasing both sides.
// Returns the per-item results and the rounded total score (0–100).
//
// Callers validate that the lengths match before calling; mismatched
// submissions are an input error, not a scoring outcome.
func Grade(ideal, submitted []string) ([]Item, int) {
	if len(ideal) == 0 {
		return nil, 0
	}
	perItem := 100.0 / float64(len(ideal))

	items := make([]Item, len(ideal))
	total := 0.0
	for i := range ideal {
		ok := normalize(submitted[i]) == normalize(ideal[i])
		if ok {
			total += perItem
		}
		items[i] = Item{Submitted: submitted[i], Ideal: ideal[i], Correct: ok}
	}
	return items, int(math.Round(total))
}

// normalize trims leading/trailing whitespace and lowercases.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
