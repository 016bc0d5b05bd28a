package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/literise/ai-service/internal/scoring"
)

func TestGrade(t *testing.T) {
	t.Run("case and whitespace insensitive", func(t *testing.T) {
		items, total := scoring.Grade([]string{"Paris"}, []string{" paris "})
		require.Len(t, items, 1)
		assert.True(t, items[0].Correct)
		assert.Equal(t, 100, total)
		assert.Equal(t, " paris ", items[0].Submitted, "submitted value echoed unnormalized")
	})

	t.Run("all correct scores 100", func(t *testing.T) {
		ideal := []string{"Jakarta", "1945", "Soekarno"}
		submitted := []string{"jakarta", "1945 ", "soekarno"}
		items, total := scoring.Grade(ideal, submitted)
		require.Len(t, items, 3)
		for i, it := range items {
			assert.True(t, it.Correct, "item %d", i)
		}
		assert.Equal(t, 100, total)
	})

	t.Run("aggregate rounded once, not per item", func(t *testing.T) {
		// 2 of 3 correct: 33.33... + 33.33... = 66.67 → 67.
		// Per-item rounding (33+33) would give 66.
		_, total := scoring.Grade(
			[]string{"a", "b", "c"},
			[]string{"a", "b", "x"},
		)
		assert.Equal(t, 67, total)
	})

	t.Run("uniform weights over five items", func(t *testing.T) {
		ideal := []string{"satu", "dua", "tiga", "empat", "lima"}
		submitted := []string{"satu", "dua", "tiga", "empat", "salah"}
		items, total := scoring.Grade(ideal, submitted)
		assert.Equal(t, 80, total)
		assert.False(t, items[4].Correct)
	})

	t.Run("nothing correct scores zero", func(t *testing.T) {
		_, total := scoring.Grade([]string{"a", "b"}, []string{"x", "y"})
		assert.Zero(t, total)
	})

	t.Run("empty ideal", func(t *testing.T) {
		items, total := scoring.Grade(nil, nil)
		assert.Nil(t, items)
		assert.Zero(t, total)
	})
}
