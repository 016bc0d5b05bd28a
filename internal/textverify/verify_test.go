package textverify_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/literise/ai-service/internal/textverify"
)

func TestPresent(t *testing.T) {
	text := "Kupu-kupu terbang di atas taman bunga."

	assert.True(t, textverify.Present("terbang", text))
	assert.True(t, textverify.Present("TERBANG", text), "case-insensitive")
	assert.True(t, textverify.Present("taman.", text), "trailing punctuation ignored")
	assert.True(t, textverify.Present(" bunga?! ", text), "space and punctuation trimmed")
	assert.False(t, textverify.Present("gunung", text))
	assert.False(t, textverify.Present("", text))
	assert.False(t, textverify.Present("...", text), "punctuation-only keyword")
}

func TestFilterVerified(t *testing.T) {
	text := "Hutan itu gelap dan sunyi. Angin dingin bertiup pelan."

	t.Run("keeps only keywords present in text", func(t *testing.T) {
		got := textverify.FilterVerified([]string{"hutan", "matahari", "Angin"}, text, textverify.MaxKeywords)
		assert.Equal(t, []string{"hutan", "Angin"}, got, "original casing preserved")
	})

	t.Run("caps candidates before verification", func(t *testing.T) {
		candidates := []string{"hutan", "gelap", "sunyi", "angin", "dingin", "pelan"}
		got := textverify.FilterVerified(candidates, text, 5)
		// "pelan" is in the text but falls outside the cap.
		assert.Equal(t, []string{"hutan", "gelap", "sunyi", "angin", "dingin"}, got)
	})

	t.Run("all bogus yields empty", func(t *testing.T) {
		got := textverify.FilterVerified([]string{"laut", "kota"}, text, 5)
		assert.Empty(t, got)
	})
}

func TestBlankOut(t *testing.T) {
	t.Run("single case-insensitive replacement per keyword", func(t *testing.T) {
		text := "Rusa berlari. rusa itu cepat."
		out, made := textverify.BlankOut(text, []string{"Rusa"}, textverify.Placeholder)
		assert.Equal(t, 1, made)
		assert.Equal(t, textverify.Placeholder+" berlari. rusa itu cepat.", out)
	})

	t.Run("keywords replaced in given order", func(t *testing.T) {
		text := "pagi yang cerah di desa"
		out, made := textverify.BlankOut(text, []string{"cerah", "desa"}, textverify.Placeholder)
		assert.Equal(t, 2, made)
		assert.Equal(t, 2, strings.Count(out, textverify.Placeholder))
		assert.NotContains(t, out, "cerah")
		assert.NotContains(t, out, "desa")
	})

	t.Run("regex metacharacters are literal", func(t *testing.T) {
		text := "nilai (x+1) penting"
		out, made := textverify.BlankOut(text, []string{"(x+1)"}, textverify.Placeholder)
		assert.Equal(t, 1, made)
		assert.Equal(t, "nilai "+textverify.Placeholder+" penting", out)
	})

	t.Run("overlapping keywords under-produce placeholders", func(t *testing.T) {
		// "kupu-kupu" consumes the text the second keyword would need; the
		// caller detects the 1 != 2 mismatch and discards the session.
		out, made := textverify.BlankOut("kupu-kupu terbang", []string{"kupu-kupu", "kupu"}, textverify.Placeholder)
		assert.Equal(t, 1, made)
		assert.Equal(t, 1, strings.Count(out, textverify.Placeholder))
		assert.NotEqual(t, 2, strings.Count(out, textverify.Placeholder))
	})

	t.Run("blanked output never re-verifies its keywords", func(t *testing.T) {
		text := "Kancil mencuri timun di ladang petani"
		keywords := []string{"Kancil", "timun", "ladang"}
		out, made := textverify.BlankOut(text, keywords, textverify.Placeholder)
		require.Equal(t, len(keywords), made)
		for _, kw := range keywords {
			assert.False(t, textverify.Present(kw, out), "keyword %q still present after blanking", kw)
		}
	})

	t.Run("missing keyword leaves text unchanged", func(t *testing.T) {
		out, made := textverify.BlankOut("teks pendek", []string{"panjang"}, textverify.Placeholder)
		assert.Zero(t, made)
		assert.Equal(t, "teks pendek", out)
	})
}
