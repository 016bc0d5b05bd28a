// internal/textverify/verify.go
//
// Keyword verification and deterministic blanking for fill-in-the-blank
// quizzes. Keywords come from the model and are untrusted: they may carry
// trailing punctuation, differ in case from the text, overlap each other,
// or not appear in the text at all.
//
// Replacement is literal. Keywords are never compiled into patterns, so
// regex metacharacters in model output are inert.

package textverify

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

// Placeholder marks a blanked-out keyword in quiz text.
const Placeholder = "[.....]"

// MaxKeywords caps how many model-proposed keywords are considered.
const MaxKeywords = 5

// trailing punctuation stripped from keywords before the presence check
const trailingPunct = ".,?!"

// Present reports whether keyword genuinely occurs in text.
// Both sides are lowercased; a trailing run of .,?! on the keyword is
// ignored. An empty keyword (after cleaning) is never present.
func Present(keyword, text string) bool {
	k := cleanKeyword(keyword)
	if k == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), k)
}

// FilterVerified truncates candidates to max and keeps the (space-trimmed)
// originals whose cleaned form occurs in text. Rejected keywords are logged:
// they indicate the model invented a word it did not use.
func FilterVerified(candidates []string, text string, max int) []string {
	if max > 0 && len(candidates) > max {
		candidates = candidates[:max]
	}
	haystack := strings.ToLower(text)
	verified := make([]string, 0, len(candidates))
	for _, c := range candidates {
		k := cleanKeyword(c)
		if k != "" && strings.Contains(haystack, k) {
			verified = append(verified, strings.TrimSpace(c))
			continue
		}
		log.Warn().Str("keyword", c).Msg("model keyword not present in text")
	}
	return verified
}

// BlankOut replaces, for each keyword in order, the first case-insensitive
// occurrence of the literal keyword in text with placeholder. It returns the
// blanked text and how many keywords were actually replaced. A keyword can
// fail to match when an earlier substitution consumed overlapping text.
//
// Callers compare strings.Count(result, placeholder) against the expected
// keyword count; a mismatch means the quiz cannot be produced consistently.
func BlankOut(text string, keywords []string, placeholder string) (string, int) {
	made := 0
	for _, kw := range keywords {
		out, ok := replaceOnceFold(text, kw, placeholder)
		if !ok {
			log.Warn().Str("keyword", kw).Msg("keyword could not be blanked")
			continue
		}
		text = out
		made++
	}
	return text, made
}

// cleanKeyword lowercases, trims space, and strips trailing punctuation.
func cleanKeyword(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	return strings.TrimRight(k, trailingPunct)
}

// replaceOnceFold replaces the first case-insensitive occurrence of old in s
// with new. The search lowers runes one by one (rune counts are preserved,
// unlike strings.ToLower on the whole string), so the splice indices into the
// original are exact.
func replaceOnceFold(s, old, new string) (string, bool) {
	or := []rune(old)
	if len(or) == 0 {
		return s, false
	}
	sr := []rune(s)
	if len(or) > len(sr) {
		return s, false
	}
	for i := range or {
		or[i] = unicode.ToLower(or[i])
	}
	low := make([]rune, len(sr))
	for i, r := range sr {
		low[i] = unicode.ToLower(r)
	}

	for i := 0; i+len(or) <= len(sr); i++ {
		match := true
		for j := range or {
			if low[i+j] != or[j] {
				match = false
				break
			}
		}
		if match {
			var b strings.Builder
			b.WriteString(string(sr[:i]))
			b.WriteString(new)
			b.WriteString(string(sr[i+len(or):]))
			return b.String(), true
		}
	}
	return s, false
}
