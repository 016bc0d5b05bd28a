// internal/ai/extract.go
//
// Response extractor: turns raw model text into a decoded JSON value.
// Two-stage parse:
//   1. strict json.Unmarshal of the whole payload (code fences stripped);
//   2. fallback scan for the first balanced {...} or [...] fragment, for
//      models that wrap their JSON in prose.
// Both stages failing yields a MalformedError with a bounded snippet.

package ai

import (
	"encoding/json"
	"strings"
)

// Decode parses raw model output into v.
func Decode(raw string, v any) error {
	raw = StripCodeFences(raw)
	if json.Unmarshal([]byte(raw), v) == nil {
		return nil
	}
	if frag, ok := balancedFragment(raw); ok {
		if json.Unmarshal([]byte(frag), v) == nil {
			return nil
		}
	}
	return &MalformedError{Snippet: snippet(raw)}
}

// StripCodeFences removes a surrounding ```json ... ``` (or plain ```) fence.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// balancedFragment returns the first balanced JSON object or array embedded
// in s. It walks runes tracking nesting depth, string state, and escapes, so
// braces inside string literals do not count.
func balancedFragment(s string) (string, bool) {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return "", false
	}
	open := s[start]
	var closer byte = '}'
	if open == '[' {
		closer = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
