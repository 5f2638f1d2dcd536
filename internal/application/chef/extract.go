package chef

import (
	"strings"
)

// extractJSONObject returns the first complete top-level {...} span in a
// reply. Generation output routinely wraps the payload in prose or
// markdown fences, so the span is located with a scanner that tracks
// string and escape state while counting brace depth. A '}' inside a
// quoted value does not terminate the span, which naive first-to-last
// brace matching gets wrong.
func extractJSONObject(s string) (string, bool) {
	return extractSpan(s, '{', '}')
}

// extractJSONArray returns the first complete top-level [...] span
func extractJSONArray(s string) (string, bool) {
	return extractSpan(s, '[', ']')
}

func extractSpan(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	// Ran out of input with the span still open
	return "", false
}
