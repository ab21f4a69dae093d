package suggest

import "strings"

// extractJSON attempts to extract JSON from a string that may contain
// markdown formatting. Local models in particular like to wrap their
// answers in code fences or preamble text.
func extractJSON(s string) string {
	for _, fence := range []string{"```json", "```"} {
		if body, ok := fencedBody(s, fence); ok {
			return body
		}
	}

	// Fall back to the first balanced {...} or [...] span.
	for i := 0; i < len(s); i++ {
		if s[i] != '{' && s[i] != '[' {
			continue
		}
		depth := 0
		for j := i; j < len(s); j++ {
			switch s[j] {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
				if depth == 0 {
					return s[i : j+1]
				}
			}
		}
	}

	return s
}

// fencedBody returns the content of the first fence-delimited block.
func fencedBody(s, fence string) (string, bool) {
	start := strings.Index(s, fence)
	if start == -1 {
		return "", false
	}
	start += len(fence)
	for start < len(s) && (s[start] == '\n' || s[start] == '\r') {
		start++
	}
	end := strings.Index(s[start:], "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimRight(s[start:start+end], "\r\n"), true
}
