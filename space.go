package trim

import "strings"

// Space trims leading and trailing Unicode whitespace from *s in place and
// returns the result. A nil s yields "".
func Space(s *string) string {
	if s == nil {
		return ""
	}
	*s = strings.TrimSpace(*s)
	return *s
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
