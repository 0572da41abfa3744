package pricing

import "strings"

// Answers holds the raw wizard answers keyed by question identifier.
// Multi-select questions store their values as a comma separated string.
type Answers map[string]string

// Get returns the answer for a question, or "" when unanswered.
func (a Answers) Get(key string) string {
	return a[key]
}

// Has reports whether the question has a non-empty answer.
func (a Answers) Has(key string) bool {
	return strings.TrimSpace(a[key]) != ""
}

// Tokens splits a multi-select answer on commas, dropping empty entries.
func (a Answers) Tokens(key string) []string {
	raw := a[key]
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// Contains reports whether a multi-select answer includes the given token.
func (a Answers) Contains(key, token string) bool {
	for _, t := range a.Tokens(key) {
		if t == token {
			return true
		}
	}
	return false
}
