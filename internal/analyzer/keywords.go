package analyzer

import (
	"strings"
	"unicode/utf8"
)

// ExtractKeywords returns up to limit lower-cased whitespace-separated tokens
// longer than minLen characters, in input order. Duplicates are kept.
func ExtractKeywords(text string, limit, minLen int) []string {
	keywords := make([]string, 0, limit)
	if limit <= 0 {
		return keywords
	}
	for _, token := range strings.Fields(strings.ToLower(text)) {
		if utf8.RuneCountInString(token) <= minLen {
			continue
		}
		keywords = append(keywords, token)
		if len(keywords) == limit {
			break
		}
	}
	return keywords
}
