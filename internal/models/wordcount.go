package models

import "strings"

// CountWords returns the number of whitespace-separated words in content.
// Stored word counts for stories, chapters and drafts are computed with this
// on every content write.
func CountWords(content string) int {
	return len(strings.Fields(content))
}
