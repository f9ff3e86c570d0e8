// Package moderation screens free-text fields for profanity before they are
// written through to the database. The check is lexical and pure: the text is
// lower-cased, split on whitespace runs, and rejected only when a whole token
// matches a banned word. Substring hits do not count, so "shitake" passes
// while "shit" does not.
package moderation

import "strings"

// IsTextExplicit reports whether any whitespace-delimited token of text,
// compared case-insensitively, is a banned word.
func IsTextExplicit(text string) bool {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if _, banned := profanity[word]; banned {
			return true
		}
	}
	return false
}
