// Package input provides completion for the expression prompt.
package input

import "strings"

// Keywords are the words the expression prompt completes, in suggestion order.
var Keywords = []string{
	"today", "tomorrow", "yesterday", "now",
	"this", "next", "last", "previous", "month", "year",
	"from", "ago", "after", "before", "in", "of",
	"first", "second", "third", "fourth", "fifth",
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
	"years", "months", "days", "hours", "minutes", "seconds",
}

// lastWord returns the word being typed, or "" when input ends in a space.
func lastWord(input string) string {
	if input == "" || strings.HasSuffix(input, " ") {
		return ""
	}
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[len(fields)-1])
}

// MatchingWords returns the words that extend the word being typed.
func MatchingWords(input string, words []string) []string {
	prefix := lastWord(input)
	if prefix == "" {
		return nil
	}
	matches := make([]string, 0, len(words))
	for _, w := range words {
		if strings.HasPrefix(w, prefix) && w != prefix {
			matches = append(matches, w)
		}
	}
	return matches
}

// Autocomplete replaces the word being typed with its first match and
// appends a space.
func Autocomplete(input string, words []string) (string, bool) {
	matches := MatchingWords(input, words)
	if len(matches) == 0 {
		return input, false
	}
	prefix := lastWord(input)
	return input[:len(input)-len(prefix)] + matches[0] + " ", true
}
