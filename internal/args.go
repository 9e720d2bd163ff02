package internal

import "strings"

// SplitQuoted splits a command argument string on whitespace, keeping
// double-quoted segments together. Quotes are stripped from the result:
//
//	`"What's your favorite color?" "2024-06-04 23:59" Red Blue`
//
// yields four arguments.
func SplitQuoted(arguments string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false
	hasValue := false

	for _, r := range arguments {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			hasValue = true
		case !inQuotes && (r == ' ' || r == '\t' || r == '\n'):
			if hasValue || current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
				hasValue = false
			}
		default:
			current.WriteRune(r)
		}
	}

	if hasValue || current.Len() > 0 {
		args = append(args, current.String())
	}

	return args
}
