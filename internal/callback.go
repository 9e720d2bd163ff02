package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// Interactive controls carry the action and its integer arguments as
// colon-separated fields, e.g. "opt:12:34" for option 34 of poll 12. The
// same tokens serve as Discord component custom IDs and Telegram callback
// data (which caps tokens at 64 bytes, far above what these need).
const (
	ActionVote    = "vote"
	ActionOption  = "opt"
	ActionResults = "results"
	ActionRefresh = "refresh"
)

func CallbackToken(action string, args ...int64) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, action)
	for _, arg := range args {
		parts = append(parts, strconv.FormatInt(arg, 10))
	}

	return strings.Join(parts, ":")
}

func ParseCallbackToken(token string) (string, []int64, error) {
	parts := strings.Split(token, ":")

	args := make([]int64, 0, len(parts)-1)
	for _, part := range parts[1:] {
		value, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid callback token %q: %w", token, err)
		}
		args = append(args, value)
	}

	return parts[0], args, nil
}
