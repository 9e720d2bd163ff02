package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallbackToken_RoundTrip(t *testing.T) {
	token := CallbackToken(ActionOption, 12, 34)
	assert.Equal(t, "opt:12:34", token)

	action, args, err := ParseCallbackToken(token)
	assert.NoError(t, err)
	assert.Equal(t, ActionOption, action)
	assert.Equal(t, []int64{12, 34}, args)
}

func TestCallbackToken_NoArguments(t *testing.T) {
	action, args, err := ParseCallbackToken("vote")
	assert.NoError(t, err)
	assert.Equal(t, ActionVote, action)
	assert.Empty(t, args)
}

func TestParseCallbackToken_RejectsNonNumericArguments(t *testing.T) {
	_, _, err := ParseCallbackToken("opt:twelve")
	assert.Error(t, err)
}

func TestFormatEndDate_RoundTrip(t *testing.T) {
	parsed, err := ParseEndDate("2024-06-04 23:59")
	assert.NoError(t, err)
	assert.Equal(t, "2024-06-04 23:59", FormatEndDate(parsed))
}

func TestParseEndDate_RejectsOtherFormats(t *testing.T) {
	_, err := ParseEndDate("04/06/2024 23:59")
	assert.Error(t, err)
}
