package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitQuoted_QuotedAndBareArguments(t *testing.T) {
	args := SplitQuoted(`"What's your favorite color?" "2024-06-04 23:59" Red Blue`)
	assert.Equal(t, []string{"What's your favorite color?", "2024-06-04 23:59", "Red", "Blue"}, args)
}

func TestSplitQuoted_KeepsSpacesInsideQuotes(t *testing.T) {
	args := SplitQuoted(`"option one" "option two"`)
	assert.Equal(t, []string{"option one", "option two"}, args)
}

func TestSplitQuoted_KeepsEmptyQuotedArgument(t *testing.T) {
	args := SplitQuoted(`"" Red`)
	assert.Equal(t, []string{"", "Red"}, args)
}

func TestSplitQuoted_CollapsesWhitespaceBetweenArguments(t *testing.T) {
	args := SplitQuoted("Red \t Green\nBlue")
	assert.Equal(t, []string{"Red", "Green", "Blue"}, args)
}

func TestSplitQuoted_EmptyInput(t *testing.T) {
	assert.Empty(t, SplitQuoted(""))
	assert.Empty(t, SplitQuoted("   "))
}
