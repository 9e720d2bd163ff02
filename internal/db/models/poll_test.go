package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollClosed_OpenUpToAndIncludingEndDate(t *testing.T) {
	end := time.Date(2023, 11, 21, 23, 59, 0, 0, time.UTC)
	poll := &Poll{EndDate: end}

	assert.False(t, poll.Closed(end.Add(-time.Hour)))
	assert.False(t, poll.Closed(end))
	assert.True(t, poll.Closed(end.Add(time.Second)))
}

func TestPollKindCapitalizedString(t *testing.T) {
	assert.Equal(t, "Single", PollKindSingle.CapitalizedString())
	assert.Equal(t, "Multi", PollKindMulti.CapitalizedString())
}
