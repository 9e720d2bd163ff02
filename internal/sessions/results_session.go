package sessions

import (
	"time"

	"discord_vote_bot/internal/services"
)

// ResultsSession is a user's private tally view with its refresh control.
// MessageID points at the public poll message the view was opened from and
// doubles as the registry key for recovering the view.
type ResultsSession struct {
	UserID    int64
	PollID    int
	MessageID int64
	EndDate   time.Time

	RefreshDisabled bool
}

// Refresh re-renders the tally. On the first render after the poll has
// closed the refresh control is disabled; the rendered text then carries
// the closing time, so it stays accurate forever.
func (s *ResultsSession) Refresh(results services.ResultsService, now time.Time) (string, error) {
	text, err := results.FormatResults(s.PollID, now)
	if err != nil {
		return "", err
	}

	if now.After(s.EndDate) {
		s.RefreshDisabled = true
	}

	return text, nil
}
