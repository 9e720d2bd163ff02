package sessions

import (
	"errors"
	"fmt"
	"time"

	"discord_vote_bot/internal/db/models"
	"discord_vote_bot/internal/services"
)

// OptionControl is the rendering state of one option button.
type OptionControl struct {
	OptionID int
	Text     string
	Selected bool
	Disabled bool
}

// VoteSession is a user's private selection view of one poll. Selected is
// always a projection of persisted votes, never tracked on its own: it is
// initialized from the store and replaced by the engine's result after
// every activation.
type VoteSession struct {
	UserID int64
	Poll   *models.Poll

	Selected services.Selection

	// Closed is terminal. Once set, every further activation is
	// rejected and all controls render disabled.
	Closed bool
}

func NewVoteSession(engine services.VoteEngine, poll *models.Poll, userID int64, now time.Time) (*VoteSession, error) {
	selection, err := engine.CurrentSelection(userID, poll.ID)
	if err != nil {
		return nil, err
	}

	return &VoteSession{
		UserID:   userID,
		Poll:     poll,
		Selected: selection,
		Closed:   poll.Closed(now),
	}, nil
}

// Activate handles one "option pressed" input. The poll's closing time is
// re-checked on every activation; there is no timer that closes a session,
// only the next interaction after the end date.
func (s *VoteSession) Activate(engine services.VoteEngine, optionID int, now time.Time) error {
	if s.Closed || s.Poll.Closed(now) {
		s.Closed = true
		return models.ErrPollClosed
	}

	selection, err := engine.CastVote(s.UserID, s.Poll.ID, optionID, now)
	if err != nil {
		if errors.Is(err, models.ErrPollClosed) {
			s.Closed = true
		}
		return err
	}

	s.Selected = selection
	return nil
}

func (s *VoteSession) Controls() []OptionControl {
	controls := make([]OptionControl, 0, len(s.Poll.Options))
	for _, option := range s.Poll.Options {
		controls = append(controls, OptionControl{
			OptionID: option.ID,
			Text:     option.Text,
			Selected: s.Selected.Contains(option.ID),
			Disabled: s.Closed,
		})
	}

	return controls
}

func (s *VoteSession) Prompt() string {
	if s.Poll.Kind == models.PollKindMulti {
		return fmt.Sprintf("**%s**\n*Please select your vote(s) below.*", s.Poll.Question)
	}
	return fmt.Sprintf("**%s**\n*Please select your vote below.*", s.Poll.Question)
}
