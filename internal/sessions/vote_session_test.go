package sessions

import (
	"testing"
	"time"

	"discord_vote_bot/internal/db/models"
	"discord_vote_bot/internal/services"
	mock_services "discord_vote_bot/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testPoll(kind models.PollKind, endDate time.Time) *models.Poll {
	return &models.Poll{
		ID:       1,
		Question: "What's your favorite color?",
		EndDate:  endDate,
		Kind:     kind,
		Options: []models.Option{
			{ID: 1, PollID: 1, Text: "Red"},
			{ID: 2, PollID: 1, Text: "Green"},
		},
	}
}

func TestNewVoteSession_LoadsCurrentSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mock_services.NewMockVoteEngine(ctrl)
	now := time.Date(2023, 11, 20, 12, 0, 0, 0, time.UTC)
	poll := testPoll(models.PollKindSingle, now.Add(time.Hour))

	engine.EXPECT().CurrentSelection(int64(100), 1).Return(services.Selection{2: true}, nil)

	session, err := NewVoteSession(engine, poll, 100, now)
	assert.NoError(t, err)
	assert.False(t, session.Closed)
	assert.True(t, session.Selected.Contains(2))
}

func TestVoteSession_ActivateReplacesSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mock_services.NewMockVoteEngine(ctrl)
	now := time.Date(2023, 11, 20, 12, 0, 0, 0, time.UTC)
	poll := testPoll(models.PollKindSingle, now.Add(time.Hour))

	engine.EXPECT().CurrentSelection(int64(100), 1).Return(services.Selection{1: true}, nil)
	engine.EXPECT().CastVote(int64(100), 1, 2, now).Return(services.Selection{2: true}, nil)

	session, err := NewVoteSession(engine, poll, 100, now)
	assert.NoError(t, err)

	assert.NoError(t, session.Activate(engine, 2, now))
	assert.True(t, session.Selected.Contains(2))
	assert.False(t, session.Selected.Contains(1))
}

func TestVoteSession_ClosesOnActivationAfterEndDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mock_services.NewMockVoteEngine(ctrl)
	now := time.Date(2023, 11, 20, 12, 0, 0, 0, time.UTC)
	poll := testPoll(models.PollKindSingle, now.Add(time.Minute))

	engine.EXPECT().CurrentSelection(int64(100), 1).Return(services.Selection{}, nil)

	session, err := NewVoteSession(engine, poll, 100, now)
	assert.NoError(t, err)
	assert.False(t, session.Closed)

	err = session.Activate(engine, 1, now.Add(2*time.Minute))
	assert.ErrorIs(t, err, models.ErrPollClosed)
	assert.True(t, session.Closed)
}

func TestVoteSession_ClosedIsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mock_services.NewMockVoteEngine(ctrl)
	now := time.Date(2023, 11, 20, 12, 0, 0, 0, time.UTC)
	poll := testPoll(models.PollKindMulti, now.Add(-time.Hour))

	engine.EXPECT().CurrentSelection(int64(100), 1).Return(services.Selection{1: true}, nil)

	session, err := NewVoteSession(engine, poll, 100, now)
	assert.NoError(t, err)
	assert.True(t, session.Closed)

	// No CastVote expectation: a closed session never reaches the engine.
	assert.ErrorIs(t, session.Activate(engine, 2, now), models.ErrPollClosed)

	for _, control := range session.Controls() {
		assert.True(t, control.Disabled)
	}
}

func TestVoteSession_ControlsReflectSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mock_services.NewMockVoteEngine(ctrl)
	now := time.Date(2023, 11, 20, 12, 0, 0, 0, time.UTC)
	poll := testPoll(models.PollKindMulti, now.Add(time.Hour))

	engine.EXPECT().CurrentSelection(int64(100), 1).Return(services.Selection{2: true}, nil)

	session, err := NewVoteSession(engine, poll, 100, now)
	assert.NoError(t, err)

	controls := session.Controls()
	assert.Equal(t, []OptionControl{
		{OptionID: 1, Text: "Red", Selected: false, Disabled: false},
		{OptionID: 2, Text: "Green", Selected: true, Disabled: false},
	}, controls)
}

func TestVoteSession_PromptMatchesKind(t *testing.T) {
	now := time.Date(2023, 11, 20, 12, 0, 0, 0, time.UTC)

	single := &VoteSession{Poll: testPoll(models.PollKindSingle, now)}
	assert.Equal(t, "**What's your favorite color?**\n*Please select your vote below.*", single.Prompt())

	multi := &VoteSession{Poll: testPoll(models.PollKindMulti, now)}
	assert.Equal(t, "**What's your favorite color?**\n*Please select your vote(s) below.*", multi.Prompt())
}
