package commands

import (
	"errors"
	"testing"
	"time"

	"discord_vote_bot/internal/db/models"
	mock_services "discord_vote_bot/internal/services/mocks"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestCreatePollCommand_UsageOnTooFewArguments(t *testing.T) {
	command := NewSinglePollCommand(nil, zap.NewNop().Sugar())

	replies := command.Handle(`"Only a question"`, 42)
	assert.Len(t, replies, 1)

	message, ok := replies[0].(tgbotapi.MessageConfig)
	assert.True(t, ok)
	assert.Contains(t, message.Text, "Usage: /single_poll")
}

func TestCreatePollCommand_ValidationMessages(t *testing.T) {
	cases := []struct {
		err  error
		text string
	}{
		{models.ErrNotEnoughOptions, "You must provide at least two non-empty and unique options for the poll."},
		{models.ErrInvalidEndDate, "Invalid date format. Please use the format YYYY-MM-DD HH:MM."},
		{models.ErrEndDateInPast, "End date cannot be in the past."},
	}

	for _, c := range cases {
		ctrl := gomock.NewController(t)

		pollService := mock_services.NewMockPollService(ctrl)
		pollService.EXPECT().
			CreatePoll("Pick one", "2024-06-04 23:59", []string{"Red", "Blue"}, models.PollKindSingle, gomock.Any()).
			Return(nil, c.err)

		command := NewSinglePollCommand(pollService, zap.NewNop().Sugar())
		replies := command.Handle(`"Pick one" "2024-06-04 23:59" Red Blue`, 42)
		assert.Len(t, replies, 1)

		message := replies[0].(tgbotapi.MessageConfig)
		assert.Equal(t, c.text, message.Text)

		ctrl.Finish()
	}
}

func TestCreatePollCommand_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollService := mock_services.NewMockPollService(ctrl)
	pollService.EXPECT().
		CreatePoll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	command := NewSinglePollCommand(pollService, zap.NewNop().Sugar())
	replies := command.Handle(`"Pick one" "2024-06-04 23:59" Red Blue`, 42)
	assert.Len(t, replies, 1)

	message := replies[0].(tgbotapi.MessageConfig)
	assert.Equal(t, "Something went wrong, please try again.", message.Text)
}

func TestCreatePollCommand_AnnouncesPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	poll := &models.Poll{
		ID:       12,
		Question: "What's your favorite color?",
		EndDate:  time.Date(2024, 6, 4, 23, 59, 0, 0, time.UTC),
		Kind:     models.PollKindMulti,
		Options: []models.Option{
			{ID: 1, Text: "Red"},
			{ID: 2, Text: "Blue"},
		},
	}

	pollService := mock_services.NewMockPollService(ctrl)
	pollService.EXPECT().
		CreatePoll("What's your favorite color?", "2024-06-04 23:59", []string{"Red", "Blue"}, models.PollKindMulti, gomock.Any()).
		Return(poll, nil)

	command := NewMultiPollCommand(pollService, zap.NewNop().Sugar())
	replies := command.Handle(`"What's your favorite color?" "2024-06-04 23:59" Red Blue`, 42)
	assert.Len(t, replies, 1)

	message := replies[0].(tgbotapi.MessageConfig)
	assert.Equal(t, "*What's your favorite color?*\n_Multi choice_\nRed\nBlue\n_The poll ends at 2024-06-04 23:59_", message.Text)

	markup, ok := message.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	assert.True(t, ok)
	assert.Len(t, markup.InlineKeyboard, 1)
	assert.Len(t, markup.InlineKeyboard[0], 2)
	assert.Equal(t, "vote:12", *markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "results:12", *markup.InlineKeyboard[0][1].CallbackData)
}

func TestPollHelpCommand(t *testing.T) {
	command := NewPollHelpCommand(zap.NewNop().Sugar())
	assert.True(t, command.CanHandle("poll_help"))
	assert.False(t, command.CanHandle("single_poll"))

	replies := command.Handle("", 42)
	assert.Len(t, replies, 1)

	message := replies[0].(tgbotapi.MessageConfig)
	assert.Contains(t, message.Text, "/single_poll")
	assert.Contains(t, message.Text, "/multi_poll")
	assert.Contains(t, message.Text, "YYYY-MM-DD HH:MM")
}
