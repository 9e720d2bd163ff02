package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"discord_vote_bot/internal"
	"discord_vote_bot/internal/db/models"
	"discord_vote_bot/internal/services"
	tgbot "discord_vote_bot/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	singlePollCommandName = "single_poll"
	multiPollCommandName  = "multi_poll"
)

type createPollCommand struct {
	name        string
	kind        models.PollKind
	pollService services.PollService
	logger      *zap.SugaredLogger
}

func NewSinglePollCommand(pollService services.PollService, logger *zap.SugaredLogger) Command {
	return &createPollCommand{
		name:        singlePollCommandName,
		kind:        models.PollKindSingle,
		pollService: pollService,
		logger:      logger,
	}
}

func NewMultiPollCommand(pollService services.PollService, logger *zap.SugaredLogger) Command {
	return &createPollCommand{
		name:        multiPollCommandName,
		kind:        models.PollKindMulti,
		pollService: pollService,
		logger:      logger,
	}
}

func (c *createPollCommand) CanHandle(command string) bool {
	return command == c.name
}

func (c *createPollCommand) Handle(arguments string, chatID int64) []tgbotapi.Chattable {
	args := internal.SplitQuoted(arguments)
	if len(args) < 2 {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, fmt.Sprintf("Usage: /%s \"<question>\" \"<end_date>\" \"<option1>\" \"<option2>\" ...", c.name))}
	}

	question, endDate, options := args[0], args[1], args[2:]

	poll, err := c.pollService.CreatePoll(question, endDate, options, c.kind, time.Now())
	if err != nil {
		if text := validationMessage(err); text != "" {
			return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, text)}
		}

		c.logger.Errorw("failed to create poll", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	message := tgbotapi.NewMessage(chatID, pollAnnouncement(poll))
	message.ParseMode = tgbotapi.ModeMarkdown
	message.ReplyMarkup = PollControls(poll.ID)

	return []tgbotapi.Chattable{message}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrNotEnoughOptions):
		return "You must provide at least two non-empty and unique options for the poll."
	case errors.Is(err, models.ErrInvalidEndDate):
		return "Invalid date format. Please use the format YYYY-MM-DD HH:MM."
	case errors.Is(err, models.ErrEndDateInPast):
		return "End date cannot be in the past."
	}
	return ""
}

func pollAnnouncement(poll *models.Poll) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", poll.Question)
	fmt.Fprintf(&b, "_%s choice_\n", poll.Kind.CapitalizedString())
	for _, option := range poll.Options {
		fmt.Fprintf(&b, "%s\n", option.Text)
	}
	fmt.Fprintf(&b, "_The poll ends at %s_", internal.FormatEndDate(poll.EndDate))

	return b.String()
}

// PollControls is the inline keyboard of a public poll message.
func PollControls(pollID int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("I want to vote", internal.CallbackToken(internal.ActionVote, int64(pollID))),
			tgbotapi.NewInlineKeyboardButtonData("Show results", internal.CallbackToken(internal.ActionResults, int64(pollID))),
		),
	)
}
