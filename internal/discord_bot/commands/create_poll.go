package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"discord_vote_bot/internal"
	"discord_vote_bot/internal/db/models"
	"discord_vote_bot/internal/services"

	"github.com/bwmarrin/discordgo"
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

func (c *createPollCommand) Handle(arguments string, session *discordgo.Session, message *discordgo.MessageCreate) error {
	args := internal.SplitQuoted(arguments)
	if len(args) < 2 {
		_, err := session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Usage: `%s \"<question>\" \"<end_date>\" \"<option1>\" \"<option2>\" ...`", c.name))
		return err
	}

	question, endDate, options := args[0], args[1], args[2:]

	poll, err := c.pollService.CreatePoll(question, endDate, options, c.kind, time.Now())
	if err != nil {
		if text := validationMessage(err); text != "" {
			_, err = session.ChannelMessageSend(message.ChannelID, text)
			return err
		}
		return err
	}

	_, err = session.ChannelMessageSendComplex(message.ChannelID, &discordgo.MessageSend{
		Content:    pollAnnouncement(poll),
		Components: PollControls(poll.ID, false),
	})

	return err
}

// validationMessage maps creation failures the user can fix to rejection
// texts. Anything else is an internal failure and stays empty.
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
	fmt.Fprintf(&b, "**%s**\n", poll.Question)
	fmt.Fprintf(&b, "*%s choice*\n", poll.Kind.CapitalizedString())
	for _, option := range poll.Options {
		fmt.Fprintf(&b, "%s\n", option.Text)
	}
	fmt.Fprintf(&b, "*The poll ends at %s*", internal.FormatEndDate(poll.EndDate))

	return b.String()
}

// PollControls builds the two public controls of a poll message.
func PollControls(pollID int, disabled bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "I want to vote",
					Style:    discordgo.PrimaryButton,
					Disabled: disabled,
					CustomID: internal.CallbackToken(internal.ActionVote, int64(pollID)),
				},
				discordgo.Button{
					Label:    "Show results",
					Style:    discordgo.PrimaryButton,
					Disabled: disabled,
					CustomID: internal.CallbackToken(internal.ActionResults, int64(pollID)),
				},
			},
		},
	}
}
