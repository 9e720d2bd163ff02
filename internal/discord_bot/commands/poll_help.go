package commands

import (
	"fmt"

	"discord_vote_bot/configs"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const pollHelpCommandName = "poll_help"

type pollHelpCommand struct {
	appConfig configs.App
	logger    *zap.SugaredLogger
}

func NewPollHelpCommand(appConfig configs.App, logger *zap.SugaredLogger) Command {
	return &pollHelpCommand{
		appConfig: appConfig,
		logger:    logger,
	}
}

func (c *pollHelpCommand) CanHandle(command string) bool {
	return command == pollHelpCommandName
}

func (c *pollHelpCommand) Handle(arguments string, session *discordgo.Session, message *discordgo.MessageCreate) error {
	prefix := c.appConfig.CommandPrefix

	helpMessage := fmt.Sprintf(
		"To create a single-choice poll, use the command:\n"+
			"`%[1]ssingle_poll \"<question>\" \"<end_date>\" \"<option1>\" \"<option2>\" ...`\n\n"+
			"To create a multiple-choice poll, use the command:\n"+
			"`%[1]smulti_poll \"<question>\" \"<end_date>\" \"<option1>\" \"<option2>\" ...`\n\n"+
			"The date and time format for <end_date> is YYYY-MM-DD HH:MM.\n\n"+
			"Example for a single-choice poll:\n"+
			"`%[1]ssingle_poll \"What's your favorite color?\" \"2024-06-04 23:59\" \"Red\" \"Blue\" \"Green\"`\n\n"+
			"Example for a multiple-choice poll:\n"+
			"`%[1]smulti_poll \"Which programming languages do you know?\" \"2024-06-04 23:59\" \"Python\" \"JavaScript\" \"Java\" \"C++\"`",
		prefix,
	)

	_, err := session.ChannelMessageSend(message.ChannelID, helpMessage)
	return err
}
