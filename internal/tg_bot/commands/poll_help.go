package commands

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const pollHelpCommandName = "poll_help"

type pollHelpCommand struct {
	logger *zap.SugaredLogger
}

func NewPollHelpCommand(logger *zap.SugaredLogger) Command {
	return &pollHelpCommand{logger: logger}
}

func (c *pollHelpCommand) CanHandle(command string) bool {
	return command == pollHelpCommandName
}

func (c *pollHelpCommand) Handle(arguments string, chatID int64) []tgbotapi.Chattable {
	helpMessage := "To create a single-choice poll, use the command:\n" +
		"/single_poll \"<question>\" \"<end_date>\" \"<option1>\" \"<option2>\" ...\n\n" +
		"To create a multiple-choice poll, use the command:\n" +
		"/multi_poll \"<question>\" \"<end_date>\" \"<option1>\" \"<option2>\" ...\n\n" +
		"The date and time format for <end_date> is YYYY-MM-DD HH:MM.\n\n" +
		"Example for a single-choice poll:\n" +
		"/single_poll \"What's your favorite color?\" \"2024-06-04 23:59\" \"Red\" \"Blue\" \"Green\"\n\n" +
		"Example for a multiple-choice poll:\n" +
		"/multi_poll \"Which programming languages do you know?\" \"2024-06-04 23:59\" \"Python\" \"JavaScript\" \"Java\" \"C++\""

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, helpMessage)}
}
