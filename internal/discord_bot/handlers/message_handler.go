package handlers

import (
	"strings"

	"discord_vote_bot/configs"
	"discord_vote_bot/internal/discord_bot/commands"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type MessageHandler interface {
	Handle(session *discordgo.Session, message *discordgo.MessageCreate)
}

type voteBotMessageHandler struct {
	appConfig configs.App
	commands  []commands.Command
	logger    *zap.SugaredLogger
}

func NewVoteBotMessageHandler(appConfig configs.App, commands []commands.Command, logger *zap.SugaredLogger) MessageHandler {
	return &voteBotMessageHandler{
		appConfig: appConfig,
		commands:  commands,
		logger:    logger,
	}
}

// Handle dispatches prefixed text commands. A failing command is logged
// and dropped; it never takes the process down or affects other users.
func (h *voteBotMessageHandler) Handle(session *discordgo.Session, message *discordgo.MessageCreate) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorw("panic while handling command", "panic", r)
		}
	}()

	if message.Author == nil || message.Author.Bot {
		return
	}

	if !strings.HasPrefix(message.Content, h.appConfig.CommandPrefix) {
		return
	}

	fields := strings.SplitN(strings.TrimPrefix(message.Content, h.appConfig.CommandPrefix), " ", 2)
	command := fields[0]

	arguments := ""
	if len(fields) > 1 {
		arguments = fields[1]
	}

	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			if err := handler.Handle(arguments, session, message); err != nil {
				h.logger.Errorw("failed to handle command", "command", command, "error", err)
			}
			return
		}
	}

	// Unknown prefixed messages may belong to other bots; ignore them.
}
