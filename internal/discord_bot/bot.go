package discordbot

import (
	"os"
	"os/signal"
	"syscall"

	"discord_vote_bot/configs"
	"discord_vote_bot/internal/discord_bot/handlers"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type bot struct {
	messageHandler     handlers.MessageHandler
	interactionHandler handlers.InteractionHandler
}

type Bot interface {
	Start(config configs.DiscordVoteBotConfig, logger *zap.SugaredLogger)
}

func NewBot(messageHandler handlers.MessageHandler, interactionHandler handlers.InteractionHandler) Bot {
	return &bot{
		messageHandler:     messageHandler,
		interactionHandler: interactionHandler,
	}
}

func (b *bot) Start(config configs.DiscordVoteBotConfig, logger *zap.SugaredLogger) {
	logger.Info("creating session")
	session, err := discordgo.New("Bot " + config.Discord.Token)
	if err != nil {
		logger.Fatalw("failed to create discord session", "error", err)
	}

	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		b.messageHandler.Handle(s, m)
	})
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.interactionHandler.Handle(s, i)
	})

	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	if err := session.Open(); err != nil {
		logger.Fatalw("error opening connection", "error", err)
	}
	logger.Info("bot started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	if err := session.Close(); err != nil {
		logger.Errorw("failed to close session", "error", err)
	}
}
