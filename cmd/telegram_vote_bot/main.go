package main

import (
	"discord_vote_bot/configs"
	"discord_vote_bot/internal/db"
	"discord_vote_bot/internal/db/repositories"
	"discord_vote_bot/internal/di"
	"discord_vote_bot/internal/services"
	tgbot "discord_vote_bot/internal/tg_bot"
	"discord_vote_bot/internal/tg_bot/commands"
	"discord_vote_bot/internal/tg_bot/handlers"
)

func main() {
	config, err := configs.LoadTelegramVoteBotConfig()
	logger := di.NewLogger(config.App, config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	logger.Info("starting bot")
	pollRepository := repositories.NewPollRepository(database)
	voteRepository := repositories.NewVoteRepository(database)
	ephemeralMessageRepository := repositories.NewEphemeralMessageRepository(database)

	pollService := services.NewPollService(pollRepository, logger)
	engine := services.NewVoteEngine(pollRepository, voteRepository, logger)
	results := services.NewResultsService(pollRepository, voteRepository)

	tgbot.NewBot(
		handlers.NewVoteBotCommandHandler(
			pollRepository,
			ephemeralMessageRepository,
			engine,
			results,
			logger,
			[]commands.Command{
				commands.NewSinglePollCommand(pollService, logger),
				commands.NewMultiPollCommand(pollService, logger),
				commands.NewPollHelpCommand(logger),
			},
		),
	).Start(config, logger)
}
