package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"discord_vote_bot/configs"
	"discord_vote_bot/internal/db"
	"discord_vote_bot/internal/db/repositories"
	"discord_vote_bot/internal/di"
	discordbot "discord_vote_bot/internal/discord_bot"
	"discord_vote_bot/internal/discord_bot/commands"
	"discord_vote_bot/internal/discord_bot/handlers"
	"discord_vote_bot/internal/services"

	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadDiscordVoteBotConfig()
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

	go func() {
		logger.Info("setting up health check server")
		settingUpHealthCheckServer(logger)
	}()

	logger.Info("starting bot")
	pollRepository := repositories.NewPollRepository(database)
	voteRepository := repositories.NewVoteRepository(database)
	ephemeralMessageRepository := repositories.NewEphemeralMessageRepository(database)

	pollService := services.NewPollService(pollRepository, logger)
	engine := services.NewVoteEngine(pollRepository, voteRepository, logger)
	results := services.NewResultsService(pollRepository, voteRepository)

	discordbot.NewBot(
		handlers.NewVoteBotMessageHandler(
			config.App,
			[]commands.Command{
				commands.NewSinglePollCommand(pollService, logger),
				commands.NewMultiPollCommand(pollService, logger),
				commands.NewPollHelpCommand(config.App, logger),
			},
			logger,
		),
		handlers.NewVoteBotInteractionHandler(pollRepository, ephemeralMessageRepository, engine, results, logger),
	).Start(config, logger)
}

func settingUpHealthCheckServer(logger *zap.SugaredLogger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/discord-vote-bot/healthcheck", healthCheckHandler)

	server := &http.Server{Addr: ":8080", Handler: mux}

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Errorw("failed to start http server", "error", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorw("failed to shutdown http server", "error", err)
		return
	}

	logger.Info("shutting down")
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}
