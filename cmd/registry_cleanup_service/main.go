package main

import (
	"time"

	"discord_vote_bot/configs"
	"discord_vote_bot/internal/db"
	"discord_vote_bot/internal/db/repositories"
	"discord_vote_bot/internal/di"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

func main() {
	s := gocron.NewScheduler(time.UTC)

	config, err := configs.LoadRegistryCleanupServiceConfig()
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

	s.Cron("30 4 * * *").Do(func() {
		ephemeralMessageRepository := repositories.NewEphemeralMessageRepository(database)
		pruneStaleResultViews(ephemeralMessageRepository, config.RetentionDays, time.Now(), logger)
	})

	s.StartBlocking()
}

// pruneStaleResultViews drops registry rows for result views whose poll
// ended more than retentionDays ago. The registry is an index, not vote
// state, so rows past the recovery window can go.
func pruneStaleResultViews(
	ephemeralMessageRepository repositories.EphemeralMessageRepository,
	retentionDays int,
	now time.Time,
	logger *zap.SugaredLogger,
) int {
	cutoff := now.AddDate(0, 0, -retentionDays)

	deleted, err := ephemeralMessageRepository.DeleteForPollsEndedBefore(cutoff)
	if err != nil {
		logger.Errorw("failed to prune result view registry", "error", err)
		return 0
	}

	if deleted == 0 {
		logger.Info("no stale result views to prune")
	} else {
		logger.Infow("pruned stale result views", "count", deleted)
	}

	return deleted
}
