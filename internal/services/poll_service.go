package services

import (
	"strings"
	"time"

	"discord_vote_bot/internal"
	"discord_vote_bot/internal/db/models"
	"discord_vote_bot/internal/db/repositories"

	"go.uber.org/zap"
)

type pollService struct {
	pollRepository repositories.PollRepository
	logger         *zap.SugaredLogger
}

// PollService validates and creates polls. Blank options are dropped and
// duplicates removed before the poll is stored, so option text is unique
// within a poll and may safely serve as a control label.
type PollService interface {
	CreatePoll(question, endDate string, options []string, kind models.PollKind, now time.Time) (*models.Poll, error)
}

func NewPollService(pollRepository repositories.PollRepository, logger *zap.SugaredLogger) PollService {
	return &pollService{
		pollRepository: pollRepository,
		logger:         logger,
	}
}

func (s *pollService) CreatePoll(question, endDate string, options []string, kind models.PollKind, now time.Time) (*models.Poll, error) {
	unique := dedupeOptions(options)
	if len(unique) < 2 {
		return nil, models.ErrNotEnoughOptions
	}

	end, err := internal.ParseEndDate(endDate)
	if err != nil {
		return nil, models.ErrInvalidEndDate
	}

	if end.Before(now) {
		return nil, models.ErrEndDateInPast
	}

	poll := &models.Poll{Question: question, EndDate: end, Kind: kind}

	poll, err = s.pollRepository.Create(poll, unique)
	if err != nil {
		s.logger.Errorw("failed to create poll", "error", err)
		return nil, err
	}

	return poll, nil
}

// dedupeOptions drops blank entries and duplicates, keeping the first
// occurrence so option order follows the command line.
func dedupeOptions(options []string) []string {
	seen := make(map[string]bool, len(options))
	unique := make([]string, 0, len(options))

	for _, option := range options {
		trimmed := strings.TrimSpace(option)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		unique = append(unique, trimmed)
	}

	return unique
}
