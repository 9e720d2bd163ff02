package services

import (
	"time"

	"discord_vote_bot/internal/db/models"
	"discord_vote_bot/internal/db/repositories"

	"go.uber.org/zap"
)

// Selection is the set of option IDs a user currently holds in one poll.
type Selection map[int]bool

func (s Selection) Contains(optionID int) bool {
	return s[optionID]
}

type voteEngine struct {
	pollRepository repositories.PollRepository
	voteRepository repositories.VoteRepository
	logger         *zap.SugaredLogger
}

// VoteEngine applies the vote-casting rules on top of the repositories.
//
// Casting is an idempotent toggle: activating an already-selected option
// retracts it. Single-choice polls additionally retract the previous
// selection when a different option is activated, so a user never holds
// more than one vote in such a poll.
type VoteEngine interface {
	CastVote(userID int64, pollID, optionID int, now time.Time) (Selection, error)
	CurrentSelection(userID int64, pollID int) (Selection, error)
}

func NewVoteEngine(pollRepository repositories.PollRepository, voteRepository repositories.VoteRepository, logger *zap.SugaredLogger) VoteEngine {
	return &voteEngine{
		pollRepository: pollRepository,
		voteRepository: voteRepository,
		logger:         logger,
	}
}

func (e *voteEngine) CastVote(userID int64, pollID, optionID int, now time.Time) (Selection, error) {
	poll, err := e.pollRepository.GetOne(pollID)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, models.ErrPollNotFound
	}

	if poll.Closed(now) {
		return nil, models.ErrPollClosed
	}

	options, err := e.pollRepository.GetOptions(pollID)
	if err != nil {
		return nil, err
	}

	if !optionListed(options, optionID) {
		e.logger.Warnw("vote for option outside poll", "pollID", pollID, "optionID", optionID)
		return nil, models.ErrUnknownOption
	}

	selection, err := e.CurrentSelection(userID, pollID)
	if err != nil {
		return nil, err
	}

	switch poll.Kind {
	case models.PollKindSingle:
		return e.castSingle(userID, pollID, optionID, selection)
	default:
		return e.castMulti(userID, pollID, optionID, selection)
	}
}

func (e *voteEngine) CurrentSelection(userID int64, pollID int) (Selection, error) {
	votes, err := e.voteRepository.GetManyByUserAndPoll(userID, pollID)
	if err != nil {
		return nil, err
	}

	selection := make(Selection, len(votes))
	for _, vote := range votes {
		selection[vote.OptionID] = true
	}

	return selection, nil
}

// castSingle keeps at most one vote per (user, poll): activating the
// current selection clears it, activating another option switches to it.
func (e *voteEngine) castSingle(userID int64, pollID, optionID int, selection Selection) (Selection, error) {
	if selection.Contains(optionID) {
		if err := e.voteRepository.DeleteOne(userID, pollID, optionID); err != nil {
			return nil, err
		}
		return Selection{}, nil
	}

	if err := e.voteRepository.DeleteAllForPoll(userID, pollID); err != nil {
		return nil, err
	}

	if _, err := e.voteRepository.Create(&models.Vote{UserID: userID, PollID: pollID, OptionID: optionID}); err != nil {
		return nil, err
	}

	return Selection{optionID: true}, nil
}

// castMulti toggles the option independently of the rest of the selection.
func (e *voteEngine) castMulti(userID int64, pollID, optionID int, selection Selection) (Selection, error) {
	if selection.Contains(optionID) {
		if err := e.voteRepository.DeleteOne(userID, pollID, optionID); err != nil {
			return nil, err
		}
		delete(selection, optionID)
		return selection, nil
	}

	if _, err := e.voteRepository.Create(&models.Vote{UserID: userID, PollID: pollID, OptionID: optionID}); err != nil {
		return nil, err
	}
	selection[optionID] = true

	return selection, nil
}

func optionListed(options []*models.Option, optionID int) bool {
	for _, option := range options {
		if option.ID == optionID {
			return true
		}
	}
	return false
}
