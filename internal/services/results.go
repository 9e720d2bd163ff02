package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"discord_vote_bot/internal"
	"discord_vote_bot/internal/db/models"
	"discord_vote_bot/internal/db/repositories"
)

type resultsService struct {
	pollRepository repositories.PollRepository
	voteRepository repositories.VoteRepository
}

// ResultsService renders a poll tally as a chat message. While the poll
// is open the header carries the current time; once it has closed, the
// closing time, so a stale view is recognizable.
type ResultsService interface {
	FormatResults(pollID int, now time.Time) (string, error)
}

func NewResultsService(pollRepository repositories.PollRepository, voteRepository repositories.VoteRepository) ResultsService {
	return &resultsService{
		pollRepository: pollRepository,
		voteRepository: voteRepository,
	}
}

func (s *resultsService) FormatResults(pollID int, now time.Time) (string, error) {
	poll, err := s.pollRepository.GetOne(pollID)
	if err != nil {
		return "", err
	}
	if poll == nil {
		return "", models.ErrPollNotFound
	}

	tally, err := s.voteRepository.Tally(pollID)
	if err != nil {
		return "", err
	}

	// Ranked by votes; ties keep option creation order (the repository
	// returns rows ordered by option ID).
	sort.SliceStable(tally, func(i, j int) bool {
		return tally[i].Count > tally[j].Count
	})

	closed := poll.Closed(now)

	asOf := now.Format("2006-01-02 15:04:05")
	if closed {
		asOf = internal.FormatEndDate(poll.EndDate)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", poll.Question)
	fmt.Fprintf(&b, "*Results as of %s:*\n", asOf)

	for _, row := range tally {
		fmt.Fprintf(&b, "**%s:** %d\n", row.Text, row.Count)
	}

	if closed {
		fmt.Fprintf(&b, "*The poll ended at %s*\n", internal.FormatEndDate(poll.EndDate))
	} else {
		fmt.Fprintf(&b, "*The poll ends at %s*\n", internal.FormatEndDate(poll.EndDate))
	}

	return b.String(), nil
}
