package services

import (
	"errors"
	"testing"
	"time"

	"discord_vote_bot/internal/db/models"
	mock_repositories "discord_vote_bot/internal/db/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestCreatePoll_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	now := time.Date(2023, 11, 20, 12, 0, 0, 0, time.Local)

	pollRepo.EXPECT().
		Create(gomock.Any(), []string{"Red", "Green", "Blue"}).
		DoAndReturn(func(poll *models.Poll, optionTexts []string) (*models.Poll, error) {
			assert.Equal(t, "What's your favorite color?", poll.Question)
			assert.Equal(t, models.PollKindSingle, poll.Kind)
			assert.Equal(t, time.Date(2023, 11, 21, 23, 59, 0, 0, time.Local), poll.EndDate)
			poll.ID = 7
			return poll, nil
		})

	service := NewPollService(pollRepo, zap.NewNop().Sugar())
	poll, err := service.CreatePoll(
		"What's your favorite color?",
		"2023-11-21 23:59",
		[]string{"Red", "Green", "Blue"},
		models.PollKindSingle,
		now,
	)
	assert.NoError(t, err)
	assert.Equal(t, 7, poll.ID)
}

func TestCreatePoll_DropsBlanksAndDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	now := time.Date(2023, 11, 20, 12, 0, 0, 0, time.Local)

	pollRepo.EXPECT().
		Create(gomock.Any(), []string{"Red", "Blue"}).
		DoAndReturn(func(poll *models.Poll, optionTexts []string) (*models.Poll, error) {
			return poll, nil
		})

	service := NewPollService(pollRepo, zap.NewNop().Sugar())
	_, err := service.CreatePoll(
		"Pick one",
		"2023-11-21 23:59",
		[]string{" Red ", "Red", "", "  ", "Blue"},
		models.PollKindMulti,
		now,
	)
	assert.NoError(t, err)
}

func TestCreatePoll_NotEnoughOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	service := NewPollService(pollRepo, zap.NewNop().Sugar())

	_, err := service.CreatePoll("Pick one", "2023-11-21 23:59", []string{"Red"}, models.PollKindSingle, time.Now())
	assert.ErrorIs(t, err, models.ErrNotEnoughOptions)
}

func TestCreatePoll_DuplicatesCollapseBelowMinimum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	service := NewPollService(pollRepo, zap.NewNop().Sugar())

	_, err := service.CreatePoll("Pick one", "2023-11-21 23:59", []string{"Red", "Red", " Red "}, models.PollKindSingle, time.Now())
	assert.ErrorIs(t, err, models.ErrNotEnoughOptions)
}

func TestCreatePoll_InvalidEndDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	service := NewPollService(pollRepo, zap.NewNop().Sugar())

	_, err := service.CreatePoll("Pick one", "tomorrow evening", []string{"Red", "Blue"}, models.PollKindSingle, time.Now())
	assert.ErrorIs(t, err, models.ErrInvalidEndDate)
}

func TestCreatePoll_EndDateInPast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	service := NewPollService(pollRepo, zap.NewNop().Sugar())

	now := time.Date(2023, 11, 20, 12, 0, 0, 0, time.Local)
	_, err := service.CreatePoll("Pick one", "2023-11-19 12:00", []string{"Red", "Blue"}, models.PollKindSingle, now)
	assert.ErrorIs(t, err, models.ErrEndDateInPast)
}

func TestCreatePoll_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	pollRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

	service := NewPollService(pollRepo, zap.NewNop().Sugar())

	now := time.Date(2023, 11, 20, 12, 0, 0, 0, time.Local)
	_, err := service.CreatePoll("Pick one", "2023-11-21 23:59", []string{"Red", "Blue"}, models.PollKindSingle, now)
	assert.Error(t, err)
}
