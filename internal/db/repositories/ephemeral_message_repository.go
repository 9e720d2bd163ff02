package repositories

import (
	"errors"
	"time"

	"discord_vote_bot/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type ephemeralMessageRepository struct {
	repository
}

type EphemeralMessageRepository interface {
	Create(message *models.EphemeralResultMessage) (*models.EphemeralResultMessage, error)
	// GetOne returns nil without an error when no matching row exists.
	GetOne(userID int64, pollID int, messageID int64) (*models.EphemeralResultMessage, error)
	// DeleteForPollsEndedBefore prunes rows whose poll ended before the
	// cutoff and returns how many rows were removed.
	DeleteForPollsEndedBefore(cutoff time.Time) (int, error)
}

func NewEphemeralMessageRepository(db *pg.DB) EphemeralMessageRepository {
	return &ephemeralMessageRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *ephemeralMessageRepository) Create(message *models.EphemeralResultMessage) (*models.EphemeralResultMessage, error) {
	_, err := r.db.Model(message).Insert()
	if err != nil {
		return nil, err
	}

	return message, nil
}

func (r *ephemeralMessageRepository) GetOne(userID int64, pollID int, messageID int64) (*models.EphemeralResultMessage, error) {
	message := &models.EphemeralResultMessage{}

	err := r.db.Model(message).
		Where("user_id = ?", userID).
		Where("poll_id = ?", pollID).
		Where("message_id = ?", messageID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return message, nil
}

func (r *ephemeralMessageRepository) DeleteForPollsEndedBefore(cutoff time.Time) (int, error) {
	result, err := r.db.Model((*models.EphemeralResultMessage)(nil)).
		Where("poll_id IN (SELECT id FROM polls WHERE end_date < ?)", cutoff).
		Delete()
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
