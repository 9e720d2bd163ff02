package repositories

import (
	"context"
	"errors"

	"discord_vote_bot/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type pollRepository struct {
	repository
}

type PollRepository interface {
	// Create inserts the poll together with all of its options in one
	// transaction. Either the poll and every option exist, or none do.
	Create(poll *models.Poll, optionTexts []string) (*models.Poll, error)
	// GetOne loads the poll with its options in creation order.
	GetOne(pollID int) (*models.Poll, error)
	// GetOptions returns the poll's options alone, in creation order.
	GetOptions(pollID int) ([]*models.Option, error)
}

func NewPollRepository(db *pg.DB) PollRepository {
	return &pollRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *pollRepository) Create(poll *models.Poll, optionTexts []string) (*models.Poll, error) {
	err := r.db.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		if _, err := tx.Model(poll).Insert(); err != nil {
			return err
		}

		for _, text := range optionTexts {
			option := &models.Option{PollID: poll.ID, Text: text}
			if _, err := tx.Model(option).Insert(); err != nil {
				return err
			}
			poll.Options = append(poll.Options, *option)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return poll, nil
}

func (r *pollRepository) GetOne(pollID int) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.Model(poll).
		Relation("Options", func(q *pg.Query) (*pg.Query, error) {
			return q.OrderExpr("id ASC"), nil
		}).
		Where("poll.id = ?", pollID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return poll, nil
}

func (r *pollRepository) GetOptions(pollID int) ([]*models.Option, error) {
	options := make([]*models.Option, 0)

	err := r.db.Model(&options).
		Where("poll_id = ?", pollID).
		OrderExpr("id ASC").
		Select()

	return options, err
}
