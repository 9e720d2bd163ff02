package repositories

import (
	"discord_vote_bot/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	Create(vote *models.Vote) (*models.Vote, error)
	DeleteOne(userID int64, pollID, optionID int) error
	// DeleteAllForPoll retracts every vote the user holds in the poll.
	// Used for the single-choice switch, where the previous selection is
	// removed before the new one is recorded.
	DeleteAllForPoll(userID int64, pollID int) error
	GetManyByUserAndPoll(userID int64, pollID int) ([]*models.Vote, error)
	// Tally returns one row per option of the poll in creation order,
	// counting zero for options without votes.
	Tally(pollID int) ([]models.OptionCount, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *voteRepository) Create(vote *models.Vote) (*models.Vote, error) {
	_, err := r.db.Model(vote).Insert()
	if err != nil {
		return nil, err
	}

	return vote, nil
}

func (r *voteRepository) DeleteOne(userID int64, pollID, optionID int) error {
	_, err := r.db.Model((*models.Vote)(nil)).
		Where("user_id = ?", userID).
		Where("poll_id = ?", pollID).
		Where("option_id = ?", optionID).
		Delete()

	return err
}

func (r *voteRepository) DeleteAllForPoll(userID int64, pollID int) error {
	_, err := r.db.Model((*models.Vote)(nil)).
		Where("user_id = ?", userID).
		Where("poll_id = ?", pollID).
		Delete()

	return err
}

func (r *voteRepository) GetManyByUserAndPoll(userID int64, pollID int) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.Model(&votes).
		Where("user_id = ?", userID).
		Where("poll_id = ?", pollID).
		OrderExpr("option_id ASC").
		Select()

	return votes, err
}

func (r *voteRepository) Tally(pollID int) ([]models.OptionCount, error) {
	rows := make([]models.OptionCount, 0)

	err := r.db.Model((*models.Option)(nil)).
		ColumnExpr("option.id AS option_id").
		ColumnExpr("option.option_text AS text").
		ColumnExpr("count(vote.vote_id) AS count").
		Join("LEFT JOIN votes AS vote ON vote.option_id = option.id").
		Where("option.poll_id = ?", pollID).
		GroupExpr("option.id, option.option_text").
		OrderExpr("option.id ASC").
		Select(&rows)

	return rows, err
}
