package models

type Vote struct {
	ID       int   `json:"vote_id" pg:"vote_id,pk"`
	UserID   int64 `json:"user_id" pg:",notnull"`
	PollID   int   `json:"poll_id" pg:",notnull"`
	OptionID int   `json:"option_id" pg:",notnull"`
}
