package models

// EphemeralResultMessage is a soft pointer to a private results message
// previously sent to a user. It is an index for recovering a refreshable
// view, not authoritative vote data.
type EphemeralResultMessage struct {
	ID        int   `json:"id" pg:",pk"`
	UserID    int64 `json:"user_id" pg:",notnull"`
	PollID    int   `json:"poll_id" pg:",notnull"`
	MessageID int64 `json:"message_id" pg:",notnull"`
}
