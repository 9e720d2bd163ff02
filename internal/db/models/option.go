package models

type Option struct {
	ID     int    `json:"id" pg:",pk"`
	PollID int    `json:"poll_id" pg:",notnull"`
	Text   string `json:"option_text" pg:"option_text,notnull"`
}

// OptionCount is one row of a poll tally. Options nobody voted for are
// included with Count 0.
type OptionCount struct {
	OptionID int    `json:"option_id"`
	Text     string `json:"option_text"`
	Count    int    `json:"count"`
}
