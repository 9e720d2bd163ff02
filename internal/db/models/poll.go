package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type PollKind string

const (
	PollKindSingle PollKind = "single"
	PollKindMulti  PollKind = "multi"
)

func (k PollKind) String() string {
	return string(k)
}

func (k PollKind) CapitalizedString() string {
	return cases.Title(language.English).String(k.String())
}

type Poll struct {
	ID       int       `json:"id" pg:",pk"`
	Question string    `json:"question" pg:",notnull"`
	EndDate  time.Time `json:"end_date" pg:",notnull"`
	Kind     PollKind  `json:"poll_type" pg:"poll_type,notnull"`
	Options  []Option  `json:"options" pg:"rel:has-many"`
}

// Closed reports whether the poll no longer accepts votes. A poll is open
// up to and including its end date; only now > end date closes it.
func (p *Poll) Closed(now time.Time) bool {
	return now.After(p.EndDate)
}
