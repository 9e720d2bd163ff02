package models

import "errors"

var (
	ErrPollNotFound     = errors.New("poll not found")
	ErrPollClosed       = errors.New("poll is closed")
	ErrUnknownOption    = errors.New("option does not belong to poll")
	ErrNotEnoughOptions = errors.New("at least two unique non-blank options are required")
	ErrInvalidEndDate   = errors.New("end date must use the format YYYY-MM-DD HH:MM")
	ErrEndDateInPast    = errors.New("end date cannot be in the past")
)
