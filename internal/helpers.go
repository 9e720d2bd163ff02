package internal

import "time"

const formatEndDate = "2006-01-02 15:04"

func FormatEndDate(date time.Time) string {
	return date.Format(formatEndDate)
}

func ParseEndDate(value string) (time.Time, error) {
	return time.ParseInLocation(formatEndDate, value, time.Local)
}
