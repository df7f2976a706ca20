package api

import (
	"errors"
	"time"
)

const dayLayout = "2006-01-02"

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	parsed, err := time.ParseInLocation(dayLayout, raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// resolveReferenceDate picks the grid reference: an explicit date query wins,
// otherwise the session's current date.
func (handler *Handler) resolveReferenceDate(raw string) (time.Time, error) {
	if raw == "" {
		return handler.session.Snapshot().CurrentDate, nil
	}
	return parseDayParam(raw, handler.location)
}
