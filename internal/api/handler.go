package api

import (
	"errors"
	"time"

	"github.com/vchaumont/agenda/internal/i18n"
	"github.com/vchaumont/agenda/internal/store"
)

// Handler serves the calendar API. It owns no state of its own: every
// request takes a snapshot from the session store, runs the pure calendar
// functions over it and returns freshly built view models.
type Handler struct {
	session   *store.Session
	i18n      *i18n.Manager
	location  *time.Location
	weekStart time.Weekday
	now       func() time.Time
}

func NewHandler(session *store.Session, i18nManager *i18n.Manager, location *time.Location, weekStart time.Weekday, now func() time.Time) (*Handler, error) {
	if session == nil {
		return nil, errors.New("session store is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if location == nil {
		location = time.Local
	}
	if now == nil {
		now = time.Now
	}

	return &Handler{
		session:   session,
		i18n:      i18nManager,
		location:  location,
		weekStart: weekStart,
		now:       now,
	}, nil
}
