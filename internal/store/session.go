package store

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/vchaumont/agenda/internal/models"
	"github.com/vchaumont/agenda/internal/security"
	"github.com/vchaumont/agenda/internal/services"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrFilterNotFound = errors.New("filter not found")
)

const idSuffixLength = 4

// Session owns every piece of mutable calendar state for one running
// instance: the event list, both filter groups, the reference date, the
// active view, the timezone label and the sidebar flag. Nothing is
// persisted; the state lives and dies with the process.
//
// Reads hand out copies, never references into the internal slices, so the
// pure calendar functions and the handlers can work on snapshots without a
// lock.
type Session struct {
	mu sync.Mutex

	now func() time.Time

	currentDate time.Time
	view        string
	timeZone    string
	sidebarOpen bool

	events         []models.CalendarEvent
	primaryFilters []models.CalendarFilter
	otherFilters   []models.CalendarFilter
}

// Snapshot is a point-in-time copy of the session state, safe to read and
// render without holding the session lock.
type Snapshot struct {
	CurrentDate time.Time
	View        string
	TimeZone    string
	SidebarOpen bool

	Events         []models.CalendarEvent
	PrimaryFilters []models.CalendarFilter
	OtherFilters   []models.CalendarFilter
}

// NewSession builds a session seeded with the starter filter set, the month
// view and the given timezone label. now is the clock used for "today" and
// for generated event identifiers; it must not be nil.
func NewSession(now func() time.Time, timeZone string) *Session {
	primary, other := models.StarterFilters()
	return &Session{
		now:            now,
		currentDate:    now(),
		view:           models.ViewMonth,
		timeZone:       timeZone,
		sidebarOpen:    true,
		events:         []models.CalendarEvent{},
		primaryFilters: primary,
		otherFilters:   other,
	}
}

func (session *Session) Snapshot() Snapshot {
	session.mu.Lock()
	defer session.mu.Unlock()

	return Snapshot{
		CurrentDate:    session.currentDate,
		View:           session.view,
		TimeZone:       session.timeZone,
		SidebarOpen:    session.sidebarOpen,
		Events:         append([]models.CalendarEvent{}, session.events...),
		PrimaryFilters: append([]models.CalendarFilter{}, session.primaryFilters...),
		OtherFilters:   append([]models.CalendarFilter{}, session.otherFilters...),
	}
}

// AddEvent stores event under a freshly generated identifier and returns the
// stored copy. Identifiers are time-based and unique within the session.
func (session *Session) AddEvent(event models.CalendarEvent) models.CalendarEvent {
	session.mu.Lock()
	defer session.mu.Unlock()

	event.ID = session.nextEventID()
	session.events = append(session.events, event)
	return event
}

// UpdateEvent replaces the stored event with the same identifier in place,
// keeping its list position.
func (session *Session) UpdateEvent(event models.CalendarEvent) (models.CalendarEvent, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	for index := range session.events {
		if session.events[index].ID == event.ID {
			session.events[index] = event
			return event, nil
		}
	}
	return models.CalendarEvent{}, ErrEventNotFound
}

func (session *Session) RemoveEvent(id string) error {
	session.mu.Lock()
	defer session.mu.Unlock()

	for index := range session.events {
		if session.events[index].ID == id {
			session.events = append(session.events[:index], session.events[index+1:]...)
			return nil
		}
	}
	return ErrEventNotFound
}

// ToggleFilter flips the checked state of the filter with the given
// identifier, resolving the primary group before the "other" group, and
// returns the updated filter.
func (session *Session) ToggleFilter(id string) (models.CalendarFilter, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	for _, group := range [][]models.CalendarFilter{session.primaryFilters, session.otherFilters} {
		for index := range group {
			if group[index].ID == id {
				group[index].Checked = !group[index].Checked
				return group[index], nil
			}
		}
	}
	return models.CalendarFilter{}, ErrFilterNotFound
}

func (session *Session) SetView(view string) error {
	if !models.ValidView(view) {
		return errors.New("unknown view " + view)
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.view = view
	return nil
}

func (session *Session) SetDate(date time.Time) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.currentDate = date
}

// NavigatePrevious steps the reference date one period back for the active
// view and returns the new date.
func (session *Session) NavigatePrevious() time.Time {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.currentDate = services.PreviousPeriod(session.currentDate, session.view)
	return session.currentDate
}

// NavigateNext steps the reference date one period forward for the active
// view and returns the new date.
func (session *Session) NavigateNext() time.Time {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.currentDate = services.NextPeriod(session.currentDate, session.view)
	return session.currentDate
}

// NavigateToday resets the reference date to the current moment regardless
// of the active view.
func (session *Session) NavigateToday() time.Time {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.currentDate = session.now()
	return session.currentDate
}

// SetTimeZone stores the timezone label. The label is display state only;
// event times are never converted.
func (session *Session) SetTimeZone(label string) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.timeZone = label
}

func (session *Session) ToggleSidebar() bool {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.sidebarOpen = !session.sidebarOpen
	return session.sidebarOpen
}

// nextEventID derives an identifier from the session clock. Two saves inside
// the same millisecond collide, so a random suffix disambiguates until the
// identifier is unique.
func (session *Session) nextEventID() string {
	id := strconv.FormatInt(session.now().UnixMilli(), 10)
	for session.hasEventLocked(id) {
		suffix, err := security.IDSuffix(idSuffixLength)
		if err != nil {
			suffix = strconv.Itoa(len(session.events))
		}
		id += "-" + suffix
	}
	return id
}

func (session *Session) hasEventLocked(id string) bool {
	for _, event := range session.events {
		if event.ID == id {
			return true
		}
	}
	return false
}
