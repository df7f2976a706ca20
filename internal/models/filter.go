package models

// CalendarFilter is a togglable event category. Events reference a filter
// through CalendarEvent.CalendarID; an event with no CalendarID is always
// visible.
type CalendarFilter struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Checked bool   `json:"checked"`
}

// StarterFilters returns the fixed seed set for a new session: the primary
// calendars and the "other calendars" group, in display order.
func StarterFilters() ([]CalendarFilter, []CalendarFilter) {
	primary := []CalendarFilter{
		{ID: "1", Name: "Personnel", Color: ColorBlue, Checked: true},
		{ID: "2", Name: "Travail", Color: ColorGreen, Checked: true},
		{ID: "3", Name: "Famille", Color: ColorPurple, Checked: true},
		{ID: "4", Name: "Jours fériés", Color: ColorRed, Checked: true},
	}
	other := []CalendarFilter{
		{ID: "5", Name: "Anniversaires", Color: ColorYellow, Checked: false},
		{ID: "6", Name: "Rappels", Color: ColorOrange, Checked: false},
		{ID: "7", Name: "Tâches", Color: ColorCyan, Checked: false},
	}
	return primary, other
}
