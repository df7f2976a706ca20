package models

const (
	ViewMonth  = "month"
	ViewWeek   = "week"
	ViewDay    = "day"
	ViewAgenda = "agenda"
)

var viewValues = []string{ViewMonth, ViewWeek, ViewDay, ViewAgenda}

func ValidView(value string) bool {
	for _, candidate := range viewValues {
		if value == candidate {
			return true
		}
	}
	return false
}
