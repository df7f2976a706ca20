package services

import "time"

// NormalizeDragRange orders a drag gesture's anchor day and release day into
// an inclusive ascending day range, so dragging backwards across the month
// grid produces the same range as dragging forwards. The creation flow owns
// the time-of-day defaults; only day ordering is decided here.
func NormalizeDragRange(anchor time.Time, release time.Time) (time.Time, time.Time) {
	start := DayStart(anchor)
	end := DayStart(release)
	if end.Before(start) {
		start, end = end, start
	}
	return start, end
}
