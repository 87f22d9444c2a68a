package schedule

import (
	"sort"
	"time"

	"github.com/CareLinkServices/care-scheduler/internal/models"
)

// ===============================
// View modes
// ===============================

type View string

const (
	ViewWeek  View = "week"
	ViewMonth View = "month"
	ViewAll   View = "all"
)

func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewWeek, ViewMonth, ViewAll:
		return View(s), true
	}
	return "", false
}

// ===============================
// Window bounds
// ===============================

// WeekBounds returns the ISO week containing ref: Monday 00:00:00.000
// through Sunday 23:59:59.999. Sunday counts as day 7, not day 0.
func WeekBounds(ref time.Time) (time.Time, time.Time) {
	dayOfWeek := int(ref.Weekday())
	if dayOfWeek == 0 {
		dayOfWeek = 7
	}

	monday := time.Date(
		ref.Year(), ref.Month(), ref.Day()-(dayOfWeek-1),
		0, 0, 0, 0,
		ref.Location(),
	)
	sunday := time.Date(
		monday.Year(), monday.Month(), monday.Day()+6,
		23, 59, 59, int(999*time.Millisecond),
		monday.Location(),
	)

	return monday, sunday
}

// MonthBounds returns the first and last instant of ref's calendar month.
func MonthBounds(ref time.Time) (time.Time, time.Time) {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, 0).Add(-time.Millisecond)
	return first, last
}

// Shift moves the reference date by one navigation step for the view:
// a full week for week view, a true calendar month for month view with the
// day-of-month clamped to the target month's length (31 Jan -> 28/29 Feb).
// The original tool shifted months by a fixed 28 days, which drifts.
func Shift(view View, ref time.Time, steps int) time.Time {
	switch view {
	case ViewWeek:
		return ref.AddDate(0, 0, 7*steps)
	case ViewMonth:
		return addMonthsClamped(ref, steps)
	}
	return ref
}

func addMonthsClamped(ref time.Time, months int) time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())
	target := first.AddDate(0, months, 0)

	day := ref.Day()
	if last := daysIn(target.Year(), target.Month()); day > last {
		day = last
	}

	return time.Date(target.Year(), target.Month(), day, ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ===============================
// Window filter
// ===============================

// Windowed restricts appointments to the view window around ref and sorts
// the result ascending by start instant. ViewAll applies no restriction.
func Windowed(apps []models.Appointment, view View, ref time.Time) []models.Appointment {
	var filtered []models.Appointment

	switch view {
	case ViewWeek:
		lo, hi := WeekBounds(ref)
		for _, a := range apps {
			if !a.StartTime.Before(lo) && !a.StartTime.After(hi) {
				filtered = append(filtered, a)
			}
		}
	case ViewMonth:
		for _, a := range apps {
			if a.StartTime.Year() == ref.Year() && a.StartTime.Month() == ref.Month() {
				filtered = append(filtered, a)
			}
		}
	default:
		filtered = append(filtered, apps...)
	}

	SortByStart(filtered)
	return filtered
}

// SortByStart is the single ordering contract for every filtered result
// set. The original tool sorted one filter path and left the other in
// insertion order; the asymmetry looked unintentional, so both paths sort
// here.
func SortByStart(apps []models.Appointment) {
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].StartTime.Before(apps[j].StartTime)
	})
}

// SameDay reports whether an appointment starts on the given calendar day.
func SameDay(a models.Appointment, day time.Time) bool {
	y1, m1, d1 := a.StartTime.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
