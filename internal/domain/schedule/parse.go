package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/CareLinkServices/care-scheduler/internal/httperr"
	"github.com/CareLinkServices/care-scheduler/internal/models"
)

// ===============================
// Validation error codes
// ===============================

const (
	CodeMissingField   = "missing_required_field"
	CodeInvalidDate    = "invalid_date"
	CodeInvalidTime    = "invalid_time"
	CodeEndBeforeStart = "end_before_start"
)

// hour 00-23, minute 00-59, both two digits
var clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ParseDate parses a day-first dotted date (DD.MM.YYYY). Calendar-invalid
// input such as 31.02.2024 is rejected by re-deriving the components from
// the constructed date and comparing them against the input; time.Date
// would otherwise normalise silently.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return time.Time{}, httperr.ErrBusiness(CodeInvalidDate)
	}

	day, errD := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	year, errY := strconv.Atoi(parts[2])
	if errD != nil || errM != nil || errY != nil || len(parts[2]) != 4 {
		return time.Time{}, httperr.ErrBusiness(CodeInvalidDate)
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, httperr.ErrBusiness(CodeInvalidDate)
	}

	return d, nil
}

// ParseClock validates a strict 24h HH:mm string and returns its components.
// Single-digit hours (9:30) and out-of-range values (24:00) fail.
func ParseClock(s string) (hour, minute int, err error) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, httperr.ErrBusiness(CodeInvalidTime)
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, nil
}

// At combines a parsed date with a clock time into an absolute instant in
// the date's location.
func At(date time.Time, hour, minute int) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		hour, minute, 0, 0,
		date.Location(),
	)
}

// ===============================
// Create validation
// ===============================

type CreateInput struct {
	Date     string
	Title    string
	Start    string
	End      string
	Location string
	Notes    string
	Patient  string
	Category string
}

// ValidateCreate runs the full appointment-creation validation chain:
// required fields first (reported distinctly), then date and time formats,
// then the strict start-before-end ordering. The returned instants carry
// the given location.
func ValidateCreate(in CreateInput, loc *time.Location) (start, end time.Time, err error) {
	if in.Date == "" || in.Title == "" || in.Start == "" || in.End == "" || in.Location == "" {
		return time.Time{}, time.Time{}, httperr.ErrBusiness(CodeMissingField)
	}

	date, err := ParseDate(in.Date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	startHour, startMin, err := ParseClock(in.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endHour, endMin, err := ParseClock(in.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start = At(date, startHour, startMin)
	end = At(date, endHour, endMin)

	if !start.Before(end) {
		return time.Time{}, time.Time{}, httperr.ErrBusiness(CodeEndBeforeStart)
	}

	return start, end, nil
}

// NewAppointment builds the entity for a validated input.
func NewAppointment(id string, in CreateInput, start, end time.Time) models.Appointment {
	return models.Appointment{
		ID:        id,
		Title:     in.Title,
		Location:  in.Location,
		Notes:     in.Notes,
		Patient:   in.Patient,
		Category:  in.Category,
		StartTime: start,
		EndTime:   end,
	}
}
