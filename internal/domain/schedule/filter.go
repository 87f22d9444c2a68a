package schedule

import (
	"strings"
	"time"

	"github.com/CareLinkServices/care-scheduler/internal/models"
)

// Time-of-day buckets.
const (
	BucketMorning   = "morning"   // hour < 12
	BucketAfternoon = "afternoon" // hour >= 12
)

// Filter is the composable attribute predicate. Conditions are conjunctive
// and independent; a zero value matches everything.
type Filter struct {
	Term     string     // case-insensitive substring of title OR notes
	Category string     // exact match, empty = all
	Patient  string     // case-insensitive substring
	From     *time.Time // inclusive lower bound on start
	To       *time.Time // inclusive upper bound on start
	Bucket   string     // "", morning or afternoon
}

func (f Filter) Matches(a models.Appointment) bool {
	if f.Term != "" {
		term := strings.ToLower(f.Term)
		inTitle := strings.Contains(strings.ToLower(a.Title), term)
		inNotes := a.Notes != "" && strings.Contains(strings.ToLower(a.Notes), term)
		if !inTitle && !inNotes {
			return false
		}
	}

	if f.Category != "" && a.Category != f.Category {
		return false
	}

	if f.Patient != "" {
		if a.Patient == "" || !strings.Contains(strings.ToLower(a.Patient), strings.ToLower(f.Patient)) {
			return false
		}
	}

	if f.From != nil && a.StartTime.Before(*f.From) {
		return false
	}
	if f.To != nil && a.StartTime.After(*f.To) {
		return false
	}

	if f.Bucket != "" {
		hour := a.StartTime.Hour()
		switch f.Bucket {
		case BucketMorning:
			if hour >= 12 {
				return false
			}
		case BucketAfternoon:
			if hour < 12 {
				return false
			}
		}
	}

	return true
}

// Apply filters the slice and returns the matches sorted ascending by
// start instant (see SortByStart for the ordering decision).
func (f Filter) Apply(apps []models.Appointment) []models.Appointment {
	var out []models.Appointment
	for _, a := range apps {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	SortByStart(out)
	return out
}
