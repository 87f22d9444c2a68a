package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CareLinkServices/care-scheduler/internal/httperr"
)

func TestParseDateValid(t *testing.T) {
	cases := []struct {
		in    string
		year  int
		month time.Month
		day   int
	}{
		{"01.01.2024", 2024, time.January, 1},
		{"29.02.2024", 2024, time.February, 29}, // leap year
		{"31.12.2025", 2025, time.December, 31},
		{"15.06.2025", 2025, time.June, 15},
	}

	for _, tc := range cases {
		d, err := ParseDate(tc.in, time.UTC)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.year, d.Year(), tc.in)
		assert.Equal(t, tc.month, d.Month(), tc.in)
		assert.Equal(t, tc.day, d.Day(), tc.in)
	}
}

func TestParseDateRejectsNonExistentDates(t *testing.T) {
	cases := []string{
		"31.02.2024", // February never has 31 days
		"29.02.2023", // not a leap year
		"31.04.2025", // April has 30 days
		"00.01.2024",
		"01.13.2024",
		"2024-01-01",
		"1.1.24",
		"01.01",
		"",
	}

	for _, in := range cases {
		_, err := ParseDate(in, time.UTC)
		require.Error(t, err, in)
		assert.True(t, httperr.IsBusiness(err, CodeInvalidDate), in)
	}
}

func TestParseClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "12:00", "23:59"}
	for _, in := range valid {
		_, _, err := ParseClock(in)
		assert.NoError(t, err, in)
	}

	invalid := []string{"9:30", "24:00", "12:60", "12", "12:5", "ab:cd", ""}
	for _, in := range invalid {
		_, _, err := ParseClock(in)
		require.Error(t, err, in)
		assert.True(t, httperr.IsBusiness(err, CodeInvalidTime), in)
	}
}

func TestValidateCreateMissingFieldsAreDistinct(t *testing.T) {
	in := CreateInput{
		Date:  "01.06.2025",
		Title: "Physiotherapie",
		Start: "09:00",
		End:   "10:00",
		// Location missing
	}

	_, _, err := ValidateCreate(in, time.UTC)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, CodeMissingField))
	assert.False(t, httperr.IsBusiness(err, CodeInvalidDate))
}

func TestValidateCreateOrdering(t *testing.T) {
	base := CreateInput{
		Date:     "01.06.2025",
		Title:    "Hausbesuch",
		Location: "Berlin",
	}

	cases := []struct {
		start, end string
		ok         bool
	}{
		{"09:00", "10:00", true},
		{"09:00", "09:01", true},
		{"09:00", "09:00", false}, // equal end fails
		{"10:00", "09:00", false},
	}

	for _, tc := range cases {
		in := base
		in.Start, in.End = tc.start, tc.end

		start, end, err := ValidateCreate(in, time.UTC)
		if tc.ok {
			require.NoError(t, err, tc.start+"-"+tc.end)
			assert.True(t, start.Before(end))
		} else {
			require.Error(t, err, tc.start+"-"+tc.end)
			assert.True(t, httperr.IsBusiness(err, CodeEndBeforeStart))
		}
	}
}

func TestValidateCreateCombinesDateAndTime(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	start, end, err := ValidateCreate(CreateInput{
		Date:     "24.12.2025",
		Title:    "Besuch",
		Start:    "14:30",
		End:      "16:00",
		Location: "Station 3",
	}, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.December, 24, 14, 30, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, time.December, 24, 16, 0, 0, 0, loc), end)
}
