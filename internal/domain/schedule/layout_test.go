package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CareLinkServices/care-scheduler/internal/models"
)

func dayAppointment(id string, day time.Time, startHour, startMin, endHour, endMin int) models.Appointment {
	return models.Appointment{
		ID:        id,
		Title:     "Termin " + id,
		StartTime: time.Date(day.Year(), day.Month(), day.Day(), startHour, startMin, 0, 0, day.Location()),
		EndTime:   time.Date(day.Year(), day.Month(), day.Day(), endHour, endMin, 0, 0, day.Location()),
	}
}

func TestDayLayoutShortAppointment(t *testing.T) {
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	apps := []models.Appointment{dayAppointment("1", day, 9, 0, 9, 30)}

	blocks := DayLayout(apps, day, DefaultGrid())
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.Equal(t, 900.0, b.Top)
	assert.Equal(t, 50.0, b.Height)
	assert.True(t, b.Condensed)
	assert.Equal(t, 60.0, b.DisplayHeight()) // render floor
}

func TestDayLayoutLongAppointment(t *testing.T) {
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	apps := []models.Appointment{dayAppointment("1", day, 9, 0, 11, 0)}

	blocks := DayLayout(apps, day, DefaultGrid())
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.Equal(t, 900.0, b.Top)
	assert.Equal(t, 200.0, b.Height)
	assert.False(t, b.Condensed)
	assert.Equal(t, 200.0, b.DisplayHeight())
}

func TestDayLayoutStartHourOffset(t *testing.T) {
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	apps := []models.Appointment{dayAppointment("1", day, 9, 15, 10, 0)}

	blocks := DayLayout(apps, day, GridConfig{SlotHeight: 80, StartHour: 7})
	require.Len(t, blocks, 1)

	assert.InDelta(t, (9.25-7)*80, blocks[0].Top, 1e-9)
	assert.InDelta(t, 0.75*80, blocks[0].Height, 1e-9)
}

func TestDayLayoutSkipsOtherDays(t *testing.T) {
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	other := day.AddDate(0, 0, 1)

	apps := []models.Appointment{
		dayAppointment("1", day, 9, 0, 10, 0),
		dayAppointment("2", other, 9, 0, 10, 0),
	}

	blocks := DayLayout(apps, day, DefaultGrid())
	require.Len(t, blocks, 1)
	assert.Equal(t, "1", blocks[0].Appointment.ID)
}

func TestColorIndexNumericIDs(t *testing.T) {
	assert.Equal(t, 0, ColorIndex("4", 4))
	assert.Equal(t, 1, ColorIndex("5", 4))
	assert.Equal(t, 3, ColorIndex("3", 4))
	assert.Equal(t, 0, ColorIndex("0", 4))
}

func TestColorIndexNonNumericIDsAreStable(t *testing.T) {
	id := "5f0c2f5e-9d5a-4c1e-8b54-1d2f3a4b5c6d"

	first := ColorIndex(id, len(ColorPalette))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ColorIndex(id, len(ColorPalette)))
	}
	assert.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, len(ColorPalette))
}

func TestAssignColumnsSpreadsOverlaps(t *testing.T) {
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	apps := []models.Appointment{
		dayAppointment("1", day, 9, 0, 11, 0),
		dayAppointment("2", day, 9, 30, 10, 30), // overlaps 1
		dayAppointment("3", day, 11, 0, 12, 0),  // starts when 1 ends
	}

	blocks := AssignColumns(DayLayout(apps, day, DefaultGrid()))
	require.Len(t, blocks, 3)

	assert.Equal(t, 0, blocks[0].Column)
	assert.Equal(t, 1, blocks[1].Column)
	// first column is free again, no third column needed
	assert.Equal(t, 0, blocks[2].Column)
}

func TestDayLayoutBaseContractLeavesColumnZero(t *testing.T) {
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	apps := []models.Appointment{
		dayAppointment("1", day, 9, 0, 11, 0),
		dayAppointment("2", day, 9, 30, 10, 30),
	}

	blocks := DayLayout(apps, day, DefaultGrid())
	for _, b := range blocks {
		assert.Equal(t, 0, b.Column)
	}
}
