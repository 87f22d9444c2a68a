package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CareLinkServices/care-scheduler/internal/httperr"
	"github.com/CareLinkServices/care-scheduler/internal/models"
)

type fakeStore struct {
	appointments []models.Appointment
	saved        []models.Appointment
	listErr      error
	saveErr      error
}

func (s *fakeStore) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.appointments, nil
}

func (s *fakeStore) SaveAppointment(ctx context.Context, ap *models.Appointment) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, *ap)
	return nil
}

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return map[int]string{1: "id-1", 2: "id-2", 3: "id-3"}[n]
	}
}

func TestPlannerLoadFailureLeavesSetEmpty(t *testing.T) {
	store := &fakeStore{listErr: errors.New("store down")}
	p := NewPlanner(store, sequentialIDs(), time.UTC)

	err := p.Load(context.Background())
	require.Error(t, err)
	assert.Empty(t, p.Visible())
}

func TestPlannerAddValidatesBeforePersisting(t *testing.T) {
	store := &fakeStore{}
	p := NewPlanner(store, sequentialIDs(), time.UTC)

	_, err := p.Add(context.Background(), CreateInput{
		Date:     "31.02.2025",
		Title:    "Unmöglich",
		Start:    "09:00",
		End:      "10:00",
		Location: "Berlin",
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, CodeInvalidDate))
	assert.Empty(t, store.saved, "invalid input must not reach the store")
}

func TestPlannerAddAppendsOnlyAfterConfirmedWrite(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("insert failed")}
	p := NewPlanner(store, sequentialIDs(), time.UTC)
	p.SetView(ViewAll)

	_, err := p.Add(context.Background(), CreateInput{
		Date:     "10.06.2025",
		Title:    "Kontrolle",
		Start:    "09:00",
		End:      "10:00",
		Location: "Praxis",
	})

	require.Error(t, err)
	assert.Empty(t, p.Visible(), "failed write must not update session state")

	store.saveErr = nil
	ap, err := p.Add(context.Background(), CreateInput{
		Date:     "10.06.2025",
		Title:    "Kontrolle",
		Start:    "09:00",
		End:      "10:00",
		Location: "Praxis",
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", ap.ID)
	assert.Len(t, p.Visible(), 1)
}

func TestPlannerNavigate(t *testing.T) {
	p := NewPlanner(&fakeStore{}, sequentialIDs(), time.UTC)
	p.SetRef(time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC))

	p.SetView(ViewWeek)
	p.Navigate(1)
	assert.Equal(t, 18, p.Ref().Day())

	p.SetView(ViewMonth)
	p.Navigate(1)
	assert.Equal(t, time.July, p.Ref().Month())
	assert.Equal(t, 18, p.Ref().Day())
}

// End-to-end: two appointments land in the current week, the view
// switches to a month that contains only one of them, and the filtered
// set comes back as exactly that one, ordered by start.
func TestPlannerWeekToMonthScenario(t *testing.T) {
	ref := time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC) // Monday
	sameWeekJune := models.Appointment{
		ID:        "june",
		Title:     "Juni-Termin",
		StartTime: time.Date(2025, time.June, 30, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, time.June, 30, 10, 0, 0, 0, time.UTC),
	}
	sameWeekJuly := models.Appointment{
		ID:        "july",
		Title:     "Juli-Termin",
		StartTime: time.Date(2025, time.July, 2, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, time.July, 2, 10, 0, 0, 0, time.UTC),
	}

	store := &fakeStore{appointments: []models.Appointment{sameWeekJuly, sameWeekJune}}
	p := NewPlanner(store, sequentialIDs(), time.UTC)
	p.SetRef(ref)

	require.NoError(t, p.Load(context.Background()))

	p.SetView(ViewWeek)
	week := p.Visible()
	require.Len(t, week, 2, "both appointments overlap the reference week")
	assert.Equal(t, "june", week[0].ID, "sorted ascending by start")

	p.SetView(ViewMonth)
	month := p.Visible()
	require.Len(t, month, 1)
	assert.Equal(t, "june", month[0].ID)
}

func TestPlannerSearchComposesWithMonthWindow(t *testing.T) {
	june := models.Appointment{
		ID:        "1",
		Title:     "Physiotherapie",
		StartTime: time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC),
	}
	july := models.Appointment{
		ID:        "2",
		Title:     "Physiotherapie",
		StartTime: time.Date(2025, time.July, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, time.July, 10, 10, 0, 0, 0, time.UTC),
	}

	store := &fakeStore{appointments: []models.Appointment{june, july}}
	p := NewPlanner(store, sequentialIDs(), time.UTC)
	require.NoError(t, p.Load(context.Background()))

	p.SetRef(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))
	p.SetFilter(Filter{Term: "physio"})

	p.SetView(ViewMonth)
	require.Len(t, p.Search(), 1)

	p.SetView(ViewAll)
	require.Len(t, p.Search(), 2)
}
