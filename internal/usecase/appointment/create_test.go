package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CareLinkServices/care-scheduler/internal/domain/schedule"
	"github.com/CareLinkServices/care-scheduler/internal/httperr"
	"github.com/CareLinkServices/care-scheduler/internal/models"
)

type stubRepo struct {
	appointments []models.Appointment
	saved        []models.Appointment
	saveErr      error
}

func (r *stubRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return r.appointments, nil
}

func (r *stubRepo) SaveAppointment(ctx context.Context, ap *models.Appointment) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, *ap)
	return nil
}

func (r *stubRepo) ListAppointmentsForPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if !ap.StartTime.Before(start) && !ap.StartTime.After(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func validInput() schedule.CreateInput {
	return schedule.CreateInput{
		Date:     "10.06.2025",
		Title:    "Hausbesuch",
		Start:    "09:00",
		End:      "10:30",
		Location: "Musterstraße 1, Berlin",
		Patient:  "Erika Mustermann",
		Category: "Pflege",
	}
}

func TestCreateAppointmentPersistsValidInput(t *testing.T) {
	repo := &stubRepo{}
	uc := NewCreateAppointment(repo, nil, time.UTC)

	ap, err := uc.Execute(context.Background(), 7, validInput())
	require.NoError(t, err)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, repo.saved[0].ID, ap.ID)
	assert.NotEmpty(t, ap.ID)
	assert.Equal(t, uint(7), ap.CreatedBy)
	assert.Equal(t, time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC), ap.StartTime)
	assert.Equal(t, time.Date(2025, time.June, 10, 10, 30, 0, 0, time.UTC), ap.EndTime)
}

func TestCreateAppointmentRejectsInvalidForm(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*schedule.CreateInput)
		code   string
	}{
		{
			name:   "missing title",
			mutate: func(in *schedule.CreateInput) { in.Title = "" },
			code:   schedule.CodeMissingField,
		},
		{
			name:   "impossible date",
			mutate: func(in *schedule.CreateInput) { in.Date = "31.02.2025" },
			code:   schedule.CodeInvalidDate,
		},
		{
			name:   "end before start",
			mutate: func(in *schedule.CreateInput) { in.End = "08:00" },
			code:   schedule.CodeEndBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{}
			uc := NewCreateAppointment(repo, nil, time.UTC)

			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), 7, in)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tt.code))
			assert.Empty(t, repo.saved)
		})
	}
}

func TestCreateAppointmentSurfacesStoreFailure(t *testing.T) {
	repo := &stubRepo{saveErr: errors.New("connection reset")}
	uc := NewCreateAppointment(repo, nil, time.UTC)

	_, err := uc.Execute(context.Background(), 7, validInput())
	require.Error(t, err)
	assert.Empty(t, repo.saved)
}

func TestSearchAppointmentsComposesMonthWindow(t *testing.T) {
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
	repo := &stubRepo{appointments: []models.Appointment{july, june}}
	uc := NewSearchAppointments(repo)

	ref := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	filter := schedule.Filter{Term: "physio"}

	monthHits, err := uc.Execute(context.Background(), schedule.ViewMonth, ref, filter)
	require.NoError(t, err)
	require.Len(t, monthHits, 1)
	assert.Equal(t, "1", monthHits[0].ID)

	allHits, err := uc.Execute(context.Background(), schedule.ViewAll, ref, filter)
	require.NoError(t, err)
	require.Len(t, allHits, 2)
	assert.Equal(t, "1", allHits[0].ID, "results sorted ascending by start")
}
