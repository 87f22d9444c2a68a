package appointment

import (
	"context"
	"time"

	"github.com/CareLinkServices/care-scheduler/internal/domain/schedule"
	"github.com/CareLinkServices/care-scheduler/internal/dto"
	"github.com/CareLinkServices/care-scheduler/internal/models"
)

// ======================================================
// USE CASE — WINDOW LISTING
// ======================================================

type ListWindow struct {
	repo schedule.Repository
}

func NewListWindow(repo schedule.Repository) *ListWindow {
	return &ListWindow{repo: repo}
}

// Execute returns the appointments inside the view window anchored at the
// reference date, sorted ascending by start instant, together with the
// computed bounds.
func (uc *ListWindow) Execute(
	ctx context.Context,
	view schedule.View,
	ref time.Time,
) (*dto.WindowDTO, error) {

	var (
		apps []models.Appointment
		err  error
		out  = dto.WindowDTO{View: string(view)}
	)

	switch view {
	case schedule.ViewWeek:
		lo, hi := schedule.WeekBounds(ref)
		out.From, out.To = &lo, &hi
		apps, err = uc.repo.ListAppointmentsForPeriod(ctx, lo, hi)
	case schedule.ViewMonth:
		lo, hi := schedule.MonthBounds(ref)
		out.From, out.To = &lo, &hi
		apps, err = uc.repo.ListAppointmentsForPeriod(ctx, lo, hi)
	default:
		apps, err = uc.repo.ListAppointments(ctx)
	}
	if err != nil {
		return nil, err
	}

	schedule.SortByStart(apps)
	out.Appointments = toListDTOs(apps)

	return &out, nil
}

func toListDTOs(apps []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, dto.AppointmentListDTO{
			ID:       ap.ID,
			Title:    ap.Title,
			Start:    ap.StartTime,
			End:      ap.EndTime,
			Location: ap.Location,
			Notes:    ap.Notes,
			Patient:  ap.Patient,
			Category: ap.Category,
		})
	}
	return out
}
