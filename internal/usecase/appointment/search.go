package appointment

import (
	"context"
	"time"

	"github.com/CareLinkServices/care-scheduler/internal/domain/schedule"
	"github.com/CareLinkServices/care-scheduler/internal/dto"
	"github.com/CareLinkServices/care-scheduler/internal/models"
)

// ======================================================
// USE CASE — ATTRIBUTE SEARCH
// ======================================================

type SearchAppointments struct {
	repo schedule.Repository
}

func NewSearchAppointments(repo schedule.Repository) *SearchAppointments {
	return &SearchAppointments{repo: repo}
}

// Execute applies the composable attribute filter. When the month view is
// active the filter composes with the month window; the week and all views
// search the whole collection, matching the original filter panel.
func (uc *SearchAppointments) Execute(
	ctx context.Context,
	view schedule.View,
	ref time.Time,
	filter schedule.Filter,
) ([]dto.AppointmentListDTO, error) {

	var (
		apps []models.Appointment
		err  error
	)

	if view == schedule.ViewMonth {
		lo, hi := schedule.MonthBounds(ref)
		apps, err = uc.repo.ListAppointmentsForPeriod(ctx, lo, hi)
	} else {
		apps, err = uc.repo.ListAppointments(ctx)
	}
	if err != nil {
		return nil, err
	}

	return toListDTOs(filter.Apply(apps)), nil
}
