package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CareLinkServices/care-scheduler/internal/audit"
	"github.com/CareLinkServices/care-scheduler/internal/domain/schedule"
	"github.com/CareLinkServices/care-scheduler/internal/models"
)

// ======================================================
// USE CASE — CREATE
// ======================================================

type CreateAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateAppointment(
	repo schedule.Repository,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: auditDispatcher,
		loc:   loc,
	}
}

// Execute validates the submitted form fields, assigns a fresh UUID and
// persists the appointment. The write must succeed before the caller sees
// the new record; validation failures mutate nothing.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	userID uint,
	in schedule.CreateInput,
) (*models.Appointment, error) {

	start, end, err := schedule.ValidateCreate(in, uc.loc)
	if err != nil {
		return nil, err
	}

	ap := schedule.NewAppointment(uuid.NewString(), in, start, end)
	ap.CreatedBy = userID

	if err := uc.repo.SaveAppointment(ctx, &ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return &ap, nil
}
