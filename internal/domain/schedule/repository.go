package schedule

import (
	"context"
	"time"

	"github.com/CareLinkServices/care-scheduler/internal/models"
)

// Repository is the persistence surface the use cases need on top of the
// engine's Store capability.
type Repository interface {
	Store

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
