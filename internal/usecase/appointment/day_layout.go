package appointment

import (
	"context"
	"time"

	"github.com/CareLinkServices/care-scheduler/internal/domain/schedule"
)

// ======================================================
// USE CASE — DAY-GRID LAYOUT
// ======================================================

type DayLayout struct {
	repo schedule.Repository
	grid schedule.GridConfig
}

func NewDayLayout(repo schedule.Repository, grid schedule.GridConfig) *DayLayout {
	return &DayLayout{repo: repo, grid: grid}
}

// Execute computes the vertical geometry for every appointment of the
// given day. With resolveOverlap set, concurrent blocks are spread across
// columns; the base contract leaves them stacked like the original grid.
func (uc *DayLayout) Execute(
	ctx context.Context,
	day time.Time,
	resolveOverlap bool,
) ([]schedule.Block, error) {

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)

	apps, err := uc.repo.ListAppointmentsForPeriod(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	blocks := schedule.DayLayout(apps, dayStart, uc.grid)
	if resolveOverlap {
		blocks = schedule.AssignColumns(blocks)
	}

	return blocks, nil
}
