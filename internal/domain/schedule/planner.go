package schedule

import (
	"context"
	"time"

	"github.com/CareLinkServices/care-scheduler/internal/models"
)

// Store is the data-access capability the engine depends on. It is passed
// in explicitly so tests can run against a fake instead of a process-wide
// handle.
type Store interface {
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	SaveAppointment(ctx context.Context, ap *models.Appointment) error
}

// IDGenerator produces appointment ids. Production wiring uses UUIDs.
type IDGenerator func() string

// Planner is the session-scoped scheduling engine: it owns the in-memory
// appointment set, the view state and the active filter. All methods run
// on a single goroutine; the engine carries no locking on purpose (one
// writer, one reader, same event loop).
type Planner struct {
	store Store
	newID IDGenerator
	loc   *time.Location

	appointments []models.Appointment

	view   View
	ref    time.Time
	filter Filter
}

func NewPlanner(store Store, newID IDGenerator, loc *time.Location) *Planner {
	return &Planner{
		store: store,
		newID: newID,
		loc:   loc,
		view:  ViewWeek,
		ref:   time.Now().In(loc),
	}
}

// Load replaces the in-memory set with the store's records. One shot, no
// retry: on failure the collection stays empty and the caller decides how
// to surface the error.
func (p *Planner) Load(ctx context.Context) error {
	apps, err := p.store.ListAppointments(ctx)
	if err != nil {
		return err
	}
	p.appointments = apps
	return nil
}

// Add validates the input, persists the new appointment and only then
// appends it to the in-memory set. A failed write leaves the session state
// untouched.
func (p *Planner) Add(ctx context.Context, in CreateInput) (*models.Appointment, error) {
	start, end, err := ValidateCreate(in, p.loc)
	if err != nil {
		return nil, err
	}

	ap := NewAppointment(p.newID(), in, start, end)

	if err := p.store.SaveAppointment(ctx, &ap); err != nil {
		return nil, err
	}

	p.appointments = append(p.appointments, ap)
	return &ap, nil
}

// ===============================
// View state
// ===============================

func (p *Planner) SetView(v View) { p.view = v }

func (p *Planner) View() View { return p.view }

func (p *Planner) SetRef(t time.Time) { p.ref = t.In(p.loc) }

func (p *Planner) Ref() time.Time { return p.ref }

func (p *Planner) SetFilter(f Filter) { p.filter = f }

// Navigate shifts the reference date by one step in the current view.
func (p *Planner) Navigate(steps int) time.Time {
	p.ref = Shift(p.view, p.ref, steps)
	return p.ref
}

// Visible applies the window filter for the current view and reference
// date, sorted ascending by start.
func (p *Planner) Visible() []models.Appointment {
	return Windowed(p.appointments, p.view, p.ref)
}

// Search applies the attribute filter on top of the month window when the
// month view is active, and on the full set otherwise.
func (p *Planner) Search() []models.Appointment {
	base := p.appointments
	if p.view == ViewMonth {
		base = Windowed(base, ViewMonth, p.ref)
	}
	return p.filter.Apply(base)
}

// DayBlocks computes the day-grid geometry for the given day from the
// currently visible set.
func (p *Planner) DayBlocks(day time.Time, cfg GridConfig) []Block {
	return DayLayout(p.Visible(), day, cfg)
}
