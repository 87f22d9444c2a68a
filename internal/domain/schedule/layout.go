package schedule

import (
	"hash/fnv"
	"sort"
	"strconv"
	"time"

	"github.com/CareLinkServices/care-scheduler/internal/models"
)

// ===============================
// Day-grid geometry
// ===============================

// Grid constants match the rendered calendar: 24 one-hour slots of 100
// units starting at hour 0. Blocks shorter than MinBlockHeight are floored
// at render time; below CondensedMax the block switches to a condensed
// text mode and drops the notes line.
const (
	DefaultSlotHeight = 100
	DefaultStartHour  = 0
	MinBlockHeight    = 60
	CondensedMax      = 70
)

// ColorPalette is the fixed ordered set of category-color tokens blocks
// cycle through.
var ColorPalette = []string{"visit-blue", "therapy-green", "care-amber", "admin-rose"}

type GridConfig struct {
	SlotHeight float64
	StartHour  float64
}

func DefaultGrid() GridConfig {
	return GridConfig{SlotHeight: DefaultSlotHeight, StartHour: DefaultStartHour}
}

// Block is the computed geometry for one appointment in a day column.
// Height is the raw duration-derived value; renderers floor it at
// MinBlockHeight (DisplayHeight) so short appointments stay legible.
type Block struct {
	Appointment models.Appointment `json:"appointment"`
	Top         float64            `json:"top"`
	Height      float64            `json:"height"`
	Condensed   bool               `json:"condensed"`
	Color       string             `json:"color"`
	Column      int                `json:"column"`
}

func (b Block) DisplayHeight() float64 {
	if b.Height < MinBlockHeight {
		return MinBlockHeight
	}
	return b.Height
}

// DayLayout computes the vertical placement of every appointment starting
// on the given day. The base contract does not resolve visual overlap:
// concurrent appointments keep Column 0 and will collide, exactly like the
// original calendar; AssignColumns is the separate opt-in fix.
func DayLayout(apps []models.Appointment, day time.Time, cfg GridConfig) []Block {
	var blocks []Block

	for _, a := range apps {
		if !SameDay(a, day) {
			continue
		}

		start := a.StartTime.In(day.Location())
		end := a.EndTime.In(day.Location())

		startFrac := float64(start.Hour()) + float64(start.Minute())/60
		endFrac := float64(end.Hour()) + float64(end.Minute())/60

		height := (endFrac - startFrac) * cfg.SlotHeight

		blocks = append(blocks, Block{
			Appointment: a,
			Top:         (startFrac - cfg.StartHour) * cfg.SlotHeight,
			Height:      height,
			Condensed:   height < CondensedMax,
			Color:       ColorPalette[ColorIndex(a.ID, len(ColorPalette))],
		})
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Appointment.StartTime.Before(blocks[j].Appointment.StartTime)
	})

	return blocks
}

// ColorIndex deterministically maps an appointment id onto a palette slot.
// Integer ids keep the historical numericValue(id) mod n result; UUIDs and
// other non-numeric ids hash with FNV-1a first. Pure, no hidden state.
func ColorIndex(id string, paletteLen int) int {
	if paletteLen <= 0 {
		return 0
	}
	if n, err := strconv.Atoi(id); err == nil && n >= 0 {
		return n % paletteLen
	}

	h := fnv.New32a()
	h.Write([]byte(id))
	return int(h.Sum32() % uint32(paletteLen))
}

// ===============================
// Overlap columns (opt-in)
// ===============================

// AssignColumns spreads concurrently scheduled blocks across side-by-side
// columns using greedy interval partitioning: each block takes the lowest
// column whose previous occupant has already ended. Blocks must be sorted
// by start time, which DayLayout guarantees.
func AssignColumns(blocks []Block) []Block {
	var columnEnds []time.Time

	for i := range blocks {
		start := blocks[i].Appointment.StartTime
		end := blocks[i].Appointment.EndTime

		placed := false
		for col, colEnd := range columnEnds {
			if !start.Before(colEnd) {
				blocks[i].Column = col
				columnEnds[col] = end
				placed = true
				break
			}
		}
		if !placed {
			blocks[i].Column = len(columnEnds)
			columnEnds = append(columnEnds, end)
		}
	}

	return blocks
}
