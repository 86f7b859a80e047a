package schedule

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used throughout the engine.
// Zero-padded, so lexicographic order equals chronological order.
const DateLayout = "2006-01-02"

// Slot is the atomic scheduling unit: one 30-minute block identified by date
// and start minute. Slots are value objects; equality is structural, so they
// can be used directly as map keys.
type Slot struct {
	Date   string // "YYYY-MM-DD"
	Minute int    // minutes since midnight, multiple of SlotMinutes
}

// ParseSlot parses a "YYYY-MM-DD HH:mm" submission string into a Slot.
// The date must be a real calendar date and the time must be aligned to the
// slot granularity; misaligned times are rejected with ErrOutOfDomain rather
// than silently merged into the wrong range.
func ParseSlot(s string) (Slot, error) {
	datePart, timePart, ok := strings.Cut(s, " ")
	if !ok {
		return Slot{}, fmt.Errorf("invalid slot %q: want \"YYYY-MM-DD HH:mm\"", s)
	}

	if _, err := time.Parse(DateLayout, datePart); err != nil {
		return Slot{}, fmt.Errorf("invalid slot date %q: %w", datePart, err)
	}

	minute, err := ParseClock(timePart)
	if err != nil {
		return Slot{}, fmt.Errorf("invalid slot time %q: %w", timePart, err)
	}
	if minute%SlotMinutes != 0 || minute >= DayMinutes {
		return Slot{}, ErrOutOfDomain
	}

	return Slot{Date: datePart, Minute: minute}, nil
}

// Key renders the slot back into its "YYYY-MM-DD HH:mm" form.
func (s Slot) Key() string {
	return s.Date + " " + FormatClock(s.Minute)
}

// Before orders slots chronologically by (date, minute).
func (s Slot) Before(o Slot) bool {
	if s.Date != o.Date {
		return s.Date < o.Date
	}
	return s.Minute < o.Minute
}
