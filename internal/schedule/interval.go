package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is a half-open [Start, End) range of minutes since midnight on a
// single date. End may equal DayMinutes (displayed as "24:00").
type Interval struct {
	Start int
	End   int
}

// NewInterval builds a validated interval. Start must be strictly before End
// and both must lie within [0, DayMinutes].
func NewInterval(start, end int) (Interval, error) {
	if start >= end {
		return Interval{}, ErrInvalidInterval
	}
	if start < 0 || end > DayMinutes {
		return Interval{}, ErrOutOfDomain
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals share any minute.
// [a,b) and [c,d) overlap iff a < d && c < b.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

// Contains reports whether the given minute falls inside the interval.
func (i Interval) Contains(minute int) bool {
	return minute >= i.Start && minute < i.End
}

// Minutes returns the interval length.
func (i Interval) Minutes() int {
	return i.End - i.Start
}

// Aligned reports whether both boundaries fall on the slot granularity.
func (i Interval) Aligned() bool {
	return i.Start%SlotMinutes == 0 && i.End%SlotMinutes == 0
}

func (i Interval) String() string {
	return FormatClock(i.Start) + "~" + FormatClock(i.End)
}

// ParseClock converts a "HH:MM" or "HH:MM:SS" clock string into minutes since
// midnight. "24:00" parses to DayMinutes; seconds, when present, must be zero
// (the reservation store's "23:59:59" midnight encoding is decoded by the
// repository before it reaches the engine).
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec != 0 {
			return 0, fmt.Errorf("invalid seconds in %q", s)
		}
	}

	if h < 0 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock out of range: %q", s)
	}

	total := h*60 + m
	if total > DayMinutes {
		return 0, fmt.Errorf("clock out of range: %q", s)
	}
	return total, nil
}

// FormatClock renders minutes since midnight as "HH:MM". DayMinutes renders
// as "24:00".
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
