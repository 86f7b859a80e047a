package schedule

import (
	"sort"
)

// Entry is one existing booking as seen by the calendar: just an identifier,
// its date and its occupied interval. The engine never mutates the booking
// behind it.
type Entry struct {
	ID       string
	Date     string // "YYYY-MM-DD"
	Interval Interval
}

// Calendar answers occupancy questions for a single date. It is built once
// from the store's query results and never mutated afterwards, so it is safe
// to share across goroutines.
type Calendar struct {
	date    string
	entries []Entry // sorted by Interval.Start
}

// NewCalendar builds a calendar for the given date from existing bookings.
// Entries for any other date are rejected with ErrOutOfRange. The input must
// already be non-overlapping: the store is supposed to guarantee that, and a
// violation is reported as ErrInvariantViolation instead of being silently
// repaired.
func NewCalendar(date string, entries []Entry) (*Calendar, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Interval.Start < sorted[j].Interval.Start
	})

	for i, e := range sorted {
		if e.Date != date {
			return nil, ErrOutOfRange
		}
		if e.Interval.Start >= e.Interval.End {
			return nil, ErrInvalidInterval
		}
		if i > 0 && sorted[i-1].Interval.Overlaps(e.Interval) {
			return nil, ErrInvariantViolation
		}
	}

	return &Calendar{date: date, entries: sorted}, nil
}

// Date returns the calendar's date.
func (c *Calendar) Date() string {
	return c.date
}

// Entries returns the bookings in start-time order.
func (c *Calendar) Entries() []Entry {
	return c.entries
}

// OccupantAt returns the booking whose interval contains the given minute, or
// nil when the minute is free. Entries are sorted and disjoint, so a binary
// search for the last entry starting at or before the minute is enough.
func (c *Calendar) OccupantAt(minute int) *Entry {
	// idx is the first entry with Start > minute; the candidate is idx-1.
	idx := sort.Search(len(c.entries), func(i int) bool {
		return c.entries[i].Interval.Start > minute
	})
	if idx == 0 {
		return nil
	}
	if e := &c.entries[idx-1]; e.Interval.Contains(minute) {
		return e
	}
	return nil
}

// firstConflict returns the earliest entry overlapping the interval, skipping
// the entry with excludeID (used when editing an existing booking).
func (c *Calendar) firstConflict(ivl Interval, excludeID string) *Entry {
	for i := range c.entries {
		e := &c.entries[i]
		if e.Interval.Start >= ivl.End {
			break
		}
		if excludeID != "" && e.ID == excludeID {
			continue
		}
		if e.Interval.Overlaps(ivl) {
			return e
		}
	}
	return nil
}
