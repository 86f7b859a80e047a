package schedule

// Validator gatekeeps new bookings against a day calendar. Domain is the
// bookable window of the room, e.g. [09:00, 24:00) for the rehearsal room;
// deployments with different opening hours configure it at startup.
type Validator struct {
	domain Interval
}

// NewValidator builds a validator for the given opening hours, expressed in
// minutes since midnight. Both boundaries must be slot-aligned.
func NewValidator(open, close int) (*Validator, error) {
	domain, err := NewInterval(open, close)
	if err != nil {
		return nil, err
	}
	if !domain.Aligned() {
		return nil, ErrOutOfDomain
	}
	return &Validator{domain: domain}, nil
}

// Domain returns the configured bookable window.
func (v *Validator) Domain() Interval {
	return v.domain
}

// IsAdmissible reports whether the interval can be booked on the calendar:
// inside the domain, slot-aligned, and overlapping no existing booking other
// than the one identified by excludeID (empty for new bookings).
func (v *Validator) IsAdmissible(cal *Calendar, ivl Interval, excludeID string) (bool, error) {
	if ivl.Start >= ivl.End {
		return false, ErrInvalidInterval
	}
	if ivl.Start < v.domain.Start || ivl.End > v.domain.End || !ivl.Aligned() {
		return false, ErrOutOfDomain
	}
	return cal.firstConflict(ivl, excludeID) == nil, nil
}

// MaxExtension returns the largest end such that [start, end) is admissible,
// extending one slot at a time until the first occupied slot or the domain's
// closing boundary. When the very first slot is already taken there is no
// valid booking at this start and ErrNoAvailability is returned; callers must
// not persist a zero-length interval.
func (v *Validator) MaxExtension(cal *Calendar, start int) (int, error) {
	if start%SlotMinutes != 0 {
		return 0, ErrOutOfDomain
	}
	// A booking may end at the closing boundary but never start there.
	if start < v.domain.Start || start >= v.domain.End {
		return 0, ErrOutOfDomain
	}

	end := start
	for end < v.domain.End {
		next := end + SlotMinutes
		if cal.firstConflict(Interval{Start: end, End: next}, "") != nil {
			break
		}
		end = next
	}

	if end == start {
		return start, ErrNoAvailability
	}
	return end, nil
}

// FreeWindows returns the still-free contiguous windows of the day inside the
// bookable domain, in chronological order. A day with no bookings yields the
// whole domain; a fully booked day yields nil.
func (v *Validator) FreeWindows(cal *Calendar) []Interval {
	var free []Interval
	cursor := v.domain.Start

	for _, e := range cal.Entries() {
		if e.Interval.End <= cursor {
			continue
		}
		if e.Interval.Start > cursor {
			end := e.Interval.Start
			if end > v.domain.End {
				end = v.domain.End
			}
			free = append(free, Interval{Start: cursor, End: end})
		}
		cursor = e.Interval.End
		if cursor >= v.domain.End {
			return free
		}
	}

	if cursor < v.domain.End {
		free = append(free, Interval{Start: cursor, End: v.domain.End})
	}
	return free
}
