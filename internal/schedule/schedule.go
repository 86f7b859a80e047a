// Package schedule implements the time-slot availability engine shared by the
// reservation and ensemble modules: day calendars built from existing bookings,
// admissibility checks for proposed intervals, and intersection of member
// availability submissions into common free ranges.
//
// Everything in this package is pure: no I/O, no clocks, no shared mutable
// state. Callers fetch bookings and poll responses themselves and hand them in.
package schedule

import (
	"net/http"

	"github.com/bandroomhq/bandroom-backend/internal/pkg/apperror"
)

const (
	// SlotMinutes is the scheduling granularity. All slot times and interval
	// boundaries must fall on a multiple of this.
	SlotMinutes = 30

	// DayMinutes is the exclusive upper bound of a day. An interval may end at
	// 1440 ("24:00") but never start there.
	DayMinutes = 24 * 60
)

var (
	ErrInvalidInterval    = apperror.New(http.StatusBadRequest, "interval start must be before end")
	ErrOutOfDomain        = apperror.New(http.StatusBadRequest, "time is outside the bookable hours or not aligned to 30 minutes")
	ErrOutOfRange         = apperror.New(http.StatusBadRequest, "booking date does not match the calendar date")
	ErrNoAvailability     = apperror.New(http.StatusConflict, "no available time at the requested start")
	ErrInvariantViolation = apperror.New(http.StatusInternalServerError, "calendar contains overlapping bookings")
)
