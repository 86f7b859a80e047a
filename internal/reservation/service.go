package reservation

import (
	"context"
	"time"

	"github.com/bandroomhq/bandroom-backend/internal/schedule"
)

type CreateRequest struct {
	Date      string // "YYYY-MM-DD"
	StartTime string // "HH:MM" or "HH:MM:SS"
	EndTime   string // "HH:MM", "HH:MM:SS" or "24:00"
	UserName  string
	Purpose   string
	Kind      Kind
}

// DayAvailability is the availability view for one date: the still-free
// contiguous windows inside the room's opening hours, and optionally the
// maximal legal extension from a probed start time.
type DayAvailability struct {
	Date        string
	FreeWindows []schedule.Interval

	// MaxEnd is set when the caller probed a start time: the largest end
	// minute such that [start, MaxEnd) is admissible.
	MaxEnd *int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	Delete(ctx context.Context, id string, requesterName string, isAdmin bool) error

	// Availability reports the free windows of a date; startTime, when
	// non-empty, additionally probes the maximal extension from that start.
	Availability(ctx context.Context, date string, startTime string) (*DayAvailability, error)
}

type service struct {
	repo      Repository
	validator *schedule.Validator
}

func NewService(repo Repository, validator *schedule.Validator) Service {
	return &service{repo: repo, validator: validator}
}

// Create validates the proposal against the current day calendar and inserts
// it. The in-memory check and the insert are not atomic: the store's overlap
// constraint is the final arbiter, and a write-time ErrTimeConflict means the
// caller should re-fetch availability and try again.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if !req.Kind.Valid() {
		return nil, ErrInvalidKind
	}

	ivl, err := parseInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	cal, err := s.dayCalendar(ctx, req.Date)
	if err != nil {
		return nil, err
	}

	ok, err := s.validator.IsAdmissible(cal, ivl, "")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTimeConflict
	}

	res := &Reservation{
		Date:     req.Date,
		Start:    ivl.Start,
		End:      ivl.End,
		UserName: req.UserName,
		Purpose:  req.Purpose,
		Kind:     req.Kind,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Delete(ctx context.Context, id string, requesterName string, isAdmin bool) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && res.UserName != requesterName {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Availability(ctx context.Context, date string, startTime string) (*DayAvailability, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	cal, err := s.dayCalendar(ctx, date)
	if err != nil {
		return nil, err
	}

	avail := &DayAvailability{
		Date:        date,
		FreeWindows: s.validator.FreeWindows(cal),
	}

	if startTime != "" {
		start, err := schedule.ParseClock(startTime)
		if err != nil {
			return nil, schedule.ErrOutOfDomain
		}
		end, err := s.validator.MaxExtension(cal, start)
		if err != nil {
			return nil, err
		}
		avail.MaxEnd = &end
	}

	return avail, nil
}

// dayCalendar loads one date's bookings and builds the occupancy calendar.
func (s *service) dayCalendar(ctx context.Context, date string) (*schedule.Calendar, error) {
	reservations, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	entries := make([]schedule.Entry, len(reservations))
	for i, res := range reservations {
		entries[i] = schedule.Entry{
			ID:       res.ID,
			Date:     res.Date,
			Interval: schedule.Interval{Start: res.Start, End: res.End},
		}
	}
	return schedule.NewCalendar(date, entries)
}

func parseInterval(startTime, endTime string) (schedule.Interval, error) {
	start, err := schedule.ParseClock(startTime)
	if err != nil {
		return schedule.Interval{}, schedule.ErrOutOfDomain
	}
	end, err := schedule.ParseClock(endTime)
	if err != nil {
		return schedule.Interval{}, schedule.ErrOutOfDomain
	}
	return schedule.NewInterval(start, end)
}

func validateDate(date string) error {
	if _, err := time.Parse(schedule.DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
