package ensemble

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bandroomhq/bandroom-backend/internal/pkg/apperror"
	"github.com/bandroomhq/bandroom-backend/internal/reservation"
	"github.com/bandroomhq/bandroom-backend/internal/schedule"
)

type CreatePollRequest struct {
	Title     string
	Location  string
	CreatedBy string
}

type SubmitRequest struct {
	PollID     string
	MemberName string
	Sessions   []string
	Slots      []string // "YYYY-MM-DD HH:mm"
}

// ConfirmRequest picks one common range out of the current result. The range
// is re-derived server-side before booking, so a stale pick is rejected
// rather than trusted.
type ConfirmRequest struct {
	PollID      string
	Date        string // "YYYY-MM-DD"
	StartTime   string // "HH:MM"
	EndTime     string // "HH:MM" or "24:00"
	ConfirmedBy string
}

type Service interface {
	CreatePoll(ctx context.Context, req CreatePollRequest) (*Poll, error)
	GetPoll(ctx context.Context, id string) (*Poll, error)
	Submit(ctx context.Context, req SubmitRequest) error

	// Result recomputes the intersection over the full current response set.
	// Never incremental: late submissions are picked up on the next call.
	Result(ctx context.Context, pollID string) (*Result, error)

	// Confirm books the room for a chosen common range and deletes the poll.
	Confirm(ctx context.Context, req ConfirmRequest) (*reservation.Reservation, error)
}

type service struct {
	repo       Repository
	resService reservation.Service
}

func NewService(repo Repository, resService reservation.Service) Service {
	return &service{repo: repo, resService: resService}
}

func (s *service) CreatePoll(ctx context.Context, req CreatePollRequest) (*Poll, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.New(http.StatusBadRequest, "poll title is required")
	}

	p := &Poll{
		ID:        uuid.NewString(),
		Title:     title,
		Location:  strings.TrimSpace(req.Location),
		CreatedBy: req.CreatedBy,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreatePoll(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetPoll(ctx context.Context, id string) (*Poll, error) {
	return s.repo.GetPoll(ctx, id)
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) error {
	if _, err := s.repo.GetPoll(ctx, req.PollID); err != nil {
		return err
	}

	// Validate and normalize every slot up front; one bad slot rejects the
	// whole submission instead of being silently dropped or mis-merged.
	keys := make([]string, 0, len(req.Slots))
	for _, raw := range req.Slots {
		slot, err := schedule.ParseSlot(raw)
		if err != nil {
			if _, ok := apperror.From(err); ok {
				return err
			}
			return apperror.Wrap(err, http.StatusBadRequest, "invalid availability slot")
		}
		keys = append(keys, slot.Key())
	}

	return s.repo.SaveResponse(ctx, req.PollID, Response{
		MemberName:  req.MemberName,
		Sessions:    req.Sessions,
		Slots:       keys,
		SubmittedAt: time.Now().UTC(),
	})
}

func (s *service) Result(ctx context.Context, pollID string) (*Result, error) {
	poll, err := s.repo.GetPoll(ctx, pollID)
	if err != nil {
		return nil, err
	}

	responses, err := s.repo.ListResponses(ctx, pollID)
	if err != nil {
		return nil, err
	}

	session, err := toPollSession(responses)
	if err != nil {
		return nil, err
	}

	return &Result{
		Poll:         poll,
		Responses:    responses,
		CommonRanges: schedule.CommonRanges(session),
	}, nil
}

func (s *service) Confirm(ctx context.Context, req ConfirmRequest) (*reservation.Reservation, error) {
	result, err := s.Result(ctx, req.PollID)
	if err != nil {
		return nil, err
	}
	if len(result.Responses) == 0 {
		return nil, ErrNoResponses
	}

	chosen, err := findRange(result.CommonRanges, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	roster := make([]string, len(result.Responses))
	for i, resp := range result.Responses {
		roster[i] = resp.MemberName
	}
	proposal := schedule.ConfirmRange(*chosen, roster)

	// The poll result can be stale relative to bookings made while the poll
	// was open; Create re-validates against the live calendar and the store
	// constraint has the final word.
	res, err := s.resService.Create(ctx, reservation.CreateRequest{
		Date:      proposal.Date,
		StartTime: schedule.FormatClock(proposal.Interval.Start),
		EndTime:   schedule.FormatClock(proposal.Interval.End),
		UserName:  req.ConfirmedBy,
		Purpose:   "Ensemble: " + result.Poll.Title,
		Kind:      reservation.KindEnsemble,
	})
	if err != nil {
		return nil, err
	}

	// Draft cleanup mirrors confirmation; a failed delete only means the poll
	// lingers until its TTL.
	_ = s.repo.DeletePoll(ctx, req.PollID)

	return res, nil
}

// findRange locates the requested range among the freshly computed common
// ranges. No match means the responses changed since the caller looked.
func findRange(ranges []schedule.CommonRange, date, startTime, endTime string) (*schedule.CommonRange, error) {
	start, err := schedule.ParseClock(startTime)
	if err != nil {
		return nil, ErrInvalidSlot
	}
	end, err := schedule.ParseClock(endTime)
	if err != nil {
		return nil, ErrInvalidSlot
	}

	for i := range ranges {
		r := &ranges[i]
		if r.Date == date && r.Interval.Start == start && r.Interval.End == end {
			return r, nil
		}
	}
	return nil, ErrRangeNotOpen
}

func toPollSession(responses []Response) (schedule.PollSession, error) {
	session := schedule.PollSession{
		Submissions: make([]schedule.ParticipantAvailability, len(responses)),
	}
	for i, resp := range responses {
		slots := make([]schedule.Slot, len(resp.Slots))
		for j, key := range resp.Slots {
			slot, err := schedule.ParseSlot(key)
			if err != nil {
				return schedule.PollSession{}, err
			}
			slots[j] = slot
		}
		session.Submissions[i] = schedule.ParticipantAvailability{
			ParticipantID: resp.MemberName,
			Slots:         slots,
		}
	}
	return session, nil
}
