package http

import (
	"time"

	"github.com/bandroomhq/bandroom-backend/internal/ensemble"
	"github.com/bandroomhq/bandroom-backend/internal/schedule"
)

type CreatePollRequest struct {
	Title    string `json:"title" binding:"required,max=64"`
	Location string `json:"location" binding:"omitempty,max=64"`
}

type SubmitResponseRequest struct {
	Sessions []string `json:"sessions" binding:"omitempty,dive,max=16"`
	Slots    []string `json:"slots" binding:"required,min=1,dive,max=20"`
}

type ConfirmRequest struct {
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type PollResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func NewPollResponse(p *ensemble.Poll) PollResponse {
	return PollResponse{
		ID:        p.ID,
		Title:     p.Title,
		Location:  p.Location,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
	}
}

type MemberResponseTag struct {
	MemberName  string    `json:"member_name"`
	Sessions    []string  `json:"sessions"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type CommonRangeResponse struct {
	Date      string   `json:"date"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Members   []string `json:"members"`
}

type ResultResponse struct {
	Poll         PollResponse          `json:"poll"`
	Responses    []MemberResponseTag   `json:"responses"`
	CommonRanges []CommonRangeResponse `json:"common_ranges"`
}

func NewResultResponse(r *ensemble.Result) ResultResponse {
	responses := make([]MemberResponseTag, len(r.Responses))
	for i, resp := range r.Responses {
		sessions := resp.Sessions
		if sessions == nil {
			sessions = []string{}
		}
		responses[i] = MemberResponseTag{
			MemberName:  resp.MemberName,
			Sessions:    sessions,
			SubmittedAt: resp.SubmittedAt,
		}
	}

	// Empty intersection is a valid outcome: common_ranges is [] and the
	// client renders "no common time", not an error page.
	ranges := make([]CommonRangeResponse, len(r.CommonRanges))
	for i, cr := range r.CommonRanges {
		ranges[i] = CommonRangeResponse{
			Date:      cr.Date,
			StartTime: schedule.FormatClock(cr.Interval.Start),
			EndTime:   schedule.FormatClock(cr.Interval.End),
			Members:   cr.ParticipantIDs,
		}
	}

	return ResultResponse{
		Poll:         NewPollResponse(r.Poll),
		Responses:    responses,
		CommonRanges: ranges,
	}
}
