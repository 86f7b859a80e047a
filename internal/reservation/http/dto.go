package http

import (
	"time"

	"github.com/bandroomhq/bandroom-backend/internal/pkg/request"
	"github.com/bandroomhq/bandroom-backend/internal/reservation"
	"github.com/bandroomhq/bandroom-backend/internal/schedule"
)

// ListReservationsRequest defines query parameters for listing reservations.
type ListReservationsRequest struct {
	request.ListParams
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Kind string `form:"kind" binding:"omitempty,oneof=rehearsal ensemble concert"`
	User string `form:"user" binding:"omitempty,max=32"`
}

type CreateReservationRequest struct {
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Purpose   string `json:"purpose" binding:"required,max=64"`
}

type AvailabilityRequest struct {
	Date  string `form:"date" binding:"required,datetime=2006-01-02"`
	Start string `form:"start" binding:"omitempty"`
}

type ReservationResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	UserName  string    `json:"user_name"`
	Purpose   string    `json:"purpose"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		Date:      r.Date,
		StartTime: schedule.FormatClock(r.Start),
		EndTime:   schedule.FormatClock(r.End),
		UserName:  r.UserName,
		Purpose:   r.Purpose,
		Kind:      string(r.Kind),
		CreatedAt: r.CreatedAt,
	}
}

type FreeWindowResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityResponse struct {
	Date        string               `json:"date"`
	FreeWindows []FreeWindowResponse `json:"free_windows"`
	MaxEnd      *string              `json:"max_end,omitempty"`
}

func NewAvailabilityResponse(a *reservation.DayAvailability) AvailabilityResponse {
	windows := make([]FreeWindowResponse, len(a.FreeWindows))
	for i, w := range a.FreeWindows {
		windows[i] = FreeWindowResponse{
			StartTime: schedule.FormatClock(w.Start),
			EndTime:   schedule.FormatClock(w.End),
		}
	}

	resp := AvailabilityResponse{
		Date:        a.Date,
		FreeWindows: windows,
	}
	if a.MaxEnd != nil {
		end := schedule.FormatClock(*a.MaxEnd)
		resp.MaxEnd = &end
	}
	return resp
}
