package http

import (
	"time"

	"github.com/bandroomhq/bandroom-backend/internal/concert"
	"github.com/bandroomhq/bandroom-backend/internal/schedule"
)

type SetListItemBody struct {
	Title string `json:"title" binding:"required,max=64"`
	Note  string `json:"note" binding:"omitempty,max=64"`
}

type CreateConcertRequest struct {
	Title   string            `json:"title" binding:"required,max=64"`
	Venue   string            `json:"venue" binding:"required,max=64"`
	Date    string            `json:"date" binding:"required,datetime=2006-01-02"`
	Start   string            `json:"start_time" binding:"required"`
	End     string            `json:"end_time" binding:"required"`
	SetList []SetListItemBody `json:"set_list" binding:"omitempty,dive"`
}

type SetListItemResponse struct {
	Order int    `json:"order"`
	Title string `json:"title"`
	Note  string `json:"note,omitempty"`
}

type ConcertResponse struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Venue     string                `json:"venue"`
	Date      string                `json:"date"`
	StartTime string                `json:"start_time"`
	EndTime   string                `json:"end_time"`
	SetList   []SetListItemResponse `json:"set_list"`
	HasPoster bool                  `json:"has_poster"`
	CreatedBy string                `json:"created_by"`
	CreatedAt time.Time             `json:"created_at"`
}

func NewConcertResponse(c *concert.Concert) ConcertResponse {
	setList := make([]SetListItemResponse, len(c.SetList))
	for i, item := range c.SetList {
		setList[i] = SetListItemResponse{Order: item.Order, Title: item.Title, Note: item.Note}
	}

	return ConcertResponse{
		ID:        c.ID,
		Title:     c.Title,
		Venue:     c.Venue,
		Date:      c.Date,
		StartTime: schedule.FormatClock(c.Start),
		EndTime:   schedule.FormatClock(c.End),
		SetList:   setList,
		HasPoster: c.PosterPath != nil,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
	}
}
