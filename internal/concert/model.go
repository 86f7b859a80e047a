package concert

import (
	"net/http"
	"time"

	"github.com/bandroomhq/bandroom-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "concert not found")
	ErrInvalidTime  = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrNoPoster     = apperror.New(http.StatusNotFound, "concert has no poster")
	ErrInvalidImage = apperror.New(http.StatusBadRequest, "uploaded file is not a supported image")
)

// SetListItem is one song in a concert's set list, stored as jsonb.
type SetListItem struct {
	Order int    `json:"order"`
	Title string `json:"title"`
	Note  string `json:"note,omitempty"`
}

// Concert is a scheduled performance at an external venue. Unlike rehearsals
// it does not occupy the room calendar.
type Concert struct {
	ID         string // UUID
	Title      string
	Venue      string
	Date       string // "YYYY-MM-DD"
	Start      int    // minutes since midnight
	End        int
	SetList    []SetListItem
	PosterPath *string
	CreatedBy  string
	CreatedAt  time.Time
}
