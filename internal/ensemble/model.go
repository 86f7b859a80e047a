package ensemble

import (
	"net/http"
	"time"

	"github.com/bandroomhq/bandroom-backend/internal/pkg/apperror"
	"github.com/bandroomhq/bandroom-backend/internal/schedule"
)

var (
	ErrPollNotFound  = apperror.New(http.StatusNotFound, "ensemble poll not found or expired")
	ErrNoResponses   = apperror.New(http.StatusBadRequest, "no responses submitted yet")
	ErrRangeNotOpen  = apperror.New(http.StatusConflict, "selected range is no longer common to all responses")
	ErrInvalidSlot   = apperror.New(http.StatusBadRequest, "invalid availability slot")
	ErrAlreadyClosed = apperror.New(http.StatusGone, "ensemble poll already confirmed")
)

// Poll is an open ensemble scheduling poll. Polls are drafts: they live in
// Redis with a TTL and disappear once a common time is confirmed (or never
// was).
type Poll struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Response is one member's availability submission. Slots are normalized
// "YYYY-MM-DD HH:mm" keys. A member resubmitting replaces their previous
// response wholesale.
type Response struct {
	MemberName  string    `json:"member_name"`
	Sessions    []string  `json:"sessions"`
	Slots       []string  `json:"slots"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Result is the current poll outcome: every response plus the common free
// ranges across all of them. Recomputed in full on every read; an empty
// CommonRanges with responses present means no time works for everyone.
type Result struct {
	Poll         *Poll
	Responses    []Response
	CommonRanges []schedule.CommonRange
}
