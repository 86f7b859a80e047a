package reservation

import (
	"net/http"
	"time"

	"github.com/bandroomhq/bandroom-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "reservation not found")
	ErrTimeConflict     = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidDate      = apperror.New(http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	ErrInvalidKind      = apperror.New(http.StatusBadRequest, "invalid reservation kind")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

type Kind string

const (
	KindRehearsal Kind = "rehearsal"
	KindEnsemble  Kind = "ensemble"
	KindConcert   Kind = "concert"
)

func (k Kind) Valid() bool {
	switch k {
	case KindRehearsal, KindEnsemble, KindConcert:
		return true
	}
	return false
}

// Reservation is one confirmed booking of the rehearsal room. Start and End
// are minutes since midnight on Date, half-open; End may be 1440 ("24:00"),
// which the store encodes as 23:59:59 (see codec.go).
type Reservation struct {
	ID        string // UUID
	Date      string // "YYYY-MM-DD"
	Start     int
	End       int
	UserName  string
	Purpose   string
	Kind      Kind
	CreatedAt time.Time
}

// Filter selects reservations for list queries.
type Filter struct {
	FromDate string // inclusive, "YYYY-MM-DD"
	ToDate   string // inclusive
	Kind     string
	UserName string
	Page     int
	PageSize int
}
