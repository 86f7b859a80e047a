package member

import (
	"net/http"
	"time"

	"github.com/bandroomhq/bandroom-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "member not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password must be at least 8 characters")
)

// Member is a band member account. Sessions are the parts the member plays
// (vocal, guitar, drums, ...) and are shown next to poll responses.
type Member struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  string
	Sessions     []string
	IsAdmin      bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
