package http

import (
	"time"

	"github.com/bandroomhq/bandroom-backend/internal/member"
)

type RegisterRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=8"`
	DisplayName string   `json:"display_name" binding:"required,max=32"`
	Sessions    []string `json:"sessions" binding:"omitempty,dive,max=16"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type MemberResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Sessions    []string   `json:"sessions"`
	IsAdmin     bool       `json:"is_admin"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	Member      MemberResponse `json:"member"`
}

func NewMemberResponse(m *member.Member) MemberResponse {
	sessions := m.Sessions
	if sessions == nil {
		sessions = []string{}
	}
	return MemberResponse{
		ID:          m.ID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Sessions:    sessions,
		IsAdmin:     m.IsAdmin,
		CreatedAt:   m.CreatedAt,
		LastLoginAt: m.LastLoginAt,
	}
}
