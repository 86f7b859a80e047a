package member

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bandroomhq/bandroom-backend/internal/auth"
)

const minPasswordLength = 8

type RegisterRequest struct {
	Email       string
	Password    string
	DisplayName string
	Sessions    []string
}

// Service defines business logic related to member accounts.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Member, error)
	Login(ctx context.Context, email, password string) (*Member, error)
	GetByID(ctx context.Context, id string) (*Member, error)
	List(ctx context.Context) ([]*Member, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{repo: repo, hasher: hasher}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Member, error) {
	cleanEmail := normalizeEmail(req.Email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = cleanEmail
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	sessions := make([]string, 0, len(req.Sessions))
	for _, sess := range req.Sessions {
		if sess = strings.TrimSpace(sess); sess != "" {
			sessions = append(sessions, sess)
		}
	}

	m := &Member{
		Email:        cleanEmail,
		PasswordHash: hash,
		DisplayName:  displayName,
		Sessions:     sessions,
	}

	// The unique index on email is the real duplicate check; the repository
	// maps its violation to ErrEmailAlreadyUsed.
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*Member, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	m, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch member by email: %w", err)
	}

	if err := s.hasher.Compare(m.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best effort; a failed timestamp update must not fail the login.
	_ = s.repo.UpdateLastLogin(ctx, m.ID, time.Now().UTC())

	return m, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Member, error) {
	return s.repo.List(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
