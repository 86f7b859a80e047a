package reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandroomhq/bandroom-backend/internal/schedule"
)

// memRepository is an in-memory Repository for service tests. It enforces the
// same no-overlap rule the database's exclusion constraint does.
type memRepository struct {
	nextID       int
	reservations []*Reservation
}

func (r *memRepository) Create(_ context.Context, res *Reservation) error {
	ivl := schedule.Interval{Start: res.Start, End: res.End}
	for _, existing := range r.reservations {
		if existing.Date == res.Date &&
			ivl.Overlaps(schedule.Interval{Start: existing.Start, End: existing.End}) {
			return ErrTimeConflict
		}
	}

	r.nextID++
	res.ID = fmt.Sprintf("res-%d", r.nextID)
	res.CreatedAt = time.Now()

	stored := *res
	r.reservations = append(r.reservations, &stored)
	return nil
}

func (r *memRepository) GetByID(_ context.Context, id string) (*Reservation, error) {
	for _, res := range r.reservations {
		if res.ID == id {
			copied := *res
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepository) List(_ context.Context, _ Filter) ([]*Reservation, int, error) {
	return r.reservations, len(r.reservations), nil
}

func (r *memRepository) ListByDate(_ context.Context, date string) ([]*Reservation, error) {
	var out []*Reservation
	for _, res := range r.reservations {
		if res.Date == date {
			copied := *res
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memRepository) Delete(_ context.Context, id string) error {
	for i, res := range r.reservations {
		if res.ID == id {
			r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func newTestService(t *testing.T) (Service, *memRepository) {
	t.Helper()
	validator, err := schedule.NewValidator(540, 1440) // 09:00~24:00
	require.NoError(t, err)
	repo := &memRepository{}
	return NewService(repo, validator), repo
}

func TestServiceCreate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, CreateRequest{
		Date:      "2025-06-01",
		StartTime: "10:00",
		EndTime:   "11:00",
		UserName:  "alice",
		Purpose:   "band practice",
		Kind:      KindRehearsal,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, 600, res.Start)
	assert.Equal(t, 660, res.End)
}

func TestServiceCreateConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{
		Date: "2025-06-01", StartTime: "10:00", EndTime: "12:00",
		UserName: "alice", Kind: KindRehearsal,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateRequest{
		Date: "2025-06-01", StartTime: "11:00", EndTime: "13:00",
		UserName: "bob", Kind: KindRehearsal,
	})
	assert.ErrorIs(t, err, ErrTimeConflict)

	// Same slot on another day is free.
	_, err = svc.Create(ctx, CreateRequest{
		Date: "2025-06-02", StartTime: "11:00", EndTime: "13:00",
		UserName: "bob", Kind: KindRehearsal,
	})
	assert.NoError(t, err)
}

func TestServiceCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name: "bad date",
			req: CreateRequest{Date: "06/01/2025", StartTime: "10:00",
				EndTime: "11:00", UserName: "alice", Kind: KindRehearsal},
			wantErr: ErrInvalidDate,
		},
		{
			name: "unknown kind",
			req: CreateRequest{Date: "2025-06-01", StartTime: "10:00",
				EndTime: "11:00", UserName: "alice", Kind: Kind("gig")},
			wantErr: ErrInvalidKind,
		},
		{
			name: "unparseable time",
			req: CreateRequest{Date: "2025-06-01", StartTime: "ten",
				EndTime: "11:00", UserName: "alice", Kind: KindRehearsal},
			wantErr: schedule.ErrOutOfDomain,
		},
		{
			name: "end before start",
			req: CreateRequest{Date: "2025-06-01", StartTime: "12:00",
				EndTime: "11:00", UserName: "alice", Kind: KindRehearsal},
			wantErr: schedule.ErrInvalidInterval,
		},
		{
			name: "before opening hours",
			req: CreateRequest{Date: "2025-06-01", StartTime: "08:00",
				EndTime: "10:00", UserName: "alice", Kind: KindRehearsal},
			wantErr: schedule.ErrOutOfDomain,
		},
		{
			name: "misaligned start",
			req: CreateRequest{Date: "2025-06-01", StartTime: "10:15",
				EndTime: "11:00", UserName: "alice", Kind: KindRehearsal},
			wantErr: schedule.ErrOutOfDomain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServiceCreateUntilMidnight(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, CreateRequest{
		Date: "2025-06-01", StartTime: "22:00", EndTime: "24:00",
		UserName: "alice", Kind: KindEnsemble,
	})
	require.NoError(t, err)
	assert.Equal(t, schedule.DayMinutes, res.End)

	stored, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, schedule.DayMinutes, stored.End)
}

func TestServiceAvailability(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, w := range []struct{ start, end string }{
		{"10:00", "11:00"},
		{"13:00", "14:00"},
	} {
		_, err := svc.Create(ctx, CreateRequest{
			Date: "2025-06-01", StartTime: w.start, EndTime: w.end,
			UserName: "alice", Kind: KindRehearsal,
		})
		require.NoError(t, err)
	}

	avail, err := svc.Availability(ctx, "2025-06-01", "")
	require.NoError(t, err)
	assert.Equal(t, []schedule.Interval{
		{Start: 540, End: 600},
		{Start: 660, End: 780},
		{Start: 840, End: 1440},
	}, avail.FreeWindows)
	assert.Nil(t, avail.MaxEnd)

	// Probing a start reports how far a booking could run.
	avail, err = svc.Availability(ctx, "2025-06-01", "11:00")
	require.NoError(t, err)
	require.NotNil(t, avail.MaxEnd)
	assert.Equal(t, 780, *avail.MaxEnd) // 13:00

	_, err = svc.Availability(ctx, "2025-06-01", "10:30")
	assert.ErrorIs(t, err, schedule.ErrNoAvailability)
}

func TestServiceDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, CreateRequest{
		Date: "2025-06-01", StartTime: "10:00", EndTime: "11:00",
		UserName: "alice", Kind: KindRehearsal,
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, res.ID, "bob", false)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// Admins may remove anyone's booking.
	err = svc.Delete(ctx, res.ID, "bob", true)
	assert.NoError(t, err)

	err = svc.Delete(ctx, res.ID, "alice", false)
	assert.ErrorIs(t, err, ErrNotFound)
}
