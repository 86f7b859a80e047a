package schedule

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator(mustClock(t, "09:00"), mustClock(t, "24:00"))
	require.NoError(t, err)
	return v
}

func TestNewValidator(t *testing.T) {
	_, err := NewValidator(540, 1440)
	assert.NoError(t, err)

	_, err = NewValidator(600, 600)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewValidator(545, 1440) // misaligned opening time
	assert.ErrorIs(t, err, ErrOutOfDomain)
}

func TestIsAdmissible(t *testing.T) {
	v := testValidator(t)
	cal, err := NewCalendar(testDate, []Entry{
		entry(t, "a", "10:00", "11:00"),
		entry(t, "b", "13:00", "14:00"),
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		start   string
		end     string
		exclude string
		want    bool
		wantErr error
	}{
		{name: "free gap", start: "11:00", end: "13:00", want: true},
		{name: "free tail", start: "14:00", end: "24:00", want: true},
		{name: "exact collision", start: "10:00", end: "11:00", want: false},
		{name: "partial overlap", start: "10:30", end: "11:30", want: false},
		{name: "spanning booking", start: "09:30", end: "14:30", want: false},
		{name: "adjacent before", start: "09:00", end: "10:00", want: true},
		{name: "adjacent after", start: "11:00", end: "12:00", want: true},
		{name: "own booking excluded", start: "10:00", end: "11:30", exclude: "a", want: true},
		{name: "exclusion skips only own", start: "10:00", end: "14:00", exclude: "a", want: false},
		{name: "before opening", start: "08:00", end: "09:30", wantErr: ErrOutOfDomain},
		{name: "misaligned start", start: "11:15", end: "12:00", wantErr: ErrOutOfDomain},
		{name: "zero length", start: "12:00", end: "12:00", wantErr: ErrInvalidInterval},
		{name: "reversed", start: "13:00", end: "12:00", wantErr: ErrInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ivl := Interval{Start: mustClock(t, tt.start), End: mustClock(t, tt.end)}
			got, err := v.IsAdmissible(cal, ivl, tt.exclude)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAdmissibleClosingBoundary(t *testing.T) {
	v := testValidator(t)
	cal, err := NewCalendar(testDate, nil)
	require.NoError(t, err)

	// A booking ending exactly at the closing boundary is fine.
	ok, err := v.IsAdmissible(cal, Interval{Start: mustClock(t, "23:30"), End: DayMinutes}, "")
	require.NoError(t, err)
	assert.True(t, ok)

	// Past it is not.
	_, err = v.IsAdmissible(cal, Interval{Start: mustClock(t, "23:30"), End: DayMinutes + SlotMinutes}, "")
	assert.ErrorIs(t, err, ErrOutOfDomain)
}

func TestMaxExtension(t *testing.T) {
	v := testValidator(t)
	cal, err := NewCalendar(testDate, []Entry{
		entry(t, "a", "10:00", "11:00"),
		entry(t, "b", "13:00", "14:00"),
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		start   string
		want    string
		wantErr error
	}{
		{name: "extends to next booking", start: "11:00", want: "13:00"},
		{name: "stops before first booking", start: "09:00", want: "10:00"},
		{name: "open tail reaches closing", start: "14:00", want: "24:00"},
		{name: "start inside booking", start: "10:30", wantErr: ErrNoAvailability},
		{name: "start at booking start", start: "10:00", wantErr: ErrNoAvailability},
		{name: "misaligned start", start: "11:15", wantErr: ErrOutOfDomain},
		{name: "start at closing boundary", start: "24:00", wantErr: ErrOutOfDomain},
		{name: "start before opening", start: "08:30", wantErr: ErrOutOfDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.MaxExtension(cal, mustClock(t, tt.start))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, mustClock(t, tt.want), got)
		})
	}
}

func TestMaxExtensionEmptyDay(t *testing.T) {
	v := testValidator(t)
	cal, err := NewCalendar(testDate, nil)
	require.NoError(t, err)

	got, err := v.MaxExtension(cal, mustClock(t, "09:00"))
	require.NoError(t, err)
	assert.Equal(t, DayMinutes, got)
}

func TestFreeWindows(t *testing.T) {
	v := testValidator(t)

	tests := []struct {
		name    string
		entries []Entry
		want    []Interval
	}{
		{
			name: "empty day is one big window",
			want: []Interval{{Start: 540, End: 1440}},
		},
		{
			name: "two bookings leave three windows",
			entries: []Entry{
				entry(t, "a", "10:00", "11:00"),
				entry(t, "b", "13:00", "14:00"),
			},
			want: []Interval{
				{Start: mustClock(t, "09:00"), End: mustClock(t, "10:00")},
				{Start: mustClock(t, "11:00"), End: mustClock(t, "13:00")},
				{Start: mustClock(t, "14:00"), End: mustClock(t, "24:00")},
			},
		},
		{
			name: "booking at opening trims head window",
			entries: []Entry{
				entry(t, "a", "09:00", "12:00"),
			},
			want: []Interval{
				{Start: mustClock(t, "12:00"), End: mustClock(t, "24:00")},
			},
		},
		{
			name: "adjacent bookings form no gap",
			entries: []Entry{
				entry(t, "a", "10:00", "11:00"),
				entry(t, "b", "11:00", "12:00"),
			},
			want: []Interval{
				{Start: mustClock(t, "09:00"), End: mustClock(t, "10:00")},
				{Start: mustClock(t, "12:00"), End: mustClock(t, "24:00")},
			},
		},
		{
			name: "fully booked day yields nothing",
			entries: []Entry{
				entry(t, "a", "09:00", "24:00"),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal, err := NewCalendar(testDate, tt.entries)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.FreeWindows(cal))
		})
	}
}

// randomCalendar builds a calendar with randomly occupied slots inside the
// validator's domain and returns it together with the occupancy bitmap,
// indexed by minute/SlotMinutes.
func randomCalendar(t *testing.T, rng *rand.Rand, v *Validator) (*Calendar, []bool) {
	t.Helper()

	slots := DayMinutes / SlotMinutes
	occupied := make([]bool, slots)
	first := v.Domain().Start / SlotMinutes
	last := v.Domain().End / SlotMinutes
	for i := first; i < last; i++ {
		occupied[i] = rng.Intn(3) == 0
	}

	var entries []Entry
	for i := first; i < last; i++ {
		if !occupied[i] {
			continue
		}
		j := i
		for j < last && occupied[j] {
			j++
		}
		entries = append(entries, Entry{
			ID:       fmt.Sprintf("booking-%d", len(entries)),
			Date:     testDate,
			Interval: Interval{Start: i * SlotMinutes, End: j * SlotMinutes},
		})
		i = j
	}

	cal, err := NewCalendar(testDate, entries)
	require.NoError(t, err)
	return cal, occupied
}

func TestIsAdmissibleMatchesSlotScan(t *testing.T) {
	v := testValidator(t)
	rng := rand.New(rand.NewSource(1))

	for round := 0; round < 200; round++ {
		cal, occupied := randomCalendar(t, rng, v)

		first := v.Domain().Start / SlotMinutes
		last := v.Domain().End / SlotMinutes
		for probe := 0; probe < 20; probe++ {
			s := first + rng.Intn(last-first)
			e := s + 1 + rng.Intn(last-s)

			want := true
			for i := s; i < e; i++ {
				if occupied[i] {
					want = false
					break
				}
			}

			ivl := Interval{Start: s * SlotMinutes, End: e * SlotMinutes}
			got, err := v.IsAdmissible(cal, ivl, "")
			require.NoError(t, err)
			require.Equal(t, want, got, "round %d interval %s", round, ivl)
		}
	}
}

func TestMaxExtensionIsMaximal(t *testing.T) {
	v := testValidator(t)
	rng := rand.New(rand.NewSource(2))

	for round := 0; round < 200; round++ {
		cal, occupied := randomCalendar(t, rng, v)

		first := v.Domain().Start / SlotMinutes
		last := v.Domain().End / SlotMinutes
		s := first + rng.Intn(last-first)
		start := s * SlotMinutes

		end, err := v.MaxExtension(cal, start)
		if occupied[s] {
			require.ErrorIs(t, err, ErrNoAvailability, "round %d start %s", round, FormatClock(start))
			continue
		}
		require.NoError(t, err, "round %d start %s", round, FormatClock(start))

		// The returned interval itself must be bookable.
		ok, err := v.IsAdmissible(cal, Interval{Start: start, End: end}, "")
		require.NoError(t, err)
		require.True(t, ok, "round %d [%s, %s)", round, FormatClock(start), FormatClock(end))

		// One more slot must not be: either it hits a booking or the
		// closing boundary.
		if end < v.Domain().End {
			require.True(t, occupied[end/SlotMinutes],
				"round %d extension stopped at free slot %s", round, FormatClock(end))
		}
	}
}
