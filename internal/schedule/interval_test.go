package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:30", 1410, false},
		{"24:00", 1440, false},
		{"14:30:00", 870, false},
		{"24:30", 0, true},
		{"25:00", 0, true},
		{"12:60", 0, true},
		{"12", 0, true},
		{"ab:cd", 0, true},
		{"12:00:30", 0, true}, // nonzero seconds never occur in slot times
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseClock(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseClock(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseClock(%q)", tt.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:00", FormatClock(540))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "23:30", FormatClock(1410))
	assert.Equal(t, "24:00", FormatClock(DayMinutes))
}

func TestNewInterval(t *testing.T) {
	ivl, err := NewInterval(540, 600)
	require.NoError(t, err)
	assert.Equal(t, 60, ivl.Minutes())

	// End exactly at midnight is legal.
	_, err = NewInterval(1410, DayMinutes)
	require.NoError(t, err)

	_, err = NewInterval(600, 600)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(660, 600)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(1410, DayMinutes+30)
	assert.ErrorIs(t, err, ErrOutOfDomain)
}

func TestIntervalOverlaps(t *testing.T) {
	base := Interval{Start: 600, End: 720} // 10:00~12:00

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"identical", Interval{600, 720}, true},
		{"contained", Interval{630, 660}, true},
		{"containing", Interval{540, 780}, true},
		{"overlap left edge", Interval{540, 630}, true},
		{"overlap right edge", Interval{690, 780}, true},
		{"adjacent before", Interval{540, 600}, false},
		{"adjacent after", Interval{720, 780}, false},
		{"disjoint before", Interval{480, 540}, false},
		{"disjoint after", Interval{780, 840}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestIntervalContains(t *testing.T) {
	ivl := Interval{Start: 600, End: 720}

	assert.True(t, ivl.Contains(600))
	assert.True(t, ivl.Contains(719))
	assert.False(t, ivl.Contains(720)) // half-open
	assert.False(t, ivl.Contains(599))
}
