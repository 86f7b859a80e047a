package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandroomhq/bandroom-backend/internal/schedule"
)

func TestEncodeDecodeTimes(t *testing.T) {
	tests := []struct {
		minute  int
		encoded string
	}{
		{540, "09:00:00"},
		{870, "14:30:00"},
		{0, "00:00:00"},
		{1410, "23:30:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.encoded, encodeStart(tt.minute))
		assert.Equal(t, tt.encoded, encodeEnd(tt.minute))

		start, err := decodeStart(tt.encoded)
		require.NoError(t, err)
		assert.Equal(t, tt.minute, start)

		end, err := decodeEnd(tt.encoded)
		require.NoError(t, err)
		assert.Equal(t, tt.minute, end)
	}
}

func TestMidnightEndUsesSentinel(t *testing.T) {
	// `time` columns cannot hold 24:00:00, so a midnight end round-trips
	// through 23:59:59.
	assert.Equal(t, "23:59:59", encodeEnd(schedule.DayMinutes))

	got, err := decodeEnd("23:59:59")
	require.NoError(t, err)
	assert.Equal(t, schedule.DayMinutes, got)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := decodeStart("not-a-time")
	assert.Error(t, err)

	_, err = decodeEnd("25:00:00")
	assert.Error(t, err)
}
