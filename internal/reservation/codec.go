package reservation

import (
	"fmt"

	"github.com/bandroomhq/bandroom-backend/internal/schedule"
)

// The reservations table stores start_time/end_time in a Postgres `time`
// column, which cannot represent 24:00:00. A booking ending at midnight
// (minute 1440) is therefore written as 23:59:59 and decoded back on read.
const midnightSentinel = "23:59:59"

// encodeStart renders a start minute for the store. Starting at midnight is
// never legal, so no sentinel is needed.
func encodeStart(minute int) string {
	return schedule.FormatClock(minute) + ":00"
}

// encodeEnd renders an end minute for the store, applying the midnight quirk.
func encodeEnd(minute int) string {
	if minute == schedule.DayMinutes {
		return midnightSentinel
	}
	return schedule.FormatClock(minute) + ":00"
}

// decodeStart parses a stored "HH:MM:SS" start time back into minutes.
func decodeStart(s string) (int, error) {
	minute, err := schedule.ParseClock(s)
	if err != nil {
		return 0, fmt.Errorf("stored start time %q: %w", s, err)
	}
	return minute, nil
}

// decodeEnd parses a stored "HH:MM:SS" end time back into minutes,
// translating the 23:59:59 sentinel to 1440.
func decodeEnd(s string) (int, error) {
	if s == midnightSentinel {
		return schedule.DayMinutes, nil
	}
	minute, err := schedule.ParseClock(s)
	if err != nil {
		return 0, fmt.Errorf("stored end time %q: %w", s, err)
	}
	return minute, nil
}
