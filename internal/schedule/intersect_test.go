package schedule

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slots(t *testing.T, keys ...string) []Slot {
	t.Helper()
	out := make([]Slot, len(keys))
	for i, k := range keys {
		s, err := ParseSlot(k)
		require.NoError(t, err)
		out[i] = s
	}
	return out
}

func TestCommonRangesTwoParticipants(t *testing.T) {
	session := PollSession{Submissions: []ParticipantAvailability{
		{ParticipantID: "alice", Slots: slots(t,
			"2025-06-01 14:00", "2025-06-01 14:30", "2025-06-01 15:00")},
		{ParticipantID: "bob", Slots: slots(t,
			"2025-06-01 14:30", "2025-06-01 15:00", "2025-06-01 15:30")},
	}}

	got := CommonRanges(session)
	require.Len(t, got, 1)
	assert.Equal(t, CommonRange{
		Date:           "2025-06-01",
		Interval:       Interval{Start: mustClock(t, "14:30"), End: mustClock(t, "15:30")},
		ParticipantIDs: []string{"alice", "bob"},
	}, got[0])
}

func TestCommonRangesZeroSubmissions(t *testing.T) {
	assert.Empty(t, CommonRanges(PollSession{}))
}

func TestCommonRangesSingleParticipant(t *testing.T) {
	session := PollSession{Submissions: []ParticipantAvailability{
		{ParticipantID: "alice", Slots: slots(t,
			"2025-06-01 14:00", "2025-06-01 14:30", "2025-06-01 16:00")},
	}}

	got := CommonRanges(session)
	require.Len(t, got, 2)
	assert.Equal(t, Interval{Start: mustClock(t, "14:00"), End: mustClock(t, "15:00")}, got[0].Interval)
	assert.Equal(t, Interval{Start: mustClock(t, "16:00"), End: mustClock(t, "16:30")}, got[1].Interval)
}

func TestCommonRangesEmptyIntersection(t *testing.T) {
	session := PollSession{Submissions: []ParticipantAvailability{
		{ParticipantID: "alice", Slots: slots(t, "2025-06-01 14:00")},
		{ParticipantID: "bob", Slots: slots(t, "2025-06-01 15:00")},
	}}

	// No shared slot is a valid outcome, not an error.
	assert.Empty(t, CommonRanges(session))
}

func TestCommonRangesParticipantWithNoSlots(t *testing.T) {
	session := PollSession{Submissions: []ParticipantAvailability{
		{ParticipantID: "alice", Slots: slots(t, "2025-06-01 14:00", "2025-06-01 14:30")},
		{ParticipantID: "bob"},
	}}

	assert.Empty(t, CommonRanges(session))
}

func TestCommonRangesDuplicateSlotsCountOnce(t *testing.T) {
	// A duplicated slot in one submission must not satisfy the count for a
	// missing participant.
	session := PollSession{Submissions: []ParticipantAvailability{
		{ParticipantID: "alice", Slots: slots(t, "2025-06-01 14:00", "2025-06-01 14:00")},
		{ParticipantID: "bob", Slots: slots(t, "2025-06-01 15:00")},
	}}

	assert.Empty(t, CommonRanges(session))
}

func TestCommonRangesDateChangeClosesRange(t *testing.T) {
	// 23:30 on one day and 00:00 on the next are adjacent on the clock but
	// never merge across the date boundary.
	shared := slots(t, "2025-06-01 23:30", "2025-06-02 00:00")
	session := PollSession{Submissions: []ParticipantAvailability{
		{ParticipantID: "alice", Slots: shared},
		{ParticipantID: "bob", Slots: shared},
	}}

	got := CommonRanges(session)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-06-01", got[0].Date)
	assert.Equal(t, Interval{Start: mustClock(t, "23:30"), End: DayMinutes}, got[0].Interval)
	assert.Equal(t, "2025-06-02", got[1].Date)
	assert.Equal(t, Interval{Start: 0, End: mustClock(t, "00:30")}, got[1].Interval)
}

func TestCommonRangesOrderIndependent(t *testing.T) {
	base := []ParticipantAvailability{
		{ParticipantID: "alice", Slots: slots(t,
			"2025-06-01 14:00", "2025-06-01 14:30", "2025-06-02 10:00", "2025-06-02 10:30")},
		{ParticipantID: "bob", Slots: slots(t,
			"2025-06-01 14:30", "2025-06-02 10:00", "2025-06-02 10:30", "2025-06-02 11:00")},
		{ParticipantID: "carol", Slots: slots(t,
			"2025-06-01 14:00", "2025-06-01 14:30", "2025-06-02 10:30", "2025-06-02 11:00")},
	}
	want := CommonRanges(PollSession{Submissions: base})
	require.NotEmpty(t, want)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		shuffled := make([]ParticipantAvailability, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		for j := range shuffled {
			slotsCopy := make([]Slot, len(shuffled[j].Slots))
			copy(slotsCopy, shuffled[j].Slots)
			rng.Shuffle(len(slotsCopy), func(a, b int) {
				slotsCopy[a], slotsCopy[b] = slotsCopy[b], slotsCopy[a]
			})
			shuffled[j].Slots = slotsCopy
		}

		assert.Equal(t, want, CommonRanges(PollSession{Submissions: shuffled}))
	}
}

func TestCommonRangesAreDisjointAndOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	dates := []string{"2025-06-01", "2025-06-02"}

	for round := 0; round < 100; round++ {
		subs := make([]ParticipantAvailability, 2+rng.Intn(3))
		for i := range subs {
			var ss []Slot
			for _, d := range dates {
				for m := 0; m < DayMinutes; m += SlotMinutes {
					if rng.Intn(2) == 0 {
						ss = append(ss, Slot{Date: d, Minute: m})
					}
				}
			}
			subs[i] = ParticipantAvailability{ParticipantID: string(rune('a' + i)), Slots: ss}
		}

		got := CommonRanges(PollSession{Submissions: subs})
		for i, r := range got {
			require.Less(t, r.Interval.Start, r.Interval.End)
			if i == 0 {
				continue
			}
			prev := got[i-1]
			if prev.Date == r.Date {
				// Strictly apart; touching ranges should have merged.
				require.Less(t, prev.Interval.End, r.Interval.Start,
					"round %d ranges %d,%d", round, i-1, i)
			} else {
				require.Less(t, prev.Date, r.Date)
			}
		}
	}
}

func TestConfirmRange(t *testing.T) {
	r := CommonRange{
		Date:           "2025-06-01",
		Interval:       Interval{Start: 870, End: 930},
		ParticipantIDs: []string{"alice", "bob"},
	}

	p := ConfirmRange(r, []string{"bob", "alice", "bob"})
	assert.Equal(t, Proposal{
		Date:           "2025-06-01",
		Interval:       Interval{Start: 870, End: 930},
		ParticipantIDs: []string{"alice", "bob"},
	}, p)
}
