package schedule

import (
	"sort"
)

// ParticipantAvailability is one member's free-time submission for a poll.
// A resubmission replaces the previous one; the engine never merges two
// submissions from the same participant.
type ParticipantAvailability struct {
	ParticipantID string
	Slots         []Slot
}

// PollSession is the full set of submissions an intersection runs over. It is
// passed in by the caller on every invocation; the engine keeps no state
// between calls, so a late submission simply means the caller recomputes.
type PollSession struct {
	Submissions []ParticipantAvailability
}

// CommonRange is a merged contiguous window at which every participant in the
// poll is free.
type CommonRange struct {
	Date           string // "YYYY-MM-DD"
	Interval       Interval
	ParticipantIDs []string
}

// Proposal is a booking candidate produced from a confirmed common range.
// It has not been checked against the live room calendar: the poll result may
// be stale relative to bookings made while the poll was open, so the caller
// must still run it through the validator before persisting.
type Proposal struct {
	Date           string
	Interval       Interval
	ParticipantIDs []string
}

// CommonRanges computes the ordered, non-overlapping, non-adjacent windows at
// which all participants are free. Zero submissions yield no ranges (nothing
// is common to no one); a single submission yields that participant's own
// slots, merged. An empty intersection is an empty result, not an error.
func CommonRanges(session PollSession) []CommonRange {
	if len(session.Submissions) == 0 {
		return nil
	}

	common := intersect(session.Submissions)
	if len(common) == 0 {
		return nil
	}

	sort.Slice(common, func(i, j int) bool {
		return common[i].Before(common[j])
	})

	ids := participantIDs(session.Submissions)
	return mergeRuns(common, ids)
}

// ConfirmRange converts one chosen common range plus the participant roster
// into a booking proposal.
func ConfirmRange(r CommonRange, roster []string) Proposal {
	ids := make([]string, 0, len(roster))
	seen := make(map[string]struct{}, len(roster))
	for _, id := range roster {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return Proposal{
		Date:           r.Date,
		Interval:       r.Interval,
		ParticipantIDs: ids,
	}
}

// intersect returns the slots present in every submission. Duplicate slots
// within a single submission count once.
func intersect(subs []ParticipantAvailability) []Slot {
	counts := make(map[Slot]int)
	for _, sub := range subs {
		seen := make(map[Slot]struct{}, len(sub.Slots))
		for _, slot := range sub.Slots {
			if _, ok := seen[slot]; ok {
				continue
			}
			seen[slot] = struct{}{}
			counts[slot]++
		}
	}

	var common []Slot
	for slot, n := range counts {
		if n == len(subs) {
			common = append(common, slot)
		}
	}
	return common
}

// mergeRuns fuses sorted slots into contiguous ranges: a slot extends the
// current range iff it is on the same date and exactly one granularity step
// after the previous slot. Anything else closes the range with
// end = previous slot + SlotMinutes. Single pass, no backtracking, so the
// output is chronological and no two emitted ranges are re-mergeable.
func mergeRuns(slots []Slot, ids []string) []CommonRange {
	var ranges []CommonRange

	runStart := slots[0]
	prev := slots[0]

	emit := func() {
		ranges = append(ranges, CommonRange{
			Date:           runStart.Date,
			Interval:       Interval{Start: runStart.Minute, End: prev.Minute + SlotMinutes},
			ParticipantIDs: ids,
		})
	}

	for _, cur := range slots[1:] {
		if cur.Date == prev.Date && cur.Minute == prev.Minute+SlotMinutes {
			prev = cur
			continue
		}
		emit()
		runStart = cur
		prev = cur
	}
	emit()

	return ranges
}

func participantIDs(subs []ParticipantAvailability) []string {
	ids := make([]string, len(subs))
	for i, sub := range subs {
		ids[i] = sub.ParticipantID
	}
	sort.Strings(ids)
	return ids
}
