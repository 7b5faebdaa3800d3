package domain

import (
	"sort"
	"time"

	"github.com/adesombergh/yeety-book-test-sub000/pkg/types"
)

// CandidateSlot is one bookable point in time produced by the slot
// generator, before capacity is taken into account.
type CandidateSlot struct {
	StartTime types.TimeString
	At        time.Time // absolute slot start on the requested date
}

// GenerateCandidateSlots produces the ordered sequence of candidate slots
// for one date. For each service period the walk starts at the period's
// open time and advances in steps of intervalMinutes; a slot is emitted
// while its start is strictly before the period's close time. A close time
// of "00:00" is treated as 24:00, the end of the calendar day. The function
// is pure: identical inputs always yield identical output.
func GenerateCandidateSlots(date time.Time, day DaySchedule, intervalMinutes int) ([]CandidateSlot, error) {
	if day.Closed || len(day.Periods) == 0 || intervalMinutes <= 0 {
		return []CandidateSlot{}, nil
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	slots := make([]CandidateSlot, 0)
	for _, period := range day.Periods {
		openMin, err := period.Open.Minutes()
		if err != nil {
			return nil, err
		}
		closeMin, err := period.Close.Minutes()
		if err != nil {
			return nil, err
		}
		if closeMin == 0 {
			closeMin = types.MinutesPerDay
		}

		for m := openMin; m < closeMin; m += intervalMinutes {
			startTime, err := types.FromMinutes(m)
			if err != nil {
				return nil, err
			}
			slots = append(slots, CandidateSlot{
				StartTime: startTime,
				At:        midnight.Add(time.Duration(m) * time.Minute),
			})
		}
	}

	// Periods are configured non-overlapping, so sorting by absolute time
	// yields a strictly increasing sequence.
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].At.Before(slots[j].At)
	})

	return slots, nil
}

// FilterByLeadTime keeps the slots whose absolute start lies within the
// booking window [now + minHours, now + maxHours]. Both bounds are
// inclusive. The window slides with wall-clock time, so the result must be
// recomputed for every request and never cached.
func FilterByLeadTime(slots []CandidateSlot, now time.Time, minHours, maxHours int) []CandidateSlot {
	earliest := now.Add(time.Duration(minHours) * time.Hour)
	latest := now.Add(time.Duration(maxHours) * time.Hour)

	filtered := make([]CandidateSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.At.Before(earliest) || slot.At.After(latest) {
			continue
		}
		filtered = append(filtered, slot)
	}
	return filtered
}

// WithinBookingWindow reports whether a single slot start satisfies the
// lead-time window, both bounds inclusive.
func WithinBookingWindow(at, now time.Time, minHours, maxHours int) bool {
	earliest := now.Add(time.Duration(minHours) * time.Hour)
	latest := now.Add(time.Duration(maxHours) * time.Hour)
	return !at.Before(earliest) && !at.After(latest)
}

// ResolveAvailability cross-references candidate slots with the existing
// reservations of the same date. Reservations are bucketed by their exact
// slot start; cancelled ones do not count. For each slot
// remaining = max(0, maxPerSlot - count).
func ResolveAvailability(slots []CandidateSlot, reservations []*Reservation, maxPerSlot int) []AvailableSlot {
	counts := make(map[int64]int)
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		counts[res.Date.Unix()]++
	}

	result := make([]AvailableSlot, len(slots))
	for i, slot := range slots {
		remaining := maxPerSlot - counts[slot.At.Unix()]
		if remaining < 0 {
			remaining = 0
		}
		result[i] = AvailableSlot{
			StartTime:         slot.StartTime,
			At:                slot.At,
			RemainingCapacity: remaining,
			TotalCapacity:     maxPerSlot,
		}
	}
	return result
}

// ContainsSlot reports whether at matches the start of one of the slots.
func ContainsSlot(slots []CandidateSlot, at time.Time) bool {
	for _, slot := range slots {
		if slot.At.Equal(at) {
			return true
		}
	}
	return false
}
