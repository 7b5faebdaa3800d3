package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adesombergh/yeety-book-test-sub000/pkg/types"
)

func slotTimes(slots []CandidateSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime.String()
	}
	return out
}

func TestGenerateCandidateSlots(t *testing.T) {
	date := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC) // Tuesday

	t.Run("two service periods with hourly interval", func(t *testing.T) {
		day := DaySchedule{Periods: []ServicePeriod{
			{Open: "12:00", Close: "14:30"},
			{Open: "19:00", Close: "22:30"},
		}}

		slots, err := GenerateCandidateSlots(date, day, 60)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"12:00", "13:00", "14:00", "19:00", "20:00", "21:00", "22:00"},
			slotTimes(slots))
	})

	t.Run("slot starting before close is kept even if interval crosses close", func(t *testing.T) {
		// 14:00 is kept: the start precedes close even though the interval overruns 14:30
		day := DaySchedule{Periods: []ServicePeriod{{Open: "12:00", Close: "14:30"}}}

		slots, err := GenerateCandidateSlots(date, day, 90)
		require.NoError(t, err)
		assert.Equal(t, []string{"12:00", "13:30"}, slotTimes(slots))
	})

	t.Run("interval not dividing period evenly", func(t *testing.T) {
		day := DaySchedule{Periods: []ServicePeriod{{Open: "12:00", Close: "14:00"}}}

		slots, err := GenerateCandidateSlots(date, day, 45)
		require.NoError(t, err)
		assert.Equal(t, []string{"12:00", "12:45", "13:30"}, slotTimes(slots))
	})

	t.Run("midnight close walks to the end of the day", func(t *testing.T) {
		day := DaySchedule{Periods: []ServicePeriod{{Open: "22:00", Close: "00:00"}}}

		slots, err := GenerateCandidateSlots(date, day, 60)
		require.NoError(t, err)
		assert.Equal(t, []string{"22:00", "23:00"}, slotTimes(slots))
	})

	t.Run("closed day yields no slots", func(t *testing.T) {
		slots, err := GenerateCandidateSlots(date, DaySchedule{Closed: true}, 30)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("open day without periods yields no slots", func(t *testing.T) {
		slots, err := GenerateCandidateSlots(date, DaySchedule{}, 30)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("deterministic and sorted", func(t *testing.T) {
		day := DaySchedule{Periods: []ServicePeriod{
			{Open: "19:00", Close: "22:00"},
			{Open: "12:00", Close: "14:00"},
		}}

		first, err := GenerateCandidateSlots(date, day, 30)
		require.NoError(t, err)
		second, err := GenerateCandidateSlots(date, day, 30)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		for i := 1; i < len(first); i++ {
			assert.True(t, first[i-1].At.Before(first[i].At), "slots must be strictly increasing")
		}
		assert.Equal(t, "12:00", first[0].StartTime.String())
	})

	t.Run("absolute time carries the requested date", func(t *testing.T) {
		day := DaySchedule{Periods: []ServicePeriod{{Open: "19:00", Close: "20:00"}}}

		slots, err := GenerateCandidateSlots(date, day, 60)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, time.Date(2026, 3, 17, 19, 0, 0, 0, time.UTC), slots[0].At)
	})
}

func TestFilterByLeadTime(t *testing.T) {
	date := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	day := DaySchedule{Periods: []ServicePeriod{{Open: "10:00", Close: "22:00"}}}
	slots, err := GenerateCandidateSlots(date, day, 60)
	require.NoError(t, err)

	t.Run("both bounds inclusive", func(t *testing.T) {
		// now+2h = 12:00 sits exactly on the lower bound, now+8h = 18:00 on the upper
		now := time.Date(2026, 3, 17, 10, 0, 0, 0, time.UTC)
		got := FilterByLeadTime(slots, now, 2, 8)
		times := make([]string, len(got))
		for i, s := range got {
			times[i] = s.StartTime.String()
		}
		assert.Equal(t, []string{"12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00"}, times)
	})

	t.Run("window entirely in the past keeps nothing", func(t *testing.T) {
		now := time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC)
		assert.Empty(t, FilterByLeadTime(slots, now, 2, 8))
	})

	t.Run("far slot enters the window as now advances toward it", func(t *testing.T) {
		// The evening before, even the last slot lies beyond now+8h
		early := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, FilterByLeadTime(slots, early, 2, 8))

		// At 03:00 the window [05:00, 11:00] has reached the morning slots
		later := time.Date(2026, 3, 17, 3, 0, 0, 0, time.UTC)
		got := FilterByLeadTime(slots, later, 2, 8)
		require.NotEmpty(t, got)
		assert.Equal(t, "10:00", got[0].StartTime.String())
		assert.Equal(t, "11:00", got[len(got)-1].StartTime.String())
	})

	t.Run("widening the window never removes slots", func(t *testing.T) {
		now := time.Date(2026, 3, 17, 8, 0, 0, 0, time.UTC)
		narrow := FilterByLeadTime(slots, now, 4, 6)
		wide := FilterByLeadTime(slots, now, 2, 10)

		require.True(t, len(wide) >= len(narrow))
		for _, s := range narrow {
			assert.True(t, ContainsSlot(wide, s.At), "slot %s lost when window widened", s.StartTime)
		}
	})
}

func TestWithinBookingWindow(t *testing.T) {
	now := time.Date(2026, 3, 17, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "exactly at lower bound", at: now.Add(2 * time.Hour), want: true},
		{name: "exactly at upper bound", at: now.Add(720 * time.Hour), want: true},
		{name: "one minute inside", at: now.Add(2*time.Hour + time.Minute), want: true},
		{name: "one minute too soon", at: now.Add(2*time.Hour - time.Minute), want: false},
		{name: "one minute too late", at: now.Add(720*time.Hour + time.Minute), want: false},
		{name: "in the past", at: now.Add(-time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinBookingWindow(tt.at, now, 2, 720))
		})
	}
}

func TestResolveAvailability(t *testing.T) {
	date := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	at := func(hm types.TimeString) time.Time {
		abs, err := hm.OnDate(date)
		require.NoError(t, err)
		return abs
	}

	slots := []CandidateSlot{
		{StartTime: "19:00", At: at("19:00")},
		{StartTime: "20:00", At: at("20:00")},
		{StartTime: "21:00", At: at("21:00")},
	}

	reservations := []*Reservation{
		{Date: at("19:00"), Status: StatusPending},
		{Date: at("19:00"), Status: StatusConfirmed},
		{Date: at("20:00"), Status: StatusConfirmed},
		{Date: at("20:00"), Status: StatusCancelled}, // does not occupy a spot
		{Date: at("20:00"), Status: StatusCompleted},
	}

	got := ResolveAvailability(slots, reservations, 2)
	require.Len(t, got, 3)

	assert.Equal(t, 0, got[0].RemainingCapacity)
	assert.False(t, got[0].IsAvailable())

	assert.Equal(t, 0, got[1].RemainingCapacity)
	assert.Equal(t, 2, got[1].TotalCapacity)

	assert.Equal(t, 2, got[2].RemainingCapacity)
	assert.True(t, got[2].IsAvailable())

	// occupied + remaining must equal the slot capacity
	counts := map[int64]int{}
	for _, res := range reservations {
		if res.IsActive() {
			counts[res.Date.Unix()]++
		}
	}
	for _, s := range got {
		occupied := counts[s.At.Unix()]
		if occupied > s.TotalCapacity {
			occupied = s.TotalCapacity
		}
		assert.Equal(t, s.TotalCapacity, occupied+s.RemainingCapacity)
	}
}

func TestContainsSlot(t *testing.T) {
	date := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	day := DaySchedule{Periods: []ServicePeriod{{Open: "12:00", Close: "14:00"}}}
	slots, err := GenerateCandidateSlots(date, day, 30)
	require.NoError(t, err)

	assert.True(t, ContainsSlot(slots, time.Date(2026, 3, 17, 12, 30, 0, 0, time.UTC)))
	assert.False(t, ContainsSlot(slots, time.Date(2026, 3, 17, 12, 15, 0, 0, time.UTC)))
	assert.False(t, ContainsSlot(slots, time.Date(2026, 3, 17, 14, 0, 0, 0, time.UTC)))
}
