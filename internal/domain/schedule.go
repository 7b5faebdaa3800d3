package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/adesombergh/yeety-book-test-sub000/pkg/types"
)

// ServicePeriod is a contiguous open/close range within a single day,
// e.g. a lunch or dinner seating. A close time of "00:00" means midnight
// at the end of this day.
type ServicePeriod struct {
	Open  types.TimeString `json:"open"`
	Close types.TimeString `json:"close"`
}

// DaySchedule describes one weekday: either closed, or one or more
// non-overlapping service periods.
type DaySchedule struct {
	Closed  bool            `json:"closed"`
	Periods []ServicePeriod `json:"periods"`
}

// WeekSchedule holds the schedule for all seven weekdays. The fixed fields
// guarantee the "exactly 7 days" invariant at the type level; the stored
// JSON is decoded into this struct at the persistence boundary.
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ScheduleFor returns the day schedule for the given weekday.
func (w *WeekSchedule) ScheduleFor(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// ValidationError aggregates every violated rule of a configuration update
// so a settings form can highlight all problems at once.
type ValidationError struct {
	Issues []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("domain: invalid configuration: %s", strings.Join(e.Issues, "; "))
}

// Add appends a formatted issue.
func (e *ValidationError) Add(format string, v ...interface{}) {
	e.Issues = append(e.Issues, fmt.Sprintf(format, v...))
}

// HasIssues returns true if at least one rule was violated.
func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}

// Validate checks every day of the week against the schedule invariants
// and collects all violations instead of stopping at the first one.
func (w *WeekSchedule) Validate() *ValidationError {
	verr := &ValidationError{}

	days := []struct {
		name string
		day  DaySchedule
	}{
		{"monday", w.Monday},
		{"tuesday", w.Tuesday},
		{"wednesday", w.Wednesday},
		{"thursday", w.Thursday},
		{"friday", w.Friday},
		{"saturday", w.Saturday},
		{"sunday", w.Sunday},
	}

	for _, d := range days {
		validateDaySchedule(d.name, d.day, verr)
	}

	if verr.HasIssues() {
		return verr
	}
	return nil
}

func validateDaySchedule(name string, day DaySchedule, verr *ValidationError) {
	if day.Closed && len(day.Periods) > 0 {
		verr.Add("%s: closed day must not define service periods", name)
		return
	}
	if !day.Closed && len(day.Periods) == 0 {
		verr.Add("%s: open day must define at least one service period", name)
		return
	}

	type span struct{ open, close int }
	spans := make([]span, 0, len(day.Periods))

	for i, p := range day.Periods {
		if err := p.Open.Validate(); err != nil {
			verr.Add("%s: period %d: invalid open time %q", name, i+1, p.Open)
			continue
		}
		if err := p.Close.Validate(); err != nil {
			verr.Add("%s: period %d: invalid close time %q", name, i+1, p.Close)
			continue
		}

		openMin, _ := p.Open.Minutes()
		closeMin, _ := p.Close.Minutes()
		// "00:00" as a close time means midnight at the end of the day.
		// Periods spanning midnight (e.g. 22:00-02:00) are not supported.
		if closeMin == 0 {
			closeMin = types.MinutesPerDay
		}

		if openMin >= closeMin {
			verr.Add("%s: period %d (%s-%s): open time must be strictly before close time, periods may not span midnight",
				name, i+1, p.Open, p.Close)
			continue
		}

		spans = append(spans, span{open: openMin, close: closeMin})
	}

	// Pairwise overlap check over the periods that were individually valid
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spans[i].open < spans[j].close && spans[j].open < spans[i].close {
				verr.Add("%s: periods %d and %d overlap", name, i+1, j+1)
			}
		}
	}
}
