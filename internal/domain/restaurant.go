package domain

import "time"

// RestaurantConfig represents a tenant: a restaurant with its opening hours
// and booking rules. It is read-only input to every slot computation; the
// core never mutates it outside the owner settings flow.
type RestaurantConfig struct {
	ID   int64
	Slug string // unique, URL-safe identifier used by the public booking page
	Name string

	OpeningHours WeekSchedule

	SlotIntervalMinutes     int
	MinGuestsPerReservation int
	MaxGuestsPerReservation int
	MaxReservationsPerSlot  int

	// Lead-time window: a slot is bookable when its start lies within
	// [now + min, now + max], both bounds inclusive.
	LeadTimeMinHours int
	LeadTimeMaxHours int

	// SubscriptionActive soft-disables a tenant; restaurants are never
	// hard-deleted.
	SubscriptionActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GuestsWithinLimits reports whether a guest count respects the tenant bounds.
func (c *RestaurantConfig) GuestsWithinLimits(guests int) bool {
	return guests >= c.MinGuestsPerReservation && guests <= c.MaxGuestsPerReservation
}

// Validate checks the booking rules and the opening hours, collecting all
// violations. Returns nil when the configuration is fully valid.
func (c *RestaurantConfig) Validate() *ValidationError {
	verr := &ValidationError{}

	if !IsAllowedSlotInterval(c.SlotIntervalMinutes) {
		verr.Add("slotIntervalMinutes: %d is not an allowed interval %v", c.SlotIntervalMinutes, AllowedSlotIntervals)
	}
	if c.MinGuestsPerReservation < MinGuestsLimit {
		verr.Add("minGuestsPerReservation: must be at least %d", MinGuestsLimit)
	}
	if c.MaxGuestsPerReservation > MaxGuestsLimit {
		verr.Add("maxGuestsPerReservation: must not exceed %d", MaxGuestsLimit)
	}
	if c.MinGuestsPerReservation > c.MaxGuestsPerReservation {
		verr.Add("minGuestsPerReservation: must not exceed maxGuestsPerReservation")
	}
	if c.MaxReservationsPerSlot < MinReservationsPerSlotLimit || c.MaxReservationsPerSlot > MaxReservationsPerSlotLimit {
		verr.Add("maxReservationsPerSlot: must be between %d and %d", MinReservationsPerSlotLimit, MaxReservationsPerSlotLimit)
	}
	if c.LeadTimeMinHours < 0 {
		verr.Add("reservationLeadTimeMinHours: must not be negative")
	}
	if c.LeadTimeMaxHours < 0 || c.LeadTimeMaxHours > MaxLeadTimeHours {
		verr.Add("reservationLeadTimeMaxHours: must be between 0 and %d", MaxLeadTimeHours)
	}
	if c.LeadTimeMinHours > c.LeadTimeMaxHours {
		verr.Add("reservationLeadTimeMinHours: must not exceed reservationLeadTimeMaxHours")
	}

	if scheduleErr := c.OpeningHours.Validate(); scheduleErr != nil {
		verr.Issues = append(verr.Issues, scheduleErr.Issues...)
	}

	if verr.HasIssues() {
		return verr
	}
	return nil
}
