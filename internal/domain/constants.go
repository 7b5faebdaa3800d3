package domain

// Default configuration values applied at tenant onboarding
const (
	DefaultSlotIntervalMinutes     = 30
	DefaultMinGuestsPerReservation = 1
	DefaultMaxGuestsPerReservation = 8
	DefaultMaxReservationsPerSlot  = 1
	DefaultLeadTimeMinHours        = 2
	DefaultLeadTimeMaxHours        = 720 // 30 days
)

// Business validation constants
const (
	MinGuestsLimit              = 1
	MaxGuestsLimit              = 100
	MinReservationsPerSlotLimit = 1
	MaxReservationsPerSlotLimit = 100
	MaxLeadTimeHours            = 8760 // 1 year
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// AllowedSlotIntervals перечисление допустимых значений шага слотов (в минутах)
var AllowedSlotIntervals = []int{15, 30, 45, 60, 90, 120}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не учитываемых при подсчёте занятости слота
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих место в слоте
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// IsAllowedSlotInterval reports whether the interval is one of the supported steps.
func IsAllowedSlotInterval(minutes int) bool {
	for _, v := range AllowedSlotIntervals {
		if v == minutes {
			return true
		}
	}
	return false
}
