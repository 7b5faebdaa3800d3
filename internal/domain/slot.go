package domain

import (
	"time"

	"github.com/adesombergh/yeety-book-test-sub000/pkg/types"
)

// AvailableSlot represents one candidate time slot together with its
// remaining capacity at the moment of computation.
type AvailableSlot struct {
	StartTime         types.TimeString
	At                time.Time // absolute slot start (date + time)
	RemainingCapacity int
	TotalCapacity     int
}

// IsAvailable returns true if at least one reservation still fits.
func (s *AvailableSlot) IsAvailable() bool {
	return s.RemainingCapacity > 0
}

// IsFull returns true if the slot has no remaining capacity.
func (s *AvailableSlot) IsFull() bool {
	return s.RemainingCapacity <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100).
func (s *AvailableSlot) OccupancyRate() float64 {
	if s.TotalCapacity == 0 {
		return 0
	}
	occupied := s.TotalCapacity - s.RemainingCapacity
	return float64(occupied) / float64(s.TotalCapacity) * 100
}
