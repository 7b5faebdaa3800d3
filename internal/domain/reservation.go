package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// Reservation represents a single accepted booking at a restaurant
type Reservation struct {
	ID           int64
	RestaurantID int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Date         time.Time // Absolute slot start (day + slot time)
	Guests       int
	Notes        *string
	Status       ReservationStatus

	// CancelToken is the opaque secret issued at creation time. Possession
	// of the token is the only credential for self-service cancellation.
	CancelToken string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies a spot in its slot
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation may still transition to cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsTerminal returns true for statuses that allow no further transition
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// IsValid returns true if the value is one of the known statuses
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status machine permits moving from s
// to target. Transitions are monotonic: pending/confirmed may move to
// cancelled or completed, pending may be confirmed, terminal statuses
// never change.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	if s.IsTerminal() || s == target {
		return false
	}
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled || target == StatusCompleted
	case StatusConfirmed:
		return target == StatusCancelled || target == StatusCompleted
	default:
		return false
	}
}

// RestaurantReservationsFilter фильтр для выборки бронирований ресторана
type RestaurantReservationsFilter struct {
	RestaurantID     int64              // Обязательный параметр
	StartDate        *time.Time         // Начало периода (опционально)
	EndDate          *time.Time         // Конец периода (опционально)
	Status           *ReservationStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отменённые бронирования
}
