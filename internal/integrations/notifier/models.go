package notifier

import (
	"time"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
)

// Event kinds published by the service
const (
	KindReservationCreated   = "reservation.created"
	KindReservationCancelled = "reservation.cancelled"
)

// Event снапшот бронирования и ресторана, публикуемый внешним потребителям
// (email-уведомления и т.п.)
type Event struct {
	Kind       string             `json:"kind"`
	OccurredAt time.Time          `json:"occurredAt"`
	Restaurant RestaurantSnapshot `json:"restaurant"`
	Booking    BookingSnapshot    `json:"reservation"`
}

// RestaurantSnapshot данные ресторана на момент события
type RestaurantSnapshot struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// BookingSnapshot данные бронирования на момент события
type BookingSnapshot struct {
	ID                 int64      `json:"id"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	Date               time.Time  `json:"date"`
	Guests             int        `json:"guests"`
	Status             string     `json:"status"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
}

func newEvent(kind string, res *domain.Reservation, cfg *domain.RestaurantConfig, now time.Time) Event {
	return Event{
		Kind:       kind,
		OccurredAt: now,
		Restaurant: RestaurantSnapshot{
			ID:   cfg.ID,
			Slug: cfg.Slug,
			Name: cfg.Name,
		},
		Booking: BookingSnapshot{
			ID:                 res.ID,
			FirstName:          res.FirstName,
			LastName:           res.LastName,
			Email:              res.Email,
			Phone:              res.Phone,
			Date:               res.Date,
			Guests:             res.Guests,
			Status:             string(res.Status),
			Notes:              res.Notes,
			CancellationReason: res.CancellationReason,
			CancelledAt:        res.CancelledAt,
		},
	}
}
