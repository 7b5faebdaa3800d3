package reservations

import (
	"context"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByRestaurantWithFilter(ctx context.Context, filter domain.RestaurantReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, reason *string) error
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RestaurantConfig, error)
}

// Notifier интерфейс публикации событий бронирования
type Notifier interface {
	ReservationCancelled(res *domain.Reservation, cfg *domain.RestaurantConfig) error
}

// OutcomeRecorder интерфейс счетчиков бизнес-исходов бронирования
type OutcomeRecorder interface {
	IncReservationOutcome(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
