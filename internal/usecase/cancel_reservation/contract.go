package cancel_reservation

import (
	"context"
	"time"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByCancelToken получает бронирование по токену; внутри транзакции строка блокируется
	GetByCancelToken(ctx context.Context, token string) (*domain.Reservation, error)
	// Cancel переводит бронирование в статус cancelled с проверкой текущего статуса
	Cancel(ctx context.Context, id int64, reason *string) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RestaurantConfig, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс публикации событий бронирования
type Notifier interface {
	ReservationCancelled(res *domain.Reservation, cfg *domain.RestaurantConfig) error
}

// OutcomeRecorder интерфейс счетчиков бизнес-исходов бронирования
type OutcomeRecorder interface {
	IncReservationOutcome(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
