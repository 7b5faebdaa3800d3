package create_reservation

import (
	"context"
	"time"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// TryReserve атомарно проверяет вместимость слота и вставляет бронирование.
	// Обязана вызываться внутри транзакции, открытой через TransactionManager.
	TryReserve(ctx context.Context, res *domain.Reservation, maxPerSlot int) (*domain.Reservation, error)
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.RestaurantConfig, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс публикации событий бронирования.
// Вызывается после коммита транзакции; ошибка публикации только логируется.
type Notifier interface {
	ReservationCreated(res *domain.Reservation, cfg *domain.RestaurantConfig) error
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
