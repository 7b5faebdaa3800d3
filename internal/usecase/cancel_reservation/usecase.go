package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
	reservationRepo "github.com/adesombergh/yeety-book-test-sub000/internal/infra/storage/reservation"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/metrics"
)

// UseCase use case для self-service отмены бронирования по cancel-токену
type UseCase struct {
	reservationRepo ReservationRepository
	restaurantRepo  RestaurantRepository
	txManager       TransactionManager
	notifier        Notifier
	outcomes        OutcomeRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	restaurantRepo RestaurantRepository,
	txManager TransactionManager,
	notifier Notifier,
	outcomes OutcomeRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
		txManager:       txManager,
		notifier:        notifier,
		outcomes:        outcomes,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case отмены бронирования.
// Проверка статуса и запись отмены выполняются в одной транзакции с
// блокировкой строки: повторный клик по ссылке из письма получает
// ErrAlreadyCancelled, а не вторую запись cancelled_at.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelReservation: cancelling by token")

	// 1. Валидация входных данных
	if req.Token == "" {
		return nil, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем и отменяем в одной транзакции
	var cancelled *domain.Reservation
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := uc.reservationRepo.GetByCancelToken(txCtx, req.Token)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if res.IsCancelled() {
			return ErrAlreadyCancelled
		}

		// Прошедшие бронирования отменять нельзя, даже если статус ещё pending
		if res.Date.Before(now) {
			return ErrPastReservation
		}

		if !res.CanBeCancelled() {
			return ErrNotCancellable
		}

		if err := uc.reservationRepo.Cancel(txCtx, res.ID, req.Reason); err != nil {
			if errors.Is(err, reservationRepo.ErrAlreadyCancelled) {
				return ErrAlreadyCancelled
			}
			return fmt.Errorf("%w: failed to cancel reservation: %v", ErrInternal, err)
		}

		// Перечитываем строку, чтобы вернуть фактический cancelled_at
		updated, err := uc.reservationRepo.GetByID(txCtx, res.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to reload reservation: %v", ErrInternal, err)
		}

		cancelled = updated
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound),
			errors.Is(err, ErrAlreadyCancelled),
			errors.Is(err, ErrPastReservation),
			errors.Is(err, ErrNotCancellable):
			uc.logger.Warn("CancelReservation: rejected: %v", err)
		default:
			uc.logger.Error("CancelReservation: failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CancelReservation: cancelled reservation id=%d", cancelled.ID)
	uc.outcomes.IncReservationOutcome(metrics.OutcomeCancelled)

	// 4. Публикуем событие после коммита; ошибка доставки не влияет на результат
	if cfg, err := uc.restaurantRepo.GetByID(ctx, cancelled.RestaurantID); err != nil {
		uc.logger.Error("CancelReservation: failed to load restaurant id=%d for event: %v",
			cancelled.RestaurantID, err)
	} else if err := uc.notifier.ReservationCancelled(cancelled, cfg); err != nil {
		uc.logger.Error("CancelReservation: failed to publish cancelled event for id=%d: %v",
			cancelled.ID, err)
	}

	resp := &Response{
		ID:     cancelled.ID,
		Status: string(cancelled.Status),
	}
	if cancelled.CancelledAt != nil {
		resp.CancelledAt = *cancelled.CancelledAt
	}
	return resp, nil
}
