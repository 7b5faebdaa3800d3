package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
	reservationRepo "github.com/adesombergh/yeety-book-test-sub000/internal/infra/storage/reservation"
	restaurantRepo "github.com/adesombergh/yeety-book-test-sub000/internal/infra/storage/restaurant"
	"github.com/adesombergh/yeety-book-test-sub000/internal/service/reservations/models"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/metrics"
)

// Service сервис для работы с бронированиями из кабинета владельца
type Service struct {
	reservationRepo ReservationRepository
	restaurantRepo  RestaurantRepository
	notifier        Notifier
	outcomes        OutcomeRecorder
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	restaurantRepo RestaurantRepository,
	notifier Notifier,
	outcomes OutcomeRecorder,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
		notifier:        notifier,
		outcomes:        outcomes,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// GetRestaurantReservations получает бронирования ресторана с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых бронирований
//
// Примеры использования:
// - Все активные бронирования: GetRestaurantReservations(ctx, &GetRestaurantReservationsRequest{RestaurantID: 123})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeCancelled = true
func (s *Service) GetRestaurantReservations(ctx context.Context, req *models.GetRestaurantReservationsRequest) (*models.ReservationListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetRestaurantReservations: fetching reservations for restaurant=%d", req.RestaurantID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	// Проверяем, что ресторан существует
	if _, err := s.restaurantRepo.GetByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("GetRestaurantReservations: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("GetRestaurantReservations: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: GetRestaurantReservations - failed to get restaurant: %v", ErrInternal, err)
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRestaurantReservations: invalid filter for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRestaurantReservations: repository error for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: GetRestaurantReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRestaurantReservations: successfully fetched %d reservations for restaurant=%d",
		len(reservations), req.RestaurantID)
	return models.FromDomainReservationList(reservations), nil
}

// UpdateStatus обновляет статус бронирования по таблице переходов:
// pending -> confirmed | cancelled, confirmed -> completed | cancelled.
// Запись выполняется compare-and-swap'ом по текущему статусу, поэтому два
// конкурентных перехода из одного статуса не могут пройти оба.
func (s *Service) UpdateStatus(ctx context.Context, reservationID int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s", reservationID, req.Status)

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, reservationID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	// Получаем бронирование
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем переход по таблице переходов
	if !reservation.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for reservation id=%d",
			reservation.Status, newStatus, reservationID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, newStatus)
	}

	// Отмена владельцем идёт через Cancel, чтобы записать причину и cancelled_at
	if newStatus == domain.StatusCancelled {
		if err := s.reservationRepo.Cancel(ctx, reservationID, req.Reason); err != nil {
			if errors.Is(err, reservationRepo.ErrAlreadyCancelled) {
				s.logger.Warn("UpdateStatus: reservation id=%d status changed concurrently", reservationID)
				return nil, ErrStatusConflict
			}
			s.logger.Error("UpdateStatus: failed to cancel reservation id=%d: %v", reservationID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	} else {
		if err := s.reservationRepo.UpdateStatus(ctx, reservationID, reservation.Status, newStatus); err != nil {
			if errors.Is(err, reservationRepo.ErrStatusConflict) {
				s.logger.Warn("UpdateStatus: reservation id=%d status changed concurrently", reservationID)
				return nil, ErrStatusConflict
			}
			s.logger.Error("UpdateStatus: failed to update reservation id=%d: %v", reservationID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	// Перечитываем строку для актуальных status/cancelled_at/updated_at
	updated, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - failed to reload: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", reservationID, newStatus)

	// Публикуем событие отмены; ошибка доставки не влияет на результат
	if newStatus == domain.StatusCancelled {
		s.outcomes.IncReservationOutcome(metrics.OutcomeCancelled)
		if cfg, err := s.restaurantRepo.GetByID(ctx, updated.RestaurantID); err != nil {
			s.logger.Error("UpdateStatus: failed to load restaurant id=%d for event: %v", updated.RestaurantID, err)
		} else if err := s.notifier.ReservationCancelled(updated, cfg); err != nil {
			s.logger.Error("UpdateStatus: failed to publish cancelled event for id=%d: %v", reservationID, err)
		}
	}

	return models.FromDomainReservation(updated), nil
}
