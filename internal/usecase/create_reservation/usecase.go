package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
	reservationRepo "github.com/adesombergh/yeety-book-test-sub000/internal/infra/storage/reservation"
	restaurantRepo "github.com/adesombergh/yeety-book-test-sub000/internal/infra/storage/restaurant"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/metrics"
)

// UseCase use case для создания бронирования через публичную страницу
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

// Execute выполняет use case создания бронирования.
// Проверка вместимости слота и вставка строки выполняются в одной
// сериализуемой транзакции - две конкурентные заявки на последнее место
// не могут пройти проверку одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: restaurant=%s, date=%s, time=%s, guests=%d",
		req.Slug, req.Date.Format(domain.DateFormat), req.StartTime, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем конфигурацию ресторана
	cfg, err := uc.restaurantRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("CreateReservation: restaurant %s not found", req.Slug)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("CreateReservation: failed to get restaurant %s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	if !cfg.SubscriptionActive {
		uc.logger.Warn("CreateReservation: restaurant %s is inactive", req.Slug)
		return nil, ErrRestaurantInactive
	}

	// 4. Проверяем число гостей относительно границ ресторана
	if err := validateGuests(cfg, req.Guests); err != nil {
		uc.logger.Warn("CreateReservation: guest validation failed: %v", err)
		return nil, err
	}

	// 5. Проверяем, что запрошенное время совпадает со сгенерированным слотом
	day := cfg.OpeningHours.ScheduleFor(req.Date.Weekday())
	if day.Closed || len(day.Periods) == 0 {
		uc.logger.Warn("CreateReservation: restaurant %s is closed on %s",
			req.Slug, req.Date.Format(domain.DateFormat))
		return nil, ErrRestaurantClosed
	}

	candidates, err := domain.GenerateCandidateSlots(req.Date, day, cfg.SlotIntervalMinutes)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	slotAt, err := req.StartTime.OnDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if !domain.ContainsSlot(candidates, slotAt) {
		uc.logger.Warn("CreateReservation: time %s is not a bookable slot for restaurant=%s",
			req.StartTime, req.Slug)
		return nil, ErrInvalidSlot
	}

	// 6. Проверяем окно бронирования относительно текущего момента
	if !domain.WithinBookingWindow(slotAt, now, cfg.LeadTimeMinHours, cfg.LeadTimeMaxHours) {
		uc.logger.Warn("CreateReservation: slot %s outside booking window [%dh, %dh] for restaurant=%s",
			slotAt.Format("2006-01-02 15:04"), cfg.LeadTimeMinHours, cfg.LeadTimeMaxHours, req.Slug)
		return nil, ErrOutsideBookingWindow
	}

	// 7. Собираем бронирование с cancel-токеном
	reservation := &domain.Reservation{
		RestaurantID: cfg.ID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Date:         slotAt,
		Guests:       req.Guests,
		Notes:        req.Notes,
		Status:       domain.StatusPending,
		CancelToken:  uuid.NewString(),
	}

	// 8. Атомарная проверка вместимости и вставка в сериализуемой транзакции
	var created *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := uc.reservationRepo.TryReserve(txCtx, reservation, cfg.MaxReservationsPerSlot)
		if err != nil {
			return err
		}
		created = res
		return nil
	})

	if err != nil {
		if errors.Is(err, reservationRepo.ErrSlotFull) {
			uc.logger.Warn("CreateReservation: slot %s full for restaurant=%s",
				slotAt.Format("2006-01-02 15:04"), req.Slug)
			uc.outcomes.IncReservationOutcome(metrics.OutcomeSlotFull)
			return nil, ErrSlotFull
		}
		uc.logger.Error("CreateReservation: failed to reserve slot: %v", err)
		return nil, fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: created reservation id=%d for restaurant=%s", created.ID, req.Slug)
	uc.outcomes.IncReservationOutcome(metrics.OutcomeCreated)

	// 9. Публикуем событие после коммита; ошибка доставки не влияет на результат
	if err := uc.notifier.ReservationCreated(created, cfg); err != nil {
		uc.logger.Error("CreateReservation: failed to publish created event for id=%d: %v", created.ID, err)
	}

	return &Response{
		ID:           created.ID,
		RestaurantID: created.RestaurantID,
		FirstName:    created.FirstName,
		LastName:     created.LastName,
		Email:        created.Email,
		Phone:        created.Phone,
		Date:         created.Date,
		Guests:       created.Guests,
		Notes:        created.Notes,
		Status:       string(created.Status),
		CancelToken:  created.CancelToken,
		CreatedAt:    created.CreatedAt,
		UpdatedAt:    created.UpdatedAt,
	}, nil
}
