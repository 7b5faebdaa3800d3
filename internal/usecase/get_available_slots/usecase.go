package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
	restaurantRepo "github.com/adesombergh/yeety-book-test-sub000/internal/infra/storage/restaurant"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/ptr"
)

// UseCase use case для получения доступных слотов публичной страницы бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	restaurantRepo  RestaurantRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	restaurantRepo RestaurantRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Окно бронирования зависит от текущего времени, поэтому результат
// пересчитывается на каждый запрос и не подлежит кешированию.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: restaurant=%s, date=%s",
		req.Slug, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем конфигурацию ресторана
	cfg, err := uc.restaurantRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("GetAvailableSlots: restaurant %s not found", req.Slug)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get restaurant %s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	if !cfg.SubscriptionActive {
		uc.logger.Warn("GetAvailableSlots: restaurant %s is inactive", req.Slug)
		return nil, ErrRestaurantInactive
	}

	// 4. Генерируем кандидатные слоты по расписанию дня
	day := cfg.OpeningHours.ScheduleFor(req.Date.Weekday())
	candidates, err := domain.GenerateCandidateSlots(req.Date, day, cfg.SlotIntervalMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 5. Отфильтровываем слоты вне окна бронирования
	candidates = domain.FilterByLeadTime(candidates, now, cfg.LeadTimeMinHours, cfg.LeadTimeMaxHours)

	if len(candidates) == 0 {
		uc.logger.Info("GetAvailableSlots: no bookable slots for restaurant=%s date=%s",
			req.Slug, req.Date.Format(domain.DateFormat))
		return &Response{Slug: req.Slug, Date: req.Date, Slots: []Slot{}}, nil
	}

	// 6. Получаем активные бронирования на эту дату
	dayStart, dayEnd := dayBounds(req.Date)
	reservations, err := uc.reservationRepo.GetByRestaurantWithFilter(ctx, domain.RestaurantReservationsFilter{
		RestaurantID:     cfg.ID,
		StartDate:        ptr.Ptr(dayStart),
		EndDate:          ptr.Ptr(dayEnd),
		IncludeCancelled: false, // Отменённые бронирования не занимают места
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 7. Вычисляем остаточную вместимость каждого слота
	available := domain.ResolveAvailability(candidates, reservations, cfg.MaxReservationsPerSlot)

	slots := make([]Slot, len(available))
	for i, s := range available {
		slots[i] = Slot{
			StartTime:         s.StartTime,
			At:                s.At,
			Available:         s.IsAvailable(),
			RemainingCapacity: s.RemainingCapacity,
			TotalCapacity:     s.TotalCapacity,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d bookable slots for restaurant=%s date=%s",
		len(slots), req.Slug, req.Date.Format(domain.DateFormat))

	return &Response{
		Slug:  req.Slug,
		Date:  req.Date,
		Slots: slots,
	}, nil
}

// dayBounds возвращает границы календарного дня [00:00, 23:59:59]
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Second)
	return start, end
}
