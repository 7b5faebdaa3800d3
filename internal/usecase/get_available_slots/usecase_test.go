package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
	restaurantRepo "github.com/adesombergh/yeety-book-test-sub000/internal/infra/storage/restaurant"
)

// Фейки зависимостей use case

type fakeRestaurantRepo struct {
	cfg *domain.RestaurantConfig
	err error
}

func (f *fakeRestaurantRepo) GetBySlug(_ context.Context, _ string) (*domain.RestaurantConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cfg, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetByRestaurantWithFilter(_ context.Context, _ domain.RestaurantReservationsFilter) ([]*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// testConfig ресторан с обедом и ужином по вторникам
func testConfig() *domain.RestaurantConfig {
	week := domain.WeekSchedule{
		Monday:    domain.DaySchedule{Closed: true},
		Tuesday:   domain.DaySchedule{Periods: []domain.ServicePeriod{{Open: "12:00", Close: "14:30"}, {Open: "19:00", Close: "22:30"}}},
		Wednesday: domain.DaySchedule{Closed: true},
		Thursday:  domain.DaySchedule{Closed: true},
		Friday:    domain.DaySchedule{Closed: true},
		Saturday:  domain.DaySchedule{Closed: true},
		Sunday:    domain.DaySchedule{Closed: true},
	}
	return &domain.RestaurantConfig{
		ID:                      1,
		Slug:                    "chez-marcel",
		Name:                    "Chez Marcel",
		OpeningHours:            week,
		SlotIntervalMinutes:     60,
		MinGuestsPerReservation: 1,
		MaxGuestsPerReservation: 8,
		MaxReservationsPerSlot:  2,
		LeadTimeMinHours:        2,
		LeadTimeMaxHours:        720,
		SubscriptionActive:      true,
	}
}

func newTestUseCase(restRepo *fakeRestaurantRepo, resRepo *fakeReservationRepo, now time.Time) *UseCase {
	uc := NewUseCase(resRepo, restRepo, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

var tuesday = time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)

func slotStarts(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime.String()
	}
	return out
}

func TestGetAvailableSlots(t *testing.T) {
	t.Run("full day ahead returns every slot of both periods", func(t *testing.T) {
		// Запрос за день до даты: всё окно [now+2h, now+720h] покрывает дату
		now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeRestaurantRepo{cfg: testConfig()}, &fakeReservationRepo{}, now)

		resp, err := uc.Execute(context.Background(), &Request{Slug: "chez-marcel", Date: tuesday})
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"12:00", "13:00", "14:00", "19:00", "20:00", "21:00", "22:00"},
			slotStarts(resp.Slots))

		for _, s := range resp.Slots {
			assert.True(t, s.Available)
			assert.Equal(t, 2, s.RemainingCapacity)
			assert.Equal(t, 2, s.TotalCapacity)
		}
	})

	t.Run("minimum lead time hides near slots, boundary slot stays", func(t *testing.T) {
		// now+2h = 12:00: граница включительна, слот 12:00 остаётся
		now := time.Date(2026, 3, 17, 10, 0, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeRestaurantRepo{cfg: testConfig()}, &fakeReservationRepo{}, now)

		resp, err := uc.Execute(context.Background(), &Request{Slug: "chez-marcel", Date: tuesday})
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"12:00", "13:00", "14:00", "19:00", "20:00", "21:00", "22:00"},
			slotStarts(resp.Slots))

		// Сдвиг на полтора часа вперёд отрезает обеденные слоты до 13:30
		uc = newTestUseCase(&fakeRestaurantRepo{cfg: testConfig()}, &fakeReservationRepo{}, now.Add(90*time.Minute))
		resp, err = uc.Execute(context.Background(), &Request{Slug: "chez-marcel", Date: tuesday})
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"14:00", "19:00", "20:00", "21:00", "22:00"},
			slotStarts(resp.Slots))
	})

	t.Run("closed day returns empty list", func(t *testing.T) {
		now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeRestaurantRepo{cfg: testConfig()}, &fakeReservationRepo{}, now)

		monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
		resp, err := uc.Execute(context.Background(), &Request{Slug: "chez-marcel", Date: monday})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("active reservations reduce remaining capacity", func(t *testing.T) {
		now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
		at19 := time.Date(2026, 3, 17, 19, 0, 0, 0, time.UTC)
		resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
			{Date: at19, Status: domain.StatusPending},
			{Date: at19, Status: domain.StatusConfirmed},
			{Date: at19, Status: domain.StatusCancelled}, // отменённое место не занимает
		}}
		uc := newTestUseCase(&fakeRestaurantRepo{cfg: testConfig()}, resRepo, now)

		resp, err := uc.Execute(context.Background(), &Request{Slug: "chez-marcel", Date: tuesday})
		require.NoError(t, err)

		bySlot := map[string]Slot{}
		for _, s := range resp.Slots {
			bySlot[s.StartTime.String()] = s
		}

		full := bySlot["19:00"]
		assert.False(t, full.Available)
		assert.Equal(t, 0, full.RemainingCapacity)

		free := bySlot["20:00"]
		assert.True(t, free.Available)
		assert.Equal(t, 2, free.RemainingCapacity)
	})

	t.Run("restaurant not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeRestaurantRepo{err: restaurantRepo.ErrRestaurantNotFound}, &fakeReservationRepo{}, time.Now())

		_, err := uc.Execute(context.Background(), &Request{Slug: "ghost", Date: tuesday})
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
	})

	t.Run("inactive subscription", func(t *testing.T) {
		cfg := testConfig()
		cfg.SubscriptionActive = false
		uc := newTestUseCase(&fakeRestaurantRepo{cfg: cfg}, &fakeReservationRepo{}, time.Now())

		_, err := uc.Execute(context.Background(), &Request{Slug: "chez-marcel", Date: tuesday})
		assert.ErrorIs(t, err, ErrRestaurantInactive)
	})

	t.Run("missing slug", func(t *testing.T) {
		uc := newTestUseCase(&fakeRestaurantRepo{cfg: testConfig()}, &fakeReservationRepo{}, time.Now())

		_, err := uc.Execute(context.Background(), &Request{Slug: "", Date: tuesday})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
