package create_reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
	reservationRepo "github.com/adesombergh/yeety-book-test-sub000/internal/infra/storage/reservation"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/metrics"
)

// Фейки зависимостей use case

// fakeReservationRepo in-memory репозиторий с той же семантикой TryReserve,
// что и у реального: проверка вместимости и вставка под общим мьютексом.
type fakeReservationRepo struct {
	mu     sync.Mutex
	nextID int64
	items  []*domain.Reservation
}

func (f *fakeReservationRepo) TryReserve(_ context.Context, res *domain.Reservation, maxPerSlot int) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	active := 0
	for _, existing := range f.items {
		if existing.RestaurantID == res.RestaurantID && existing.Date.Equal(res.Date) && existing.IsActive() {
			active++
		}
	}
	if active >= maxPerSlot {
		return nil, reservationRepo.ErrSlotFull
	}

	f.nextID++
	created := *res
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.items = append(f.items, &created)
	return &created, nil
}

// cancelByID помечает бронирование отменённым, имитируя освобождение места
func (f *fakeReservationRepo) cancelByID(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, res := range f.items {
		if res.ID == id {
			res.Status = domain.StatusCancelled
		}
	}
}

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

// fakeTxManager сериализует конкурентные транзакции мьютексом
type fakeTxManager struct{ mu sync.Mutex }

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

type fakeNotifier struct {
	mu      sync.Mutex
	created []*domain.Reservation
	err     error
}

func (f *fakeNotifier) ReservationCreated(res *domain.Reservation, _ *domain.RestaurantConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, res)
	return f.err
}

type fakeOutcomes struct {
	mu     sync.Mutex
	counts map[string]int
}

func newFakeOutcomes() *fakeOutcomes {
	return &fakeOutcomes{counts: map[string]int{}}
}

func (f *fakeOutcomes) IncReservationOutcome(outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[outcome]++
}

func (f *fakeOutcomes) count(outcome string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[outcome]
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// testConfig ресторан с обедом и ужином по вторникам, 2 места в слоте
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
		MinGuestsPerReservation: 2,
		MaxGuestsPerReservation: 8,
		MaxReservationsPerSlot:  2,
		LeadTimeMinHours:        2,
		LeadTimeMaxHours:        720,
		SubscriptionActive:      true,
	}
}

type testEnv struct {
	uc       *UseCase
	resRepo  *fakeReservationRepo
	notifier *fakeNotifier
	outcomes *fakeOutcomes
}

func newTestEnv(cfg *domain.RestaurantConfig, now time.Time) *testEnv {
	resRepo := &fakeReservationRepo{}
	notifier := &fakeNotifier{}
	outcomes := newFakeOutcomes()
	uc := NewUseCase(resRepo, &fakeRestaurantRepo{cfg: cfg}, &fakeTxManager{}, notifier, outcomes, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return &testEnv{uc: uc, resRepo: resRepo, notifier: notifier, outcomes: outcomes}
}

var (
	tuesday  = time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	dayPrior = time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
)

func validRequest() *Request {
	return &Request{
		Slug:      "chez-marcel",
		FirstName: "Anna",
		LastName:  "Laurent",
		Email:     "anna@example.com",
		Phone:     "+33612345678",
		Date:      tuesday,
		StartTime: "19:00",
		Guests:    4,
	}
}

func TestCreateReservation(t *testing.T) {
	t.Run("happy path creates pending reservation with cancel token", func(t *testing.T) {
		env := newTestEnv(testConfig(), dayPrior)

		resp, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.NotZero(t, resp.ID)
		assert.Equal(t, string(domain.StatusPending), resp.Status)
		assert.NotEmpty(t, resp.CancelToken)
		assert.Equal(t, time.Date(2026, 3, 17, 19, 0, 0, 0, time.UTC), resp.Date)

		require.Len(t, env.notifier.created, 1)
		assert.Equal(t, resp.ID, env.notifier.created[0].ID)
		assert.Equal(t, 1, env.outcomes.count(metrics.OutcomeCreated))
	})

	t.Run("cancel tokens are unique per reservation", func(t *testing.T) {
		env := newTestEnv(testConfig(), dayPrior)

		first, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		req := validRequest()
		req.StartTime = "20:00"
		second, err := env.uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.NotEqual(t, first.CancelToken, second.CancelToken)
	})

	t.Run("time not on the slot grid is rejected", func(t *testing.T) {
		env := newTestEnv(testConfig(), dayPrior)

		req := validRequest()
		req.StartTime = "19:30"
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSlot)
	})

	t.Run("time outside service periods is rejected", func(t *testing.T) {
		env := newTestEnv(testConfig(), dayPrior)

		req := validRequest()
		req.StartTime = "16:00"
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSlot)
	})

	t.Run("closed day is rejected", func(t *testing.T) {
		env := newTestEnv(testConfig(), dayPrior)

		req := validRequest()
		req.Date = time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC) // среда, закрыто
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrRestaurantClosed)
	})

	t.Run("slot closer than minimum lead time is rejected", func(t *testing.T) {
		// now = 18:30 того же дня: 19:00 ближе, чем now+2h
		env := newTestEnv(testConfig(), time.Date(2026, 3, 17, 18, 30, 0, 0, time.UTC))

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrOutsideBookingWindow)
	})

	t.Run("slot exactly on the lower bound is accepted", func(t *testing.T) {
		env := newTestEnv(testConfig(), time.Date(2026, 3, 17, 17, 0, 0, 0, time.UTC))

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("slot beyond maximum lead time is rejected", func(t *testing.T) {
		// За год до даты: дальше, чем now+720h
		env := newTestEnv(testConfig(), time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC))

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrOutsideBookingWindow)
	})

	t.Run("guest count outside restaurant bounds", func(t *testing.T) {
		env := newTestEnv(testConfig(), dayPrior)

		req := validRequest()
		req.Guests = 1 // минимум 2
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrGuestCountOutOfRange)

		req = validRequest()
		req.Guests = 9 // максимум 8
		_, err = env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrGuestCountOutOfRange)
	})

	t.Run("full slot rejects further reservations", func(t *testing.T) {
		env := newTestEnv(testConfig(), dayPrior)

		_, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		_, err = env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		_, err = env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotFull)

		assert.Equal(t, 2, env.outcomes.count(metrics.OutcomeCreated))
		assert.Equal(t, 1, env.outcomes.count(metrics.OutcomeSlotFull))
	})

	t.Run("concurrent requests never exceed slot capacity", func(t *testing.T) {
		env := newTestEnv(testConfig(), dayPrior)

		const attempts = 5
		errs := make(chan error, attempts)
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := env.uc.Execute(context.Background(), validRequest())
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		succeeded, rejected := 0, 0
		for err := range errs {
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, ErrSlotFull):
				rejected++
			}
		}
		assert.Equal(t, 2, succeeded)
		assert.Equal(t, 3, rejected)
	})

	t.Run("cancelled reservation frees its spot", func(t *testing.T) {
		env := newTestEnv(testConfig(), dayPrior)

		first, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		_, err = env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		_, err = env.uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrSlotFull)

		env.resRepo.cancelByID(first.ID)

		_, err = env.uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("notifier failure does not fail the reservation", func(t *testing.T) {
		env := newTestEnv(testConfig(), dayPrior)
		env.notifier.err = assert.AnError

		resp, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.NotZero(t, resp.ID)
	})

	t.Run("inactive subscription is rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.SubscriptionActive = false
		env := newTestEnv(cfg, dayPrior)

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrRestaurantInactive)
	})

	t.Run("missing required fields are rejected", func(t *testing.T) {
		env := newTestEnv(testConfig(), dayPrior)

		req := validRequest()
		req.Email = ""
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req = validRequest()
		req.FirstName = ""
		_, err = env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
