package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
	reservationRepo "github.com/adesombergh/yeety-book-test-sub000/internal/infra/storage/reservation"
	restaurantRepo "github.com/adesombergh/yeety-book-test-sub000/internal/infra/storage/restaurant"
	"github.com/adesombergh/yeety-book-test-sub000/internal/service/reservations/models"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/metrics"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/ptr"
)

// Фейки зависимостей сервиса

type fakeReservationRepo struct {
	byID       map[int64]*domain.Reservation
	listResult []*domain.Reservation
	lastFilter domain.RestaurantReservationsFilter
}

func newFakeReservationRepo(items ...*domain.Reservation) *fakeReservationRepo {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{}}
	for _, res := range items {
		repo.byID[res.ID] = res
	}
	return repo
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeReservationRepo) GetByRestaurantWithFilter(_ context.Context, filter domain.RestaurantReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.listResult, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, from, to domain.ReservationStatus) error {
	res, ok := f.byID[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	if res.Status != from {
		return reservationRepo.ErrStatusConflict
	}
	res.Status = to
	res.UpdatedAt = time.Now()
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64, reason *string) error {
	res, ok := f.byID[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	if res.IsCancelled() {
		return reservationRepo.ErrAlreadyCancelled
	}
	res.Status = domain.StatusCancelled
	res.CancellationReason = reason
	res.CancelledAt = ptr.Ptr(time.Now())
	return nil
}

type fakeRestaurantRepo struct {
	cfg *domain.RestaurantConfig
	err error
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.RestaurantConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cfg, nil
}

type fakeNotifier struct {
	cancelled []*domain.Reservation
}

func (f *fakeNotifier) ReservationCancelled(res *domain.Reservation, _ *domain.RestaurantConfig) error {
	f.cancelled = append(f.cancelled, res)
	return nil
}

type fakeOutcomes struct {
	counts map[string]int
}

func newFakeOutcomes() *fakeOutcomes {
	return &fakeOutcomes{counts: map[string]int{}}
}

func (f *fakeOutcomes) IncReservationOutcome(outcome string) {
	f.counts[outcome]++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func reservationWithStatus(status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:           7,
		RestaurantID: 1,
		FirstName:    "Anna",
		LastName:     "Laurent",
		Email:        "anna@example.com",
		Date:         time.Date(2026, 3, 17, 19, 0, 0, 0, time.UTC),
		Guests:       4,
		Status:       status,
	}
}

type testEnv struct {
	svc      *Service
	resRepo  *fakeReservationRepo
	notifier *fakeNotifier
	outcomes *fakeOutcomes
}

func newTestEnv(items ...*domain.Reservation) *testEnv {
	resRepo := newFakeReservationRepo(items...)
	notifier := &fakeNotifier{}
	outcomes := newFakeOutcomes()
	restRepo := &fakeRestaurantRepo{cfg: &domain.RestaurantConfig{ID: 1, Slug: "chez-marcel", Name: "Chez Marcel"}}
	svc := NewService(resRepo, restRepo, notifier, outcomes, nopLogger{})
	return &testEnv{svc: svc, resRepo: resRepo, notifier: notifier, outcomes: outcomes}
}

func TestUpdateStatus(t *testing.T) {
	t.Run("allowed transitions", func(t *testing.T) {
		tests := []struct {
			from domain.ReservationStatus
			to   string
		}{
			{domain.StatusPending, "confirmed"},
			{domain.StatusPending, "completed"},
			{domain.StatusConfirmed, "completed"},
		}

		for _, tt := range tests {
			env := newTestEnv(reservationWithStatus(tt.from))

			resp, err := env.svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: tt.to})
			require.NoError(t, err, "%s -> %s", tt.from, tt.to)
			assert.Equal(t, tt.to, resp.Status)
			assert.Empty(t, env.notifier.cancelled)
			assert.Empty(t, env.outcomes.counts)
		}
	})

	t.Run("forbidden transitions", func(t *testing.T) {
		tests := []struct {
			from domain.ReservationStatus
			to   string
		}{
			{domain.StatusConfirmed, "pending"},
			{domain.StatusCancelled, "confirmed"},
			{domain.StatusCancelled, "completed"},
			{domain.StatusCompleted, "cancelled"},
			{domain.StatusPending, "pending"},
		}

		for _, tt := range tests {
			env := newTestEnv(reservationWithStatus(tt.from))

			_, err := env.svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: tt.to})
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tt.from, tt.to)
		}
	})

	t.Run("owner cancellation records reason and publishes event", func(t *testing.T) {
		env := newTestEnv(reservationWithStatus(domain.StatusConfirmed))

		resp, err := env.svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{
			Status: "cancelled",
			Reason: ptr.Ptr("table flooded"),
		})
		require.NoError(t, err)

		assert.Equal(t, "cancelled", resp.Status)
		require.NotNil(t, resp.CancellationReason)
		assert.Equal(t, "table flooded", *resp.CancellationReason)
		assert.NotNil(t, resp.CancelledAt)

		require.Len(t, env.notifier.cancelled, 1)
		assert.Equal(t, int64(7), env.notifier.cancelled[0].ID)
		assert.Equal(t, 1, env.outcomes.counts[metrics.OutcomeCancelled])
	})

	t.Run("unknown status", func(t *testing.T) {
		env := newTestEnv(reservationWithStatus(domain.StatusPending))

		_, err := env.svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "no_show"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("reservation not found", func(t *testing.T) {
		env := newTestEnv()

		_, err := env.svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("concurrent status change surfaces as conflict", func(t *testing.T) {
		res := reservationWithStatus(domain.StatusPending)
		env := newTestEnv(res)

		// Статус меняется между чтением сервиса и записью
		env.resRepo.byID[7] = &domain.Reservation{ID: 7, RestaurantID: 1, Status: domain.StatusPending}
		first, err := env.svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", first.Status)

		// CAS по прочитанному ранее pending теперь не проходит
		err = env.resRepo.UpdateStatus(context.Background(), 7, domain.StatusPending, domain.StatusCompleted)
		assert.ErrorIs(t, err, reservationRepo.ErrStatusConflict)
	})
}

func TestGetRestaurantReservations(t *testing.T) {
	t.Run("passes filter through and maps the result", func(t *testing.T) {
		env := newTestEnv()
		env.resRepo.listResult = []*domain.Reservation{reservationWithStatus(domain.StatusConfirmed)}

		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
		resp, err := env.svc.GetRestaurantReservations(context.Background(), &models.GetRestaurantReservationsRequest{
			RestaurantID: 1,
			StartDate:    &start,
			EndDate:      &end,
			Status:       ptr.Ptr("confirmed"),
		})
		require.NoError(t, err)

		require.Len(t, resp.Reservations, 1)
		assert.Equal(t, "2026-03-17", resp.Reservations[0].Date)
		assert.Equal(t, "19:00", resp.Reservations[0].StartTime)

		assert.Equal(t, int64(1), env.resRepo.lastFilter.RestaurantID)
		require.NotNil(t, env.resRepo.lastFilter.Status)
		assert.Equal(t, domain.StatusConfirmed, *env.resRepo.lastFilter.Status)
	})

	t.Run("unknown status in filter", func(t *testing.T) {
		env := newTestEnv()

		_, err := env.svc.GetRestaurantReservations(context.Background(), &models.GetRestaurantReservationsRequest{
			RestaurantID: 1,
			Status:       ptr.Ptr("no_show"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("restaurant not found", func(t *testing.T) {
		env := newTestEnv()
		env.svc = NewService(env.resRepo, &fakeRestaurantRepo{err: restaurantRepo.ErrRestaurantNotFound}, env.notifier, env.outcomes, nopLogger{})

		_, err := env.svc.GetRestaurantReservations(context.Background(), &models.GetRestaurantReservationsRequest{RestaurantID: 99})
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
	})
}

func TestGetByID(t *testing.T) {
	env := newTestEnv(reservationWithStatus(domain.StatusPending))

	resp, err := env.svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "pending", resp.Status)

	_, err = env.svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
