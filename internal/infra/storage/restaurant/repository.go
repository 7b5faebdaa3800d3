package restaurant

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/dbmetrics"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/psqlbuilder"
)

var restaurantColumns = []string{
	"id",
	"slug",
	"name",
	"opening_hours",
	"slot_interval_minutes",
	"min_guests",
	"max_guests",
	"max_reservations_per_slot",
	"lead_time_min_hours",
	"lead_time_max_hours",
	"subscription_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с конфигурацией ресторанов.
// Расписание хранится в JSONB колонке opening_hours и разбирается в
// строго типизированную структуру domain.WeekSchedule на границе хранилища.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресторанов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает конфигурацию ресторана по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RestaurantConfig, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetBySlug получает конфигурацию ресторана по публичному slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.RestaurantConfig, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug}, "GetBySlug")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.RestaurantConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(restaurantColumns...).
		From("restaurants").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var cfg domain.RestaurantConfig
	var openingHours []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.Slug,
		&cfg.Name,
		&openingHours,
		&cfg.SlotIntervalMinutes,
		&cfg.MinGuestsPerReservation,
		&cfg.MaxGuestsPerReservation,
		&cfg.MaxReservationsPerSlot,
		&cfg.LeadTimeMinHours,
		&cfg.LeadTimeMaxHours,
		&cfg.SubscriptionActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan restaurant: %v", ErrScanRow, op, err)
	}

	if err := json.Unmarshal(openingHours, &cfg.OpeningHours); err != nil {
		return nil, fmt.Errorf("%w: %s - %v", ErrDecodeSchedule, op, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Update полностью обновляет настройки бронирования ресторана.
// Вызывающая сторона обязана предварительно проверить конфигурацию через
// domain.RestaurantConfig.Validate - репозиторий не пишет частично.
func (r *Repository) Update(ctx context.Context, cfg *domain.RestaurantConfig) (*domain.RestaurantConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	openingHours, err := json.Marshal(cfg.OpeningHours)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - %v", ErrEncodeSchedule, err)
	}

	query, args, err := psqlbuilder.Update("restaurants").
		Set("name", cfg.Name).
		Set("opening_hours", openingHours).
		Set("slot_interval_minutes", cfg.SlotIntervalMinutes).
		Set("min_guests", cfg.MinGuestsPerReservation).
		Set("max_guests", cfg.MaxGuestsPerReservation).
		Set("max_reservations_per_slot", cfg.MaxReservationsPerSlot).
		Set("lead_time_min_hours", cfg.LeadTimeMinHours).
		Set("lead_time_max_hours", cfg.LeadTimeMaxHours).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cfg.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}
