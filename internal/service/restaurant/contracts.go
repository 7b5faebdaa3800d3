package restaurant

import (
	"context"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
)

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RestaurantConfig, error)
	Update(ctx context.Context, cfg *domain.RestaurantConfig) (*domain.RestaurantConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
