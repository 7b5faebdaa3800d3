package get_restaurant_config

import (
	"context"

	"github.com/adesombergh/yeety-book-test-sub000/internal/service/restaurant/models"
)

type RestaurantService interface {
	GetByID(ctx context.Context, id int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
