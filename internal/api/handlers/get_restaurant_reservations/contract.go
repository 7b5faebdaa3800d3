package get_restaurant_reservations

import (
	"context"

	"github.com/adesombergh/yeety-book-test-sub000/internal/service/reservations/models"
)

type ReservationsService interface {
	GetRestaurantReservations(ctx context.Context, req *models.GetRestaurantReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
