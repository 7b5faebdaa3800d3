package update_reservation_status

import (
	"context"

	"github.com/adesombergh/yeety-book-test-sub000/internal/service/reservations/models"
)

type ReservationsService interface {
	UpdateStatus(ctx context.Context, reservationID int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
