package get_restaurant_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/adesombergh/yeety-book-test-sub000/internal/api/handlers"
	"github.com/adesombergh/yeety-book-test-sub000/internal/service/reservations"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidParams       = "некорректные параметры запроса"
	msgRestaurantNotFound  = "ресторан не найден"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/reservations
// Query params: startDate, endDate, status, includeCancelled (опционально)
// Защищённый endpoint - кабинет владельца
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantIDStr := vars["restaurantId"]

	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/reservations - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	serviceReq, err := ToServiceRequest(restaurantID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/reservations - Invalid parameters: restaurant_id=%d, error=%v",
			restaurantID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetRestaurantReservations(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/reservations - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/reservations - Invalid filter: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /restaurants/{id}/reservations - Failed to get reservations: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/reservations - Returned %d reservations: restaurant_id=%d",
		len(result.Reservations), restaurantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
