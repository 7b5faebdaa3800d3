package update_restaurant_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/adesombergh/yeety-book-test-sub000/internal/api/handlers"
	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
	"github.com/adesombergh/yeety-book-test-sub000/internal/service/restaurant"
	"github.com/adesombergh/yeety-book-test-sub000/internal/service/restaurant/models"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgRestaurantNotFound  = "ресторан не найден"
	msgValidationFailed    = "настройки не прошли валидацию"
)

type Handler struct {
	service RestaurantService
	logger  Logger
}

func NewHandler(service RestaurantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/restaurants/{restaurantId}/config
// Защищённый endpoint - кабинет владельца.
// При нарушениях валидации возвращает 422 со списком всех нарушений разом.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantIDStr := vars["restaurantId"]

	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /restaurants/{id}/config - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /restaurants/{id}/config - Invalid request body: restaurant_id=%d, error=%v",
			restaurantID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), restaurantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, restaurant.ErrRestaurantNotFound):
			h.logger.Warn("PUT /restaurants/{id}/config - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, restaurant.ErrValidation):
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				h.logger.Warn("PUT /restaurants/{id}/config - Validation failed: restaurant_id=%d, issues=%d",
					restaurantID, len(verr.Issues))
				handlers.RespondValidationError(w, msgValidationFailed, verr.Issues)
			} else {
				handlers.RespondValidationError(w, msgValidationFailed, nil)
			}

		default:
			h.logger.Error("PUT /restaurants/{id}/config - Failed to update config: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /restaurants/{id}/config - Config updated: restaurant_id=%d", restaurantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
