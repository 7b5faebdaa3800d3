package cancel_reservation

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/adesombergh/yeety-book-test-sub000/internal/api/handlers"
	cancelReservation "github.com/adesombergh/yeety-book-test-sub000/internal/usecase/cancel_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgReservationNotFound = "бронирование не найдено"
	msgAlreadyCancelled    = "бронирование уже отменено"
	msgPastReservation     = "бронирование уже прошло"
	msgNotCancellable      = "бронирование не может быть отменено"
	msgInvalidRequestData  = "некорректные данные запроса"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{token}/cancel
// Публичный endpoint - авторизацией служит сам cancel-токен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["token"]

	// Тело опционально - отмена без причины допустима
	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil &&
		!errors.Is(err, handlers.ErrEmptyBody) && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /reservations/{token}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(token))
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrNotFound):
			h.logger.Warn("POST /reservations/{token}/cancel - Reservation not found")
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, cancelReservation.ErrAlreadyCancelled):
			h.logger.Warn("POST /reservations/{token}/cancel - Already cancelled")
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		case errors.Is(err, cancelReservation.ErrPastReservation):
			h.logger.Warn("POST /reservations/{token}/cancel - Reservation is in the past")
			handlers.RespondError(w, http.StatusGone, msgPastReservation)

		case errors.Is(err, cancelReservation.ErrNotCancellable):
			h.logger.Warn("POST /reservations/{token}/cancel - Reservation is not cancellable")
			handlers.RespondError(w, http.StatusConflict, msgNotCancellable)

		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{token}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestData)

		default:
			h.logger.Error("POST /reservations/{token}/cancel - Failed to cancel reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{token}/cancel - Reservation cancelled: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
