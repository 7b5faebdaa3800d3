package create_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/adesombergh/yeety-book-test-sub000/internal/api/handlers"
	createReservation "github.com/adesombergh/yeety-book-test-sub000/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgRestaurantNotFound = "ресторан не найден"
	msgRestaurantInactive = "подписка ресторана неактивна"
	msgRestaurantClosed   = "ресторан закрыт в выбранную дату"
	msgInvalidSlot        = "выбранное время не совпадает ни с одним доступным слотом"
	msgOutsideWindow      = "слот вне окна бронирования"
	msgSlotFull           = "выбранный слот полностью занят"
	msgGuestsOutOfRange   = "количество гостей вне допустимых границ ресторана"
	msgInvalidRequestData = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants/{slug}/reservations
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{slug}/reservations - Invalid request body: slug=%s, error=%v", slug, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(slug)
	if err != nil {
		h.logger.Warn("POST /restaurants/{slug}/reservations - Failed to parse request: slug=%s, error=%v", slug, err)
		if req.StartTime != "" && !isDateParseError(err) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotFull):
			h.logger.Warn("POST /restaurants/{slug}/reservations - Slot full: slug=%s, date=%s, time=%s",
				slug, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotFull)

		case errors.Is(err, createReservation.ErrRestaurantNotFound):
			h.logger.Warn("POST /restaurants/{slug}/reservations - Restaurant not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, createReservation.ErrRestaurantInactive):
			h.logger.Warn("POST /restaurants/{slug}/reservations - Restaurant inactive: slug=%s", slug)
			handlers.RespondError(w, http.StatusForbidden, msgRestaurantInactive)

		case errors.Is(err, createReservation.ErrRestaurantClosed):
			h.logger.Warn("POST /restaurants/{slug}/reservations - Restaurant closed: slug=%s, date=%s", slug, req.Date)
			handlers.RespondBadRequest(w, msgRestaurantClosed)

		case errors.Is(err, createReservation.ErrInvalidSlot):
			h.logger.Warn("POST /restaurants/{slug}/reservations - Invalid slot: slug=%s, date=%s, time=%s",
				slug, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReservation.ErrOutsideBookingWindow):
			h.logger.Warn("POST /restaurants/{slug}/reservations - Outside booking window: slug=%s, date=%s, time=%s",
				slug, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWindow)

		case errors.Is(err, createReservation.ErrGuestCountOutOfRange):
			h.logger.Warn("POST /restaurants/{slug}/reservations - Guests out of range: slug=%s, guests=%d",
				slug, req.Guests)
			handlers.RespondBadRequest(w, msgGuestsOutOfRange)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{slug}/reservations - Invalid input: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidRequestData)

		default:
			h.logger.Error("POST /restaurants/{slug}/reservations - Failed to create reservation: slug=%s, error=%v",
				slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{slug}/reservations - Reservation created: id=%d, slug=%s, date=%s, time=%s",
		result.ID, slug, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// isDateParseError различает ошибку парсинга даты и времени по источнику
func isDateParseError(err error) bool {
	var parseErr *time.ParseError
	return errors.As(err, &parseErr)
}
