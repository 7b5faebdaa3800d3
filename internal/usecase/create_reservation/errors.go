package create_reservation

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("create_reservation: restaurant not found")

	// ErrRestaurantInactive возвращается, когда подписка ресторана неактивна
	ErrRestaurantInactive = errors.New("create_reservation: restaurant subscription is inactive")

	// ErrRestaurantClosed возвращается, когда ресторан закрыт в указанную дату
	ErrRestaurantClosed = errors.New("create_reservation: restaurant is closed on this date")

	// ErrInvalidSlot возвращается, когда запрошенное время не совпадает ни с одним
	// сгенерированным слотом ресторана
	ErrInvalidSlot = errors.New("create_reservation: requested time does not match a bookable slot")

	// ErrOutsideBookingWindow возвращается, когда слот нарушает границы окна бронирования
	ErrOutsideBookingWindow = errors.New("create_reservation: slot is outside the booking window")

	// ErrSlotFull возвращается, когда вместимость слота исчерпана на момент коммита
	ErrSlotFull = errors.New("create_reservation: slot is fully booked")

	// ErrGuestCountOutOfRange возвращается, когда число гостей вне границ ресторана
	ErrGuestCountOutOfRange = errors.New("create_reservation: guest count is outside restaurant limits")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
