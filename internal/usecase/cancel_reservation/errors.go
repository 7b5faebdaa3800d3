package cancel_reservation

import "errors"

var (
	// ErrNotFound возвращается, когда токен не соответствует ни одному бронированию
	ErrNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrAlreadyCancelled возвращается при повторной отмене одного бронирования
	ErrAlreadyCancelled = errors.New("cancel_reservation: reservation is already cancelled")

	// ErrPastReservation возвращается при попытке отменить прошедшее бронирование
	ErrPastReservation = errors.New("cancel_reservation: reservation date is in the past")

	// ErrNotCancellable возвращается, когда статус бронирования не допускает отмену
	ErrNotCancellable = errors.New("cancel_reservation: reservation cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
