package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotFull возвращается, когда в слоте не осталось свободных мест
	ErrSlotFull = errors.New("reservation.repository: slot capacity exhausted")

	// ErrAlreadyCancelled возвращается, когда бронирование уже отменено
	ErrAlreadyCancelled = errors.New("reservation.repository: reservation already cancelled")

	// ErrStatusConflict возвращается, когда статус строки изменился между чтением и записью
	ErrStatusConflict = errors.New("reservation.repository: status changed concurrently")

	// ErrDuplicateCancelToken возвращается при коллизии cancel-токена (уникальный индекс)
	ErrDuplicateCancelToken = errors.New("reservation.repository: duplicate cancel token")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
