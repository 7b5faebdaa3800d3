package restaurant

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant.repository: restaurant not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("restaurant.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("restaurant.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("restaurant.repository: failed to scan row")

	// ErrEncodeSchedule возвращается при ошибке сериализации расписания в JSON
	ErrEncodeSchedule = errors.New("restaurant.repository: failed to encode opening hours")

	// ErrDecodeSchedule возвращается при ошибке разбора расписания из JSON
	ErrDecodeSchedule = errors.New("restaurant.repository: failed to decode opening hours")
)
