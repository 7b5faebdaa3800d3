package restaurant

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrValidation возвращается, когда настройки не проходят валидацию.
	// Полный список нарушений лежит в *domain.ValidationError, обёрнутой этой ошибкой.
	ErrValidation = errors.New("restaurant settings validation failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
