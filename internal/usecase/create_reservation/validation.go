package create_reservation

import (
	"fmt"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Форматная валидация (email, телефон, анти-бот проверки) выполняется на
// границе HTTP - здесь проверяются только доменные правила.
func validateRequest(req *Request) error {
	if req.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	if req.FirstName == "" || req.LastName == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано и корректно
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateGuests проверяет число гостей относительно границ ресторана.
// Проверка выполняется только при создании: последующее изменение настроек
// ресторана не делает существующие бронирования задним числом невалидными.
func validateGuests(cfg *domain.RestaurantConfig, guests int) error {
	if !cfg.GuestsWithinLimits(guests) {
		return fmt.Errorf("%w: expected between %d and %d guests",
			ErrGuestCountOutOfRange, cfg.MinGuestsPerReservation, cfg.MaxGuestsPerReservation)
	}
	return nil
}
