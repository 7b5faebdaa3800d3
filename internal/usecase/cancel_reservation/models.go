package cancel_reservation

import "time"

// Request модель запроса на отмену бронирования по токену
type Request struct {
	Token  string  // Cancel-токен из письма-подтверждения
	Reason *string // Причина отмены (опционально)
}

// Response модель ответа с результатом отмены
type Response struct {
	ID          int64
	Status      string
	CancelledAt time.Time
}
