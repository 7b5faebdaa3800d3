package create_reservation

import (
	"time"

	"github.com/adesombergh/yeety-book-test-sub000/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Slug      string           // Публичный slug ресторана
	FirstName string           // Имя гостя
	LastName  string           // Фамилия гостя
	Email     string           // Email для уведомлений
	Phone     string           // Телефон
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота, например "19:00"
	Guests    int              // Количество гостей
	Notes     *string          // Пожелания гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	RestaurantID int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Date         time.Time
	Guests       int
	Notes        *string
	Status       string
	CancelToken  string // Секрет для self-service отмены, показывается один раз
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
