package get_available_slots

import (
	"time"

	"github.com/adesombergh/yeety-book-test-sub000/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Slug string    // Публичный slug ресторана
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов на дату
type Response struct {
	Slug  string    // Slug ресторана
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Слоты в пределах окна бронирования
}

// Slot модель временного слота с остаточной вместимостью
type Slot struct {
	StartTime         types.TimeString // Время начала слота (например, "19:00")
	At                time.Time        // Абсолютное время начала слота
	Available         bool             // Есть ли свободные места
	RemainingCapacity int              // Количество свободных мест
	TotalCapacity     int              // Общая вместимость слота
}
