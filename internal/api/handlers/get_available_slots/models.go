package get_available_slots

import (
	"time"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
	getAvailableSlots "github.com/adesombergh/yeety-book-test-sub000/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Restaurant string          `json:"restaurant"`
	Date       string          `json:"date"`
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime         string `json:"startTime"`
	Available         bool   `json:"available"`
	RemainingCapacity int    `json:"remainingCapacity"`
	TotalCapacity     int    `json:"totalCapacity"`
}

// ToUseCaseRequest создает запрос use case из параметров URL
func ToUseCaseRequest(slug, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Slug: slug,
		Date: date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:         slot.StartTime.String(),
			Available:         slot.Available,
			RemainingCapacity: slot.RemainingCapacity,
			TotalCapacity:     slot.TotalCapacity,
		}
	}

	return &AvailableSlotsResponse{
		Restaurant: resp.Slug,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
