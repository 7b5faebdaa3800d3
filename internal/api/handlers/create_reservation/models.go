package create_reservation

import (
	"time"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
	createReservation "github.com/adesombergh/yeety-book-test-sub000/internal/usecase/create_reservation"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Date      string  `json:"date"`      // "2026-03-14"
	StartTime string  `json:"startTime"` // "19:00"
	Guests    int     `json:"guests"`
	Notes     *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           int64   `json:"id"`
	RestaurantID int64   `json:"restaurantId"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	Guests       int     `json:"guests"`
	Notes        *string `json:"notes,omitempty"`
	Status       string  `json:"status"`
	CancelToken  string  `json:"cancelToken"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(slug string) (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Slug:      slug,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Date:      date,
		StartTime: startTime,
		Guests:    r.Guests,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		RestaurantID: resp.RestaurantID,
		FirstName:    resp.FirstName,
		LastName:     resp.LastName,
		Email:        resp.Email,
		Phone:        resp.Phone,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.Date.Format(domain.TimeFormat),
		Guests:       resp.Guests,
		Notes:        resp.Notes,
		Status:       resp.Status,
		CancelToken:  resp.CancelToken,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
