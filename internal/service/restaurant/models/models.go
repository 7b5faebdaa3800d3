package models

import (
	"time"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление настроек ресторана
// Поддерживает частичное обновление - обновляются только указанные поля
type UpdateConfigRequest struct {
	Name                    *string              `json:"name,omitempty"`
	OpeningHours            *domain.WeekSchedule `json:"openingHours,omitempty"`
	SlotIntervalMinutes     *int                 `json:"slotIntervalMinutes,omitempty"`
	MinGuestsPerReservation *int                 `json:"minGuestsPerReservation,omitempty"`
	MaxGuestsPerReservation *int                 `json:"maxGuestsPerReservation,omitempty"`
	MaxReservationsPerSlot  *int                 `json:"maxReservationsPerSlot,omitempty"`
	LeadTimeMinHours        *int                 `json:"reservationLeadTimeMinHours,omitempty"`
	LeadTimeMaxHours        *int                 `json:"reservationLeadTimeMaxHours,omitempty"`
}

// ApplyToConfig применяет частичное обновление к конфигурации ресторана
func (r *UpdateConfigRequest) ApplyToConfig(cfg *domain.RestaurantConfig) {
	if r.Name != nil {
		cfg.Name = *r.Name
	}
	if r.OpeningHours != nil {
		cfg.OpeningHours = *r.OpeningHours
	}
	if r.SlotIntervalMinutes != nil {
		cfg.SlotIntervalMinutes = *r.SlotIntervalMinutes
	}
	if r.MinGuestsPerReservation != nil {
		cfg.MinGuestsPerReservation = *r.MinGuestsPerReservation
	}
	if r.MaxGuestsPerReservation != nil {
		cfg.MaxGuestsPerReservation = *r.MaxGuestsPerReservation
	}
	if r.MaxReservationsPerSlot != nil {
		cfg.MaxReservationsPerSlot = *r.MaxReservationsPerSlot
	}
	if r.LeadTimeMinHours != nil {
		cfg.LeadTimeMinHours = *r.LeadTimeMinHours
	}
	if r.LeadTimeMaxHours != nil {
		cfg.LeadTimeMaxHours = *r.LeadTimeMaxHours
	}
}

// Response модели

// ConfigResponse ответ с настройками ресторана
type ConfigResponse struct {
	ID                      int64               `json:"id"`
	Slug                    string              `json:"slug"`
	Name                    string              `json:"name"`
	OpeningHours            domain.WeekSchedule `json:"openingHours"`
	SlotIntervalMinutes     int                 `json:"slotIntervalMinutes"`
	MinGuestsPerReservation int                 `json:"minGuestsPerReservation"`
	MaxGuestsPerReservation int                 `json:"maxGuestsPerReservation"`
	MaxReservationsPerSlot  int                 `json:"maxReservationsPerSlot"`
	LeadTimeMinHours        int                 `json:"reservationLeadTimeMinHours"`
	LeadTimeMaxHours        int                 `json:"reservationLeadTimeMaxHours"`
	SubscriptionActive      bool                `json:"subscriptionActive"`
	CreatedAt               time.Time           `json:"createdAt"`
	UpdatedAt               time.Time           `json:"updatedAt"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(cfg *domain.RestaurantConfig) *ConfigResponse {
	if cfg == nil {
		return nil
	}

	return &ConfigResponse{
		ID:                      cfg.ID,
		Slug:                    cfg.Slug,
		Name:                    cfg.Name,
		OpeningHours:            cfg.OpeningHours,
		SlotIntervalMinutes:     cfg.SlotIntervalMinutes,
		MinGuestsPerReservation: cfg.MinGuestsPerReservation,
		MaxGuestsPerReservation: cfg.MaxGuestsPerReservation,
		MaxReservationsPerSlot:  cfg.MaxReservationsPerSlot,
		LeadTimeMinHours:        cfg.LeadTimeMinHours,
		LeadTimeMaxHours:        cfg.LeadTimeMaxHours,
		SubscriptionActive:      cfg.SubscriptionActive,
		CreatedAt:               cfg.CreatedAt,
		UpdatedAt:               cfg.UpdatedAt,
	}
}
