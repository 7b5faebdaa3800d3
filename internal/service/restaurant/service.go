package restaurant

import (
	"context"
	"errors"
	"fmt"

	restaurantRepo "github.com/adesombergh/yeety-book-test-sub000/internal/infra/storage/restaurant"
	"github.com/adesombergh/yeety-book-test-sub000/internal/service/restaurant/models"
)

// Service сервис для работы с настройками ресторана
type Service struct {
	restaurantRepo RestaurantRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса настроек ресторана
func NewService(restaurantRepo RestaurantRepository, logger Logger) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// GetByID получает настройки ресторана по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetByID: fetching restaurant config id=%d", id)

	cfg, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("GetByID: restaurant id=%d not found", id)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("GetByID: repository error for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// Update обновляет настройки ресторана.
// Обновление атомарно: настройки валидируются целиком после применения
// частичного запроса, и при любом нарушении не записывается ничего.
// Все нарушения собираются и возвращаются одним ответом.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating restaurant config id=%d", id)

	// 1. Получаем текущие настройки
	cfg, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("Update: restaurant id=%d not found", id)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Update: repository error for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Применяем частичное обновление
	req.ApplyToConfig(cfg)

	// 3. Валидируем настройки целиком, собирая все нарушения
	if verr := cfg.Validate(); verr != nil {
		s.logger.Warn("Update: validation failed for restaurant id=%d: %d issue(s)", id, len(verr.Issues))
		return nil, fmt.Errorf("%w: %w", ErrValidation, verr)
	}

	// 4. Записываем настройки
	updated, err := s.restaurantRepo.Update(ctx, cfg)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("Update: restaurant id=%d not found during update", id)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Update: repository error for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated restaurant config id=%d", id)
	return models.FromDomainConfig(updated), nil
}
