package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	settingsRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/settings"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/settings/models"
)

// Service сервис настроек салона и личных настроек сотрудников
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Business текущие настройки салона; до первого сохранения - значения по умолчанию
func (s *Service) Business(ctx context.Context) (domain.Settings, error) {
	current, err := s.settingsRepo.GetBusiness(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return domain.DefaultSettings(), nil
		}
		s.logger.Error("Business: repository error: %v", err)
		return domain.Settings{}, fmt.Errorf("%w: Business - repository error: %v", ErrInternal, err)
	}
	return *current, nil
}

// Preferences личные настройки пользователя; до первого сохранения - значения по умолчанию
func (s *Service) Preferences(ctx context.Context, userID uuid.UUID) (domain.Preferences, error) {
	current, err := s.settingsRepo.GetPreferences(ctx, userID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return domain.DefaultPreferences(), nil
		}
		s.logger.Error("Preferences: repository error for user=%s: %v", userID, err)
		return domain.Preferences{}, fmt.Errorf("%w: Preferences - repository error: %v", ErrInternal, err)
	}
	return *current, nil
}

// GetBusiness настройки салона
// Доступно всем сотрудникам: календарь строится по ним
func (s *Service) GetBusiness(ctx context.Context, viewer *domain.Viewer) (*models.BusinessSettings, error) {
	current, err := s.Business(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSettings(current), nil
}

// UpdateBusiness сохраняет настройки салона
// Доступно только администратору
func (s *Service) UpdateBusiness(ctx context.Context, viewer *domain.Viewer, req *models.BusinessSettings) (*models.BusinessSettings, error) {
	s.logger.Info("UpdateBusiness: updating settings by user=%s", viewer.Identity.UserID)

	// 1. Проверяем права доступа
	if !viewer.CanManageSettings() {
		s.logger.Warn("UpdateBusiness: access denied for user=%s role=%s", viewer.Identity.UserID, viewer.Role)
		return nil, ErrAccessDenied
	}

	// 2. Валидируем
	next, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("UpdateBusiness: invalid time: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	next.BusinessName = strings.TrimSpace(next.BusinessName)
	next.BusinessPhone = strings.TrimSpace(next.BusinessPhone)
	if err := next.Validate(); err != nil {
		s.logger.Warn("UpdateBusiness: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Сохраняем и перечитываем
	if err := s.settingsRepo.SaveBusiness(ctx, next); err != nil {
		s.logger.Error("UpdateBusiness: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateBusiness - save: %v", ErrInternal, err)
	}

	saved, err := s.Business(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateBusiness: successfully updated settings")
	return models.FromDomainSettings(saved), nil
}

// GetPreferences личные настройки текущего пользователя
func (s *Service) GetPreferences(ctx context.Context, viewer *domain.Viewer) (*models.Preferences, error) {
	current, err := s.Preferences(ctx, viewer.Identity.UserID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainPreferences(current), nil
}

// UpdatePreferences сохраняет личные настройки текущего пользователя
func (s *Service) UpdatePreferences(ctx context.Context, viewer *domain.Viewer, req *models.Preferences) (*models.Preferences, error) {
	userID := viewer.Identity.UserID
	s.logger.Info("UpdatePreferences: updating preferences for user=%s", userID)

	next := req.ToDomain()
	if err := next.Validate(); err != nil {
		s.logger.Warn("UpdatePreferences: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.settingsRepo.SavePreferences(ctx, userID, next); err != nil {
		s.logger.Error("UpdatePreferences: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: UpdatePreferences - save: %v", ErrInternal, err)
	}

	saved, err := s.Preferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainPreferences(saved), nil
}
