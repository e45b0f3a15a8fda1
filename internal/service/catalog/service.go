package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog/models"
)

// Service сервис каталога услуг салона
type Service struct {
	serviceRepo ServiceRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// EnsureDefaults заполняет пустой каталог стандартными услугами.
// Возвращает количество созданных услуг.
func (s *Service) EnsureDefaults(ctx context.Context) (int, error) {
	created := 0

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		existing, err := s.serviceRepo.List(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}

		for _, item := range domain.DefaultCatalog {
			price, err := decimal.NewFromString(item.Price)
			if err != nil {
				return err
			}
			if _, err := s.serviceRepo.Create(ctx, &domain.Service{
				Name:            item.Name,
				DurationMinutes: item.Duration,
				Price:           price,
			}); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		s.logger.Error("EnsureDefaults: failed to seed catalog: %v", err)
		return 0, fmt.Errorf("%w: EnsureDefaults - seed catalog: %v", ErrInternal, err)
	}

	if created > 0 {
		s.logger.Info("EnsureDefaults: seeded %d default services", created)
	}
	return created, nil
}

// List список услуг
// Доступно всем сотрудникам
func (s *Service) List(ctx context.Context, viewer *domain.Viewer) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching services for user=%s", viewer.Identity.UserID)

	list, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(list), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) (*models.ServiceResponse, error) {
	item, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return models.FromDomainService(item), nil
}

// Create добавляет услугу
// Доступно только администратору
func (s *Service) Create(ctx context.Context, viewer *domain.Viewer, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q by user=%s", req.Name, viewer.Identity.UserID)

	if !viewer.CanManageCatalog() {
		s.logger.Warn("Create: access denied for user=%s role=%s", viewer.Identity.UserID, viewer.Role)
		return nil, ErrAccessDenied
	}

	item, err := toDomainService(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%s", created.ID)
	return models.FromDomainService(created), nil
}

// Update изменяет услугу
// Доступно только администратору
func (s *Service) Update(ctx context.Context, viewer *domain.Viewer, id uuid.UUID, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%s by user=%s", id, viewer.Identity.UserID)

	if !viewer.CanManageCatalog() {
		s.logger.Warn("Update: access denied for user=%s role=%s", viewer.Identity.UserID, viewer.Role)
		return nil, ErrAccessDenied
	}

	item, err := toDomainService(req)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}
	item.ID = id

	updated, err := s.serviceRepo.Update(ctx, item)
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}

	s.logger.Info("Update: successfully updated service id=%s", id)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу без записей
// Доступно только администратору
func (s *Service) Delete(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) error {
	s.logger.Info("Delete: deleting service id=%s by user=%s", id, viewer.Identity.UserID)

	if !viewer.CanManageCatalog() {
		s.logger.Warn("Delete: access denied for user=%s role=%s", viewer.Identity.UserID, viewer.Role)
		return ErrAccessDenied
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%s", id)
	return nil
}

func (s *Service) mapError(op string, id uuid.UUID, err error) error {
	switch {
	case errors.Is(err, catalogRepo.ErrServiceNotFound):
		s.logger.Warn("%s: service id=%s not found", op, id)
		return ErrServiceNotFound
	case errors.Is(err, catalogRepo.ErrServiceInUse):
		s.logger.Warn("%s: service id=%s has appointments", op, id)
		return ErrServiceInUse
	}
	s.logger.Error("%s: repository error for service id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func toDomainService(req *models.ServiceRequest) (*domain.Service, error) {
	item := &domain.Service{
		Name:            strings.TrimSpace(req.Name),
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price.Round(2),
	}

	if item.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(item.Name)) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if item.DurationMinutes <= 0 || item.DurationMinutes > domain.MaxServiceDuration {
		return nil, fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, domain.MaxServiceDuration)
	}
	if item.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	return item, nil
}
