package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	clientRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/client"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/clients/models"
)

// Service сервис для работы с клиентами салона
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// List список клиентов с поиском по имени, телефону или email
// Доступно всем сотрудникам: клиент выбирается при записи
func (s *Service) List(ctx context.Context, viewer *domain.Viewer, search string) (*models.ClientListResponse, error) {
	s.logger.Info("List: fetching clients for user=%s, q=%q", viewer.Identity.UserID, search)

	list, err := s.clientRepo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClientList(list), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) (*models.ClientResponse, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return models.FromDomainClient(c), nil
}

// Create создает клиента
// Доступно администратору и ресепшену
func (s *Service) Create(ctx context.Context, viewer *domain.Viewer, req *models.ClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Create: creating client by user=%s", viewer.Identity.UserID)

	if !viewer.CanManageClients() {
		s.logger.Warn("Create: access denied for user=%s role=%s", viewer.Identity.UserID, viewer.Role)
		return nil, ErrAccessDenied
	}

	c, err := toDomainClient(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.clientRepo.Create(ctx, c)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created client id=%s", created.ID)
	return models.FromDomainClient(created), nil
}

// Update изменяет клиента
// Доступно администратору и ресепшену
func (s *Service) Update(ctx context.Context, viewer *domain.Viewer, id uuid.UUID, req *models.ClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Update: updating client id=%s by user=%s", id, viewer.Identity.UserID)

	if !viewer.CanManageClients() {
		s.logger.Warn("Update: access denied for user=%s role=%s", viewer.Identity.UserID, viewer.Role)
		return nil, ErrAccessDenied
	}

	c, err := toDomainClient(req)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}
	c.ID = id

	updated, err := s.clientRepo.Update(ctx, c)
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}

	s.logger.Info("Update: successfully updated client id=%s", id)
	return models.FromDomainClient(updated), nil
}

// Delete удаляет клиента без записей
// Доступно администратору и ресепшену
func (s *Service) Delete(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) error {
	s.logger.Info("Delete: deleting client id=%s by user=%s", id, viewer.Identity.UserID)

	if !viewer.CanManageClients() {
		s.logger.Warn("Delete: access denied for user=%s role=%s", viewer.Identity.UserID, viewer.Role)
		return ErrAccessDenied
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}

	s.logger.Info("Delete: successfully deleted client id=%s", id)
	return nil
}

func (s *Service) mapError(op string, id uuid.UUID, err error) error {
	switch {
	case errors.Is(err, clientRepo.ErrClientNotFound):
		s.logger.Warn("%s: client id=%s not found", op, id)
		return ErrClientNotFound
	case errors.Is(err, clientRepo.ErrClientInUse):
		s.logger.Warn("%s: client id=%s has appointments", op, id)
		return ErrClientInUse
	}
	s.logger.Error("%s: repository error for client id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func toDomainClient(req *models.ClientRequest) (*domain.Client, error) {
	c := &domain.Client{
		Name:  strings.TrimSpace(req.Name),
		Phone: normalize(req.Phone),
		Email: normalize(req.Email),
	}

	if c.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(c.Name)) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if c.Email != nil && !strings.Contains(*c.Email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	return c, nil
}

func normalize(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
