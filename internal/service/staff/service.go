package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	staffRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/staff/models"
)

const maxBootstrapAttempts = 3

// Service сервис для работы с сотрудниками салона
type Service struct {
	staffRepo StaffRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(
	staffRepo StaffRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		staffRepo: staffRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// ResolveViewer определяет, кто выполняет запрос.
// Запись сотрудника ищется по user id, затем по email; найденная по email запись привязывается к учетной записи.
// Если записи нет, она создается: первый сотрудник салона становится администратором.
func (s *Service) ResolveViewer(ctx context.Context, identity domain.Identity) (*domain.Viewer, error) {
	roster, err := s.staffRepo.List(ctx)
	if err != nil {
		s.logger.Error("ResolveViewer: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: ResolveViewer - list staff: %v", ErrInternal, err)
	}

	if own := domain.FindStaffFor(identity, roster); own != nil {
		if own.UserID == nil {
			roster = s.linkIdentity(ctx, identity, own, roster)
		}
		return domain.NewViewer(identity, roster), nil
	}

	for attempt := 1; attempt <= maxBootstrapAttempts; attempt++ {
		roster, err = s.bootstrap(ctx, identity)
		if err == nil {
			return domain.NewViewer(identity, roster), nil
		}
		s.logger.Warn("ResolveViewer: bootstrap attempt %d for user=%s failed: %v", attempt, identity.UserID, err)
	}

	s.logger.Error("ResolveViewer: failed to bootstrap staff record for user=%s: %v", identity.UserID, err)
	return nil, fmt.Errorf("%w: ResolveViewer - bootstrap: %v", ErrInternal, err)
}

// bootstrap создает запись сотрудника для новой учетной записи.
// Чтение списка и вставка идут в одной serializable транзакции, поэтому два первых
// пользователя не могут оба стать администраторами.
func (s *Service) bootstrap(ctx context.Context, identity domain.Identity) ([]*domain.Staff, error) {
	var roster []*domain.Staff

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		var err error
		roster, err = s.staffRepo.List(ctx)
		if err != nil {
			return err
		}
		if domain.FindStaffFor(identity, roster) != nil {
			return nil
		}

		record := &domain.Staff{
			UserID: &identity.UserID,
			Name:   identity.DisplayName(),
			Role:   domain.BootstrapRole(identity, len(roster)),
		}
		if identity.Email != "" {
			email := identity.Email
			record.Email = &email
		}

		created, err := s.staffRepo.Create(ctx, record)
		if err != nil {
			return err
		}

		s.logger.Info("ResolveViewer: created staff id=%s role=%s for user=%s", created.ID, created.Role, identity.UserID)
		roster = append(roster, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return roster, nil
}

// linkIdentity привязывает найденную по email запись к учетной записи
func (s *Service) linkIdentity(ctx context.Context, identity domain.Identity, own *domain.Staff, roster []*domain.Staff) []*domain.Staff {
	linked := *own
	linked.UserID = &identity.UserID

	updated, err := s.staffRepo.Update(ctx, &linked)
	if err != nil {
		s.logger.Warn("ResolveViewer: failed to link staff id=%s to user=%s: %v", own.ID, identity.UserID, err)
		return roster
	}

	s.logger.Info("ResolveViewer: linked staff id=%s to user=%s", own.ID, identity.UserID)
	result := make([]*domain.Staff, len(roster))
	for i, st := range roster {
		if st.ID == updated.ID {
			result[i] = updated
			continue
		}
		result[i] = st
	}
	return result
}

// Me данные текущего пользователя
func (s *Service) Me(viewer *domain.Viewer) *models.MeResponse {
	return models.FromViewer(viewer)
}

// List список сотрудников
// Доступно администратору и ресепшену
func (s *Service) List(ctx context.Context, viewer *domain.Viewer) (*models.StaffListResponse, error) {
	s.logger.Info("List: fetching staff for user=%s", viewer.Identity.UserID)

	if !viewer.CanViewStaff() {
		s.logger.Warn("List: access denied for user=%s role=%s", viewer.Identity.UserID, viewer.Role)
		return nil, ErrAccessDenied
	}

	roster, err := s.staffRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaffList(roster), nil
}

// GetByID получает сотрудника по ID
// Сотрудник видит свою запись, администратор и ресепшен - любую
func (s *Service) GetByID(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) (*models.StaffResponse, error) {
	if !viewer.CanViewStaff() && !viewer.IsOwnStaff(id) {
		s.logger.Warn("GetByID: access denied for user=%s to staff id=%s", viewer.Identity.UserID, id)
		return nil, ErrAccessDenied
	}

	record, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetByID: repository error for staff id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaff(record), nil
}

// Create добавляет сотрудника
// Доступно только администратору
func (s *Service) Create(ctx context.Context, viewer *domain.Viewer, req *models.CreateStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("Create: creating staff name=%q role=%s by user=%s", req.Name, req.Role, viewer.Identity.UserID)

	// 1. Проверяем права доступа
	if !viewer.CanManageStaff() {
		s.logger.Warn("Create: access denied for user=%s role=%s", viewer.Identity.UserID, viewer.Role)
		return nil, ErrAccessDenied
	}

	// 2. Валидируем входные данные
	record := &domain.Staff{
		Name:  strings.TrimSpace(req.Name),
		Email: normalize(req.Email),
		Phone: normalize(req.Phone),
		Role:  domain.Role(req.Role),
	}
	if req.UserID != nil && strings.TrimSpace(*req.UserID) != "" {
		userID, err := uuid.Parse(strings.TrimSpace(*req.UserID))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid userId", ErrInvalidInput)
		}
		record.UserID = &userID
	}
	if err := validateStaff(record); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 3. Сохраняем
	created, err := s.staffRepo.Create(ctx, record)
	if err != nil {
		if errors.Is(err, staffRepo.ErrUserAlreadyLinked) {
			return nil, ErrUserAlreadyLinked
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created staff id=%s", created.ID)
	return models.FromDomainStaff(created), nil
}

// Update изменяет сотрудника
// Доступно только администратору; последний администратор не может потерять роль
func (s *Service) Update(ctx context.Context, viewer *domain.Viewer, id uuid.UUID, req *models.UpdateStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("Update: updating staff id=%s by user=%s", id, viewer.Identity.UserID)

	// 1. Проверяем права доступа
	if !viewer.CanManageStaff() {
		s.logger.Warn("Update: access denied for user=%s role=%s", viewer.Identity.UserID, viewer.Role)
		return nil, ErrAccessDenied
	}

	var updated *domain.Staff
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 2. Получаем текущую запись
		current, err := s.staffRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		// 3. Применяем изменения
		next := *current
		if req.Name != nil {
			next.Name = strings.TrimSpace(*req.Name)
		}
		if req.Email != nil {
			next.Email = normalize(req.Email)
		}
		if req.Phone != nil {
			next.Phone = normalize(req.Phone)
		}
		if req.Role != nil {
			next.Role = domain.Role(*req.Role)
		}
		if err := validateStaff(&next); err != nil {
			return err
		}

		// 4. Не оставляем салон без администратора
		if current.Role == domain.RoleAdmin && next.Role != domain.RoleAdmin {
			if err := s.ensureAnotherAdmin(ctx, current.ID); err != nil {
				return err
			}
		}

		updated, err = s.staffRepo.Update(ctx, &next)
		return err
	})
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}

	s.logger.Info("Update: successfully updated staff id=%s", id)
	return models.FromDomainStaff(updated), nil
}

// Delete удаляет сотрудника без записей клиентов
// Доступно только администратору
func (s *Service) Delete(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) error {
	s.logger.Info("Delete: deleting staff id=%s by user=%s", id, viewer.Identity.UserID)

	if !viewer.CanManageStaff() {
		s.logger.Warn("Delete: access denied for user=%s role=%s", viewer.Identity.UserID, viewer.Role)
		return ErrAccessDenied
	}
	if viewer.IsOwnStaff(id) {
		return ErrCannotDeleteSelf
	}

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		current, err := s.staffRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current.Role == domain.RoleAdmin {
			if err := s.ensureAnotherAdmin(ctx, current.ID); err != nil {
				return err
			}
		}
		return s.staffRepo.Delete(ctx, id)
	})
	if err != nil {
		return s.mapError("Delete", id, err)
	}

	s.logger.Info("Delete: successfully deleted staff id=%s", id)
	return nil
}

func (s *Service) ensureAnotherAdmin(ctx context.Context, exceptID uuid.UUID) error {
	roster, err := s.staffRepo.List(ctx)
	if err != nil {
		return err
	}
	for _, admin := range domain.StaffWithRole(roster, domain.RoleAdmin) {
		if admin.ID != exceptID {
			return nil
		}
	}
	return ErrLastAdmin
}

func (s *Service) mapError(op string, id uuid.UUID, err error) error {
	switch {
	case errors.Is(err, staffRepo.ErrStaffNotFound):
		s.logger.Warn("%s: staff id=%s not found", op, id)
		return ErrStaffNotFound
	case errors.Is(err, staffRepo.ErrUserAlreadyLinked):
		return ErrUserAlreadyLinked
	case errors.Is(err, staffRepo.ErrStaffInUse):
		s.logger.Warn("%s: staff id=%s has appointments", op, id)
		return ErrStaffInUse
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrLastAdmin):
		s.logger.Warn("%s: rejected for staff id=%s: %v", op, id, err)
		return err
	}
	s.logger.Error("%s: repository error for staff id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validateStaff(s *domain.Staff) error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(s.Name)) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if !s.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s.Role)
	}
	if s.Email != nil && !strings.Contains(*s.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return nil
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
