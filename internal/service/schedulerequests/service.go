package schedulerequests

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	requestRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/schedulerequest"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/schedulerequests/models"
)

// Service просмотр и рассмотрение заявок на выходной
type Service struct {
	requestRepo  RequestRepository
	staffRepo    StaffRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	requestRepo RequestRepository,
	staffRepo StaffRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		requestRepo:  requestRepo,
		staffRepo:    staffRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// List заявки на выходной
// Администратор и ресепшен видят все заявки, мастер - только свои
func (s *Service) List(ctx context.Context, viewer *domain.Viewer, status *string) (*models.ScheduleRequestListResponse, error) {
	s.logger.Info("List: fetching schedule requests for user=%s role=%s", viewer.Identity.UserID, viewer.Role)

	filter := domain.ScheduleRequestFilter{}
	if status != nil && *status != "" {
		st := domain.ScheduleRequestStatus(*status)
		if !st.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
		}
		filter.Status = &st
	}

	if !viewer.SeesAllAppointments() {
		own, ok := viewer.StaffID()
		if !ok {
			return models.FromDomainRequestList(nil, nil), nil
		}
		filter.StaffID = &own
	}

	list, err := s.requestRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	roster, err := s.staffRepo.List(ctx)
	if err != nil {
		// имена сотрудников не обязательны для списка
		s.logger.Warn("List: failed to list staff, names omitted: %v", err)
		roster = nil
	}

	return models.FromDomainRequestList(list, roster), nil
}

// Approve одобряет заявку
// Доступно только администратору
func (s *Service) Approve(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) (*models.ScheduleRequestResponse, error) {
	return s.decide(ctx, "Approve", viewer, id, (*domain.ScheduleRequest).Approve)
}

// Reject отклоняет заявку
// Доступно только администратору
func (s *Service) Reject(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) (*models.ScheduleRequestResponse, error) {
	return s.decide(ctx, "Reject", viewer, id, (*domain.ScheduleRequest).Reject)
}

func (s *Service) decide(
	ctx context.Context,
	op string,
	viewer *domain.Viewer,
	id uuid.UUID,
	transition func(*domain.ScheduleRequest, time.Time) error,
) (*models.ScheduleRequestResponse, error) {
	s.logger.Info("%s: schedule request id=%s by user=%s", op, id, viewer.Identity.UserID)

	// 1. Проверяем права доступа
	if !viewer.CanDecideScheduleRequests() {
		s.logger.Warn("%s: access denied for user=%s role=%s", op, viewer.Identity.UserID, viewer.Role)
		return nil, ErrAccessDenied
	}

	// 2. Получаем заявку
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("%s: request id=%s not found", op, id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("%s: repository error for request id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - get request: %v", ErrInternal, op, err)
	}

	// 3. Меняем статус
	if err := transition(req, s.timeProvider.Now()); err != nil {
		s.logger.Warn("%s: request id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: status is %s", ErrAlreadyDecided, req.Status)
	}

	// 4. Сохраняем: запись проходит, только если заявка все еще pending
	saved, err := s.requestRepo.SaveDecision(ctx, req)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotPending) {
			s.logger.Warn("%s: request id=%s was decided concurrently", op, id)
			return nil, ErrAlreadyDecided
		}
		s.logger.Error("%s: repository error for request id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - save decision: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: request id=%s is now %s", op, id, saved.Status)
	s.notifier.ScheduleRequestDecided(ctx, saved)

	staffName := ""
	if roster, err := s.staffRepo.List(ctx); err == nil {
		if st := domain.FindStaffByID(roster, saved.StaffID); st != nil {
			staffName = st.Name
		}
	}
	return models.FromDomainRequest(saved, staffName), nil
}
