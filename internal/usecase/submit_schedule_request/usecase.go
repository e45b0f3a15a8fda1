package submit_schedule_request

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// UseCase use case подачи заявки на выходной
type UseCase struct {
	requestRepo  ScheduleRequestRepository
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo ScheduleRequestRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:  requestRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute подает заявку. Не больше одной ожидающей или одобренной заявки в день.
// Проверка и вставка выполняются в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitScheduleRequest: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("SubmitScheduleRequest: user=%s, date=%s", req.Viewer.Identity.UserID, req.Date.Format(domain.DateFormat))

	// 2. Проверяем права: только мастер со своей карточкой
	if !req.Viewer.CanRequestScheduleBlock() {
		uc.logger.Warn("SubmitScheduleRequest: user=%s role=%s cannot submit requests", req.Viewer.Identity.UserID, req.Viewer.Role)
		return nil, ErrAccessDenied
	}
	staff := req.Viewer.Staff

	// 3. Дата не раньше завтрашнего дня
	now := uc.timeProvider.Now()
	if err := domain.ValidateRequestDate(req.Date, now); err != nil {
		uc.logger.Warn("SubmitScheduleRequest: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDateTooEarly, err)
	}

	// Переменная для хранения результата
	var result *domain.ScheduleRequest

	// 4. Проверка лимита и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Заявки мастера, поданные сегодня
		from, to := dayBounds(now)
		today, err := uc.requestRepo.GetByFilter(txCtx, domain.ScheduleRequestFilter{
			StaffID:       &staff.ID,
			CreatedFrom:   &from,
			CreatedBefore: &to,
		})
		if err != nil {
			uc.logger.Error("SubmitScheduleRequest: failed to get requests: %v", err)
			return fmt.Errorf("%w: failed to get requests: %v", ErrInternal, err)
		}

		// 4.2. Ожидающая или одобренная заявка блокирует новую
		if blocking := domain.FindBlockingRequest(today, staff.ID, now); blocking != nil {
			uc.logger.Warn("SubmitScheduleRequest: staff=%s already has a %s request today", staff.ID, blocking.Status)
			return fmt.Errorf("%w: existing request is %s", ErrAlreadyRequested, blocking.Status)
		}

		// 4.3. Создаем заявку
		created, err := uc.requestRepo.Create(txCtx, &domain.ScheduleRequest{
			StaffID: staff.ID,
			Date:    domain.DateOnly(req.Date),
			Reason:  strings.TrimSpace(req.Reason),
			Status:  domain.RequestPending,
		})
		if err != nil {
			uc.logger.Error("SubmitScheduleRequest: failed to create request: %v", err)
			return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitScheduleRequest: created request id=%s for staff=%s", result.ID, staff.ID)

	// 5. Уведомляем администраторов
	uc.notifier.ScheduleRequestSubmitted(ctx, result)

	return &Response{
		ID:        result.ID,
		StaffID:   result.StaffID,
		StaffName: staff.Name,
		Date:      result.Date,
		Reason:    result.Reason,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
	}, nil
}
