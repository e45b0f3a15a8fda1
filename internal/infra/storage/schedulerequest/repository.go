package schedulerequest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonScheduler/pkg/psqlbuilder"
)

const table = "schedule_requests"

var columns = []string{"id", "staff_id", "date", "reason", "status", "created_at", "approved_at", "rejected_at"}

// Repository заявки сотрудников на блокировку дня
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заявку со статусом pending
func (r *Repository) Create(ctx context.Context, req *domain.ScheduleRequest) (*domain.ScheduleRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("staff_id", "date", "reason", "status").
		Values(req.StaffID, req.Date.Format(domain.DateFormat), req.Reason, req.Status).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return req, nil
}

// GetByFilter заявки, новые сначала
func (r *Repository) GetByFilter(ctx context.Context, filter domain.ScheduleRequestFilter) ([]*domain.ScheduleRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table)

	if filter.StaffID != nil {
		builder = builder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.CreatedFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedBefore != nil {
		builder = builder.Where(squirrel.Lt{"created_at": *filter.CreatedBefore})
	}

	builder = builder.OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ScheduleRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByFilter - scan request: %v", ErrScanRow, err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// SaveDecision записывает решение администратора.
// Обновление условное: заявка должна всё ещё быть pending.
func (r *Repository) SaveDecision(ctx context.Context, req *domain.ScheduleRequest) (*domain.ScheduleRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", req.Status).
		Set("approved_at", req.ApprovedAt).
		Set("rejected_at", req.RejectedAt).
		Where(squirrel.Eq{"id": req.ID, "status": domain.RequestPending}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: SaveDecision - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotPending
	}
	if err != nil {
		return nil, fmt.Errorf("%w: SaveDecision - execute update: %v", ErrExecQuery, err)
	}

	return updated, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.ScheduleRequest, error) {
	var (
		req                    domain.ScheduleRequest
		approvedAt, rejectedAt sql.NullTime
	)

	if err := row.Scan(
		&req.ID,
		&req.StaffID,
		&req.Date,
		&req.Reason,
		&req.Status,
		&req.CreatedAt,
		&approvedAt,
		&rejectedAt,
	); err != nil {
		return nil, err
	}

	req.Date = domain.DateOnly(req.Date)
	if approvedAt.Valid {
		req.ApprovedAt = &approvedAt.Time
	}
	if rejectedAt.Valid {
		req.RejectedAt = &rejectedAt.Time
	}

	return &req, nil
}
