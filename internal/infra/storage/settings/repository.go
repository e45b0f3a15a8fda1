package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonScheduler/pkg/psqlbuilder"
)

const (
	table       = "settings"
	businessKey = "business"
)

// Repository key/value хранилище настроек (JSONB)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusiness настройки салона; ErrSettingsNotFound, если админ их ещё не сохранял
func (r *Repository) GetBusiness(ctx context.Context) (*domain.Settings, error) {
	raw, err := r.get(ctx, businessKey)
	if err != nil {
		return nil, err
	}
	return decodeBusiness(raw)
}

// SaveBusiness сохраняет настройки салона
func (r *Repository) SaveBusiness(ctx context.Context, s domain.Settings) error {
	raw, err := encodeBusiness(s)
	if err != nil {
		return fmt.Errorf("%w: SaveBusiness - encode: %v", ErrBuildQuery, err)
	}
	return r.upsert(ctx, businessKey, raw)
}

// GetPreferences личные настройки пользователя
func (r *Repository) GetPreferences(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error) {
	raw, err := r.get(ctx, preferencesKey(userID))
	if err != nil {
		return nil, err
	}
	return decodePreferences(raw)
}

// SavePreferences сохраняет личные настройки пользователя
func (r *Repository) SavePreferences(ctx context.Context, userID uuid.UUID, p domain.Preferences) error {
	raw, err := encodePreferences(p)
	if err != nil {
		return fmt.Errorf("%w: SavePreferences - encode: %v", ErrBuildQuery, err)
	}
	return r.upsert(ctx, preferencesKey(userID), raw)
}

func (r *Repository) get(ctx context.Context, key string) ([]byte, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From(table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: get %s - build select query: %v", ErrBuildQuery, key, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s - scan value: %v", ErrScanRow, key, err)
	}

	return raw, nil
}

func (r *Repository) upsert(ctx context.Context, key string, raw []byte) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("key", "value").
		Values(key, string(raw)).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: upsert %s - build insert query: %v", ErrBuildQuery, key, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsert %s - execute: %v", ErrExecQuery, key, err)
	}

	return nil
}

func preferencesKey(userID uuid.UUID) string {
	return "preferences:" + userID.String()
}
