package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки ещё не сохранялись
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrDecode возвращается, когда сохранённый JSON не удалось разобрать
	ErrDecode = errors.New("settings.repository: failed to decode value")

	ErrBuildQuery = errors.New("settings.repository: failed to build query")
	ErrExecQuery  = errors.New("settings.repository: failed to execute query")
	ErrScanRow    = errors.New("settings.repository: failed to scan row")
)
