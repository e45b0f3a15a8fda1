package schedulerequest

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("schedulerequest.repository: request not found")

	// ErrRequestNotPending возвращается, когда заявка уже рассмотрена
	ErrRequestNotPending = errors.New("schedulerequest.repository: request is not pending")

	ErrBuildQuery = errors.New("schedulerequest.repository: failed to build query")
	ErrExecQuery  = errors.New("schedulerequest.repository: failed to execute query")
	ErrScanRow    = errors.New("schedulerequest.repository: failed to scan row")
)
