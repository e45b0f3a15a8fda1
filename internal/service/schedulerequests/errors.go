package schedulerequests

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("schedulerequests: request not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("schedulerequests: access denied")

	// ErrAlreadyDecided заявка уже одобрена или отклонена
	ErrAlreadyDecided = errors.New("schedulerequests: request already decided")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedulerequests: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedulerequests: internal error")
)
