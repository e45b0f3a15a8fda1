package submit_schedule_request

import "errors"

var (
	// ErrAccessDenied заявки подает только мастер со своей карточкой сотрудника
	ErrAccessDenied = errors.New("submit_schedule_request: access denied")

	// ErrDateTooEarly выходной можно запросить не раньше чем на завтра
	ErrDateTooEarly = errors.New("submit_schedule_request: date must be tomorrow or later")

	// ErrAlreadyRequested сегодня уже подана заявка, которая ожидает решения или одобрена
	ErrAlreadyRequested = errors.New("submit_schedule_request: a request was already submitted today")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_schedule_request: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_schedule_request: internal error")
)
