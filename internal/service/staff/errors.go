package staff

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff: staff not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("staff: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("staff: invalid input data")

	// ErrUserAlreadyLinked учетная запись уже привязана к другому сотруднику
	ErrUserAlreadyLinked = errors.New("staff: user already linked to another staff record")

	// ErrLastAdmin нельзя удалить или понизить последнего администратора
	ErrLastAdmin = errors.New("staff: salon must keep at least one admin")

	// ErrCannotDeleteSelf администратор не может удалить собственную запись
	ErrCannotDeleteSelf = errors.New("staff: cannot delete own record")

	// ErrStaffInUse у сотрудника есть записи клиентов
	ErrStaffInUse = errors.New("staff: staff has appointments")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("staff: internal error")
)
