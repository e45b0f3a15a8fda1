package staff

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff.repository: staff not found")

	// ErrUserAlreadyLinked возвращается, когда пользователь уже привязан к другому сотруднику
	ErrUserAlreadyLinked = errors.New("staff.repository: user already linked to another staff record")

	// ErrStaffInUse возвращается при удалении сотрудника, у которого есть записи
	ErrStaffInUse = errors.New("staff.repository: staff has appointments")

	ErrBuildQuery = errors.New("staff.repository: failed to build query")
	ErrExecQuery  = errors.New("staff.repository: failed to execute query")
	ErrScanRow    = errors.New("staff.repository: failed to scan row")
)
