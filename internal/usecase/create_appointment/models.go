package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Viewer    *domain.Viewer   // Кто создает запись
	ClientID  uuid.UUID        // ID клиента
	ServiceID uuid.UUID        // ID услуги
	StaffID   uuid.UUID        // ID мастера
	Date      time.Time        // Дата записи (без времени)
	Time      types.TimeString // Время слота (например, "09:20")
	Notes     *string          // Заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	ServiceID uuid.UUID
	StaffID   uuid.UUID
	Date      time.Time
	Time      types.TimeString
	Status    string
	Notes     *string

	// Денормализованные данные для ответа
	ClientName  string
	ServiceName string
	StaffName   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
