package update_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// Request модель запроса на изменение записи
// Поля со значением nil не меняются
type Request struct {
	Viewer    *domain.Viewer    // Кто меняет запись
	ID        uuid.UUID         // ID записи
	ClientID  *uuid.UUID        // Новый клиент
	ServiceID *uuid.UUID        // Новая услуга
	StaffID   *uuid.UUID        // Новый мастер
	Date      *time.Time        // Новая дата
	Time      *types.TimeString // Новое время
	Status    *string           // Новый статус
	Notes     *string           // Заметки, пустая строка очищает
}

// Response модель ответа с обновленной записью
type Response struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	ServiceID uuid.UUID
	StaffID   uuid.UUID
	Date      time.Time
	Time      types.TimeString
	Status    string
	Notes     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
