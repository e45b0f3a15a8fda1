package submit_schedule_request

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Request модель запроса на выходной
type Request struct {
	Viewer *domain.Viewer // Мастер, подающий заявку
	Date   time.Time      // Запрашиваемый день
	Reason string         // Причина (обязательна)
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID        uuid.UUID
	StaffID   uuid.UUID
	StaffName string
	Date      time.Time
	Reason    string
	Status    string
	CreatedAt time.Time
}
