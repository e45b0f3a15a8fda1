package delete_appointment

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Request модель запроса на удаление записи
type Request struct {
	Viewer *domain.Viewer // Кто удаляет запись
	ID     uuid.UUID      // ID записи
}
