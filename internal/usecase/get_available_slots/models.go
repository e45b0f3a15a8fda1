package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// Request модель запроса свободных слотов мастера
type Request struct {
	Viewer  *domain.Viewer // Кто запрашивает
	StaffID uuid.UUID      // ID мастера
	Date    time.Time      // Дата (без времени)
}

// Response модель ответа со слотами дня
type Response struct {
	Date             time.Time // Дата, на которую запрашивались слоты
	StaffID          uuid.UUID // ID мастера
	IsWorkDay        bool      // Рабочий ли день по настройкам салона
	StaffUnavailable bool      // У мастера одобрен выходной
	Slots            []Slot    // Слоты вне обеда
}

// Slot модель временного слота
type Slot struct {
	Time      types.TimeString // Время начала слота (например, "09:20")
	Available bool             // Слот свободен и еще не прошел
}
