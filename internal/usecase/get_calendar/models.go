package get_calendar

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// Request модель запроса календаря
type Request struct {
	Viewer  *domain.Viewer      // Кто смотрит календарь
	View    domain.CalendarView // day, week или month
	Date    time.Time           // Любой день периода
	StaffID *uuid.UUID          // Фильтр по мастеру (только для администратора и ресепшена)
}

// Response календарь за период
type Response struct {
	View              domain.CalendarView
	From              time.Time // Первый день периода
	To                time.Time // Последний день периода
	Today             time.Time
	NoHoursConfigured bool          // Начало и конец рабочего дня совпадают
	Staff             []StaffOption // Мастера, доступные в фильтре
	Days              []Day
}

// StaffOption элемент фильтра по мастеру
type StaffOption struct {
	ID   uuid.UUID
	Name string
}

// Day один день календаря
type Day struct {
	Date            time.Time
	IsToday         bool
	IsPast          bool
	IsWorkDay       bool
	BlockedStaffIDs []uuid.UUID       // Мастера с одобренным выходным
	Appointments    []AppointmentView // Видимые записи дня
	Slots           []SlotView        // Только для дневного вида
}

// SlotView слот дневной сетки
type SlotView struct {
	Time         types.TimeString
	IsLunch      bool
	Bookable     bool // Не обед и день не в прошлом
	Appointments []AppointmentView
}

// AppointmentView запись с подставленными именами
type AppointmentView struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	ClientName  string
	ServiceID   uuid.UUID
	ServiceName string
	Price       decimal.Decimal
	StaffID     uuid.UUID
	StaffName   string
	Date        time.Time
	Time        types.TimeString
	Status      string
	Notes       *string
	Editable    bool
}
