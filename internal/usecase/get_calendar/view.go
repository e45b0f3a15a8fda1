package get_calendar

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// lookups справочники для подстановки имен, пустые при ошибке чтения
type lookups struct {
	clients  map[uuid.UUID]*domain.Client
	services domain.ServiceIndex
	staff    []*domain.Staff
}

func (l lookups) appointmentView(a *domain.Appointment, today time.Time) AppointmentView {
	view := AppointmentView{
		ID:        a.ID,
		ClientID:  a.ClientID,
		ServiceID: a.ServiceID,
		Price:     l.services.PriceOf(a.ServiceID),
		StaffID:   a.StaffID,
		Date:      a.Date,
		Time:      a.Time,
		Status:    string(a.Status),
		Notes:     a.Notes,
		Editable:  a.IsEditable(today),
	}
	if c, ok := l.clients[a.ClientID]; ok {
		view.ClientName = c.Name
	}
	if s, ok := l.services[a.ServiceID]; ok {
		view.ServiceName = s.Name
	}
	if s := domain.FindStaffByID(l.staff, a.StaffID); s != nil {
		view.StaffName = s.Name
	}
	return view
}

func (l lookups) appointmentViews(list []*domain.Appointment, today time.Time) []AppointmentView {
	result := make([]AppointmentView, 0, len(list))
	for _, a := range list {
		result = append(result, l.appointmentView(a, today))
	}
	return result
}

// buildSlots раскладывает записи дня по слотам сетки
func buildSlots(grid []domain.TimeSlot, dayAppointments []AppointmentView, isPast bool) []SlotView {
	result := make([]SlotView, 0, len(grid))
	for _, s := range grid {
		slot := SlotView{
			Time:         s.Time,
			IsLunch:      s.IsLunch,
			Bookable:     !s.IsLunch && !isPast,
			Appointments: make([]AppointmentView, 0),
		}
		for _, a := range dayAppointments {
			if a.Time.Equal(s.Time) {
				slot.Appointments = append(slot.Appointments, a)
			}
		}
		result = append(result, slot)
	}
	return result
}

// blockedStaff мастера с одобренным выходным на day
func blockedStaff(requests []*domain.ScheduleRequest, day time.Time) []uuid.UUID {
	result := make([]uuid.UUID, 0)
	for _, r := range requests {
		if r.Status == domain.RequestApproved && domain.IsSameDay(r.Date, day) {
			result = append(result, r.StaffID)
		}
	}
	return result
}

func staffOptions(list []*domain.Staff) []StaffOption {
	result := make([]StaffOption, 0, len(list))
	for _, s := range list {
		result = append(result, StaffOption{ID: s.ID, Name: s.Name})
	}
	return result
}
