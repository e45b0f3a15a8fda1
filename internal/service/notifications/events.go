package notifications

import (
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Event тип уведомления
type Event string

const (
	EventAppointmentCreated   Event = "appointment_created"
	EventAppointmentChanged   Event = "appointment_changed"
	EventAppointmentCancelled Event = "appointment_cancelled"
	EventRequestSubmitted     Event = "schedule_request_submitted"
	EventRequestDecided       Event = "schedule_request_decided"
)

func appointmentTitle(event Event) string {
	switch event {
	case EventAppointmentCreated:
		return "Novo agendamento"
	case EventAppointmentCancelled:
		return "Agendamento cancelado"
	default:
		return "Agendamento alterado"
	}
}

func appointmentBody(clientName, serviceName string, a *domain.Appointment) string {
	if clientName == "" {
		clientName = "Cliente"
	}
	body := fmt.Sprintf("%s - %s em %s às %s", clientName, serviceName, a.Date.Format("02/01/2006"), a.Time)
	if serviceName == "" {
		body = fmt.Sprintf("%s em %s às %s", clientName, a.Date.Format("02/01/2006"), a.Time)
	}
	return body
}

func requestSubmittedBody(staffName string, r *domain.ScheduleRequest) string {
	return fmt.Sprintf("%s pediu folga em %s: %s", staffName, r.Date.Format("02/01/2006"), r.Reason)
}

func requestDecidedTitle(r *domain.ScheduleRequest) string {
	if r.Status == domain.RequestApproved {
		return "Folga aprovada"
	}
	return "Folga recusada"
}

func requestDecidedBody(r *domain.ScheduleRequest) string {
	if r.Status == domain.RequestApproved {
		return fmt.Sprintf("Sua folga em %s foi aprovada.", r.Date.Format("02/01/2006"))
	}
	return fmt.Sprintf("Sua folga em %s foi recusada.", r.Date.Format("02/01/2006"))
}
