package get_calendar

import (
	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-SalonScheduler/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	View              string        `json:"view"`
	From              string        `json:"from"`
	To                string        `json:"to"`
	Today             string        `json:"today"`
	NoHoursConfigured bool          `json:"noHoursConfigured"`
	Staff             []StaffOption `json:"staff"`
	Days              []Day         `json:"days"`
}

type StaffOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Day struct {
	Date            string        `json:"date"`
	IsToday         bool          `json:"isToday"`
	IsPast          bool          `json:"isPast"`
	IsWorkDay       bool          `json:"isWorkDay"`
	BlockedStaffIDs []string      `json:"blockedStaffIds"`
	Appointments    []Appointment `json:"appointments"`
	Slots           []Slot        `json:"slots,omitempty"` // только для view=day
}

type Slot struct {
	Time         string        `json:"time"`
	IsLunch      bool          `json:"isLunch"`
	Bookable     bool          `json:"bookable"`
	Appointments []Appointment `json:"appointments"`
}

type Appointment struct {
	ID          string  `json:"id"`
	ClientID    string  `json:"clientId"`
	ClientName  string  `json:"clientName"`
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Price       string  `json:"price"` // "25.00"
	StaffID     string  `json:"staffId"`
	StaffName   string  `json:"staffName"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	Editable    bool    `json:"editable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		View:              string(resp.View),
		From:              handlers.FormatDate(resp.From),
		To:                handlers.FormatDate(resp.To),
		Today:             handlers.FormatDate(resp.Today),
		NoHoursConfigured: resp.NoHoursConfigured,
		Staff:             make([]StaffOption, 0, len(resp.Staff)),
		Days:              make([]Day, 0, len(resp.Days)),
	}

	for _, s := range resp.Staff {
		out.Staff = append(out.Staff, StaffOption{ID: s.ID.String(), Name: s.Name})
	}

	for _, d := range resp.Days {
		day := Day{
			Date:            handlers.FormatDate(d.Date),
			IsToday:         d.IsToday,
			IsPast:          d.IsPast,
			IsWorkDay:       d.IsWorkDay,
			BlockedStaffIDs: make([]string, 0, len(d.BlockedStaffIDs)),
			Appointments:    fromAppointments(d.Appointments),
		}
		for _, id := range d.BlockedStaffIDs {
			day.BlockedStaffIDs = append(day.BlockedStaffIDs, id.String())
		}
		for _, s := range d.Slots {
			day.Slots = append(day.Slots, Slot{
				Time:         s.Time.String(),
				IsLunch:      s.IsLunch,
				Bookable:     s.Bookable,
				Appointments: fromAppointments(s.Appointments),
			})
		}
		out.Days = append(out.Days, day)
	}

	return out
}

func fromAppointments(list []getCalendar.AppointmentView) []Appointment {
	out := make([]Appointment, 0, len(list))
	for _, a := range list {
		out = append(out, Appointment{
			ID:          a.ID.String(),
			ClientID:    a.ClientID.String(),
			ClientName:  a.ClientName,
			ServiceID:   a.ServiceID.String(),
			ServiceName: a.ServiceName,
			Price:       a.Price.StringFixed(2),
			StaffID:     a.StaffID.String(),
			StaffName:   a.StaffName,
			Date:        handlers.FormatDate(a.Date),
			Time:        a.Time.String(),
			Status:      a.Status,
			Notes:       a.Notes,
			Editable:    a.Editable,
		})
	}
	return out
}
