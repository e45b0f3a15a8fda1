package models

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// ScheduleRequestResponse ответ с данными заявки
type ScheduleRequestResponse struct {
	ID         string     `json:"id"`
	StaffID    string     `json:"staffId"`
	StaffName  string     `json:"staffName"`
	Date       string     `json:"date"` // "2025-10-15"
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	RejectedAt *time.Time `json:"rejectedAt,omitempty"`
}

// ScheduleRequestListResponse ответ со списком заявок
type ScheduleRequestListResponse struct {
	Requests []ScheduleRequestResponse `json:"requests"`
}

// FromDomainRequest конвертирует domain модель в DTO
func FromDomainRequest(r *domain.ScheduleRequest, staffName string) *ScheduleRequestResponse {
	if r == nil {
		return nil
	}
	return &ScheduleRequestResponse{
		ID:         r.ID.String(),
		StaffID:    r.StaffID.String(),
		StaffName:  staffName,
		Date:       r.Date.Format(domain.DateFormat),
		Reason:     r.Reason,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
		ApprovedAt: r.ApprovedAt,
		RejectedAt: r.RejectedAt,
	}
}

// FromDomainRequestList конвертирует список заявок, подставляя имена сотрудников
func FromDomainRequestList(list []*domain.ScheduleRequest, roster []*domain.Staff) *ScheduleRequestListResponse {
	resp := &ScheduleRequestListResponse{Requests: make([]ScheduleRequestResponse, 0, len(list))}
	for _, r := range list {
		resp.Requests = append(resp.Requests, *FromDomainRequest(r, staffName(roster, r)))
	}
	return resp
}

func staffName(roster []*domain.Staff, r *domain.ScheduleRequest) string {
	if s := domain.FindStaffByID(roster, r.StaffID); s != nil {
		return s.Name
	}
	return ""
}
