package models

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Request модели

// CreateStaffRequest запрос на добавление сотрудника
type CreateStaffRequest struct {
	Name   string  `json:"name"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Role   string  `json:"role"`
	UserID *string `json:"userId,omitempty"` // привязка к учетной записи, обычно пусто
}

// UpdateStaffRequest запрос на изменение сотрудника
// Все поля опциональны - обновляются только переданные значения
type UpdateStaffRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// Response модели

// StaffResponse ответ с данными сотрудника
type StaffResponse struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"userId,omitempty"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StaffListResponse ответ со списком сотрудников
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// PermissionsResponse что разрешено текущему пользователю
type PermissionsResponse struct {
	SeeAllAppointments     bool `json:"seeAllAppointments"`
	ManageClients          bool `json:"manageClients"`
	ManageCatalog          bool `json:"manageCatalog"`
	ViewStaff              bool `json:"viewStaff"`
	ManageStaff            bool `json:"manageStaff"`
	ManageSettings         bool `json:"manageSettings"`
	DecideScheduleRequests bool `json:"decideScheduleRequests"`
	RequestScheduleBlock   bool `json:"requestScheduleBlock"`
	ViewReports            bool `json:"viewReports"`
}

// MeResponse текущий пользователь: учетная запись, запись сотрудника и роль
type MeResponse struct {
	UserID      string              `json:"userId"`
	Email       string              `json:"email"`
	DisplayName string              `json:"displayName"`
	Role        string              `json:"role"`
	Staff       *StaffResponse      `json:"staff,omitempty"`
	Permissions PermissionsResponse `json:"permissions"`
}

// Методы конвертации

// FromDomainStaff конвертирует domain модель в DTO
func FromDomainStaff(s *domain.Staff) *StaffResponse {
	if s == nil {
		return nil
	}

	resp := &StaffResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Role:      string(s.Role),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.UserID != nil {
		userID := s.UserID.String()
		resp.UserID = &userID
	}

	return resp
}

// FromDomainStaffList конвертирует список сотрудников
func FromDomainStaffList(list []*domain.Staff) *StaffListResponse {
	resp := &StaffListResponse{Staff: make([]StaffResponse, 0, len(list))}
	for _, s := range list {
		resp.Staff = append(resp.Staff, *FromDomainStaff(s))
	}
	return resp
}

// FromViewer собирает ответ /me
func FromViewer(v *domain.Viewer) *MeResponse {
	p := v.Permissions()
	return &MeResponse{
		UserID:      v.Identity.UserID.String(),
		Email:       v.Identity.Email,
		DisplayName: v.Identity.DisplayName(),
		Role:        string(v.Role),
		Staff:       FromDomainStaff(v.Staff),
		Permissions: PermissionsResponse{
			SeeAllAppointments:     p.SeeAllAppointments,
			ManageClients:          p.ManageClients,
			ManageCatalog:          p.ManageCatalog,
			ViewStaff:              p.ViewStaff,
			ManageStaff:            p.ManageStaff,
			ManageSettings:         p.ManageSettings,
			DecideScheduleRequests: p.DecideScheduleRequests,
			RequestScheduleBlock:   p.RequestScheduleBlock,
			ViewReports:            p.ViewReports,
		},
	}
}
