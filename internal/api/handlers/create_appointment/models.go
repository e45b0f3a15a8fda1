package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID  string  `json:"clientId"`
	ServiceID string  `json:"serviceId"`
	StaffID   string  `json:"staffId"`
	Date      string  `json:"date"` // "2025-10-15"
	Time      string  `json:"time"` // "09:20"
	Notes     *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          string  `json:"id"`
	ClientID    string  `json:"clientId"`
	ClientName  string  `json:"clientName"`
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	StaffID     string  `json:"staffId"`
	StaffName   string  `json:"staffName"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(viewer *domain.Viewer) (*createAppointment.Request, error) {
	clientID, err := uuid.Parse(r.ClientID)
	if err != nil {
		return nil, err
	}
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, err
	}
	staffID, err := uuid.Parse(r.StaffID)
	if err != nil {
		return nil, err
	}

	// Парсим дату
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Viewer:    viewer,
		ClientID:  clientID,
		ServiceID: serviceID,
		StaffID:   staffID,
		Date:      date,
		Time:      slotTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID.String(),
		ClientID:    resp.ClientID.String(),
		ClientName:  resp.ClientName,
		ServiceID:   resp.ServiceID.String(),
		ServiceName: resp.ServiceName,
		StaffID:     resp.StaffID.String(),
		StaffName:   resp.StaffName,
		Date:        handlers.FormatDate(resp.Date),
		Time:        resp.Time.String(),
		Status:      resp.Status,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
