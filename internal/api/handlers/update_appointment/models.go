package update_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	updateAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// UpdateAppointmentRequest HTTP request model
// Все поля опциональны - меняются только переданные значения
type UpdateAppointmentRequest struct {
	ClientID  *string `json:"clientId,omitempty"`
	ServiceID *string `json:"serviceId,omitempty"`
	StaffID   *string `json:"staffId,omitempty"`
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
	Status    *string `json:"status,omitempty"` // scheduled | completed | cancelled | no-show
	Notes     *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        string  `json:"id"`
	ClientID  string  `json:"clientId"`
	ServiceID string  `json:"serviceId"`
	StaffID   string  `json:"staffId"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(viewer *domain.Viewer, id uuid.UUID) (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{
		Viewer: viewer,
		ID:     id,
		Status: r.Status,
		Notes:  r.Notes,
	}

	var err error
	if req.ClientID, err = parseOptionalUUID(r.ClientID); err != nil {
		return nil, err
	}
	if req.ServiceID, err = parseOptionalUUID(r.ServiceID); err != nil {
		return nil, err
	}
	if req.StaffID, err = parseOptionalUUID(r.StaffID); err != nil {
		return nil, err
	}

	if r.Date != nil {
		date, err := handlers.ParseDate(*r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.Time != nil {
		slotTime, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return nil, err
		}
		req.Time = &slotTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        resp.ID.String(),
		ClientID:  resp.ClientID.String(),
		ServiceID: resp.ServiceID.String(),
		StaffID:   resp.StaffID.String(),
		Date:      handlers.FormatDate(resp.Date),
		Time:      resp.Time.String(),
		Status:    resp.Status,
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
