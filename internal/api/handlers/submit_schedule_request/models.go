package submit_schedule_request

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	submitRequest "github.com/m04kA/SMC-SalonScheduler/internal/usecase/submit_schedule_request"
)

// SubmitRequest HTTP request model
type SubmitRequest struct {
	Date   string `json:"date"` // "2025-10-15"
	Reason string `json:"reason"`
}

// ScheduleRequestResponse HTTP response model
type ScheduleRequestResponse struct {
	ID        string `json:"id"`
	StaffID   string `json:"staffId"`
	StaffName string `json:"staffName"`
	Date      string `json:"date"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func FromUseCaseResponse(resp *submitRequest.Response) *ScheduleRequestResponse {
	return &ScheduleRequestResponse{
		ID:        resp.ID.String(),
		StaffID:   resp.StaffID.String(),
		StaffName: resp.StaffName,
		Date:      handlers.FormatDate(resp.Date),
		Reason:    resp.Reason,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
