package get_available_slots

import (
	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SalonScheduler/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date             string          `json:"date"`
	StaffID          string          `json:"staffId"`
	IsWorkDay        bool            `json:"isWorkDay"`
	StaffUnavailable bool            `json:"staffUnavailable"`
	Slots            []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:      slot.Time.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:             handlers.FormatDate(resp.Date),
		StaffID:          resp.StaffID.String(),
		IsWorkDay:        resp.IsWorkDay,
		StaffUnavailable: resp.StaffUnavailable,
		Slots:            slots,
	}
}
