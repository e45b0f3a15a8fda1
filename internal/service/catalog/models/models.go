package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// ServiceRequest запрос на создание или изменение услуги
type ServiceRequest struct {
	Name            string          `json:"name"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"` // "25.00" или 25
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           string    `json:"price"` // "25.00"
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID.String(),
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price.StringFixed(2),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список услуг
func FromDomainServiceList(list []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(list))}
	for _, s := range list {
		resp.Services = append(resp.Services, *FromDomainService(s))
	}
	return resp
}
