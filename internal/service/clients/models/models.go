package models

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// ClientRequest запрос на создание или изменение клиента
type ClientRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainClientList конвертирует список клиентов
func FromDomainClientList(list []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{Clients: make([]ClientResponse, 0, len(list))}
	for _, c := range list {
		resp.Clients = append(resp.Clients, *FromDomainClient(c))
	}
	return resp
}
