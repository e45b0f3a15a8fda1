package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service an item of the salon catalog
type Service struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
	Price           decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceIndex groups catalog items by id
type ServiceIndex map[uuid.UUID]*Service

// NewServiceIndex builds a lookup table
func NewServiceIndex(services []*Service) ServiceIndex {
	idx := make(ServiceIndex, len(services))
	for _, s := range services {
		idx[s.ID] = s
	}
	return idx
}

// PriceOf returns the service price, zero when the service is unknown
func (idx ServiceIndex) PriceOf(id uuid.UUID) decimal.Decimal {
	if s, ok := idx[id]; ok {
		return s.Price
	}
	return decimal.Zero
}
