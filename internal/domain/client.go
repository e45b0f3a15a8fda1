package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client a salon customer
type Client struct {
	ID    uuid.UUID
	Name  string
	Phone *string
	Email *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Matches case-insensitive search over name, phone and email
func (c *Client) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name), q) {
		return true
	}
	if c.Phone != nil && strings.Contains(strings.ToLower(*c.Phone), q) {
		return true
	}
	return c.Email != nil && strings.Contains(strings.ToLower(*c.Email), q)
}
