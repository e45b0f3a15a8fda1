package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role closed set of staff roles
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleReceptionist Role = "receptionist"
	RoleManicurist   Role = "manicurist"
)

// IsValid reports whether the role is one of the known values
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleReceptionist, RoleManicurist:
		return true
	}
	return false
}

// Staff an employee record, distinct from the login identity
type Staff struct {
	ID     uuid.UUID
	UserID *uuid.UUID // linked auth identity, nil until the employee signs in
	Name   string
	Email  *string
	Phone  *string
	Role   Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLinkedTo matches the record against an identity by user id
func (s *Staff) IsLinkedTo(identity Identity) bool {
	return s.UserID != nil && *s.UserID == identity.UserID
}

// HasEmail case-insensitive email match
func (s *Staff) HasEmail(email string) bool {
	return s.Email != nil && email != "" && strings.EqualFold(*s.Email, email)
}

// FindStaffFor resolves the staff record of an identity: linked user id first, then email
func FindStaffFor(identity Identity, roster []*Staff) *Staff {
	for _, s := range roster {
		if s.IsLinkedTo(identity) {
			return s
		}
	}
	for _, s := range roster {
		if s.HasEmail(identity.Email) {
			return s
		}
	}
	return nil
}

// FindStaffByID roster lookup
func FindStaffByID(roster []*Staff, id uuid.UUID) *Staff {
	for _, s := range roster {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// StaffWithRole filters the roster by role, keeping order
func StaffWithRole(roster []*Staff, role Role) []*Staff {
	result := make([]*Staff, 0)
	for _, s := range roster {
		if s.Role == role {
			result = append(result, s)
		}
	}
	return result
}

// ResolveRole the staff record's role wins; without one the provider-controlled
// app_metadata role is used; everyone else is a manicurist.
func ResolveRole(identity Identity, roster []*Staff) Role {
	if s := FindStaffFor(identity, roster); s != nil && s.Role.IsValid() {
		return s.Role
	}
	if hint := Role(identity.AppMetadataString("role")); hint.IsValid() {
		return hint
	}
	return RoleManicurist
}

// BootstrapRole role for a new staff record: the very first record is the admin
func BootstrapRole(identity Identity, rosterSize int) Role {
	if rosterSize == 0 {
		return RoleAdmin
	}
	if hint := Role(identity.AppMetadataString("role")); hint.IsValid() {
		return hint
	}
	return RoleManicurist
}
