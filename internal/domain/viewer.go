package domain

import "github.com/google/uuid"

// Viewer the caller of an operation: identity, own staff record and resolved role.
// Built once per operation and passed to every rule that depends on who is asking.
type Viewer struct {
	Identity Identity
	Staff    *Staff // nil when the identity has no staff record
	Role     Role
}

// NewViewer resolves the caller against the staff roster
func NewViewer(identity Identity, roster []*Staff) *Viewer {
	return &Viewer{
		Identity: identity,
		Staff:    FindStaffFor(identity, roster),
		Role:     ResolveRole(identity, roster),
	}
}

// StaffID own staff record id
func (v *Viewer) StaffID() (uuid.UUID, bool) {
	if v.Staff == nil {
		return uuid.Nil, false
	}
	return v.Staff.ID, true
}

func (v *Viewer) IsAdmin() bool {
	return v.Role == RoleAdmin
}

// SeesAllAppointments admin and receptionist see the whole salon
func (v *Viewer) SeesAllAppointments() bool {
	return v.Role == RoleAdmin || v.Role == RoleReceptionist
}

// IsOwnStaff the staff id is the caller's own record
func (v *Viewer) IsOwnStaff(staffID uuid.UUID) bool {
	own, ok := v.StaffID()
	return ok && own == staffID
}

// CanBookFor admin and receptionist book for anyone, a manicurist only for their own schedule
func (v *Viewer) CanBookFor(staffID uuid.UUID) bool {
	return v.SeesAllAppointments() || v.IsOwnStaff(staffID)
}

// CanSeeAppointment visibility rule for a single appointment
func (v *Viewer) CanSeeAppointment(a *Appointment) bool {
	return v.SeesAllAppointments() || v.IsOwnStaff(a.StaffID)
}

func (v *Viewer) CanManageClients() bool {
	return v.Role == RoleAdmin || v.Role == RoleReceptionist
}

func (v *Viewer) CanManageCatalog() bool {
	return v.IsAdmin()
}

func (v *Viewer) CanViewStaff() bool {
	return v.Role == RoleAdmin || v.Role == RoleReceptionist
}

func (v *Viewer) CanManageStaff() bool {
	return v.IsAdmin()
}

func (v *Viewer) CanManageSettings() bool {
	return v.IsAdmin()
}

// CanDecideScheduleRequests approval and rejection are admin-only
func (v *Viewer) CanDecideScheduleRequests() bool {
	return v.IsAdmin()
}

// CanRequestScheduleBlock only a manicurist with a staff record submits requests
func (v *Viewer) CanRequestScheduleBlock() bool {
	return v.Role == RoleManicurist && v.Staff != nil
}

// CanViewReports admin sees the salon report, a manicurist her own numbers
func (v *Viewer) CanViewReports() bool {
	return v.IsAdmin() || (v.Role == RoleManicurist && v.Staff != nil)
}

// Permissions flat view of the checks above, returned to the client
type Permissions struct {
	SeeAllAppointments     bool
	ManageClients          bool
	ManageCatalog          bool
	ViewStaff              bool
	ManageStaff            bool
	ManageSettings         bool
	DecideScheduleRequests bool
	RequestScheduleBlock   bool
	ViewReports            bool
}

func (v *Viewer) Permissions() Permissions {
	return Permissions{
		SeeAllAppointments:     v.SeesAllAppointments(),
		ManageClients:          v.CanManageClients(),
		ManageCatalog:          v.CanManageCatalog(),
		ViewStaff:              v.CanViewStaff(),
		ManageStaff:            v.CanManageStaff(),
		ManageSettings:         v.CanManageSettings(),
		DecideScheduleRequests: v.CanDecideScheduleRequests(),
		RequestScheduleBlock:   v.CanRequestScheduleBlock(),
		ViewReports:            v.CanViewReports(),
	}
}
