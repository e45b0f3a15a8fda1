package domain

import "github.com/google/uuid"

// VisibleAppointments narrows appointments to what the viewer may see.
// Admin and receptionist see everything, optionally filtered to selectedStaffID;
// a manicurist sees only her own appointments, nothing without a staff record.
func VisibleAppointments(all []*Appointment, viewer *Viewer, selectedStaffID *uuid.UUID) []*Appointment {
	result := make([]*Appointment, 0, len(all))

	if viewer.SeesAllAppointments() {
		for _, a := range all {
			if selectedStaffID == nil || a.StaffID == *selectedStaffID {
				result = append(result, a)
			}
		}
		return result
	}

	own, ok := viewer.StaffID()
	if !ok {
		return result
	}
	for _, a := range all {
		if a.StaffID == own {
			result = append(result, a)
		}
	}
	return result
}

// VisibleStaff manicurists the viewer may pick in a staff filter
func VisibleStaff(all []*Staff, viewer *Viewer) []*Staff {
	if viewer.SeesAllAppointments() {
		return StaffWithRole(all, RoleManicurist)
	}

	result := make([]*Staff, 0, 1)
	own, ok := viewer.StaffID()
	if !ok {
		return result
	}
	for _, s := range all {
		if s.ID == own {
			result = append(result, s)
		}
	}
	return result
}
