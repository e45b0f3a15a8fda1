package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/pkg/ptr"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

type salonFixture struct {
	admin, reception, manicuristA, manicuristB *Staff
	roster                                     []*Staff
	appointments                               []*Appointment
}

func identityOf(s *Staff) Identity {
	return Identity{UserID: *s.UserID, Email: *s.Email}
}

func newSalonFixture() salonFixture {
	mk := func(name string, role Role) *Staff {
		return &Staff{
			ID:     uuid.New(),
			UserID: ptr.Ptr(uuid.New()),
			Name:   name,
			Email:  ptr.Ptr(name + "@salon.test"),
			Role:   role,
		}
	}

	f := salonFixture{
		admin:       mk("ana", RoleAdmin),
		reception:   mk("rita", RoleReceptionist),
		manicuristA: mk("bia", RoleManicurist),
		manicuristB: mk("carla", RoleManicurist),
	}
	f.roster = []*Staff{f.admin, f.reception, f.manicuristA, f.manicuristB}

	staffIDs := []uuid.UUID{f.manicuristA.ID, f.manicuristB.ID, f.manicuristA.ID, f.manicuristB.ID, f.manicuristA.ID}
	times := []string{"08:00", "08:40", "09:20", "10:00", "10:40"}
	for i, id := range staffIDs {
		f.appointments = append(f.appointments, &Appointment{
			ID:      uuid.New(),
			StaffID: id,
			Date:    day("2025-03-12"),
			Time:    types.TimeString(times[i]),
			Status:  StatusScheduled,
		})
	}
	return f
}

func staffIDsOf(appointments []*Appointment) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(appointments))
	for _, a := range appointments {
		ids = append(ids, a.StaffID)
	}
	return ids
}

func TestVisibleAppointments(t *testing.T) {
	f := newSalonFixture()

	adminView := NewViewer(identityOf(f.admin), f.roster)
	receptionView := NewViewer(identityOf(f.reception), f.roster)
	viewA := NewViewer(identityOf(f.manicuristA), f.roster)

	assert.Len(t, VisibleAppointments(f.appointments, adminView, nil), 5)
	assert.Len(t, VisibleAppointments(f.appointments, receptionView, nil), 5)

	own := VisibleAppointments(f.appointments, viewA, nil)
	require.Len(t, own, 3)
	for _, a := range own {
		assert.Equal(t, f.manicuristA.ID, a.StaffID)
	}

	narrowed := VisibleAppointments(f.appointments, adminView, &f.manicuristB.ID)
	assert.Equal(t, []uuid.UUID{f.manicuristB.ID, f.manicuristB.ID}, staffIDsOf(narrowed))

	narrowed = VisibleAppointments(f.appointments, receptionView, &f.manicuristA.ID)
	assert.Len(t, narrowed, 3)
}

func TestVisibleAppointments_ManicuristIgnoresStaffFilter(t *testing.T) {
	f := newSalonFixture()
	viewA := NewViewer(identityOf(f.manicuristA), f.roster)

	got := VisibleAppointments(f.appointments, viewA, &f.manicuristB.ID)
	assert.Len(t, got, 3)
	for _, a := range got {
		assert.Equal(t, f.manicuristA.ID, a.StaffID)
	}
}

func TestVisibleAppointments_EmailFallback(t *testing.T) {
	f := newSalonFixture()
	f.manicuristA.UserID = nil

	viewer := NewViewer(Identity{UserID: uuid.New(), Email: "BIA@salon.test"}, f.roster)
	require.NotNil(t, viewer.Staff)
	assert.Equal(t, f.manicuristA.ID, viewer.Staff.ID)
	assert.Len(t, VisibleAppointments(f.appointments, viewer, nil), 3)
}

func TestVisibleAppointments_NoStaffRecord(t *testing.T) {
	f := newSalonFixture()
	stranger := NewViewer(Identity{UserID: uuid.New(), Email: "new@salon.test"}, f.roster)

	assert.Equal(t, RoleManicurist, stranger.Role)
	assert.Empty(t, VisibleAppointments(f.appointments, stranger, nil))
	assert.Empty(t, VisibleStaff(f.roster, stranger))
}

func TestVisibleStaff(t *testing.T) {
	f := newSalonFixture()

	for _, s := range []*Staff{f.admin, f.reception} {
		got := VisibleStaff(f.roster, NewViewer(identityOf(s), f.roster))
		assert.Equal(t, []*Staff{f.manicuristA, f.manicuristB}, got)
	}

	got := VisibleStaff(f.roster, NewViewer(identityOf(f.manicuristB), f.roster))
	assert.Equal(t, []*Staff{f.manicuristB}, got)
}

func TestVisibility_SameSetAcrossViews(t *testing.T) {
	f := newSalonFixture()
	target := day("2025-03-12")

	for _, s := range f.roster {
		viewer := NewViewer(identityOf(s), f.roster)
		visible := VisibleAppointments(f.appointments, viewer, nil)

		var perView [][]*Appointment
		for _, view := range []CalendarView{ViewDay, ViewWeek, ViewMonth} {
			from, to, err := CalendarRange(view, target)
			require.NoError(t, err)
			require.False(t, target.Before(from) || target.After(to))
			perView = append(perView, AppointmentsOn(visible, target))
		}
		assert.Equal(t, perView[0], perView[1], "viewer %s", s.Name)
		assert.Equal(t, perView[0], perView[2], "viewer %s", s.Name)
	}
}
