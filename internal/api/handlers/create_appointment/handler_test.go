package create_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/create_appointment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *createAppointment.Request
	resp *createAppointment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func newRequest(body string, viewer *domain.Viewer) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if viewer != nil {
		r = r.WithContext(middleware.WithViewer(r.Context(), viewer))
	}
	return r
}

func TestHandler_Handle(t *testing.T) {
	viewer := &domain.Viewer{Role: domain.RoleReceptionist}
	clientID, serviceID, staffID := uuid.New(), uuid.New(), uuid.New()
	body := fmt.Sprintf(`{"clientId":%q,"serviceId":%q,"staffId":%q,"date":"2026-03-12","time":"9:20"}`,
		clientID, serviceID, staffID)

	t.Run("created", func(t *testing.T) {
		created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		uc := &fakeUseCase{resp: &createAppointment.Response{
			ID:          uuid.New(),
			ClientID:    clientID,
			ServiceID:   serviceID,
			StaffID:     staffID,
			Date:        time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			Time:        "09:20",
			Status:      "scheduled",
			ClientName:  "Maria",
			ServiceName: "Manicure",
			StaffName:   "Ana",
			CreatedAt:   created,
			UpdatedAt:   created,
		}}
		rec := httptest.NewRecorder()

		NewHandler(uc, nopLogger{}).Handle(rec, newRequest(body, viewer))

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, uc.got)
		assert.Equal(t, viewer, uc.got.Viewer)
		assert.Equal(t, staffID, uc.got.StaffID)
		assert.Equal(t, "09:20", uc.got.Time.String())

		var resp AppointmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "2026-03-12", resp.Date)
		assert.Equal(t, "Maria", resp.ClientName)
		assert.Equal(t, "scheduled", resp.Status)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			err  error
			want int
		}{
			{createAppointment.ErrAccessDenied, http.StatusForbidden},
			{createAppointment.ErrClientNotFound, http.StatusNotFound},
			{createAppointment.ErrServiceNotFound, http.StatusNotFound},
			{createAppointment.ErrStaffNotFound, http.StatusNotFound},
			{createAppointment.ErrPastDate, http.StatusBadRequest},
			{createAppointment.ErrInvalidTimeSlot, http.StatusBadRequest},
			{createAppointment.ErrStaffUnavailable, http.StatusConflict},
			{createAppointment.ErrSlotNotAvailable, http.StatusConflict},
			{createAppointment.ErrInvalidInput, http.StatusBadRequest},
			{fmt.Errorf("%w: db down", createAppointment.ErrInternal), http.StatusInternalServerError},
		}
		for _, tt := range tests {
			t.Run(tt.err.Error(), func(t *testing.T) {
				rec := httptest.NewRecorder()
				NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}).Handle(rec, newRequest(body, viewer))
				assert.Equal(t, tt.want, rec.Code)
			})
		}
	})

	t.Run("bad fields never reach use case", func(t *testing.T) {
		bodies := []string{
			`{"clientId":"x"}`,
			fmt.Sprintf(`{"clientId":%q,"serviceId":%q,"staffId":%q,"date":"12.03.2026","time":"09:20"}`, clientID, serviceID, staffID),
			fmt.Sprintf(`{"clientId":%q,"serviceId":%q,"staffId":%q,"date":"2026-03-12","time":"25:00"}`, clientID, serviceID, staffID),
			`not json`,
		}
		for _, b := range bodies {
			uc := &fakeUseCase{}
			rec := httptest.NewRecorder()
			NewHandler(uc, nopLogger{}).Handle(rec, newRequest(b, viewer))
			assert.Equal(t, http.StatusBadRequest, rec.Code, b)
			assert.Nil(t, uc.got)
		}
	})

	t.Run("no viewer", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(&fakeUseCase{}, nopLogger{}).Handle(rec, newRequest(body, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
