package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

func TestDecodeBusiness_MergesOverDefaults(t *testing.T) {
	s, err := decodeBusiness([]byte(`{"businessName":"Studio Bia","appointmentDuration":30,"lunchTime":{"start":"11:30","end":"12:30"}}`))
	require.NoError(t, err)

	assert.Equal(t, "Studio Bia", s.BusinessName)
	assert.Equal(t, 30, s.AppointmentDuration)
	assert.Equal(t, types.TimeString("11:30"), s.LunchTime.Start)
	assert.Equal(t, types.TimeString(domain.DefaultWorkStart), s.WorkingHours.Start)
	assert.Equal(t, domain.DefaultCommissionRate, s.CommissionRate)
	assert.Equal(t, domain.DefaultWorkDays, s.WorkDays)
}

func TestBusiness_EncodeDecode(t *testing.T) {
	original := domain.DefaultSettings()
	original.BusinessPhone = "+55 11 99999-0000"
	original.CommissionRate = 0.4

	raw, err := encodeBusiness(original)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"lateTolerance":10`)

	decoded, err := decodeBusiness(raw)
	require.NoError(t, err)
	assert.Equal(t, original, *decoded)
}

func TestDecodePreferences(t *testing.T) {
	p, err := decodePreferences([]byte(`{"theme":"dark-mode"}`))
	require.NoError(t, err)
	assert.Equal(t, "dark-mode", p.Theme)
	assert.Equal(t, domain.DefaultLanguage, p.Language)
	assert.Equal(t, domain.NotificationsDefault, p.Notifications)

	_, err = decodePreferences([]byte(`not json`))
	assert.ErrorIs(t, err, ErrDecode)
}
