package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

func TestGenerateTimeSlots_Count(t *testing.T) {
	tests := []struct {
		name      string
		start     types.TimeString
		end       types.TimeString
		duration  int
		wantCount int
	}{
		{name: "default salon day", start: "08:00", end: "18:00", duration: 40, wantCount: 15},
		{name: "exact division", start: "09:00", end: "10:00", duration: 30, wantCount: 2},
		{name: "partial last slot", start: "09:00", end: "10:00", duration: 25, wantCount: 3},
		{name: "duration longer than window", start: "09:00", end: "09:10", duration: 60, wantCount: 1},
		{name: "one minute slots", start: "23:50", end: "23:59", duration: 1, wantCount: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateTimeSlots(tt.start, tt.end, tt.duration, "", "")
			require.NoError(t, err)
			require.Len(t, slots, tt.wantCount)

			startMin, _ := tt.start.Minutes()
			endMin, _ := tt.end.Minutes()
			expected := (endMin - startMin + tt.duration - 1) / tt.duration
			assert.Equal(t, expected, len(slots))

			assert.Equal(t, tt.start, slots[0].Time)
			prev := -1
			for _, s := range slots {
				m, err := s.Time.Minutes()
				require.NoError(t, err)
				assert.Greater(t, m, prev)
				assert.Less(t, m, endMin)
				prev = m
			}
		})
	}
}

func TestGenerateTimeSlots_Empty(t *testing.T) {
	slots, err := GenerateTimeSlots("10:00", "10:00", 30, "12:00", "13:00")
	require.NoError(t, err)
	assert.Empty(t, slots)

	slots, err = GenerateTimeSlots("18:00", "08:00", 30, "12:00", "13:00")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_Lunch(t *testing.T) {
	slots, err := GenerateTimeSlots("08:00", "18:00", 40, "12:00", "13:00")
	require.NoError(t, err)

	lunch := map[types.TimeString]bool{}
	for _, s := range slots {
		m, _ := s.Time.Minutes()
		inWindow := m >= 12*60 && m < 13*60
		assert.Equal(t, inWindow, s.IsLunch, "slot %s", s.Time)
		if s.IsLunch {
			lunch[s.Time] = true
		}
	}
	// 08:00 + 40*6 = 12:00, 12:40; 13:20 is outside
	assert.Equal(t, map[types.TimeString]bool{"12:00": true, "12:40": true}, lunch)
}

func TestGenerateTimeSlots_LunchEndExclusive(t *testing.T) {
	slots, err := GenerateTimeSlots("11:00", "14:00", 60, "12:00", "13:00")
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.False(t, slots[0].IsLunch)
	assert.True(t, slots[1].IsLunch)
	assert.False(t, slots[2].IsLunch)
}

func TestGenerateTimeSlots_InvalidInput(t *testing.T) {
	_, err := GenerateTimeSlots("08:00", "18:00", 0, "", "")
	assert.ErrorIs(t, err, ErrInvalidSlotDuration)

	_, err = GenerateTimeSlots("8h", "18:00", 30, "", "")
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}

func TestFindSlot(t *testing.T) {
	slots, err := GenerateTimeSlots("08:00", "10:00", 40, "", "")
	require.NoError(t, err)

	s, ok := FindSlot(slots, "8:40")
	assert.True(t, ok)
	assert.Equal(t, types.TimeString("08:40"), s.Time)

	_, ok = FindSlot(slots, "08:30")
	assert.False(t, ok)
}
