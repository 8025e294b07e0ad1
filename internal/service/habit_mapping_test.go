package service_test

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/devhabit/internal/error_values"
	"github.com/limbo/devhabit/internal/service"
	"github.com/limbo/devhabit/pkg/entity"
)

func TestEnumProjectionByName(t *testing.T) {
	t.Run("habit type", func(t *testing.T) {
		cases := map[entity.HabitType]service.HabitType{
			entity.HabitTypeNone:       "None",
			entity.HabitTypeBinary:     "Binary",
			entity.HabitTypeMeasurable: "Measurable",
		}
		for in, want := range cases {
			dto, err := service.ToHabitDTO(&entity.Habit{Type: in})
			require.NoError(t, err)
			assert.Equal(t, want, dto.Type)
		}
	})
	t.Run("frequency type", func(t *testing.T) {
		cases := map[entity.FrequencyType]service.FrequencyType{
			entity.FrequencyTypeNone:    "None",
			entity.FrequencyTypeDaily:   "Daily",
			entity.FrequencyTypeWeekly:  "Weekly",
			entity.FrequencyTypeMonthly: "Monthly",
		}
		for in, want := range cases {
			dto, err := service.ToHabitDTO(&entity.Habit{Frequency: entity.Frequency{Type: in}})
			require.NoError(t, err)
			assert.Equal(t, want, dto.Frequency.Type)
		}
	})
	t.Run("status", func(t *testing.T) {
		cases := map[entity.HabitStatus]service.HabitStatus{
			entity.HabitStatusNone:      "None",
			entity.HabitStatusOngoing:   "Ongoing",
			entity.HabitStatusCompleted: "Completed",
		}
		for in, want := range cases {
			dto, err := service.ToHabitDTO(&entity.Habit{Status: in})
			require.NoError(t, err)
			assert.Equal(t, want, dto.Status)
		}
	})
	t.Run("out of range values", func(t *testing.T) {
		broken := []*entity.Habit{
			{Type: entity.HabitType(-1)},
			{Frequency: entity.Frequency{Type: entity.FrequencyType(4)}},
			{Status: entity.HabitStatus(3)},
		}
		for _, h := range broken {
			_, err := service.ToHabitDTO(h)
			assert.ErrorIs(t, err, errorvalues.ErrUnknownEnumValue)
		}
	})
}

func TestToHabitDTOs(t *testing.T) {
	t.Run("same length and order", func(t *testing.T) {
		in := []*entity.Habit{readingHabit, runningHabit, readingHabit}
		out, err := service.ToHabitDTOs(in)
		require.NoError(t, err)
		require.Len(t, out, len(in))
		for i := range in {
			assert.Equal(t, in[i].ID, out[i].ID)
		}
	})
	t.Run("nil input gives empty slice", func(t *testing.T) {
		out, err := service.ToHabitDTOs(nil)
		assert.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}

func TestHabitDTOJSON(t *testing.T) {
	t.Run("absent values encode as null", func(t *testing.T) {
		dto, err := service.ToHabitDTO(runningHabit)
		require.NoError(t, err)
		body, err := sonic.Marshal(dto)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"id": "h_running",
			"name": "Running",
			"description": "Run twice a week",
			"type": "Measurable",
			"frequency": {"type": "Weekly", "timesPerPeriod": 2},
			"target": {"value": 10, "unit": "km"},
			"status": "Ongoing",
			"isArchived": false,
			"endDate": null,
			"milestone": null,
			"createdAtUtc": "2025-03-01T09:00:00Z",
			"updatedAtUtc": null,
			"lastCompletedAtUtc": null
		}`, string(body))
	})
	t.Run("present values", func(t *testing.T) {
		dto, err := service.ToHabitDTO(readingHabit)
		require.NoError(t, err)
		body, err := sonic.Marshal(dto)
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, sonic.Unmarshal(body, &decoded))
		assert.Equal(t, "2025-06-30", decoded["endDate"])
		assert.Equal(t, map[string]any{"target": float64(50), "current": float64(12)}, decoded["milestone"])
		assert.Equal(t, "2025-03-02T09:00:00Z", decoded["updatedAtUtc"])
		assert.Equal(t, "2025-03-02T21:00:00Z", decoded["lastCompletedAtUtc"])
	})
}

func TestDate(t *testing.T) {
	d := service.NewDate(time.Date(2025, 6, 30, 23, 59, 0, 0, time.FixedZone("X", 3*3600)))
	body, err := sonic.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-30"`, string(body))

	var back service.Date
	require.NoError(t, sonic.Unmarshal(body, &back))
	assert.Equal(t, d, back)

	assert.Error(t, back.UnmarshalJSON([]byte(`20250630`)))
	assert.Error(t, back.UnmarshalJSON([]byte(`"30/06/2025"`)))
}
