package repository_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/limbo/devhabit/pkg/entity"
)

var habitColumnNames = []string{
	"id", "name", "description", "type", "frequency_type", "frequency_times_per_period",
	"target_value", "target_unit", "status", "is_archived", "end_date", "milestone_target",
	"milestone_current", "created_at_utc", "updated_at_utc", "last_completed_at_utc",
}

func ptr[T any](v T) *T {
	return &v
}

func newHabitID() string {
	return "h_" + uuid.NewString()
}

// testHabits covers a habit with every optional value set and one with none.
func testHabits() []*entity.Habit {
	created := time.Date(2025, 1, 10, 8, 30, 0, 0, time.UTC)
	return []*entity.Habit{
		{
			ID:                 newHabitID(),
			Name:               "Running",
			Description:        "Run every week",
			Type:               entity.HabitTypeMeasurable,
			Frequency:          entity.Frequency{Type: entity.FrequencyTypeWeekly, TimesPerPeriod: 2},
			Target:             entity.Target{Value: 10, Unit: "km"},
			Status:             entity.HabitStatusOngoing,
			IsArchived:         false,
			EndDate:            ptr(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)),
			Milestone:          &entity.Milestone{Target: 100, Current: 35},
			CreatedAtUtc:       created,
			UpdatedAtUtc:       ptr(created.Add(48 * time.Hour)),
			LastCompletedAtUtc: ptr(created.Add(72 * time.Hour)),
		},
		{
			ID:           newHabitID(),
			Name:         "Meditate",
			Description:  "",
			Type:         entity.HabitTypeBinary,
			Frequency:    entity.Frequency{Type: entity.FrequencyTypeDaily, TimesPerPeriod: 1},
			Target:       entity.Target{Value: 1, Unit: "sessions"},
			Status:       entity.HabitStatusCompleted,
			IsArchived:   true,
			CreatedAtUtc: created.Add(time.Hour),
		},
	}
}

// habitRowValues flattens a habit the way the habits table stores it.
func habitRowValues(h *entity.Habit) []any {
	var milestoneTarget, milestoneCurrent *int
	if h.Milestone != nil {
		milestoneTarget = ptr(h.Milestone.Target)
		milestoneCurrent = ptr(h.Milestone.Current)
	}
	return []any{
		h.ID, h.Name, h.Description, int(h.Type), int(h.Frequency.Type), h.Frequency.TimesPerPeriod,
		h.Target.Value, h.Target.Unit, int(h.Status), h.IsArchived, h.EndDate, milestoneTarget,
		milestoneCurrent, h.CreatedAtUtc, h.UpdatedAtUtc, h.LastCompletedAtUtc,
	}
}
