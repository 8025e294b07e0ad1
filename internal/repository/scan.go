package repository

import (
	"time"

	"github.com/limbo/devhabit/pkg/entity"
)

// rowScanner is implemented by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (*entity.Habit, error) {
	var (
		h                                entity.Habit
		habitType, frequencyType, status int
		milestoneTarget                  *int
		milestoneCurrent                 *int
	)
	err := row.Scan(
		&h.ID,
		&h.Name,
		&h.Description,
		&habitType,
		&frequencyType,
		&h.Frequency.TimesPerPeriod,
		&h.Target.Value,
		&h.Target.Unit,
		&status,
		&h.IsArchived,
		&h.EndDate,
		&milestoneTarget,
		&milestoneCurrent,
		&h.CreatedAtUtc,
		&h.UpdatedAtUtc,
		&h.LastCompletedAtUtc,
	)
	if err != nil {
		return nil, err
	}
	h.Type = entity.HabitType(habitType)
	h.Frequency.Type = entity.FrequencyType(frequencyType)
	h.Status = entity.HabitStatus(status)
	if milestoneTarget != nil {
		h.Milestone = &entity.Milestone{Target: *milestoneTarget}
		if milestoneCurrent != nil {
			h.Milestone.Current = *milestoneCurrent
		}
	}
	h.CreatedAtUtc = h.CreatedAtUtc.UTC()
	h.UpdatedAtUtc = utcPtr(h.UpdatedAtUtc)
	h.LastCompletedAtUtc = utcPtr(h.LastCompletedAtUtc)
	if h.EndDate != nil {
		y, m, d := h.EndDate.Date()
		endDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		h.EndDate = &endDate
	}
	return &h, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
