package service

import (
	"fmt"

	errorvalues "github.com/limbo/devhabit/internal/error_values"
	"github.com/limbo/devhabit/pkg/entity"
)

var (
	habitTypes = map[entity.HabitType]HabitType{
		entity.HabitTypeNone:       HabitTypeNone,
		entity.HabitTypeBinary:     HabitTypeBinary,
		entity.HabitTypeMeasurable: HabitTypeMeasurable,
	}
	frequencyTypes = map[entity.FrequencyType]FrequencyType{
		entity.FrequencyTypeNone:    FrequencyTypeNone,
		entity.FrequencyTypeDaily:   FrequencyTypeDaily,
		entity.FrequencyTypeWeekly:  FrequencyTypeWeekly,
		entity.FrequencyTypeMonthly: FrequencyTypeMonthly,
	}
	habitStatuses = map[entity.HabitStatus]HabitStatus{
		entity.HabitStatusNone:      HabitStatusNone,
		entity.HabitStatusOngoing:   HabitStatusOngoing,
		entity.HabitStatusCompleted: HabitStatusCompleted,
	}
)

// ToHabitDTO projects a stored habit onto its transport shape.
func ToHabitDTO(h *entity.Habit) (*HabitDTO, error) {
	habitType, ok := habitTypes[h.Type]
	if !ok {
		return nil, fmt.Errorf("%w: habit %s has type %d", errorvalues.ErrUnknownEnumValue, h.ID, h.Type)
	}
	frequencyType, ok := frequencyTypes[h.Frequency.Type]
	if !ok {
		return nil, fmt.Errorf("%w: habit %s has frequency type %d", errorvalues.ErrUnknownEnumValue, h.ID, h.Frequency.Type)
	}
	status, ok := habitStatuses[h.Status]
	if !ok {
		return nil, fmt.Errorf("%w: habit %s has status %d", errorvalues.ErrUnknownEnumValue, h.ID, h.Status)
	}
	dto := &HabitDTO{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		Type:        habitType,
		Frequency: FrequencyDTO{
			Type:           frequencyType,
			TimesPerPeriod: h.Frequency.TimesPerPeriod,
		},
		Target: TargetDTO{
			Value: h.Target.Value,
			Unit:  h.Target.Unit,
		},
		Status:             status,
		IsArchived:         h.IsArchived,
		CreatedAtUtc:       h.CreatedAtUtc,
		UpdatedAtUtc:       h.UpdatedAtUtc,
		LastCompletedAtUtc: h.LastCompletedAtUtc,
	}
	if h.EndDate != nil {
		d := NewDate(*h.EndDate)
		dto.EndDate = &d
	}
	if h.Milestone != nil {
		dto.Milestone = &MilestoneDTO{
			Target:  h.Milestone.Target,
			Current: h.Milestone.Current,
		}
	}
	return dto, nil
}

// ToHabitDTOs keeps the input order; the result is never nil.
func ToHabitDTOs(habits []*entity.Habit) ([]*HabitDTO, error) {
	dtos := make([]*HabitDTO, 0, len(habits))
	for _, h := range habits {
		dto, err := ToHabitDTO(h)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}
