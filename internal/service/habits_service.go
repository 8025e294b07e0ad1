package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	errorvalues "github.com/limbo/devhabit/internal/error_values"
	"github.com/limbo/devhabit/internal/metrics"
	"github.com/limbo/devhabit/internal/repository"
)

type HabitsService struct {
	repo repository.HabitsRepositoryI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	return &HabitsService{
		repo: habitsRepo,
	}
}

func (hs *HabitsService) GetHabits(ctx context.Context) ([]*HabitDTO, error) {
	habits, err := hs.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	dtos, err := ToHabitDTOs(habits)
	if err != nil {
		return nil, err
	}
	metrics.RecordHabitsProjected(len(dtos))
	return dtos, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, id string) (*HabitDTO, error) {
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	dto, err := ToHabitDTO(habit)
	if err != nil {
		return nil, err
	}
	metrics.RecordHabitsProjected(1)
	return dto, nil
}

func (hs *HabitsService) Ping(ctx context.Context) error {
	if err := hs.repo.Ping(ctx); err != nil {
		return fmt.Errorf("habits store unreachable: %w", err)
	}
	return nil
}
