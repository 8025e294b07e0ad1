package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_habits_service.go -package=mocks

type HabitsServiceI interface {
	// Lists every stored habit projected to DTOs, in store order
	GetHabits(ctx context.Context) ([]*HabitDTO, error)
	// Projects a single habit. Returns ErrHabitNotFound for unknown ids
	GetHabit(ctx context.Context, id string) (*HabitDTO, error)
	// Reports whether the habit store can be reached
	Ping(ctx context.Context) error
}
