package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/limbo/devhabit/pkg/entity"
)

type HabitsRepositoryI interface {
	// Lists every habit in the order the store enumerates them
	GetAll(ctx context.Context) ([]*entity.Habit, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id string) (*entity.Habit, error)
	// Checks that the store is reachable
	Ping(ctx context.Context) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

// Column order shared by every habit query and by scanHabit.
const habitColumns = `id, name, description, type, frequency_type, frequency_times_per_period,
	target_value, target_unit, status, is_archived, end_date, milestone_target, milestone_current,
	created_at_utc, updated_at_utc, last_completed_at_utc`
