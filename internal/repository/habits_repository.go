package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/limbo/devhabit/internal/error_values"
	"github.com/limbo/devhabit/pkg/cleanup"
	"github.com/limbo/devhabit/pkg/entity"
)

// HabitsRepository reads habits from PostgreSQL.
type HabitsRepository struct {
	conn PgConnection
}

// NewPgPool opens a pgx pool, pings it and registers its closing as a cleanup job.
func NewPgPool(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("creating pgxpool for habitsRepo: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging pgxpool for habitsRepo: %w", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

func NewHabitsRepo(ctx context.Context, cfg DBConfig) (*HabitsRepository, error) {
	pool, err := NewPgPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewHabitsRepoWithConn(pool), nil
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) GetAll(ctx context.Context) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits;`)
	if err != nil {
		return nil, fmt.Errorf("getting habits error: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("unmarshalling habit error: %w", err)
		}
		habits = append(habits, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected error after scanning: %w", err)
	}
	return habits, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id string) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = $1;`, id)
	h, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, fmt.Errorf("getting habit by id error: %w", err)
	}
	return h, nil
}

func (hr *HabitsRepository) Ping(ctx context.Context) error {
	return hr.conn.Ping(ctx)
}
