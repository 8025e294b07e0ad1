package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	errorvalues "github.com/limbo/devhabit/internal/error_values"
	"github.com/limbo/devhabit/pkg/cleanup"
	"github.com/limbo/devhabit/pkg/entity"
)

// SQLiteHabitsRepository reads habits from a SQLite database file.
// Meant for local development, the schema matches the PostgreSQL one.
type SQLiteHabitsRepository struct {
	db *sql.DB
}

// OpenSQLite opens the database at path with WAL and foreign keys on, and
// registers its closing as a cleanup job.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite db",
		F:    db.Close,
	})
	return db, nil
}

func NewSQLiteHabitsRepo(db *sql.DB) *SQLiteHabitsRepository {
	return &SQLiteHabitsRepository{
		db: db,
	}
}

func (sr *SQLiteHabitsRepository) GetAll(ctx context.Context) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := sr.db.QueryContext(ctx, `SELECT `+habitColumns+` FROM habits;`)
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

func (sr *SQLiteHabitsRepository) GetByID(ctx context.Context, id string) (*entity.Habit, error) {
	row := sr.db.QueryRowContext(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = ?;`, id)
	h, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, fmt.Errorf("getting habit by id error: %w", err)
	}
	return h, nil
}

func (sr *SQLiteHabitsRepository) Ping(ctx context.Context) error {
	return sr.db.PingContext(ctx)
}
