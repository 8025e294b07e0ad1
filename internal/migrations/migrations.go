// Package migrations applies the embedded schema migrations with goose.
// Each supported dialect keeps its own migration set in a directory named after it.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"

	errorvalues "github.com/limbo/devhabit/internal/error_values"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedded embed.FS

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// Migrator is satisfied by *goose.Provider.
type Migrator interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
}

// FS returns the migration set of the dialect.
func FS(dialect Dialect) (fs.FS, error) {
	switch dialect {
	case Postgres, SQLite:
		return fs.Sub(embedded, string(dialect))
	default:
		return nil, fmt.Errorf("%w: %q", errorvalues.ErrUnknownDialect, dialect)
	}
}

func NewMigrator(dialect Dialect, db *sql.DB) (*goose.Provider, error) {
	fsys, err := FS(dialect)
	if err != nil {
		return nil, err
	}
	var gooseDialect goose.Dialect
	switch dialect {
	case Postgres:
		gooseDialect = goose.DialectPostgres
	case SQLite:
		gooseDialect = goose.DialectSQLite3
	}
	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("creating goose provider: %w", err)
	}
	return provider, nil
}

// Apply runs pending migrations. A failure is logged and returned so the caller
// can abort startup instead of serving on an outdated schema.
func Apply(ctx context.Context, m Migrator, logger *slog.Logger) error {
	results, err := m.Up(ctx)
	if err != nil {
		logger.Error("error while applying database migrations", slog.String("error", err.Error()))
		return fmt.Errorf("applying migrations: %w", err)
	}
	versions := make([]int64, 0, len(results))
	for _, r := range results {
		if r.Source != nil {
			versions = append(versions, r.Source.Version)
		}
	}
	logger.Info("database migrations applied successfully",
		slog.Int("applied", len(results)),
		slog.Any("versions", versions),
	)
	return nil
}
