// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"madr/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedded embed.FS

// Source returns the embedded migration files.
func Source() fs.FS {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		panic(err)
	}

	return sub
}

// NewProvider creates a goose provider over the embedded migrations. dialect is a
// goose dialect name such as "postgres" or "sqlite3".
func NewProvider(db *sql.DB, dialect string, logger *slog.Logger) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.Dialect(dialect), db, Source(),
		goose.WithLogger(&slogGooseLogger{logger: logger}),
		goose.WithVerbose(logger != nil),
		goose.WithDisableGlobalRegistry(true),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s migration provider", dialect)
	}

	return provider, nil
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB, dialect string, logger *slog.Logger) ([]*goose.MigrationResult, error) {
	provider, err := NewProvider(db, dialect, logger)
	if err != nil {
		return nil, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return results, errors.Wrap(err, "apply migrations")
	}

	return results, nil
}

// Status reports every known migration and whether it has been applied.
func Status(ctx context.Context, db *sql.DB, dialect string, logger *slog.Logger) ([]*goose.MigrationStatus, error) {
	provider, err := NewProvider(db, dialect, logger)
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "read migration status")
	}

	return statuses, nil
}

// slogGooseLogger adapts slog to goose.Logger.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Info("goose", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, v...))))
}

func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	if l.logger != nil {
		l.logger.Error("goose", slog.String("message", msg))
	}
	panic(msg)
}
