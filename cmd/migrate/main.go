package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"madr/config"
	logs "madr/internal/infra/log"
	"madr/internal/infra/persistence/migrations"
	"madr/internal/util"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:     Apply every pending migration
// - status: List migrations and when they were applied

const defaultTimeout = 5 * time.Minute

func main() {
	timeout := flag.Duration("timeout", defaultTimeout, "Maximum time to wait for the database")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, flag.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, out io.Writer) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	if cfg.Postgres == nil {
		return errors.New("postgres configuration is required")
	}

	dialect := "postgres"
	if cfg.Migrations != nil && cfg.Migrations.Dialect != "" {
		dialect = cfg.Migrations.Dialect
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	switch command {
	case "up":
		return runUp(ctx, sqlDB, dialect, logger, out)
	case "status":
		return runStatus(ctx, sqlDB, dialect, logger, out)
	default:
		printUsage()

		return errors.Errorf("unknown command %q", command)
	}
}

func runUp(ctx context.Context, db *sql.DB, dialect string, logger *slog.Logger, out io.Writer) error {
	start := time.Now()

	results, err := migrations.Up(ctx, db, dialect, logger)
	for _, result := range results {
		fmt.Fprintf(out, "applied %s (%s)\n", result.Source.Path, util.FormatDuration(result.Duration))
	}
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "no pending migrations")
	}
	fmt.Fprintf(out, "done in %s\n", util.FormatDuration(time.Since(start)))

	return nil
}

func runStatus(ctx context.Context, db *sql.DB, dialect string, logger *slog.Logger, out io.Writer) error {
	statuses, err := migrations.Status(ctx, db, dialect, logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, status := range statuses {
		appliedAt := "-"
		if !status.AppliedAt.IsZero() {
			appliedAt = status.AppliedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", status.Source.Version, status.State, appliedAt, status.Source.Path)
	}

	return errors.WithStack(w.Flush())
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate [-timeout 5m] <up|status>")
}
