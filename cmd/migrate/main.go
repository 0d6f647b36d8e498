package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"recipeme/config"
	logs "recipeme/internal/infra/log"
	"recipeme/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported commands are goose's: up, up-by-one, up-to VERSION, down,
// down-to VERSION, redo, reset, status, version.

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, flag.Arg(0), flag.Args()[1:]...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args ...string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
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

	return postgres.RunMigrationCommand(ctx, sqlDB, logger, command, args...)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <command> [args]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  up                 Apply all pending migrations")
	fmt.Fprintln(os.Stderr, "  up-by-one          Apply the next pending migration")
	fmt.Fprintln(os.Stderr, "  up-to VERSION      Apply migrations up to VERSION")
	fmt.Fprintln(os.Stderr, "  down               Roll back the latest migration")
	fmt.Fprintln(os.Stderr, "  down-to VERSION    Roll back to VERSION")
	fmt.Fprintln(os.Stderr, "  redo               Roll back and re-apply the latest migration")
	fmt.Fprintln(os.Stderr, "  reset              Roll back every migration")
	fmt.Fprintln(os.Stderr, "  status             Show applied and pending migrations")
	fmt.Fprintln(os.Stderr, "  version            Print the current schema version")
}
