package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"recipeme/internal/errors"
	"recipeme/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

const migrationsDialect = "postgres"

// gooseUpContext is a seam for tests.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := prepareGoose(logger); err != nil {
		return err
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// RunMigrationCommand runs a goose command ("up", "down", "status", ...) against
// the embedded migrations.
func RunMigrationCommand(ctx context.Context, db *sql.DB, logger *slog.Logger, command string, args ...string) error {
	if err := prepareGoose(logger); err != nil {
		return err
	}

	if err := goose.RunContext(ctx, command, db, ".", args...); err != nil {
		return errors.Wrapf(err, "goose %s", command)
	}

	return nil
}

func prepareGoose(logger *slog.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(&gooseSlogLogger{logger: logger})

	if err := goose.SetDialect(migrationsDialect); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	return nil
}

// gooseSlogLogger routes goose output through slog.
type gooseSlogLogger struct {
	logger *slog.Logger
}

func (l *gooseSlogLogger) Printf(format string, v ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "goose"))
}

// Fatalf is only reached by goose's own CLI helpers; it logs instead of exiting.
func (l *gooseSlogLogger) Fatalf(format string, v ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "goose"))
}
