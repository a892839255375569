package database

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// gooseLogger adapts a zap logger to goose.Logger.
type gooseLogger struct {
	sugar *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

func prepareGoose(logger *zap.Logger) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{sugar: logger.Sugar()})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	return nil
}

// Migrate applies all pending embedded migrations.
func Migrate(db *sql.DB, logger *zap.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := prepareGoose(logger); err != nil {
		return err
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// SchemaStatus returns the applied schema version and the newest embedded one.
func SchemaStatus(db *sql.DB, logger *zap.Logger) (current, latest int64, err error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := prepareGoose(logger); err != nil {
		return 0, 0, err
	}

	current, err = goose.GetDBVersion(db)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read schema version: %w", err)
	}

	all, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to collect migrations: %w", err)
	}
	if len(all) > 0 {
		latest = all[len(all)-1].Version
	}

	return current, latest, nil
}
