// Package migrator applies the embedded schema migrations with golang-migrate.
package migrator

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/goodnatureofminers/utxopayroll-backend/migrations"
	"go.uber.org/zap"
)

// Backend selects a migrations directory and database driver.
type Backend string

const (
	MySQL      Backend = "mysql"
	SQLite     Backend = "sqlite"
	ClickHouse Backend = "clickhouse"
)

// ErrUnknownBackend is returned for a backend without migrations.
var ErrUnknownBackend = errors.New("migrator: unknown backend")

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case MySQL, SQLite, ClickHouse:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// Up applies pending migrations to the database at databaseURL.
func Up(backend Backend, databaseURL string, logger *zap.Logger) error {
	m, err := newFromURL(backend, databaseURL, logger)
	if err != nil {
		return err
	}
	defer closeMigrator(m, logger)
	return up(m, backend, logger)
}

// Down reverts every migration of the database at databaseURL.
func Down(backend Backend, databaseURL string, logger *zap.Logger) error {
	m, err := newFromURL(backend, databaseURL, logger)
	if err != nil {
		return err
	}
	defer closeMigrator(m, logger)

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s down: %w", backend, err)
	}
	return nil
}

// UpDB applies pending migrations through an open handle. The handle stays
// open; closing the migrator would close it.
func UpDB(db *sql.DB, backend Backend, logger *zap.Logger) error {
	if db == nil {
		return errors.New("migrator: db is required")
	}
	src, err := sourceFor(backend)
	if err != nil {
		return err
	}

	var driver database.Driver
	switch backend {
	case MySQL:
		driver, err = migratemysql.WithInstance(db, &migratemysql.Config{})
	case SQLite:
		driver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		return fmt.Errorf("%w: %q has no sql handle driver", ErrUnknownBackend, backend)
	}
	if err != nil {
		return fmt.Errorf("init %s migrate driver: %w", backend, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, string(backend), driver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	m.Log = newLogger(logger)
	return up(m, backend, logger)
}

func newFromURL(backend Backend, databaseURL string, logger *zap.Logger) (*migrate.Migrate, error) {
	if databaseURL == "" {
		return nil, errors.New("migrator: database url is required")
	}
	src, err := sourceFor(backend)
	if err != nil {
		return nil, err
	}
	if backend == ClickHouse {
		databaseURL = withMultiStatement(databaseURL)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	m.Log = newLogger(logger)
	return m, nil
}

func sourceFor(backend Backend) (source.Driver, error) {
	switch backend {
	case MySQL, SQLite, ClickHouse:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	src, err := iofs.New(migrations.FS, string(backend))
	if err != nil {
		return nil, fmt.Errorf("open %s migrations: %w", backend, err)
	}
	return src, nil
}

func up(m *migrate.Migrate, backend Backend, logger *zap.Logger) error {
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no migrations to apply", zap.String("backend", string(backend)))
			return nil
		}
		return fmt.Errorf("migrate %s up: %w", backend, err)
	}
	logger.Info("migrations applied", zap.String("backend", string(backend)))
	return nil
}

func closeMigrator(m *migrate.Migrate, logger *zap.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("migration source close failed", zap.Error(srcErr))
	}
	if dbErr != nil {
		logger.Warn("migration database close failed", zap.Error(dbErr))
	}
}

func withMultiStatement(dsn string) string {
	if strings.Contains(dsn, "x-multi-statement=") {
		return dsn
	}
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return dsn + separator + "x-multi-statement=true"
}

type migrateLogger struct {
	sugar *zap.SugaredLogger
}

func newLogger(l *zap.Logger) migrate.Logger {
	return migrateLogger{sugar: l.Named("migrate").Sugar()}
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.sugar.Debugf(strings.TrimSpace(format), v...)
}

func (l migrateLogger) Verbose() bool {
	return false
}
