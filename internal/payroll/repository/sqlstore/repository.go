// Package sqlstore keeps payroll recipients and submitted transaction hashes
// in MySQL or SQLite.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Dialect names the SQL backend.
type Dialect string

const (
	MySQL  Dialect = "mysql"
	SQLite Dialect = "sqlite"
)

const pingTimeout = 5 * time.Second

// ParseDialect validates a dialect name.
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(s))); d {
	case MySQL, SQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported sql dialect %q", s)
	}
}

type Repository struct {
	db      *sql.DB
	dialect Dialect
	metrics Metrics
	now     func() time.Time
}

// Open connects to the database described by dsn and checks it is reachable.
func Open(ctx context.Context, dialect Dialect, dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("sql dsn is required")
	}

	var (
		db  *sql.DB
		err error
	)
	switch dialect {
	case MySQL:
		db, err = openMySQL(dsn)
	case SQLite:
		db, err = openSQLite(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql dialect %q", dialect)
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	return NewRepository(db, dialect, metrics)
}

// NewRepository wraps an open handle.
func NewRepository(db *sql.DB, dialect Dialect, metrics Metrics) (*Repository, error) {
	if db == nil {
		return nil, errors.New("sql db is required")
	}
	if metrics == nil {
		return nil, errors.New("sql metrics is required")
	}
	return &Repository{db: db, dialect: dialect, metrics: metrics, now: time.Now}, nil
}

func openMySQL(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetMaxOpenConns(10)
	return db, nil
}

func openSQLite(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single writer avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)
	return db, nil
}

// DB exposes the handle for schema migrations.
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Dialect reports the backend in use.
func (r *Repository) Dialect() Dialect {
	return r.dialect
}

// Close releases the handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) insertIgnore() string {
	if r.dialect == MySQL {
		return "INSERT IGNORE"
	}
	return "INSERT OR IGNORE"
}
