// Package sqlstore persists audit reports through database/sql for the
// sqlite3 and mysql drivers.
package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"audithook/internal/domain"
	"audithook/internal/ports"
)

//go:embed migrations
var migrations embed.FS

var dialects = map[string]goose.Dialect{
	"sqlite3": goose.DialectSQLite3,
	"mysql":   goose.DialectMySQL,
}

type Store struct {
	db     *sql.DB
	driver string
}

var _ ports.AuditStore = (*Store)(nil)

// Open connects with driver ("sqlite3" or "mysql") and verifies the
// connection.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	if _, ok := dialects[driver]; !ok {
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore open: %w", err)
	}
	switch driver {
	case "sqlite3":
		// one writer; also keeps a ":memory:" database alive across calls
		db.SetMaxOpenConns(1)
	case "mysql":
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlstore ping: %w", err)
	}
	return &Store{db: db, driver: driver}, nil
}

// Migrate applies the embedded goose migrations for the store's driver.
func (s *Store) Migrate(ctx context.Context) error {
	fsys, err := fs.Sub(migrations, "migrations/"+s.driver)
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(dialects[s.driver], s.db, fsys)
	if err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

func (s *Store) SaveAuditReport(ctx context.Context, r domain.AuditReport) error {
	findings, err := json.Marshal(r.Findings)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
	INSERT INTO audit_reports (id, user_id, contract_source, security_score, issues_count, gas_efficiency, findings, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.UserID, r.ContractSource, r.SecurityScore, r.IssuesCount, r.GasEfficiency, string(findings), r.CreatedAt.UTC())
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
