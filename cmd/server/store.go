package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"audithook/internal/adapters/jsonl"
	"audithook/internal/adapters/memory"
	pg "audithook/internal/adapters/postgres"
	"audithook/internal/adapters/sqlstore"
	"audithook/internal/config"
	"audithook/internal/ports"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore returns the configured audit store, migrated and ready. The
// closer releases the backend's connections or file handle.
func openStore(ctx context.Context, cfg config.StoreConfig) (ports.AuditStore, io.Closer, error) {
	switch cfg.Driver {
	case "memory":
		return memory.New(), nopCloser{}, nil
	case "jsonl":
		s, err := jsonl.Open(cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open jsonl store: %w", err)
		}
		return s, s, nil
	case "sqlite3", "mysql":
		if dir := sqliteDir(cfg.Driver, cfg.DSN); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, err
			}
		}
		s, err := sqlstore.Open(ctx, cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := s.Migrate(ctx); err != nil {
			_ = s.Close()
			return nil, nil, err
		}
		return s, s, nil
	case "postgres":
		db, err := pg.Connect(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return db, db, nil
	}
	return nil, nil, fmt.Errorf("store driver %q not supported", cfg.Driver)
}

// sqliteDir returns the directory a sqlite3 DSN writes into, or "" when
// there is nothing to create. file: URIs lose their scheme and query.
func sqliteDir(driver, dsn string) string {
	if driver != "sqlite3" || dsn == ":memory:" || strings.HasPrefix(dsn, "file::memory:") {
		return ""
	}
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if dir := filepath.Dir(path); dir != "." {
		return dir
	}
	return ""
}
