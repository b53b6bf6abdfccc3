package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audithook/internal/config"
	"audithook/internal/domain"
)

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name    string
		cfg     config.StoreConfig
		created string
	}{
		{name: "memory", cfg: config.StoreConfig{Driver: "memory"}},
		{name: "jsonl", cfg: config.StoreConfig{Driver: "jsonl", DSN: filepath.Join(dir, "jsonl", "reports.jsonl")}, created: filepath.Join(dir, "jsonl")},
		{name: "sqlite path", cfg: config.StoreConfig{Driver: "sqlite3", DSN: filepath.Join(dir, "db", "audit.db")}, created: filepath.Join(dir, "db")},
		{name: "sqlite uri", cfg: config.StoreConfig{Driver: "sqlite3", DSN: "file:" + filepath.Join(dir, "uri", "audit.db") + "?cache=shared"}, created: filepath.Join(dir, "uri")},
		{name: "sqlite memory", cfg: config.StoreConfig{Driver: "sqlite3", DSN: ":memory:"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, closer, err := openStore(context.Background(), tc.cfg)
			require.NoError(t, err)
			t.Cleanup(func() { _ = closer.Close() })

			if tc.created != "" {
				assert.DirExists(t, tc.created)
			}
			err = store.SaveAuditReport(context.Background(), domain.AuditReport{
				ID: tc.name, UserID: 1, ContractSource: "contract A {}", Findings: []domain.Finding{}, CreatedAt: time.Now().UTC(),
			})
			assert.NoError(t, err)
		})
	}
}

func TestOpenStore_Errors(t *testing.T) {
	_, _, err := openStore(context.Background(), config.StoreConfig{Driver: "redis"})
	assert.Error(t, err)

	_, _, err = openStore(context.Background(), config.StoreConfig{Driver: "mysql", DSN: "no-slash"})
	assert.Error(t, err)
}

func TestSqliteDir(t *testing.T) {
	assert.Equal(t, "data", sqliteDir("sqlite3", "data/audit.db"))
	assert.Equal(t, "data", sqliteDir("sqlite3", "file:data/audit.db?_busy_timeout=5000"))
	assert.Empty(t, sqliteDir("sqlite3", ":memory:"))
	assert.Empty(t, sqliteDir("sqlite3", "file::memory:?cache=shared"))
	assert.Empty(t, sqliteDir("sqlite3", "audit.db"))
	assert.Empty(t, sqliteDir("mysql", "user:pw@tcp(db:3306)/audit"))

	_, err := os.Stat("file:data")
	assert.True(t, os.IsNotExist(err))
}
