package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audithook/internal/domain"
)

// Requires a disposable database; set TEST_DATABASE_URL to run.
func testDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestSaveAuditReport(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	id := uuid.NewString()
	err := db.SaveAuditReport(ctx, domain.AuditReport{
		ID:             id,
		UserID:         1,
		ContractSource: "contract A {}",
		SecurityScore:  99,
		IssuesCount:    1,
		GasEfficiency:  100,
		Findings:       []domain.Finding{{Category: domain.CategoryBestPractice, Severity: domain.SeverityInfo, Title: "Missing SPDX license identifier"}},
		CreatedAt:      time.Now().UTC(),
	})
	require.NoError(t, err)

	var score, issues int
	var title string
	err = db.Pool.QueryRow(ctx, `SELECT security_score, issues_count, findings->0->>'title' FROM audit_reports WHERE id = $1`, id).
		Scan(&score, &issues, &title)
	require.NoError(t, err)
	assert.Equal(t, 99, score)
	assert.Equal(t, 1, issues)
	assert.Equal(t, "Missing SPDX license identifier", title)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := testDB(t)
	assert.NoError(t, db.Migrate(context.Background()))
}
