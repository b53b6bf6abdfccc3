package postgres

import (
	"context"
	"encoding/json"
	"time"

	"audithook/internal/domain"
	"audithook/internal/ports"
)

var _ ports.AuditStore = (*DB)(nil)

// SaveAuditReport inserts one report row. Reports are never updated.
func (db *DB) SaveAuditReport(ctx context.Context, r domain.AuditReport) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findings, err := json.Marshal(r.Findings)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx, `
        INSERT INTO audit_reports (id, user_id, contract_source, security_score, issues_count, gas_efficiency, findings, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, r.ID, r.UserID, r.ContractSource, r.SecurityScore, r.IssuesCount, r.GasEfficiency, findings, r.CreatedAt)
	return err
}
