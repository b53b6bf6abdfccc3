package ports

import (
	"context"

	"audithook/internal/domain"
)

// Evaluator scores contract source. Implementations are pure.
type Evaluator interface {
	Evaluate(req domain.AuditRequest) domain.AuditResult
}

// Auditor runs an audit and records its report on a best-effort basis.
type Auditor interface {
	Submit(ctx context.Context, req domain.AuditRequest) (domain.AuditResult, error)
}

// AuditStore appends audit reports. There is no read or delete path.
type AuditStore interface {
	SaveAuditReport(ctx context.Context, report domain.AuditReport) error
}

// Resources provides the static educational link catalog.
type Resources interface {
	List(ctx context.Context) []domain.Resource
}

// Network provides mocked account data and the deployed contract registry.
type Network interface {
	Info() domain.NetworkInfo
	Balance(ctx context.Context, address string) (domain.AccountBalance, error)
	DeployedContracts(ctx context.Context) ([]domain.DeployedContract, error)
}
