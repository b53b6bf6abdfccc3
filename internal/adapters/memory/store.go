package memory

import (
	"context"
	"sync"

	"audithook/internal/domain"
	"audithook/internal/ports"
)

// Store keeps audit reports in process memory.
type Store struct {
	mu      sync.Mutex
	reports []domain.AuditReport
}

var _ ports.AuditStore = (*Store)(nil)

func New() *Store { return &Store{} }

func (s *Store) SaveAuditReport(ctx context.Context, report domain.AuditReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, report)
	return nil
}

// Reports returns a snapshot of everything saved so far.
func (s *Store) Reports() []domain.AuditReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuditReport, len(s.reports))
	copy(out, s.reports)
	return out
}
