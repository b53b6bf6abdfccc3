package audits

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"audithook/internal/domain"
	"audithook/internal/ports"
)

// DemoUserID owns every report until requests carry an authenticated user.
const DemoUserID int64 = 1

type Service struct {
	evaluator ports.Evaluator
	store     ports.AuditStore
	userID    int64
	now       func() time.Time
	newID     func() string
}

var _ ports.Auditor = (*Service)(nil)

type Option func(*Service)

// WithUserID sets the user recorded on persisted reports.
func WithUserID(id int64) Option { return func(s *Service) { s.userID = id } }

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func New(evaluator ports.Evaluator, store ports.AuditStore, opts ...Option) *Service {
	s := &Service{evaluator: evaluator, store: store, userID: DemoUserID, now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit evaluates req and records the report. A store failure is logged and
// never reaches the caller.
func (s *Service) Submit(ctx context.Context, req domain.AuditRequest) (domain.AuditResult, error) {
	if req.ContractSource == "" {
		return domain.AuditResult{}, ports.Invalid("contractSource", "Contract source is required")
	}
	result := s.evaluator.Evaluate(req)

	report := domain.AuditReport{
		ID:             s.newID(),
		UserID:         s.userID,
		ContractSource: req.ContractSource,
		SecurityScore:  result.SecurityScore,
		IssuesCount:    result.IssuesCount,
		GasEfficiency:  result.GasEfficiency,
		Findings:       result.Findings,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.save(ctx, report); err != nil {
		log.Printf("audit %s: %v", report.ID, err)
	}
	return result, nil
}

func (s *Service) save(ctx context.Context, report domain.AuditReport) error {
	if err := s.store.SaveAuditReport(ctx, report); err != nil {
		return &ports.UpstreamError{Op: "store report", Err: err}
	}
	return nil
}
