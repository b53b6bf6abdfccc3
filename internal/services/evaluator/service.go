package evaluator

import (
	"audithook/internal/domain"
	"audithook/internal/ports"
)

// NeutralScore is reported for a score whose contributing categories are all
// disabled, and is the starting point before deductions.
const NeutralScore = 100

var securityWeights = map[domain.Severity]int{
	domain.SeverityCritical: 25,
	domain.SeverityHigh:     15,
	domain.SeverityMedium:   8,
	domain.SeverityLow:      3,
	domain.SeverityInfo:     1,
}

var gasWeights = map[domain.Severity]int{
	domain.SeverityCritical: 20,
	domain.SeverityHigh:     15,
	domain.SeverityMedium:   10,
	domain.SeverityLow:      6,
	domain.SeverityInfo:     3,
}

type category struct {
	name   domain.Category
	checks []check
}

// Service is the rule-based audit evaluator. It holds no mutable state and is
// safe for concurrent use.
type Service struct {
	categories []category
}

var _ ports.Evaluator = (*Service)(nil)

func New() *Service {
	return &Service{categories: []category{
		{name: domain.CategoryVulnerability, checks: vulnerabilityChecks},
		{name: domain.CategoryGas, checks: gasChecks},
		{name: domain.CategoryBestPractice, checks: bestPracticeChecks},
		{name: domain.CategoryAI, checks: aiChecks},
	}}
}

// Evaluate runs every enabled category in a fixed order. Identical input
// always yields identical output.
func (s *Service) Evaluate(req domain.AuditRequest) domain.AuditResult {
	src := parse(req.ContractSource)
	findings := []domain.Finding{}
	for _, c := range s.categories {
		if !req.Options.Enabled(c.name) {
			continue
		}
		for _, chk := range c.checks {
			findings = append(findings, chk(src)...)
		}
	}
	return domain.AuditResult{
		SecurityScore: score(findings, securityWeights, func(f domain.Finding) bool { return f.Category != domain.CategoryGas }),
		IssuesCount:   len(findings),
		GasEfficiency: score(findings, gasWeights, func(f domain.Finding) bool { return f.Category == domain.CategoryGas }),
		Findings:      findings,
	}
}

// score deducts the weight of each counted finding from NeutralScore and
// clamps the result to [0, 100].
func score(findings []domain.Finding, weights map[domain.Severity]int, counted func(domain.Finding) bool) int {
	total := NeutralScore
	for _, f := range findings {
		if counted(f) {
			total -= weights[f.Severity]
		}
	}
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}
