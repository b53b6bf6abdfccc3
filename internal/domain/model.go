package domain

import (
	"encoding/json"
	"time"
)

// Core domain models. HTTP request shapes live in the http adapter and are
// normalized into these before reaching a service.

// Severity buckets a Finding.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Category names the check family that produced a Finding. One category per
// AuditOptions flag.
type Category string

const (
	CategoryVulnerability Category = "vulnerabilityScan"
	CategoryGas           Category = "gasOptimization"
	CategoryBestPractice  Category = "bestPractices"
	CategoryAI            Category = "aiRecommendations"
)

// AuditOptions is the fully populated set of check toggles. Unset request
// fields are resolved to true before this struct is built.
type AuditOptions struct {
	VulnerabilityScan bool `json:"vulnerabilityScan"`
	GasOptimization   bool `json:"gasOptimization"`
	BestPractices     bool `json:"bestPractices"`
	AIRecommendations bool `json:"aiRecommendations"`
}

// DefaultAuditOptions enables every category.
func DefaultAuditOptions() AuditOptions {
	return AuditOptions{VulnerabilityScan: true, GasOptimization: true, BestPractices: true, AIRecommendations: true}
}

// Enabled reports whether the category's flag is set.
func (o AuditOptions) Enabled(c Category) bool {
	switch c {
	case CategoryVulnerability:
		return o.VulnerabilityScan
	case CategoryGas:
		return o.GasOptimization
	case CategoryBestPractice:
		return o.BestPractices
	case CategoryAI:
		return o.AIRecommendations
	}
	return false
}

type AuditRequest struct {
	ContractSource string
	Options        AuditOptions
}

type Finding struct {
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location,omitempty"`
}

type AuditResult struct {
	SecurityScore int       `json:"securityScore"`
	IssuesCount   int       `json:"issuesCount"`
	GasEfficiency int       `json:"gasEfficiency"`
	Findings      []Finding `json:"findings"`
}

// AuditReport is the persisted form of an AuditResult. Append-only.
type AuditReport struct {
	ID             string    `json:"id"`
	UserID         int64     `json:"userId"`
	ContractSource string    `json:"contractSource"`
	SecurityScore  int       `json:"securityScore"`
	IssuesCount    int       `json:"issuesCount"`
	GasEfficiency  int       `json:"gasEfficiency"`
	Findings       []Finding `json:"findings"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type AccountBalance struct {
	AccountAddress  string `json:"accountAddress"`
	ChecksumAddress string `json:"checksumAddress,omitempty"`
	Balance         string `json:"balance"`
	Network         string `json:"network"`
}

type NetworkInfo struct {
	Network         string `json:"network"`
	ExplorerBaseURL string `json:"explorerBaseUrl"`
}

// DeployedContract is an opaque registry entry. Only contractLinks is ever
// interpreted; every other field is passed through as raw JSON.
type DeployedContract map[string]json.RawMessage
