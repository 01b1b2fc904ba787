// Package analyzer evaluates the license mix of a resolved dependency tree:
// pairwise conflicts, the dominant license, a risk score, a compliance
// verdict and prioritized remediation steps.
package analyzer

import "licensegraph/internal/graph"

// DependencyLicense is one resolved dependency as produced by the discovery pipeline
type DependencyLicense struct {
	DependencyID      string `json:"dependency_id" yaml:"id"`
	DependencyName    string `json:"dependency_name" yaml:"name"`
	DependencyVersion string `json:"dependency_version" yaml:"version"`
	LicenseID         string `json:"license_id" yaml:"license"`
}

// Severity grades a pairwise conflict
type Severity string

const (
	SeverityBlocking Severity = "BLOCKING"
	SeverityReview   Severity = "REVIEW"
)

// ComplianceStatus is the coarse verdict for a tree
type ComplianceStatus string

const (
	StatusCompliant      ComplianceStatus = "COMPLIANT"
	StatusReviewRequired ComplianceStatus = "REVIEW_REQUIRED"
	StatusBlocked        ComplianceStatus = "BLOCKED"
)

// RecommendationType names the kind of remediation
type RecommendationType string

const (
	RecommendFulfillObligation   RecommendationType = "FULFILL_OBLIGATION"
	RecommendResolveConflict     RecommendationType = "RESOLVE_CONFLICT"
	RecommendReviewCompatibility RecommendationType = "REVIEW_COMPATIBILITY"
	RecommendReplaceDeprecated   RecommendationType = "REPLACE_DEPRECATED"
	RecommendIdentifyLicense     RecommendationType = "IDENTIFY_LICENSE"
)

// Priority orders recommendations
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

var priorityRank = map[Priority]int{PriorityHigh: 0, PriorityMedium: 1, PriorityLow: 2}

// Conflict is a license pair whose combination is blocked or needs review
type Conflict struct {
	LicenseA        string                   `json:"license_a"`
	LicenseB        string                   `json:"license_b"`
	Level           graph.CompatibilityLevel `json:"level"`
	Severity        Severity                 `json:"severity"`
	DominantLicense string                   `json:"dominant_license,omitempty"`
	Basis           graph.Basis              `json:"basis"`
	Notes           string                   `json:"notes,omitempty"`
	Dependencies    []string                 `json:"dependencies"`
}

// Recommendation is one remediation step
type Recommendation struct {
	Type         RecommendationType `json:"type"`
	Priority     Priority           `json:"priority"`
	ObligationID string             `json:"obligation_id,omitempty"`
	Scope        graph.Scope        `json:"scope,omitempty"`
	Licenses     []string           `json:"licenses"`
	Message      string             `json:"message"`
}

// DependencyTreeAnalysis is built fresh on every call to Analyze
type DependencyTreeAnalysis struct {
	TotalDependencies   int                     `json:"total_dependencies"`
	UniqueLicenses      []string                `json:"unique_licenses"`
	UnknownLicenses     []string                `json:"unknown_licenses,omitempty"`
	LicenseDistribution map[string]int          `json:"license_distribution"`
	Conflicts           []Conflict              `json:"conflicts"`
	DominantLicense     string                  `json:"dominant_license"`
	Obligations         graph.ObligationSummary `json:"obligations"`
	RiskScore           float64                 `json:"risk_score"`
	RiskBreakdown       RiskBreakdown           `json:"risk_breakdown"`
	ComplianceStatus    ComplianceStatus        `json:"compliance_status"`
	Recommendations     []Recommendation        `json:"recommendations"`
}

// BlockingConflicts counts conflicts of BLOCKING severity
func (a *DependencyTreeAnalysis) BlockingConflicts() int {
	return a.countSeverity(SeverityBlocking)
}

// ReviewConflicts counts conflicts of REVIEW severity
func (a *DependencyTreeAnalysis) ReviewConflicts() int {
	return a.countSeverity(SeverityReview)
}

func (a *DependencyTreeAnalysis) countSeverity(s Severity) int {
	n := 0
	for _, c := range a.Conflicts {
		if c.Severity == s {
			n++
		}
	}
	return n
}
