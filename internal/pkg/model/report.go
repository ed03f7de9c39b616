package model

import "time"

// Tier buckets a quality score. Thresholds are fixed policy carried over from
// the original rubric; do not adjust them without versioning the report format.
type Tier string

const (
	TierExcellent  Tier = "EXCELLENT"  // >= 90
	TierGood       Tier = "GOOD"       // >= 75
	TierAcceptable Tier = "ACCEPTABLE" // >= 60
	TierPoor       Tier = "POOR"       // >= 40
	TierVeryPoor   Tier = "VERY_POOR"
)

// TierFor maps a 0-100 quality score onto its tier.
func TierFor(score int) Tier {
	switch {
	case score >= 90:
		return TierExcellent
	case score >= 75:
		return TierGood
	case score >= 60:
		return TierAcceptable
	case score >= 40:
		return TierPoor
	default:
		return TierVeryPoor
	}
}

// ValidationResult is computed fresh per record per validation run, never
// mutated. IsValid only reflects required-field rules; soft rule violations
// land in Warnings and do not affect validity.
type ValidationResult struct {
	Name         string   `json:"name"`
	SourceFile   string   `json:"sourceFile,omitempty"`
	IsValid      bool     `json:"isValid"`
	Errors       []string `json:"errors"`
	Warnings     []string `json:"warnings"`
	QualityScore int      `json:"qualityScore"`
	Completeness int      `json:"completeness"`
	Tier         Tier     `json:"tier"`
}

// BatchReport aggregates one validation run. Averages are plain arithmetic
// means over records and stay unrounded until serialization.
type BatchReport struct {
	GeneratedAt         time.Time          `json:"generatedAt"`
	Total               int                `json:"total"`
	Valid               int                `json:"valid"`
	Invalid             int                `json:"invalid"`
	AverageQuality      float64            `json:"averageQuality"`
	AverageCompleteness float64            `json:"averageCompleteness"`
	TierCounts          map[Tier]int       `json:"tierCounts"`
	Recommendations     []string           `json:"recommendations"`
	Records             []ValidationResult `json:"records"`
}

// ValidRate is the fraction of valid records, 0 when the batch is empty.
func (r BatchReport) ValidRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Valid) / float64(r.Total)
}

// RecordStatus is the terminal state of one record's load attempt. There is
// no retry transition.
type RecordStatus string

const (
	StatusUpserted RecordStatus = "upserted"
	StatusFailed   RecordStatus = "failed"
)

// RecordOutcome reports one record's trip through the loader. SideErrors
// collects side-table failures, which never fail the parent upsert.
type RecordOutcome struct {
	Slug       string       `json:"slug"`
	Name       string       `json:"name"`
	Status     RecordStatus `json:"status"`
	Error      string       `json:"error,omitempty"`
	SideErrors []string     `json:"sideErrors,omitempty"`
}

// LoadReport aggregates a loader run.
type LoadReport struct {
	Total    int             `json:"total"`
	Upserted int             `json:"upserted"`
	Failed   int             `json:"failed"`
	Outcomes []RecordOutcome `json:"outcomes"`
}
