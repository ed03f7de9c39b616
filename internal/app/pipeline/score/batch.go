package score

import (
	"time"

	"github.com/brokeratlas/broker-compare/internal/pkg/model"
)

// Recommendation thresholds over the batch aggregates.
const (
	minAverageQuality      = 60.0
	minAverageCompleteness = 70.0
	maxInvalidFraction     = 0.20
)

// ValidateAll scores every record and aggregates the batch. Averages are
// plain arithmetic means and stay unrounded; callers round at serialization.
func ValidateAll(records []model.CleanRecord) model.BatchReport {
	report := model.BatchReport{
		GeneratedAt: time.Now().UTC(),
		Total:       len(records),
		TierCounts: map[model.Tier]int{
			model.TierExcellent:  0,
			model.TierGood:       0,
			model.TierAcceptable: 0,
			model.TierPoor:       0,
			model.TierVeryPoor:   0,
		},
		Recommendations: []string{},
		Records:         make([]model.ValidationResult, 0, len(records)),
	}

	var qualitySum, completenessSum int
	for _, rec := range records {
		result := Record(rec)

		if result.IsValid {
			report.Valid++
		} else {
			report.Invalid++
		}
		report.TierCounts[result.Tier]++
		qualitySum += result.QualityScore
		completenessSum += result.Completeness
		report.Records = append(report.Records, result)
	}

	if report.Total > 0 {
		report.AverageQuality = float64(qualitySum) / float64(report.Total)
		report.AverageCompleteness = float64(completenessSum) / float64(report.Total)
		report.Recommendations = recommendations(report)
	}

	return report
}

func recommendations(report model.BatchReport) []string {
	recs := []string{}

	if report.AverageQuality < minAverageQuality {
		recs = append(recs, "average quality below acceptable: review the extraction pattern tables")
	}
	if report.AverageCompleteness < minAverageCompleteness {
		recs = append(recs, "average completeness below 70: review missing-field handling in the source pages")
	}
	if float64(report.Invalid)/float64(report.Total) > maxInvalidFraction {
		recs = append(recs, "more than 20% of records invalid: review source page quality")
	}

	return recs
}
