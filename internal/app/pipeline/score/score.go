// Package score rates cleaned broker records against a fixed, additively
// weighted rubric. The weight table and numeric ranges are inherited policy;
// preserve them exactly, report-format consumers depend on the numbers.
package score

import (
	"fmt"
	"math"
	"regexp"
	"unicode/utf8"

	"github.com/brokeratlas/broker-compare/internal/pkg/model"
)

// Per-field weights. The maximum is their sum, whether or not a given record
// carries the field.
const (
	weightName        = 20
	weightRegulators  = 10
	weightRating      = 10
	weightMinDeposit  = 8
	weightMaxLeverage = 8
	weightPlatforms   = 8 // 2 points per platform up to the cap
	weightSpreadFrom  = 6
	weightWebsiteURL  = 5
	weightPros        = 5
	weightCons        = 5

	maxPoints = weightName + weightRegulators + weightRating + weightMinDeposit +
		weightMaxLeverage + weightPlatforms + weightSpreadFrom + weightWebsiteURL +
		weightPros + weightCons

	pointsPerPlatform = 2
	minNameLength     = 2
)

// Validity ranges for the numeric soft rules. Out-of-range values warn and
// earn nothing; they never invalidate the record.
const (
	ratingMin     = 1.0
	ratingMax     = 5.0
	depositMax    = 100000.0
	leverageMin   = 1.0
	leverageMax   = 3000.0
	spreadFromMax = 10.0
)

var (
	namePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-.&]+$`)
	urlPattern  = regexp.MustCompile(`^https?://`)
)

// Record scores one cleaned record. Only the name rules affect IsValid; every
// other violation is a warning. An invalid record is still fully scored.
//
//nolint:cyclop,funlen // the rubric is a flat list of per-field rules
func Record(rec model.CleanRecord) model.ValidationResult {
	result := model.ValidationResult{
		Name:       rec.Name,
		SourceFile: rec.SourceFile,
		IsValid:    true,
		Errors:     []string{},
		Warnings:   []string{},
	}

	earned := 0

	switch {
	case rec.Name == "":
		result.IsValid = false
		result.Errors = append(result.Errors, "name is missing")
	case utf8.RuneCountInString(rec.Name) < minNameLength:
		result.IsValid = false
		result.Errors = append(result.Errors, fmt.Sprintf("name %q is shorter than %d characters", rec.Name, minNameLength))
	case !namePattern.MatchString(rec.Name):
		// The cleaner already strips these characters, so pipeline records
		// never land here. Hand-built records can; keep the rule.
		result.Warnings = append(result.Warnings, fmt.Sprintf("name %q contains characters outside the allowed set", rec.Name))
	default:
		earned += weightName
	}

	if len(rec.RegulatoryBodies) > 0 {
		earned += weightRegulators
	}

	if rec.OverallRating != nil {
		if *rec.OverallRating >= ratingMin && *rec.OverallRating <= ratingMax {
			earned += weightRating
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("rating %.1f outside [%.1f, %.1f]", *rec.OverallRating, ratingMin, ratingMax))
		}
	}

	if rec.MinDeposit != nil {
		if *rec.MinDeposit >= 0 && *rec.MinDeposit <= depositMax {
			earned += weightMinDeposit
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("min deposit %.2f outside [0, %.0f]", *rec.MinDeposit, depositMax))
		}
	}

	if rec.MaxLeverage != nil {
		if *rec.MaxLeverage >= leverageMin && *rec.MaxLeverage <= leverageMax {
			earned += weightMaxLeverage
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("max leverage %.0f outside [%.0f, %.0f]", *rec.MaxLeverage, leverageMin, leverageMax))
		}
	}

	if points := len(rec.Platforms) * pointsPerPlatform; points > 0 {
		if points > weightPlatforms {
			points = weightPlatforms
		}
		earned += points
	}
	for _, unknown := range rec.UnknownPlatforms {
		result.Warnings = append(result.Warnings, fmt.Sprintf("unrecognized platform token %q dropped", unknown))
	}

	if rec.SpreadFrom != nil {
		if *rec.SpreadFrom >= 0 && *rec.SpreadFrom <= spreadFromMax {
			earned += weightSpreadFrom
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("spread %.2f outside [0, %.0f]", *rec.SpreadFrom, spreadFromMax))
		}
	}

	if rec.WebsiteURL != nil {
		if urlPattern.MatchString(*rec.WebsiteURL) {
			earned += weightWebsiteURL
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("website url %q is not http(s)", *rec.WebsiteURL))
		}
	}

	if len(rec.Pros) > 0 {
		earned += weightPros
	}
	if len(rec.Cons) > 0 {
		earned += weightCons
	}

	result.QualityScore = roundPercent(earned, maxPoints)
	result.Completeness = completeness(rec)
	result.Tier = model.TierFor(result.QualityScore)

	return result
}

// completeness measures presence against the fields extraction attempted, not
// against the full schema.
func completeness(rec model.CleanRecord) int {
	attempted := rec.AttemptedFields()
	if len(attempted) == 0 {
		return 0
	}

	present := 0
	for _, f := range attempted {
		if rec.Present(f) {
			present++
		}
	}

	return roundPercent(present, len(attempted))
}

func roundPercent(part, whole int) int {
	return int(math.Round(100 * float64(part) / float64(whole)))
}
