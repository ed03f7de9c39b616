// Package clean normalizes extracted broker records. Normalize is idempotent:
// applying it to an already-clean record yields the same record, which is
// what makes batch re-runs safe to stack.
package clean

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/brokeratlas/broker-compare/internal/pkg/model"
	"github.com/brokeratlas/broker-compare/internal/pkg/utils"
)

const maxListEntries = 5

// AllowedPlatforms is the platform allow-list. Order matters: cleaned records
// preserve first-seen input order, but unknown tokens are dropped outright.
//
//nolint:gochecknoglobals // fixed allow-list
var AllowedPlatforms = []string{"mt4", "mt5", "ctrader", "webtrader", "tradingview", "proprietary", "mobile"}

//nolint:gochecknoglobals // derived from the allow-list once
var allowedPlatformSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(AllowedPlatforms))
	for _, p := range AllowedPlatforms {
		set[p] = struct{}{}
	}
	return set
}()

//nolint:gochecknoglobals // fixed charset rule
var nameCharset = regexp.MustCompile(`[^a-zA-Z0-9\s\-.&]`)

//nolint:gochecknoglobals
var leverageRegex = regexp.MustCompile(`^1\s*:\s*(\d+(?:\.\d+)?)$`)

// Record converts a raw record into its cleaned form. Coercion failures drop
// the field rather than zeroing it.
func Record(raw model.RawRecord) model.CleanRecord {
	rec := model.CleanRecord{
		SourceFile:       raw.SourceFile,
		WebsiteURL:       raw.WebsiteURL,
		OverallRating:    raw.OverallRating,
		MinDeposit:       raw.MinDeposit,
		MaxLeverage:      parseLeverage(raw.MaxLeverageRaw),
		SpreadFrom:       raw.SpreadFrom,
		SpreadType:       raw.SpreadType,
		FoundedYear:      raw.FoundedYear,
		Headquarters:     raw.Headquarters,
		Platforms:        raw.Platforms,
		RegulatoryBodies: raw.RegulatoryBodies,
		Pros:             raw.Pros,
		Cons:             raw.Cons,
		DepositMethods:   raw.DepositMethods,
		AccountTypes:     raw.AccountTypes,
		InstrumentsTotal: raw.InstrumentsTotal,
		InstrumentTypes:  raw.InstrumentTypes,
		CFDsAvailable:    raw.CFDsAvailable,
		DemoAccount:      raw.DemoAccount,
		IslamicAccount:   raw.IslamicAccount,
		CopyTrading:      raw.CopyTrading,
		Attempted:        raw.Attempted,
	}
	if raw.Name != nil {
		rec.Name = *raw.Name
	}

	return Normalize(rec)
}

// Normalize applies the cleaning rules in place of mutation: name charset and
// title-casing, platform allow-list with first-seen dedup, bounded pros/cons.
// Normalize(Normalize(r)) == Normalize(r) for all r.
//
//nolint:cyclop // linear sequence of per-field rules
func Normalize(rec model.CleanRecord) model.CleanRecord {
	rec.Name = cleanName(rec.Name)

	platforms, dropped := filterPlatforms(rec.Platforms)
	rec.Platforms = platforms
	rec.UnknownPlatforms = mergeUnique(rec.UnknownPlatforms, dropped)

	rec.RegulatoryBodies = cleanList(rec.RegulatoryBodies, 0)
	rec.DepositMethods = cleanList(rec.DepositMethods, 0)
	rec.AccountTypes = cleanList(rec.AccountTypes, 0)
	rec.InstrumentTypes = cleanList(rec.InstrumentTypes, 0)
	rec.Pros = cleanList(rec.Pros, maxListEntries)
	rec.Cons = cleanList(rec.Cons, maxListEntries)

	if rec.SpreadType != nil {
		st := strings.ToLower(utils.NormalizeSpaces(*rec.SpreadType))
		if st == "" {
			rec.SpreadType = nil
		} else {
			rec.SpreadType = &st
		}
	}

	if rec.WebsiteURL != nil {
		url := utils.NormalizeSpaces(*rec.WebsiteURL)
		if url == "" {
			rec.WebsiteURL = nil
		} else {
			rec.WebsiteURL = &url
		}
	}

	if rec.Headquarters != nil {
		hq := utils.NormalizeSpaces(*rec.Headquarters)
		if hq == "" {
			rec.Headquarters = nil
		} else {
			rec.Headquarters = &hq
		}
	}

	return rec
}

// cleanName trims, collapses internal whitespace, strips characters outside
// the name charset and title-cases each word.
func cleanName(name string) string {
	name = nameCharset.ReplaceAllString(name, "")
	name = utils.NormalizeSpaces(name)
	return utils.TitleCaseWords(name)
}

// parseLeverage coerces "1:400" (or a bare "400") to its numeric ratio. A
// string that parses as neither is dropped.
func parseLeverage(raw *string) *float64 {
	if raw == nil {
		return nil
	}

	str := utils.NormalizeSpaces(*raw)
	if m := leverageRegex.FindStringSubmatch(str); len(m) > 1 {
		str = m[1]
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(str, ",", ""), 64)
	if err != nil {
		return nil
	}

	return &f
}

// filterPlatforms lower-cases, trims, keeps allow-listed values and dedups
// while preserving first-seen order. Dropped tokens are returned for warning
// purposes.
func filterPlatforms(platforms []string) (kept, dropped []string) {
	seen := map[string]struct{}{}
	for _, p := range platforms {
		token := strings.ToLower(strings.TrimSpace(p))
		if token == "" {
			continue
		}
		if _, ok := allowedPlatformSet[token]; !ok {
			dropped = append(dropped, token)
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		kept = append(kept, token)
	}

	return kept, dropped
}

// cleanList trims entries, drops empties and caps the result when max > 0.
func cleanList(items []string, max int) []string {
	var out []string
	for _, item := range items {
		if item = utils.NormalizeSpaces(item); item == "" {
			continue
		}
		out = append(out, item)
		if max > 0 && len(out) == max {
			break
		}
	}

	return out
}

func mergeUnique(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, v := range existing {
		seen[v] = struct{}{}
	}
	for _, v := range incoming {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		existing = append(existing, v)
	}

	return existing
}
