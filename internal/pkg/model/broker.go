package model

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field names a single extractable broker attribute. The constants double as
// JSON keys in the report artifacts and as the scoring rubric's field ids.
type Field string

const (
	FieldName             Field = "name"
	FieldWebsiteURL       Field = "website_url"
	FieldOverallRating    Field = "overall_rating"
	FieldMinDeposit       Field = "min_deposit"
	FieldMaxLeverage      Field = "max_leverage"
	FieldSpreadFrom       Field = "spread_from"
	FieldSpreadType       Field = "spread_type"
	FieldFoundedYear      Field = "founded_year"
	FieldHeadquarters     Field = "headquarters"
	FieldPlatforms        Field = "platforms"
	FieldRegulatoryBodies Field = "regulatory_bodies"
	FieldPros             Field = "pros"
	FieldCons             Field = "cons"
	FieldDepositMethods   Field = "deposit_methods"
	FieldAccountTypes     Field = "account_types"
	FieldInstrumentsTotal Field = "instruments_total"
	FieldInstrumentTypes  Field = "instrument_types"
	FieldCFDsAvailable    Field = "cfds_available"
	FieldDemoAccount      Field = "demo_account"
	FieldIslamicAccount   Field = "islamic_account"
	FieldCopyTrading      Field = "copy_trading"
)

// AllFields is the canonical extraction order. Completeness for hand-built
// records (no Attempted set) is measured against this list.
var AllFields = []Field{
	FieldName,
	FieldWebsiteURL,
	FieldOverallRating,
	FieldMinDeposit,
	FieldMaxLeverage,
	FieldSpreadFrom,
	FieldSpreadType,
	FieldFoundedYear,
	FieldHeadquarters,
	FieldPlatforms,
	FieldRegulatoryBodies,
	FieldPros,
	FieldCons,
	FieldDepositMethods,
	FieldAccountTypes,
	FieldInstrumentsTotal,
	FieldInstrumentTypes,
	FieldCFDsAvailable,
	FieldDemoAccount,
	FieldIslamicAccount,
	FieldCopyTrading,
}

// RawRecord is a candidate broker straight out of extraction. Every field is
// optional; a nil pointer or empty slice means the pattern list produced no
// match. MaxLeverageRaw keeps the matched text verbatim (e.g. "1:400"), the
// cleaner is responsible for turning it into a number.
type RawRecord struct {
	SourceFile string `json:"sourceFile,omitempty"`

	Name             *string  `json:"name"`
	WebsiteURL       *string  `json:"website_url,omitempty"`
	OverallRating    *float64 `json:"overall_rating,omitempty"`
	MinDeposit       *float64 `json:"min_deposit,omitempty"`
	MaxLeverageRaw   *string  `json:"max_leverage,omitempty"`
	SpreadFrom       *float64 `json:"spread_from,omitempty"`
	SpreadType       *string  `json:"spread_type,omitempty"`
	FoundedYear      *int     `json:"founded_year,omitempty"`
	Headquarters     *string  `json:"headquarters,omitempty"`
	Platforms        []string `json:"platforms,omitempty"`
	RegulatoryBodies []string `json:"regulatory_bodies,omitempty"`
	Pros             []string `json:"pros,omitempty"`
	Cons             []string `json:"cons,omitempty"`
	DepositMethods   []string `json:"deposit_methods,omitempty"`
	AccountTypes     []string `json:"account_types,omitempty"`
	InstrumentsTotal *int     `json:"instruments_total,omitempty"`
	InstrumentTypes  []string `json:"instrument_types,omitempty"`
	CFDsAvailable    *bool    `json:"cfds_available,omitempty"`
	DemoAccount      *bool    `json:"demo_account,omitempty"`
	IslamicAccount   *bool    `json:"islamic_account,omitempty"`
	CopyTrading      *bool    `json:"copy_trading,omitempty"`

	// Attempted lists the fields the extractor tried for this record,
	// whether or not they matched. It is the completeness denominator.
	Attempted []Field `json:"-"`
}

// CleanRecord is a RawRecord after normalization: bounded lists, allow-listed
// platforms, numeric leverage. The cleaner guarantees applying it to an
// already-clean record is a no-op.
type CleanRecord struct {
	SourceFile string `json:"sourceFile,omitempty"`

	Name             string   `json:"name"`
	WebsiteURL       *string  `json:"website_url,omitempty"`
	OverallRating    *float64 `json:"overall_rating,omitempty"`
	MinDeposit       *float64 `json:"min_deposit,omitempty"`
	MaxLeverage      *float64 `json:"max_leverage,omitempty"`
	SpreadFrom       *float64 `json:"spread_from,omitempty"`
	SpreadType       *string  `json:"spread_type,omitempty"`
	FoundedYear      *int     `json:"founded_year,omitempty"`
	Headquarters     *string  `json:"headquarters,omitempty"`
	Platforms        []string `json:"platforms,omitempty"`
	RegulatoryBodies []string `json:"regulatory_bodies,omitempty"`
	Pros             []string `json:"pros,omitempty"`
	Cons             []string `json:"cons,omitempty"`
	DepositMethods   []string `json:"deposit_methods,omitempty"`
	AccountTypes     []string `json:"account_types,omitempty"`
	InstrumentsTotal *int     `json:"instruments_total,omitempty"`
	InstrumentTypes  []string `json:"instrument_types,omitempty"`
	CFDsAvailable    *bool    `json:"cfds_available,omitempty"`
	DemoAccount      *bool    `json:"demo_account,omitempty"`
	IslamicAccount   *bool    `json:"islamic_account,omitempty"`
	CopyTrading      *bool    `json:"copy_trading,omitempty"`

	// UnknownPlatforms are tokens dropped by the allow-list filter, kept so
	// the scorer can surface them as warnings.
	UnknownPlatforms []string `json:"-"`

	Attempted []Field `json:"-"`
}

// Present reports whether a field carries a non-empty value.
//
//nolint:cyclop // flat field dispatch, one case per rubric field
func (r CleanRecord) Present(f Field) bool {
	switch f {
	case FieldName:
		return r.Name != ""
	case FieldWebsiteURL:
		return r.WebsiteURL != nil
	case FieldOverallRating:
		return r.OverallRating != nil
	case FieldMinDeposit:
		return r.MinDeposit != nil
	case FieldMaxLeverage:
		return r.MaxLeverage != nil
	case FieldSpreadFrom:
		return r.SpreadFrom != nil
	case FieldSpreadType:
		return r.SpreadType != nil
	case FieldFoundedYear:
		return r.FoundedYear != nil
	case FieldHeadquarters:
		return r.Headquarters != nil
	case FieldPlatforms:
		return len(r.Platforms) > 0
	case FieldRegulatoryBodies:
		return len(r.RegulatoryBodies) > 0
	case FieldPros:
		return len(r.Pros) > 0
	case FieldCons:
		return len(r.Cons) > 0
	case FieldDepositMethods:
		return len(r.DepositMethods) > 0
	case FieldAccountTypes:
		return len(r.AccountTypes) > 0
	case FieldInstrumentsTotal:
		return r.InstrumentsTotal != nil
	case FieldInstrumentTypes:
		return len(r.InstrumentTypes) > 0
	case FieldCFDsAvailable:
		return r.CFDsAvailable != nil
	case FieldDemoAccount:
		return r.DemoAccount != nil
	case FieldIslamicAccount:
		return r.IslamicAccount != nil
	case FieldCopyTrading:
		return r.CopyTrading != nil
	}
	return false
}

// AttemptedFields returns the completeness denominator for this record.
func (r CleanRecord) AttemptedFields() []Field {
	if len(r.Attempted) > 0 {
		return r.Attempted
	}
	return AllFields
}

// BrokerEntity is the persisted shape of a broker row. Slug is the natural
// upsert key and is derived deterministically from Name.
type BrokerEntity struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`

	AvgRating        *float64 `json:"avg_rating,omitempty"`
	MinDeposit       *float64 `json:"min_deposit,omitempty"`
	MaxLeverage      *float64 `json:"max_leverage,omitempty"`
	SpreadFrom       *float64 `json:"spread_from,omitempty"`
	SpreadType       *string  `json:"spread_type,omitempty"`
	FoundedYear      *int     `json:"founded_year,omitempty"`
	Headquarters     *string  `json:"headquarters,omitempty"`
	WebsiteURL       *string  `json:"website_url,omitempty"`
	InstrumentsTotal *int     `json:"instruments_total,omitempty"`
	Platforms        []string `json:"platforms,omitempty"`
	Pros             []string `json:"pros,omitempty"`
	Cons             []string `json:"cons,omitempty"`

	TrustScore     int  `json:"trust_score"`
	IsActive       bool `json:"is_active"`
	Featured       bool `json:"featured"`
	DemoAccount    bool `json:"demo_account"`
	CFDsAvailable  bool `json:"cfds_available"`
	IslamicAccount bool `json:"islamic_account"`
	CopyTrading    bool `json:"copy_trading"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)
	hyphenTrim   = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives the natural upsert key from a broker name: lowercase,
// non-alphanumeric runs collapsed to a single hyphen, leading/trailing
// hyphens stripped. Identical names always yield identical slugs.
func Slugify(name string) string {
	slug := nonAlnumRuns.ReplaceAllString(strings.ToLower(name), "-")
	return hyphenTrim.ReplaceAllString(slug, "")
}
