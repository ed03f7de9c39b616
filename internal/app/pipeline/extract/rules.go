package extract

import (
	"regexp"

	"github.com/brokeratlas/broker-compare/internal/pkg/model"
)

// pattern is one entry in an ordered per-field rule list. A pattern is either
// a CSS selector against the parsed document (optionally reading an attribute
// instead of the element text) or a regex against the flattened page text.
// The first pattern that matches wins; earlier patterns are assumed higher
// precision, so a later, looser pattern never overrides an earlier hit.
type pattern struct {
	selector string
	attr     string
	re       *regexp.Regexp
}

// textPatterns holds the ordered rule lists for scalar fields. Keep the order
// intact: it is the tie-break policy, not an implementation detail.
//
//nolint:gochecknoglobals // fixed rule table, the visible precedence policy
var textPatterns = map[model.Field][]pattern{
	model.FieldName: {
		{selector: "h1.broker-name"},
		{selector: "[data-broker-name]", attr: "data-broker-name"},
		{selector: "h1"},
		{selector: "title"},
	},
	model.FieldOverallRating: {
		{selector: "[data-rating]", attr: "data-rating"},
		{selector: ".rating-value"},
		{re: regexp.MustCompile(`(?i)rated?\s+([0-9]\.?[0-9]*)\s*(?:/|out\s+of)\s*5`)},
		{re: regexp.MustCompile(`([0-9]\.[0-9])\s*/\s*5`)},
	},
	model.FieldMinDeposit: {
		{re: regexp.MustCompile(`(?i)min(?:imum)?\s+deposit(?:\s+of)?[:\s]*[$€£]?\s*([\d,]+(?:\.\d+)?)`)},
		{re: regexp.MustCompile(`(?i)deposit\s+from\s+[$€£]?\s*([\d,]+(?:\.\d+)?)`)},
		{re: regexp.MustCompile(`(?i)[$€£]\s*([\d,]+)\s+min(?:imum)?\s+deposit`)},
	},
	model.FieldMaxLeverage: {
		{re: regexp.MustCompile(`(?i)leverage\s*(?:of|up\s*to)?\s*:?\s*(1\s*:\s*\d+)`)},
		{re: regexp.MustCompile(`(?i)(1\s*:\s*\d+)\s*(?:max(?:imum)?\s+)?leverage`)},
		{re: regexp.MustCompile(`(?i)max(?:imum)?\s+leverage\s*(?:of|up\s*to)?\s*:?\s*(\d+)`)},
	},
	model.FieldSpreadFrom: {
		{re: regexp.MustCompile(`(?i)spreads?\s+from\s+([\d.]+)\s*pips?`)},
		{re: regexp.MustCompile(`(?i)([\d.]+)\s*pips?\s+spreads?`)},
		{re: regexp.MustCompile(`(?i)spreads?\s+(?:as\s+low\s+as|starting\s+at)\s+([\d.]+)`)},
	},
	model.FieldSpreadType: {
		{re: regexp.MustCompile(`(?i)(fixed|variable|floating)\s+spreads?`)},
	},
	model.FieldFoundedYear: {
		{re: regexp.MustCompile(`(?i)(?:founded|established)\s+(?:in\s+)?(\d{4})`)},
		{re: regexp.MustCompile(`(?i)since\s+(\d{4})`)},
		{re: regexp.MustCompile(`(?i)in\s+business\s+since\s+(\d{4})`)},
	},
	model.FieldHeadquarters: {
		{selector: "[data-headquarters]", attr: "data-headquarters"},
		{re: regexp.MustCompile(`(?i)headquarter(?:s|ed)?\s+(?:in|at)\s+([A-Z][A-Za-z]+(?:[\s,]+[A-Z][A-Za-z]+)*)`)},
		{re: regexp.MustCompile(`(?i)based\s+in\s+([A-Z][A-Za-z]+(?:[\s,]+[A-Z][A-Za-z]+)*)`)},
	},
	model.FieldWebsiteURL: {
		{selector: "a.broker-website", attr: "href"},
		{selector: "a[data-official-site]", attr: "href"},
		{re: regexp.MustCompile(`(?i)(?:official\s+)?website[:\s]+(https?://[^\s"'<>]+)`)},
	},
	model.FieldInstrumentsTotal: {
		{re: regexp.MustCompile(`(?i)([\d,]+)\+?\s*(?:tradable\s+)?(?:instruments|markets)`)},
		{re: regexp.MustCompile(`(?i)trade\s+(?:over\s+)?([\d,]+)\s+(?:instruments|products)`)},
	},
}

// vocabEntry maps containment keywords to a canonical display value. List
// fields collect matches in vocabulary order, not document order.
type vocabEntry struct {
	value    string
	keywords []string
}

//nolint:gochecknoglobals // fixed vocabulary, mirrors the platform allow-list
var platformVocabulary = []vocabEntry{
	{value: "MT4", keywords: []string{"metatrader 4", "mt4"}},
	{value: "MT5", keywords: []string{"metatrader 5", "mt5"}},
	{value: "cTrader", keywords: []string{"ctrader"}},
	{value: "WebTrader", keywords: []string{"webtrader", "web trader"}},
	{value: "TradingView", keywords: []string{"tradingview"}},
	{value: "Proprietary", keywords: []string{"proprietary platform", "proprietary app"}},
	{value: "Mobile", keywords: []string{"mobile app", "mobile trading"}},
}

// Regulator acronyms match case-sensitively on word boundaries; lowercase
// containment would light up on ordinary prose ("mas", "fma").
//
//nolint:gochecknoglobals // fixed vocabulary
var regulatorVocabulary = []vocabEntry{
	{value: "FCA", keywords: []string{"FCA", "Financial Conduct Authority"}},
	{value: "CySEC", keywords: []string{"CySEC", "CYSEC"}},
	{value: "ASIC", keywords: []string{"ASIC"}},
	{value: "FSCA", keywords: []string{"FSCA"}},
	{value: "BaFin", keywords: []string{"BaFin", "BAFIN"}},
	{value: "FINMA", keywords: []string{"FINMA"}},
	{value: "CFTC", keywords: []string{"CFTC"}},
	{value: "NFA", keywords: []string{"NFA"}},
	{value: "FSA", keywords: []string{"FSA"}},
	{value: "MAS", keywords: []string{"MAS"}},
	{value: "DFSA", keywords: []string{"DFSA"}},
	{value: "CIMA", keywords: []string{"CIMA"}},
	{value: "IFSC", keywords: []string{"IFSC"}},
}

//nolint:gochecknoglobals // fixed vocabulary
var depositMethodVocabulary = []vocabEntry{
	{value: "bank transfer", keywords: []string{"bank transfer", "wire transfer", "bank wire"}},
	{value: "credit card", keywords: []string{"credit card", "debit card", "visa", "mastercard"}},
	{value: "PayPal", keywords: []string{"paypal"}},
	{value: "Skrill", keywords: []string{"skrill"}},
	{value: "Neteller", keywords: []string{"neteller"}},
	{value: "crypto", keywords: []string{"crypto deposit", "bitcoin", "cryptocurrency"}},
}

//nolint:gochecknoglobals // fixed vocabulary
var accountTypeVocabulary = []vocabEntry{
	{value: "Standard", keywords: []string{"standard account"}},
	{value: "Micro", keywords: []string{"micro account", "cent account"}},
	{value: "ECN", keywords: []string{"ecn account", "ecn"}},
	{value: "STP", keywords: []string{"stp account", "stp"}},
	{value: "VIP", keywords: []string{"vip account", "premium account"}},
	{value: "Islamic", keywords: []string{"islamic account", "swap-free"}},
}

// Instrument classes share the platform vocabulary's containment matching.
// Single words like "gold" or "oil" are deliberately absent; they light up
// inside unrelated prose.
//
//nolint:gochecknoglobals // fixed vocabulary
var instrumentVocabulary = []vocabEntry{
	{value: "Forex", keywords: []string{"forex", "currency pairs", "fx pairs"}},
	{value: "Stocks", keywords: []string{"stocks", "share cfds", "equities"}},
	{value: "Indices", keywords: []string{"indices", "index cfds"}},
	{value: "Commodities", keywords: []string{"commodities", "commodity cfds"}},
	{value: "Cryptocurrencies", keywords: []string{"cryptocurrencies", "crypto cfds"}},
	{value: "ETFs", keywords: []string{"etfs", "etf cfds"}},
	{value: "Bonds", keywords: []string{"bonds", "treasuries"}},
}

// Boolean availability fields are plain substring checks against the whole
// document, unrelated copy included. The false-positive rate is a known,
// accepted property of the rubric; do not narrow these silently.
//
//nolint:gochecknoglobals // fixed keyword table
var booleanKeywords = map[model.Field][]string{
	model.FieldCFDsAvailable:  {"cfd"},
	model.FieldDemoAccount:    {"demo account", "free demo"},
	model.FieldIslamicAccount: {"islamic account", "swap-free"},
	model.FieldCopyTrading:    {"copy trading", "copytrading", "social trading"},
}

// listSelectors are tried before the heading fallback for pros and cons.
//
//nolint:gochecknoglobals // fixed rule table
var listSelectors = map[model.Field][]string{
	model.FieldPros: {"ul.pros li", ".pros li", "div.pros-list li"},
	model.FieldCons: {"ul.cons li", ".cons li", "div.cons-list li"},
}

// listHeadings feed the fallback that grabs the first <ul> after a heading.
//
//nolint:gochecknoglobals // fixed rule table
var listHeadings = map[model.Field][]string{
	model.FieldPros: {"pros", "advantages", "what we like"},
	model.FieldCons: {"cons", "disadvantages", "drawbacks"},
}

// nameStripPhrases are removed from heading text before title-casing, longest
// phrase first. Standalone "broker" survives so names like "Example Broker"
// keep their trailing word.
//
//nolint:gochecknoglobals // fixed rule table
var nameStripPhrases = []string{"forex broker", "review", "forex"}
