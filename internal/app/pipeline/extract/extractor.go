// Package extract turns raw broker review HTML into candidate records. Each
// field is driven by an ordered rule table in rules.go; extraction is pure
// and never fails, a field that matches nothing is simply absent.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/brokeratlas/broker-compare/internal/pkg/http"
	"github.com/brokeratlas/broker-compare/internal/pkg/model"
	"github.com/brokeratlas/broker-compare/internal/pkg/utils"
)

const minFoundedYear = 1970

//nolint:gochecknoglobals // compiled once from the rule table
var nameStripRegexes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(nameStripPhrases))
	for _, phrase := range nameStripPhrases {
		expr := `(?i)\b` + strings.ReplaceAll(regexp.QuoteMeta(phrase), ` `, `\s+`) + `\b`
		res = append(res, regexp.MustCompile(expr))
	}
	return res
}()

//nolint:gochecknoglobals // compiled once from the vocabulary table
var regulatorMatchers = func() map[string]*regexp.Regexp {
	matchers := map[string]*regexp.Regexp{}
	for _, entry := range regulatorVocabulary {
		for _, kw := range entry.keywords {
			matchers[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		}
	}
	return matchers
}()

// Extractor applies the rule tables to one page at a time.
type Extractor struct {
	httpClient http.Client // nil disables the PDF fact-sheet fallback
	logger     *zap.Logger
}

func New(httpClient http.Client, logger *zap.Logger) *Extractor {
	return &Extractor{httpClient: httpClient, logger: logger}
}

// ExtractAll runs the full field list against one page and records the
// attempted set on the result. Fields the HTML pass misses may be filled by
// the PDF fact-sheet fallback when the page links one.
func (e *Extractor) ExtractAll(rawHTML, sourceFile string) model.RawRecord {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		// selector rules are skipped, text rules still apply
		e.logger.Warn("failed to parse document", zap.String("source", sourceFile), zap.Error(err))
		doc = nil
	}

	flat := utils.FlattenHTML(rawHTML)
	lower := strings.ToLower(flat)

	rec := model.RawRecord{
		SourceFile: sourceFile,
		Attempted:  append([]model.Field(nil), model.AllFields...),
	}

	rec.Name = e.extractName(doc, flat)
	rec.WebsiteURL = e.extractText(model.FieldWebsiteURL, doc, flat)
	rec.OverallRating = e.extractFloat(model.FieldOverallRating, doc, flat)
	rec.MinDeposit = e.extractFloat(model.FieldMinDeposit, doc, flat)
	rec.MaxLeverageRaw = e.extractLeverage(doc, flat)
	rec.SpreadFrom = e.extractFloat(model.FieldSpreadFrom, doc, flat)
	rec.SpreadType = e.extractText(model.FieldSpreadType, doc, flat)
	rec.FoundedYear = e.extractFoundedYear(doc, flat)
	rec.Headquarters = e.extractText(model.FieldHeadquarters, doc, flat)
	rec.Platforms = collectVocabulary(platformVocabulary, lower)
	rec.RegulatoryBodies = collectRegulators(flat)
	rec.Pros = e.extractList(model.FieldPros, doc)
	rec.Cons = e.extractList(model.FieldCons, doc)
	rec.DepositMethods = collectVocabulary(depositMethodVocabulary, lower)
	rec.AccountTypes = collectVocabulary(accountTypeVocabulary, lower)
	rec.InstrumentsTotal = e.extractInt(model.FieldInstrumentsTotal, doc, flat)
	rec.InstrumentTypes = collectVocabulary(instrumentVocabulary, lower)
	rec.CFDsAvailable = containsAny(lower, booleanKeywords[model.FieldCFDsAvailable])
	rec.DemoAccount = containsAny(lower, booleanKeywords[model.FieldDemoAccount])
	rec.IslamicAccount = containsAny(lower, booleanKeywords[model.FieldIslamicAccount])
	rec.CopyTrading = containsAny(lower, booleanKeywords[model.FieldCopyTrading])

	e.applyPDFFallback(&rec, rawHTML)

	return rec
}

// matchPatterns walks a field's ordered pattern list and returns the first
// hit. Later patterns are never consulted once one matches.
func (e *Extractor) matchPatterns(field model.Field, doc *goquery.Document, flat string) (string, bool) {
	for _, p := range textPatterns[field] {
		if p.selector != "" {
			if doc == nil {
				continue
			}
			sel := doc.Find(p.selector).First()
			if sel.Length() == 0 {
				continue
			}

			var value string
			if p.attr != "" {
				value, _ = sel.Attr(p.attr)
			} else {
				value = sel.Text()
			}
			if value = utils.NormalizeSpaces(value); value != "" {
				return value, true
			}
			continue
		}

		if m := p.re.FindStringSubmatch(flat); len(m) > 1 {
			if value := utils.NormalizeSpaces(m[1]); value != "" {
				return value, true
			}
		}
	}

	return "", false
}

func (e *Extractor) extractName(doc *goquery.Document, flat string) *string {
	raw, ok := e.matchPatterns(model.FieldName, doc, flat)
	if !ok {
		return nil
	}

	for _, re := range nameStripRegexes {
		raw = re.ReplaceAllString(raw, " ")
	}

	name := utils.TitleCaseWords(raw)
	if utf8.RuneCountInString(name) < 2 {
		return nil
	}

	return &name
}

func (e *Extractor) extractText(field model.Field, doc *goquery.Document, flat string) *string {
	value, ok := e.matchPatterns(field, doc, flat)
	if !ok {
		return nil
	}
	return &value
}

func (e *Extractor) extractFloat(field model.Field, doc *goquery.Document, flat string) *float64 {
	raw, ok := e.matchPatterns(field, doc, flat)
	if !ok {
		return nil
	}

	f, ok := utils.ParseNumber(raw)
	if !ok {
		return nil
	}

	return &f
}

func (e *Extractor) extractInt(field model.Field, doc *goquery.Document, flat string) *int {
	f := e.extractFloat(field, doc, flat)
	if f == nil {
		return nil
	}

	n := int(*f)
	return &n
}

// extractFoundedYear discards matches outside [1970, current year]. The first
// matching pattern is still the only one consulted; an out-of-range hit does
// not fall through to later patterns.
func (e *Extractor) extractFoundedYear(doc *goquery.Document, flat string) *int {
	raw, ok := e.matchPatterns(model.FieldFoundedYear, doc, flat)
	if !ok {
		return nil
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year < minFoundedYear || year > time.Now().Year() {
		return nil
	}

	return &year
}

// extractLeverage keeps the matched text verbatim ("1:400"), minus interior
// spaces. The cleaner owns the numeric conversion.
func (e *Extractor) extractLeverage(doc *goquery.Document, flat string) *string {
	raw, ok := e.matchPatterns(model.FieldMaxLeverage, doc, flat)
	if !ok {
		return nil
	}

	raw = strings.ReplaceAll(raw, " ", "")
	return &raw
}

// extractList tries the selector rules first, then grabs the first <ul> after
// a matching heading.
func (e *Extractor) extractList(field model.Field, doc *goquery.Document) []string {
	if doc == nil {
		return nil
	}

	for _, selector := range listSelectors[field] {
		items := selectionTexts(doc.Find(selector))
		if len(items) > 0 {
			return items
		}
	}

	var items []string
	doc.Find("h2, h3, h4, strong").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		text := strings.ToLower(utils.NormalizeSpaces(heading.Text()))
		for _, kw := range listHeadings[field] {
			if strings.Contains(text, kw) {
				items = selectionTexts(heading.NextAllFiltered("ul").First().Find("li"))
				if len(items) > 0 {
					return false
				}
			}
		}
		return true
	})

	return items
}

func selectionTexts(sel *goquery.Selection) []string {
	var items []string
	sel.Each(func(_ int, li *goquery.Selection) {
		if text := utils.NormalizeSpaces(li.Text()); text != "" {
			items = append(items, text)
		}
	})
	return items
}

// collectVocabulary tests each vocabulary entry's keywords against the
// lowercased page text and collects hits in vocabulary order, not document
// order.
func collectVocabulary(vocab []vocabEntry, lower string) []string {
	var values []string
	for _, entry := range vocab {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				values = append(values, entry.value)
				break
			}
		}
	}
	return values
}

// collectRegulators matches acronyms case-sensitively on word boundaries.
func collectRegulators(flat string) []string {
	var values []string
	for _, entry := range regulatorVocabulary {
		for _, kw := range entry.keywords {
			if regulatorMatchers[kw].MatchString(flat) {
				values = append(values, entry.value)
				break
			}
		}
	}
	return values
}

func containsAny(lower string, keywords []string) *bool {
	found := false
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			found = true
			break
		}
	}
	return &found
}
