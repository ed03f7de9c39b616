package extract

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/brokeratlas/broker-compare/internal/pkg/model"
	"github.com/brokeratlas/broker-compare/internal/pkg/utils"
)

//nolint:gochecknoglobals // fixed rule table
var pdfLinkRegex = regexp.MustCompile(`href="([^"]*\.pdf[^"]*)"`)

// pdfFallbackFields are the text-rule fields the fact sheet may fill when the
// HTML pass came up empty. Selector rules do not apply to PDF text.
//
//nolint:gochecknoglobals // fixed rule table
var pdfFallbackFields = []model.Field{
	model.FieldMinDeposit,
	model.FieldMaxLeverage,
	model.FieldSpreadFrom,
	model.FieldSpreadType,
	model.FieldFoundedYear,
	model.FieldHeadquarters,
	model.FieldInstrumentsTotal,
}

// applyPDFFallback fetches a linked PDF fact sheet and re-runs the text rules
// over its plain text for fields still missing. Absent client, absent link or
// any fetch/parse error just leaves the record as it was.
func (e *Extractor) applyPDFFallback(rec *model.RawRecord, rawHTML string) {
	if e.httpClient == nil {
		return
	}

	url := findFactSheetLink(rawHTML)
	if url == "" {
		return
	}

	e.logger.Debug("found fact sheet PDF", zap.String("url", url))

	content, err := e.httpClient.FetchRaw(url, nil)
	if err != nil {
		e.logger.Warn("failed to fetch fact sheet PDF", zap.String("url", url), zap.Error(err))
		return
	}

	text, err := e.pdfPlainText(content)
	if err != nil {
		e.logger.Warn("failed to parse fact sheet PDF", zap.String("url", url), zap.Error(err))
		return
	}

	e.fillMissingFromText(rec, text)
}

// findFactSheetLink prefers PDF links that look like fact sheets and falls
// back to the first PDF on the page. Relative links are skipped; local review
// pages carry no base URL to resolve them against.
func findFactSheetLink(rawHTML string) string {
	allMatches := pdfLinkRegex.FindAllStringSubmatch(rawHTML, -1)

	var first string
	for _, matches := range allMatches {
		if len(matches) < 2 || !strings.HasPrefix(matches[1], "http") {
			continue
		}
		url := matches[1]
		if first == "" {
			first = url
		}

		lowerURL := strings.ToLower(url)
		if strings.Contains(lowerURL, "fact") ||
			strings.Contains(lowerURL, "sheet") ||
			strings.Contains(lowerURL, "terms") {
			return url
		}
	}

	return first
}

func (e *Extractor) pdfPlainText(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	var allText strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Warn("failed to extract text from PDF page", zap.Int("page", i), zap.Error(err))
			continue
		}
		allText.WriteString(text)
		allText.WriteString("\n")
	}

	return utils.NormalizeSpaces(allText.String()), nil
}

//nolint:cyclop // flat per-field dispatch
func (e *Extractor) fillMissingFromText(rec *model.RawRecord, text string) {
	for _, field := range pdfFallbackFields {
		switch field {
		case model.FieldMinDeposit:
			if rec.MinDeposit == nil {
				rec.MinDeposit = e.extractFloat(field, nil, text)
			}
		case model.FieldMaxLeverage:
			if rec.MaxLeverageRaw == nil {
				rec.MaxLeverageRaw = e.extractLeverage(nil, text)
			}
		case model.FieldSpreadFrom:
			if rec.SpreadFrom == nil {
				rec.SpreadFrom = e.extractFloat(field, nil, text)
			}
		case model.FieldSpreadType:
			if rec.SpreadType == nil {
				rec.SpreadType = e.extractText(field, nil, text)
			}
		case model.FieldFoundedYear:
			if rec.FoundedYear == nil {
				rec.FoundedYear = e.extractFoundedYear(nil, text)
			}
		case model.FieldHeadquarters:
			if rec.Headquarters == nil {
				rec.Headquarters = e.extractText(field, nil, text)
			}
		case model.FieldInstrumentsTotal:
			if rec.InstrumentsTotal == nil {
				rec.InstrumentsTotal = e.extractInt(field, nil, text)
			}
		}
	}
}
