package extract

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/brokeratlas/broker-compare/internal/pkg/http/httpmock"
	"github.com/brokeratlas/broker-compare/internal/pkg/model"
)

func loadGoldenFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}
	return string(data)
}

func TestExtractAll_ReviewPage(t *testing.T) {
	t.Parallel()

	html := loadGoldenFile(t, "testdata/example_broker.html")
	extractor := New(nil, zap.NewNop())

	rec := extractor.ExtractAll(html, "example_broker.html")

	if rec.Name == nil || *rec.Name != "Example Broker" {
		t.Errorf("Name = %v, want %q", rec.Name, "Example Broker")
	}
	if rec.OverallRating == nil || *rec.OverallRating != 4.5 {
		t.Errorf("OverallRating = %v, want 4.5", rec.OverallRating)
	}
	if rec.MinDeposit == nil || *rec.MinDeposit != 250 {
		t.Errorf("MinDeposit = %v, want 250", rec.MinDeposit)
	}
	if rec.MaxLeverageRaw == nil || *rec.MaxLeverageRaw != "1:400" {
		t.Errorf("MaxLeverageRaw = %v, want %q", rec.MaxLeverageRaw, "1:400")
	}
	if rec.SpreadFrom == nil || *rec.SpreadFrom != 0.6 {
		t.Errorf("SpreadFrom = %v, want 0.6", rec.SpreadFrom)
	}
	if rec.SpreadType == nil || *rec.SpreadType != "variable" {
		t.Errorf("SpreadType = %v, want %q", rec.SpreadType, "variable")
	}
	if rec.FoundedYear == nil || *rec.FoundedYear != 1998 {
		t.Errorf("FoundedYear = %v, want 1998", rec.FoundedYear)
	}
	if rec.Headquarters == nil || *rec.Headquarters != "London" {
		t.Errorf("Headquarters = %v, want %q", rec.Headquarters, "London")
	}
	if rec.WebsiteURL == nil || *rec.WebsiteURL != "https://www.examplebroker.com" {
		t.Errorf("WebsiteURL = %v, want the official site href", rec.WebsiteURL)
	}
	if rec.InstrumentsTotal == nil || *rec.InstrumentsTotal != 1200 {
		t.Errorf("InstrumentsTotal = %v, want 1200", rec.InstrumentsTotal)
	}

	if want := []string{"MT4", "cTrader", "Mobile"}; !reflect.DeepEqual(rec.Platforms, want) {
		t.Errorf("Platforms = %v, want %v (vocabulary order)", rec.Platforms, want)
	}
	if want := []string{"FCA", "CySEC"}; !reflect.DeepEqual(rec.RegulatoryBodies, want) {
		t.Errorf("RegulatoryBodies = %v, want %v", rec.RegulatoryBodies, want)
	}
	if want := []string{"credit card", "PayPal", "Skrill"}; !reflect.DeepEqual(rec.DepositMethods, want) {
		t.Errorf("DepositMethods = %v, want %v", rec.DepositMethods, want)
	}
	if want := []string{"Standard", "ECN", "Islamic"}; !reflect.DeepEqual(rec.AccountTypes, want) {
		t.Errorf("AccountTypes = %v, want %v", rec.AccountTypes, want)
	}
	if want := []string{"Indices", "Commodities"}; !reflect.DeepEqual(rec.InstrumentTypes, want) {
		t.Errorf("InstrumentTypes = %v, want %v (vocabulary order)", rec.InstrumentTypes, want)
	}

	wantPros := []string{"Regulated in two jurisdictions", "Low minimum deposit", "Wide platform choice"}
	if !reflect.DeepEqual(rec.Pros, wantPros) {
		t.Errorf("Pros = %v, want %v", rec.Pros, wantPros)
	}
	wantCons := []string{"Inactivity fees", "No US clients"}
	if !reflect.DeepEqual(rec.Cons, wantCons) {
		t.Errorf("Cons = %v, want %v", rec.Cons, wantCons)
	}

	if rec.CFDsAvailable == nil || !*rec.CFDsAvailable {
		t.Error("CFDsAvailable = false, want true")
	}
	if rec.DemoAccount == nil || !*rec.DemoAccount {
		t.Error("DemoAccount = false, want true")
	}
	if rec.IslamicAccount == nil || !*rec.IslamicAccount {
		t.Error("IslamicAccount = false, want true")
	}
	if rec.CopyTrading == nil || *rec.CopyTrading {
		t.Error("CopyTrading = true, want false")
	}

	if len(rec.Attempted) != len(model.AllFields) {
		t.Errorf("len(Attempted) = %d, want %d", len(rec.Attempted), len(model.AllFields))
	}
	if rec.SourceFile != "example_broker.html" {
		t.Errorf("SourceFile = %q, want the input name", rec.SourceFile)
	}
}

func TestExtractAll_SparsePage(t *testing.T) {
	t.Parallel()

	html := loadGoldenFile(t, "testdata/sparse_page.html")
	extractor := New(nil, zap.NewNop())

	rec := extractor.ExtractAll(html, "sparse_page.html")

	if rec.Name != nil {
		t.Errorf("Name = %q, want nil", *rec.Name)
	}
	if rec.MinDeposit != nil {
		t.Errorf("MinDeposit = %v, want nil", *rec.MinDeposit)
	}
	if len(rec.Platforms) != 0 {
		t.Errorf("Platforms = %v, want none", rec.Platforms)
	}
	if len(rec.RegulatoryBodies) != 0 {
		t.Errorf("RegulatoryBodies = %v, want none", rec.RegulatoryBodies)
	}
	if len(rec.InstrumentTypes) != 0 {
		t.Errorf("InstrumentTypes = %v, want none", rec.InstrumentTypes)
	}
	// booleans are always attempted; absence of the keyword means false
	if rec.CFDsAvailable == nil || *rec.CFDsAvailable {
		t.Error("CFDsAvailable should be a definite false")
	}
}

func TestExtractAll_FirstPatternWins(t *testing.T) {
	t.Parallel()

	// both deposit patterns could match; the first one in the list must win
	html := `<html><body><p>Minimum deposit: $100. Deposit from $999 for premium.</p></body></html>`
	extractor := New(nil, zap.NewNop())

	rec := extractor.ExtractAll(html, "inline")
	if rec.MinDeposit == nil || *rec.MinDeposit != 100 {
		t.Errorf("MinDeposit = %v, want 100 from the first pattern", rec.MinDeposit)
	}
}

func TestExtractAll_NameStripping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		h1   string
		want string
	}{
		{name: "review suffix stripped", h1: "Example Broker Review", want: "Example Broker"},
		{name: "forex broker phrase stripped", h1: "Acme Forex Broker Review", want: "Acme"},
		{name: "standalone broker kept", h1: "Example Broker", want: "Example Broker"},
		{name: "case-insensitive", h1: "PEPPERSTONE REVIEW", want: "Pepperstone"},
	}

	extractor := New(nil, zap.NewNop())

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			html := "<html><body><h1>" + tt.h1 + "</h1></body></html>"
			rec := extractor.ExtractAll(html, "inline")
			if rec.Name == nil || *rec.Name != tt.want {
				t.Errorf("Name = %v, want %q", rec.Name, tt.want)
			}
		})
	}
}

func TestExtractAll_SingleRuneNameDiscarded(t *testing.T) {
	t.Parallel()

	// byte length would pass a one-rune multibyte name; character length must not
	html := "<html><body><h1>Æ</h1></body></html>"
	extractor := New(nil, zap.NewNop())

	rec := extractor.ExtractAll(html, "inline")
	if rec.Name != nil {
		t.Errorf("Name = %q, want nil for a single-character name", *rec.Name)
	}
}

func TestExtractAll_FoundedYearRange(t *testing.T) {
	t.Parallel()

	extractor := New(nil, zap.NewNop())

	tests := []struct {
		name string
		html string
		want *int
	}{
		{name: "in range", html: "<p>founded in 2001</p>", want: intPtr(2001)},
		{name: "before range discarded", html: "<p>founded in 1869</p>", want: nil},
		{name: "future year discarded", html: "<p>founded in 2999</p>", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := extractor.ExtractAll(tt.html, "inline")
			switch {
			case tt.want == nil && rec.FoundedYear != nil:
				t.Errorf("FoundedYear = %d, want nil", *rec.FoundedYear)
			case tt.want != nil && rec.FoundedYear == nil:
				t.Errorf("FoundedYear = nil, want %d", *tt.want)
			case tt.want != nil && *rec.FoundedYear != *tt.want:
				t.Errorf("FoundedYear = %d, want %d", *rec.FoundedYear, *tt.want)
			}
		})
	}
}

func TestFindFactSheetLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "prefers fact sheet over other pdfs",
			html: `<a href="https://x.com/brochure.pdf">a</a><a href="https://x.com/fact-sheet.pdf">b</a>`,
			want: "https://x.com/fact-sheet.pdf",
		},
		{
			name: "falls back to first pdf",
			html: `<a href="https://x.com/one.pdf">a</a><a href="https://x.com/two.pdf">b</a>`,
			want: "https://x.com/one.pdf",
		},
		{
			name: "relative links skipped",
			html: `<a href="/local/terms.pdf">a</a>`,
			want: "",
		},
		{
			name: "no pdfs",
			html: `<a href="https://x.com/page.html">a</a>`,
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := findFactSheetLink(tt.html); got != tt.want {
				t.Errorf("findFactSheetLink() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractAll_PDFFallback_FetchErrorIgnored(t *testing.T) {
	t.Parallel()

	mockClient := &httpmock.ClientMock{
		FetchRawFunc: func(_ string, _ map[string]string) ([]byte, error) {
			return nil, errors.New("network error")
		},
	}

	html := `<html><body><h1>Example Broker</h1>
		<a href="https://x.com/fact-sheet.pdf">fact sheet</a></body></html>`

	extractor := New(mockClient, zap.NewNop())
	rec := extractor.ExtractAll(html, "inline")

	if rec.Name == nil || *rec.Name != "Example Broker" {
		t.Errorf("Name = %v, want %q", rec.Name, "Example Broker")
	}
	if rec.MinDeposit != nil {
		t.Errorf("MinDeposit = %v, want nil; a failed fetch must not alter the record", *rec.MinDeposit)
	}
	if calls := len(mockClient.FetchRawCalls()); calls != 1 {
		t.Errorf("FetchRaw calls = %d, want 1", calls)
	}
}

func TestExtractAll_PDFFallback_DisabledWithoutClient(t *testing.T) {
	t.Parallel()

	html := `<html><body><h1>Example Broker</h1>
		<a href="https://x.com/fact-sheet.pdf">fact sheet</a></body></html>`

	extractor := New(nil, zap.NewNop())
	rec := extractor.ExtractAll(html, "inline")

	if rec.Name == nil || *rec.Name != "Example Broker" {
		t.Errorf("Name = %v, want %q", rec.Name, "Example Broker")
	}
}

func intPtr(n int) *int { return &n }
