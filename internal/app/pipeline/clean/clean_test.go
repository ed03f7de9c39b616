package clean

import (
	"reflect"
	"testing"

	"github.com/brokeratlas/broker-compare/internal/pkg/model"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestRecord_NameCleaning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   *string
		want string
	}{
		{name: "trims and collapses whitespace", in: strPtr("  example   broker  "), want: "Example Broker"},
		{name: "strips disallowed characters", in: strPtr("eToro (Europe)!"), want: "Etoro Europe"},
		{name: "keeps ampersand dot hyphen", in: strPtr("B&B Trade-House Inc."), want: "B&b Trade-house Inc."},
		{name: "nil name stays empty", in: nil, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Record(model.RawRecord{Name: tt.in})
			if got.Name != tt.want {
				t.Errorf("Record().Name = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestRecord_PlatformAllowList(t *testing.T) {
	t.Parallel()

	got := Record(model.RawRecord{
		Name:      strPtr("Example Broker"),
		Platforms: []string{"MT4", "madeupplatform", "cTrader"},
	})

	want := []string{"mt4", "ctrader"}
	if !reflect.DeepEqual(got.Platforms, want) {
		t.Errorf("Platforms = %v, want %v", got.Platforms, want)
	}
	if !reflect.DeepEqual(got.UnknownPlatforms, []string{"madeupplatform"}) {
		t.Errorf("UnknownPlatforms = %v, want [madeupplatform]", got.UnknownPlatforms)
	}
}

func TestRecord_PlatformDedupPreservesOrder(t *testing.T) {
	t.Parallel()

	got := Record(model.RawRecord{
		Name:      strPtr("Example Broker"),
		Platforms: []string{"MT5", "mt4", " MT5 ", "WebTrader", "mt4"},
	})

	want := []string{"mt5", "mt4", "webtrader"}
	if !reflect.DeepEqual(got.Platforms, want) {
		t.Errorf("Platforms = %v, want %v", got.Platforms, want)
	}
}

func TestRecord_LeverageCoercion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   *string
		want *float64
	}{
		{name: "ratio form", in: strPtr("1:400"), want: floatPtr(400)},
		{name: "ratio with spaces", in: strPtr("1 : 500"), want: floatPtr(500)},
		{name: "bare number", in: strPtr("30"), want: floatPtr(30)},
		{name: "unparseable dropped", in: strPtr("unlimited"), want: nil},
		{name: "absent stays absent", in: nil, want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Record(model.RawRecord{Name: strPtr("Example Broker"), MaxLeverageRaw: tt.in})
			switch {
			case tt.want == nil && got.MaxLeverage != nil:
				t.Errorf("MaxLeverage = %v, want nil", *got.MaxLeverage)
			case tt.want != nil && got.MaxLeverage == nil:
				t.Errorf("MaxLeverage = nil, want %v", *tt.want)
			case tt.want != nil && *got.MaxLeverage != *tt.want:
				t.Errorf("MaxLeverage = %v, want %v", *got.MaxLeverage, *tt.want)
			}
		})
	}
}

func TestRecord_ProsConsCappedAtFive(t *testing.T) {
	t.Parallel()

	got := Record(model.RawRecord{
		Name: strPtr("Example Broker"),
		Pros: []string{"a", "", "b", "  ", "c", "d", "e", "f", "g"},
		Cons: []string{" one ", "two"},
	})

	if len(got.Pros) != 5 {
		t.Errorf("len(Pros) = %d, want 5", len(got.Pros))
	}
	if !reflect.DeepEqual(got.Cons, []string{"one", "two"}) {
		t.Errorf("Cons = %v, want [one two]", got.Cons)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	records := []model.RawRecord{
		{
			Name:           strPtr("  eXample   broker (EU)! "),
			Platforms:      []string{"MT4", "madeupplatform", "MT4", "cTrader"},
			MaxLeverageRaw: strPtr("1:400"),
			SpreadType:     strPtr(" Variable "),
			WebsiteURL:     strPtr(" https://example.com "),
			Headquarters:   strPtr("London,  UK"),
			Pros:           []string{"a", "b", "c", "d", "e", "f"},
			Cons:           []string{"", "one"},
		},
		{},
		{Name: strPtr("IG Group")},
	}

	for _, raw := range records {
		once := Record(raw)
		twice := Normalize(once)

		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Normalize not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
		}
	}
}
