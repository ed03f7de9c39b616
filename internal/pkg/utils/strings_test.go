//nolint:revive,nolintlint // I like this package name, leave me alone
package utils

import "testing"

func TestNormalizeSpaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "hello world", want: "hello world"},
		{name: "html nbsp entity", in: "hello&nbsp;world", want: "hello world"},
		{name: "no-break space", in: "hello\u00A0world", want: "hello world"},
		{name: "tabs and newlines", in: "hello\tbig\nworld", want: "hello big world"},
		{name: "consecutive whitespace collapsed", in: "  hello   world  ", want: "hello world"},
		{name: "zero-width characters", in: "hel\u200Blo\u200C wor\u200Dld", want: "hel lo wor ld"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeSpaces(tt.in); got != tt.want {
				t.Errorf("NormalizeSpaces(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTitleCaseWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "eXAMPLE broker", want: "Example Broker"},
		{in: "ig group", want: "Ig Group"},
		{in: "ALREADY UPPER", want: "Already Upper"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		if got := TitleCaseWords(tt.in); got != tt.want {
			t.Errorf("TitleCaseWords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		want   float64
		wantOK bool
	}{
		{name: "plain integer", in: "250", want: 250, wantOK: true},
		{name: "dollar prefix", in: "$250", want: 250, wantOK: true},
		{name: "thousands separator", in: "1,000.50", want: 1000.50, wantOK: true},
		{name: "euro with spaces", in: "€ 100", want: 100, wantOK: true},
		{name: "percent sign", in: "1.5%", want: 1.5, wantOK: true},
		{name: "not a number", in: "free", wantOK: false},
		{name: "empty", in: "", wantOK: false},
		{name: "symbols only", in: "$ ,", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseNumber(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseNumber(%q) = %f, want %f", tt.in, got, tt.want)
			}
		})
	}
}
