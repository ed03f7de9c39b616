//nolint:revive,nolintlint // I like this package name, leave me alone
package utils

import (
	"strconv"
	"strings"
)

func NormalizeSpaces(str string) string {
	str = strings.ReplaceAll(str, "&nbsp;", " ") // html non-breaking space
	str = strings.ReplaceAll(str, "\u00A0", " ") // no-break space
	str = strings.ReplaceAll(str, "\u0085", " ") // next line
	str = strings.ReplaceAll(str, "\u2009", " ") // thin space
	str = strings.ReplaceAll(str, "\u200A", " ") // hair space
	str = strings.ReplaceAll(str, "\u200B", " ") // zero-width space
	str = strings.ReplaceAll(str, "\u200C", " ") // zero-width non-joiner
	str = strings.ReplaceAll(str, "\u200D", " ") // zero-width joiner
	str = strings.ReplaceAll(str, "\uFEFF", " ") // zero-width non-breaking space
	str = strings.ReplaceAll(str, "\u202F", " ") // narrow no-break space
	str = strings.ReplaceAll(str, "\t", " ")     // tab
	str = strings.ReplaceAll(str, "\n", " ")     // newline
	str = strings.ReplaceAll(str, "\r", " ")     // carriage return
	str = strings.ReplaceAll(str, "\v", " ")     // vertical tab
	str = strings.ReplaceAll(str, "\f", " ")     // form feed
	str = strings.Join(strings.Fields(str), " ") // replace consecutive spaces with single space
	str = strings.TrimSpace(str)                 // remove leading and trailing spaces

	return str
}

// TitleCaseWords upper-cases the first letter of each space-separated word and
// lower-cases the rest, e.g. "eXAMPLE broker" -> "Example Broker".
func TitleCaseWords(str string) string {
	words := strings.Fields(str)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) == 0 {
			continue
		}
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}

// ParseNumber coerces a numeric-looking string to a float, stripping currency
// symbols, percent signs and thousands separators first. The boolean reports
// whether the remainder parsed.
func ParseNumber(str string) (float64, bool) {
	str = NormalizeSpaces(str)
	str = strings.NewReplacer("$", "", "€", "", "£", "", "%", "", ",", "", " ", "").Replace(str)
	if str == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}
