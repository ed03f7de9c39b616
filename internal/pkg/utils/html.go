//nolint:revive,nolintlint // I like this package name, leave me alone
package utils

import (
	"strings"

	"golang.org/x/net/html"
)

// FlattenHTML reduces an HTML document to its visible text, token by token,
// skipping script/style/noscript subtrees. Text tokens are joined with single
// spaces so regex patterns can match across tag boundaries.
func FlattenHTML(rawHTML string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(rawHTML))

	var sb strings.Builder
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		switch tt { //nolint: exhaustive // we only care about text, start and end tags
		case html.ErrorToken:
			return NormalizeSpaces(sb.String())

		case html.StartTagToken:
			if isInvisibleTag(tokenizer) {
				skipDepth++
			}

		case html.EndTagToken:
			if isInvisibleTag(tokenizer) && skipDepth > 0 {
				skipDepth--
			}

		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(tokenizer.Text())
				sb.WriteByte(' ')
			}

		default:
			continue
		}
	}
}

func isInvisibleTag(tokenizer *html.Tokenizer) bool {
	tn, _ := tokenizer.TagName()
	switch string(tn) {
	case "script", "style", "noscript":
		return true
	}
	return false
}
