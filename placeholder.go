package transcheck

import (
	"regexp"

	"github.com/bondowe/transcheck/internal/locales"
)

// PlaceholderIndex maps message keys to the deduplicated placeholder tokens
// found in their messages. Keys whose messages contain no placeholders are
// never stored.
type PlaceholderIndex map[string][]string

//nolint:gochecknoglobals // Compiled once; the placeholder grammar is fixed
var (
	// placeholderPattern matches one mustache-style span: double curly
	// braces around word characters, whitespace, dots, and the section
	// control characters.
	placeholderPattern = regexp.MustCompile(`\{\{[\w\s.#^/']+\}\}`)

	// placeholderControl matches everything stripped during normalization:
	// braces, whitespace, and the control characters.
	placeholderControl = regexp.MustCompile(`[{}\s#^/']`)
)

// ExtractPlaceholders returns the placeholder tokens contained in message,
// in order of first appearance, without deduplication. Spans that normalize
// to an empty token are dropped.
func ExtractPlaceholders(message string) []string {
	spans := placeholderPattern.FindAllString(message, -1)
	if len(spans) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(spans))
	for _, span := range spans {
		token := placeholderControl.ReplaceAllString(span, "")
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// hasPlaceholderSpan reports whether message contains a placeholder span,
// normalizable or not.
func hasPlaceholderSpan(message string) bool {
	return placeholderPattern.MatchString(message)
}

// BuildPlaceholderIndex builds the placeholder inventory of a translation
// set. For every key of primary, the tokens of its message are merged with
// the tokens of the same key's message in extra (when extra is present and
// the value is a string), then deduplicated. Keys with no tokens are
// omitted, unless extra carries a literal placeholder list for the key, in
// which case that list is stored verbatim.
func BuildPlaceholderIndex(primary, extra *locales.Set) PlaceholderIndex {
	index := make(PlaceholderIndex)
	for _, key := range primary.Keys() {
		var tokens []string
		value, _ := primary.Lookup(key)
		if text, ok := value.Text(); ok {
			tokens = ExtractPlaceholders(text)
		}

		var extraValue locales.Value
		var inExtra bool
		if extra != nil {
			extraValue, inExtra = extra.Lookup(key)
		}
		if inExtra {
			if text, ok := extraValue.Text(); ok {
				tokens = append(tokens, ExtractPlaceholders(text)...)
			}
		}

		if tokens = dedupe(tokens); len(tokens) > 0 {
			index[key] = tokens
			continue
		}
		if inExtra {
			if list, ok := extraValue.StringSlice(); ok {
				index[key] = list
			}
		}
	}
	return index
}

// Contains reports whether the index holds token for key.
func (idx PlaceholderIndex) Contains(key, token string) bool {
	for _, t := range idx[key] {
		if t == token {
			return true
		}
	}
	return false
}

func dedupe(tokens []string) []string {
	if len(tokens) < 2 { //nolint:mnd // nothing to deduplicate
		return tokens
	}
	seen := make(map[string]bool, len(tokens))
	out := tokens[:0]
	for _, token := range tokens {
		if !seen[token] {
			seen[token] = true
			out = append(out, token)
		}
	}
	return out
}
