package transcheck

import (
	"fmt"

	"github.com/bondowe/transcheck/internal/locales"
)

// ValidateFile validates one translation file's messages and returns its
// findings in key order. template is the base translations' placeholder
// index; nil disables placeholder checks. checkMessageFormat and
// checkEmpties toggle the grammar and empty-message checks.
//
// Placeholder syntax and formatting-grammar syntax are mutually exclusive:
// a message containing a placeholder span is never handed to the format
// compiler.
func ValidateFile(set *locales.Set, lang string, template PlaceholderIndex, checkMessageFormat, checkEmpties bool) []Finding {
	own := BuildPlaceholderIndex(set, nil)

	var compiler *formatCompiler
	if checkMessageFormat {
		compiler = newFormatCompiler(lang)
	}

	var findings []Finding
	for _, key := range set.Keys() {
		value, _ := set.Lookup(key)

		if value.IsEmpty() && checkEmpties {
			findings = append(findings, Finding{
				Kind:    FindingEmptyMessage,
				Lang:    lang,
				Key:     key,
				Message: "message is empty",
			})
			continue
		}

		text, ok := value.Text()
		if !ok {
			continue
		}

		if hasPlaceholderSpan(text) {
			if finding := checkPlaceholders(key, lang, own, template); finding != nil {
				findings = append(findings, *finding)
			}
			continue
		}

		if compiler != nil && text != "" {
			if err := compiler.compile(text); err != nil {
				findings = append(findings, Finding{
					Kind:    FindingWrongMessageFormat,
					Lang:    lang,
					Key:     key,
					Message: "message cannot be compiled under the language's formatting grammar",
					Cause:   err,
				})
			}
		}
	}
	return findings
}

// checkPlaceholders compares one key's placeholder tokens against the base
// translations' tokens for the same key.
func checkPlaceholders(key, lang string, own, template PlaceholderIndex) *Finding {
	if template == nil {
		return nil
	}
	tokens, ok := own[key]
	if !ok {
		// The span matched structurally but normalized to nothing actionable.
		return nil
	}
	if _, ok := template[key]; !ok {
		return &Finding{
			Kind:    FindingMissedPlaceholder,
			Lang:    lang,
			Key:     key,
			Message: "has placeholders, but base translations does not have placeholders",
		}
	}
	for _, token := range tokens {
		if !template.Contains(key, token) {
			return &Finding{
				Kind:    FindingWrongPlaceholder,
				Lang:    lang,
				Key:     key,
				Message: fmt.Sprintf("placeholder %q does not exist in base translations", token),
			}
		}
	}
	return nil
}
