package transcheck

import "fmt"

type (
	// FindingKind identifies one class of translation defect.
	FindingKind string

	// Finding is one validation error found in a translation file.
	Finding struct {
		// Cause is the underlying syntax error, set for wrong-messageformat findings.
		Cause error `json:"-"`
		// Kind is the defect class.
		Kind FindingKind `json:"error"`
		// Lang is the language code derived from the file name.
		Lang string `json:"lang"`
		// Key is the message key, empty for file-level findings.
		Key string `json:"key,omitempty"`
		// Message is a human-readable description of the defect.
		Message string `json:"message"`
	}
)

const (
	// FindingEmptyMessage marks a message whose value is empty or absent.
	FindingEmptyMessage FindingKind = "empty-message"
	// FindingMissedPlaceholder marks a translation using placeholders for a
	// key that has none in the base translations.
	FindingMissedPlaceholder FindingKind = "missed-placeholder"
	// FindingWrongPlaceholder marks a translation whose placeholder tokens
	// are not a subset of the base translations' tokens for the key.
	FindingWrongPlaceholder FindingKind = "wrong-placeholder"
	// FindingWrongMessageFormat marks a message that fails to compile under
	// the target language's formatting grammar.
	FindingWrongMessageFormat FindingKind = "wrong-messageformat"
)

// String formats the finding for human-readable reports.
func (f Finding) String() string {
	s := fmt.Sprintf("[%s] %s", f.Kind, f.Lang)
	if f.Key != "" {
		s += fmt.Sprintf(" %q", f.Key)
	}
	s += ": " + f.Message
	if f.Cause != nil {
		s += fmt.Sprintf(" (%v)", f.Cause)
	}
	return s
}
