package transcheck

import (
	"github.com/gotnospirit/messageformat"
	"golang.org/x/text/language"
)

// formatCompiler compiles messages under one language's ICU-style
// formatting grammar.
type formatCompiler struct {
	parser *messageformat.Parser
}

// newFormatCompiler builds a compiler for the given language code.
// Returns nil when the code does not parse or the culture has no plural
// rules available; format checking is then skipped for that language.
func newFormatCompiler(code string) *formatCompiler {
	tag, err := language.Parse(code)
	if err != nil {
		return nil
	}
	base, _ := tag.Base()
	parser, err := messageformat.NewWithCulture(base.String())
	if err != nil {
		return nil
	}
	return &formatCompiler{parser: parser}
}

// compile attempts to parse message under the compiler's grammar and
// returns the syntax error, if any.
func (c *formatCompiler) compile(message string) error {
	_, err := c.parser.Parse(message)
	return err
}
