// Package diagnostic collects the problems found while scanning and
// parsing a template. Both passes record every problem they see and keep
// going; a non-empty list at the end of a pass turns the whole call into
// a failure.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/walteh/safehx/pkg/position"
)

// Severity classifies where in the pipeline a diagnostic was produced.
type Severity string

const (
	// Lex marks problems found while tokenizing (unterminated
	// expressions, comments, quoted strings, unexpected characters).
	Lex Severity = "lex"
	// Syntax marks structural problems found while parsing (missing or
	// mismatched closing tags, unexpected tokens).
	Syntax Severity = "syntax"
)

// Diagnostic is a single location-tagged problem.
type Diagnostic struct {
	Loc      position.Location
	Message  string
	Severity Severity
}

// String formats the diagnostic as "<line>:<column>: <message>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Loc.Line, d.Loc.Column, d.Message)
}

func (d Diagnostic) Error() string {
	return d.String()
}

// Diagnostics is an ordered list of problems, accumulated without
// deduplication.
type Diagnostics []Diagnostic

// Lexf appends a lex diagnostic at loc.
func (ds *Diagnostics) Lexf(loc position.Location, format string, args ...any) {
	*ds = append(*ds, Diagnostic{Loc: loc, Message: fmt.Sprintf(format, args...), Severity: Lex})
}

// Syntaxf appends a syntax diagnostic at loc.
func (ds *Diagnostics) Syntaxf(loc position.Location, format string, args ...any) {
	*ds = append(*ds, Diagnostic{Loc: loc, Message: fmt.Sprintf(format, args...), Severity: Syntax})
}

// HasErrors reports whether any diagnostic was recorded.
func (ds Diagnostics) HasErrors() bool {
	return len(ds) > 0
}

// Strings returns the formatted diagnostics in collection order.
func (ds Diagnostics) Strings() []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.String())
	}
	return out
}

// Report joins the formatted diagnostics into one human-readable
// multi-line error report.
func (ds Diagnostics) Report() string {
	return strings.Join(ds.Strings(), "\n")
}

// Err converts the list into a single error, or nil when empty.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	merr := &multierror.Error{ErrorFormat: listFormat}
	for _, d := range ds {
		merr = multierror.Append(merr, d)
	}
	return merr
}

func listFormat(errs []error) string {
	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		lines = append(lines, err.Error())
	}
	return strings.Join(lines, "\n")
}
