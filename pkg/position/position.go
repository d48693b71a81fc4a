// Package position carries source locations through the scanner, parser
// and diagnostics. Lines and columns are 1-based; columns count runes.
package position

import "fmt"

// Location is a single point in the template source.
type Location struct {
	// Line is the 1-based line number.
	Line int
	// Column is the 1-based column number, counted in runes.
	Column int
	// Offset is the byte offset in the source text.
	Offset int
}

// Start is the location of the first character of any source.
func Start() Location {
	return Location{Line: 1, Column: 1, Offset: 0}
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Before reports whether l comes strictly before other in the source.
func (l Location) Before(other Location) bool {
	return l.Offset < other.Offset
}

// Span is a half-open source range [Start, End). The zero value means
// "no span recorded".
type Span struct {
	Start Location
	End   Location
}

// NewSpan builds a span from two locations.
func NewSpan(start, end Location) Span {
	return Span{Start: start, End: end}
}

// IsZero reports whether the span was never set.
func (s Span) IsZero() bool {
	return s.Start == Location{} && s.End == Location{}
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
