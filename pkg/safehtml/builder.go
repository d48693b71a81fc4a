// Package safehtml provides a trust-tagged string accumulator. Escaping
// is decided by which write method the caller picks, not by inspecting
// the content: the builder has no knowledge of HTML semantics beyond the
// five-character escape table.
package safehtml

import "strings"

// Builder accumulates output fragments for one render call. The zero
// value is ready to use. Create one per render and discard it after
// String; it is not safe for concurrent use.
type Builder struct {
	buf strings.Builder
}

// WriteTrusted appends s verbatim. Callers use it only for template
// structure the author wrote themselves.
func (b *Builder) WriteTrusted(s string) {
	b.buf.WriteString(s)
}

// WriteUntrusted appends s with the five HTML-significant characters
// escaped. Everything that originated as free text or embedded
// expression code goes through here.
func (b *Builder) WriteUntrusted(s string) {
	b.buf.WriteString(Escape(s))
}

// String materializes the accumulated output. It is the terminal
// operation of the builder's lifecycle.
func (b *Builder) String() string {
	return b.buf.String()
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces exactly &, <, >, " and ' with their HTML entities.
// All other characters pass through unchanged. Escaping is not
// idempotent: input already containing "&amp;" comes out as "&amp;amp;".
func Escape(s string) string {
	return escaper.Replace(s)
}
