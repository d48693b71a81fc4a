// Package safehx parses HEEx-style component templates and renders them
// back to HTML without ever confusing author-written markup with
// interpolated content.
//
// The pipeline is strictly one way: text -> tokens -> tree -> output.
// Embedded expressions are never evaluated; their source text is carried
// through the tree and escaped on the way out.
package safehx

import (
	"github.com/walteh/safehx/pkg/ast"
	"github.com/walteh/safehx/pkg/diagnostic"
	"github.com/walteh/safehx/pkg/parser"
	"github.com/walteh/safehx/pkg/render"
	"gitlab.com/tozd/go/errors"
)

// Parse scans and parses a template source. On failure it returns an
// error aggregating every diagnostic found in the pass, one per line.
func Parse(src string) (*ast.Document, error) {
	doc, diags := parser.ParseString(src)
	if diags.HasErrors() {
		return nil, diags.Err()
	}
	return doc, nil
}

// ParseDiagnostics is Parse with the raw diagnostic list, for callers
// that want the individual locations rather than one error.
func ParseDiagnostics(src string) (*ast.Document, diagnostic.Diagnostics) {
	return parser.ParseString(src)
}

// RenderHTML renders a parsed document. It never fails: any document a
// successful Parse produced is renderable.
func RenderHTML(doc *ast.Document) string {
	return render.HTML(doc)
}

// RenderDebug renders a parsed document as an indented inspection tree.
func RenderDebug(doc *ast.Document) string {
	return render.Debug(doc)
}

// RenderJSON renders a parsed document as JSON.
func RenderJSON(doc *ast.Document) string {
	return render.JSON(doc)
}

// ParseAndRender parses src and renders it straight back to HTML.
func ParseAndRender(src string) (string, error) {
	doc, err := Parse(src)
	if err != nil {
		return "", errors.Errorf("parsing template: %w", err)
	}
	return render.HTML(doc), nil
}
