package safehx

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walteh/safehx/pkg/ast"
)

func TestParseAndRender(t *testing.T) {
	out, err := ParseAndRender(`<div class="greeting"><p>Hello world</p></div>`)
	require.NoError(t, err)
	require.Equal(t, `<div class="greeting"><p>Hello world</p></div>`, out)
}

func TestRenderHTMLEscapesTextNodes(t *testing.T) {
	doc := &ast.Document{Children: []ast.Node{
		&ast.Text{Content: "<script>alert('xss')</script>"},
	}}
	out := RenderHTML(doc)
	require.Contains(t, out, "&lt;script&gt;")
	require.NotContains(t, out, "<script>")
}

func TestRenderHTMLEscapesAllFiveCharacters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ampersand", input: "&", expected: "&amp;"},
		{name: "less_than", input: "<", expected: "&lt;"},
		{name: "greater_than", input: ">", expected: "&gt;"},
		{name: "double_quote", input: `"`, expected: "&quot;"},
		{name: "single_quote", input: "'", expected: "&#39;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &ast.Document{Children: []ast.Node{&ast.Text{Content: tt.input}}}
			require.Equal(t, tt.expected, RenderHTML(doc))
		})
	}
}

func TestParseFailureReportsEveryDiagnostic(t *testing.T) {
	_, err := Parse("</a>{@x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected closing tag")
	require.Contains(t, err.Error(), "unterminated expression")
}

func TestParseDiagnosticsExposesLocations(t *testing.T) {
	_, diags := ParseDiagnostics("{@name")
	require.Len(t, diags, 1)
	require.Equal(t, 1, diags[0].Loc.Line)
	require.Equal(t, 1, diags[0].Loc.Column)
}

func TestRenderDebugAndJSON(t *testing.T) {
	doc, err := Parse(`<div class="card">{@name}</div>`)
	require.NoError(t, err)

	debug := RenderDebug(doc)
	require.Contains(t, debug, "element <div>")
	require.Contains(t, debug, `attr class="card"`)
	require.Contains(t, debug, "expression {@name}")

	jsonOut := RenderJSON(doc)
	require.Contains(t, jsonOut, `"type": "element"`)
	require.Contains(t, jsonOut, `"tag": "div"`)
	require.Contains(t, jsonOut, `"code": "@name"`)
}
