package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walteh/safehx/pkg/token"
)

// tok builds an expected token; spans are checked separately.
func tok(kind token.Kind, value string) token.Token {
	return token.Token{Kind: kind, Value: value}
}

func requireTokens(t *testing.T, expected []token.Token, actual []token.Token) {
	t.Helper()
	require.Equal(t, len(expected), len(actual), "number of tokens should match: %v", actual)
	for i := range expected {
		require.Equal(t, expected[i].Kind, actual[i].Kind, "token kind should match at position %d", i)
		require.Equal(t, expected[i].Value, actual[i].Value, "token value should match at position %d", i)
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:  "plain_text",
			input: "hello world",
			expected: []token.Token{
				tok(token.Text, "hello world"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "element_with_static_attr",
			input: `<div class="card">Hi</div>`,
			expected: []token.Token{
				tok(token.TagOpen, "div"),
				tok(token.AttrName, "class"),
				tok(token.AttrEquals, "="),
				tok(token.AttrValue, "card"),
				tok(token.TagEnd, ">"),
				tok(token.Text, "Hi"),
				tok(token.TagClose, "div"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "self_closing_tag",
			input: "<br/>",
			expected: []token.Token{
				tok(token.TagOpen, "br"),
				tok(token.TagSelfClose, "/>"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "unquoted_attr_value",
			input: "<div class=card>",
			expected: []token.Token{
				tok(token.TagOpen, "div"),
				tok(token.AttrName, "class"),
				tok(token.AttrEquals, "="),
				tok(token.AttrValue, "card"),
				tok(token.TagEnd, ">"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "boolean_attr",
			input: "<div disabled>",
			expected: []token.Token{
				tok(token.TagOpen, "div"),
				tok(token.AttrName, "disabled"),
				tok(token.TagEnd, ">"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "local_component",
			input: `<.button label="ok" />`,
			expected: []token.Token{
				tok(token.ComponentOpen, ".button"),
				tok(token.AttrName, "label"),
				tok(token.AttrEquals, "="),
				tok(token.AttrValue, "ok"),
				tok(token.TagSelfClose, "/>"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "remote_component",
			input: "<MyApp.Button></MyApp.Button>",
			expected: []token.Token{
				tok(token.ComponentOpen, "MyApp.Button"),
				tok(token.TagEnd, ">"),
				tok(token.ComponentClose, "MyApp.Button"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "slot",
			input: "<:header>t</:header>",
			expected: []token.Token{
				tok(token.SlotOpen, "header"),
				tok(token.TagEnd, ">"),
				tok(token.Text, "t"),
				tok(token.SlotClose, "header"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "special_attr_with_expression",
			input: "<div :if={@ok}>x</div>",
			expected: []token.Token{
				tok(token.TagOpen, "div"),
				tok(token.AttrName, ":if"),
				tok(token.AttrEquals, "="),
				tok(token.ExprOpen, "{"),
				tok(token.ExprContent, "@ok"),
				tok(token.ExprClose, "}"),
				tok(token.TagEnd, ">"),
				tok(token.Text, "x"),
				tok(token.TagClose, "div"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "spread_attr",
			input: "<div {@rest}>",
			expected: []token.Token{
				tok(token.TagOpen, "div"),
				tok(token.ExprOpen, "{"),
				tok(token.ExprContent, "@rest"),
				tok(token.ExprClose, "}"),
				tok(token.TagEnd, ">"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "standalone_expression",
			input: "{@name}",
			expected: []token.Token{
				tok(token.ExprOpen, "{"),
				tok(token.ExprContent, "@name"),
				tok(token.ExprClose, "}"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "expression_with_nested_braces",
			input: "{%{a: {1, 2}}}",
			expected: []token.Token{
				tok(token.ExprOpen, "{"),
				tok(token.ExprContent, "%{a: {1, 2}}"),
				tok(token.ExprClose, "}"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "expression_with_brace_inside_string",
			input: `{call("}")}`,
			expected: []token.Token{
				tok(token.ExprOpen, "{"),
				tok(token.ExprContent, `call("}")`),
				tok(token.ExprClose, "}"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "eex_output",
			input: "<%= @name %>",
			expected: []token.Token{
				tok(token.EExOutput, "<%="),
				tok(token.EExContent, "@name"),
				tok(token.EExClose, "%>"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "eex_exec",
			input: "<% assign() %>",
			expected: []token.Token{
				tok(token.EExOpen, "<%"),
				tok(token.EExContent, "assign()"),
				tok(token.EExClose, "%>"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "eex_comment",
			input: "<%# note %>",
			expected: []token.Token{
				tok(token.EExComment, "<%#"),
				tok(token.EExContent, "note"),
				tok(token.EExClose, "%>"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "eex_empty",
			input: "<% %>",
			expected: []token.Token{
				tok(token.EExOpen, "<%"),
				tok(token.EExClose, "%>"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "html_comment",
			input: "<!-- hi -->",
			expected: []token.Token{
				tok(token.CommentOpen, "<!--"),
				tok(token.CommentContent, " hi "),
				tok(token.CommentClose, "-->"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "mixed_content",
			input: "Hello <b>{@name}</b>!",
			expected: []token.Token{
				tok(token.Text, "Hello "),
				tok(token.TagOpen, "b"),
				tok(token.TagEnd, ">"),
				tok(token.ExprOpen, "{"),
				tok(token.ExprContent, "@name"),
				tok(token.ExprClose, "}"),
				tok(token.TagClose, "b"),
				tok(token.Text, "!"),
				tok(token.EOF, ""),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, diags := Scan(tt.input)
			require.Empty(t, diags, "scanning should succeed")
			requireTokens(t, tt.expected, tokens)
		})
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{
			name:    "unterminated_expression",
			input:   "{@name",
			message: "unterminated expression",
		},
		{
			name:    "unterminated_eex",
			input:   "<%= @name",
			message: "unterminated EEx tag",
		},
		{
			name:    "unterminated_comment",
			input:   "<!-- hi",
			message: "unterminated comment",
		},
		{
			name:    "unterminated_quoted_value",
			input:   `<div class="card`,
			message: "unterminated quoted attribute value",
		},
		{
			name:    "tag_without_close",
			input:   "<div class=x",
			message: `expected ">" or "/>"`,
		},
		{
			name:    "closing_tag_without_gt",
			input:   "</div",
			message: `expected ">" in closing tag`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, diags := Scan(tt.input)
			require.NotEmpty(t, diags, "scanning should record a diagnostic")
			require.Contains(t, diags[0].Message, tt.message)

			// the stream is still complete and EOF terminated
			require.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
		})
	}
}

func TestScanCollectsEveryError(t *testing.T) {
	// two independent problems in one pass
	tokens, diags := Scan("</div {@x")
	require.Len(t, diags, 2)
	require.Contains(t, diags[0].Message, "closing tag")
	require.Contains(t, diags[1].Message, "unterminated expression")
	require.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
}

func TestScanSpans(t *testing.T) {
	tokens, diags := Scan("a\n<b>")
	require.Empty(t, diags)

	require.Equal(t, token.Text, tokens[0].Kind)
	require.Equal(t, 1, tokens[0].Span.Start.Line)
	require.Equal(t, 1, tokens[0].Span.Start.Column)
	require.Equal(t, 0, tokens[0].Span.Start.Offset)

	require.Equal(t, token.TagOpen, tokens[1].Kind)
	require.Equal(t, 2, tokens[1].Span.Start.Line)
	require.Equal(t, 1, tokens[1].Span.Start.Column)
	require.Equal(t, 2, tokens[1].Span.Start.Offset)
}
