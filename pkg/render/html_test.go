package render

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walteh/safehx/pkg/ast"
	"github.com/walteh/safehx/pkg/parser"
)

func mustParse(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc, diags := parser.ParseString(src)
	require.Empty(t, diags, "parse should succeed: %s", diags.Report())
	return doc
}

func TestHTMLExactOutputs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty_div",
			input:    "<div></div>",
			expected: "<div></div>",
		},
		{
			name:     "void_tag",
			input:    "<br/>",
			expected: "<br />",
		},
		{
			name:     "void_tag_without_marker",
			input:    "<br>",
			expected: "<br />",
		},
		{
			name:     "expression_code_is_escaped",
			input:    "<div>{<script>}</div>",
			expected: "<div>{&lt;script&gt;}</div>",
		},
		{
			name:     "text_is_escaped",
			input:    "<p>a &amp; b</p>",
			expected: "<p>a &amp;amp; b</p>",
		},
		{
			name:     "static_attrs_are_trusted",
			input:    `<div class="card">x</div>`,
			expected: `<div class="card">x</div>`,
		},
		{
			name:     "boolean_attr_normalizes",
			input:    "<input disabled>",
			expected: `<input disabled="true" />`,
		},
		{
			name:     "dynamic_attr",
			input:    "<div class={@cls}></div>",
			expected: "<div class={@cls}></div>",
		},
		{
			name:     "spread_attr",
			input:    "<div {@rest}></div>",
			expected: "<div {@rest}></div>",
		},
		{
			name:     "special_attr",
			input:    "<div :if={@ok}></div>",
			expected: "<div :if={@ok}></div>",
		},
		{
			name:     "empty_component_self_closes",
			input:    "<.icon></.icon>",
			expected: "<.icon />",
		},
		{
			name:     "remote_component",
			input:    "<MyApp.Button>Go</MyApp.Button>",
			expected: "<MyApp.Button>Go</MyApp.Button>",
		},
		{
			name:     "component_with_slot",
			input:    "<.card><:header>H</:header></.card>",
			expected: "<.card><:header>H</:header></.card>",
		},
		{
			name:     "slot_let_binding",
			input:    "<.list><:item :let={x}>{x}</:item></.list>",
			expected: "<.list><:item :let={x}>{x}</:item></.list>",
		},
		{
			name:     "eex_output",
			input:    "<%= @name %>",
			expected: "<%= @name %>",
		},
		{
			name:     "eex_comment",
			input:    "<%# note %>",
			expected: "<%# note %>",
		},
		{
			name:     "eex_if_block",
			input:    "<%= if @ok do %>Y<% else %>N<% end %>",
			expected: "<%= if @ok do %>Y<% else %>N<% end %>",
		},
		{
			name:     "eex_case_block",
			input:    "<%= case @s do %><% :ok -> %>Y<% end %>",
			expected: "<%= case @s do %><% :ok -> %>Y<% end %>",
		},
		{
			name:     "html_comment",
			input:    "<!-- note -->",
			expected: "<!-- note -->",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, HTML(mustParse(t, tt.input)))
		})
	}
}

func TestHTMLRoundTrip(t *testing.T) {
	// parse(render(parse(x))) is isomorphic to parse(x); comparing the
	// rendered forms checks tree shape and content in one go
	inputs := []string{
		"<div></div>",
		`<div class="card"><p>Hello</p></div>`,
		"<br/>",
		"<input disabled>",
		"<div>{@name}</div>",
		"<.button label={@label} />",
		"<.card><:header>H</:header>Body</.card>",
		"<.list><:item :let={x}>{x}</:item></.list>",
		"<MyApp.Button>Go</MyApp.Button>",
		"<%= if @ok do %>Y<% else %>N<% end %>",
		"<%= case @s do %><% :ok -> %>Y<% end %>",
		"<%= for x <- @items do %>{x}<% end %>",
		"<% assign() %>",
		"<%# note %>",
		"<!-- note -->",
		"plain text",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := HTML(mustParse(t, input))
			second := HTML(mustParse(t, first))
			require.Equal(t, first, second)
		})
	}
}

func TestHTMLXSSPrevention(t *testing.T) {
	doc := &ast.Document{Children: []ast.Node{
		&ast.Text{Content: "<script>alert('xss')</script>"},
	}}
	out := HTML(doc)
	require.NotContains(t, out, "<script>")
	require.Equal(t, "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;", out)
}

func TestHTMLNeverFailsOnHandBuiltTrees(t *testing.T) {
	// render is total over any tree shape the parser can produce
	doc := &ast.Document{Children: []ast.Node{
		&ast.Element{Tag: "div", Children: []ast.Node{
			&ast.Component{Kind: ast.Local, Name: ".x"},
			&ast.EEx{Kind: ast.EExExec, Code: ""},
		}},
	}}
	require.Equal(t, "<div><.x /><% %></div>", HTML(doc))
}
