package safehtml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeTable(t *testing.T) {
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
		{name: "other_chars_pass_through", input: "héllo wörld 123", expected: "héllo wörld 123"},
		{name: "mixed", input: `<a href="x">&'</a>`, expected: "&lt;a href=&quot;x&quot;&gt;&amp;&#39;&lt;/a&gt;"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Builder{}
			b.WriteUntrusted(tt.input)
			require.Equal(t, tt.expected, b.String())
		})
	}
}

func TestWriteTrustedIsNeverEscaped(t *testing.T) {
	b := &Builder{}
	b.WriteTrusted(`<script>alert("not escaped")</script>`)
	require.Equal(t, `<script>alert("not escaped")</script>`, b.String())
}

func TestEscapingIsNotIdempotent(t *testing.T) {
	// already-escaped input is escaped again; this is the contract, not
	// a bug
	b := &Builder{}
	b.WriteUntrusted("&amp;")
	require.Equal(t, "&amp;amp;", b.String())
}

func TestWriteOrderIsPreserved(t *testing.T) {
	b := &Builder{}
	b.WriteTrusted(`<div class="container">`)
	b.WriteUntrusted("<script>alert('xss')</script>")
	b.WriteTrusted("</div>")
	require.Equal(t,
		`<div class="container">&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;</div>`,
		b.String())
}
