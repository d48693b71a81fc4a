// Package token defines the token stream produced by the scanner.
package token

import (
	"fmt"

	"github.com/walteh/safehx/pkg/position"
)

// Kind identifies the lexical class of a token.
type Kind int

const (
	// Text is a run of literal character data outside any markup.
	Text Kind = iota

	// TagOpen is "<name" for a plain HTML element.
	TagOpen
	// TagClose is "</name>" for a plain HTML element.
	TagClose
	// TagSelfClose is the "/>" that ends a self-closed tag.
	TagSelfClose
	// TagEnd is the ">" that ends an opening tag.
	TagEnd

	// ComponentOpen is "<Name" or "<.name".
	ComponentOpen
	// ComponentClose is "</Name>" or "</.name>".
	ComponentClose

	// SlotOpen is "<:name". The token value has the ":" stripped.
	SlotOpen
	// SlotClose is "</:name>". The token value has the ":" stripped.
	SlotClose

	// AttrName is an attribute name. Special attributes keep their
	// leading ":" in the value so the parser can classify them.
	AttrName
	// AttrEquals is the "=" between an attribute name and its value.
	AttrEquals
	// AttrValue is a quoted or unquoted literal attribute value.
	AttrValue

	// ExprOpen, ExprContent and ExprClose form a "{...}" expression.
	ExprOpen
	ExprContent
	ExprClose

	// EExOpen is "<%", EExOutput is "<%=", EExComment is "<%#".
	EExOpen
	EExOutput
	EExComment
	// EExContent is the trimmed source between an EEx open and "%>".
	EExContent
	// EExClose is "%>".
	EExClose

	// CommentOpen, CommentContent and CommentClose form "<!-- ... -->".
	CommentOpen
	CommentContent
	CommentClose

	// EOF terminates every token stream exactly once.
	EOF
)

var kindNames = map[Kind]string{
	Text:           "Text",
	TagOpen:        "TagOpen",
	TagClose:       "TagClose",
	TagSelfClose:   "TagSelfClose",
	TagEnd:         "TagEnd",
	ComponentOpen:  "ComponentOpen",
	ComponentClose: "ComponentClose",
	SlotOpen:       "SlotOpen",
	SlotClose:      "SlotClose",
	AttrName:       "AttrName",
	AttrEquals:     "AttrEquals",
	AttrValue:      "AttrValue",
	ExprOpen:       "ExprOpen",
	ExprContent:    "ExprContent",
	ExprClose:      "ExprClose",
	EExOpen:        "EExOpen",
	EExOutput:      "EExOutput",
	EExComment:     "EExComment",
	EExContent:     "EExContent",
	EExClose:       "EExClose",
	CommentOpen:    "CommentOpen",
	CommentContent: "CommentContent",
	CommentClose:   "CommentClose",
	EOF:            "EOF",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical unit with its source span.
type Token struct {
	Kind  Kind
	Value string
	Span  position.Span
}

func (t Token) String() string {
	if t.Value == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
}

// IsEExOpen reports whether the token opens any EEx form.
func (t Token) IsEExOpen() bool {
	return t.Kind == EExOpen || t.Kind == EExOutput || t.Kind == EExComment
}

// ClosesContext reports whether the token is any closing-tag token,
// used by the parser to stop child loops.
func (t Token) ClosesContext() bool {
	return t.Kind == TagClose || t.Kind == ComponentClose || t.Kind == SlotClose
}
