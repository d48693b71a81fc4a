// Package ast defines the document tree produced by the parser.
//
// The tree is a closed sum type: every node variant implements Node via
// an unexported marker method, so a type switch over nodes is exhaustive
// by construction. Nodes are created once during parsing and never
// mutated afterwards; a successfully parsed tree may be read from any
// number of goroutines.
package ast

import "github.com/walteh/safehx/pkg/position"

// Node is one variant of the document tree.
type Node interface {
	node()
	// Span returns the source range the node was parsed from. The zero
	// span means the node carries no position information.
	Span() position.Span
}

// Document is the root of a parsed template.
type Document struct {
	Children []Node
	Pos      position.Span
}

// Text is literal character data.
type Text struct {
	Content string
	Pos     position.Span
}

// Element is a plain HTML element.
type Element struct {
	Tag   string
	Attrs []Attr
	// Children is empty when SelfClosing is true.
	Children []Node
	// SelfClosing is true when the element was written as "<tag ... />"
	// or when Tag is a void element name.
	SelfClosing bool
	Pos         position.Span
}

// ComponentKind classifies a component by the first character of its name.
type ComponentKind int

const (
	// Local components are written "<.name>".
	Local ComponentKind = iota
	// Remote components are written "<Name>" or "<Module.Name>".
	Remote
)

func (k ComponentKind) String() string {
	if k == Local {
		return "local"
	}
	return "remote"
}

// ClassifyComponent derives the component kind from its name. Names
// starting with "." are local; names starting with an uppercase ASCII
// letter are remote.
func ClassifyComponent(name string) ComponentKind {
	if len(name) > 0 && name[0] == '.' {
		return Local
	}
	return Remote
}

// Component is a reusable-unit tag. The local name keeps its leading dot.
type Component struct {
	Kind  ComponentKind
	Name  string
	Attrs []Attr
	// Children holds the body nodes that are not slots.
	Children []Node
	// Slots holds the named slot regions, in source order.
	Slots []*Slot
	Pos   position.Span
}

// Slot is a named content region inside a component. Name never contains
// the leading ":".
type Slot struct {
	Name  string
	Attrs []Attr
	// LetBinding is the expression of a ":let" attribute, or "" when the
	// slot has none.
	LetBinding string
	Children   []Node
	Pos        position.Span
}

// Expression is one "{...}" interpolation. Code is the raw source text
// between the braces; it is never evaluated here.
type Expression struct {
	Code string
	Pos  position.Span
}

// EExKind distinguishes the three EEx tag forms.
type EExKind int

const (
	// EExExec is "<% ... %>".
	EExExec EExKind = iota
	// EExOutput is "<%= ... %>".
	EExOutput
	// EExComment is "<%# ... %>".
	EExComment
)

func (k EExKind) String() string {
	switch k {
	case EExOutput:
		return "output"
	case EExComment:
		return "comment"
	default:
		return "exec"
	}
}

// EEx is a single non-block EEx tag.
type EEx struct {
	Kind EExKind
	Code string
	Pos  position.Span
}

// ClauseKind labels one clause of an EEx control-flow block.
type ClauseKind string

const (
	// ClauseDo is the clause between the block header and the first
	// boundary tag.
	ClauseDo ClauseKind = "do"
	// ClauseElse follows "<% else %>".
	ClauseElse ClauseKind = "else"
	// ClauseArm follows a case arm such as "<% {:ok, v} -> %>".
	ClauseArm ClauseKind = "case-arm"
	// ClauseEnd is the empty terminating clause for "<% end %>".
	ClauseEnd ClauseKind = "end"
)

// EExClause is one section of an EExBlock body.
type EExClause struct {
	Kind ClauseKind
	// Arm is the raw arm source for ClauseArm clauses (including the
	// "->"), and "" otherwise.
	Arm      string
	Children []Node
	Pos      position.Span
}

// EExBlock is a control-flow construct such as
// "<%= if logged_in?(@user) do %> ... <% end %>".
type EExBlock struct {
	// Keyword is one of "if", "case", "cond", "for", "unless".
	Keyword string
	// Header is the expression between the keyword and the trailing "do".
	Header  string
	Clauses []*EExClause
	Pos     position.Span
}

// Comment is an HTML comment "<!-- ... -->".
type Comment struct {
	Content string
	Pos     position.Span
}

func (*Document) node()   {}
func (*Text) node()       {}
func (*Element) node()    {}
func (*Component) node()  {}
func (*Slot) node()       {}
func (*Expression) node() {}
func (*EEx) node()        {}
func (*EExBlock) node()   {}
func (*Comment) node()    {}

func (n *Document) Span() position.Span   { return n.Pos }
func (n *Text) Span() position.Span       { return n.Pos }
func (n *Element) Span() position.Span    { return n.Pos }
func (n *Component) Span() position.Span  { return n.Pos }
func (n *Slot) Span() position.Span       { return n.Pos }
func (n *Expression) Span() position.Span { return n.Pos }
func (n *EEx) Span() position.Span        { return n.Pos }
func (n *EExBlock) Span() position.Span   { return n.Pos }
func (n *Comment) Span() position.Span    { return n.Pos }
