package ast

import "github.com/walteh/safehx/pkg/position"

// Attr is one attribute of an element, component or slot. Like Node it
// is a closed sum: Static, Dynamic, Spread or Special.
type Attr interface {
	attr()
	Span() position.Span
}

// StaticAttr is a literal attribute such as class="card". Boolean
// attributes (a bare name with no "=") are stored with Value "true".
type StaticAttr struct {
	Name  string
	Value string
	Pos   position.Span
}

// DynamicAttr is an expression-valued attribute such as class={@class}.
type DynamicAttr struct {
	Name string
	// Expr is the raw expression source between the braces.
	Expr string
	Pos  position.Span
}

// SpreadAttr splices a whole attribute map, written as a bare {...} in
// attribute position.
type SpreadAttr struct {
	Expr string
	Pos  position.Span
}

// SpecialAttr is a ":"-prefixed attribute such as :if={...} or :let={v}.
// Kind is the attribute name with the leading ":" stripped.
type SpecialAttr struct {
	Kind string
	Expr string
	Pos  position.Span
}

func (*StaticAttr) attr()  {}
func (*DynamicAttr) attr() {}
func (*SpreadAttr) attr()  {}
func (*SpecialAttr) attr() {}

func (a *StaticAttr) Span() position.Span  { return a.Pos }
func (a *DynamicAttr) Span() position.Span { return a.Pos }
func (a *SpreadAttr) Span() position.Span  { return a.Pos }
func (a *SpecialAttr) Span() position.Span { return a.Pos }
