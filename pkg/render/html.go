// Package render turns a parsed document back into output text.
//
// The HTML renderer is total: any document produced by a successful
// parse renders without error. Template structure (tags, delimiters,
// attribute names, control-flow keywords) is written as trusted; free
// text and embedded expression code are written as untrusted and
// escaped by the safehtml builder.
package render

import (
	"github.com/walteh/safehx/pkg/ast"
	"github.com/walteh/safehx/pkg/safehtml"
)

// HTML renders doc to its output string.
func HTML(doc *ast.Document) string {
	b := &safehtml.Builder{}
	for _, child := range doc.Children {
		htmlNode(b, child)
	}
	return b.String()
}

func htmlNode(b *safehtml.Builder, n ast.Node) {
	switch n := n.(type) {
	case *ast.Document:
		for _, child := range n.Children {
			htmlNode(b, child)
		}
	case *ast.Text:
		b.WriteUntrusted(n.Content)
	case *ast.Element:
		htmlElement(b, n)
	case *ast.Component:
		htmlComponent(b, n)
	case *ast.Slot:
		htmlSlot(b, n)
	case *ast.Expression:
		b.WriteTrusted("{")
		b.WriteUntrusted(n.Code)
		b.WriteTrusted("}")
	case *ast.EEx:
		htmlEEx(b, n)
	case *ast.EExBlock:
		htmlEExBlock(b, n)
	case *ast.Comment:
		b.WriteTrusted("<!--")
		b.WriteUntrusted(n.Content)
		b.WriteTrusted("-->")
	}
}

func htmlAttrs(b *safehtml.Builder, attrs []ast.Attr) {
	for _, attr := range attrs {
		switch a := attr.(type) {
		case *ast.StaticAttr:
			b.WriteTrusted(" " + a.Name + `="` + a.Value + `"`)
		case *ast.DynamicAttr:
			b.WriteTrusted(" " + a.Name + "={")
			b.WriteUntrusted(a.Expr)
			b.WriteTrusted("}")
		case *ast.SpreadAttr:
			b.WriteTrusted(" {")
			b.WriteUntrusted(a.Expr)
			b.WriteTrusted("}")
		case *ast.SpecialAttr:
			b.WriteTrusted(" :" + a.Kind + "={")
			b.WriteUntrusted(a.Expr)
			b.WriteTrusted("}")
		}
	}
}

func htmlElement(b *safehtml.Builder, el *ast.Element) {
	b.WriteTrusted("<" + el.Tag)
	htmlAttrs(b, el.Attrs)
	if el.SelfClosing {
		b.WriteTrusted(" />")
		return
	}
	b.WriteTrusted(">")
	for _, child := range el.Children {
		htmlNode(b, child)
	}
	b.WriteTrusted("</" + el.Tag + ">")
}

func htmlComponent(b *safehtml.Builder, c *ast.Component) {
	b.WriteTrusted("<" + c.Name)
	htmlAttrs(b, c.Attrs)
	if len(c.Children) == 0 && len(c.Slots) == 0 {
		b.WriteTrusted(" />")
		return
	}
	b.WriteTrusted(">")
	for _, child := range c.Children {
		htmlNode(b, child)
	}
	for _, slot := range c.Slots {
		htmlSlot(b, slot)
	}
	b.WriteTrusted("</" + c.Name + ">")
}

func htmlSlot(b *safehtml.Builder, s *ast.Slot) {
	b.WriteTrusted("<:" + s.Name)
	htmlAttrs(b, s.Attrs)
	if s.LetBinding != "" {
		b.WriteTrusted(" :let={")
		b.WriteUntrusted(s.LetBinding)
		b.WriteTrusted("}")
	}
	b.WriteTrusted(">")
	for _, child := range s.Children {
		htmlNode(b, child)
	}
	b.WriteTrusted("</:" + s.Name + ">")
}

func htmlEEx(b *safehtml.Builder, e *ast.EEx) {
	switch e.Kind {
	case ast.EExOutput:
		b.WriteTrusted("<%=")
	case ast.EExComment:
		b.WriteTrusted("<%#")
	default:
		b.WriteTrusted("<%")
	}
	if e.Code != "" {
		b.WriteTrusted(" ")
		b.WriteUntrusted(e.Code)
	}
	b.WriteTrusted(" %>")
}

func htmlEExBlock(b *safehtml.Builder, blk *ast.EExBlock) {
	b.WriteTrusted("<%= " + blk.Keyword)
	if blk.Header != "" {
		b.WriteTrusted(" ")
		b.WriteUntrusted(blk.Header)
	}
	b.WriteTrusted(" do %>")
	for _, clause := range blk.Clauses {
		switch clause.Kind {
		case ast.ClauseElse:
			b.WriteTrusted("<% else %>")
		case ast.ClauseArm:
			b.WriteTrusted("<% ")
			b.WriteUntrusted(clause.Arm)
			b.WriteTrusted(" %>")
		case ast.ClauseEnd:
			b.WriteTrusted("<% end %>")
		}
		for _, child := range clause.Children {
			htmlNode(b, child)
		}
	}
}
