package render

import (
	"fmt"
	"strings"

	"github.com/walteh/safehx/pkg/ast"
)

// Debug renders doc as an indented tree for inspection. The output is
// for humans and tests; nothing escapes it back into HTML.
func Debug(doc *ast.Document) string {
	var sb strings.Builder
	sb.WriteString("document\n")
	for _, child := range doc.Children {
		debugNode(&sb, child, 1)
	}
	return sb.String()
}

func debugNode(sb *strings.Builder, n ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := n.(type) {
	case *ast.Document:
		sb.WriteString(indent + "document\n")
		for _, child := range n.Children {
			debugNode(sb, child, depth+1)
		}
	case *ast.Text:
		fmt.Fprintf(sb, "%stext %q\n", indent, n.Content)
	case *ast.Element:
		fmt.Fprintf(sb, "%selement <%s> self-closing=%v\n", indent, n.Tag, n.SelfClosing)
		debugAttrs(sb, n.Attrs, depth+1)
		for _, child := range n.Children {
			debugNode(sb, child, depth+1)
		}
	case *ast.Component:
		fmt.Fprintf(sb, "%scomponent <%s> kind=%s\n", indent, n.Name, n.Kind)
		debugAttrs(sb, n.Attrs, depth+1)
		for _, child := range n.Children {
			debugNode(sb, child, depth+1)
		}
		for _, slot := range n.Slots {
			debugNode(sb, slot, depth+1)
		}
	case *ast.Slot:
		if n.LetBinding != "" {
			fmt.Fprintf(sb, "%sslot <:%s> let=%q\n", indent, n.Name, n.LetBinding)
		} else {
			fmt.Fprintf(sb, "%sslot <:%s>\n", indent, n.Name)
		}
		debugAttrs(sb, n.Attrs, depth+1)
		for _, child := range n.Children {
			debugNode(sb, child, depth+1)
		}
	case *ast.Expression:
		fmt.Fprintf(sb, "%sexpression {%s}\n", indent, n.Code)
	case *ast.EEx:
		fmt.Fprintf(sb, "%seex %s %q\n", indent, n.Kind, n.Code)
	case *ast.EExBlock:
		fmt.Fprintf(sb, "%seex-block %s %q\n", indent, n.Keyword, n.Header)
		for _, clause := range n.Clauses {
			if clause.Arm != "" {
				fmt.Fprintf(sb, "%s  clause %s %q\n", indent, clause.Kind, clause.Arm)
			} else {
				fmt.Fprintf(sb, "%s  clause %s\n", indent, clause.Kind)
			}
			for _, child := range clause.Children {
				debugNode(sb, child, depth+2)
			}
		}
	case *ast.Comment:
		fmt.Fprintf(sb, "%scomment %q\n", indent, n.Content)
	}
}

func debugAttrs(sb *strings.Builder, attrs []ast.Attr, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, attr := range attrs {
		switch a := attr.(type) {
		case *ast.StaticAttr:
			fmt.Fprintf(sb, "%sattr %s=%q\n", indent, a.Name, a.Value)
		case *ast.DynamicAttr:
			fmt.Fprintf(sb, "%sattr %s={%s}\n", indent, a.Name, a.Expr)
		case *ast.SpreadAttr:
			fmt.Fprintf(sb, "%sattr {%s}\n", indent, a.Expr)
		case *ast.SpecialAttr:
			fmt.Fprintf(sb, "%sattr :%s={%s}\n", indent, a.Kind, a.Expr)
		}
	}
}
