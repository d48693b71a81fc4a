package render

import (
	"encoding/json"

	"github.com/walteh/safehx/pkg/ast"
)

// JSON renders doc as an indented JSON document. Every node carries a
// "type" discriminator so consumers can walk the tree without knowing
// the Go types.
func JSON(doc *ast.Document) string {
	out, err := json.MarshalIndent(jsonNode(doc), "", "  ")
	if err != nil {
		// the tree contains only strings, bools and nested maps, so
		// marshaling cannot fail on a parser-produced document
		return "{}"
	}
	return string(out)
}

func jsonNode(n ast.Node) map[string]any {
	switch n := n.(type) {
	case *ast.Document:
		return map[string]any{
			"type":     "document",
			"children": jsonChildren(n.Children),
		}
	case *ast.Text:
		return map[string]any{
			"type":    "text",
			"content": n.Content,
		}
	case *ast.Element:
		return map[string]any{
			"type":        "element",
			"tag":         n.Tag,
			"attrs":       jsonAttrs(n.Attrs),
			"selfClosing": n.SelfClosing,
			"children":    jsonChildren(n.Children),
		}
	case *ast.Component:
		slots := make([]map[string]any, 0, len(n.Slots))
		for _, slot := range n.Slots {
			slots = append(slots, jsonNode(slot))
		}
		return map[string]any{
			"type":     "component",
			"kind":     n.Kind.String(),
			"name":     n.Name,
			"attrs":    jsonAttrs(n.Attrs),
			"children": jsonChildren(n.Children),
			"slots":    slots,
		}
	case *ast.Slot:
		out := map[string]any{
			"type":     "slot",
			"name":     n.Name,
			"attrs":    jsonAttrs(n.Attrs),
			"children": jsonChildren(n.Children),
		}
		if n.LetBinding != "" {
			out["let"] = n.LetBinding
		}
		return out
	case *ast.Expression:
		return map[string]any{
			"type": "expression",
			"code": n.Code,
		}
	case *ast.EEx:
		return map[string]any{
			"type": "eex",
			"kind": n.Kind.String(),
			"code": n.Code,
		}
	case *ast.EExBlock:
		clauses := make([]map[string]any, 0, len(n.Clauses))
		for _, clause := range n.Clauses {
			c := map[string]any{
				"kind":     string(clause.Kind),
				"children": jsonChildren(clause.Children),
			}
			if clause.Arm != "" {
				c["arm"] = clause.Arm
			}
			clauses = append(clauses, c)
		}
		return map[string]any{
			"type":    "eex-block",
			"keyword": n.Keyword,
			"header":  n.Header,
			"clauses": clauses,
		}
	case *ast.Comment:
		return map[string]any{
			"type":    "comment",
			"content": n.Content,
		}
	}
	return map[string]any{"type": "unknown"}
}

func jsonChildren(children []ast.Node) []map[string]any {
	out := make([]map[string]any, 0, len(children))
	for _, child := range children {
		out = append(out, jsonNode(child))
	}
	return out
}

func jsonAttrs(attrs []ast.Attr) []map[string]any {
	out := make([]map[string]any, 0, len(attrs))
	for _, attr := range attrs {
		switch a := attr.(type) {
		case *ast.StaticAttr:
			out = append(out, map[string]any{"type": "static", "name": a.Name, "value": a.Value})
		case *ast.DynamicAttr:
			out = append(out, map[string]any{"type": "dynamic", "name": a.Name, "expr": a.Expr})
		case *ast.SpreadAttr:
			out = append(out, map[string]any{"type": "spread", "expr": a.Expr})
		case *ast.SpecialAttr:
			out = append(out, map[string]any{"type": "special", "kind": a.Kind, "expr": a.Expr})
		}
	}
	return out
}
