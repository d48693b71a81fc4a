package parser

import (
	"strings"

	"github.com/walteh/safehx/pkg/ast"
	"github.com/walteh/safehx/pkg/position"
	"github.com/walteh/safehx/pkg/token"
)

// parseAttrs assembles the attribute list of one opening tag. The loop
// ends when the token stream leaves attribute position (TagEnd,
// TagSelfClose, EOF, or anything else the scanner emitted after an
// error).
func (p *Parser) parseAttrs() []ast.Attr {
	var attrs []ast.Attr
	for {
		switch p.current().Kind {
		case token.ExprOpen:
			expr, span := p.parseExprUnit()
			attrs = append(attrs, &ast.SpreadAttr{Expr: expr, Pos: span})
		case token.AttrName:
			attrs = append(attrs, p.parseAttr())
		default:
			return attrs
		}
	}
}

func (p *Parser) parseAttr() ast.Attr {
	name := p.advance()
	span := name.Span

	if p.current().Kind != token.AttrEquals {
		// bare name: boolean attribute with the literal value "true"
		return makeAttr(name.Value, "true", false, span)
	}
	p.advance()

	switch p.current().Kind {
	case token.AttrValue:
		value := p.advance()
		return makeAttr(name.Value, value.Value, false, position.NewSpan(span.Start, value.Span.End))
	case token.ExprOpen:
		expr, exprSpan := p.parseExprUnit()
		return makeAttr(name.Value, expr, true, position.NewSpan(span.Start, exprSpan.End))
	default:
		// the scanner reported the malformed value; keep the attribute
		// with an empty literal so the tree stays well formed
		return makeAttr(name.Value, "", false, span)
	}
}

// makeAttr classifies an attribute from its scanned name. Names keeping
// their leading ":" become Special attributes with the colon stripped;
// expression values make plain names Dynamic.
func makeAttr(name, value string, isExpr bool, span position.Span) ast.Attr {
	if strings.HasPrefix(name, ":") {
		return &ast.SpecialAttr{Kind: name[1:], Expr: value, Pos: span}
	}
	if isExpr {
		return &ast.DynamicAttr{Name: name, Expr: value, Pos: span}
	}
	return &ast.StaticAttr{Name: name, Value: value, Pos: span}
}
