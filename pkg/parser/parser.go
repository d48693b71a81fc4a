// Package parser builds a document tree from the scanner's token stream.
//
// Parsing is error tolerant: structural problems are recorded as
// diagnostics and the parser keeps going, always making forward
// progress. A non-empty diagnostic list at the end of the pass turns the
// whole parse into a failure and the partial tree is discarded.
package parser

import (
	"github.com/walteh/safehx/pkg/ast"
	"github.com/walteh/safehx/pkg/diagnostic"
	"github.com/walteh/safehx/pkg/position"
	"github.com/walteh/safehx/pkg/scanner"
	"github.com/walteh/safehx/pkg/token"
)

// Parser holds the state of one parse pass over a token stream.
type Parser struct {
	tokens []token.Token
	pos    int
	diags  diagnostic.Diagnostics
}

// ParseString scans and parses src in one call. Lex and syntax
// diagnostics are merged, in that order.
func ParseString(src string) (*ast.Document, diagnostic.Diagnostics) {
	tokens, lexDiags := scanner.Scan(src)

	p := &Parser{tokens: tokens}
	doc := p.parseDocument()

	diags := append(append(diagnostic.Diagnostics{}, lexDiags...), p.diags...)
	if diags.HasErrors() {
		return nil, diags
	}
	return doc, nil
}

// Parse builds a document from an already scanned token stream.
func Parse(tokens []token.Token) (*ast.Document, diagnostic.Diagnostics) {
	p := &Parser{tokens: tokens}
	doc := p.parseDocument()
	if p.diags.HasErrors() {
		return nil, p.diags
	}
	return doc, nil
}

// current returns the token at the cursor, clamped to EOF so overrun
// never panics.
func (p *Parser) current() token.Token {
	return p.at(p.pos)
}

// peek looks n tokens ahead without consuming.
func (p *Parser) peek(n int) token.Token {
	return p.at(p.pos + n)
}

func (p *Parser) at(idx int) token.Token {
	if idx >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) errorf(loc position.Location, format string, args ...any) {
	p.diags.Syntaxf(loc, format, args...)
}

func (p *Parser) parseDocument() *ast.Document {
	doc := &ast.Document{}
	for {
		cur := p.current()
		if cur.Kind == token.EOF {
			break
		}
		if cur.ClosesContext() {
			p.errorf(cur.Span.Start, "unexpected closing tag %q", cur.Value)
			p.advance()
			continue
		}
		if node := p.parseNode(); node != nil {
			doc.Children = append(doc.Children, node)
		}
	}
	if len(doc.Children) > 0 {
		doc.Pos = position.NewSpan(doc.Children[0].Span().Start, doc.Children[len(doc.Children)-1].Span().End)
	}
	return doc
}

// parseChildren collects nodes until EOF or a closing-tag token. Any
// close stops the loop and is left for the caller, which checks the
// name against its own context and reports a mismatch. Slot bodies use
// the same loop and close on their own slot tag.
func (p *Parser) parseChildren() []ast.Node {
	var children []ast.Node
	for {
		cur := p.current()
		if cur.Kind == token.EOF {
			break
		}
		if cur.ClosesContext() {
			break
		}
		if node := p.parseNode(); node != nil {
			children = append(children, node)
		}
	}
	return children
}

// parseNode parses exactly one node at the cursor. Unrecognized tokens
// are recorded and skipped so the parser always makes progress.
func (p *Parser) parseNode() ast.Node {
	cur := p.current()
	switch cur.Kind {
	case token.Text:
		p.advance()
		return &ast.Text{Content: cur.Value, Pos: cur.Span}
	case token.TagOpen:
		return p.parseElement()
	case token.ComponentOpen:
		return p.parseComponent()
	case token.SlotOpen:
		return p.parseSlot()
	case token.ExprOpen:
		code, span := p.parseExprUnit()
		return &ast.Expression{Code: code, Pos: span}
	case token.EExOpen, token.EExOutput, token.EExComment:
		return p.parseEEx()
	case token.CommentOpen:
		return p.parseComment()
	default:
		p.errorf(cur.Span.Start, "unexpected token %s", cur.Kind)
		p.advance()
		return nil
	}
}

// parseExprUnit consumes an ExprOpen, its optional content and the
// ExprClose, returning the raw code (empty when absent).
func (p *Parser) parseExprUnit() (string, position.Span) {
	open := p.advance()
	code := ""
	end := open.Span.End
	if p.current().Kind == token.ExprContent {
		code = p.advance().Value
	}
	if p.current().Kind == token.ExprClose {
		end = p.advance().Span.End
	}
	return code, position.NewSpan(open.Span.Start, end)
}

func (p *Parser) parseElement() ast.Node {
	open := p.advance()
	el := &ast.Element{Tag: open.Value}
	el.Attrs = p.parseAttrs()
	end := open.Span.End

	switch p.current().Kind {
	case token.TagSelfClose:
		el.SelfClosing = true
		end = p.advance().Span.End
	case token.TagEnd:
		end = p.advance().Span.End
		if ast.IsVoid(el.Tag) {
			// void tags are childless even without a self-close marker
			el.SelfClosing = true
			break
		}
		el.Children = p.parseChildren()
		end = p.expectClose(el.Tag, open.Span.Start, end)
	default:
		// the scanner already reported the missing ">"; recover as a
		// childless element
	}

	el.Pos = position.NewSpan(open.Span.Start, end)
	return el
}

// expectClose consumes the closing tag of the named context. A close
// with the wrong name is recorded but still consumed as the close; no
// forward search for the real match is attempted.
func (p *Parser) expectClose(name string, openLoc position.Location, end position.Location) position.Location {
	cur := p.current()
	if !cur.ClosesContext() {
		p.errorf(openLoc, "missing closing tag for %q", name)
		return end
	}
	if cur.Value != name {
		p.errorf(cur.Span.Start, "mismatched closing tag: expected %q, found %q", name, cur.Value)
	}
	return p.advance().Span.End
}

func (p *Parser) parseComponent() ast.Node {
	open := p.advance()
	comp := &ast.Component{
		Kind: ast.ClassifyComponent(open.Value),
		Name: open.Value,
	}
	comp.Attrs = p.parseAttrs()
	end := open.Span.End

	switch p.current().Kind {
	case token.TagSelfClose:
		end = p.advance().Span.End
	case token.TagEnd:
		end = p.advance().Span.End
		end = p.parseComponentBody(comp, open.Span.Start, end)
	default:
		// unclosed opening tag, already reported by the scanner
	}

	comp.Pos = position.NewSpan(open.Span.Start, end)
	return comp
}

// parseComponentBody separates bare children from slot subtrees until
// the component's closing tag.
func (p *Parser) parseComponentBody(comp *ast.Component, openLoc position.Location, end position.Location) position.Location {
	for {
		cur := p.current()
		if cur.Kind == token.EOF {
			p.errorf(openLoc, "missing closing tag for %q", comp.Name)
			return end
		}
		if cur.ClosesContext() {
			if cur.Value != comp.Name {
				p.errorf(cur.Span.Start, "mismatched closing tag: expected %q, found %q", comp.Name, cur.Value)
			}
			return p.advance().Span.End
		}
		if cur.Kind == token.SlotOpen {
			if slot, ok := p.parseSlot().(*ast.Slot); ok {
				comp.Slots = append(comp.Slots, slot)
			}
			continue
		}
		if node := p.parseNode(); node != nil {
			comp.Children = append(comp.Children, node)
		}
	}
}

func (p *Parser) parseSlot() ast.Node {
	open := p.advance()
	slot := &ast.Slot{Name: open.Value}
	slot.Attrs = p.parseAttrs()
	end := open.Span.End

	// a :let special attribute is hoisted off the attribute list
	kept := slot.Attrs[:0]
	for _, attr := range slot.Attrs {
		if special, ok := attr.(*ast.SpecialAttr); ok && special.Kind == "let" {
			slot.LetBinding = special.Expr
			continue
		}
		kept = append(kept, attr)
	}
	slot.Attrs = kept

	switch p.current().Kind {
	case token.TagSelfClose:
		end = p.advance().Span.End
	case token.TagEnd:
		end = p.advance().Span.End
		slot.Children = p.parseChildren()
		cur := p.current()
		if !cur.ClosesContext() {
			p.errorf(open.Span.Start, "missing closing tag for slot %q", slot.Name)
			break
		}
		if !(cur.Kind == token.SlotClose && cur.Value == slot.Name) {
			p.errorf(cur.Span.Start, "mismatched closing tag: expected slot %q, found %q", slot.Name, cur.Value)
		}
		end = p.advance().Span.End
	default:
		// unclosed opening tag, already reported by the scanner
	}

	slot.Pos = position.NewSpan(open.Span.Start, end)
	return slot
}

func (p *Parser) parseComment() ast.Node {
	open := p.advance()
	content := ""
	end := open.Span.End
	if p.current().Kind == token.CommentContent {
		content = p.advance().Value
	}
	if p.current().Kind == token.CommentClose {
		end = p.advance().Span.End
	}
	return &ast.Comment{Content: content, Pos: position.NewSpan(open.Span.Start, end)}
}
