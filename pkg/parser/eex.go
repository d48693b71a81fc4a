package parser

import (
	"strings"

	"github.com/walteh/safehx/pkg/ast"
	"github.com/walteh/safehx/pkg/position"
	"github.com/walteh/safehx/pkg/token"
)

// blockKeywords are the EEx keywords that open a multi-clause block.
var blockKeywords = []string{"if", "case", "cond", "for", "unless"}

// blockKeyword returns the control-flow keyword when code opens a block,
// or "" for a plain EEx tag.
func blockKeyword(code string) string {
	trimmed := strings.TrimSpace(code)
	for _, kw := range blockKeywords {
		if strings.HasPrefix(trimmed, kw+" ") {
			return kw
		}
	}
	return ""
}

// blockHeader strips the keyword and a trailing literal "do" from the
// block's source, leaving the header expression.
func blockHeader(code, keyword string) string {
	header := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(code), keyword))
	if header == "do" {
		return ""
	}
	if strings.HasSuffix(header, " do") {
		header = strings.TrimSpace(header[:len(header)-len(" do")])
	}
	return header
}

// parseEEx parses one EEx tag, promoting Exec/Output tags whose code
// starts a control-flow keyword into a full EExBlock.
func (p *Parser) parseEEx() ast.Node {
	open := p.advance()

	kind := ast.EExExec
	switch open.Kind {
	case token.EExOutput:
		kind = ast.EExOutput
	case token.EExComment:
		kind = ast.EExComment
	}

	code := ""
	end := open.Span.End
	if p.current().Kind == token.EExContent {
		code = p.advance().Value
	}
	if p.current().Kind == token.EExClose {
		end = p.advance().Span.End
	}

	if kind != ast.EExComment {
		if kw := blockKeyword(code); kw != "" {
			return p.parseEExBlock(open, kw, code)
		}
	}

	return &ast.EEx{Kind: kind, Code: code, Pos: position.NewSpan(open.Span.Start, end)}
}

// parseEExBlock parses the clauses of a control-flow block. The header
// tag is already consumed; the body runs until an EEx tag whose trimmed
// content is exactly "end", exactly "else", or contains "->" (a case
// arm). "end" terminates the block; the others open a new clause.
func (p *Parser) parseEExBlock(open token.Token, keyword, code string) ast.Node {
	block := &ast.EExBlock{
		Keyword: keyword,
		Header:  blockHeader(code, keyword),
	}
	clause := &ast.EExClause{Kind: ast.ClauseDo, Pos: position.NewSpan(open.Span.Start, open.Span.End)}
	end := open.Span.End

	for {
		cur := p.current()
		if cur.Kind == token.EOF {
			p.errorf(open.Span.Start, "unterminated %s block: missing end tag", keyword)
			block.Clauses = append(block.Clauses, clause)
			break
		}
		if cur.ClosesContext() {
			// the enclosing tag closed before the block did; leave the
			// close for the enclosing context
			p.errorf(open.Span.Start, "unterminated %s block: missing end tag", keyword)
			block.Clauses = append(block.Clauses, clause)
			break
		}

		if boundary, content := p.blockBoundary(); boundary != "" {
			block.Clauses = append(block.Clauses, clause)
			tagEnd := p.consumeEExTag()
			end = tagEnd
			switch boundary {
			case "end":
				block.Clauses = append(block.Clauses, &ast.EExClause{Kind: ast.ClauseEnd})
			case "else":
				clause = &ast.EExClause{Kind: ast.ClauseElse}
				continue
			case "arm":
				clause = &ast.EExClause{Kind: ast.ClauseArm, Arm: content}
				continue
			}
			break
		}

		if node := p.parseNode(); node != nil {
			clause.Children = append(clause.Children, node)
		}
	}

	block.Pos = position.NewSpan(open.Span.Start, end)
	return block
}

// blockBoundary looks one token ahead of an EEx open to decide whether
// the tag closes or continues the current block. It consumes nothing.
func (p *Parser) blockBoundary() (string, string) {
	cur := p.current()
	if !cur.IsEExOpen() || cur.Kind == token.EExComment {
		return "", ""
	}
	next := p.peek(1)
	if next.Kind != token.EExContent {
		return "", ""
	}
	switch content := next.Value; {
	case content == "end":
		return "end", content
	case content == "else":
		return "else", content
	case strings.Contains(content, "->"):
		return "arm", content
	}
	return "", ""
}

// consumeEExTag consumes one full open/content/close EEx tag and returns
// the end location.
func (p *Parser) consumeEExTag() position.Location {
	open := p.advance()
	end := open.Span.End
	if p.current().Kind == token.EExContent {
		end = p.advance().Span.End
	}
	if p.current().Kind == token.EExClose {
		end = p.advance().Span.End
	}
	return end
}
