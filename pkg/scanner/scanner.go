// Package scanner turns raw template text into a flat token stream.
//
// The scanner never aborts: every problem is recorded as a diagnostic and
// scanning resumes at the next character, so one pass reports every
// lexical error in the input. The returned stream always ends with
// exactly one EOF token.
package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/walteh/safehx/pkg/diagnostic"
	"github.com/walteh/safehx/pkg/position"
	"github.com/walteh/safehx/pkg/token"
)

// cursor is the scanning position. It is advanced one rune at a time by
// next(); nothing else moves it, which keeps the nested-depth and
// lookahead logic honest about where it is.
type cursor struct {
	offset int
	line   int
	column int
}

// Scanner holds the state of one scan pass. A Scanner is used for a
// single call and must not be shared.
type Scanner struct {
	src    string
	cur    cursor
	tokens []token.Token
	diags  diagnostic.Diagnostics
}

// Scan tokenizes src. The token stream is complete and EOF-terminated
// even when diagnostics are returned; callers treat a non-empty
// diagnostic list as failure.
func Scan(src string) ([]token.Token, diagnostic.Diagnostics) {
	s := &Scanner{
		src: src,
		cur: cursor{offset: 0, line: 1, column: 1},
	}
	s.run()
	return s.tokens, s.diags
}

func (s *Scanner) run() {
	for !s.eof() {
		switch {
		case s.hasPrefix("<%"):
			s.scanEEx()
		case s.hasPrefix("<!--"):
			s.scanComment()
		case s.hasPrefix("<"):
			s.scanTag()
		case s.hasPrefix("{"):
			s.scanExpression()
		default:
			s.scanText()
		}
	}
	s.emit(token.EOF, "", s.loc())
}

// --- cursor primitives ---

func (s *Scanner) eof() bool {
	return s.cur.offset >= len(s.src)
}

func (s *Scanner) loc() position.Location {
	return position.Location{Line: s.cur.line, Column: s.cur.column, Offset: s.cur.offset}
}

func (s *Scanner) peek() rune {
	if s.eof() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.cur.offset:])
	return r
}

func (s *Scanner) hasPrefix(p string) bool {
	return strings.HasPrefix(s.src[s.cur.offset:], p)
}

// next consumes one rune and returns it, keeping line and column in step.
func (s *Scanner) next() rune {
	r, size := utf8.DecodeRuneInString(s.src[s.cur.offset:])
	s.cur.offset += size
	if r == '\n' {
		s.cur.line++
		s.cur.column = 1
	} else {
		s.cur.column++
	}
	return r
}

func (s *Scanner) emit(kind token.Kind, value string, start position.Location) {
	s.tokens = append(s.tokens, token.Token{
		Kind:  kind,
		Value: value,
		Span:  position.NewSpan(start, s.loc()),
	})
}

func (s *Scanner) errorf(loc position.Location, format string, args ...any) {
	s.diags.Lexf(loc, format, args...)
}

func (s *Scanner) skipWhitespace() {
	for !s.eof() && unicode.IsSpace(s.peek()) {
		s.next()
	}
}

// --- text ---

// scanText consumes a literal run up to the next "<" or "{". Zero-length
// runs never produce a token.
func (s *Scanner) scanText() {
	start := s.loc()
	for !s.eof() {
		if c := s.peek(); c == '<' || c == '{' {
			break
		}
		s.next()
	}
	if s.cur.offset > start.Offset {
		s.emit(token.Text, s.src[start.Offset:s.cur.offset], start)
	}
}

// --- tags, components, slots ---

func isNameRune(r rune) bool {
	return r == '-' || r == '_' || r == '.' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

func isUpperFirst(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}

// scanName reads a tag or attribute name at the cursor. An empty result
// means the cursor was not at a name character.
func (s *Scanner) scanName() string {
	start := s.cur.offset
	for !s.eof() && isNameRune(s.peek()) {
		s.next()
	}
	return s.src[start:s.cur.offset]
}

func (s *Scanner) scanTag() {
	start := s.loc()
	s.next() // '<'

	if s.peek() == '/' {
		s.next()
		s.scanClosingTag(start)
		return
	}

	switch {
	case s.peek() == ':':
		s.next()
		name := s.scanName()
		if name == "" {
			s.errorf(start, "expected slot name after \"<:\"")
			return
		}
		s.emit(token.SlotOpen, name, start)
	case s.peek() == '.':
		s.next()
		name := s.scanName()
		if name == "" {
			s.errorf(start, "expected component name after \"<.\"")
			return
		}
		s.emit(token.ComponentOpen, "."+name, start)
	default:
		name := s.scanName()
		if name == "" {
			s.errorf(start, "unexpected character %q after \"<\"", s.peek())
			return
		}
		if isUpperFirst(name) {
			s.emit(token.ComponentOpen, name, start)
		} else {
			s.emit(token.TagOpen, name, start)
		}
	}

	s.scanAttributes()

	s.skipWhitespace()
	closeStart := s.loc()
	switch {
	case s.hasPrefix("/>"):
		s.next()
		s.next()
		s.emit(token.TagSelfClose, "/>", closeStart)
	case s.peek() == '>':
		s.next()
		s.emit(token.TagEnd, ">", closeStart)
	default:
		s.errorf(closeStart, "expected \">\" or \"/>\" to close tag")
	}
}

// scanClosingTag is entered with "</" already consumed.
func (s *Scanner) scanClosingTag(start position.Location) {
	var kind token.Kind
	var name string

	switch {
	case s.peek() == ':':
		s.next()
		kind, name = token.SlotClose, s.scanName()
	case s.peek() == '.':
		s.next()
		kind = token.ComponentClose
		if n := s.scanName(); n != "" {
			name = "." + n
		}
	default:
		name = s.scanName()
		if isUpperFirst(name) {
			kind = token.ComponentClose
		} else {
			kind = token.TagClose
		}
	}

	if name == "" || name == "." {
		s.errorf(start, "expected name in closing tag")
		return
	}

	s.skipWhitespace()
	if s.peek() != '>' {
		s.errorf(s.loc(), "expected \">\" in closing tag %q", name)
		s.emit(kind, name, start)
		return
	}
	s.next()
	s.emit(kind, name, start)
}

// --- attributes ---

func (s *Scanner) scanAttributes() {
	for {
		s.skipWhitespace()
		if s.eof() {
			return
		}
		c := s.peek()
		if c == '>' || c == '/' {
			return
		}

		if c == '{' {
			// spread attribute: the expression is the whole unit
			s.scanExpression()
			continue
		}

		start := s.loc()
		if c == ':' {
			s.next()
			name := s.scanName()
			if name == "" {
				s.errorf(start, "expected attribute name after \":\"")
				s.next()
				continue
			}
			s.emit(token.AttrName, ":"+name, start)
		} else {
			name := s.scanName()
			if name == "" {
				s.errorf(start, "unexpected character %q in tag", c)
				s.next()
				continue
			}
			s.emit(token.AttrName, name, start)
		}

		if s.peek() == '=' {
			eqStart := s.loc()
			s.next()
			s.emit(token.AttrEquals, "=", eqStart)
			s.scanAttrValue()
		}
	}
}

func (s *Scanner) scanAttrValue() {
	switch c := s.peek(); {
	case c == '{':
		s.scanExpression()
	case c == '"' || c == '\'':
		s.scanQuotedValue()
	default:
		start := s.loc()
		for !s.eof() {
			c := s.peek()
			if unicode.IsSpace(c) || c == '>' || c == '/' {
				break
			}
			s.next()
		}
		s.emit(token.AttrValue, s.src[start.Offset:s.cur.offset], start)
	}
}

// scanQuotedValue reads a quoted attribute value. An unterminated value
// is an error but does not abort the surrounding tag.
func (s *Scanner) scanQuotedValue() {
	start := s.loc()
	quote := s.next()
	contentStart := s.cur.offset
	for !s.eof() {
		if s.peek() == quote {
			value := s.src[contentStart:s.cur.offset]
			s.next()
			s.emit(token.AttrValue, value, start)
			return
		}
		s.next()
	}
	s.errorf(start, "unterminated quoted attribute value")
}

// --- expressions ---

// scanExpression reads a "{...}" unit. Brace depth starts at 1 and a
// depth-zero "}" ends the expression; string literals inside the
// expression are skipped verbatim so their braces do not affect depth.
func (s *Scanner) scanExpression() {
	start := s.loc()
	s.next() // '{'
	s.emit(token.ExprOpen, "{", start)

	contentStart := s.loc()
	depth := 1
	for !s.eof() {
		switch c := s.peek(); c {
		case '"', '\'':
			s.skipStringLiteral()
		case '{':
			depth++
			s.next()
		case '}':
			depth--
			if depth == 0 {
				if s.cur.offset > contentStart.Offset {
					s.emit(token.ExprContent, s.src[contentStart.Offset:s.cur.offset], contentStart)
				}
				closeStart := s.loc()
				s.next()
				s.emit(token.ExprClose, "}", closeStart)
				return
			}
			s.next()
		default:
			s.next()
		}
	}
	s.errorf(start, "unterminated expression: missing closing \"}\"")
}

// skipStringLiteral consumes a quoted region inside an expression,
// honoring a single backslash-escape lookahead.
func (s *Scanner) skipStringLiteral() {
	quote := s.next()
	for !s.eof() {
		c := s.next()
		if c == '\\' {
			if !s.eof() {
				s.next()
			}
			continue
		}
		if c == quote {
			return
		}
	}
}

// --- EEx tags ---

func (s *Scanner) scanEEx() {
	start := s.loc()
	s.next() // '<'
	s.next() // '%'

	kind, open := token.EExOpen, "<%"
	switch s.peek() {
	case '=':
		s.next()
		kind, open = token.EExOutput, "<%="
	case '#':
		s.next()
		kind, open = token.EExComment, "<%#"
	}
	s.emit(kind, open, start)

	idx := strings.Index(s.src[s.cur.offset:], "%>")
	if idx < 0 {
		for !s.eof() {
			s.next()
		}
		s.errorf(start, "unterminated EEx tag: missing \"%%>\"")
		return
	}

	contentStart := s.loc()
	end := s.cur.offset + idx
	for s.cur.offset < end {
		s.next()
	}
	if content := strings.TrimSpace(s.src[contentStart.Offset:end]); content != "" {
		s.emit(token.EExContent, content, contentStart)
	}

	closeStart := s.loc()
	s.next()
	s.next()
	s.emit(token.EExClose, "%>", closeStart)
}

// --- comments ---

func (s *Scanner) scanComment() {
	start := s.loc()
	for range "<!--" {
		s.next()
	}
	s.emit(token.CommentOpen, "<!--", start)

	idx := strings.Index(s.src[s.cur.offset:], "-->")
	if idx < 0 {
		for !s.eof() {
			s.next()
		}
		s.errorf(start, "unterminated comment: missing \"-->\"")
		return
	}

	contentStart := s.loc()
	end := s.cur.offset + idx
	for s.cur.offset < end {
		s.next()
	}
	if content := s.src[contentStart.Offset:end]; content != "" {
		s.emit(token.CommentContent, content, contentStart)
	}

	closeStart := s.loc()
	for range "-->" {
		s.next()
	}
	s.emit(token.CommentClose, "-->", closeStart)
}
