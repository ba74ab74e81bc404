// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"unicode/utf8"

	"github.com/matthewdargan/rstdoc/ast"
	"github.com/matthewdargan/rstdoc/scan"
)

// runes returns the number of runes in s.
func runes(s string) int {
	return utf8.RuneCountInString(s)
}

func (p *Parser) shiftDocument(tok scan.Token) (ast.Node, bool) {
	if p.tokens.len() > 0 {
		p.fatalf(tok, "Unexpected end of file.")
	}
	return ast.NewDocument(tok), true
}

func (p *Parser) shiftScanError(tok scan.Token) (ast.Node, bool) {
	p.fatalf(tok, "%s", tok.Text)
	return nil, true
}

// shiftBackslash escapes the next token. Escaped whitespace is removed,
// everything else becomes text. Only the first character of longer tokens
// is escaped.
func (p *Parser) shiftBackslash(tok scan.Token) (ast.Node, bool) {
	next := p.tokens.at(0)
	if next == nil {
		return ast.NewText(tok), true
	}
	switch next.Type {
	case scan.Newline, scan.Whitespace:
		p.tokens.skip(1)
	case scan.Backslash:
		next.Type = scan.TextLine
		next.Escaped = true
	case scan.SpecialChars, scan.TextLine:
		r, size := utf8.DecodeRuneInString(next.Text)
		if size == len(next.Text) {
			next.Type = scan.TextLine
			next.Escaped = true
			break
		}
		esc := scan.Token{Type: scan.TextLine, Line: next.Line, Pos: next.Pos, Text: string(r), Escaped: true}
		next.Text = next.Text[size:]
		next.Pos++
		p.tokens.backup(esc)
	default:
		return ast.NewText(tok), true
	}
	return nil, true
}

// shiftTitle detects adornment lines of section titles. An adornment
// followed by a blank line only is a title if it underlines text.
func (p *Parser) shiftTitle(tok scan.Token) (ast.Node, bool) {
	if tok.Pos != 1 || !p.tokens.is(0, scan.Newline, "") {
		return nil, false
	}
	next := p.tokens.peek(1)
	if (next.Type == scan.Newline ||
		(next.Type == scan.Whitespace && p.tokens.is(2, scan.Newline, "")) ||
		runes(next.Text) > runes(tok.Text)) &&
		p.stack.topType() != ast.NodeText {
		return nil, false
	}
	return ast.NewTitle(tok), true
}

func (p *Parser) shiftTransition(tok scan.Token) (ast.Node, bool) {
	if tok.Pos != 1 || runes(tok.Text) < 4 ||
		!p.tokens.is(0, scan.Newline, "") || !p.tokens.is(1, scan.Newline, "") {
		return nil, false
	}
	return ast.NewTransition(tok), true
}

// shiftLineBlock reads the lines of a line block. Lines indented further
// than their bar continue the previous line.
func (p *Parser) shiftLineBlock(tok scan.Token) (ast.Node, bool) {
	if tok.Pos != p.indentation+1 || tok.Text != "|" || !p.tokens.is(0, scan.Whitespace, "") {
		return nil, false
	}
	block := ast.NewLineBlock(tok)
	block.Indentation = p.indentation
	for bar, ok := tok, true; ok; bar, ok = p.lineBlockStart() {
		var literals []ast.Node
		ws := p.tokens.next()
		if ws.Type == scan.Whitespace && len(ws.Text) > 1 {
			ws.Text = ws.Text[1:]
			ws.Pos++
			literals = append(literals, ast.NewLiteral(ws))
		}
		for ws.Type != scan.Newline {
			for _, t := range p.tokens.line() {
				literals = append(literals, ast.NewLiteral(t))
			}
			next := p.tokens.peek(0)
			if next.Type != scan.Whitespace || next.Pos-1+len(next.Text) < p.indentation+2 {
				break
			}
			p.tokens.skip(1)
		}
		block.Append(ast.NewLineBlockLine(bar, literals))
	}
	p.indentation = 0
	return block, true
}

// lineBlockStart consumes the indentation and the bar of the next line of
// a line block.
func (p *Parser) lineBlockStart() (scan.Token, bool) {
	i := 0
	if p.indentation > 0 {
		ws := p.tokens.peek(0)
		if ws.Type != scan.Whitespace || len(ws.Text) != p.indentation {
			return scan.Token{}, false
		}
		i = 1
	}
	if !p.tokens.is(i, scan.SpecialChars, "|") {
		return scan.Token{}, false
	}
	if next := p.tokens.peek(i + 1); next.Type != scan.Whitespace && next.Type != scan.Newline {
		return scan.Token{}, false
	}
	p.tokens.skip(i)
	return p.tokens.next(), true
}

func (p *Parser) shiftText(tok scan.Token) (ast.Node, bool) {
	return ast.NewText(tok), true
}

func (p *Parser) shiftWhitespaceAsText(tok scan.Token) (ast.Node, bool) {
	return ast.NewText(tok), true
}

func (p *Parser) shiftSpecialCharsAsText(tok scan.Token) (ast.Node, bool) {
	return ast.NewText(tok), true
}

// shiftParagraph ends a paragraph at a blank line. Further blank lines
// are skipped, except for the last one.
func (p *Parser) shiftParagraph(tok scan.Token) (ast.Node, bool) {
	if !p.blankAhead(0) {
		return nil, false
	}
	for p.blankAhead(1) {
		p.tokens.skip(1)
	}
	return ast.NewParagraph(tok), true
}

// blankAhead reports whether the i-th next token ends a blank line.
func (p *Parser) blankAhead(i int) bool {
	t := p.tokens.peek(i)
	return t.Type == scan.Newline ||
		(t.Type == scan.Whitespace && p.tokens.is(i+1, scan.Newline, ""))
}

// updateIndentation tracks the indentation of the line following a newline.
func (p *Parser) updateIndentation(tok scan.Token) (ast.Node, bool) {
	if p.stack.topType() == ast.NodeTitle {
		return nil, false
	}
	indent := 0
	var ws *scan.Token
	switch next := p.tokens.peek(0); {
	case next.Type == scan.Whitespace:
		t := p.tokens.next()
		if p.tokens.is(0, scan.Newline, "") {
			return nil, false
		}
		ws = &t
		indent = t.Pos - 1 + len(t.Text)
	case next.Pos > 1:
		indent = next.Pos - 1
	}
	top := p.stack.topType()
	if top == ast.NodeText && p.listMarkerAhead() {
		// The next list item follows without a blank line.
		tracer().Debugf("   -> dense list item at indentation %d", indent)
		p.postIndentation = indent
		return ast.NewParagraph(tok), true
	}
	if p.indentation == 0 && indent > 0 && top == ast.NodeText {
		if ws != nil {
			p.tokens.backup(*ws)
		}
		return p.shiftDefinitionList(tok)
	}
	if p.indentation != indent && top != -1 {
		switch top {
		case ast.NodeParagraph, ast.NodeBlockquote, ast.NodeDirective,
			ast.NodeBulletList, ast.NodeEnumeratedList, ast.NodeLineBlock, ast.NodeLiteralBlock:
		default:
			p.fatalf(tok, "Unexpected indentation change from level %d to %d.", p.indentation, indent)
		}
	}
	p.indentation = indent
	p.postIndentation = -1
	tracer().Debugf("   => indentation %d", indent)
	return nil, false
}

// shiftAsWhitespace turns a newline inside a paragraph into a space.
func (p *Parser) shiftAsWhitespace(tok scan.Token) (ast.Node, bool) {
	if t, ok := p.stack.top().(*ast.Text); ok {
		t.Tok.Text += " "
	}
	return nil, true
}

// shiftBlockquoteAnnotation detects the attribution of a block quote.
func (p *Parser) shiftBlockquoteAnnotation(tok scan.Token) (ast.Node, bool) {
	switch tok.Text {
	case "--", "---", "—":
	default:
		return nil, false
	}
	q, ok := p.stack.top().(*ast.Blockquote)
	if !ok || q.Closed || p.indentation == 0 {
		return nil, false
	}
	if p.tokens.is(0, scan.Whitespace, "") {
		p.tokens.skip(1)
	}
	return ast.NewAnnotation(tok), true
}
