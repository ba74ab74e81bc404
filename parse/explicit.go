// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"strings"

	"github.com/matthewdargan/rstdoc/ast"
	"github.com/matthewdargan/rstdoc/scan"
)

// literals wraps toks into Literal nodes.
func literals(toks []scan.Token) []ast.Node {
	nodes := make([]ast.Node, 0, len(toks))
	for _, t := range toks {
		nodes = append(nodes, ast.NewLiteral(t))
	}
	return nodes
}

// trimNewlines drops trailing newlines from toks.
func trimNewlines(toks []scan.Token) []scan.Token {
	for len(toks) > 0 && toks[len(toks)-1].Type == scan.Newline {
		toks = toks[:len(toks)-1]
	}
	return toks
}

// shiftLiteralBlock reads the indented or quoted block following "::" at
// the end of a paragraph. The paragraph is ended first; "text::" keeps
// one colon.
func (p *Parser) shiftLiteralBlock(tok scan.Token) (ast.Node, bool) {
	if tok.Text != "::" || !p.tokens.is(0, scan.Newline, "") || !p.tokens.is(1, scan.Newline, "") {
		return nil, false
	}
	top := p.stack.top()
	if top != nil && isInline(top) {
		if tok.Pos > 1 && top.Token().Type != scan.Whitespace {
			p.tokens.backup(scan.Token{Type: scan.SpecialChars, Text: "::", Line: tok.Line})
			colon := tok
			colon.Type = scan.TextLine
			colon.Text = ":"
			colon.Escaped = true
			return ast.NewText(colon), true
		}
		p.tokens.backup(tok)
		return ast.NewParagraph(tok), true
	}
	blank := 0
	for p.tokens.is(blank, scan.Newline, "") {
		blank++
	}
	base := p.tokens.peek(blank)
	switch base.Type {
	case scan.Whitespace:
	case scan.SpecialChars:
		base.Text = string(firstRune(base.Text))
	default:
		return nil, false
	}
	p.tokens.skip(blank)
	var toks []scan.Token
	var nl scan.Token
	for {
		t := p.tokens.peek(0)
		if t.Type == scan.Newline {
			toks = append(toks, p.tokens.next())
			continue
		}
		if t.Type != base.Type || !strings.HasPrefix(t.Text, base.Text) {
			break
		}
		first := p.tokens.next()
		if base.Type == scan.Whitespace {
			first.Text = first.Text[len(base.Text):]
			first.Pos += len(base.Text)
		}
		if first.Text != "" {
			toks = append(toks, first)
		}
		line := p.tokens.line()
		toks = append(toks, line...)
		if len(line) > 0 {
			nl = line[len(line)-1]
		}
	}
	if nl.Type == scan.Newline {
		p.tokens.backup(nl)
	}
	block := ast.NewLiteralBlock(tok, literals(trimNewlines(toks)))
	block.Indentation = p.indentation
	if base.Type == scan.Whitespace {
		block.Indentation = base.Pos - 1 + len(base.Text)
	}
	return block, true
}

// readUntil consumes tokens up to the first one for which until holds
// or EOF. Backslashes escape the token after them.
func (p *Parser) readUntil(until func(scan.Token) bool) []scan.Token {
	var toks []scan.Token
	for p.tokens.len() > 0 {
		if p.tokens.is(0, scan.Backslash, "") {
			p.shiftBackslash(p.tokens.next())
			continue
		}
		t := p.tokens.peek(0)
		if t.Type == scan.EOF || until(t) {
			break
		}
		toks = append(toks, p.tokens.next())
	}
	return toks
}

func newlineOr(text string) func(scan.Token) bool {
	return func(t scan.Token) bool {
		return t.Type == scan.Newline || (t.Type == scan.SpecialChars && t.Text == text)
	}
}

// readIndentedLines reads the rest of the current line and the indented
// lines after it. The lines are shifted so the block starts at column 1.
// In strict mode all lines have to share the indentation of the first
// indented line.
func (p *Parser) readIndentedLines(strict bool) []scan.Token {
	var toks []scan.Token
	var nl scan.Token
	if p.tokens.peek(0).Pos > p.indentation+1 {
		first := p.tokens.line()
		for len(first) > 0 && first[0].Type == scan.Whitespace {
			first = first[1:]
		}
		if len(first) > 0 {
			shift := first[0].Pos - 1
			for _, t := range first {
				t.Pos -= shift
				toks = append(toks, t)
			}
			nl = toks[len(toks)-1]
		}
	}
	base := p.tokens.peek(0)
	if base.Type == scan.Whitespace {
		shift := base.Pos - 1 + len(base.Text)
		for {
			t := p.tokens.peek(0)
			if t.Type == scan.Newline {
				nl = p.tokens.next()
				toks = append(toks, nl)
				continue
			}
			if t.Type != scan.Whitespace || t.Pos != base.Pos || !strings.HasPrefix(t.Text, base.Text) {
				break
			}
			ws := p.tokens.next()
			if strict && ws.Text != base.Text {
				p.reportf(Error, ws, "Indentation mismatch.")
			}
			if len(ws.Text) > len(base.Text) {
				ws.Text = ws.Text[len(base.Text):]
				ws.Pos = 1
				toks = append(toks, ws)
			}
			for _, t := range p.tokens.line() {
				t.Pos -= shift
				toks = append(toks, t)
				nl = t
			}
		}
	}
	if nl.Type == scan.Newline {
		p.tokens.backup(nl)
	}
	return toks
}

// shiftDirective reads the parameters and options of a directive.
func (p *Parser) shiftDirective(d *ast.Directive) {
	params := p.readUntil(func(t scan.Token) bool { return t.Type == scan.Newline })
	d.Parameters = strings.TrimSpace(ast.JoinTokens(params))
	p.tokens.skip(1)
	for p.tokens.is(0, scan.Whitespace, "") && p.tokens.is(1, scan.SpecialChars, ":") {
		p.tokens.skip(2)
		name := p.readUntil(newlineOr(":"))
		if p.tokens.is(0, scan.SpecialChars, ":") {
			p.tokens.skip(1)
		}
		value := p.readUntil(func(t scan.Token) bool { return t.Type == scan.Newline })
		p.tokens.skip(1)
		d.Options[strings.TrimSpace(ast.JoinTokens(name))] = strings.TrimSpace(ast.JoinTokens(value))
	}
}

// isIdentifier reports whether t may be part of a directive name.
func isIdentifier(t scan.Token) bool {
	return t.Type == scan.TextLine || (t.Type == scan.SpecialChars && startsWithAny(t.Text, "-_."))
}

// shiftComment handles explicit markup blocks starting with "..":
// directives, substitution definitions, footnotes, hyperlink targets and
// comments.
func (p *Parser) shiftComment(tok scan.Token) (ast.Node, bool) {
	if tok.Text != ".." || tok.Pos > 1 {
		return nil, false
	}
	if t := p.tokens.peek(0); t.Type != scan.Whitespace && t.Type != scan.Newline {
		return nil, false
	}
	var subst *ast.Substitution
	var node ast.Node
	if p.tokens.next().Type == scan.Newline {
		node = p.comment(tok, nil)
	}
	for node == nil {
		t := p.tokens.peek(0)
		switch {
		case t.Type == scan.TextLine:
			var ident []scan.Token
			for isIdentifier(p.tokens.peek(0)) {
				ident = append(ident, p.tokens.next())
			}
			if p.tokens.is(0, scan.SpecialChars, "::") {
				p.tokens.skip(1)
				d := ast.NewDirective(tok, strings.ToLower(strings.TrimSpace(ast.JoinTokens(ident))))
				p.shiftDirective(d)
				node = d
				break
			}
			node = p.comment(tok, ident)
		case t.Type == scan.SpecialChars && t.Text == "|" && subst == nil:
			name := append([]scan.Token{p.tokens.next()}, p.readUntil(newlineOr("|"))...)
			if !p.tokens.is(0, scan.SpecialChars, "|") {
				node = p.comment(tok, name)
				break
			}
			p.tokens.skip(1)
			subst = ast.NewSubstitution(tok, name[1:])
			if p.tokens.is(0, scan.Whitespace, "") {
				p.tokens.skip(1)
			}
		case t.Type == scan.SpecialChars && t.Text == "[":
			name := append([]scan.Token{p.tokens.next()}, p.readUntil(newlineOr("]"))...)
			if !p.tokens.is(0, scan.SpecialChars, "]") {
				node = p.comment(tok, name)
				break
			}
			p.tokens.skip(1)
			f := ast.NewFootnote(tok, name[1:])
			f.Append(p.reenter(p.readIndentedLines(true)).Children()...)
			return f, true
		case t.Type == scan.SpecialChars && t.Text == "_":
			name := append([]scan.Token{p.tokens.next()}, p.readUntil(newlineOr(":"))...)
			if !p.tokens.is(0, scan.SpecialChars, ":") {
				node = p.comment(tok, name)
				break
			}
			p.tokens.skip(1)
			p.skipSeparator()
			r := ast.NewNamedReference(tok, name[1:])
			r.Append(literals(trimNewlines(p.readIndentedLines(true)))...)
			return r, true
		case t.Type == scan.SpecialChars && t.Text == "__" && p.tokens.is(1, scan.SpecialChars, ":"):
			p.tokens.skip(2)
			p.skipSeparator()
			r := ast.NewAnonymousReference(tok)
			r.Append(literals(trimNewlines(p.readIndentedLines(true)))...)
			return r, true
		default:
			node = p.comment(tok, nil)
		}
	}
	var ret ast.Node = node
	if subst != nil {
		subst.Append(node)
		ret = subst
	}
	if d, ok := node.(*ast.Directive); ok && p.opts.shortDirectives[d.Identifier] {
		p.tokens.backup(scan.Token{Type: scan.Newline, Text: "\n", Line: tok.Line})
		return ret, true
	}
	if body := trimNewlines(p.readBlock()); len(body) > 0 {
		if c, ok := node.(*ast.Comment); ok && len(c.Children()) > 0 {
			c.Append(ast.NewLiteral(scan.Token{Type: scan.Newline, Text: "\n", Line: body[0].Line}))
		}
		node.Append(literals(body)...)
	}
	return ret, true
}

// comment returns a comment holding toks and the rest of the line.
func (p *Parser) comment(tok scan.Token, toks []scan.Token) *ast.Comment {
	c := ast.NewComment(tok)
	if t := p.tokens.peek(0); t.Type != scan.Newline && (t.Pos > 1 || len(toks) > 0) {
		toks = append(toks, p.tokens.line()...)
	} else if t.Type == scan.Newline {
		p.tokens.skip(1)
	}
	c.Append(literals(trimNewlines(toks))...)
	return c
}

// skipSeparator skips the whitespace or newline after the colon of a
// hyperlink target.
func (p *Parser) skipSeparator() {
	if p.tokens.is(0, scan.Whitespace, "") || p.tokens.is(0, scan.Newline, "") {
		p.tokens.skip(1)
	}
}

// readBlock reads the indented block of an explicit markup construct,
// including blank lines inside it. The lines keep their indentation
// relative to the first one.
func (p *Parser) readBlock() []scan.Token {
	blank := 0
	for p.tokens.is(blank, scan.Newline, "") {
		blank++
	}
	base := p.tokens.peek(blank)
	if base.Type != scan.Whitespace || base.Pos != 1 {
		return nil
	}
	p.tokens.skip(blank)
	var toks []scan.Token
	var nl scan.Token
	for {
		t := p.tokens.peek(0)
		if t.Type == scan.Newline {
			toks = append(toks, p.tokens.next())
			continue
		}
		if t.Type != scan.Whitespace || t.Pos != 1 || len(t.Text) < len(base.Text) {
			break
		}
		ws := p.tokens.next()
		if len(ws.Text) > len(base.Text) {
			ws.Text = ws.Text[len(base.Text):]
			toks = append(toks, ws)
		}
		for _, t := range p.tokens.line() {
			t.Pos -= len(base.Text)
			toks = append(toks, t)
			nl = t
		}
	}
	if nl.Type == scan.Newline {
		p.tokens.backup(nl)
	}
	return toks
}

// shiftAnonymousReference detects anonymous hyperlink targets like
// "__ http://example.com".
func (p *Parser) shiftAnonymousReference(tok scan.Token) (ast.Node, bool) {
	if tok.Text != "__" || tok.Pos > 1 || !p.tokens.is(0, scan.Whitespace, "") {
		return nil, false
	}
	p.tokens.skip(1)
	r := ast.NewAnonymousReference(tok)
	r.Append(literals(trimNewlines(p.readIndentedLines(true)))...)
	return r, true
}

// shiftFieldList reads a field like ":name: body". The body is parsed
// again as a document of its own.
func (p *Parser) shiftFieldList(tok scan.Token) (ast.Node, bool) {
	if tok.Text != ":" || tok.Pos > 1 {
		return nil, false
	}
	if t := p.tokens.peek(0); t.Type == scan.Whitespace || t.Type == scan.Newline || t.Type == scan.EOF {
		return nil, false
	}
	if top := p.stack.top(); top != nil && isInline(top) {
		return nil, false
	}
	name := p.readUntil(newlineOr(":"))
	if !p.tokens.is(0, scan.SpecialChars, ":") {
		p.tokens.backup(name...)
		return nil, false
	}
	p.tokens.skip(1)
	for p.tokens.is(0, scan.Whitespace, "") && p.tokens.is(1, scan.Newline, "") {
		p.tokens.skip(1)
	}
	for p.tokens.is(0, scan.Newline, "") && p.blankAhead(1) {
		p.tokens.skip(1)
	}
	if p.tokens.is(0, scan.Newline, "") && p.tokens.is(1, scan.Whitespace, "") {
		p.tokens.skip(1)
	}
	body := p.reenter(p.readIndentedLines(true))
	tracer().Debugf("   -> field %q", ast.JoinTokens(name))
	return ast.NewFieldList(tok, name, body.Children()), true
}

// shiftDefinitionList turns the text on the stack into the term of a
// definition list item and reads the indented definition. tok is the
// newline ending the term.
func (p *Parser) shiftDefinitionList(tok scan.Token) (ast.Node, bool) {
	term := p.stack.popWhile(func(n ast.Node) bool { return n.Type() == ast.NodeText })
	toks := make([]scan.Token, 0, len(term))
	for _, n := range term {
		toks = append(toks, n.Token())
	}
	p.tokens.backup(tok)
	body := p.readIndentedLines(true)
	if len(body) > 0 && body[0].Type == scan.Newline {
		body = body[1:]
	}
	tracer().Debugf("   -> definition of %q", ast.JoinTokens(toks))
	return ast.NewDefinitionList(toks[0], toks, p.reenter(body).Children()), true
}
