// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/matthewdargan/rstdoc/ast"
	"github.com/matthewdargan/rstdoc/scan"
)

const (
	// markupStart holds the characters that may precede start tags.
	markupStart = `'"([{<-/:_`
	// markupEnd holds the characters that may follow end tags.
	markupEnd = `'")]}>-/:.,;!?\_`
	// linkEnd holds the characters that may follow references.
	linkEnd = `'")]}>-/:.,;!?\`
)

var markupVariants = map[string]ast.Variant{
	"*":  ast.MarkupEmphasis,
	"**": ast.MarkupStrong,
	"`":  ast.MarkupInterpreted,
	"``": ast.MarkupLiteral,
	"|":  ast.MarkupSubstitution,
}

// quotePairs maps opening to closing characters. Markup characters
// enclosed by a pair are text.
var quotePairs = map[string]string{
	`"`: `"`,
	`'`: `'`,
	"(": ")",
	"[": "]",
	"{": "}",
	"<": ">",
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func startsWithAny(s, chars string) bool {
	return s != "" && strings.ContainsRune(chars, firstRune(s))
}

// endsInline reports whether tok may follow an end tag or a reference.
func endsInline(tok scan.Token, chars string) bool {
	return tok.Type == scan.Whitespace || tok.Type == scan.Newline || startsWithAny(tok.Text, chars)
}

// shiftInlineMarkup detects start and end tags of inline markup.
func (p *Parser) shiftInlineMarkup(tok scan.Token) (ast.Node, bool) {
	variant, ok := markupVariants[tok.Text]
	if !ok {
		return nil, false
	}
	next := p.tokens.peek(0)
	prev := p.stack.top()
	var before scan.Token
	if prev != nil {
		before = prev.Token()
	}
	lineStart := tok.Pos <= p.indentation+1
	if (prev == nil ||
		(before.Type == scan.SpecialChars && startsWithAny(before.Text, markupStart)) ||
		before.Type == scan.Whitespace || lineStart) &&
		next.Type != scan.Whitespace &&
		(prev == nil || quotePairs[before.Text] == "" || quotePairs[before.Text] != next.Text) {
		return ast.NewMarkup(tok, variant, true), true
	}
	if prev != nil && before.Type != scan.Whitespace && !lineStart && endsInline(next, markupEnd) {
		return ast.NewMarkup(tok, variant, false), true
	}
	return nil, false
}

// shiftAnonymousHyperlinks detects anonymous hyperlink references like
// "`text`__".
func (p *Parser) shiftAnonymousHyperlinks(tok scan.Token) (ast.Node, bool) {
	if tok.Text != "__" || tok.Pos == 1 {
		return nil, false
	}
	prev := p.stack.top()
	if prev == nil || prev.Token().Type == scan.Whitespace || !endsInline(p.tokens.peek(0), linkEnd) {
		return nil, false
	}
	return ast.NewAnonymousLink(tok), true
}

// shiftReference detects footnote and citation references like "[1]_".
func (p *Parser) shiftReference(tok scan.Token) (ast.Node, bool) {
	if tok.Text != "_" {
		return nil, false
	}
	prev := p.stack.top()
	if prev == nil || prev.Token().Type != scan.SpecialChars || prev.Token().Text != "]" ||
		!endsInline(p.tokens.peek(0), linkEnd) {
		return nil, false
	}
	return ast.NewReference(tok), true
}

// shiftExternalReference detects named hyperlink references like "word_".
func (p *Parser) shiftExternalReference(tok scan.Token) (ast.Node, bool) {
	if tok.Text != "_" {
		return nil, false
	}
	prev := p.stack.top()
	if prev == nil || prev.Token().Type == scan.Whitespace || !endsInline(p.tokens.peek(0), linkEnd) {
		return nil, false
	}
	return ast.NewExternalReference(tok), true
}

func isInline(n ast.Node) bool {
	return ast.IsInline(n.Type())
}

// reduceMarkup matches an end tag with the nearest start tag of the same
// variant. Without a start tag, the end tag is text and all inspected
// nodes go back onto the stack.
func (p *Parser) reduceMarkup(n ast.Node) ast.Node {
	m := n.(*ast.Markup)
	if m.Open {
		return m
	}
	var childs []ast.Node
	for top := p.stack.top(); top != nil && isInline(top); top = p.stack.top() {
		child := p.stack.pop()
		if start, ok := child.(*ast.Markup); ok && start.Open && start.Variant == m.Variant {
			reverse(childs)
			m.SetChildren(childs)
			return m
		}
		childs = append(childs, child)
	}
	reverse(childs)
	p.stack.restore(childs...)
	return ast.NewText(m.Tok)
}

// reduceInternalTarget turns interpreted text preceded by an underscore
// into an inline target.
func (p *Parser) reduceInternalTarget(n ast.Node) ast.Node {
	m := n.(*ast.Markup)
	if m.Variant != ast.MarkupInterpreted || m.Open || len(m.Children()) == 0 {
		return m
	}
	t, ok := p.stack.top().(*ast.Text)
	if !ok || t.Text() != "_" {
		return m
	}
	p.stack.pop()
	target := ast.NewTarget(t.Tok)
	target.Append(m)
	return target
}

// reduceReference collects the text between "[" and "]" of a footnote
// reference.
func (p *Parser) reduceReference(n ast.Node) ast.Node {
	closing := p.stack.pop()
	var childs []ast.Node
	for {
		t, ok := p.stack.top().(*ast.Text)
		if !ok {
			break
		}
		p.stack.pop()
		if t.Tok.Type == scan.SpecialChars && t.Tok.Text == "[" {
			reverse(childs)
			n.SetChildren(childs)
			return n
		}
		childs = append(childs, t)
	}
	reverse(childs)
	p.stack.restore(childs...)
	p.stack.push(closing)
	return ast.NewText(n.Token())
}

// reduceLink takes the link text of a hyperlink reference: the preceding
// interpreted text or the last word of the preceding text.
func (p *Parser) reduceLink(n ast.Node) ast.Node {
	top := p.stack.top()
	if top == nil {
		return ast.NewText(n.Token())
	}
	if second := p.stack.peek(1); second != nil && second.Token().Text == "__" {
		return ast.NewText(n.Token())
	}
	if m, ok := top.(*ast.Markup); ok && m.Variant == ast.MarkupInterpreted && !m.Open {
		p.stack.pop()
		n.Append(m)
		return n
	}
	t, ok := top.(*ast.Text)
	if !ok {
		return ast.NewText(n.Token())
	}
	text := t.Text()
	i := strings.LastIndexByte(text, ' ')
	if i < 0 {
		p.stack.pop()
		n.Append(t)
		return n
	}
	if i == len(text)-1 {
		return ast.NewText(n.Token())
	}
	word := t.Tok
	word.Text = text[i+1:]
	word.Pos += runes(text[:i+1])
	t.Tok.Text = text[:i+1]
	n.Append(ast.NewText(word))
	return n
}
