// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"github.com/matthewdargan/rstdoc/ast"
	"github.com/matthewdargan/rstdoc/scan"
)

func isBullet(s string) bool {
	switch s {
	case "*", "-", "+", "•", "‣", "⁃":
		return true
	}
	return false
}

// shiftBulletList starts a list item. The item body is indented to the
// column after the whitespace following the bullet.
func (p *Parser) shiftBulletList(tok scan.Token) (ast.Node, bool) {
	if !isBullet(tok.Text) || tok.Pos != p.indentation+1 || !p.tokens.is(0, scan.Whitespace, "") {
		return nil, false
	}
	ws := p.tokens.next()
	p.indentation = ws.Pos - 1 + len(ws.Text)
	return ast.NewBulletList(tok, p.indentation), true
}

// shiftEnumeratedList starts an enumerated list item in one of the forms
// "1.", "1)" and "(1)".
func (p *Parser) shiftEnumeratedList(tok scan.Token) (ast.Node, bool) {
	if tok.Pos != p.indentation+1 || tok.Escaped {
		return nil, false
	}
	paren := tok.Type == scan.SpecialChars && tok.Text == "("
	switch {
	case paren:
		if !p.enumeratorAhead(0, true) {
			return nil, false
		}
	case tok.Type == scan.TextLine || (tok.Type == scan.SpecialChars && tok.Text == "#"):
		if !isEnumerator(tok.Text) || !p.enumSuffixAhead(0, false) {
			return nil, false
		}
	default:
		return nil, false
	}
	text := tok
	if paren {
		text = p.tokens.peek(0)
	}
	e, ok := parseEnum(text.Text, p.lastEnum)
	if !ok {
		return nil, false
	}
	if paren {
		p.tokens.skip(1)
	}
	p.tokens.skip(1)
	ws := p.tokens.next()
	p.lastEnum = e
	p.indentation = ws.Pos - 1 + len(ws.Text)
	text.Pos = tok.Pos
	l := ast.NewEnumeratedList(text, p.indentation)
	l.Enumeration = e.typ.String()
	l.Start = e.val
	return l, true
}

// enumeratorAhead reports whether the i-th next token is an enumerator
// followed by its suffix and whitespace.
func (p *Parser) enumeratorAhead(i int, paren bool) bool {
	t := p.tokens.peek(i)
	if t.Escaped || !(t.Type == scan.TextLine || (t.Type == scan.SpecialChars && t.Text == "#")) {
		return false
	}
	return isEnumerator(t.Text) && p.enumSuffixAhead(i+1, paren)
}

// enumSuffixAhead reports whether the i-th next token closes an
// enumerator and is followed by whitespace.
func (p *Parser) enumSuffixAhead(i int, paren bool) bool {
	t := p.tokens.peek(i)
	if t.Type != scan.SpecialChars || (t.Text != ")" && (paren || t.Text != ".")) {
		return false
	}
	return p.tokens.is(i+1, scan.Whitespace, "")
}

// listMarkerAhead reports whether the next tokens start a list item.
func (p *Parser) listMarkerAhead() bool {
	t := p.tokens.peek(0)
	switch {
	case t.Type == scan.SpecialChars && isBullet(t.Text):
		return p.tokens.is(1, scan.Whitespace, "")
	case t.Type == scan.SpecialChars && t.Text == "(":
		return p.enumeratorAhead(1, true)
	}
	return p.enumeratorAhead(0, false)
}

// indentOf returns the indentation of nodes grouped by indentation and
// zero for all others.
func indentOf(n ast.Node) int {
	if i, ok := n.(ast.Indenter); ok {
		return i.Indent()
	}
	return 0
}

// startColumn returns the column at which n starts.
func startColumn(n ast.Node) int {
	if l, ok := n.(ast.Lister); ok {
		return l.Marker()
	}
	return indentOf(n)
}

// inList reports whether n may be part of a list item.
func inList(n ast.Node) bool {
	switch n.Type() {
	case ast.NodeParagraph, ast.NodeBlockquote, ast.NodeBulletList, ast.NodeEnumeratedList,
		ast.NodeLiteralBlock:
		return true
	}
	return false
}

// sameList reports whether l continues list.
func sameList(list ast.Lister, l ast.Node) bool {
	if list.Type() != l.Type() {
		return false
	}
	e1, ok1 := list.(*ast.EnumeratedList)
	e2, ok2 := l.(*ast.EnumeratedList)
	return !ok1 || !ok2 || e1.Enumeration == e2.Enumeration
}

func (p *Parser) reduceBulletListParagraph(n ast.Node) ast.Node {
	return p.reduceListParagraph(n.(*ast.Paragraph), ast.NodeBulletList)
}

func (p *Parser) reduceEnumeratedListParagraph(n ast.Node) ast.Node {
	return p.reduceListParagraph(n.(*ast.Paragraph), ast.NodeEnumeratedList)
}

// reduceListParagraph appends a paragraph to the current item of the
// nearest list of type typ with the same indentation. The nodes between
// the list and the paragraph are part of the item. Lists indented
// further than the previously inspected node take over the nodes
// inspected so far.
func (p *Parser) reduceListParagraph(para *ast.Paragraph, typ ast.NodeType) ast.Node {
	var childs []ast.Node // top first
	last := para.Indentation
	for {
		child := p.stack.top()
		if child == nil || !inList(child) || indentOf(child) < para.Indentation {
			break
		}
		l, isList := child.(ast.Lister)
		if isList && l.Indent() == para.Indentation {
			if l.Type() != typ {
				break
			}
			p.stack.pop()
			reverse(childs)
			item := l.CurrentItem()
			item.Append(childs...)
			item.Append(para)
			p.stack.push(l)
			return nil
		}
		p.stack.pop()
		if isList && l.Indent() < last {
			reverse(childs)
			l.CurrentItem().Append(childs...)
			childs = nil
		}
		childs = append(childs, child)
		last = indentOf(child)
	}
	reverse(childs)
	p.stack.restore(childs...)
	return para
}

func (p *Parser) reduceBulletList(n ast.Node) ast.Node {
	return p.reduceList(n.(ast.Lister))
}

func (p *Parser) reduceEnumeratedList(n ast.Node) ast.Node {
	return p.reduceList(n.(ast.Lister))
}

// reduceList turns a new list into the next item of a list with the same
// indentation on the stack.
func (p *Parser) reduceList(list ast.Lister) ast.Node {
	var childs []ast.Node // top first
	last := 0
	for {
		child := p.stack.top()
		if child == nil || !inList(child) || indentOf(child) < list.Indent() {
			break
		}
		l, isList := child.(ast.Lister)
		if isList && l.Indent() == list.Indent() {
			if !sameList(l, list) {
				break
			}
			p.stack.pop()
			reverse(childs)
			l.CurrentItem().Append(childs...)
			l.NewItem(list.Token())
			p.stack.push(l)
			return nil
		}
		p.stack.pop()
		if isList && l.Indent() < last {
			reverse(childs)
			l.CurrentItem().Append(childs...)
			childs = nil
		}
		childs = append(childs, child)
		last = indentOf(child)
	}
	reverse(childs)
	p.stack.restore(childs...)
	return list
}

// nest moves nodes following a list into the list's current item unless
// they start left of the item body. Consecutive lists of the same kind
// with markers at the same column are merged, so that "9." and "10." or
// "i." and "ii." end up in one list although their bodies differ in
// indentation.
func nest(n ast.Node) {
	switch n.(type) {
	case *ast.Document, *ast.Section, *ast.ListItem:
		n.SetChildren(nestLists(n.Children()))
	}
	for _, c := range n.Children() {
		nest(c)
	}
}

func nestLists(nodes []ast.Node) []ast.Node {
	var out []ast.Node
	var open []ast.Lister
	for _, n := range nodes {
		col := startColumn(n)
		merged := false
		for len(open) > 0 {
			top := open[len(open)-1]
			if l, ok := n.(ast.Lister); ok && sameList(top, l) && top.Marker() == l.Marker() {
				top.Append(l.Children()...)
				merged = true
				break
			}
			if col >= top.Indent() {
				break
			}
			open = open[:len(open)-1]
		}
		if merged {
			continue
		}
		if len(open) > 0 {
			open[len(open)-1].CurrentItem().Append(n)
		} else {
			out = append(out, n)
		}
		if l, ok := n.(ast.Lister); ok {
			open = append(open, l)
		}
	}
	return out
}
