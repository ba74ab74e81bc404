// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"strings"

	"github.com/matthewdargan/rstdoc/ast"
)

// reduceTitle turns the text preceding an underline into a section title.
// An adornment without text before it is an overline and stays on the
// stack.
func (p *Parser) reduceTitle(n ast.Node) ast.Node {
	under := n.(*ast.Title)
	if p.stack.topType() != ast.NodeText {
		return under
	}
	texts := p.stack.popWhile(func(n ast.Node) bool { return n.Type() == ast.NodeText })
	var b strings.Builder
	for _, t := range texts {
		b.WriteString(t.Token().Text)
	}
	text := strings.TrimSpace(b.String())
	if width(text) != runes(under.Tok.Text) {
		p.reportf(Notice, under.Tok, "Title underline length does not match text length.")
	}
	adornment := string(firstRune(under.Tok.Text))
	if over, ok := p.stack.top().(*ast.Title); ok {
		p.stack.pop()
		adornment = string(firstRune(over.Tok.Text)) + adornment
		if runes(over.Tok.Text) != runes(under.Tok.Text) {
			p.reportf(Warning, under.Tok, "Title overline and underline mismatch.")
		}
	}
	depth, ok := p.titleLevels[adornment]
	if !ok {
		depth = len(p.titleLevels) + 1
		p.titleLevels[adornment] = depth
	}
	tok := texts[0].Token()
	tok.Text = text
	title := ast.NewTitle(tok)
	title.Adornment = adornment
	tracer().Debugf("   -> title %q at depth %d", text, depth)
	return ast.NewSection(title, depth)
}

// isBlock reports whether n may be part of a section body.
func isBlock(n ast.Node) bool {
	switch n.Type() {
	case ast.NodeParagraph, ast.NodeBlockquote, ast.NodeSection, ast.NodeBulletList,
		ast.NodeEnumeratedList, ast.NodeTable, ast.NodeLiteralBlock, ast.NodeComment,
		ast.NodeDirective, ast.NodeSubstitution, ast.NodeNamedReference, ast.NodeFootnote,
		ast.NodeAnonymousReference, ast.NodeTransition, ast.NodeFieldList,
		ast.NodeDefinitionList, ast.NodeLineBlock:
		return true
	}
	return false
}

// reduceSection collects the nodes up to the previous section of at most
// the same depth into that section. Deeper sections on the way take over
// the nodes following them. The document collects all that is left.
func (p *Parser) reduceSection(n ast.Node) ast.Node {
	depth := 0
	if s, ok := n.(*ast.Section); ok {
		depth = s.Depth
	}
	var collected []ast.Node
	lastDepth := -1
	for p.stack.len() > 0 {
		child := p.stack.pop()
		if !isBlock(child) {
			p.fatalf(child.Token(), "Unexpected node: %s.", child.Type())
		}
		if s, ok := child.(*ast.Section); ok {
			if s.Depth <= depth {
				s.Append(collected...)
				p.stack.push(s)
				return n
			}
			if lastDepth-s.Depth > 1 {
				p.fatalf(s.Token(), "Title depth inconsistency.")
			}
			if lastDepth == -1 || lastDepth > s.Depth {
				s.Append(collected...)
				collected = nil
			}
			lastDepth = s.Depth
		}
		collected = append([]ast.Node{child}, collected...)
	}
	if depth > 0 {
		p.stack.restore(collected...)
		return n
	}
	n.Append(collected...)
	return n
}

// reduceParagraph collects the inline nodes of a paragraph. Start tags
// without an end tag become text. A paragraph without inline nodes is
// dropped.
func (p *Parser) reduceParagraph(n ast.Node) ast.Node {
	para := n.(*ast.Paragraph)
	inline := p.stack.popWhile(isInline)
	if len(inline) == 0 {
		return nil
	}
	for i, c := range inline {
		if m, ok := c.(*ast.Markup); ok && len(m.Children()) == 0 {
			inline[i] = ast.NewText(m.Tok)
		}
	}
	para.SetChildren(inline)
	first := inline[0].Token()
	para.Tok.Line, para.Tok.Pos = first.Line, first.Pos
	para.Indentation = p.indentation
	if p.postIndentation >= 0 {
		p.indentation = p.postIndentation
	} else {
		p.indentation = 0
	}
	return para
}

func (p *Parser) reduceBlockquoteAnnotationParagraph(n ast.Node) ast.Node {
	a, ok := p.stack.top().(*ast.Annotation)
	if !ok {
		return n
	}
	p.stack.pop()
	a.Append(n)
	return a
}

// reduceBlockquoteAnnotation attaches a complete annotation to its block
// quote and closes the quote.
func (p *Parser) reduceBlockquoteAnnotation(n ast.Node) ast.Node {
	a := n.(*ast.Annotation)
	if len(a.Children()) == 0 {
		return a
	}
	q, ok := p.stack.top().(*ast.Blockquote)
	if !ok {
		return a
	}
	q.Annotation = a
	q.Closed = true
	return nil
}

// reduceBlockquote wraps an indented paragraph into a block quote.
func (p *Parser) reduceBlockquote(n ast.Node) ast.Node {
	para := n.(*ast.Paragraph)
	if para.Indentation <= 0 {
		return para
	}
	q := ast.NewBlockquote(para.Children()[0].Token(), para.Indentation)
	q.Append(para)
	return q
}

// reduceBlockquoteMerge merges consecutive block quotes.
func (p *Parser) reduceBlockquoteMerge(n ast.Node) ast.Node {
	q := n.(*ast.Blockquote)
	prev, ok := p.stack.top().(*ast.Blockquote)
	if !ok || prev.Closed || prev == q {
		return q
	}
	if prev.Indentation != q.Indentation {
		p.reportf(Error, q.Tok, "Indentation level changed between block quotes from %d to %d.",
			prev.Indentation, q.Indentation)
	}
	p.stack.pop()
	prev.Append(q.Children()...)
	return prev
}

func (p *Parser) reduceDefinitionList(n ast.Node) ast.Node {
	prev, ok := p.stack.top().(*ast.DefinitionList)
	if !ok {
		return n
	}
	p.stack.pop()
	prev.Append(n.Children()...)
	return prev
}

func (p *Parser) reduceFieldList(n ast.Node) ast.Node {
	prev, ok := p.stack.top().(*ast.FieldList)
	if !ok {
		return n
	}
	p.stack.pop()
	prev.Append(n.Children()...)
	return prev
}
