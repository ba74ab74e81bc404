// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"testing"

	"github.com/matthewdargan/rstdoc/ast"
	"github.com/matthewdargan/rstdoc/scan"
	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	a := scan.Token{Type: scan.TextLine, Text: "a"}
	nl := scan.Token{Type: scan.Newline, Text: "\n"}
	b := scan.Token{Type: scan.TextLine, Text: "b"}
	q := newQueue([]scan.Token{a, nl, b})
	assert.Equal(t, 3, q.len())
	assert.True(t, q.is(1, scan.Newline, ""))
	assert.False(t, q.is(0, scan.TextLine, "b"))
	assert.Equal(t, []scan.Token{a, nl}, q.line())

	x := scan.Token{Type: scan.Whitespace, Text: " "}
	q.backup(x, nl)
	assert.Equal(t, 3, q.len())
	assert.Equal(t, x, q.next())
	q.backup(a, x, nl, x)
	assert.Equal(t, []scan.Token{a, x, nl}, q.line())
	assert.Equal(t, x, q.next())
	assert.Equal(t, nl, q.next())
	assert.Equal(t, b, q.next())
	assert.Equal(t, 0, q.len())
	assert.Equal(t, scan.EOF, q.next().Type)
	assert.Equal(t, scan.EOF, q.peek(5).Type)
	q.skip(3)
	assert.Equal(t, 0, q.len())
}

func TestStack(t *testing.T) {
	s := newStack()
	assert.Nil(t, s.pop())
	assert.Equal(t, ast.NodeType(-1), s.topType())

	p1 := ast.NewParagraph(scan.Token{Text: "1"})
	p2 := ast.NewParagraph(scan.Token{Text: "2"})
	q := ast.NewBlockquote(scan.Token{Text: "3"}, 4)
	s.restore(p1, p2, q)
	assert.Equal(t, []ast.Node{p1, p2, q}, s.nodes())
	assert.Equal(t, ast.NodeBlockquote, s.topType())
	assert.Equal(t, p2, s.peek(1))

	paras := s.popWhile(func(n ast.Node) bool { return n.Type() == ast.NodeBlockquote })
	assert.Equal(t, []ast.Node{q}, paras)
	rest := s.popWhile(func(ast.Node) bool { return true })
	assert.Equal(t, []ast.Node{p1, p2}, rest)
	assert.Equal(t, 0, s.len())
}
