// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"testing"

	"github.com/matthewdargan/rstdoc/ast"
	"github.com/matthewdargan/rstdoc/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReindent(t *testing.T) {
	toks := []scan.Token{
		{Type: scan.Whitespace, Line: 1, Pos: 1, Text: "  "},
		{Type: scan.TextLine, Line: 1, Pos: 3, Text: "a"},
		{Type: scan.Newline, Line: 1, Pos: 4, Text: "\n"},
		{Type: scan.Whitespace, Line: 2, Pos: 1, Text: "    "},
		{Type: scan.TextLine, Line: 2, Pos: 5, Text: "b"},
		{Type: scan.Whitespace, Line: 2, Pos: 6, Text: "  "},
		{Type: scan.Newline, Line: 2, Pos: 8, Text: "\n"},
	}
	want := []scan.Token{
		{Type: scan.TextLine, Line: 1, Pos: 1, Text: "a"},
		{Type: scan.Newline, Line: 1, Pos: 2, Text: "\n"},
		{Type: scan.Whitespace, Line: 2, Pos: 1, Text: "  "},
		{Type: scan.TextLine, Line: 2, Pos: 3, Text: "b"},
		{Type: scan.Newline, Line: 2, Pos: 6, Text: "\n"},
	}
	got := reindent(toks)
	assert.Equal(t, want, got)
	assert.Equal(t, want, reindent(got))
}

func TestReindentAddsNewline(t *testing.T) {
	got := reindent([]scan.Token{{Type: scan.TextLine, Line: 3, Pos: 7, Text: "word"}})
	require.Len(t, got, 2)
	assert.Equal(t, scan.Token{Type: scan.TextLine, Line: 3, Pos: 1, Text: "word"}, got[0])
	assert.Equal(t, scan.Newline, got[1].Type)
	assert.Equal(t, 5, got[1].Pos)
}

// untilEOF returns the tokens of input without the final EOF.
func untilEOF(t *testing.T, input string) []scan.Token {
	t.Helper()
	toks := tokens(t, input)
	return toks[:len(toks)-1]
}

func TestReenter(t *testing.T) {
	p := New()
	doc := p.reenter(untilEOF(t, "    - one\n    - two\n"))
	require.Len(t, doc.Children(), 1)
	l, ok := doc.Children()[0].(*ast.BulletList)
	require.True(t, ok)
	assert.Len(t, l.Items(), 2)
	assert.Empty(t, p.reenter(nil).Children())
}

func TestReenterReportsToParent(t *testing.T) {
	var got []Diagnostic
	p := New(WithReporter(ReporterFunc(func(d Diagnostic) { got = append(got, d) })))
	p.reenter(untilEOF(t, "Title\n===\n"))
	require.Len(t, got, 1)
	assert.Equal(t, Notice, got[0].Severity)
	assert.Equal(t, got, p.Diagnostics())
}
