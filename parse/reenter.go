// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"github.com/matthewdargan/rstdoc/ast"
	"github.com/matthewdargan/rstdoc/scan"
)

// reenter parses toks as a document of its own, as is done for the
// contents of table cells, footnotes, fields and definitions. The sub
// parser shares the options; its diagnostics go to p.
func (p *Parser) reenter(toks []scan.Token) *ast.Document {
	toks = reindent(toks)
	if len(toks) == 0 {
		return ast.NewDocument(scan.Token{})
	}
	last := toks[len(toks)-1]
	toks = append(toks,
		scan.Token{Type: scan.Newline, Text: "\n", Line: last.Line + 1, Pos: 1},
		scan.Token{Type: scan.EOF, Line: last.Line + 2, Pos: 1})
	sub := &Parser{opts: p.opts, parent: p}
	tracer().Debugf("reenter with %d tokens", len(toks))
	doc, err := sub.Parse(toks)
	if err != nil {
		panic(err)
	}
	return doc
}

// reindent shifts toks to the left by the smallest indentation of their
// lines. Whitespace runs are collapsed, whitespace at line ends is
// dropped and a final newline is added if missing.
func reindent(toks []scan.Token) []scan.Token {
	base := 0
	lineStart := true
	for _, t := range toks {
		switch {
		case t.Type == scan.Newline:
			lineStart = true
		case lineStart && t.Type == scan.Whitespace:
		case lineStart:
			if base == 0 || t.Pos < base {
				base = t.Pos
			}
			lineStart = false
		}
	}
	offset := 0
	if base > 1 {
		offset = base - 1
	}
	var out []scan.Token
	for i, t := range toks {
		if t.Type == scan.Whitespace {
			if i+1 == len(toks) || toks[i+1].Type == scan.Whitespace || toks[i+1].Type == scan.Newline {
				continue
			}
			end := t.Pos + len(t.Text) - 1
			if end <= offset {
				continue
			}
			if t.Pos <= offset {
				t.Text = t.Text[len(t.Text)-(end-offset):]
				t.Pos = offset + 1
			}
		}
		t.Pos = max(t.Pos-offset, 1)
		out = append(out, t)
	}
	if len(out) > 0 && out[len(out)-1].Type != scan.Newline {
		last := out[len(out)-1]
		out = append(out, scan.Token{Type: scan.Newline, Text: "\n", Line: last.Line, Pos: last.Pos + runes(last.Text)})
	}
	return out
}
