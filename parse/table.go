// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"sort"

	"github.com/matthewdargan/rstdoc/ast"
	"github.com/matthewdargan/rstdoc/scan"
)

// A column is one piece of a simple table specification line: a border
// or the gap between two borders.
type column struct {
	typ   scan.Type
	width int
}

// A cells maps column numbers to the tokens of a cell.
type cells map[int][]scan.Token

// isBorder reports whether t is part of a simple table specification.
func isBorder(t scan.Token) bool {
	if t.Type != scan.SpecialChars {
		return false
	}
	r := firstRune(t.Text)
	return r == '=' || r == '-'
}

// shiftSimpleTable reads a simple table. The first specification line
// gives the columns. Rows before the second one form the head unless the
// table ends after it.
func (p *Parser) shiftSimpleTable(tok scan.Token) (ast.Node, bool) {
	if tok.Pos > 1 || !isBorder(tok) || firstRune(tok.Text) != '=' ||
		!p.tokens.is(0, scan.Whitespace, "") || !isBorder(p.tokens.peek(1)) {
		return nil, false
	}
	p.tokens.backup(tok)
	spec := p.readSimpleSpec()
	var starts []int
	pos := 1
	for _, c := range spec {
		if c.typ == scan.SpecialChars {
			starts = append(starts, pos)
		}
		pos += c.width
	}
	head := p.readSimpleCells(starts)
	for p.simpleSpecAhead() && firstRune(p.tokens.peek(0).Text) == '-' {
		p.readSimpleSpec()
		head = append(head, p.readSimpleCells(starts)...)
	}
	p.checkSimpleSpec(spec)
	var body []cells
	if t := p.tokens.peek(0); t.Type == scan.Newline || t.Type == scan.EOF {
		head, body = nil, head
	} else {
		body = p.readSimpleCells(starts)
		p.checkSimpleSpec(spec)
	}
	table := ast.NewTable(tok)
	if len(head) > 0 {
		h := ast.NewTableHead(tok)
		for _, r := range head {
			h.Append(p.simpleRow(r))
		}
		table.Append(h)
	}
	b := ast.NewTableBody(tok)
	for _, r := range body {
		b.Append(p.simpleRow(r))
	}
	table.Append(b)
	tracer().Debugf("   -> simple table with %d columns", len(starts))
	return table, true
}

// readSimpleSpec reads a specification line.
func (p *Parser) readSimpleSpec() []column {
	var spec []column
	for t := p.tokens.peek(0); t.Type != scan.Newline && t.Type != scan.EOF; t = p.tokens.peek(0) {
		p.tokens.skip(1)
		if !isBorder(t) && (t.Type != scan.Whitespace || len(t.Text) < 2) {
			p.fatalf(t, "Invalid token in simple table specification.")
		}
		spec = append(spec, column{t.Type, runes(t.Text)})
	}
	p.tokens.skip(1)
	return spec
}

// checkSimpleSpec reads a specification line and compares it with spec.
func (p *Parser) checkSimpleSpec(spec []column) {
	t := p.tokens.peek(0)
	other := p.readSimpleSpec()
	if len(other) != len(spec) {
		p.reportf(Warning, t, "Table specification mismatch in simple table.")
		return
	}
	for i := range spec {
		if spec[i] != other[i] {
			p.reportf(Warning, t, "Table specification mismatch in simple table.")
			return
		}
	}
}

// simpleSpecAhead reports whether the next line is a specification line.
func (p *Parser) simpleSpecAhead() bool {
	t := p.tokens.peek(0)
	return t.Pos == 1 && isBorder(t) && p.tokens.is(1, scan.Whitespace, "") && isBorder(p.tokens.peek(2))
}

// readSimpleCells reads rows up to the next specification line. A row
// starts with a line having text in the first column.
func (p *Parser) readSimpleCells(starts []int) []cells {
	var rows []cells
	for !p.simpleSpecAhead() && p.tokens.peek(0).Type != scan.EOF {
		t := p.tokens.next()
		col := 0
		for col+1 < len(starts) && starts[col+1] <= t.Pos {
			col++
		}
		if len(rows) == 0 || (t.Pos == 1 && t.Type != scan.Whitespace && t.Type != scan.Newline) {
			rows = append(rows, cells{})
		}
		r := rows[len(rows)-1]
		r[col] = append(r[col], t)
	}
	return rows
}

// simpleRow builds a table row. A cell followed by empty columns spans
// them.
func (p *Parser) simpleRow(c cells) *ast.TableRow {
	cols := make([]int, 0, len(c))
	for col := range c {
		cols = append(cols, col)
	}
	sort.Ints(cols)
	row := ast.NewTableRow(c[cols[0]][0])
	var last *ast.TableCell
	lastCol := -1
	for _, col := range cols {
		if last != nil && lastCol < col-1 {
			last.Colspan = col - lastCol
		}
		cell := ast.NewTableCell(c[col][0])
		cell.Append(p.reenter(c[col]).Children()...)
		row.Append(cell)
		last, lastCol = cell, col
	}
	return row
}
