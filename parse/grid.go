// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"sort"

	"github.com/matthewdargan/rstdoc/ast"
	"github.com/matthewdargan/rstdoc/scan"
)

// Junction marks of a grid table line.
const (
	noMark   = iota
	cellMark // a "|" or "+" inside a row
	rowMark  // a "+" followed by "-"
	headMark // a "+" followed by "="
)

// A cellRef names a logical cell by row and column number.
type cellRef struct {
	row, col int
	ok       bool
}

type span struct {
	rows, cols int
}

// shiftGridTable reads a grid table. The top border gives the columns;
// a border of "=" separates the head from the body.
func (p *Parser) shiftGridTable(tok scan.Token) (ast.Node, bool) {
	if tok.Pos > 1 || tok.Text != "+" || !p.tokens.is(0, scan.SpecialChars, "") ||
		firstRune(p.tokens.peek(0).Text) != '-' || !p.tokens.is(1, scan.SpecialChars, "+") {
		return nil, false
	}
	p.tokens.backup(tok)
	spec := p.readGridSpec()
	colOf := make(map[int]int, len(spec))
	for i, pos := range spec {
		colOf[pos] = i
	}
	ncols := len(spec) - 1

	var toks []scan.Token
	nrows := 0
	for t := p.tokens.peek(0); t.Type != scan.EOF; t = p.tokens.peek(0) {
		toks = append(toks, p.tokens.next())
		if t.Type == scan.Newline {
			nrows++
			if p.tokens.is(0, scan.Newline, "") || p.tokens.peek(0).Type == scan.EOF {
				break
			}
		}
	}

	// Classify the junctions of each line.
	marks := make([][]int, nrows+1)
	for i := range marks {
		marks[i] = make([]int, len(spec))
	}
	titleRow := -1
	row := 0
	for i, t := range toks {
		if t.Type == scan.Newline {
			row++
			continue
		}
		c, ok := colOf[t.Pos]
		if !ok {
			continue
		}
		var next scan.Token
		if i+1 < len(toks) {
			next = toks[i+1]
		}
		switch {
		case t.Text == "+" && firstRune(next.Text) == '=':
			titleRow = row
			marks[row][c] = headMark
		case t.Text == "+" && firstRune(next.Text) == '-':
			marks[row][c] = rowMark
		case (t.Text == "|" || t.Text == "+") && next.Type != scan.Newline:
			marks[row][c] = cellMark
		}
	}
	for r := 0; r < nrows; r++ {
		for c, m := range marks[r] {
			if m != cellMark {
				continue
			}
			if (r > 0 && marks[r-1][c] == noMark) || (r < nrows-1 && marks[r+1][c] == noMark) {
				marks[r][c] = noMark
			}
		}
	}

	// Map each physical cell to the logical cell it belongs to. A border
	// starts the row following every row begun so far.
	colNum := make([]int, ncols)
	mapping := make([][]cellRef, nrows+1)
	for r := range mapping {
		mapping[r] = make([]cellRef, ncols)
		top := 0
		for _, v := range colNum {
			top = max(top, v)
		}
		for c := 0; c < ncols; c++ {
			switch marks[r][c] {
			case noMark:
				if c > 0 {
					mapping[r][c] = mapping[r][c-1]
				}
			case cellMark:
				mapping[r][c] = cellRef{colNum[c], c, true}
			default:
				colNum[c] = top + 1
			}
		}
	}

	spans := make(map[cellRef]*span)
	next := 0
	for r := range mapping {
		maxNr := -1
		for _, m := range mapping[r] {
			if m.ok {
				maxNr = max(maxNr, m.row)
			}
		}
		if maxNr < 0 || maxNr < next {
			continue
		}
		for c, m := range mapping[r] {
			if !m.ok {
				continue
			}
			switch {
			case m.row == next && m.col == c:
				spans[m] = &span{1, 1}
			case m.col == c:
				if s := spans[m]; s != nil {
					s.rows++
				}
			case m.row == next:
				if s := spans[m]; s != nil {
					s.cols++
				}
			}
		}
		next = maxNr + 1
	}

	// Distribute the tokens to the cells.
	head := make(map[cellRef][]scan.Token)
	body := make(map[cellRef][]scan.Token)
	current := body
	if titleRow >= 0 {
		current = head
	}
	row, cell := 0, 0
	for _, t := range toks {
		if t.Type == scan.Newline {
			if row == titleRow {
				current = body
			}
			seen := make(map[cellRef]bool)
			for _, m := range mapping[row] {
				if m.ok && !seen[m] {
					seen[m] = true
					current[m] = append(current[m], t)
				}
			}
			row++
			cell = 0
			continue
		}
		if c, ok := colOf[t.Pos]; ok && marks[row][c] != noMark {
			continue
		}
		for cell+1 < len(spec) && t.Pos >= spec[cell+1] {
			cell++
		}
		if cell < ncols {
			if m := mapping[row][cell]; m.ok {
				current[m] = append(current[m], t)
			}
		}
	}

	table := ast.NewTable(tok)
	if len(head) > 0 {
		h := ast.NewTableHead(tok)
		for _, r := range p.gridRows(head, spans) {
			h.Append(r)
		}
		table.Append(h)
	}
	b := ast.NewTableBody(tok)
	for _, r := range p.gridRows(body, spans) {
		b.Append(r)
	}
	table.Append(b)
	tracer().Debugf("   -> grid table with %d columns", ncols)
	return table, true
}

// readGridSpec reads the top border and returns the positions of its
// junctions.
func (p *Parser) readGridSpec() []int {
	var spec []int
	for t := p.tokens.peek(0); t.Type != scan.Newline && t.Type != scan.EOF; t = p.tokens.peek(0) {
		p.tokens.skip(1)
		switch {
		case t.Type == scan.SpecialChars && t.Text == "+":
			spec = append(spec, t.Pos)
		case t.Type == scan.SpecialChars && (firstRune(t.Text) == '-' || firstRune(t.Text) == '='):
		default:
			p.fatalf(t, "Invalid token in grid table specification.")
		}
	}
	p.tokens.skip(1)
	return spec
}

// gridRows groups cells into rows ordered by row and column number.
func (p *Parser) gridRows(cells map[cellRef][]scan.Token, spans map[cellRef]*span) []*ast.TableRow {
	refs := make([]cellRef, 0, len(cells))
	for ref := range cells {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].row != refs[j].row {
			return refs[i].row < refs[j].row
		}
		return refs[i].col < refs[j].col
	})
	var rows []*ast.TableRow
	var row *ast.TableRow
	lastRow := -1
	for _, ref := range refs {
		toks := cells[ref]
		if ref.row != lastRow {
			row = ast.NewTableRow(toks[0])
			rows = append(rows, row)
			lastRow = ref.row
		}
		cell := ast.NewTableCell(toks[0])
		if s := spans[ref]; s != nil {
			cell.Rowspan, cell.Colspan = s.rows, s.cols
		}
		cell.Append(p.reenter(toks).Children()...)
		row.Append(cell)
	}
	return rows
}
