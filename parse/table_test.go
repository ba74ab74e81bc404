// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"testing"

	"github.com/matthewdargan/rstdoc/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellTexts(r *ast.TableRow) []string {
	var texts []string
	for _, c := range r.Cells() {
		texts = append(texts, ast.TextOf(c))
	}
	return texts
}

func TestSimpleTable(t *testing.T) {
	input := "=====  =====\n" +
		"A      B\n" +
		"=====  =====\n" +
		"1      2\n" +
		"=====  =====\n"
	doc, diags := parseText(t, input)
	assert.Empty(t, diags)
	require.Len(t, doc.Children(), 1)
	table, ok := doc.Children()[0].(*ast.Table)
	require.True(t, ok)
	require.NotNil(t, table.Head())
	require.Len(t, table.Head().Children(), 1)
	assert.Equal(t, []string{"A", "B"}, cellTexts(table.Head().Children()[0].(*ast.TableRow)))
	require.NotNil(t, table.Body())
	require.Len(t, table.Body().Children(), 1)
	assert.Equal(t, []string{"1", "2"}, cellTexts(table.Body().Children()[0].(*ast.TableRow)))
}

func TestSimpleTableWithoutHead(t *testing.T) {
	input := "=====  =====\n" +
		"1      2\n" +
		"3      4\n" +
		"=====  =====\n"
	doc, _ := parseText(t, input)
	require.Len(t, doc.Children(), 1)
	table := doc.Children()[0].(*ast.Table)
	assert.Nil(t, table.Head())
	rows := table.Body().Children()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "2"}, cellTexts(rows[0].(*ast.TableRow)))
	assert.Equal(t, []string{"3", "4"}, cellTexts(rows[1].(*ast.TableRow)))
}

func TestSimpleTableMismatch(t *testing.T) {
	input := "=====  =====\n" +
		"1      2\n" +
		"======  ====\n"
	_, diags := parseText(t, input)
	require.Len(t, diags, 1)
	assert.Equal(t, Warning, diags[0].Severity)
	assert.Equal(t, "Table specification mismatch in simple table.", diags[0].Msg)
	assert.Equal(t, 3, diags[0].Line)
}

func TestGridTable(t *testing.T) {
	input := "+-----+-----+-----+\n" +
		"| a         | b   |\n" +
		"+-----+-----+-----+\n" +
		"| c   | d   | e   |\n" +
		"+-----+-----+-----+\n"
	doc, diags := parseText(t, input)
	assert.Empty(t, diags)
	require.Len(t, doc.Children(), 1)
	table, ok := doc.Children()[0].(*ast.Table)
	require.True(t, ok)
	assert.Nil(t, table.Head())
	rows := table.Body().Children()
	require.Len(t, rows, 2)

	first := rows[0].(*ast.TableRow).Cells()
	require.Len(t, first, 2)
	assert.Equal(t, "a", ast.TextOf(first[0]))
	assert.Equal(t, 2, first[0].Colspan)
	assert.Equal(t, 1, first[0].Rowspan)
	assert.Equal(t, "b", ast.TextOf(first[1]))
	assert.Equal(t, 1, first[1].Colspan)

	assert.Equal(t, []string{"c", "d", "e"}, cellTexts(rows[1].(*ast.TableRow)))
}

func TestSimpleTableHeadRows(t *testing.T) {
	input := "=====  =====\n" +
		"A      B\n" +
		"-----  -----\n" +
		"C      D\n" +
		"=====  =====\n" +
		"1      2\n" +
		"=====  =====\n"
	doc, diags := parseText(t, input)
	assert.Empty(t, diags)
	table := doc.Children()[0].(*ast.Table)
	require.NotNil(t, table.Head())
	head := table.Head().Children()
	require.Len(t, head, 2)
	assert.Equal(t, []string{"A", "B"}, cellTexts(head[0].(*ast.TableRow)))
	assert.Equal(t, []string{"C", "D"}, cellTexts(head[1].(*ast.TableRow)))
	require.Len(t, table.Body().Children(), 1)
	assert.Equal(t, []string{"1", "2"}, cellTexts(table.Body().Children()[0].(*ast.TableRow)))
}

func TestSimpleTableEmptyCellSpan(t *testing.T) {
	input := "=====  =====  =====\n" +
		"1             3\n" +
		"4      5      6\n" +
		"=====  =====  =====\n"
	doc, diags := parseText(t, input)
	assert.Empty(t, diags)
	rows := doc.Children()[0].(*ast.Table).Body().Children()
	require.Len(t, rows, 2)
	first := rows[0].(*ast.TableRow).Cells()
	require.Len(t, first, 2)
	assert.Equal(t, "1", ast.TextOf(first[0]))
	assert.Equal(t, 2, first[0].Colspan)
	assert.Equal(t, 1, first[1].Colspan)
	assert.Equal(t, []string{"4", "5", "6"}, cellTexts(rows[1].(*ast.TableRow)))
}

func TestGridTableHead(t *testing.T) {
	input := "+-----+-----+\n" +
		"| A   | B   |\n" +
		"+=====+=====+\n" +
		"| 1   | 2   |\n" +
		"+-----+-----+\n"
	doc, diags := parseText(t, input)
	assert.Empty(t, diags)
	table := doc.Children()[0].(*ast.Table)
	require.NotNil(t, table.Head())
	head := table.Head().Children()
	require.Len(t, head, 1)
	assert.Equal(t, []string{"A", "B"}, cellTexts(head[0].(*ast.TableRow)))
	body := table.Body().Children()
	require.Len(t, body, 1)
	assert.Equal(t, []string{"1", "2"}, cellTexts(body[0].(*ast.TableRow)))
}

func TestGridTableRowspan(t *testing.T) {
	input := "+-----+-----+\n" +
		"| a   | b   |\n" +
		"+     +-----+\n" +
		"|     | c   |\n" +
		"+-----+-----+\n"
	doc, _ := parseText(t, input)
	rows := doc.Children()[0].(*ast.Table).Body().Children()
	require.Len(t, rows, 2)
	first := rows[0].(*ast.TableRow).Cells()
	require.Len(t, first, 2)
	assert.Equal(t, "a", ast.TextOf(first[0]))
	assert.Equal(t, 2, first[0].Rowspan)
	assert.Equal(t, 1, first[0].Colspan)
	assert.Equal(t, 1, first[1].Rowspan)
	assert.Equal(t, []string{"c"}, cellTexts(rows[1].(*ast.TableRow)))
}

func TestGridTableWideColspan(t *testing.T) {
	input := "+---+---+---+\n" +
		"| a         |\n" +
		"+---+---+---+\n" +
		"| b | c | d |\n" +
		"+---+---+---+\n"
	doc, _ := parseText(t, input)
	rows := doc.Children()[0].(*ast.Table).Body().Children()
	require.Len(t, rows, 2)
	first := rows[0].(*ast.TableRow).Cells()
	require.Len(t, first, 1)
	assert.Equal(t, "a", ast.TextOf(first[0]))
	assert.Equal(t, 3, first[0].Colspan)
	assert.Equal(t, []string{"b", "c", "d"}, cellTexts(rows[1].(*ast.TableRow)))
}

func TestGridTableBorderAfterSpan(t *testing.T) {
	// The full border below "c" starts one new row for all columns.
	input := "+---+---+---+\n" +
		"| a     | b |\n" +
		"+       +---+\n" +
		"|       | c |\n" +
		"+---+---+---+\n" +
		"| d | e | f |\n" +
		"+---+---+---+\n"
	doc, _ := parseText(t, input)
	rows := doc.Children()[0].(*ast.Table).Body().Children()
	require.Len(t, rows, 3)
	first := rows[0].(*ast.TableRow).Cells()
	require.Len(t, first, 2)
	assert.Equal(t, 2, first[0].Rowspan)
	assert.Equal(t, 2, first[0].Colspan)
	assert.Equal(t, []string{"a", "b"}, cellTexts(rows[0].(*ast.TableRow)))
	assert.Equal(t, []string{"c"}, cellTexts(rows[1].(*ast.TableRow)))
	assert.Equal(t, []string{"d", "e", "f"}, cellTexts(rows[2].(*ast.TableRow)))
}
