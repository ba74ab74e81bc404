// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"strings"
	"testing"
)

type scanTest struct {
	name  string
	input string
	items []Token
}

func item(typ Type, text string) Token {
	return Token{Type: typ, Text: text}
}

func itemAt(typ Type, text string, line, pos int) Token {
	return Token{Type: typ, Text: text, Line: line, Pos: pos}
}

var (
	tEOF     = item(EOF, "")
	tNewline = item(Newline, "\n")
	tSpace   = item(Whitespace, " ")
	tSpace2  = item(Whitespace, "  ")
)

var scanTests = []scanTest{
	{"empty", "", []Token{tEOF}},
	{"blanks", " \t\n", []Token{tNewline, tEOF}},
	{"text", `now is the time`, []Token{item(TextLine, "now is the time"), tNewline, tNewline, tEOF}},
	{
		"blank runs split text",
		"a  b\tc\n",
		[]Token{
			item(TextLine, "a"), tSpace2, item(TextLine, "b"), item(Whitespace, "    "),
			item(TextLine, "c"), tNewline, tNewline, tEOF,
		},
	},
	{
		"strong",
		"**strong**",
		[]Token{
			item(SpecialChars, "**"), item(TextLine, "strong"), item(SpecialChars, "**"),
			tNewline, tNewline, tEOF,
		},
	},
	{
		"escape",
		`\*x`,
		[]Token{item(Backslash, `\`), item(SpecialChars, "*"), item(TextLine, "x"), tNewline, tNewline, tEOF},
	},
	{
		"trailing blanks",
		"a   \n\nb",
		[]Token{item(TextLine, "a"), tNewline, tNewline, item(TextLine, "b"), tNewline, tNewline, tEOF},
	},
	{
		"enumerator",
		"1. one",
		[]Token{item(TextLine, "1"), item(SpecialChars, "."), tSpace, item(TextLine, "one"), tNewline, tNewline, tEOF},
	},
	{
		"bullet",
		"• item",
		[]Token{item(SpecialChars, "•"), tSpace, item(TextLine, "item"), tNewline, tNewline, tEOF},
	},
	{
		"comment",
		".. A comment\n",
		[]Token{item(SpecialChars, ".."), tSpace, item(TextLine, "A comment"), tNewline, tNewline, tEOF},
	},
	{
		"directive",
		".. code-block:: go",
		[]Token{
			item(SpecialChars, ".."), tSpace, item(TextLine, "code"), item(SpecialChars, "-"),
			item(TextLine, "block"), item(SpecialChars, "::"), tSpace, item(TextLine, "go"),
			tNewline, tNewline, tEOF,
		},
	},
	{
		"simple table row",
		"A      B",
		[]Token{item(TextLine, "A"), item(Whitespace, "      "), item(TextLine, "B"), tNewline, tNewline, tEOF},
	},
	{
		"grid table border",
		"+---+\n",
		[]Token{
			item(SpecialChars, "+"), item(SpecialChars, "---"), item(SpecialChars, "+"),
			tNewline, tNewline, tEOF,
		},
	},
	{"mixed punctuation", "*-", []Token{item(SpecialChars, "*"), item(SpecialChars, "-"), tNewline, tNewline, tEOF}},
	{"normalized", "e\u0301", []Token{item(TextLine, "\u00e9"), tNewline, tNewline, tEOF}},
	{"blank line at end", "a\n\n", []Token{item(TextLine, "a"), tNewline, tNewline, tEOF}},
}

// collect gathers the emitted items into a slice.
func collect(t *scanTest) (items []Token) {
	s := New(t.name, strings.NewReader(t.input))
	for {
		i := s.Next()
		items = append(items, i)
		if i.Type == EOF || i.Type == Error {
			break
		}
	}
	return
}

func equal(i1, i2 []Token, checkPos bool) bool {
	if len(i1) != len(i2) {
		return false
	}
	for k := range i1 {
		if i1[k].Type != i2[k].Type {
			return false
		}
		if i1[k].Text != i2[k].Text {
			return false
		}
		if checkPos && (i1[k].Line != i2[k].Line || i1[k].Pos != i2[k].Pos) {
			return false
		}
	}
	return true
}

func TestScan(t *testing.T) {
	for _, test := range scanTests {
		items := collect(&test)
		if !equal(items, test.items, false) {
			t.Fatalf("%s: got\n\t%+v\nexpected\n\t%v", test.name, items, test.items)
		}
	}
}

func TestPositions(t *testing.T) {
	test := scanTest{
		"positions",
		"ab  c\n  d",
		[]Token{
			itemAt(TextLine, "ab", 1, 1), itemAt(Whitespace, "  ", 1, 3), itemAt(TextLine, "c", 1, 5),
			itemAt(Newline, "\n", 1, 6), itemAt(Whitespace, "  ", 2, 1), itemAt(TextLine, "d", 2, 3),
			itemAt(Newline, "\n", 2, 4), itemAt(Newline, "\n", 3, 1), itemAt(EOF, "", 4, 1),
		},
	}
	items := collect(&test)
	if !equal(items, test.items, true) {
		t.Fatalf("%s: got\n\t%+v\nexpected\n\t%v", test.name, items, test.items)
	}
}

func TestTabWidth(t *testing.T) {
	s := New("tabs", strings.NewReader("\tx"))
	s.SetTabWidth(4)
	items, err := s.All()
	if err != nil {
		t.Fatal(err)
	}
	expected := []Token{
		itemAt(Whitespace, "    ", 1, 1), itemAt(TextLine, "x", 1, 5),
		itemAt(Newline, "\n", 1, 6), itemAt(Newline, "\n", 2, 1), itemAt(EOF, "", 3, 1),
	}
	if !equal(items, expected, true) {
		t.Fatalf("tabs: got\n\t%+v\nexpected\n\t%v", items, expected)
	}
}
