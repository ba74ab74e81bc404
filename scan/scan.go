// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan lexically analyzes reStructuredText.
//
// The scanner splits its input into whitespace, newlines, backslashes,
// runs of one repeated punctuation character and text. It never decides
// about markup; this is left to the parser, which needs the exact columns
// of all tokens.
package scan

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type    Type   // The type of this item.
	Line    int    // The line number on which this token appears.
	Pos     int    // The column, in runes, at which this token starts; the first column is 1.
	Text    string // The text of this item.
	Escaped bool   // Escaped reports whether the text was escaped by a backslash.
}

//go:generate stringer -type Type

// Type identifies the type of lex items.
type Type int

const (
	EOF          Type = iota // EOF indicates the end of input
	Error                    // Error occurred; value is text of error
	Whitespace               // Whitespace is a run of blanks, tabs expanded to spaces
	Newline                  // Newline ends a line
	Backslash                // Backslash escapes the following token
	SpecialChars             // SpecialChars is a run of one repeated punctuation character
	TextLine                 // TextLine is a run of words separated by single spaces
)

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// DefaultTabWidth is the distance of tab stops.
const DefaultTabWidth = 8

// specials are the characters forming SpecialChars tokens. The backslash
// is missing on purpose, it always is a token of its own.
const specials = "!\"#$%&'()*+,-./:;<=>?@[]^_`{|}~•‣⁃—"

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	r         io.ByteReader // reads input bytes
	done      bool          // are we done scanning?
	name      string        // name of the input; used only for error reports
	buf       []byte        // I/O buffer, re-used
	input     string        // line of text being scanned
	lastRune  rune          // most recent return from next()
	lastWidth int           // size of that rune
	line      int           // line number in input
	col       int           // column of the start position
	pos       int           // current position in the input
	start     int           // start position of this item
	token     Token         // token to return to parser
	tabWidth  int           // distance of tab stops
	content   bool          // current line holds a non-blank token
	blank     bool          // most recent line was blank
	emitted   bool          // any token was emitted
}

// loadLine reads the next line of input and stores it in (appends it to) the input.
// (l.input may have data left over when we are called.)
// It strips carriage returns to make subsequent processing simpler.
func (l *Scanner) loadLine() {
	l.buf = l.buf[:0]
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			l.done = true
			break
		}
		if c != '\r' { // There will never be a \r in l.input.
			l.buf = append(l.buf, c)
		}
		if c == '\n' {
			break
		}
	}
	// Reset to beginning of input buffer if there is nothing pending.
	if l.start == l.pos {
		l.input = string(l.buf)
		l.start = 0
		l.pos = 0
	} else {
		l.input += string(l.buf)
	}
}

// readRune reads the next rune from the input.
func (l *Scanner) readRune() (rune, int) {
	if !l.done && l.pos == len(l.input) {
		l.loadLine()
	}
	if len(l.input) == l.pos {
		return eof, 0
	}
	return utf8.DecodeRuneInString(l.input[l.pos:])
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	l.lastRune, l.lastWidth = l.readRune()
	l.pos += l.lastWidth
	return l.lastRune
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r, _ := l.readRune()
	return r
}

// peekSecond returns the rune following the next one. Lines are loaded as
// a whole, so it never needs to read input.
func (l *Scanner) peekSecond() rune {
	_, w := l.readRune()
	if l.pos+w >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos+w:])
	return r
}

// advance moves the column over text, honoring tab stops.
func (l *Scanner) advance(text string) {
	for _, r := range text {
		if r == '\t' {
			l.col = ((l.col-1)/l.tabWidth+1)*l.tabWidth + 1
			continue
		}
		l.col++
	}
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	text := l.input[l.start:l.pos]
	col := l.col
	l.advance(text)
	if t == Whitespace {
		text = strings.Repeat(" ", l.col-col)
	}
	l.token = Token{Type: t, Line: l.line, Pos: col, Text: text}
	l.start = l.pos
	l.emitted = true
	switch t {
	case Newline:
		l.endLine()
	case Whitespace:
	default:
		l.content = true
	}
	return nil
}

// emitNewline passes a newline not present in the input back to the client.
func (l *Scanner) emitNewline() stateFn {
	l.token = Token{Type: Newline, Line: l.line, Pos: l.col, Text: "\n"}
	l.endLine()
	return nil
}

func (l *Scanner) endLine() {
	l.blank = !l.content
	l.content = false
	l.line++
	l.col = 1
}

// ignore skips over the pending input before this point.
func (l *Scanner) ignore() {
	l.advance(l.input[l.start:l.pos])
	l.start = l.pos
}

// errorf returns an error token and empties the input.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Type: Error, Line: l.line, Pos: l.col, Text: fmt.Sprintf(format, args...)}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}

// New creates and returns a new scanner. The input is normalized to NFC.
func New(name string, r io.Reader) *Scanner {
	return &Scanner{
		r:        bufio.NewReader(norm.NFC.Reader(r)),
		name:     name,
		line:     1,
		col:      1,
		tabWidth: DefaultTabWidth,
	}
}

// SetTabWidth sets the distance of tab stops used to expand tabs.
func (l *Scanner) SetTabWidth(n int) {
	if n > 0 {
		l.tabWidth = n
	}
}

// Next returns the next token. The last line of the input is always
// followed by a blank line before EOF is returned.
func (l *Scanner) Next() Token {
	l.lastRune = eof
	l.lastWidth = 0
	l.token = Token{Type: EOF, Line: l.line, Pos: l.col}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

// All returns the tokens up to and including EOF.
func (l *Scanner) All() ([]Token, error) {
	var toks []Token
	for {
		t := l.Next()
		if t.Type == Error {
			return toks, fmt.Errorf("%s:%d:%d: %s", l.name, t.Line, t.Pos, t.Text)
		}
		toks = append(toks, t)
		if t.Type == EOF {
			return toks, nil
		}
	}
}

// lexAny scans the next item.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return lexEOF
	case r == utf8.RuneError && l.lastWidth == 1:
		return l.errorf("invalid UTF-8 encoding")
	case r == '\n':
		return l.emit(Newline)
	case isBlank(r):
		return lexSpace
	case r == '\\':
		return l.emit(Backslash)
	case isSpecial(r):
		return lexSpecial
	default:
		return lexText
	}
}

// lexEOF closes the last line and adds a blank line if necessary.
func lexEOF(l *Scanner) stateFn {
	if l.content || (l.emitted && !l.blank) {
		return l.emitNewline()
	}
	l.token = Token{Type: EOF, Line: l.line, Pos: l.col}
	return nil
}

// lexSpace scans a run of blanks. Trailing blanks are dropped.
func lexSpace(l *Scanner) stateFn {
	for isBlank(l.peek()) {
		l.next()
	}
	if r := l.peek(); r == '\n' || r == eof {
		l.ignore()
		return lexAny
	}
	return l.emit(Whitespace)
}

// lexSpecial scans a run of the punctuation character just read.
func lexSpecial(l *Scanner) stateFn {
	r := l.lastRune
	for l.peek() == r {
		l.next()
	}
	return l.emit(SpecialChars)
}

// lexText scans words separated by single spaces.
func lexText(l *Scanner) stateFn {
	for {
		r, w := l.readRune()
		switch {
		case r == utf8.RuneError && w == 1:
			return l.emit(TextLine)
		case isText(r):
			l.next()
		case r == ' ' && isText(l.peekSecond()):
			l.next()
		default:
			return l.emit(TextLine)
		}
	}
}

func isBlank(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f':
		return true
	}
	return false
}

func isSpecial(r rune) bool {
	return strings.ContainsRune(specials, r)
}

func isText(r rune) bool {
	return r != eof && r != '\n' && r != '\\' && !isBlank(r) && !isSpecial(r)
}
