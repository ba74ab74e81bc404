// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"github.com/matthewdargan/rstdoc/scan"
)

// queue holds the tokens not yet shifted. It owns a copy of the input, so
// rules may edit the queued tokens in place.
type queue struct {
	toks []scan.Token
	pos  int // index of the next token
}

func newQueue(toks []scan.Token) *queue {
	return &queue{toks: append([]scan.Token(nil), toks...)}
}

// len returns the number of tokens left.
func (q *queue) len() int {
	return len(q.toks) - q.pos
}

// next returns and consumes the next token. After the end of the queue it
// returns the zero token, which is of type EOF.
func (q *queue) next() scan.Token {
	if q.pos >= len(q.toks) {
		return scan.Token{}
	}
	t := q.toks[q.pos]
	q.pos++
	return t
}

// peek returns but does not consume the i-th next token.
func (q *queue) peek(i int) scan.Token {
	if t := q.at(i); t != nil {
		return *t
	}
	return scan.Token{}
}

// at returns the i-th next token for modification, or nil.
func (q *queue) at(i int) *scan.Token {
	if i < 0 || q.pos+i >= len(q.toks) {
		return nil
	}
	return &q.toks[q.pos+i]
}

// is reports whether the i-th next token has type typ and, if text is not
// empty, the given text.
func (q *queue) is(i int, typ scan.Type, text string) bool {
	t := q.at(i)
	return t != nil && t.Type == typ && (text == "" || t.Text == text)
}

// skip consumes n tokens.
func (q *queue) skip(n int) {
	q.pos += n
	if q.pos > len(q.toks) {
		q.pos = len(q.toks)
	}
}

// backup puts toks in front of the queue, keeping their order.
func (q *queue) backup(toks ...scan.Token) {
	if len(toks) <= q.pos {
		q.pos -= len(toks)
		copy(q.toks[q.pos:], toks)
		return
	}
	rest := append(append([]scan.Token(nil), toks...), q.toks[q.pos:]...)
	q.toks = rest
	q.pos = 0
}

// line consumes the tokens up to and including the next newline. It
// never consumes EOF.
func (q *queue) line() []scan.Token {
	var toks []scan.Token
	for q.len() > 0 && q.peek(0).Type != scan.EOF {
		t := q.next()
		toks = append(toks, t)
		if t.Type == scan.Newline {
			break
		}
	}
	return toks
}
