// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type enumType int

const (
	none enumType = iota
	arabic
	upperAlpha
	lowerAlpha
	upperRoman
	lowerRoman
)

func (t enumType) String() string {
	switch t {
	case arabic:
		return "arabic"
	case upperAlpha:
		return "upperalpha"
	case lowerAlpha:
		return "loweralpha"
	case upperRoman:
		return "upperroman"
	case lowerRoman:
		return "lowerroman"
	}
	return ""
}

type enum struct {
	typ  enumType
	val  int
	auto bool
}

const (
	roman          = "Ii"
	ambiguousRoman = "VXLCDMvxlcdm"
)

// parseEnum interprets the text of an enumerator. Letters that are roman
// numerals only count as such after a roman enumerator; "#" continues the
// previous enumeration.
func parseEnum(s string, last enum) (enum, bool) {
	var e enum
	r, size := utf8.DecodeRuneInString(s)
	switch {
	case s == "#":
		e = enum{typ: last.typ, val: last.val + 1, auto: true}
		if e.typ == none {
			e.typ = arabic
		}
	case r >= '1' && r <= '9':
		n, err := strconv.Atoi(s)
		if err != nil {
			return e, false
		}
		e = enum{typ: arabic, val: n}
	case r < unicode.MaxASCII && unicode.IsLetter(r):
		switch {
		case isRoman(r, last) || size < len(s):
			n, ok := parseRoman(s)
			if !ok {
				return e, false
			}
			e = enum{typ: upperRoman, val: n}
			if unicode.IsLower(r) {
				e.typ = lowerRoman
			}
		default:
			e = enum{typ: upperAlpha, val: int(unicode.ToLower(r)-'a') + 1}
			if unicode.IsLower(r) {
				e.typ = lowerAlpha
			}
		}
	default:
		return e, false
	}
	return e, true
}

// isEnumerator reports whether s is an enumerator regardless of context.
func isEnumerator(s string) bool {
	_, ok := parseEnum(s, enum{})
	return ok
}

// isRoman reports whether r is a roman numeral.
func isRoman(r rune, last enum) bool {
	switch {
	case strings.ContainsRune(roman, r):
		return true
	case strings.ContainsRune(ambiguousRoman, r):
		return last.typ == upperRoman || last.typ == lowerRoman
	}
	return false
}

var (
	nums       = map[rune]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}
	numPattern = regexp.MustCompile("^M{0,4}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$")
)

// parseRoman converts a roman numeral to an integer. The numeral is
// either all upper or all lower case.
func parseRoman(s string) (int, bool) {
	if s == "" || (strings.ToUpper(s) != s && strings.ToLower(s) != s) {
		return 0, false
	}
	s = strings.ToUpper(s)
	if !numPattern.MatchString(s) {
		return 0, false
	}
	var sum, prev int
	for i := len(s) - 1; i >= 0; i-- {
		n := nums[rune(s[i])]
		if n < prev {
			sum -= n
		} else {
			sum += n
		}
		prev = n
	}
	return sum, true
}
