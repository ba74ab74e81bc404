// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import "testing"

var enumTests = []struct {
	s    string
	last enum
	want enum
	ok   bool
}{
	{"1", enum{}, enum{typ: arabic, val: 1}, true},
	{"12", enum{}, enum{typ: arabic, val: 12}, true},
	{"a", enum{}, enum{typ: lowerAlpha, val: 1}, true},
	{"B", enum{}, enum{typ: upperAlpha, val: 2}, true},
	{"i", enum{}, enum{typ: lowerRoman, val: 1}, true},
	{"IV", enum{}, enum{typ: upperRoman, val: 4}, true},
	{"v", enum{}, enum{typ: lowerAlpha, val: 22}, true},
	{"v", enum{typ: lowerRoman, val: 4}, enum{typ: lowerRoman, val: 5}, true},
	{"#", enum{}, enum{typ: arabic, val: 1, auto: true}, true},
	{"#", enum{typ: upperAlpha, val: 3}, enum{typ: upperAlpha, val: 4, auto: true}, true},
	{"0", enum{}, enum{}, false},
	{"1a", enum{}, enum{}, false},
	{"ab", enum{}, enum{}, false},
	{"iI", enum{}, enum{}, false},
	{"é", enum{}, enum{}, false},
}

func TestParseEnum(t *testing.T) {
	for _, test := range enumTests {
		got, ok := parseEnum(test.s, test.last)
		if ok != test.ok {
			t.Errorf("parseEnum(%q, %v) ok = %t, want %t", test.s, test.last, ok, test.ok)
			continue
		}
		if ok && got != test.want {
			t.Errorf("parseEnum(%q, %v) = %+v, want %+v", test.s, test.last, got, test.want)
		}
	}
}

func TestParseRoman(t *testing.T) {
	tests := map[string]int{
		"i":       1,
		"iv":      4,
		"IX":      9,
		"XLII":    42,
		"MCMXCIV": 1994,
	}
	for s, want := range tests {
		if got, ok := parseRoman(s); !ok || got != want {
			t.Errorf("parseRoman(%q) = %d, %t, want %d", s, got, ok, want)
		}
	}
	for _, s := range []string{"", "IIII", "VX", "Mx"} {
		if _, ok := parseRoman(s); ok {
			t.Errorf("parseRoman(%q) succeeded", s)
		}
	}
}
