// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import "strings"

// DefaultShortDirectives are the directives that never own an indented body.
var DefaultShortDirectives = []string{"note", "notice", "warning", "danger", "image"}

// options are shared by a parser and all parsers reentered for nested
// content. They are not modified after New.
type options struct {
	reporter        Reporter
	shortDirectives map[string]bool
}

// An Option configures a Parser.
type Option func(*options)

// WithReporter sets the reporter receiving the diagnostics.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		if r != nil {
			o.reporter = r
		}
	}
}

// WithShortDirectives replaces the list of short directives. Identifiers
// are compared in lower case.
func WithShortDirectives(ids ...string) Option {
	return func(o *options) {
		o.shortDirectives = make(map[string]bool, len(ids))
		for _, id := range ids {
			o.shortDirectives[strings.ToLower(id)] = true
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{reporter: traceReporter{}}
	WithShortDirectives(DefaultShortDirectives...)(o)
	for _, opt := range opts {
		opt(o)
	}
	return o
}
