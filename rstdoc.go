// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rstdoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/matthewdargan/rstdoc/ast"
	"github.com/matthewdargan/rstdoc/parse"
	"github.com/matthewdargan/rstdoc/scan"
)

// Parse reads the document named name from r and returns its tree.
func Parse(name string, r io.Reader, opts ...parse.Option) (*ast.Document, error) {
	toks, err := scan.New(name, r).All()
	if err != nil {
		return nil, fmt.Errorf("rstdoc: %w", err)
	}
	return parse.New(opts...).Parse(toks)
}

// ParseString is like Parse but reads from text.
func ParseString(name, text string, opts ...parse.Option) (*ast.Document, error) {
	return Parse(name, strings.NewReader(text), opts...)
}
