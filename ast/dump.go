// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

type attr struct {
	key, val string
}

// attributes returns the type specific fields of n in a fixed order.
func attributes(n Node) []attr {
	var as []attr
	add := func(k string, v any) {
		as = append(as, attr{k, fmt.Sprint(v)})
	}
	switch n := n.(type) {
	case *Section:
		add("depth", n.Depth)
	case *Title:
		if n.Adornment != "" {
			add("adornment", n.Adornment)
		}
	case *Paragraph:
		add("indent", n.Indentation)
	case *Blockquote:
		add("indent", n.Indentation)
		if n.Closed {
			add("closed", true)
		}
	case *LineBlock:
		add("indent", n.Indentation)
	case *BulletList:
		add("indent", n.Indentation)
	case *EnumeratedList:
		add("indent", n.Indentation)
		add("enumerator", n.Tok.Text)
		if n.Enumeration != "" {
			add("enumeration", n.Enumeration)
		}
	case *DefinitionListItem:
		add("term", n.TermText())
	case *FieldListItem:
		add("name", n.NameText())
	case *TableCell:
		if n.Colspan != 1 {
			add("colspan", n.Colspan)
		}
		if n.Rowspan != 1 {
			add("rowspan", n.Rowspan)
		}
	case *Directive:
		add("identifier", n.Identifier)
		if n.Parameters != "" {
			add("parameters", n.Parameters)
		}
		keys := make([]string, 0, len(n.Options))
		for k := range n.Options {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			add(":"+k, n.Options[k])
		}
	case *Substitution:
		add("name", n.NameText())
	case *NamedReference:
		add("name", n.NameText())
	case *Footnote:
		add("name", n.NameText())
	case *Markup:
		add("variant", n.Variant)
		if n.Open {
			add("open", true)
		}
	}
	return as
}

// leafText returns the text of nodes printed without children.
func leafText(n Node) (string, bool) {
	switch n := n.(type) {
	case *Text:
		return n.Text(), true
	case *Literal:
		return n.Text(), true
	case *Title:
		return n.Text(), true
	}
	return "", false
}

// Dump writes an indented outline of the tree rooted at n to w.
func Dump(w io.Writer, n Node) error {
	bw := bufio.NewWriter(w)
	dump(bw, n, 0)
	return bw.Flush()
}

func dump(w *bufio.Writer, n Node, depth int) {
	w.WriteString(strings.Repeat("  ", depth))
	w.WriteString(n.Type().String())
	for _, a := range attributes(n) {
		fmt.Fprintf(w, " %s=%s", a.key, strconv.Quote(a.val))
	}
	if s, ok := leafText(n); ok {
		fmt.Fprintf(w, " %q", s)
	}
	w.WriteByte('\n')
	if b, ok := n.(*Blockquote); ok && b.Annotation != nil {
		dump(w, b.Annotation, depth+1)
	}
	for _, c := range n.Children() {
		dump(w, c, depth+1)
	}
}

// String returns the outline of the tree rooted at n.
func String(n Node) string {
	var b strings.Builder
	Dump(&b, n)
	return b.String()
}
