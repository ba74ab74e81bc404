// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import (
	"testing"

	"github.com/matthewdargan/rstdoc/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func text(s string) *Text {
	return NewText(scan.Token{Type: scan.TextLine, Text: s})
}

func sampleTree() *Document {
	title := NewTitle(scan.Token{Type: scan.TextLine, Text: "Hi", Line: 1})
	title.Adornment = "="
	s := NewSection(title, 1)
	p := NewParagraph(scan.Token{Line: 4})
	m := NewMarkup(scan.Token{Text: "*"}, MarkupEmphasis, false)
	m.Append(text("b"))
	p.Append(text("a "), m)
	s.Append(p)
	doc := NewDocument(scan.Token{})
	doc.Append(s)
	return doc
}

func TestDump(t *testing.T) {
	want := `Document
  Section depth="1"
    Title adornment="=" "Hi"
    Paragraph indent="0"
      Text "a "
      Markup variant="emphasis"
        Text "b"
`
	assert.Equal(t, want, String(sampleTree()))
}

func TestTextOf(t *testing.T) {
	assert.Equal(t, "Hia b", TextOf(sampleTree()))
}

func TestMarshalYAML(t *testing.T) {
	b, err := MarshalYAML(sampleTree())
	require.NoError(t, err)
	var got struct {
		Type     string
		Children []struct {
			Type     string
			Line     int
			Attrs    map[string]string
			Children []struct {
				Type string
				Text string
			}
		}
	}
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, "Document", got.Type)
	require.Len(t, got.Children, 1)
	s := got.Children[0]
	assert.Equal(t, "Section", s.Type)
	assert.Equal(t, 1, s.Line)
	assert.Equal(t, "1", s.Attrs["depth"])
	require.Len(t, s.Children, 2)
	assert.Equal(t, "Title", s.Children[0].Type)
	assert.Equal(t, "Hi", s.Children[0].Text)
	assert.Equal(t, "Paragraph", s.Children[1].Type)
}

func TestIsInline(t *testing.T) {
	assert.True(t, IsInline(NodeMarkup))
	assert.False(t, IsInline(NodeParagraph))
	assert.Equal(t, "NodeType(99)", NodeType(99).String())
}
