// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import "fmt"

// NodeType identifies the type of a tree node.
type NodeType int

// Type returns itself and provides an easy default implementation
// for embedding in a Node. Embedded in all non-trivial Nodes.
func (t NodeType) Type() NodeType {
	return t
}

const (
	NodeDocument NodeType = iota // root of a tree
	NodeSection                  // titled section
	NodeTitle                    // section title or pending adornment line
	NodeText                     // plain text
	NodeParagraph
	NodeBlockquote
	NodeAnnotation // attribution of a block quote
	NodeTransition
	NodeComment
	NodeLiteralBlock
	NodeLiteral // raw text inside literal blocks, comments and directives
	NodeLineBlock
	NodeLineBlockLine
	NodeBulletList
	NodeEnumeratedList
	NodeListItem
	NodeDefinitionList
	NodeDefinitionListItem
	NodeFieldList
	NodeFieldListItem
	NodeTable
	NodeTableHead
	NodeTableBody
	NodeTableRow
	NodeTableCell
	NodeDirective
	NodeSubstitution       // substitution definition
	NodeNamedReference     // named hyperlink target
	NodeAnonymousReference // anonymous hyperlink target
	NodeFootnote
	NodeMarkup            // emphasis, strong, interpreted text, inline literal, substitution reference
	NodeReference         // footnote reference
	NodeExternalReference // named hyperlink reference
	NodeAnonymousLink     // anonymous hyperlink reference
	NodeTarget            // inline internal target
)

var nodeNames = [...]string{
	NodeDocument:           "Document",
	NodeSection:            "Section",
	NodeTitle:              "Title",
	NodeText:               "Text",
	NodeParagraph:          "Paragraph",
	NodeBlockquote:         "Blockquote",
	NodeAnnotation:         "Annotation",
	NodeTransition:         "Transition",
	NodeComment:            "Comment",
	NodeLiteralBlock:       "LiteralBlock",
	NodeLiteral:            "Literal",
	NodeLineBlock:          "LineBlock",
	NodeLineBlockLine:      "LineBlockLine",
	NodeBulletList:         "BulletList",
	NodeEnumeratedList:     "EnumeratedList",
	NodeListItem:           "ListItem",
	NodeDefinitionList:     "DefinitionList",
	NodeDefinitionListItem: "DefinitionListItem",
	NodeFieldList:          "FieldList",
	NodeFieldListItem:      "FieldListItem",
	NodeTable:              "Table",
	NodeTableHead:          "TableHead",
	NodeTableBody:          "TableBody",
	NodeTableRow:           "TableRow",
	NodeTableCell:          "TableCell",
	NodeDirective:          "Directive",
	NodeSubstitution:       "Substitution",
	NodeNamedReference:     "NamedReference",
	NodeAnonymousReference: "AnonymousReference",
	NodeFootnote:           "Footnote",
	NodeMarkup:             "Markup",
	NodeReference:          "Reference",
	NodeExternalReference:  "ExternalReference",
	NodeAnonymousLink:      "AnonymousLink",
	NodeTarget:             "Target",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeNames) {
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
	return nodeNames[t]
}

// Variant distinguishes the kinds of inline markup.
type Variant int

const (
	MarkupEmphasis Variant = iota
	MarkupStrong
	MarkupInterpreted
	MarkupLiteral
	MarkupSubstitution
)

var variantNames = [...]string{
	MarkupEmphasis:     "emphasis",
	MarkupStrong:       "strong",
	MarkupInterpreted:  "interpreted",
	MarkupLiteral:      "literal",
	MarkupSubstitution: "substitution",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}
