// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import (
	"strings"

	"github.com/matthewdargan/rstdoc/scan"
)

// A Node is an element in the parse tree.
type Node interface {
	Type() NodeType
	// Token returns the token the node was created from.
	Token() scan.Token
	Children() []Node
	Append(nodes ...Node)
	SetChildren(nodes []Node)
}

// Indenter is implemented by nodes grouped by their indentation.
type Indenter interface {
	Node
	Indent() int
}

// Base is embedded by all nodes.
type Base struct {
	NodeType
	Tok   scan.Token
	Nodes []Node
}

func (b *Base) Token() scan.Token {
	return b.Tok
}

func (b *Base) Children() []Node {
	return b.Nodes
}

func (b *Base) Append(nodes ...Node) {
	b.Nodes = append(b.Nodes, nodes...)
}

func (b *Base) SetChildren(nodes []Node) {
	b.Nodes = nodes
}

// Document is the root of a tree.
type Document struct {
	Base
}

func NewDocument(tok scan.Token) *Document {
	return &Document{Base{NodeType: NodeDocument, Tok: tok}}
}

// Section holds a title and the body up to the next title of the same or
// a higher level. Depth starts at 1.
type Section struct {
	Base
	Depth int
}

// NewSection returns a section of the given depth whose first child is title.
func NewSection(title *Title, depth int) *Section {
	return &Section{Base{NodeType: NodeSection, Tok: title.Tok, Nodes: []Node{title}}, depth}
}

// Title returns the title of the section.
func (s *Section) Title() *Title {
	if len(s.Nodes) == 0 {
		return nil
	}
	t, _ := s.Nodes[0].(*Title)
	return t
}

// Title is either the text of a section title or, while parsing, an
// adornment line waiting for its title text.
type Title struct {
	Base
	Adornment string // adornment characters, overline first
}

func NewTitle(tok scan.Token) *Title {
	return &Title{Base: Base{NodeType: NodeTitle, Tok: tok}}
}

func (t *Title) Text() string {
	return t.Tok.Text
}

// Text holds plain text.
type Text struct {
	Base
}

func NewText(tok scan.Token) *Text {
	return &Text{Base{NodeType: NodeText, Tok: tok}}
}

func (t *Text) Text() string {
	return t.Tok.Text
}

// Paragraph holds the inline nodes of a paragraph.
type Paragraph struct {
	Base
	Indentation int
}

func NewParagraph(tok scan.Token) *Paragraph {
	return &Paragraph{Base: Base{NodeType: NodeParagraph, Tok: tok}}
}

func (p *Paragraph) Indent() int {
	return p.Indentation
}

// Blockquote holds indented paragraphs. A closed block quote got its
// annotation and accepts no further paragraphs.
type Blockquote struct {
	Base
	Indentation int
	Closed      bool
	Annotation  *Annotation
}

func NewBlockquote(tok scan.Token, indentation int) *Blockquote {
	return &Blockquote{Base: Base{NodeType: NodeBlockquote, Tok: tok}, Indentation: indentation}
}

func (b *Blockquote) Indent() int {
	return b.Indentation
}

// Annotation is the attribution following a block quote.
type Annotation struct {
	Base
}

func NewAnnotation(tok scan.Token) *Annotation {
	return &Annotation{Base{NodeType: NodeAnnotation, Tok: tok}}
}

type Transition struct {
	Base
}

func NewTransition(tok scan.Token) *Transition {
	return &Transition{Base{NodeType: NodeTransition, Tok: tok}}
}

// Comment holds its text as Literal children.
type Comment struct {
	Base
}

func NewComment(tok scan.Token) *Comment {
	return &Comment{Base{NodeType: NodeComment, Tok: tok}}
}

func (c *Comment) Text() string {
	return TextOf(c)
}

// LiteralBlock holds preformatted text as Literal children. Indentation
// is the column of the text.
type LiteralBlock struct {
	Base
	Indentation int
}

func NewLiteralBlock(tok scan.Token, literals []Node) *LiteralBlock {
	return &LiteralBlock{Base: Base{NodeType: NodeLiteralBlock, Tok: tok, Nodes: literals}}
}

func (l *LiteralBlock) Indent() int {
	return l.Indentation
}

func (l *LiteralBlock) Text() string {
	return TextOf(l)
}

// Literal is a piece of raw text.
type Literal struct {
	Base
}

func NewLiteral(tok scan.Token) *Literal {
	return &Literal{Base{NodeType: NodeLiteral, Tok: tok}}
}

func (l *Literal) Text() string {
	return l.Tok.Text
}

// LineBlock holds LineBlockLine children.
type LineBlock struct {
	Base
	Indentation int
}

func NewLineBlock(tok scan.Token) *LineBlock {
	return &LineBlock{Base: Base{NodeType: NodeLineBlock, Tok: tok}}
}

func (l *LineBlock) Indent() int {
	return l.Indentation
}

type LineBlockLine struct {
	Base
}

func NewLineBlockLine(tok scan.Token, literals []Node) *LineBlockLine {
	return &LineBlockLine{Base{NodeType: NodeLineBlockLine, Tok: tok, Nodes: literals}}
}

// ListBase is embedded by bullet and enumerated lists. Its children are
// list items; body nodes go to the current, last item. Indentation is the
// column of the item bodies, not the one of the markers.
type ListBase struct {
	Base
	Indentation int
}

func (l *ListBase) Indent() int {
	return l.Indentation
}

// Marker returns the zero based column of the list markers.
func (l *ListBase) Marker() int {
	if l.Tok.Pos < 1 {
		return 0
	}
	return l.Tok.Pos - 1
}

// CurrentItem returns the last item of the list.
func (l *ListBase) CurrentItem() *ListItem {
	if len(l.Nodes) == 0 {
		return l.NewItem(l.Tok)
	}
	return l.Nodes[len(l.Nodes)-1].(*ListItem)
}

// NewItem appends an empty item and returns it.
func (l *ListBase) NewItem(tok scan.Token) *ListItem {
	item := &ListItem{Base{NodeType: NodeListItem, Tok: tok}}
	l.Nodes = append(l.Nodes, item)
	return item
}

// Items returns the items of the list.
func (l *ListBase) Items() []*ListItem {
	items := make([]*ListItem, 0, len(l.Nodes))
	for _, n := range l.Nodes {
		items = append(items, n.(*ListItem))
	}
	return items
}

// Lister is implemented by bullet and enumerated lists.
type Lister interface {
	Indenter
	Marker() int
	CurrentItem() *ListItem
	NewItem(tok scan.Token) *ListItem
}

type BulletList struct {
	ListBase
}

// NewBulletList returns a bullet list holding one empty item.
func NewBulletList(tok scan.Token, indentation int) *BulletList {
	l := &BulletList{ListBase{Base{NodeType: NodeBulletList, Tok: tok}, indentation}}
	l.NewItem(tok)
	return l
}

type EnumeratedList struct {
	ListBase
	Enumeration string // arabic, loweralpha, upperalpha, lowerroman or upperroman
	Start       int    // value of the first enumerator
}

// NewEnumeratedList returns an enumerated list holding one empty item.
// The token is the enumerator text.
func NewEnumeratedList(tok scan.Token, indentation int) *EnumeratedList {
	l := &EnumeratedList{ListBase: ListBase{Base{NodeType: NodeEnumeratedList, Tok: tok}, indentation}}
	l.NewItem(tok)
	return l
}

type ListItem struct {
	Base
}

// DefinitionList holds DefinitionListItem children.
type DefinitionList struct {
	Base
}

// NewDefinitionList returns a definition list holding a single item.
func NewDefinitionList(tok scan.Token, term []scan.Token, body []Node) *DefinitionList {
	item := &DefinitionListItem{Base{NodeType: NodeDefinitionListItem, Tok: tok, Nodes: body}, term}
	return &DefinitionList{Base{NodeType: NodeDefinitionList, Tok: tok, Nodes: []Node{item}}}
}

type DefinitionListItem struct {
	Base
	Term []scan.Token
}

func (d *DefinitionListItem) TermText() string {
	return JoinTokens(d.Term)
}

// FieldList holds FieldListItem children.
type FieldList struct {
	Base
}

// NewFieldList returns a field list holding a single field.
func NewFieldList(tok scan.Token, name []scan.Token, body []Node) *FieldList {
	item := &FieldListItem{Base{NodeType: NodeFieldListItem, Tok: tok, Nodes: body}, name}
	return &FieldList{Base{NodeType: NodeFieldList, Tok: tok, Nodes: []Node{item}}}
}

type FieldListItem struct {
	Base
	Name []scan.Token
}

func (f *FieldListItem) NameText() string {
	return JoinTokens(f.Name)
}

// Table holds an optional TableHead and a TableBody.
type Table struct {
	Base
}

func NewTable(tok scan.Token) *Table {
	return &Table{Base{NodeType: NodeTable, Tok: tok}}
}

// Head returns the table head, or nil.
func (t *Table) Head() *TableHead {
	for _, n := range t.Nodes {
		if h, ok := n.(*TableHead); ok {
			return h
		}
	}
	return nil
}

// Body returns the table body, or nil.
func (t *Table) Body() *TableBody {
	for _, n := range t.Nodes {
		if b, ok := n.(*TableBody); ok {
			return b
		}
	}
	return nil
}

type TableHead struct {
	Base
}

func NewTableHead(tok scan.Token) *TableHead {
	return &TableHead{Base{NodeType: NodeTableHead, Tok: tok}}
}

type TableBody struct {
	Base
}

func NewTableBody(tok scan.Token) *TableBody {
	return &TableBody{Base{NodeType: NodeTableBody, Tok: tok}}
}

type TableRow struct {
	Base
}

func NewTableRow(tok scan.Token) *TableRow {
	return &TableRow{Base{NodeType: NodeTableRow, Tok: tok}}
}

// Cells returns the cells of the row.
func (r *TableRow) Cells() []*TableCell {
	cells := make([]*TableCell, 0, len(r.Nodes))
	for _, n := range r.Nodes {
		cells = append(cells, n.(*TableCell))
	}
	return cells
}

type TableCell struct {
	Base
	Colspan int
	Rowspan int
}

func NewTableCell(tok scan.Token) *TableCell {
	return &TableCell{Base: Base{NodeType: NodeTableCell, Tok: tok}, Colspan: 1, Rowspan: 1}
}

// Directive is an explicit markup block like ".. note:: text".
type Directive struct {
	Base
	Identifier string
	Parameters string
	Options    map[string]string
}

func NewDirective(tok scan.Token, identifier string) *Directive {
	return &Directive{
		Base:       Base{NodeType: NodeDirective, Tok: tok},
		Identifier: identifier,
		Options:    make(map[string]string),
	}
}

// Substitution defines a substitution; its child is the substituted directive.
type Substitution struct {
	Base
	Name []scan.Token
}

func NewSubstitution(tok scan.Token, name []scan.Token) *Substitution {
	return &Substitution{Base{NodeType: NodeSubstitution, Tok: tok}, name}
}

func (s *Substitution) NameText() string {
	return JoinTokens(s.Name)
}

// NamedReference is a hyperlink target; its Literal children hold the link.
type NamedReference struct {
	Base
	Name []scan.Token
}

func NewNamedReference(tok scan.Token, name []scan.Token) *NamedReference {
	return &NamedReference{Base{NodeType: NodeNamedReference, Tok: tok}, name}
}

func (r *NamedReference) NameText() string {
	return JoinTokens(r.Name)
}

// Link returns the target of the reference.
func (r *NamedReference) Link() string {
	return strings.TrimSpace(TextOf(r))
}

// AnonymousReference is an anonymous hyperlink target.
type AnonymousReference struct {
	Base
}

func NewAnonymousReference(tok scan.Token) *AnonymousReference {
	return &AnonymousReference{Base{NodeType: NodeAnonymousReference, Tok: tok}}
}

func (r *AnonymousReference) Link() string {
	return strings.TrimSpace(TextOf(r))
}

type Footnote struct {
	Base
	Name []scan.Token
}

func NewFootnote(tok scan.Token, name []scan.Token) *Footnote {
	return &Footnote{Base{NodeType: NodeFootnote, Tok: tok}, name}
}

func (f *Footnote) NameText() string {
	return JoinTokens(f.Name)
}

// Markup is inline markup. While parsing, an open markup node marks the
// start of a span and has no children; the node created for the closing
// tag owns the span.
type Markup struct {
	Base
	Variant Variant
	Open    bool
}

func NewMarkup(tok scan.Token, variant Variant, open bool) *Markup {
	return &Markup{Base{NodeType: NodeMarkup, Tok: tok}, variant, open}
}

// Reference is a footnote reference like "[1]_".
type Reference struct {
	Base
}

func NewReference(tok scan.Token) *Reference {
	return &Reference{Base{NodeType: NodeReference, Tok: tok}}
}

// ExternalReference is a named hyperlink reference like "word_".
type ExternalReference struct {
	Base
}

func NewExternalReference(tok scan.Token) *ExternalReference {
	return &ExternalReference{Base{NodeType: NodeExternalReference, Tok: tok}}
}

// AnonymousLink is an anonymous hyperlink reference like "`text`__".
type AnonymousLink struct {
	Base
}

func NewAnonymousLink(tok scan.Token) *AnonymousLink {
	return &AnonymousLink{Base{NodeType: NodeAnonymousLink, Tok: tok}}
}

// Target is an inline internal target like "_`target`".
type Target struct {
	Base
}

func NewTarget(tok scan.Token) *Target {
	return &Target{Base{NodeType: NodeTarget, Tok: tok}}
}

// IsInline reports whether nodes of type t may appear inside a paragraph.
func IsInline(t NodeType) bool {
	switch t {
	case NodeText, NodeMarkup, NodeAnonymousLink, NodeExternalReference, NodeReference, NodeTarget:
		return true
	}
	return false
}

// JoinTokens concatenates the text of toks.
func JoinTokens(toks []scan.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Text)
	}
	return b.String()
}

// TextOf returns the plain text below n.
func TextOf(n Node) string {
	var b strings.Builder
	writeText(&b, n)
	return b.String()
}

func writeText(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Text, *Literal:
		b.WriteString(n.Token().Text)
		return
	case *Title:
		b.WriteString(n.Text())
		return
	}
	for _, c := range n.Children() {
		writeText(b, c)
	}
}
