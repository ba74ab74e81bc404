// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"fmt"
	"runtime"

	"github.com/matthewdargan/rstdoc/ast"
	"github.com/matthewdargan/rstdoc/scan"
)

// Parser is the representation of a single parsed document.
// A Parser is not safe for concurrent use.
type Parser struct {
	opts   *options
	parent *Parser // parser which reentered this one, or nil
	tokens *queue
	stack  *stack
	diags  []Diagnostic
	// indentation is the column, counted from zero, at which the
	// current block starts.
	indentation int
	// postIndentation is the indentation to restore after a paragraph,
	// or -1.
	postIndentation int
	titleLevels     map[string]int
	lastEnum        enum
}

// New returns a parser configured by opts.
func New(opts ...Option) *Parser {
	return &Parser{opts: newOptions(opts)}
}

// A shiftFunc either declines a token (false), consumes it without
// producing a node (true, nil) or produces a node to reduce.
type shiftFunc func(p *Parser, tok scan.Token) (ast.Node, bool)

// A reduceFunc returns the possibly transformed node, or nil if the node
// got absorbed.
type reduceFunc func(p *Parser, n ast.Node) ast.Node

type shiftRule struct {
	name string
	fn   shiftFunc
}

type reduceRule struct {
	name string
	fn   reduceFunc
}

// The rule tables are set up in init, as the rules reenter the parser.
var (
	shifts     map[scan.Type][]shiftRule
	reductions map[ast.NodeType][]reduceRule
)

func init() {
	shifts = map[scan.Type][]shiftRule{
		scan.Whitespace: {
			{"shiftWhitespaceAsText", (*Parser).shiftWhitespaceAsText},
		},
		scan.Newline: {
			{"shiftParagraph", (*Parser).shiftParagraph},
			{"updateIndentation", (*Parser).updateIndentation},
			{"shiftAsWhitespace", (*Parser).shiftAsWhitespace},
		},
		scan.Backslash: {
			{"shiftBackslash", (*Parser).shiftBackslash},
		},
		scan.SpecialChars: {
			{"shiftTitle", (*Parser).shiftTitle},
			{"shiftTransition", (*Parser).shiftTransition},
			{"shiftLineBlock", (*Parser).shiftLineBlock},
			{"shiftInlineMarkup", (*Parser).shiftInlineMarkup},
			{"shiftReference", (*Parser).shiftReference},
			{"shiftAnonymousHyperlinks", (*Parser).shiftAnonymousHyperlinks},
			{"shiftExternalReference", (*Parser).shiftExternalReference},
			{"shiftBlockquoteAnnotation", (*Parser).shiftBlockquoteAnnotation},
			{"shiftBulletList", (*Parser).shiftBulletList},
			{"shiftEnumeratedList", (*Parser).shiftEnumeratedList},
			{"shiftLiteralBlock", (*Parser).shiftLiteralBlock},
			{"shiftComment", (*Parser).shiftComment},
			{"shiftAnonymousReference", (*Parser).shiftAnonymousReference},
			{"shiftFieldList", (*Parser).shiftFieldList},
			{"shiftSimpleTable", (*Parser).shiftSimpleTable},
			{"shiftGridTable", (*Parser).shiftGridTable},
			{"shiftSpecialCharsAsText", (*Parser).shiftSpecialCharsAsText},
		},
		scan.TextLine: {
			{"shiftEnumeratedList", (*Parser).shiftEnumeratedList},
			{"shiftText", (*Parser).shiftText},
		},
		scan.EOF: {
			{"shiftDocument", (*Parser).shiftDocument},
		},
		scan.Error: {
			{"shiftScanError", (*Parser).shiftScanError},
		},
	}
	reductions = map[ast.NodeType][]reduceRule{
		ast.NodeDocument: {{"reduceSection", (*Parser).reduceSection}},
		ast.NodeSection:  {{"reduceSection", (*Parser).reduceSection}},
		ast.NodeTitle:    {{"reduceTitle", (*Parser).reduceTitle}},
		ast.NodeParagraph: {
			{"reduceParagraph", (*Parser).reduceParagraph},
			{"reduceBulletListParagraph", (*Parser).reduceBulletListParagraph},
			{"reduceEnumeratedListParagraph", (*Parser).reduceEnumeratedListParagraph},
			{"reduceBlockquoteAnnotationParagraph", (*Parser).reduceBlockquoteAnnotationParagraph},
			{"reduceBlockquote", (*Parser).reduceBlockquote},
		},
		ast.NodeBlockquote:        {{"reduceBlockquoteMerge", (*Parser).reduceBlockquoteMerge}},
		ast.NodeBulletList:        {{"reduceBulletList", (*Parser).reduceBulletList}},
		ast.NodeEnumeratedList:    {{"reduceEnumeratedList", (*Parser).reduceEnumeratedList}},
		ast.NodeDefinitionList:    {{"reduceDefinitionList", (*Parser).reduceDefinitionList}},
		ast.NodeFieldList:         {{"reduceFieldList", (*Parser).reduceFieldList}},
		ast.NodeAnnotation:        {{"reduceBlockquoteAnnotation", (*Parser).reduceBlockquoteAnnotation}},
		ast.NodeMarkup:            {{"reduceMarkup", (*Parser).reduceMarkup}, {"reduceInternalTarget", (*Parser).reduceInternalTarget}},
		ast.NodeReference:         {{"reduceReference", (*Parser).reduceReference}},
		ast.NodeAnonymousLink:     {{"reduceLink", (*Parser).reduceLink}},
		ast.NodeExternalReference: {{"reduceLink", (*Parser).reduceLink}},
	}
}

// Parse builds the document tree from tokens, which have to end with an
// EOF token. The parser may be used again afterwards.
func (p *Parser) Parse(tokens []scan.Token) (doc *ast.Document, err error) {
	defer p.recover(&err)
	p.reset(tokens)
	p.run()
	doc = p.document()
	nest(doc)
	return doc, nil
}

// Diagnostics returns the diagnostics reported by the last call to Parse,
// including those of reentered parsers.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diags
}

func (p *Parser) reset(tokens []scan.Token) {
	if p.opts == nil {
		p.opts = newOptions(nil)
	}
	p.tokens = newQueue(tokens)
	if len(tokens) > 0 && tokens[0].Type == scan.Whitespace {
		// Indentation is measured after newlines.
		p.tokens.backup(scan.Token{Type: scan.Newline, Text: "\n", Line: tokens[0].Line})
	}
	p.stack = newStack()
	p.diags = nil
	p.indentation = 0
	p.postIndentation = -1
	p.titleLevels = make(map[string]int)
	p.lastEnum = enum{}
}

// run shifts all tokens.
func (p *Parser) run() {
	for p.tokens.len() > 0 {
		tok := p.tokens.next()
		tracer().Debugf("[T] %s at %d:%d", tok, tok.Line, tok.Pos)
		p.shift(tok)
	}
}

// shift tries the shift rules for tok until one accepts it.
func (p *Parser) shift(tok scan.Token) {
	for _, r := range shifts[tok.Type] {
		tracer().Debugf(" [S] try %s", r.name)
		n, ok := r.fn(p, tok)
		if !ok {
			continue
		}
		if n != nil {
			p.reduce(n)
		}
		return
	}
}

// reduce applies the reduction rules to n. Whenever a rule changes the
// type of n, the rules for the new type are tried from the beginning.
// A node no rule absorbed is pushed onto the stack.
func (p *Parser) reduce(n ast.Node) {
	typ := n.Type()
	i := 0
	for n != nil {
		if n.Type() != typ {
			typ = n.Type()
			i = 0
		}
		rules := reductions[typ]
		if i >= len(rules) {
			tracer().Debugf("  [R] push %s (%d nodes)", typ, p.stack.len()+1)
			p.stack.push(n)
			return
		}
		r := rules[i]
		i++
		tracer().Debugf("  [R] reduce %s with %s", typ, r.name)
		n = r.fn(p, n)
	}
}

// document returns the root of the collapsed stack.
func (p *Parser) document() *ast.Document {
	top := p.stack.top()
	if doc, ok := top.(*ast.Document); ok && p.stack.len() == 1 {
		return doc
	}
	if top == nil {
		p.fatalf(scan.Token{}, "Expected end of file, got empty document stack.")
	}
	p.fatalf(top.Token(), "Expected end of file, got: %s.", top.Type())
	return nil
}

// report passes d to the reporter. Diagnostics of reentered parsers are
// reported by the outermost parser.
func (p *Parser) report(d Diagnostic) {
	if p.parent != nil {
		p.parent.report(d)
		return
	}
	p.diags = append(p.diags, d)
	p.opts.reporter.Report(d)
}

func (p *Parser) reportf(sev Severity, tok scan.Token, format string, args ...any) {
	p.report(Diagnostic{Severity: sev, Msg: fmt.Sprintf(format, args...), Line: tok.Line, Pos: tok.Pos})
}

// fatalf reports a fatal diagnostic and aborts the parse.
func (p *Parser) fatalf(tok scan.Token, format string, args ...any) {
	d := Diagnostic{Severity: Fatal, Msg: fmt.Sprintf(format, args...), Line: tok.Line, Pos: tok.Pos}
	p.report(d)
	panic(&ParseError{d})
}

// recover is the handler that turns panics into returns from the top
// level of Parse.
func (p *Parser) recover(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	if _, ok := e.(runtime.Error); ok {
		panic(e)
	}
	pe, ok := e.(*ParseError)
	if !ok {
		panic(e)
	}
	*errp = pe
}
