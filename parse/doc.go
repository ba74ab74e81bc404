// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package parse builds the document tree of reStructuredText from the tokens
of package scan.

The parser is a hand written shift/reduce parser. For each token the shift
rules registered for its type are tried in order until one of them accepts
the token. A rule may consume further tokens from the queue and may produce
a node. Produced nodes run through the reduction rules registered for their
type; a reduction may pop nodes from the document stack, merge them into the
node or transform the node into a node of another type. Nodes surviving all
reductions are pushed onto the document stack. At the end of the input the
stack has to collapse into a single document node.

Some constructs, like table cells, footnotes and definitions, contain
complete documents. Their tokens are extracted, reindented and parsed by
an independent parser.

Tracing

The parser traces token dispatch, tried rules and reductions to the trace
selected by "rstdoc.parse" at debug level.
*/
package parse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rstdoc.parse'.
func tracer() tracing.Trace {
	return tracing.Select("rstdoc.parse")
}
