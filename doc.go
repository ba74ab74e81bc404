// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rstdoc implements a reStructuredText parser.

Parse and ParseString scan the input with package scan and build the
document tree with package parse. The node types of the tree are declared
in package ast.

Refer to the [reStructuredText Primer] and [reStructuredText Markup Specification]
documents for the markup.

[reStructuredText Primer]: https://docutils.sourceforge.io/docs/user/rst/quickref.html
[reStructuredText Markup Specification]: https://docutils.sourceforge.io/docs/ref/rst/restructuredtext.html
*/
package rstdoc
