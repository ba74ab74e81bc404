// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ast declares the node types of a parsed reStructuredText document.

Every node embeds a Base holding its node type, the token it was created
from and its children. Block level nodes (sections, paragraphs, lists,
tables, directives) own block or inline children; inline nodes (text,
markup, references) own inline children only. A tree is rooted at exactly
one Document.

Trees may be printed with Dump or exported with MarshalYAML.
*/
package ast
