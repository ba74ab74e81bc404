// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/matthewdargan/rstdoc/ast"
)

// stack is the document stack. Index 0 is the top.
type stack struct {
	list *doublylinkedlist.List
}

func newStack() *stack {
	return &stack{list: doublylinkedlist.New()}
}

func (s *stack) len() int {
	return s.list.Size()
}

func (s *stack) push(n ast.Node) {
	s.list.Prepend(n)
}

// pop removes and returns the top node, or nil if the stack is empty.
func (s *stack) pop() ast.Node {
	n := s.peek(0)
	if n != nil {
		s.list.Remove(0)
	}
	return n
}

// peek returns the i-th node from the top without removing it.
func (s *stack) peek(i int) ast.Node {
	v, ok := s.list.Get(i)
	if !ok {
		return nil
	}
	return v.(ast.Node)
}

func (s *stack) top() ast.Node {
	return s.peek(0)
}

// topType returns the type of the top node, or -1 for an empty stack.
func (s *stack) topType() ast.NodeType {
	if n := s.top(); n != nil {
		return n.Type()
	}
	return -1
}

// restore pushes nodes given in document order, so the last one ends up
// on top.
func (s *stack) restore(nodes ...ast.Node) {
	for _, n := range nodes {
		s.push(n)
	}
}

// popWhile pops nodes as long as f holds for the top node. The nodes are
// returned in document order.
func (s *stack) popWhile(f func(ast.Node) bool) []ast.Node {
	var nodes []ast.Node
	for n := s.top(); n != nil && f(n); n = s.top() {
		nodes = append(nodes, s.pop())
	}
	reverse(nodes)
	return nodes
}

// nodes returns the stack contents in document order.
func (s *stack) nodes() []ast.Node {
	vals := s.list.Values()
	nodes := make([]ast.Node, len(vals))
	for i, v := range vals {
		nodes[len(vals)-1-i] = v.(ast.Node)
	}
	return nodes
}

func reverse(nodes []ast.Node) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}
