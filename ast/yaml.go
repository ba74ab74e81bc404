// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import (
	"gopkg.in/yaml.v3"
)

type yamlNode struct {
	Type       string      `yaml:"type"`
	Line       int         `yaml:"line,omitempty"`
	Text       string      `yaml:"text,omitempty"`
	Attrs      *yaml.Node  `yaml:"attrs,omitempty"`
	Annotation *yamlNode   `yaml:"annotation,omitempty"`
	Children   []*yamlNode `yaml:"children,omitempty"`
}

func toYAML(n Node) *yamlNode {
	y := &yamlNode{Type: n.Type().String(), Line: n.Token().Line}
	if s, ok := leafText(n); ok {
		y.Text = s
	}
	if as := attributes(n); len(as) > 0 {
		// A mapping node keeps the attribute order of Dump.
		y.Attrs = &yaml.Node{Kind: yaml.MappingNode}
		for _, a := range as {
			y.Attrs.Content = append(y.Attrs.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: a.key},
				&yaml.Node{Kind: yaml.ScalarNode, Value: a.val})
		}
	}
	if b, ok := n.(*Blockquote); ok && b.Annotation != nil {
		y.Annotation = toYAML(b.Annotation)
	}
	for _, c := range n.Children() {
		y.Children = append(y.Children, toYAML(c))
	}
	return y
}

// MarshalYAML encodes the tree rooted at n as YAML.
func MarshalYAML(n Node) ([]byte, error) {
	return yaml.Marshal(toYAML(n))
}
