// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import "github.com/dennwc/webidl2wit/ast"

// nodeStack holds the nodes currently being parsed, innermost last.
type nodeStack struct {
	nodes []ast.Node
}

func (s *nodeStack) topValue() ast.Node {
	if len(s.nodes) == 0 {
		return nil
	}
	return s.nodes[len(s.nodes)-1]
}

func (s *nodeStack) push(n ast.Node) {
	s.nodes = append(s.nodes, n)
}

// pop removes the innermost node. Popping an empty stack is a no-op that returns nil.
func (s *nodeStack) pop() ast.Node {
	n := s.topValue()
	if n != nil {
		s.nodes[len(s.nodes)-1] = nil
		s.nodes = s.nodes[:len(s.nodes)-1]
	}
	return n
}
