package parser

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dennwc/webidl2wit/ast"
)

// SyntaxError is an error node of the parse tree with its position resolved
// against the source text.
type SyntaxError struct {
	Line    int // 1-based
	Column  int // 1-based, in runes
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// ErrorList is a list of syntax errors in source order.
type ErrorList []*SyntaxError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

// Errors collects the error nodes attached anywhere in the tree, resolving
// their positions against src. It returns nil if the tree is error-free.
func Errors(src string, f *ast.File) error {
	var nodes []*ast.ErrorNode
	ast.Walk(f, func(n ast.Node) bool {
		nodes = append(nodes, n.NodeBase().Errors...)
		return true
	})
	if len(nodes) == 0 {
		return nil
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Start < nodes[j].Start
	})
	list := make(ErrorList, 0, len(nodes))
	for _, e := range nodes {
		line, col := Position(src, e.Start)
		list = append(list, &SyntaxError{Line: line, Column: col, Message: e.Message})
	}
	return list
}

// Position converts a byte offset of src into a 1-based line and column.
func Position(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}
	before := src[:offset]
	line = strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	return line, utf8.RuneCountInString(before) + 1
}
