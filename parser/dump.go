package parser

import (
	"io"

	"github.com/kr/pretty"

	"github.com/dennwc/webidl2wit/ast"
)

// Dump writes a Go-syntax rendering of the tree rooted at n to w.
func Dump(w io.Writer, n ast.Node) error {
	_, err := pretty.Fprintf(w, "%# v", n)
	return err
}

// DumpString is like Dump, but returns the rendering.
func DumpString(n ast.Node) string {
	return pretty.Sprintf("%# v", n)
}
