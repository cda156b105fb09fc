// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser turns WebIDL (https://webidl.spec.whatwg.org/) source into
// an ast.File. Parsing never fails outright: syntax errors are attached to
// the tree as error nodes and collected with Errors.
package parser

import (
	"fmt"

	"github.com/dennwc/webidl2wit/ast"
)

// sourceParser holds the state of the parser. Whitespace and comments never
// become the current token; comments are attached to the next node instead.
type sourceParser struct {
	lex           *peekableLexer
	nodes         nodeStack       // nodes being parsed, innermost last
	currentToken  commentedLexeme // the token under the cursor
	previousToken commentedLexeme // the last consumed token, used for End positions
}

// commentedLexeme is a lexeme with the comments that preceded it.
type commentedLexeme struct {
	lexeme
	comments []string
}

func newParser(input string) *sourceParser {
	eof := commentedLexeme{lexeme: lexeme{tokenTypeEOF, 0, ""}}
	return &sourceParser{
		lex:           peekableLex(lex(input)),
		currentToken:  eof,
		previousToken: eof,
	}
}

func isIgnoredToken(kind tokenType) bool {
	return kind == tokenTypeWhitespace || isCommentToken(kind)
}

// node marks the current token as the start of n, attaches its comments
// and pushes n onto the node stack. The returned function pops n again and
// sets its end to the last consumed token.
func (p *sourceParser) node(n ast.Node) func() {
	b := n.NodeBase()
	b.Start = int(p.currentToken.position)
	b.Comments = append(b.Comments, p.currentToken.comments...)
	p.nodes.push(n)
	return func() {
		top := p.nodes.pop()
		if top == nil {
			panic(fmt.Sprintf("No current node on stack. Token: %s", p.currentToken.value))
		}
		setEnd(top, p.previousToken)
	}
}

func setEnd(n ast.Node, tok commentedLexeme) {
	n.NodeBase().End = int(tok.position) + len(tok.value) - 1
}

// emitError attaches an error node spanning the current token to the node
// being parsed.
func (p *sourceParser) emitError(format string, args ...interface{}) {
	e := &ast.ErrorNode{Message: fmt.Sprintf(format, args...)}
	e.Start = int(p.currentToken.position)
	setEnd(e, p.currentToken)

	b := p.nodes.topValue().NodeBase()
	b.Errors = append(b.Errors, e)
}

// consumeToken advances to the next significant token and returns it.
func (p *sourceParser) consumeToken() commentedLexeme {
	var comments []string
	for {
		tok := p.lex.nextToken()
		if isCommentToken(tok.kind) {
			comments = append(comments, tok.value)
		}
		if !isIgnoredToken(tok.kind) {
			p.previousToken = p.currentToken
			p.currentToken = commentedLexeme{tok, comments}
			return p.currentToken
		}
	}
}

// nextToken returns the significant token after the current one without
// consuming anything.
func (p *sourceParser) nextToken() lexeme {
	for i := 1; ; i++ {
		if tok := p.lex.peekToken(i); !isIgnoredToken(tok.kind) {
			return tok
		}
	}
}

func tokenIn(kind tokenType, types []tokenType) bool {
	for _, t := range types {
		if kind == t {
			return true
		}
	}
	return false
}

// isToken reports whether the current token is of one of the given types.
func (p *sourceParser) isToken(types ...tokenType) bool {
	return tokenIn(p.currentToken.kind, types)
}

// isNextToken is like isToken for the token after the current one.
func (p *sourceParser) isNextToken(types ...tokenType) bool {
	return tokenIn(p.nextToken().kind, types)
}

// isIdentifier reports whether the current token is the identifier name.
// WebIDL keywords are lexed as identifiers, so this matches keywords too.
func (p *sourceParser) isIdentifier(name string) bool {
	return p.isToken(tokenTypeIdentifier) && p.currentToken.value == name
}

// isNextKeyword is like isIdentifier for the token after the current one.
func (p *sourceParser) isNextKeyword(keyword string) bool {
	tok := p.nextToken()
	return tok.kind == tokenTypeIdentifier && tok.value == keyword
}

func (p *sourceParser) tryConsumeIdentifier() (string, bool) {
	if !p.isToken(tokenTypeIdentifier) {
		return "", false
	}
	value := p.currentToken.value
	p.consumeToken()
	return value, true
}

// consumeIdentifier consumes an identifier, or records an error and returns "".
func (p *sourceParser) consumeIdentifier() string {
	if name, ok := p.tryConsumeIdentifier(); ok {
		return name
	}
	p.emitError("Expected identifier, found token %v", p.currentToken.kind)
	return ""
}

func (p *sourceParser) tryConsumeKeyword(keyword string) bool {
	if !p.isIdentifier(keyword) {
		return false
	}
	p.consumeToken()
	return true
}

// consumeKeyword consumes keyword, or records an error.
func (p *sourceParser) consumeKeyword(keyword string) bool {
	if !p.tryConsumeKeyword(keyword) {
		p.emitError("Expected keyword %s, found token %v", keyword, p.currentToken.kind)
		return false
	}
	return true
}

// tryConsume consumes and returns the current token if it is of one of the
// given types.
func (p *sourceParser) tryConsume(types ...tokenType) (lexeme, bool) {
	if !p.isToken(types...) {
		return lexeme{tokenTypeError, -1, ""}, false
	}
	tok := p.currentToken
	p.consumeToken()
	return tok.lexeme, true
}

// consume is like tryConsume, but records an error on mismatch.
func (p *sourceParser) consume(types ...tokenType) (lexeme, bool) {
	tok, ok := p.tryConsume(types...)
	if !ok {
		p.emitError("Expected one of: %v, found: %v", types, p.currentToken.kind)
	}
	return tok, ok
}
