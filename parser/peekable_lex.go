// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import "fmt"

// peekableLexer buffers lexemes so the parser can look ahead any number
// of tokens without losing them.
type peekableLexer struct {
	lex    *lexer
	buffer []lexeme // read ahead, not yet returned by nextToken
}

func peekableLex(lex *lexer) *peekableLexer {
	return &peekableLexer{lex: lex}
}

// nextToken returns the next lexeme, draining the lookahead buffer first.
func (l *peekableLexer) nextToken() lexeme {
	if len(l.buffer) > 0 {
		tok := l.buffer[0]
		l.buffer = l.buffer[1:]
		return tok
	}
	return l.lex.nextToken()
}

// peekToken returns the count-th upcoming lexeme; peekToken(1) is the one
// nextToken would return.
func (l *peekableLexer) peekToken(count int) lexeme {
	if count < 1 {
		panic(fmt.Sprintf("Expected count >= 1, received: %v", count))
	}
	for len(l.buffer) < count {
		l.buffer = append(l.buffer, l.lex.nextToken())
	}
	return l.buffer[count-1]
}
