// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on design first introduced in: http://blog.golang.org/two-go-talks-lexical-scanning-in-go-and
// Portions copied and modified from: https://github.com/golang/go/blob/master/src/text/template/parse/lex.go

package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const EOFRUNE = -1

// bytePosition represents the byte position in a piece of code.
type bytePosition int

// lexeme represents a token returned from scanning the contents of a file.
type lexeme struct {
	kind     tokenType    // The type of this lexeme.
	position bytePosition // The starting position of this token in the input string.
	value    string       // The textual value of this token.
}

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*lexer) stateFn

// checkFn returns whether the rune should be consumed by a buildLexUntil state.
type checkFn func(r rune) (bool, error)

// lexer holds the state of the scanner.
type lexer struct {
	input   string       // the string being scanned
	state   stateFn      // the next lexing function to enter
	start   bytePosition // start position of the current lexeme
	pos     bytePosition // current position in the input
	width   bytePosition // width of last rune read from input
	startFn stateFn      // the state the lexer starts in and returns to
	pending []lexeme     // lexemes emitted but not yet returned
}

// buildlex creates a new scanner for the input string.
func buildlex(input string, startFn stateFn) *lexer {
	return &lexer{
		input:   input,
		state:   startFn,
		startFn: startFn,
	}
}

// nextToken returns the next token from the input. Once the input is
// exhausted, the final EOF (or error) token is returned on every call.
func (l *lexer) nextToken() lexeme {
	for len(l.pending) == 0 {
		if l.state == nil {
			return lexeme{tokenTypeEOF, bytePosition(len(l.input)), ""}
		}
		l.state = l.state(l)
	}
	tok := l.pending[0]
	l.pending = l.pending[1:]
	if tok.kind == tokenTypeError {
		// nothing can follow an error
		l.state = nil
		l.pending = nil
	}
	return tok
}

// next returns the next rune in the input.
func (l *lexer) next() rune {
	if int(l.pos) >= len(l.input) {
		l.width = 0
		return EOFRUNE
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = bytePosition(w)
	l.pos += l.width
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *lexer) backup() {
	l.pos -= l.width
}

// emit passes a lexeme back to the client.
func (l *lexer) emit(t tokenType) {
	l.pending = append(l.pending, lexeme{t, l.start, l.input[l.start:l.pos]})
	l.start = l.pos
}

// ignore skips over the pending input before this point.
func (l *lexer) ignore() {
	l.start = l.pos
}

// value returns the current value of the token in the lexer.
func (l *lexer) value() string {
	return l.input[l.start:l.pos]
}

// accept consumes the next rune if it's from the valid set.
func (l *lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set.
func (l *lexer) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

// acceptString consumes the full given string, if the next tokens in the stream.
func (l *lexer) acceptString(value string) bool {
	if !strings.HasPrefix(l.input[l.pos:], value) {
		return false
	}
	l.pos += bytePosition(len(value))
	return true
}

// errorf returns an error token and terminates the scan.
func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.pending = append(l.pending, lexeme{tokenTypeError, l.start, fmt.Sprintf(format, args...)})
	return nil
}

// buildLexUntil returns a state function that consumes runes for as long as
// the checker allows, then emits a token of the given kind.
func buildLexUntil(kind tokenType, checker checkFn) stateFn {
	return func(l *lexer) stateFn {
		for {
			r := l.peek()
			ok, err := checker(r)
			if err != nil {
				return l.errorf("%v", err)
			}
			if !ok {
				break
			}
			l.next()
		}
		l.emit(kind)
		return l.startFn
	}
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// isNewline reports whether r is a newline character.
func isNewline(r rune) bool {
	return r == '\r' || r == '\n'
}

// isAlphaNumeric reports whether r is valid in an identifier.
func isAlphaNumeric(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
