// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/dennwc/webidl2wit/ast"
)

// Parse parses the given WebIDL source into a parse tree.
func Parse(input string) *ast.File {
	return newParser(input).consumeTopLevel()
}

// consumeTopLevel attempts to consume the top-level constructs of a WebIDL file.
func (p *sourceParser) consumeTopLevel() *ast.File {
	n := &ast.File{}
	defer p.node(n)()

	// Start at the first token.
	p.consumeToken()

	if p.currentToken.kind == tokenTypeError {
		p.emitError("%s", p.currentToken.value)
		return n
	}

Loop:
	for !p.isToken(tokenTypeEOF) {
		switch {
		case p.isToken(tokenTypeError):
			p.emitError("%s", p.currentToken.value)
			break Loop
		case p.isToken(tokenTypeLeftBracket) || p.isIdentifier("interface") ||
			p.isIdentifier("partial") || p.isIdentifier("callback") ||
			p.isIdentifier("dictionary") || p.isIdentifier("enum") ||
			p.isIdentifier("typedef"):
			n.Declarations = append(n.Declarations, p.consumeDeclaration())
			continue
		case p.isToken(tokenTypeIdentifier) && (p.isNextKeyword("implements") || p.isNextKeyword("includes")):
			n.Declarations = append(n.Declarations, p.consumeIncludes())
			continue
		}
		p.emitError("Unexpected token at root level: %v", p.currentToken.kind)
		break Loop
	}

	return n
}

// declHeader is what consumeDeclaration reads before the declaration
// keyword: the annotations and the open node holding the start position.
type declHeader struct {
	ann    []*ast.Annotation
	base   *ast.Base
	finish func()
}

// close finishes the declaration node and copies its position and errors to b.
func (h declHeader) close(b *ast.Base) {
	h.finish()
	*b = *h.base
}

// consumeDeclaration consumes a top-level declaration with its annotations.
func (p *sourceParser) consumeDeclaration() ast.Decl {
	h := declHeader{base: &ast.Base{}}
	h.finish = p.node(h.base)
	h.ann = p.tryConsumeAnnotations()

	switch {
	case p.isIdentifier("enum"):
		return p.consumeEnum(h)
	case p.isIdentifier("typedef"):
		return p.consumeTypedef(h)
	case p.isIdentifier("callback"):
		p.consumeToken()
		if p.tryConsumeKeyword("interface") {
			return p.consumeInterface(h, false, true)
		}
		return p.consumeCallback(h)
	case p.isIdentifier("dictionary"):
		return p.consumeDictionary(h, false)
	case p.isIdentifier("interface") || p.isIdentifier("partial"):
		partial := p.tryConsumeKeyword("partial")
		if p.isIdentifier("dictionary") {
			return p.consumeDictionary(h, partial)
		}
		p.consumeKeyword("interface")
		if p.tryConsumeKeyword("mixin") {
			return p.consumeMixin(h, partial)
		}
		return p.consumeInterface(h, partial, false)
	}

	p.emitError("Expected interface or dictionary, got: %v", p.currentToken.kind)
	// skip to the end of the body
	for !p.isToken(tokenTypeLeftBrace, tokenTypeEOF, tokenTypeError) {
		p.consumeToken()
	}
	for !p.isToken(tokenTypeRightBrace, tokenTypeEOF, tokenTypeError) {
		p.consumeToken()
	}
	p.tryConsume(tokenTypeRightBrace)
	p.tryConsume(tokenTypeSemicolon)
	n := &ast.Interface{}
	h.close(&n.Base)
	return n
}

// consumeBody consumes `{ member; ... };`, calling member for every entry.
func consumeBody[T any](p *sourceParser, member func() T) []T {
	if _, ok := p.consume(tokenTypeLeftBrace); !ok {
		return nil
	}
	var out []T
	for !p.isToken(tokenTypeRightBrace, tokenTypeEOF, tokenTypeError) {
		out = append(out, member())
		if _, ok := p.consume(tokenTypeSemicolon); !ok {
			break
		}
	}
	p.consume(tokenTypeRightBrace)
	p.consume(tokenTypeSemicolon)
	return out
}

// tryConsumeInherits consumes `: Parent`.
func (p *sourceParser) tryConsumeInherits() string {
	if _, ok := p.tryConsume(tokenTypeColon); !ok {
		return ""
	}
	return p.consumeIdentifier()
}

func (p *sourceParser) consumeInterface(h declHeader, partial, callback bool) *ast.Interface {
	n := &ast.Interface{Annotations: h.ann, Partial: partial, Callback: callback}
	n.Name = p.consumeIdentifier()
	n.Inherits = p.tryConsumeInherits()
	n.Members = consumeBody(p, p.consumeInterfaceMember)
	h.close(&n.Base)
	return n
}

func (p *sourceParser) consumeMixin(h declHeader, partial bool) *ast.Mixin {
	n := &ast.Mixin{Annotations: h.ann, Partial: partial}
	n.Name = p.consumeIdentifier()
	n.Members = consumeBody(p, p.consumeMixinMember)
	h.close(&n.Base)
	return n
}

func (p *sourceParser) consumeDictionary(h declHeader, partial bool) *ast.Dictionary {
	n := &ast.Dictionary{Annotations: h.ann, Partial: partial}
	p.consumeKeyword("dictionary")
	n.Name = p.consumeIdentifier()
	n.Inherits = p.tryConsumeInherits()
	n.Members = consumeBody(p, func() *ast.Member { return p.consumeMember(true) })
	h.close(&n.Base)
	return n
}

// consumeCallback consumes the rest of `callback Name = Return (params);`.
func (p *sourceParser) consumeCallback(h declHeader) *ast.Callback {
	n := &ast.Callback{}
	n.Name = p.consumeIdentifier()
	p.consume(tokenTypeEquals)
	n.Return = p.consumeType()
	n.Parameters = p.consumeParameters()
	p.consume(tokenTypeSemicolon)
	h.close(&n.Base)
	return n
}

// consumeEnum consumes `enum Name { "a", "b" };`. A trailing comma is allowed.
func (p *sourceParser) consumeEnum(h declHeader) *ast.Enum {
	n := &ast.Enum{Annotations: h.ann}
	defer h.close(&n.Base)

	p.consumeKeyword("enum")
	n.Name = p.consumeIdentifier()
	if _, ok := p.consume(tokenTypeLeftBrace); !ok {
		return n
	}
	for !p.isToken(tokenTypeRightBrace) {
		if len(n.Values) != 0 {
			if _, ok := p.consume(tokenTypeComma); !ok || p.isToken(tokenTypeRightBrace) {
				break
			}
		}
		if !p.isToken(tokenTypeString) {
			p.emitError("Expected enum value, got: %v", p.currentToken.kind)
			break
		}
		n.Values = append(n.Values, p.consumeLiteral())
	}
	p.consume(tokenTypeRightBrace)
	p.consume(tokenTypeSemicolon)
	return n
}

func (p *sourceParser) consumeTypedef(h declHeader) *ast.Typedef {
	n := &ast.Typedef{Annotations: h.ann}
	p.consumeKeyword("typedef")
	n.Type = p.consumeType()
	n.Name = p.consumeIdentifier()
	p.consume(tokenTypeSemicolon)
	h.close(&n.Base)
	return n
}

// consumeIncludes consumes `A includes B;` and the legacy `A implements B;`.
func (p *sourceParser) consumeIncludes() ast.Decl {
	base := &ast.Base{}
	finish := p.node(base)

	name := p.consumeIdentifier()
	legacy := p.tryConsumeKeyword("implements")
	if !legacy {
		p.consumeKeyword("includes")
	}
	source := p.consumeIdentifier()
	p.consume(tokenTypeSemicolon)
	finish()

	if legacy {
		return &ast.Implementation{Base: *base, Name: name, Source: source}
	}
	return &ast.Includes{Base: *base, Name: name, Source: source}
}

func (p *sourceParser) consumeInterfaceMember() ast.InterfaceMember {
	switch {
	case p.isIdentifier("constructor") && p.isNextToken(tokenTypeLeftParen):
		return p.consumeConstructor()
	case p.isIdentifier("serializer") || p.isIdentifier("jsonifier"):
		return p.consumeCustomOp()
	case p.isIdentifier("iterable") || p.isIdentifier("maplike") || p.isIdentifier("setlike"),
		p.isIdentifier("async") && p.isNextKeyword("iterable"),
		p.isIdentifier("readonly") && (p.isNextKeyword("maplike") || p.isNextKeyword("setlike")):
		return p.consumeIterable()
	}
	return p.consumeMember(false)
}

func (p *sourceParser) consumeMixinMember() ast.MixinMember {
	if p.isIdentifier("serializer") || p.isIdentifier("jsonifier") {
		return p.consumeCustomOp()
	}
	return p.consumeMember(false)
}

// consumeConstructor consumes `constructor(...)`.
func (p *sourceParser) consumeConstructor() *ast.Constructor {
	n := &ast.Constructor{}
	defer p.node(n)()

	p.consumeKeyword("constructor")
	n.Parameters = p.consumeParameters()
	return n
}

func (p *sourceParser) consumeCustomOp() *ast.CustomOp {
	n := &ast.CustomOp{}
	defer p.node(n)()

	n.Name = p.consumeIdentifier()
	return n
}

// consumeIterable consumes iterable<...>, async iterable<...>, maplike<...> and setlike<...>.
func (p *sourceParser) consumeIterable() *ast.Iterable {
	n := &ast.Iterable{}
	defer p.node(n)()

	n.Async = p.tryConsumeKeyword("async")
	n.Readonly = p.tryConsumeKeyword("readonly")
	n.Kind = p.consumeIdentifier()

	if _, ok := p.consume(tokenTypeLeftTri); !ok {
		return n
	}
	for {
		n.Types = append(n.Types, p.consumeType())
		if _, ok := p.tryConsume(tokenTypeComma); !ok {
			break
		}
	}
	p.consume(tokenTypeRightTri)

	if n.Async && p.isToken(tokenTypeLeftParen) {
		// async iterable arguments are not kept
		p.consumeParameters()
	}
	return n
}

// consumeMember attempts to consume a member definition in a declaration.
func (p *sourceParser) consumeMember(dict bool) *ast.Member {
	n := &ast.Member{}
	defer p.node(n)()

	n.Annotations = p.tryConsumeAnnotations()
	n.Attribute = dict

	// getter/setter
	if p.isIdentifier("getter") || p.isIdentifier("setter") || p.isIdentifier("deleter") {
		n.Specialization = p.consumeIdentifier()
	} else if p.tryConsumeKeyword("stringifier") {
		n.Specialization = "stringifier"
		// stringifier;
		if p.isToken(tokenTypeSemicolon) {
			return n
		}
	}

	for _, mod := range []struct {
		keyword string
		flag    *bool
	}{
		{"const", &n.Const},
		{"static", &n.Static},
		{"inherit", &n.Inherit},
		{"readonly", &n.Readonly},
		{"required", &n.Required},
		{"attribute", &n.Attribute},
	} {
		if p.tryConsumeKeyword(mod.keyword) {
			*mod.flag = true
		}
	}

	if len(n.Annotations) == 0 {
		n.Annotations = p.tryConsumeAnnotations()
	}

	// Consume the type of the member.
	n.Type = p.consumeType()

	// Consume the member's name.
	n.Name, _ = p.tryConsumeIdentifier()

	// If not an attribute, consume the parameters of the member.
	if !n.Attribute && !n.Const {
		n.Parameters = p.consumeParameters()
	}
	n.Init = p.tryConsumeDefaultValue()
	return n
}

// tryConsumeAnnotations consumes any annotations found on the parent node.
func (p *sourceParser) tryConsumeAnnotations() (out []*ast.Annotation) {
	for {
		// [
		if _, ok := p.tryConsume(tokenTypeLeftBracket); !ok {
			return
		}

		for {
			// Foo()
			out = append(out, p.consumeAnnotationPart())

			// ,
			if _, ok := p.tryConsume(tokenTypeComma); !ok {
				break
			}
		}

		// ]
		if _, ok := p.consume(tokenTypeRightBracket); !ok {
			return
		}
	}
}

// consumeAnnotationPart consumes an annotation, as found within a set of brackets `[]`.
func (p *sourceParser) consumeAnnotationPart() *ast.Annotation {
	n := &ast.Annotation{}
	defer p.node(n)()

	// Consume the name of the annotation.
	n.Name = p.consumeIdentifier()

	// "="
	if _, ok := p.tryConsume(tokenTypeEquals); ok {
		// Consume (optional) value.

		// "("
		if list, ok := p.tryConsumeIdentifiersList(); ok {
			n.Values = list
			return n
		}
		if tok, ok := p.tryConsume(tokenTypeString, tokenTypeNumber); ok {
			n.Value = tok.value
			return n
		}
		n.Value = p.consumeIdentifier()
		// [LegacyFactoryFunction=Image(unsigned long width)]
		if p.isToken(tokenTypeLeftParen) {
			n.Parameters = p.consumeParameters()
		}
	} else if p.isToken(tokenTypeLeftParen) {
		// Consume (optional) parameters.
		n.Parameters = p.consumeParameters()
	}

	return n
}

func (p *sourceParser) tryConsumeIdentifiersList() ([]string, bool) {
	// "("
	_, ok := p.tryConsume(tokenTypeLeftParen)
	if !ok {
		return nil, false
	}
	// identifier list
	var list []string
	for {
		list = append(list, p.consumeIdentifier())
		// ","
		if _, ok := p.tryConsume(tokenTypeComma); !ok {
			break
		}
	}
	// ")"
	p.consume(tokenTypeRightParen)
	return list, true
}

// expandedTypeKeywords defines the keywords that form the prefixes for expanded types:
// two-identifier type names.
var expandedTypeKeywords = map[string][]string{
	"unsigned":      {"short", "long"},
	"long":          {"long"},
	"unsigned long": {"long"},
	"unrestricted":  {"float", "double"},
}

// consumeType consumes a type, including union types, generic types and the
// nullable suffix.
func (p *sourceParser) consumeType() *ast.Type {
	n := &ast.Type{}
	defer p.node(n)()

	// [EnforceRange] unsigned long
	p.tryConsumeAnnotations()

	if _, ok := p.tryConsume(tokenTypeLeftParen); ok {
		// "("
		for {
			n.Elems = append(n.Elems, p.consumeType())
			if !p.tryConsumeKeyword("or") {
				break
			}
		}
		n.Union = len(n.Elems) > 1
		// ")"
		p.consume(tokenTypeRightParen)
		p.tryConsumeNullable(n)
		return n
	}

	identifier := p.consumeIdentifier()
	if identifier == "" {
		return n
	}

	if _, ok := p.tryConsume(tokenTypeLeftTri); ok {
		// sequence<T>, FrozenArray<T>, record<K, V>, ...
		n.Generic = identifier
		for {
			n.Elems = append(n.Elems, p.consumeType())
			if _, ok := p.tryConsume(tokenTypeComma); !ok {
				break
			}
		}
		p.consume(tokenTypeRightTri)
		p.tryConsumeNullable(n)
		return n
	}

	typeName := identifier

	// If the identifier is the beginning of a possible expanded type name, check for the
	// secondary portion.
	for {
		secondaries, ok := expandedTypeKeywords[typeName]
		if !ok {
			break
		}
		matched := false
		for _, secondary := range secondaries {
			if p.isIdentifier(secondary) {
				typeName += " " + secondary
				p.consume(tokenTypeIdentifier)
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	n.Name = typeName
	p.tryConsumeNullable(n)
	return n
}

func (p *sourceParser) tryConsumeNullable(n *ast.Type) {
	if _, ok := p.tryConsume(tokenTypeQuestionMark); ok {
		n.Nullable = true
	}
}

// consumeParameter attempts to consume a parameter.
func (p *sourceParser) consumeParameter() *ast.Parameter {
	n := &ast.Parameter{}
	defer p.node(n)()
	n.Annotations = p.tryConsumeAnnotations()

	// optional
	if p.tryConsumeKeyword("optional") {
		n.Optional = true
	}

	// Consume the parameter's type.
	n.Type = p.consumeType()
	if _, ok := p.tryConsume(tokenTypeVariadic); ok {
		n.Variadic = true
	}

	// Consume the parameter's name.
	n.Name = p.consumeIdentifier()

	n.Init = p.tryConsumeDefaultValue()

	return n
}

func (p *sourceParser) tryConsumeDefaultValue() *ast.Literal {
	if _, ok := p.tryConsume(tokenTypeEquals); ok {
		return p.consumeLiteral()
	}
	return nil
}

// consumeLiteral consumes a constant or default value: a string, a number, an
// identifier such as true or null, or an empty [] or {}.
func (p *sourceParser) consumeLiteral() *ast.Literal {
	n := &ast.Literal{}
	defer p.node(n)()

	switch {
	case p.isToken(tokenTypeString, tokenTypeNumber, tokenTypeIdentifier):
		n.Value = p.currentToken.value
		p.consumeToken()
	case p.isToken(tokenTypeLeftBracket):
		p.consumeToken()
		p.consume(tokenTypeRightBracket)
		n.Value = "[]"
	case p.isToken(tokenTypeLeftBrace):
		p.consumeToken()
		p.consume(tokenTypeRightBrace)
		n.Value = "{}"
	default:
		p.emitError("Expected literal, found: %v", p.currentToken.kind)
	}
	return n
}

// consumeParameters attempts to consume a set of parameters.
func (p *sourceParser) consumeParameters() (out []*ast.Parameter) {
	if _, ok := p.consume(tokenTypeLeftParen); !ok {
		return
	}
	if _, ok := p.tryConsume(tokenTypeRightParen); ok {
		return
	}

	for {
		out = append(out, p.consumeParameter())
		if _, ok := p.tryConsume(tokenTypeRightParen); ok {
			return
		}

		if _, ok := p.consume(tokenTypeComma); !ok {
			return
		}
	}
}
