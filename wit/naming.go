package wit

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// Kebab converts a WebIDL identifier to a WIT identifier,
// e.g. URLSearchParams to url-search-params.
//
// One leading underscore is dropped, since WebIDL uses it to escape
// reserved words. Digits stay attached to the word before them
// (Float32Array to float32-array), and a single letter following a number
// joins it too (DOMMatrix2D to dom-matrix2d), so every word starts with a
// letter.
func Kebab(name string) string {
	name = strings.TrimPrefix(name, "_")
	words := strings.Split(strcase.ToKebab(name), "-")

	out := make([]string, 0, len(words))
	prevNumeric := false
	for _, w := range words {
		if w == "" {
			continue
		}
		numeric := isDigit(w[0])
		if len(out) > 0 && (numeric || (prevNumeric && len(w) == 1)) {
			out[len(out)-1] += w
		} else {
			out = append(out, w)
		}
		prevNumeric = numeric
	}
	return strings.Join(out, "-")
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// witKeywords are the words WIT reserves; identifiers spelled like them
// need a % prefix.
//
// https://github.com/WebAssembly/component-model/blob/main/design/mvp/WIT.md#keywords
var witKeywords = map[string]bool{
	"as": true, "async": true, "bool": true, "borrow": true, "char": true,
	"constructor": true, "enum": true, "export": true, "f32": true, "f64": true,
	"flags": true, "float32": true, "float64": true, "func": true, "future": true,
	"import": true, "include": true, "interface": true, "list": true,
	"option": true, "own": true, "package": true, "record": true,
	"resource": true, "result": true, "s16": true, "s32": true, "s64": true,
	"s8": true, "static": true, "stream": true, "string": true, "tuple": true,
	"type": true, "u16": true, "u32": true, "u64": true, "u8": true,
	"use": true, "variant": true, "with": true, "world": true,
}

// Ident is Kebab with WIT keywords escaped, for names emitted as a
// standalone identifier such as a parameter name.
func Ident(name string) string {
	id := Kebab(name)
	if witKeywords[id] {
		return "%" + id
	}
	return id
}
