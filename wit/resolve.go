package wit

import (
	"github.com/dennwc/webidl2wit/ast"
)

// ResolveType converts a WebIDL type to a WIT type expression.
//
// Unions are rejected outright. A parenthesised single type resolves to its
// element. List-like generics become list<T>; any nullability of the generic
// itself is dropped. Other types are looked up with MapPrimitive and become
// option<T> when nullable.
func ResolveType(t *ast.Type) (string, error) {
	if t.Union {
		return "", &UnsupportedUnionError{Type: t}
	}

	if t.Generic == "" && len(t.Elems) > 0 {
		if len(t.Elems) == 1 {
			return ResolveType(t.Elems[0])
		}
		return "", &UnsupportedCompoundTypeError{Type: t}
	}

	if t.Generic != "" {
		if !listGenerics[t.Generic] {
			return "", &UnsupportedGenericError{Type: t}
		}
		if len(t.Elems) != 1 {
			return "", &UnsupportedCompoundTypeError{Type: t}
		}
		elem, err := ResolveType(t.Elems[0])
		if err != nil {
			return "", err
		}
		return "list<" + elem + ">", nil
	}

	intermediate, err := MapPrimitive(t.Name)
	if err != nil {
		return "", &UnsupportedTypeError{Name: t.Name, Type: t}
	}
	if t.Nullable {
		return "option<" + intermediate + ">", nil
	}
	return intermediate, nil
}

// isVoid reports whether t is the return type of an operation returning nothing.
func isVoid(t *ast.Type) bool {
	if t == nil {
		return true
	}
	if t.Generic != "" || t.Union || len(t.Elems) > 0 || t.Nullable {
		return false
	}
	return t.Name == "undefined" || t.Name == "void"
}
