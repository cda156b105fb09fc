// Package wit converts WebIDL parse trees into WIT interface definitions.
//
// Every WebIDL interface becomes a resource: an opaque u32 handle type, a
// drop function and one function per member, all prefixed with the
// kebab-case interface name. Only a restricted subset of WebIDL converts.
// Anything else (unions, inheritance, special members other than the
// stringifier operation, non-interface declarations) fails with a
// ConversionError naming the offending node.
//
// https://github.com/WebAssembly/component-model/blob/main/design/mvp/WIT.md
package wit

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/dennwc/webidl2wit/ast"
)

const indent = "\t"

// Convert converts the declarations of a WebIDL file into a single WIT
// interface named name, escaped with % if it is a WIT keyword. The first unsupported construct aborts the
// conversion; no partial output is returned.
func Convert(decls []ast.Decl, name string) (string, error) {
	var sb strings.Builder
	if witKeywords[name] {
		name = "%" + name
	}
	sb.WriteString(fmt.Sprintf("default interface %s {\n", name))
	for i, d := range decls {
		iface, ok := d.(*ast.Interface)
		if !ok || iface.Callback {
			return "", &UnsupportedRootKindError{Decl: d}
		}
		block, err := ConvertInterface(iface)
		if err != nil {
			return "", err
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(block)
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}

// ConvertInterface converts one interface into the indented body lines of
// a WIT interface: the handle type, its drop function and the members in
// declaration order.
func ConvertInterface(iface *ast.Interface) (string, error) {
	if iface.Inherits != "" {
		return "", &UnsupportedInheritanceError{Inheritor: iface}
	}
	r := ResourceOf(iface)

	var members []string
	for _, m := range iface.Members {
		lines, err := r.ConvertMember(m)
		if err != nil {
			return "", err
		}
		members = append(members, lines...)
	}

	var sb strings.Builder
	writeLines := func(lines ...string) {
		for _, l := range lines {
			if l != "" {
				sb.WriteString(indent)
				sb.WriteString(l)
			}
			sb.WriteString("\n")
		}
	}
	writeLines(
		fmt.Sprintf("/// A %s object.", iface.Name),
		"///",
		"/// This [represents a resource](https://github.com/WebAssembly/WASI/blob/main/docs/WitInWasi.md#Resources).",
		fmt.Sprintf("type %s = u32", r.Handle),
		"",
		fmt.Sprintf("/// Dispose of the specified `%s`, after which it may no longer", r.Handle),
		"/// be used.",
		fmt.Sprintf("drop-%s: func(this: %s)", r.Name, r.Handle),
	)
	if len(members) > 0 {
		writeLines("")
		writeLines(members...)
	}
	return sb.String(), nil
}

// Check runs the conversion over every declaration and member and returns
// all failures combined, in declaration order. It returns nil exactly when
// Convert succeeds. Use multierr.Errors to get the individual errors.
func Check(decls []ast.Decl) error {
	var errs error
	for _, d := range decls {
		iface, ok := d.(*ast.Interface)
		if !ok || iface.Callback {
			errs = multierr.Append(errs, &UnsupportedRootKindError{Decl: d})
			continue
		}
		if iface.Inherits != "" {
			errs = multierr.Append(errs, &UnsupportedInheritanceError{Inheritor: iface})
		}
		r := ResourceOf(iface)
		for _, m := range iface.Members {
			if _, err := r.ConvertMember(m); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
	}
	return errs
}
