package wit

import (
	"fmt"

	"github.com/dennwc/webidl2wit/ast"
)

// Resource is the WIT resource implied by a WebIDL interface: an opaque u32
// handle plus a drop function. It is derived from the interface on demand.
//
// https://github.com/WebAssembly/WASI/blob/main/docs/WitInWasi.md#Resources
type Resource struct {
	Interface *ast.Interface
	Name      string // kebab-case interface name
	Handle    string // Name + "-handle"
}

// ResourceOf returns the resource view of iface.
func ResourceOf(iface *ast.Interface) Resource {
	name := Kebab(iface.Name)
	return Resource{
		Interface: iface,
		Name:      name,
		Handle:    name + "-handle",
	}
}

// ConvertMember converts one interface member into WIT function
// declarations, one per returned line.
//
// Writable attributes produce a second line for the setter, emitted under
// the getter's -get- name.
func (r Resource) ConvertMember(m ast.InterfaceMember) ([]string, error) {
	switch m := m.(type) {
	case *ast.Constructor:
		args, err := convertArguments(m.Parameters)
		if err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("%s-new: func(%s) -> %s", r.Name, args, r.Handle)}, nil
	case *ast.Member:
		switch {
		case m.Const:
			return nil, &UnsupportedMemberKindError{Member: m, MemberKind: "const"}
		case m.Attribute:
			return r.convertAttribute(m)
		default:
			return r.convertOperation(m)
		}
	case *ast.Iterable:
		kind := m.Kind
		if m.Async {
			kind = "async " + kind
		}
		return nil, &UnsupportedMemberKindError{Member: m, MemberKind: kind}
	case *ast.CustomOp:
		return nil, &UnsupportedMemberKindError{Member: m, MemberKind: m.Name}
	default:
		return nil, &UnsupportedMemberKindError{Member: m, MemberKind: fmt.Sprintf("%T", m)}
	}
}

func (r Resource) convertAttribute(m *ast.Member) ([]string, error) {
	if m.Inherit {
		return nil, &UnsupportedInheritanceError{Inheritor: m}
	}
	if special := m.Special(); special != "" {
		return nil, &UnsupportedSpecialAttributeError{Member: m, Special: special}
	}

	typ, err := ResolveType(m.Type)
	if err != nil {
		return nil, err
	}
	name := Kebab(m.Name)
	lines := []string{
		fmt.Sprintf("%s-get-%s: func(handle: %s) -> %s", r.Name, name, r.Handle, typ),
	}
	if !m.Readonly {
		// TODO: emit the setter as <resource>-set-<name> once consumers of
		// the generated files have moved off the duplicated -get- name.
		lines = append(lines, fmt.Sprintf("%s-get-%s: func(handle: %s, value: %s)", r.Name, name, r.Handle, typ))
	}
	return lines, nil
}

func (r Resource) convertOperation(m *ast.Member) ([]string, error) {
	switch special := m.Special(); special {
	case "":
	case "stringifier":
		return []string{fmt.Sprintf("%s-to-string: func(handle: %s) -> string", r.Name, r.Handle)}, nil
	default:
		return nil, &UnsupportedSpecialAttributeError{Member: m, Special: special}
	}

	args, err := convertArguments(m.Parameters)
	if err != nil {
		return nil, err
	}
	params := "handle: " + r.Handle
	if args != "" {
		params += ", " + args
	}

	line := fmt.Sprintf("%s-%s: func(%s)", r.Name, Kebab(m.Name), params)
	if !isVoid(m.Type) {
		ret, err := ResolveType(m.Type)
		if err != nil {
			return nil, err
		}
		line += " -> " + ret
	}
	return []string{line}, nil
}
