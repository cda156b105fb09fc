package wit

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/dennwc/webidl2wit/ast"
)

// ErrorKind enumerates the constructs the converter refuses to translate.
type ErrorKind int

const (
	UnsupportedType ErrorKind = iota + 1
	UnsupportedUnion
	UnsupportedCompoundType
	UnsupportedGeneric
	UnsupportedInheritance
	UnsupportedSpecialAttribute
	UnsupportedMemberKind
	UnsupportedRootKind
)

var errorKindNames = map[ErrorKind]string{
	UnsupportedType:             "UnsupportedType",
	UnsupportedUnion:            "UnsupportedUnion",
	UnsupportedCompoundType:     "UnsupportedCompoundType",
	UnsupportedGeneric:          "UnsupportedGeneric",
	UnsupportedInheritance:      "UnsupportedInheritance",
	UnsupportedSpecialAttribute: "UnsupportedSpecialAttribute",
	UnsupportedMemberKind:       "UnsupportedMemberKind",
	UnsupportedRootKind:         "UnsupportedRootKind",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ConversionError is implemented by every error the converter returns.
// The set of implementations is closed; switch on the concrete type to get
// the payload of each kind.
type ConversionError interface {
	error
	Kind() ErrorKind
	// Node is the offending tree node, or nil when the payload is a raw name.
	Node() ast.Node
	isConversionError()
}

// KindOf returns the kind of the conversion error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var cerr ConversionError
	if errors.As(err, &cerr) {
		return cerr.Kind(), true
	}
	return 0, false
}

// UnsupportedTypeError reports a primitive name missing from the type table.
// Type is the offending node when the name came from a parse tree.
type UnsupportedTypeError struct {
	Name string
	Type *ast.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %q", e.Name)
}
func (e *UnsupportedTypeError) Kind() ErrorKind  { return UnsupportedType }
func (*UnsupportedTypeError) isConversionError() {}

func (e *UnsupportedTypeError) Node() ast.Node {
	if e.Type == nil {
		return nil
	}
	return e.Type
}

// UnsupportedUnionError reports a union type.
type UnsupportedUnionError struct {
	Type *ast.Type
}

func (e *UnsupportedUnionError) Error() string {
	return "unions not currently supported"
}
func (e *UnsupportedUnionError) Kind() ErrorKind  { return UnsupportedUnion }
func (e *UnsupportedUnionError) Node() ast.Node   { return e.Type }
func (*UnsupportedUnionError) isConversionError() {}

// UnsupportedCompoundTypeError reports a wrapped or generic type that does not
// have exactly one element.
type UnsupportedCompoundTypeError struct {
	Type *ast.Type
}

func (e *UnsupportedCompoundTypeError) Error() string {
	return fmt.Sprintf("unsupported compound type with %d elements", len(e.Type.Elems))
}
func (e *UnsupportedCompoundTypeError) Kind() ErrorKind  { return UnsupportedCompoundType }
func (e *UnsupportedCompoundTypeError) Node() ast.Node   { return e.Type }
func (*UnsupportedCompoundTypeError) isConversionError() {}

// UnsupportedGenericError reports a generic type other than the list-like ones.
type UnsupportedGenericError struct {
	Type *ast.Type
}

func (e *UnsupportedGenericError) Error() string {
	return fmt.Sprintf("unsupported generic type %q", e.Type.Generic)
}
func (e *UnsupportedGenericError) Kind() ErrorKind  { return UnsupportedGeneric }
func (e *UnsupportedGenericError) Node() ast.Node   { return e.Type }
func (*UnsupportedGenericError) isConversionError() {}

// UnsupportedInheritanceError reports an inherited attribute (*ast.Member) or
// an interface with a parent (*ast.Interface).
type UnsupportedInheritanceError struct {
	Inheritor ast.Node
}

func (e *UnsupportedInheritanceError) Error() string {
	if iface, ok := e.Inheritor.(*ast.Interface); ok {
		return fmt.Sprintf("interface inheritance not supported (%s : %s)", iface.Name, iface.Inherits)
	}
	return "inherited attributes not supported"
}
func (e *UnsupportedInheritanceError) Kind() ErrorKind  { return UnsupportedInheritance }
func (e *UnsupportedInheritanceError) Node() ast.Node   { return e.Inheritor }
func (*UnsupportedInheritanceError) isConversionError() {}

// UnsupportedSpecialAttributeError reports a special keyword (static, getter,
// setter, deleter, or stringifier on an attribute) on a member.
type UnsupportedSpecialAttributeError struct {
	Member  *ast.Member
	Special string
}

func (e *UnsupportedSpecialAttributeError) Error() string {
	return fmt.Sprintf("unsupported special attribute %q", e.Special)
}
func (e *UnsupportedSpecialAttributeError) Kind() ErrorKind  { return UnsupportedSpecialAttribute }
func (e *UnsupportedSpecialAttributeError) Node() ast.Node   { return e.Member }
func (*UnsupportedSpecialAttributeError) isConversionError() {}

// UnsupportedMemberKindError reports an interface member that is neither a
// constructor, an attribute nor an operation.
type UnsupportedMemberKindError struct {
	Member     ast.InterfaceMember
	MemberKind string
}

func (e *UnsupportedMemberKindError) Error() string {
	return fmt.Sprintf("unsupported interface member kind %q", e.MemberKind)
}
func (e *UnsupportedMemberKindError) Kind() ErrorKind  { return UnsupportedMemberKind }
func (e *UnsupportedMemberKindError) Node() ast.Node   { return e.Member }
func (*UnsupportedMemberKindError) isConversionError() {}

// UnsupportedRootKindError reports a top-level declaration that is not an interface.
type UnsupportedRootKindError struct {
	Decl ast.Decl
}

func (e *UnsupportedRootKindError) Error() string {
	return fmt.Sprintf("unsupported root declaration kind %q", e.Decl.Kind())
}
func (e *UnsupportedRootKindError) Kind() ErrorKind  { return UnsupportedRootKind }
func (e *UnsupportedRootKindError) Node() ast.Node   { return e.Decl }
func (*UnsupportedRootKindError) isConversionError() {}
