package ast

type Node interface {
	NodeBase() *Base
}

type Base struct {
	Start    int          `json:"start"` // byte offset
	End      int          `json:"end"`   // byte offset, inclusive
	Comments []string     `json:"comments,omitempty"`
	Errors   []*ErrorNode `json:"errors,omitempty"`
}

func (b *Base) NodeBase() *Base {
	return b
}

// error occurred; value is text of error
type ErrorNode struct {
	Base
	Message string `json:"message"`
}

// Decl is a top-level declaration.
type Decl interface {
	Node
	// Kind is the declaration keyword, e.g. "interface" or "dictionary".
	Kind() string
	isDecl()
}

// InterfaceMember is a member of an interface body.
type InterfaceMember interface {
	Node
	isInterfaceMember()
}

// MixinMember is a member of an interface mixin body.
type MixinMember interface {
	Node
	isMixinMember()
}

// The file root node
type File struct {
	Base
	Declarations []Decl `json:"declarations,omitempty"`
}

// interface Foo : Bar { ... }
type Interface struct {
	Base
	Partial     bool              `json:"partial,omitempty"`
	Callback    bool              `json:"callback,omitempty"`
	Name        string            `json:"name"`
	Inherits    string            `json:"inherits,omitempty"`
	Annotations []*Annotation     `json:"annotations,omitempty"`
	Members     []InterfaceMember `json:"members,omitempty"`
}

func (*Interface) isDecl() {}

func (n *Interface) Kind() string {
	if n.Callback {
		return "callback interface"
	}
	return "interface"
}

// interface mixin Foo { ... }
type Mixin struct {
	Base
	Partial     bool          `json:"partial,omitempty"`
	Name        string        `json:"name"`
	Annotations []*Annotation `json:"annotations,omitempty"`
	Members     []MixinMember `json:"members,omitempty"`
}

func (*Mixin) isDecl()      {}
func (*Mixin) Kind() string { return "interface mixin" }

type Dictionary struct {
	Base
	Partial     bool          `json:"partial,omitempty"`
	Name        string        `json:"name"`
	Inherits    string        `json:"inherits,omitempty"`
	Annotations []*Annotation `json:"annotations,omitempty"`
	Members     []*Member     `json:"members,omitempty"`
}

func (*Dictionary) isDecl()      {}
func (*Dictionary) Kind() string { return "dictionary" }

// enum Foo { "a", "b" };
type Enum struct {
	Base
	Name        string        `json:"name"`
	Annotations []*Annotation `json:"annotations,omitempty"`
	Values      []*Literal    `json:"values,omitempty"`
}

func (*Enum) isDecl()      {}
func (*Enum) Kind() string { return "enum" }

// callback Foo = undefined (long x);
type Callback struct {
	Base
	Name       string       `json:"name"`
	Return     *Type        `json:"return,omitempty"`
	Parameters []*Parameter `json:"parameters,omitempty"`
}

func (*Callback) isDecl()      {}
func (*Callback) Kind() string { return "callback" }

// typedef sequence<long> Longs;
type Typedef struct {
	Base
	Name        string        `json:"name"`
	Type        *Type         `json:"type"`
	Annotations []*Annotation `json:"annotations,omitempty"`
}

func (*Typedef) isDecl()      {}
func (*Typedef) Kind() string { return "typedef" }

// [Constructor], []
type Annotation struct {
	Base
	Name       string       `json:"name"`
	Value      string       `json:"value,omitempty"`      // [A=B]
	Parameters []*Parameter `json:"parameters,omitempty"` // [A(X x, Y y)]
	Values     []string     `json:"values,omitempty"`     // [A=(a,b,c)]
}

// optional any SomeArg
type Parameter struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
	Type        *Type         `json:"type"`
	Optional    bool          `json:"optional,omitempty"`
	Variadic    bool          `json:"variadic,omitempty"`
	Name        string        `json:"name"`
	Init        *Literal      `json:"init,omitempty"`
}

// Window implements ECMA262Globals
type Implementation struct {
	Base
	Name   string `json:"name"`
	Source string `json:"source"`
}

func (*Implementation) isDecl()      {}
func (*Implementation) Kind() string { return "implements" }

// Document includes DocumentOrShadowRoot
type Includes struct {
	Base
	Name   string `json:"name"`
	Source string `json:"source"`
}

func (*Includes) isDecl()      {}
func (*Includes) Kind() string { return "includes" }

// constructor(DOMString init);
type Constructor struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
	Parameters  []*Parameter  `json:"parameters,omitempty"`
}

func (*Constructor) isInterfaceMember() {}

// readonly attribute something
type Member struct {
	Base
	Name           string        `json:"name,omitempty"`
	Type           *Type         `json:"type,omitempty"`
	Init           *Literal      `json:"init,omitempty"`
	Attribute      bool          `json:"attribute,omitempty"`
	Static         bool          `json:"static,omitempty"`
	Const          bool          `json:"const,omitempty"`
	Readonly       bool          `json:"readonly,omitempty"`
	Inherit        bool          `json:"inherit,omitempty"`
	Required       bool          `json:"required,omitempty"`
	Specialization string        `json:"specialization,omitempty"`
	Parameters     []*Parameter  `json:"parameters,omitempty"`
	Annotations    []*Annotation `json:"annotations,omitempty"`
}

func (*Member) isInterfaceMember() {}
func (*Member) isMixinMember()     {}

// Special returns the special keyword of the member: "static" for static
// members, otherwise the specialization (getter, setter, deleter, stringifier).
func (m *Member) Special() string {
	if m.Static {
		return "static"
	}
	return m.Specialization
}

// serializer; jsonifier;
type CustomOp struct {
	Base
	Name string `json:"name"`
}

func (*CustomOp) isInterfaceMember() {}
func (*CustomOp) isMixinMember()     {}

// iterable<K, V>, async iterable<V>, maplike<K, V>, setlike<V>
type Iterable struct {
	Base
	Kind     string  `json:"kind"`
	Async    bool    `json:"async,omitempty"`
	Readonly bool    `json:"readonly,omitempty"`
	Types    []*Type `json:"types"`
}

func (*Iterable) isInterfaceMember() {}

// Type describes an IDL type.
//
// A plain type has Name set. Generic types (sequence<T>, FrozenArray<T>,
// record<K, V>, ...) set Generic and carry their arguments in Elems. Unions
// set Union and carry their members in Elems. A parenthesised single type
// carries it as the only element of Elems, with neither Generic nor Union.
type Type struct {
	Base
	Name     string  `json:"name,omitempty"`
	Elems    []*Type `json:"elems,omitempty"`
	Generic  string  `json:"generic,omitempty"`
	Union    bool    `json:"union,omitempty"`
	Nullable bool    `json:"nullable,omitempty"`
}

// Literal is a constant or default value as written in the source.
type Literal struct {
	Base
	Value string `json:"value"`
}
