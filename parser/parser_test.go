package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dennwc/webidl2wit/ast"
)

// stripPositions clears positions and comments so trees can be compared structurally.
func stripPositions(n ast.Node) {
	ast.Walk(n, func(n ast.Node) bool {
		*n.NodeBase() = ast.Base{}
		return true
	})
}

func parseClean(t *testing.T, src string) *ast.File {
	t.Helper()
	f := Parse(src)
	require.NoError(t, Errors(src, f))
	return f
}

func TestParseTypes(t *testing.T) {
	cases := []struct {
		name string
		src  string
		exp  *ast.Type
	}{
		{"primitive", "long", &ast.Type{Name: "long"}},
		{"expanded", "unsigned long long", &ast.Type{Name: "unsigned long long"}},
		{"long long", "long long", &ast.Type{Name: "long long"}},
		{"nullable", "unrestricted double?", &ast.Type{Name: "unrestricted double", Nullable: true}},
		{"annotated", "[EnforceRange] unsigned short", &ast.Type{Name: "unsigned short"}},
		{"sequence", "sequence<DOMString>", &ast.Type{
			Generic: "sequence",
			Elems:   []*ast.Type{{Name: "DOMString"}},
		}},
		{"nested generic", "FrozenArray<sequence<octet>>", &ast.Type{
			Generic: "FrozenArray",
			Elems: []*ast.Type{{
				Generic: "sequence",
				Elems:   []*ast.Type{{Name: "octet"}},
			}},
		}},
		{"record", "record<DOMString, long>", &ast.Type{
			Generic: "record",
			Elems:   []*ast.Type{{Name: "DOMString"}, {Name: "long"}},
		}},
		{"union", "(long or DOMString)?", &ast.Type{
			Union:    true,
			Nullable: true,
			Elems:    []*ast.Type{{Name: "long"}, {Name: "DOMString"}},
		}},
		{"group", "(long)", &ast.Type{
			Elems: []*ast.Type{{Name: "long"}},
		}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			f := parseClean(t, "typedef "+c.src+" X;")
			require.Len(t, f.Declarations, 1)
			td, ok := f.Declarations[0].(*ast.Typedef)
			require.True(t, ok, "%T", f.Declarations[0])
			require.Equal(t, "X", td.Name)
			stripPositions(td.Type)
			require.Equal(t, c.exp, td.Type)
		})
	}
}

const membersSrc = `
[Exposed=Window]
interface Foo : Bar {
  constructor(DOMString init, optional long n = 0);
  readonly attribute unsigned long size;
  inherit attribute DOMString name;
  stringifier;
  stringifier attribute USVString href;
  static Foo create();
  getter DOMString (unsigned long index);
  const short MAX = 10;
  iterable<DOMString, USVString>;
  undefined append(DOMString... values);
  serializer;
};
`

func TestParseMembers(t *testing.T) {
	f := parseClean(t, membersSrc)
	require.Len(t, f.Declarations, 1)

	iface, ok := f.Declarations[0].(*ast.Interface)
	require.True(t, ok)
	assert.Equal(t, "Foo", iface.Name)
	assert.Equal(t, "Bar", iface.Inherits)
	assert.Equal(t, "interface", iface.Kind())
	require.Len(t, iface.Annotations, 1)
	assert.Equal(t, "Exposed", iface.Annotations[0].Name)
	assert.Equal(t, "Window", iface.Annotations[0].Value)

	m := iface.Members
	require.Len(t, m, 11)

	ctor, ok := m[0].(*ast.Constructor)
	require.True(t, ok, "%T", m[0])
	require.Len(t, ctor.Parameters, 2)
	assert.Equal(t, "init", ctor.Parameters[0].Name)
	assert.True(t, ctor.Parameters[1].Optional)
	require.NotNil(t, ctor.Parameters[1].Init)
	assert.Equal(t, "0", ctor.Parameters[1].Init.Value)

	size := m[1].(*ast.Member)
	assert.True(t, size.Attribute)
	assert.True(t, size.Readonly)
	assert.Equal(t, "size", size.Name)
	assert.Equal(t, "unsigned long", size.Type.Name)

	name := m[2].(*ast.Member)
	assert.True(t, name.Inherit)
	assert.True(t, name.Attribute)

	str := m[3].(*ast.Member)
	assert.Equal(t, "stringifier", str.Special())
	assert.False(t, str.Attribute)
	assert.Nil(t, str.Type)

	href := m[4].(*ast.Member)
	assert.Equal(t, "stringifier", href.Special())
	assert.True(t, href.Attribute)
	assert.Equal(t, "href", href.Name)

	create := m[5].(*ast.Member)
	assert.Equal(t, "static", create.Special())
	assert.Equal(t, "create", create.Name)

	getter := m[6].(*ast.Member)
	assert.Equal(t, "getter", getter.Special())
	assert.Empty(t, getter.Name)
	require.Len(t, getter.Parameters, 1)

	max := m[7].(*ast.Member)
	assert.True(t, max.Const)
	require.NotNil(t, max.Init)
	assert.Equal(t, "10", max.Init.Value)

	iter, ok := m[8].(*ast.Iterable)
	require.True(t, ok, "%T", m[8])
	assert.Equal(t, "iterable", iter.Kind)
	assert.Len(t, iter.Types, 2)

	appendOp := m[9].(*ast.Member)
	assert.Equal(t, "append", appendOp.Name)
	assert.Equal(t, "undefined", appendOp.Type.Name)
	require.Len(t, appendOp.Parameters, 1)
	assert.True(t, appendOp.Parameters[0].Variadic)

	_, ok = m[10].(*ast.CustomOp)
	assert.True(t, ok, "%T", m[10])
}

func TestParseDeclarations(t *testing.T) {
	const src = `
partial interface Foo {};
interface mixin Bar {};
callback interface Listener { undefined handle(); };
callback Done = undefined (boolean ok);
dictionary Options : Base { required long size; boolean flag = false; };
enum Mode { "a", "b", };
typedef sequence<long> Longs;
Foo includes Bar;
Foo implements Baz;
`
	f := parseClean(t, src)

	var kinds []string
	for _, d := range f.Declarations {
		kinds = append(kinds, d.Kind())
	}
	assert.Equal(t, []string{
		"interface",
		"interface mixin",
		"callback interface",
		"callback",
		"dictionary",
		"enum",
		"typedef",
		"includes",
		"implements",
	}, kinds)

	assert.True(t, f.Declarations[0].(*ast.Interface).Partial)

	dict := f.Declarations[4].(*ast.Dictionary)
	assert.Equal(t, "Base", dict.Inherits)
	require.Len(t, dict.Members, 2)
	assert.True(t, dict.Members[0].Required)
	assert.Equal(t, "false", dict.Members[1].Init.Value)

	enum := f.Declarations[5].(*ast.Enum)
	require.Len(t, enum.Values, 2)
	assert.Equal(t, `"b"`, enum.Values[1].Value)
}

func TestParseComments(t *testing.T) {
	f := parseClean(t, "// A thing.\ninterface Foo {};")
	require.Len(t, f.Declarations, 1)
	assert.Equal(t, []string{"// A thing."}, f.Declarations[0].NodeBase().Comments)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		exp  string
	}{
		{
			name: "missing semicolon",
			src:  "interface Foo {\n  readonly attribute long x\n};",
			exp:  "3:1: Expected one of: [Semicolon], found: RightBrace",
		},
		{
			name: "unknown root",
			src:  "namespace Foo {};",
			exp:  "1:1: Unexpected token at root level: Identifier",
		},
		{
			name: "lexer error",
			src:  "interface Foo {\n  #\n};",
			exp:  "2:3: unrecognized character at this location: U+0023 '#'",
		},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			err := Errors(c.src, Parse(c.src))
			require.Error(t, err)
			list, ok := err.(ErrorList)
			require.True(t, ok, "%T", err)
			require.NotEmpty(t, list)
			assert.Equal(t, c.exp, list[0].Error())
		})
	}
}

func TestPosition(t *testing.T) {
	src := "ab\ncdé\nf"
	line, col := Position(src, 0)
	assert.Equal(t, [2]int{1, 1}, [2]int{line, col})
	line, col = Position(src, 3)
	assert.Equal(t, [2]int{2, 1}, [2]int{line, col})
	line, col = Position(src, strings.Index(src, "f"))
	assert.Equal(t, [2]int{3, 1}, [2]int{line, col})
	line, col = Position(src, strings.Index(src, "\nf"))
	assert.Equal(t, [2]int{2, 4}, [2]int{line, col})
}

func TestDumpString(t *testing.T) {
	f := parseClean(t, "interface Foo {};")
	out := DumpString(f)
	assert.Contains(t, out, "ast.File")
	assert.Contains(t, out, `"Foo"`)
}
