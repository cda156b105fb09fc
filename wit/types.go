package wit

// TypeMapping defines how WebIDL primitive types map to WIT types.
//
// https://webidl.spec.whatwg.org/#idl-types
// https://github.com/WebAssembly/component-model/blob/main/design/mvp/WIT.md#types
var TypeMapping = map[string]string{
	"ByteString": "string",
	"DOMString":  "string",
	"USVString":  "string",

	"octet":              "u8",
	"byte":               "s8",
	"unsigned short":     "u16",
	"short":              "s16",
	"unsigned long":      "u32",
	"long":               "s32",
	"unsigned long long": "u64",
	"long long":          "s64",

	"float":               "float32",
	"unrestricted float":  "float32",
	"double":              "float64",
	"unrestricted double": "float64",

	"boolean": "bool",

	"undefined": "()",
}

// listGenerics are the generic types converted to list<T>.
var listGenerics = map[string]bool{
	"sequence":        true,
	"FrozenArray":     true,
	"ObservableArray": true,
}

// MapPrimitive returns the WIT name of a WebIDL primitive type.
func MapPrimitive(name string) (string, error) {
	if wit, ok := TypeMapping[name]; ok {
		return wit, nil
	}
	return "", &UnsupportedTypeError{Name: name}
}
