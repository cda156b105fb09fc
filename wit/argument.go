package wit

import (
	"strings"

	"github.com/dennwc/webidl2wit/ast"
)

// ConvertArgument converts an operation or constructor parameter to a WIT
// parameter: `name: type`. Variadic parameters become list<T>, optional ones
// option<T>; variadic takes precedence when both are set. Names that are
// WIT keywords are escaped with %.
func ConvertArgument(p *ast.Parameter) (string, error) {
	intermediate, err := ResolveType(p.Type)
	if err != nil {
		return "", err
	}

	var final string
	switch {
	case p.Variadic:
		final = "list<" + intermediate + ">"
	case p.Optional:
		final = "option<" + intermediate + ">"
	default:
		final = intermediate
	}
	return Ident(p.Name) + ": " + final, nil
}

// convertArguments converts params in order and joins them with ", ".
func convertArguments(params []*ast.Parameter) (string, error) {
	args := make([]string, 0, len(params))
	for _, p := range params {
		arg, err := ConvertArgument(p)
		if err != nil {
			return "", err
		}
		args = append(args, arg)
	}
	return strings.Join(args, ", "), nil
}
