package script

import (
	"errors"

	"github.com/robertkrimen/otto/ast"
	"github.com/robertkrimen/otto/parser"
)

// Compile parses and evaluates a script, returning a Compiled object
// ready to be run. The script must declare at least one function, the
// first one declared is the entry point.
func Compile(name, code string) (*Compiled, error) {
	program, err := parser.ParseFile(nil, name, code, 0)
	if err != nil {
		return nil, err
	}

	entry := ""
	for _, d := range program.DeclarationList {
		if fn, ok := d.(*ast.FunctionDeclaration); ok {
			entry = fn.Function.Name.Name
			break
		}
	}
	if entry == "" {
		return nil, errors.New("expected a function declaration")
	}

	vm := NewVM()
	if _, err := vm.Run(code); err != nil {
		return nil, err
	}

	return &Compiled{
		name:  name,
		src:   code,
		entry: entry,
		vm:    vm,
	}, nil
}
