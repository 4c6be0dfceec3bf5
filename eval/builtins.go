/*
File   : willow/eval/builtins.go
Package: eval
*/
package eval

import (
	"fmt"
	"math"
	"os"

	"github.com/arana-dev/willow/function"
	"github.com/arana-dev/willow/values"
)

// newBuiltins constructs the fixed built-in table (spec section 4.3.11).
// Every entry but `pi` is a *function.Builtin; `pi` resolves directly to
// a Float value, since it is documented as "(value)" rather than a
// callable arity in the built-in table. Callable entries close over e
// so `print`/`eprint` write through the Evaluator's configured writers
// instead of the process's real stdout/stderr; `exit` reaches os.Exit
// directly since there is no Willow-level notion of unwinding past the
// REPL.
func newBuiltins(e *Evaluator) map[string]values.Value {
	callables := []*function.Builtin{
		{Name: "print", Arity: 1, Fn: func(args []values.Value) values.Value {
			if err := checkArity("print", args, 1); err != nil {
				return err
			}
			fmt.Fprintln(e.Writer, args[0].Display())
			return values.NullValue
		}},
		{Name: "eprint", Arity: 1, Fn: func(args []values.Value) values.Value {
			if err := checkArity("eprint", args, 1); err != nil {
				return err
			}
			fmt.Fprintln(e.ErrWriter, args[0].Display())
			return values.NullValue
		}},
		{Name: "exit", Arity: 1, Fn: func(args []values.Value) values.Value {
			if err := checkArity("exit", args, 1); err != nil {
				return err
			}
			code, ok := args[0].(*values.Int)
			if !ok {
				return values.Errorf("argument type mismatch")
			}
			os.Exit(int(code.Value))
			return values.NullValue
		}},
		{Name: "len", Arity: 1, Fn: func(args []values.Value) values.Value {
			if err := checkArity("len", args, 1); err != nil {
				return err
			}
			switch v := args[0].(type) {
			case *values.Str:
				return &values.Int{Value: int64(v.Len())}
			case *values.Array:
				return &values.Int{Value: int64(len(v.Elements))}
			default:
				return values.Errorf("argument type mismatch")
			}
		}},
		{Name: "append", Arity: 2, Fn: func(args []values.Value) values.Value {
			if err := checkArity("append", args, 2); err != nil {
				return err
			}
			arr, ok := args[0].(*values.Array)
			if !ok {
				return values.Errorf("argument type mismatch")
			}
			return arr.Appended(args[1])
		}},
		{Name: "bool", Arity: 1, Fn: func(args []values.Value) values.Value {
			if err := checkArity("bool", args, 1); err != nil {
				return err
			}
			switch v := args[0].(type) {
			case *values.Int:
				return values.BoolOf(v.Value != 0)
			case *values.Float:
				return values.BoolOf(v.Value != 0)
			case *values.Str:
				return values.BoolOf(v.Len() != 0)
			case *values.Array:
				return values.BoolOf(len(v.Elements) != 0)
			default:
				return values.Errorf("argument type mismatch")
			}
		}},
		{Name: "str", Arity: 1, Fn: func(args []values.Value) values.Value {
			if err := checkArity("str", args, 1); err != nil {
				return err
			}
			v, ok := args[0].(*values.Char)
			if !ok {
				return values.Errorf("argument type mismatch")
			}
			return values.NewStr(string(v.Value))
		}},
		{Name: "int", Arity: 1, Fn: func(args []values.Value) values.Value {
			if err := checkArity("int", args, 1); err != nil {
				return err
			}
			v, ok := args[0].(*values.Float)
			if !ok {
				return values.Errorf("argument type mismatch")
			}
			return &values.Int{Value: int64(v.Value)}
		}},
		{Name: "float", Arity: 1, Fn: func(args []values.Value) values.Value {
			if err := checkArity("float", args, 1); err != nil {
				return err
			}
			v, ok := args[0].(*values.Int)
			if !ok {
				return values.Errorf("argument type mismatch")
			}
			return &values.Float{Value: float64(v.Value)}
		}},
	}

	m := make(map[string]values.Value, len(callables)+1)
	for _, b := range callables {
		m[b.Name] = b
	}
	m["pi"] = &values.Float{Value: math.Pi}
	return m
}

func checkArity(name string, args []values.Value, want int) *values.Error {
	if len(args) != want {
		return values.Errorf("argument number mismatch")
	}
	return nil
}
