/*
File   : willow/values/values.go
Package: values
*/

// Package values defines Willow's run-time value model: a closed set of
// tagged variants, each implementing the Value interface. This replaces
// the teacher's open trait-object hierarchy (objects.GoMixObject with
// runtime type assertions scattered across every consumer) with a single
// Kind() tag plus Go type switches in the evaluator, which the compiler
// can help keep exhaustive.
package values

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the variant of a Value.
type Kind string

const (
	NullKind     Kind = "null"
	IntKind      Kind = "int"
	FloatKind    Kind = "float"
	BoolKind     Kind = "bool"
	CharKind     Kind = "char"
	StrKind      Kind = "str"
	ArrayKind    Kind = "array"
	FunctionKind Kind = "function"
	BuiltinKind  Kind = "builtin"
	ReturnKind   Kind = "return-marker"
	ErrorKind    Kind = "error"
)

// Value is implemented by every run-time value. Display renders the value
// the way `print` and the REPL show it; Kind identifies the variant for
// type checks in the evaluator and builtins.
type Value interface {
	Kind() Kind
	Display() string
}

// IsError reports whether v is the error-signalling variant. The evaluator
// short-circuits propagation on every IsError(v) == true result, playing
// the role of spec's Result<Value, string> error channel.
func IsError(v Value) bool {
	_, ok := v.(*Error)
	return ok
}

// Null is the value of side-effecting or empty expressions.
type Null struct{}

func (n *Null) Kind() Kind      { return NullKind }
func (n *Null) Display() string { return "null" }

var NullValue = &Null{}

// Int is a 64-bit signed integer.
type Int struct {
	Value int64
}

func (i *Int) Kind() Kind      { return IntKind }
func (i *Int) Display() string { return strconv.FormatInt(i.Value, 10) }

// Float is a 64-bit floating point number.
type Float struct {
	Value float64
}

func (f *Float) Kind() Kind      { return FloatKind }
func (f *Float) Display() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// Bool is a boolean.
type Bool struct {
	Value bool
}

func (b *Bool) Kind() Kind      { return BoolKind }
func (b *Bool) Display() string { return strconv.FormatBool(b.Value) }

var (
	True  = &Bool{Value: true}
	False = &Bool{Value: false}
)

// BoolOf returns the canonical True/False singleton for b.
func BoolOf(b bool) *Bool {
	if b {
		return True
	}
	return False
}

// Char is a single Unicode scalar value.
type Char struct {
	Value rune
}

func (c *Char) Kind() Kind      { return CharKind }
func (c *Char) Display() string { return string(c.Value) }

// Str is an immutable string, stored as a rune slice so that Len and
// indexing are Unicode-scalar operations: Len is O(1) against the cached
// slice length, and fetching the n-th scalar is O(1) indexing into the
// slice (amortizing to O(n) only if the caller rebuilds a string from
// scratch each time, which Str never does).
type Str struct {
	runes []rune
}

// NewStr constructs a Str from a Go string, pre-splitting it into scalars.
func NewStr(s string) *Str {
	return &Str{runes: []rune(s)}
}

func (s *Str) Kind() Kind      { return StrKind }
func (s *Str) Display() string { return string(s.runes) }
func (s *Str) Len() int        { return len(s.runes) }

// At returns the n-th Unicode scalar in the string. The caller is
// responsible for bounds checking (see eval's index handling, which
// reports the spec-mandated negative/out-of-bounds messages itself).
func (s *Str) At(n int) rune { return s.runes[n] }

// Concat returns a fresh Str holding s's scalars followed by other's.
func (s *Str) Concat(other *Str) *Str {
	out := make([]rune, 0, len(s.runes)+len(other.runes))
	out = append(out, s.runes...)
	out = append(out, other.runes...)
	return &Str{runes: out}
}

// Compare orders two strings lexicographically by Unicode scalar value,
// returning a negative, zero, or positive int exactly like strings.Compare.
func (s *Str) Compare(other *Str) int {
	return strings.Compare(string(s.runes), string(other.runes))
}

// Equal reports whether two strings hold the same scalar sequence.
func (s *Str) Equal(other *Str) bool {
	return string(s.runes) == string(other.runes)
}

// Array is an ordered, shared sequence of values.
type Array struct {
	Elements []Value
}

func (a *Array) Kind() Kind { return ArrayKind }
func (a *Array) Display() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.Display()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Appended returns a new Array holding a's elements plus extra. a itself
// is never mutated nor its backing array reused, so existing aliases of a
// are unaffected (spec scenario 5).
func (a *Array) Appended(extra Value) *Array {
	out := make([]Value, len(a.Elements)+1)
	copy(out, a.Elements)
	out[len(a.Elements)] = extra
	return &Array{Elements: out}
}

// ReturnMarker wraps the payload of a pending `return`. It is never
// observed by user code: Block evaluation re-wraps it on the way up
// through nested blocks, and the function/root boundary unwraps it.
// See eval's Root/Block asymmetry (spec section 4.3.1).
type ReturnMarker struct {
	Value Value
}

func (r *ReturnMarker) Kind() Kind      { return ReturnKind }
func (r *ReturnMarker) Display() string { return r.Value.Display() }

// Error is the run-time error variant. All evaluator failures are reported
// through this type rather than a second Go return value, so that a
// single Eval(node, env) Value signature can still express spec's
// Result<Value, string> contract: Error is the "Err" case.
type Error struct {
	Message string
}

func (e *Error) Kind() Kind      { return ErrorKind }
func (e *Error) Display() string { return e.Message }

// Errorf builds an *Error with a formatted message.
func Errorf(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
