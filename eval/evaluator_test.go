package eval_test

import (
	"bytes"
	"testing"

	"github.com/arana-dev/willow/eval"
	"github.com/arana-dev/willow/parser"
	"github.com/arana-dev/willow/values"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (values.Value, *eval.Evaluator) {
	t.Helper()
	p := parser.New(src)
	root := p.Parse()
	require.Falsef(t, p.HasErrors(), "parse errors: %v", p.Errors())

	var out, errOut bytes.Buffer
	e := eval.NewWithWriters(&out, &errOut)
	return e.Run(root), e
}

func TestIntArithmetic(t *testing.T) {
	v, _ := run(t, `2 + 3 * 4;`)
	require.Equal(t, "14", v.Display())
}

func TestMixedIntFloatIsError(t *testing.T) {
	v, _ := run(t, `1 + 2.5;`)
	require.True(t, values.IsError(v))
}

func TestFloatArithmetic(t *testing.T) {
	v, _ := run(t, `1.5 + 2.5;`)
	require.Equal(t, "4", v.Display())
}

func TestDivisionByZeroIsError(t *testing.T) {
	v, _ := run(t, `1 / 0;`)
	require.True(t, values.IsError(v))
}

func TestPowerOperator(t *testing.T) {
	v, _ := run(t, `2 ** 10;`)
	require.Equal(t, "1024", v.Display())
}

func TestNegativeExponentIsError(t *testing.T) {
	v, _ := run(t, `2 ** -1;`)
	require.True(t, values.IsError(v))
}

func TestStringConcat(t *testing.T) {
	v, _ := run(t, `"foo" + "bar";`)
	require.Equal(t, "foobar", v.Display())
}

func TestUnicodeScalarLength(t *testing.T) {
	v, _ := run(t, `len("あいう");`)
	require.Equal(t, "3", v.Display())
}

func TestUnicodeScalarIndexing(t *testing.T) {
	v, _ := run(t, `"あいうえお"[1];`)
	require.Equal(t, "い", v.Display())
}

func TestArrayIndexOutOfRange(t *testing.T) {
	v, _ := run(t, `[1, 2, 3][10];`)
	require.True(t, values.IsError(v))
}

func TestAppendDoesNotMutateOriginal(t *testing.T) {
	v, _ := run(t, `
		let a = [1, 2, 3];
		let b = append(a, 4);
		a;
	`)
	arr := v.(*values.Array)
	require.Len(t, arr.Elements, 3)
}

func TestAppendReturnsExtendedArray(t *testing.T) {
	v, _ := run(t, `
		let a = [1, 2, 3];
		append(a, 4);
	`)
	arr := v.(*values.Array)
	require.Len(t, arr.Elements, 4)
	require.Equal(t, "4", arr.Elements[3].Display())
}

func TestIfExpressionValue(t *testing.T) {
	v, _ := run(t, `if (true) { 1 } else { 2 };`)
	require.Equal(t, "1", v.Display())

	v, _ = run(t, `if (false) { 1 } else { 2 };`)
	require.Equal(t, "2", v.Display())
}

func TestIfWithoutElseYieldsNullWhenFalse(t *testing.T) {
	v, _ := run(t, `if (false) { 1 };`)
	require.Equal(t, values.NullKind, v.Kind())
}

func TestLetAndIdentifierLookup(t *testing.T) {
	v, _ := run(t, `let x = 5; x + 1;`)
	require.Equal(t, "6", v.Display())
}

func TestLetDuplicateInSameScopeIsError(t *testing.T) {
	v, _ := run(t, `let x = 1; let x = 2; x;`)
	require.True(t, values.IsError(v))
}

func TestLetShadowingBuiltinIsError(t *testing.T) {
	v, _ := run(t, `let len = 1;`)
	require.True(t, values.IsError(v))
}

func TestFunctionCallAndReturn(t *testing.T) {
	v, _ := run(t, `
		let add = fn(a, b) { return a + b; };
		add(2, 3);
	`)
	require.Equal(t, "5", v.Display())
}

func TestReturnUnwindsThroughNestedBlocks(t *testing.T) {
	v, _ := run(t, `
		let f = fn(x) {
			if (x > 0) {
				return x;
			}
			return 0;
		};
		f(5);
	`)
	require.Equal(t, "5", v.Display())
}

func TestClosureCapturesSharedEnvironment(t *testing.T) {
	v, _ := run(t, `
		let makeCounter = fn() {
			let step = 1;
			return fn(n) { return n + step; };
		};
		let inc = makeCounter();
		inc(inc(1));
	`)
	require.Equal(t, "3", v.Display())
}

func TestRecursiveFunction(t *testing.T) {
	v, _ := run(t, `
		let fact = fn(n) {
			if (n <= 1) { return 1; }
			return n * fact(n - 1);
		};
		fact(5);
	`)
	require.Equal(t, "120", v.Display())
}

func TestShortCircuitAnd(t *testing.T) {
	v, _ := run(t, `false && (1 / 0 == 0);`)
	require.Equal(t, "false", v.Display())
}

func TestShortCircuitOr(t *testing.T) {
	v, _ := run(t, `true || (1 / 0 == 0);`)
	require.Equal(t, "true", v.Display())
}

func TestPrintWritesToConfiguredWriter(t *testing.T) {
	p := parser.New(`print("hello");`)
	root := p.Parse()
	require.False(t, p.HasErrors())

	var out, errOut bytes.Buffer
	e := eval.NewWithWriters(&out, &errOut)
	e.Run(root)

	require.Equal(t, "hello\n", out.String())
}

func TestPiResolvesAsValue(t *testing.T) {
	v, _ := run(t, `pi;`)
	require.Equal(t, values.FloatKind, v.Kind())
}

func TestArrayEqualityIsError(t *testing.T) {
	v, _ := run(t, `[1, 2] == [1, 2];`)
	require.True(t, values.IsError(v))
}

func TestArrayConcat(t *testing.T) {
	v, _ := run(t, `[1, 2] + [3];`)
	require.Equal(t, "[1, 2, 3]", v.Display())
}

func TestZeroDivisionMessages(t *testing.T) {
	v, _ := run(t, `1 / 0;`)
	require.True(t, values.IsError(v))
	require.Equal(t, "zero division", v.Display())

	v, _ = run(t, `1 % 0;`)
	require.True(t, values.IsError(v))
	require.Equal(t, "zero division in `%`", v.Display())
}

func TestUndefinedIdentifierIsError(t *testing.T) {
	v, _ := run(t, `doesNotExist;`)
	require.True(t, values.IsError(v))
}

func TestCallArityMismatchIsError(t *testing.T) {
	v, _ := run(t, `let f = fn(a, b) { return a + b; }; f(1);`)
	require.True(t, values.IsError(v))
}

func TestBareBlockExpressionGetsFreshScope(t *testing.T) {
	v, _ := run(t, `
		let x = 1;
		let y = { let x = 2; x };
		x;
	`)
	require.Equal(t, "1", v.Display())
}

func TestBareBlockExpressionValue(t *testing.T) {
	v, _ := run(t, `
		let x = 1;
		let y = { let x = 2; x };
		y;
	`)
	require.Equal(t, "2", v.Display())
}

func TestLetEvaluatesRightHandSideBeforeDuplicateCheck(t *testing.T) {
	v, _ := run(t, `let a = 1; let a = 1 / 0;`)
	require.True(t, values.IsError(v))
	require.Equal(t, "zero division", v.Display())
}
