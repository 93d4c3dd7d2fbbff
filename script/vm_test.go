package script

import (
	"math"
	"strings"
	"testing"

	"github.com/matscript/matscript/wrapper"
)

func runExpectError(t *testing.T, code, expected string) {
	vm := NewVM()
	_, _, err := vm.RunWithContext(code)
	if err == nil {
		t.Fatalf("an error was expected for '%s'", code)
	} else if !strings.Contains(err.Error(), expected) {
		t.Fatalf("expected error message '%s', got '%s'", expected, err)
	}
}

func exportMat(t *testing.T, vm *VM, code string) *wrapper.Mat {
	_, val, err := vm.RunWithContext(code)
	if err != nil {
		t.Fatal(err)
	}
	exported, err := val.Export()
	if err != nil {
		t.Fatal(err)
	}
	m, ok := exported.(*wrapper.Mat)
	if !ok {
		t.Fatalf("expected a wrapped mat, got %T", exported)
	}
	return m
}

func TestVMConstants(t *testing.T) {
	vm := NewVM()
	for name, expected := range constants {
		val, err := vm.Get(name)
		if err != nil {
			t.Fatal(err)
		}
		got, err := val.ToInteger()
		if err != nil {
			t.Fatal(err)
		} else if int(got) != expected {
			t.Fatalf("expected %s = %d, got %d", name, expected, got)
		}
	}
}

func TestMatFromNestedArray(t *testing.T) {
	vm := NewVM()
	m := exportMat(t, vm, "Mat([[1, 2], [3, 4]])")
	if m.Rows != 2 || m.Cols != 2 {
		t.Fatalf("unexpected shape %dx%d", m.Rows, m.Cols)
	} else if m.Get(1, 0) != 3 {
		t.Fatalf("expected 3, got %f", m.Get(1, 0))
	}
}

func TestMatFromNestedArrayWithType(t *testing.T) {
	vm := NewVM()
	m := exportMat(t, vm, "Mat([[300, -5]], CV_8UC1)")
	// values saturate to the requested depth
	if m.Get(0, 0) != 255 {
		t.Fatalf("expected 255, got %f", m.Get(0, 0))
	} else if m.Get(0, 1) != 0 {
		t.Fatalf("expected 0, got %f", m.Get(0, 1))
	}
}

func TestMatFromSize(t *testing.T) {
	vm := NewVM()
	m := exportMat(t, vm, "Mat(3, 4, CV_8UC3)")
	if m.Rows != 3 || m.Cols != 4 || m.Channels != 3 {
		t.Fatalf("unexpected shape %dx%dx%d", m.Rows, m.Cols, m.Channels)
	} else if m.Get(2, 3) != 0 {
		t.Fatal("expected a zero filled mat")
	}
}

func TestMatFromSizeWithFill(t *testing.T) {
	vm := NewVM()
	m := exportMat(t, vm, "Mat(2, 2, CV_8UC1, 7)")
	if m.Get(1, 1) != 7 {
		t.Fatalf("expected 7, got %f", m.Get(1, 1))
	}

	m = exportMat(t, vm, "Mat(2, 2, CV_8UC3, [1, 2, 3])")
	if m.At(0, 0, 2) != 3 {
		t.Fatalf("expected 3, got %f", m.At(0, 0, 2))
	}
}

func TestMatFromChannels(t *testing.T) {
	vm := NewVM()
	m := exportMat(t, vm, `
var r = Mat(2, 2, CV_8UC1, 10);
var g = Mat(2, 2, CV_8UC1, 20);
var b = Mat(2, 2, CV_8UC1, 30);
Mat([r, g, b])
`)
	if m.Channels != 3 {
		t.Fatalf("expected 3 channels, got %d", m.Channels)
	} else if m.At(1, 1, 1) != 20 {
		t.Fatalf("expected 20, got %f", m.At(1, 1, 1))
	}
}

func TestMatEmptyConstructor(t *testing.T) {
	vm := NewVM()
	m := exportMat(t, vm, "Mat()")
	if !m.Empty() {
		t.Fatal("expected an empty mat")
	}
}

func TestMatConstructorErrors(t *testing.T) {
	runExpectError(t, "Mat([[1, 2], [3]])", "every row must have the same number of columns")
	runExpectError(t, "Mat([Mat(2, 2, CV_8UC1), 5])", "expected channel 1 to be an instance of Mat")
	runExpectError(t, "Mat([Mat(2, 2, CV_8UC1), Mat(3, 2, CV_8UC1)])", "rows mismatch")
	runExpectError(t, "Mat([Mat(2, 2, CV_8UC1), Mat(2, 3, CV_8UC1)])", "cols mismatch")
	runExpectError(t, "Mat(2, 2)", "Invalid type for type")
	runExpectError(t, "Mat(2, 2, 666)", "Invalid type for type")
	runExpectError(t, "Mat([])", "expected a non empty array")
	runExpectError(t, `Mat("nope")`, "unable to construct a Mat")
}

func TestMatMethodErrors(t *testing.T) {
	runExpectError(t, "Mat(2, 2, CV_8UC1).CopyTo(null)", "expected arg: destination mat")
	runExpectError(t, "Mat(2, 2, CV_8UC1).ConvertTo(666)", "Invalid type for type")
}

func TestMatNormFromScript(t *testing.T) {
	vm := NewVM()
	code := `
var m = Mat([
	[0, 2, 2],
	[Math.sqrt(8), 4, Math.sqrt(32)]
]);
m.Norm()
`
	_, val, err := vm.RunWithContext(code)
	if err != nil {
		t.Fatal(err)
	}
	norm, err := val.ToFloat()
	if err != nil {
		t.Fatal(err)
	} else if math.Abs(norm-8) > 1e-9 {
		t.Fatalf("expected norm 8, got %f", norm)
	}
}

func TestMatNormalizeFromScript(t *testing.T) {
	vm := NewVM()
	code := `
var m = Mat([[10, 20], [30, 40]]);
var n = m.Normalize({ alpha: 0, beta: 255, normType: NORM_MINMAX });
[n.Get(0, 0), n.Get(1, 1)]
`
	_, val, err := vm.RunWithContext(code)
	if err != nil {
		t.Fatal(err)
	}
	exported, err := val.Export()
	if err != nil {
		t.Fatal(err)
	}
	values, ok := toFloatSlice(exported)
	if !ok {
		t.Fatalf("unexpected export %T", exported)
	} else if values[0] != 0 || values[1] != 255 {
		t.Fatalf("unexpected normalized range %v", values)
	}
}

func TestMatSplitFromScript(t *testing.T) {
	vm := NewVM()
	code := `
var m = Mat(2, 2, CV_8UC3, [1, 2, 3]);
m.SplitChannels().length
`
	_, val, err := vm.RunWithContext(code)
	if err != nil {
		t.Fatal(err)
	}
	length, err := val.ToInteger()
	if err != nil {
		t.Fatal(err)
	} else if length != 3 {
		t.Fatalf("expected 3 channels, got %d", length)
	}
}

func TestParamGridFromScript(t *testing.T) {
	vm := NewVM()
	code := `
var grid = ParamGrid(0.1, 500, 5);
[grid.MinVal(), grid.MaxVal(), grid.LogStep()]
`
	_, val, err := vm.RunWithContext(code)
	if err != nil {
		t.Fatal(err)
	}
	exported, err := val.Export()
	if err != nil {
		t.Fatal(err)
	}
	values, ok := toFloatSlice(exported)
	if !ok {
		t.Fatalf("unexpected export %T", exported)
	} else if values[0] != 0.1 || values[1] != 500 || values[2] != 5 {
		t.Fatalf("unexpected grid values %v", values)
	}
}

func TestParamGridValidationFromScript(t *testing.T) {
	runExpectError(t, "ParamGrid(10, 1, 2)", "min val must be lower than max val")
	runExpectError(t, "ParamGrid(0, 1, 2)", "min val must be positive")
	runExpectError(t, "ParamGrid(1, 10, 1)", "log step must be greater than 1")
	runExpectError(t, "ParamGrid()", "expected args")
}

func TestContextErrorFromScript(t *testing.T) {
	vm := NewVM()
	ctx, _, err := vm.RunWithContext(`ctx.Error("rows mismatch");`)
	if err == nil {
		t.Fatal("an error was expected")
	} else if !ctx.IsError() {
		t.Fatal("expected error state")
	} else if err.Error() != "rows mismatch" {
		t.Fatalf("unexpected error message '%s'", err)
	}
}
