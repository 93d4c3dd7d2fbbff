package script

import (
	"strings"
	"testing"
)

var units = []struct {
	name                 string
	code                 string
	expectedError        bool
	expectedErrorMessage string
}{
	{"empty", "", true, "expected a function declaration"},
	{"simple", "function simple(){ return 0; }", false, ""},
	{"broken", "lulz i won't compile =)", true, "unexpected identifier"},
	{"no functions", "var lulz = 123;", true, "expected a function declaration"},
	{"error during definition", "function imok(){} imnot = not_defined + 1;", true, "ReferenceError"},
}

func TestCompiler(t *testing.T) {
	for _, u := range units {
		t.Run(u.name, func(t *testing.T) {
			compiled, err := Compile(u.name, u.code)
			if u.expectedError {
				if err == nil {
					t.Fatal("an error was expected")
				} else if !strings.Contains(strings.ToLower(err.Error()), strings.ToLower(u.expectedErrorMessage)) {
					t.Fatalf("expected error message '%s', got '%s'", u.expectedErrorMessage, err)
				}
			} else if err != nil {
				t.Fatal(err)
			} else if !compiled.Is(u.name, u.code) {
				t.Fatal("compiled script does not match source")
			}
		})
	}
}

func TestCompilerPicksFirstFunction(t *testing.T) {
	compiled, err := Compile("multi", "function first(){ return 1; } function second(){ return 2; }")
	if err != nil {
		t.Fatal(err)
	} else if compiled.Entry() != "first" {
		t.Fatalf("expected entry 'first', got '%s'", compiled.Entry())
	}
}

func TestCompiledRun(t *testing.T) {
	compiled, err := Compile("sum", "function sum(a, b){ return a + b; }")
	if err != nil {
		t.Fatal(err)
	}

	ctx, raw, err := compiled.Run(2, 3)
	if err != nil {
		t.Fatal(err)
	} else if ctx.IsError() {
		t.Fatalf("unexpected context error '%s'", ctx.Message())
	} else if string(raw) != "5" {
		t.Fatalf("expected 5, got '%s'", raw)
	}
}

func TestCompiledRunWithContextError(t *testing.T) {
	compiled, err := Compile("angry", `function angry(){ ctx.Error("not today"); }`)
	if err != nil {
		t.Fatal(err)
	}

	ctx, _, err := compiled.Run()
	if err == nil {
		t.Fatal("an error was expected")
	} else if !ctx.IsError() {
		t.Fatal("expected error state on the context")
	} else if err.Error() != "not today" {
		t.Fatalf("unexpected error message '%s'", err)
	}
}

func TestCompiledRunUsesMats(t *testing.T) {
	code := `
function blobArea(m) {
	var bin = m.Threshold(100, 255, THRESH_BINARY);
	var cc = bin.ConnectedComponentsWithStats();
	if (cc.Count < 2) {
		ctx.Error("no blobs found");
		return 0;
	}
	return cc.Stats.Get(1, CC_STAT_AREA);
}
`
	compiled, err := Compile("blobArea", code)
	if err != nil {
		t.Fatal(err)
	}

	vm := NewVM()
	_, val, err := vm.RunWithContext("Mat([[0, 200], [0, 200]], CV_8UC1)")
	if err != nil {
		t.Fatal(err)
	}
	m, err := val.Export()
	if err != nil {
		t.Fatal(err)
	}

	_, raw, err := compiled.Run(m)
	if err != nil {
		t.Fatal(err)
	} else if string(raw) != "2" {
		t.Fatalf("expected area 2, got '%s'", raw)
	}
}
