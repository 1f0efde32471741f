package diagnostics

import (
	"strings"
	"sync"
	"testing"

	"github.com/matanophir/Compi-3/colors"
)

func TestNewDiagnosticBag(t *testing.T) {
	bag := NewDiagnosticBag()

	if bag == nil {
		t.Fatal("NewDiagnosticBag returned nil")
	}

	if bag.ErrorCount() != 0 {
		t.Errorf("Expected 0 errors, got %d", bag.ErrorCount())
	}

	if bag.HasErrors() {
		t.Error("Expected HasErrors() to be false for empty bag")
	}
}

func TestDiagnosticBag_AddError(t *testing.T) {
	bag := NewDiagnosticBag()

	bag.Add(Mismatch(3))

	if !bag.HasErrors() {
		t.Error("Expected HasErrors() to be true after adding error")
	}

	if bag.ErrorCount() != 1 {
		t.Errorf("Expected 1 error, got %d", bag.ErrorCount())
	}
}

func TestDiagnosticBag_CountsEveryDiagnostic(t *testing.T) {
	bag := NewDiagnosticBag()

	bag.Add(NewError("failed to load program"))
	bag.Add(UnexpectedBreak(2))

	if bag.ErrorCount() != 2 {
		t.Errorf("Expected 2 errors, got %d", bag.ErrorCount())
	}
}

func TestDiagnosticBag_DiagnosticsCopy(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.Add(Mismatch(1))

	diags := bag.Diagnostics()
	diags[0] = nil

	if bag.Diagnostics()[0] == nil {
		t.Error("Modifying the returned slice should not affect the bag")
	}
}

func TestDiagnosticBag_ThreadSafety(t *testing.T) {
	bag := NewDiagnosticBag()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(line int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bag.Add(Mismatch(line))
			}
		}(i + 1)
	}
	wg.Wait()

	if bag.ErrorCount() != 1000 {
		t.Errorf("Expected 1000 errors, got %d", bag.ErrorCount())
	}
}

func TestDiagnosticBag_Clear(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.Add(Mismatch(1))
	bag.Add(Mismatch(2))
	bag.Clear()

	if bag.ErrorCount() != 0 || bag.HasErrors() || len(bag.Diagnostics()) != 0 {
		t.Error("Clear should reset the bag")
	}
}

func TestDiagnosticBag_EmitWithSource(t *testing.T) {
	colors.Enabled = false
	defer func() { colors.Enabled = true }()

	bag := NewDiagnosticBag()
	bag.AddSourceContent("prog.fanc", "void main() {\n  int x = true;\n}\n")
	bag.Add(Mismatch(2).WithFile("prog.fanc"))

	out := bag.EmitAllToString()

	wantLines := []string{
		"error[T0001]: type mismatch",
		" --> prog.fanc:2",
		"1 | void main() {",
		"2 |   int x = true;",
		"  |   ^^^^^^^^^^^^^ incompatible type",
		"Analysis failed with 1 error(s)",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestDiagnosticBag_EmitWithoutSource(t *testing.T) {
	colors.Enabled = false
	defer func() { colors.Enabled = true }()

	bag := NewDiagnosticBag()
	bag.Add(Undefined(4, "x"))
	bag.Add(MainMissing("main"))

	out := bag.EmitAllToString()

	for _, want := range []string{
		"error[T0002]: variable x is not defined",
		" --> line 4",
		"= help: declare the variable before using it",
		"error[T0030]: program has no 'void main()' function",
		"Analysis failed with 2 error(s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestDiagnosticBag_SecondaryLabel(t *testing.T) {
	colors.Enabled = false
	defer func() { colors.Enabled = true }()

	bag := NewDiagnosticBag()
	bag.AddSourceContent("prog.fanc", "int x;\nint x;\n")
	bag.Add(Redeclared(2, "x", 1).WithFile("prog.fanc"))

	out := bag.EmitAllToString()
	if !strings.Contains(out, "  | ------ previously declared here") {
		t.Errorf("secondary label not rendered\n%s", out)
	}
}

func TestDiagnosticBag_EmitAllToHTML(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.Add(Mismatch(1))

	html := bag.EmitAllToHTML()
	if strings.Contains(html, "\033[") {
		t.Error("HTML output should not contain ANSI escapes")
	}
	if !strings.Contains(html, "<span") {
		t.Error("HTML output should contain spans")
	}
}

func TestDiagnosticBag_EmptyBag(t *testing.T) {
	bag := NewDiagnosticBag()
	if out := bag.EmitAllToString(); out != "" {
		t.Errorf("empty bag should emit nothing, got %q", out)
	}
}
