package diagnostics

import (
	"testing"
)

func TestNewError(t *testing.T) {
	diag := NewError("test error message")

	if diag == nil {
		t.Fatal("NewError returned nil")
	}

	if diag.Message != "test error message" {
		t.Errorf("Expected message 'test error message', got %q", diag.Message)
	}

	if diag.Labels == nil {
		t.Error("Labels should be initialized, not nil")
	}

	if diag.Notes == nil {
		t.Error("Notes should be initialized, not nil")
	}
}

func TestDiagnostic_Error(t *testing.T) {
	tests := []struct {
		name string
		diag *Diagnostic
		want string
	}{
		{"with line", NewError("type mismatch").WithPrimaryLabel(7, ""), "line 7: type mismatch"},
		{"without line", NewError("program has no 'void main()' function"), "program has no 'void main()' function"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.diag.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiagnostic_WithCode(t *testing.T) {
	diag := NewError("test error").WithCode("T0001")

	if diag.Code != "T0001" {
		t.Errorf("Expected code 'T0001', got %q", diag.Code)
	}
}

func TestDiagnostic_WithPrimaryLabel(t *testing.T) {
	diag := NewError("undefined variable").
		WithPrimaryLabel(3, "not found here")

	if len(diag.Labels) != 1 {
		t.Fatalf("Expected 1 label, got %d", len(diag.Labels))
	}

	label := diag.Labels[0]
	if label.Style != Primary {
		t.Errorf("Expected Primary style, got %v", label.Style)
	}
	if label.Line != 3 {
		t.Errorf("Expected label line 3, got %d", label.Line)
	}
	if label.Message != "not found here" {
		t.Errorf("Expected message 'not found here', got %q", label.Message)
	}
	if diag.Line != 3 {
		t.Errorf("Expected diagnostic line 3, got %d", diag.Line)
	}
}

func TestDiagnostic_WithSecondaryLabel(t *testing.T) {
	diag := NewError("symbol x is already defined").
		WithPrimaryLabel(5, "redeclared here").
		WithSecondaryLabel(2, "previously declared here")

	if len(diag.Labels) != 2 {
		t.Fatalf("Expected 2 labels, got %d", len(diag.Labels))
	}
	if diag.Labels[0].Style != Primary {
		t.Error("First label should be Primary")
	}
	if diag.Labels[1].Style != Secondary {
		t.Error("Second label should be Secondary")
	}
	if diag.Line != 5 {
		t.Errorf("Secondary label must not move the diagnostic line, got %d", diag.Line)
	}
}

func TestDiagnostic_SecondaryWithoutPrimary_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when adding secondary label without primary")
		}
	}()

	NewError("test").WithSecondaryLabel(1, "invalid")
}

func TestDiagnostic_MultiplePrimaryLabels(t *testing.T) {
	diag := NewError("test").
		WithPrimaryLabel(1, "first primary").
		WithPrimaryLabel(2, "second primary attempt")

	primaryCount := 0
	for _, label := range diag.Labels {
		if label.Style == Primary {
			primaryCount++
		}
	}
	if primaryCount != 1 {
		t.Errorf("Expected exactly 1 primary label, got %d", primaryCount)
	}
	if diag.Line != 1 {
		t.Errorf("Expected first primary label to win, got line %d", diag.Line)
	}
}

func TestDiagnostic_BuilderPattern(t *testing.T) {
	diag := NewError("type mismatch").
		WithCode(ErrTypeMismatch).
		WithFile("prog.fanc").
		WithPrimaryLabel(4, "incompatible type").
		WithNote("expected int, found bool").
		WithHelp("convert the value explicitly")

	if diag.Code != ErrTypeMismatch {
		t.Errorf("Code = %q, want %q", diag.Code, ErrTypeMismatch)
	}
	if diag.FilePath != "prog.fanc" {
		t.Errorf("FilePath = %q", diag.FilePath)
	}
	if len(diag.Notes) != 1 || diag.Notes[0].Message != "expected int, found bool" {
		t.Errorf("Notes = %v", diag.Notes)
	}
	if diag.Help != "convert the value explicitly" {
		t.Errorf("Help = %q", diag.Help)
	}
}
