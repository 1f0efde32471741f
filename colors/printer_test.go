package colors

import (
	"bytes"
	"strings"
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{RED.Sprint("error"), "error"},
		{BOLD_RED.Sprint("a") + " " + GREY.Sprint("b"), "a b"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripANSI(tt.input); got != tt.want {
			t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSprintlnKeepsNewlineOutside(t *testing.T) {
	got := CYAN.Sprintln("scope")
	if !strings.HasSuffix(got, string(RESET)+"\n") {
		t.Errorf("Sprintln() = %q, want newline after reset", got)
	}
}

func TestDisabledColorsArePlain(t *testing.T) {
	Enabled = false
	defer func() { Enabled = true }()

	var buf bytes.Buffer
	RED.Fprintf(&buf, "line %d", 3)
	if buf.String() != "line 3" {
		t.Errorf("Fprintf() with colors disabled = %q, want %q", buf.String(), "line 3")
	}
}

func TestConvertANSIToHTML(t *testing.T) {
	got := ConvertANSIToHTML(RED.Sprint("a<b") + "\n")
	want := "<span style=\"color: #ef4444\">a&lt;b</span><br>"
	if got != want {
		t.Errorf("ConvertANSIToHTML() = %q, want %q", got, want)
	}
}
