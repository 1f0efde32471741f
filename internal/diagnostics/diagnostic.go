package diagnostics

import "fmt"

// Label points at one source line of a diagnostic
type Label struct {
	Line    int
	Message string
	Style   LabelStyle
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // The main error location (uses ^^^)
	Secondary                   // Additional context (uses ---)
)

// Note represents additional information attached to a diagnostic
type Note struct {
	Message string
}

// Diagnostic is a single analysis failure. It implements error so the
// checker can return it up the visitor call chain unchanged.
type Diagnostic struct {
	Kind     Kind
	Message  string // canonical message, without the "line N: " prefix
	Code     string // Error code like "T0001"
	Line     int    // 0 when the diagnostic is about the whole program
	FilePath string // Source file for this diagnostic

	// Contextual data
	Name       string   // offending identifier, for name-related kinds
	ParamTypes []string // expected parameter types, for prototype mismatches
	Value      string   // offending literal value, for range errors

	Labels []Label
	Notes  []Note
	Help   string // Suggestion for fixing the error
}

// NewError creates a new error diagnostic. Every FanC diagnostic is an
// error; the analysis has no warnings.
func NewError(message string) *Diagnostic {
	return &Diagnostic{
		Message: message,
		Labels:  make([]Label, 0),
		Notes:   make([]Note, 0),
	}
}

// Error renders the diagnostic in the course output format:
// "line 7: type mismatch".
func (d *Diagnostic) Error() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return d.Message
}

// WithCode sets the error code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

func (d *Diagnostic) WithFile(path string) *Diagnostic {
	d.FilePath = path
	return d
}

// WithPrimaryLabel sets the line of the diagnostic and labels it.
// A diagnostic has at most one primary label, always first.
func (d *Diagnostic) WithPrimaryLabel(line int, message string) *Diagnostic {
	for _, label := range d.Labels {
		if label.Style == Primary {
			return d
		}
	}
	d.Line = line
	d.Labels = append([]Label{{Line: line, Message: message, Style: Primary}}, d.Labels...)
	return d
}

// WithSecondaryLabel adds a context label.
// Primary label must exist before adding secondary labels
func (d *Diagnostic) WithSecondaryLabel(line int, message string) *Diagnostic {
	hasPrimary := false
	for _, label := range d.Labels {
		if label.Style == Primary {
			hasPrimary = true
			break
		}
	}
	if !hasPrimary {
		panic("Cannot add secondary label without primary label. Call WithPrimaryLabel first.")
	}
	d.Labels = append(d.Labels, Label{Line: line, Message: message, Style: Secondary})
	return d
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets helpful suggestion for fixing the error
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}
