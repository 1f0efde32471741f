package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/matanophir/Compi-3/colors"
	"github.com/matanophir/Compi-3/internal/source"
)

const (
	STR_MULTIPLIER = "%*d | "
	LINE_POS       = "%s--> %s:%d\n"
	LINE_ONLY      = "%s--> line %d\n"
)

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache               *source.Cache
	writer              io.Writer
	currentLineNumWidth int // Line number width for current diagnostic
}

// NewEmitter creates an emitter that writes to a specific writer
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{
		cache:  source.NewCache(),
		writer: w,
	}
}

func (e *Emitter) lineNumWidth(diag *Diagnostic) int {
	maxLine := 0
	for _, label := range diag.Labels {
		if label.Line > maxLine {
			maxLine = label.Line
		}
	}
	if maxLine == 0 {
		return 1
	}
	return len(fmt.Sprintf("%d", maxLine))
}

func (e *Emitter) Emit(diag *Diagnostic) {
	e.currentLineNumWidth = e.lineNumWidth(diag)

	e.printHeader(diag)

	for _, label := range diag.Labels {
		if label.Line > 0 {
			e.printLabel(diag.FilePath, label)
		}
	}

	for _, note := range diag.Notes {
		e.printNote(note)
	}

	if diag.Help != "" {
		e.printHelp(diag.Help)
	}

	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := colors.BOLD_RED

	color.Fprint(e.writer, "error")
	if diag.Code != "" {
		fmt.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	color.Fprintln(e.writer, diag.Message)
}

func (e *Emitter) printLabel(filepath string, label Label) {
	width := e.currentLineNumWidth
	pad := strings.Repeat(" ", width)

	if filepath != "" {
		colors.BLUE.Fprintf(e.writer, LINE_POS, pad, filepath, label.Line)
	} else {
		colors.BLUE.Fprintf(e.writer, LINE_ONLY, pad, label.Line)
	}

	if filepath == "" {
		return
	}
	sourceLine, err := e.cache.Line(filepath, label.Line)
	if err != nil {
		return
	}

	colors.GREY.Fprintln(e.writer, pad+" |")

	// Previous line for context, when it has content
	if label.Style == Primary && label.Line > 1 {
		prevLine, err := e.cache.Line(filepath, label.Line-1)
		if err == nil && strings.TrimSpace(prevLine) != "" {
			colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, width, label.Line-1)
			colors.GREY.Fprintln(e.writer, prevLine)
		}
	}

	colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, width, label.Line)
	fmt.Fprintln(e.writer, sourceLine)

	// Underline the line's content, skipping indentation
	trimmed := strings.TrimLeft(sourceLine, " \t")
	padding := len(sourceLine) - len(trimmed)
	length := len(strings.TrimRight(trimmed, " \t"))
	if length == 0 {
		length = 1
	}

	underlineColor, underlineChar := colors.BLUE, "-"
	if label.Style == Primary {
		underlineColor, underlineChar = colors.RED, "^"
	}

	colors.GREY.Fprint(e.writer, pad+" | ")
	fmt.Fprint(e.writer, sourceLine[:padding])
	underlineColor.Fprint(e.writer, strings.Repeat(underlineChar, length))
	if label.Message != "" {
		underlineColor.Fprintf(e.writer, " %s", label.Message)
	}
	fmt.Fprintln(e.writer)

	colors.GREY.Fprintln(e.writer, pad+" |")
}

func (e *Emitter) printNote(note Note) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.currentLineNumWidth+1))
	colors.CYAN.Fprint(e.writer, "= note: ")
	fmt.Fprintln(e.writer, note.Message)
}

func (e *Emitter) printHelp(help string) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.currentLineNumWidth+1))
	colors.GREEN.Fprint(e.writer, "= help: ")
	fmt.Fprintln(e.writer, help)
}
