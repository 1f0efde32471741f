package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func (c COLOR) Printf(format string, args ...any) {
	fmt.Fprint(os.Stdout, c.Sprintf(format, args...))
}

func (c COLOR) Println(args ...any) {
	fmt.Fprint(os.Stdout, c.Sprintln(args...))
}

// Fprint methods (write to specific writer)
func (c COLOR) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprint(w, c.Sprintf(format, args...))
}

func (c COLOR) Fprintln(w io.Writer, args ...any) {
	fmt.Fprint(w, c.Sprintln(args...))
}

func (c COLOR) Fprint(w io.Writer, args ...any) {
	fmt.Fprint(w, c.Sprint(args...))
}

func (c COLOR) Sprintf(format string, args ...any) string {
	return c.wrap(fmt.Sprintf(format, args...))
}

// Sprintln keeps the newline outside the escape sequence so line-oriented
// consumers (golden files, grep) see clean line ends.
func (c COLOR) Sprintln(args ...any) string {
	return c.wrap(strings.TrimSuffix(fmt.Sprintln(args...), "\n")) + "\n"
}

func (c COLOR) Sprint(args ...any) string {
	return c.wrap(fmt.Sprint(args...))
}

// StripANSI removes ANSI color codes from a string
func StripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			i++
			continue
		}
		if inEscape {
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

var ansiToHTML = map[COLOR]string{
	RESET:       "</span>",
	RED:         "<span style=\"color: #ef4444\">",
	GREEN:       "<span style=\"color: #10b981\">",
	YELLOW:      "<span style=\"color: #f59e0b\">",
	BLUE:        "<span style=\"color: #3b82f6\">",
	PURPLE:      "<span style=\"color: #c678dd; font-weight: bold\">",
	CYAN:        "<span style=\"color: #56b6c2\">",
	WHITE:       "<span style=\"color: #f3f4f6\">",
	GREY:        "<span style=\"color: #5c6370\">",
	BOLD:        "<span style=\"font-weight: bold\">",
	BOLD_RED:    "<span style=\"color: #ef4444; font-weight: bold\">",
	BOLD_GREEN:  "<span style=\"color: #10b981; font-weight: bold\">",
	BOLD_YELLOW: "<span style=\"color: #f59e0b; font-weight: bold\">",
	BOLD_BLUE:   "<span style=\"color: #3b82f6; font-weight: bold\">",
	BOLD_PURPLE: "<span style=\"color: #a855f7; font-weight: bold\">",
	BOLD_CYAN:   "<span style=\"color: #56b6c2; font-weight: bold\">",
	ORANGE:      "<span style=\"color: #ff8700\">",
}

// ConvertANSIToHTML converts ANSI color codes to HTML span tags
func ConvertANSIToHTML(text string) string {
	// Escape entities before any tags are introduced
	result := strings.ReplaceAll(text, "&", "&amp;")
	result = strings.ReplaceAll(result, "<", "&lt;")
	result = strings.ReplaceAll(result, ">", "&gt;")

	for ansi, html := range ansiToHTML {
		result = strings.ReplaceAll(result, string(ansi), html)
	}

	result = strings.ReplaceAll(result, "\n", "<br>")
	result = strings.ReplaceAll(result, "  ", "&nbsp;&nbsp;")

	return result
}
