package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes a command's output in human or JSON form.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	json   bool
	theme  theme
}

type theme struct {
	heading lipgloss.Style
	key     lipgloss.Style
	created lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	faint   lipgloss.Style
}

func newTheme(color bool) theme {
	plain := lipgloss.NewStyle()
	if !color {
		return theme{heading: plain, key: plain, created: plain, warning: plain, failure: plain, faint: plain}
	}
	return theme{
		heading: plain.Bold(true).Foreground(lipgloss.Color("12")),
		key:     plain.Foreground(lipgloss.Color("14")),
		created: plain.Foreground(lipgloss.Color("10")),
		warning: plain.Foreground(lipgloss.Color("11")),
		failure: plain.Bold(true).Foreground(lipgloss.Color("9")),
		faint:   plain.Faint(true),
	}
}

// NewPrinter returns a Printer writing to out. Errors and notifications also
// go to out until WithStderr sets a separate writer.
func NewPrinter(out io.Writer, jsonMode, color bool) *Printer {
	return &Printer{
		out:    out,
		errOut: out,
		json:   jsonMode,
		theme:  newTheme(color),
	}
}

// WithStderr sets the writer for notifications, warnings, hints and human
// errors. JSON errors always go to the main writer.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errOut = w
	return p
}

// IsJSON reports whether the printer is in --json mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// Result writes v as the command's JSON document.
func (p *Printer) Result(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// Error reports a failed command. JSON mode writes {"error","code"} to the
// main writer; human mode prints "Error: <message>".
func (p *Printer) Error(err error) {
	exitErr := asExitError(err)
	if p.json {
		_ = p.Result(errorBody{Error: exitErr.Message, Code: exitErr.Code})
		return
	}
	p.Notify(Notification{Level: LevelError, Message: exitErr.Message})
}

// Warn prints a warning notification.
func (p *Printer) Warn(format string, args ...any) {
	p.Notify(Notification{Level: LevelWarning, Message: fmt.Sprintf(format, args...)})
}

// Hint prints a dimmed follow-up suggestion to stderr. Silent in JSON mode.
func (p *Printer) Hint(message string) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintln(p.errOut, p.theme.faint.Render(message)))
}

// Print writes raw formatted text, e.g. a rendered document.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.out, format, args...))
}

// Println writes a raw line.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.out, args...))
}

// Detail is one labeled line of a Details block.
type Detail struct {
	Label string
	Value string
}

// Details prints a heading followed by label/value lines with the labels aligned.
func (p *Printer) Details(heading string, details []Detail) {
	mustWrite(fmt.Fprintln(p.out, p.theme.heading.Render(heading)))
	width := 0
	for _, d := range details {
		width = max(width, lipgloss.Width(d.Label)+1)
	}
	for _, d := range details {
		label := padRight(d.Label+":", width)
		mustWrite(fmt.Fprintf(p.out, "  %s  %s\n", p.theme.key.Render(label), d.Value))
	}
}

// Table prints rows under bold headers, padding every column but the last.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	p.tableLine(headers, widths, p.theme.heading)
	for _, row := range rows {
		p.tableLine(row, widths, lipgloss.NewStyle())
	}
}

func (p *Printer) tableLine(cells []string, widths []int, style lipgloss.Style) {
	last := min(len(cells), len(widths)) - 1
	var b strings.Builder
	for i := 0; i <= last; i++ {
		cell := cells[i]
		if i < last {
			cell = padRight(cell, widths[i]) + "  "
		}
		b.WriteString(style.Render(cell))
	}
	mustWrite(fmt.Fprintln(p.out, strings.TrimRight(b.String(), " ")))
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// mustWrite panics on a failed write to stdout, stderr or a buffer.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
