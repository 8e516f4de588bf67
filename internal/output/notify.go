package output

import "fmt"

// Level classifies a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a short, transient message, e.g. "Created memo template: ...".
type Notification struct {
	Level   Level
	Message string
}

// Notify shows n. Info goes to stdout; warnings and errors go to stderr with
// a "Warning:" or "Error:" prefix. The message itself is printed unchanged.
// JSON mode prints nothing; the command's result carries the outcome.
func (p *Printer) Notify(n Notification) {
	if p.json {
		return
	}
	switch n.Level {
	case LevelError:
		mustWrite(fmt.Fprintf(p.errOut, "%s %s\n", p.theme.failure.Render("Error:"), n.Message))
	case LevelWarning:
		mustWrite(fmt.Fprintf(p.errOut, "%s %s\n", p.theme.warning.Render("Warning:"), n.Message))
	default:
		mustWrite(fmt.Fprintln(p.out, p.theme.created.Render(n.Message)))
	}
}
