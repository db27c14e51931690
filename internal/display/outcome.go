package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Outcome is the result of a pick as presented to the user.
type Outcome struct {
	Root  string // Directory that was searched
	Path  string // Chosen entry, empty when nothing matched
	Found bool   // Whether any entry matched
}

// Options controls how an Outcome is written.
type Options struct {
	Bare  bool // Also print the bare path on the primary stream
	Color bool // Colorize the diagnostic message
}

// Display writes the diagnostic message to diag and, in bare mode with a
// match, the path followed by a newline to out.
func (o Outcome) Display(out, diag io.Writer, opts Options) {
	if !o.Found {
		msg := fmt.Sprintf("No files with specified extensions found in %s", o.Root)
		if opts.Color {
			msg = colored(color.FgYellow, msg)
		}
		fmt.Fprintln(diag, msg)
		return
	}

	label := "Chosen file:"
	if opts.Color {
		label = colored(color.FgGreen, label)
	}
	fmt.Fprintf(diag, "%s %s\n", label, o.Path)

	if opts.Bare {
		fmt.Fprintln(out, o.Path)
	}
}

func colored(attr color.Attribute, s string) string {
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}
