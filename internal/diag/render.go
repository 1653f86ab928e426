package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"reshape/internal/source"
)

var (
	warningColor = color.New(color.FgYellow, color.Bold)
	okColor      = color.New(color.FgGreen)
	pathColor    = color.New(color.FgCyan)
)

// Renderer prints human-readable reports for the CLI. Color handling is
// global via color.NoColor, set by the root command.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Warning reports a non-fatal condition.
func (r *Renderer) Warning(msg string) {
	fmt.Fprintf(r.out, "%s %s\n", warningColor.Sprint(SevWarning.String()), msg)
}

// Applied reports a successful apply on one file, anchored at the position
// of the first change.
func (r *Renderer) Applied(action, path string, at source.LineCol, editCount int) {
	fmt.Fprintf(r.out, "%s %s: %s (%d edit(s))\n",
		okColor.Sprint("applied"), action, location(path, at), editCount)
}

// Preview reports what a dry run would have changed.
func (r *Renderer) Preview(action, path string, at source.LineCol, editCount int) {
	fmt.Fprintf(r.out, "%s %s: %s (%d edit(s))\n",
		warningColor.Sprint("would apply"), action, location(path, at), editCount)
}

// Restored reports a file rewritten by undo.
func (r *Renderer) Restored(path string) {
	fmt.Fprintf(r.out, "%s %s\n", okColor.Sprint("restored"), pathColor.Sprint(path))
}

func location(path string, at source.LineCol) string {
	return pathColor.Sprint(fmt.Sprintf("%s:%d:%d", path, at.Line, at.Col))
}
