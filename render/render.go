// Package render provides live terminal output for accumulated completions.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// ANSI color codes - chosen to work on both light and dark backgrounds
const (
	ColorReset = "\x1b[0m"
	ColorGray  = "\x1b[90m"
)

// Renderer prints completion updates incrementally. Each Update receives the
// full accumulated text; the renderer writes only the newly appended suffix,
// so a live stream reads naturally instead of reprinting from the top.
type Renderer struct {
	out     io.Writer
	mu      sync.Mutex
	printed int // bytes of the completion already written
	noColor bool
}

// NewRenderer creates a renderer writing to the given output.
// If noColor is true, ANSI color codes are suppressed; colors are also
// suppressed automatically when out is not a terminal.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	if !noColor {
		noColor = !isTerminal(out)
	}
	return &Renderer{out: out, noColor: noColor}
}

// isTerminal checks if the writer is a terminal.
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// color returns the color code if colors are enabled, empty string otherwise.
func (r *Renderer) color(c string) string {
	if r.noColor {
		return ""
	}
	return c
}

// Update writes the part of completion that has not been printed yet.
// Completions only grow; if a new turn hands in a shorter buffer the
// renderer starts over from its beginning.
func (r *Renderer) Update(completion string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(completion) < r.printed {
		r.printed = 0
	}
	fmt.Fprint(r.out, completion[r.printed:])
	r.printed = len(completion)
}

// Info prints a dimmed metadata line (e.g. backend and source).
func (r *Renderer) Info(parts ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(parts) == 0 {
		return
	}
	fmt.Fprintf(r.out, "%s[%s]%s\n", r.color(ColorGray), strings.Join(parts, " "), r.color(ColorReset))
}

// Done terminates the stream output with a newline if anything was printed.
func (r *Renderer) Done() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.printed > 0 {
		fmt.Fprintln(r.out)
	}
}
