// Package output provides context-aware output for subm.
// Stdout is used for primary data output (status lines, tagged messages).
// Stderr (via log package) is used for diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/subm/subm/internal/ui/styles"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w io.Writer
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, &Printer{w: w})
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Info writes an [INFO] tagged line.
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.w, "%s %s\n", styles.InfoTag.Render("[INFO]"), fmt.Sprintf(format, a...))
}

// Warning writes a [WARNING] tagged line.
func (p *Printer) Warning(format string, a ...any) {
	fmt.Fprintf(p.w, "%s %s\n", styles.WarningTag.Render("[WARNING]"), fmt.Sprintf(format, a...))
}

// Error writes an [ERROR] tagged line.
func (p *Printer) Error(format string, a ...any) {
	fmt.Fprintf(p.w, "%s %s\n", styles.ErrorTag.Render("[ERROR]"), fmt.Sprintf(format, a...))
}

// Header writes a section header line.
func (p *Printer) Header(title string) {
	fmt.Fprintf(p.w, "%s\n", styles.Header.Render(title))
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
