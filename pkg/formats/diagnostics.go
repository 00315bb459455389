package formats

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultDumpLimit is the customary cap for DumpErrors and DumpWarnings.
const DefaultDumpLimit = 50

// Diagnostics collects the errors and warnings produced while loading a mesh.
// Entries keep the order in which they were reported.
type Diagnostics struct {
	errors   []string
	warnings []string
}

// errorf records an error attributed to the current line of f.
func (d *Diagnostics) errorf(f *sourceFile, format string, args ...any) {
	d.errors = append(d.errors, locate(f, format, args...))
}

// warnf records a warning attributed to the current line of f.
func (d *Diagnostics) warnf(f *sourceFile, format string, args ...any) {
	d.warnings = append(d.warnings, locate(f, format, args...))
}

// addError records an error that belongs to no particular line.
func (d *Diagnostics) addError(msg string) {
	d.errors = append(d.errors, msg)
}

// addWarning records a warning that belongs to no particular line.
func (d *Diagnostics) addWarning(msg string) {
	d.warnings = append(d.warnings, msg)
}

func locate(f *sourceFile, format string, args ...any) string {
	return fmt.Sprintf("%s: Line %d: ", f.name, f.lineNo) + fmt.Sprintf(format, args...)
}

// HasErrors returns true if any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.errors) != 0
}

// HasWarnings returns true if any warning was recorded.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.warnings) != 0
}

// Errors returns a copy of the recorded errors.
func (d *Diagnostics) Errors() []string {
	return append([]string(nil), d.errors...)
}

// Warnings returns a copy of the recorded warnings.
func (d *Diagnostics) Warnings() []string {
	return append([]string(nil), d.warnings...)
}

// DumpErrors writes at most limit errors to w followed by a total line.
// A non-positive limit writes every entry.
func (d *Diagnostics) DumpErrors(w io.Writer, limit int) error {
	return dump(w, d.errors, limit, "error")
}

// DumpWarnings writes at most limit warnings to w followed by a total line.
// A non-positive limit writes every entry.
func (d *Diagnostics) DumpWarnings(w io.Writer, limit int) error {
	return dump(w, d.warnings, limit, "warning")
}

func dump(w io.Writer, entries []string, limit int, kind string) error {
	bw := bufio.NewWriter(w)
	for n, entry := range entries {
		if limit > 0 && n == limit {
			fmt.Fprintf(bw, "<< %d more %s(s) >>\n", len(entries)-n, kind)
			break
		}
		fmt.Fprintln(bw, entry)
	}
	fmt.Fprintf(bw, "--%d %s(s)--\n", len(entries), kind)
	return bw.Flush()
}
