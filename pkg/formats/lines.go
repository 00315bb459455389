package formats

import (
	"bufio"
	"io"
	"strings"

	textenc "golang.org/x/text/encoding"

	"github.com/Faultbox/objmesh/pkg/encoding"
)

// maxLineLength bounds a single source line.
const maxLineLength = 1024 * 1024

// sourceFile reads a mesh or material file one line at a time.
type sourceFile struct {
	name    string // name used in diagnostics
	lineNo  int    // 1-based number of the current line
	keyword string // first token of the current line
	params  string // raw remainder after the keyword

	scanner *bufio.Scanner
}

// newSourceFile wraps r, decoding it with enc when enc is non-nil.
func newSourceFile(name string, r io.Reader, enc textenc.Encoding) *sourceFile {
	scanner := bufio.NewScanner(encoding.NewReader(r, enc))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &sourceFile{name: name, scanner: scanner}
}

// next advances to the next line. It returns false at end of input.
func (f *sourceFile) next() bool {
	f.keyword, f.params = "", ""
	if !f.scanner.Scan() {
		return false
	}
	f.lineNo++
	f.keyword, f.params = splitLine(f.scanner.Text())
	return true
}

// err returns the first non-EOF read error.
func (f *sourceFile) err() error {
	return f.scanner.Err()
}

// isComment reports whether the current line carries no keyword to act on.
func (f *sourceFile) isComment() bool {
	return f.keyword == "" || f.keyword[0] == '#'
}

// splitLine splits a line into its keyword and the trimmed parameter remainder.
func splitLine(line string) (keyword, params string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	i := strings.IndexAny(line, " \t\v\f")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}
