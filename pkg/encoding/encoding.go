// Package encoding provides text decoding for mesh and material source files.
package encoding

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	textenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned by Lookup for unsupported encoding names.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// Older exporters write material and group names in the system code page,
// so the common legacy pages are accepted alongside UTF-8.
var encodings = map[string]textenc.Encoding{
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"euc-kr":       korean.EUCKR,
	"cp949":        korean.EUCKR,
	"shift_jis":    japanese.ShiftJIS,
	"sjis":         japanese.ShiftJIS,
}

// Lookup returns the encoding registered under name (case-insensitive).
// An empty name yields nil, meaning the input is passed through untouched.
func Lookup(name string) (textenc.Encoding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, nil
	}
	enc, ok := encodings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Names returns the sorted list of accepted encoding names.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewReader wraps r so that it yields UTF-8 decoded from enc.
// A nil enc returns r unchanged.
func NewReader(r io.Reader, enc textenc.Encoding) io.Reader {
	if enc == nil {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}

// DecodeString converts s from enc to UTF-8.
// Returns the original string if conversion fails.
func DecodeString(s string, enc textenc.Encoding) string {
	if enc == nil {
		return s
	}
	result, _, err := transform.String(enc.NewDecoder(), s)
	if err != nil {
		return s
	}
	return result
}
