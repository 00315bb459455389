package formats

import (
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

// Opener opens the mesh file and the resources it references.
type Opener interface {
	Open(name string) (io.ReadCloser, error)
}

// DirOpener opens files from the local filesystem.
type DirOpener struct{}

// Open opens the named file.
func (DirOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// FSOpener opens files from an fs.FS. Backslashes in names are treated as
// path separators.
type FSOpener struct {
	FS fs.FS
}

// Open opens the named file from the wrapped filesystem.
func (o FSOpener) Open(name string) (io.ReadCloser, error) {
	name = path.Clean(strings.ReplaceAll(name, `\`, "/"))
	return o.FS.Open(strings.TrimPrefix(name, "/"))
}

// workingDir returns the directory part of file including its trailing
// separator, or "" if file has none. Both '/' and '\' count as separators.
func workingDir(file string) string {
	i := strings.LastIndexAny(file, `/\`)
	if i < 0 {
		return ""
	}
	return file[:i+1]
}
