package formats

import (
	"strings"
	"testing"
	"testing/fstest"
)

// memFS builds an in-memory filesystem from name/content pairs.
func memFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

// parseFS parses name from an in-memory filesystem holding files.
func parseFS(t *testing.T, name string, files map[string]string) *OBJ {
	t.Helper()
	obj, err := ParseOBJFile(name, &ParseOptions{Opener: FSOpener{FS: memFS(files)}})
	if err != nil {
		t.Fatalf("ParseOBJFile(%s): %v", name, err)
	}
	return obj
}

// lines joins its arguments into a newline-terminated file body.
func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

// countContaining returns how many entries contain every one of parts.
func countContaining(entries []string, parts ...string) int {
	n := 0
	for _, e := range entries {
		match := true
		for _, p := range parts {
			if !strings.Contains(e, p) {
				match = false
				break
			}
		}
		if match {
			n++
		}
	}
	return n
}

// quadPositions declares four positions on the z=1 plane.
var quadPositions = []string{
	"v 0 0 1",
	"v 1 0 1",
	"v 1 1 1",
	"v 0 1 1",
}
