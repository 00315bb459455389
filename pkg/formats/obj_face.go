package formats

import (
	"strconv"
	"strings"
)

// Slots of a vertex group, in file order v/vt/vn.
const (
	slotPosition = iota
	slotTexCoord
	slotNormal
	numSlots
)

var slotKeywords = [numSlots]string{"v", "vt", "vn"}

// readFace handles 'f v1 v2 v3 ...'. The polygon is fanned into triangles
// anchored at its first vertex and each triangle is stamped with the active
// material and group.
func (l *loader) readFace(f *sourceFile) {
	groups, ok := readParamsAtLeast(l.diag, f, 3, parseString)
	if !ok {
		return
	}

	sizes := l.cur.sizes()
	face := make([][numSlots]int, 0, len(groups))
	valid := true

	for _, group := range groups {
		idx, ok := parseVertexGroup(group)
		if !ok {
			l.diag.errorf(f, "Syntax error (f v, f v/vt, f v/vt/vn, f v//vn)")
			valid = false
			continue
		}
		if !l.resolveVertexGroup(f, &idx, sizes) {
			valid = false
		}
		face = append(face, idx)
	}

	if !valid {
		return
	}

	// Every vertex must omit the same components.
	for slot := 0; slot < numSlots; slot++ {
		omitted := 0
		for _, idx := range face {
			if idx[slot] == -1 {
				omitted++
			}
		}
		if omitted%len(face) != 0 {
			l.diag.errorf(f, "Vertex index mismatch")
			return
		}
	}

	l.cur.addPolygon(face)
}

// parseVertexGroup parses one of v, v/vt, v/vt/vn or v//vn into zero-based
// indices. Omitted components are -1. Relative (negative) components are
// returned as the file value minus one, so they stay below -1.
func parseVertexGroup(group string) (idx [numSlots]int, ok bool) {
	idx = [numSlots]int{-1, -1, -1}

	parts := strings.Split(group, "/")
	if len(parts) > numSlots {
		return idx, false
	}

	for slot, part := range parts {
		if part == "" {
			// Only the texture coordinate of v//vn may be left empty.
			if slot == slotTexCoord && len(parts) == numSlots {
				continue
			}
			return idx, false
		}

		n, err := strconv.Atoi(part)
		if err != nil || n == 0 {
			return idx, false
		}
		idx[slot] = n - 1
	}
	return idx, true
}

// resolveVertexGroup converts relative components to absolute indices and
// checks every component against the current array sizes. It returns false
// if a relative component could not be resolved.
func (l *loader) resolveVertexGroup(f *sourceFile, idx *[numSlots]int, sizes [numSlots]int) bool {
	resolved := true

	for slot := 0; slot < numSlots; slot++ {
		if idx[slot] < -1 {
			relative := idx[slot] + 1
			absolute := sizes[slot] + relative
			if absolute < 0 {
				l.diag.errorf(f, "Relative index %d is out of defined range for '%s' (size is %d)",
					relative, slotKeywords[slot], sizes[slot])
				resolved = false
				continue
			}
			idx[slot] = absolute
		}

		if idx[slot] >= sizes[slot] {
			l.diag.errorf(f, "Index %d is out of defined range for '%s'", idx[slot]+1, slotKeywords[slot])
		}
	}
	return resolved
}
