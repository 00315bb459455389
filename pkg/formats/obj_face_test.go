package formats

import (
	"fmt"
	"strings"
	"testing"
)

func TestParseVertexGroup(t *testing.T) {
	tests := []struct {
		group  string
		want   [numSlots]int
		wantOK bool
	}{
		{"1", [numSlots]int{0, -1, -1}, true},
		{"3/2", [numSlots]int{2, 1, -1}, true},
		{"3/2/1", [numSlots]int{2, 1, 0}, true},
		{"3//1", [numSlots]int{2, -1, 0}, true},
		{"-1", [numSlots]int{-2, -1, -1}, true},
		{"-1/-2/-3", [numSlots]int{-2, -3, -4}, true},
		{"1/", [numSlots]int{}, false},
		{"1//", [numSlots]int{}, false},
		{"/2", [numSlots]int{}, false},
		{"//3", [numSlots]int{}, false},
		{"1/2/3/4", [numSlots]int{}, false},
		{"a/b", [numSlots]int{}, false},
		{"0", [numSlots]int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			got, ok := parseVertexGroup(tt.group)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadFace_OmittedSlots(t *testing.T) {
	tests := []struct {
		face string
		want VertexIndex
	}{
		{"f 1 2 3", VertexIndex{0, -1, -1}},
		{"f 1/1 2/2 3/3", VertexIndex{0, 0, -1}},
		{"f 1/1/1 2/2/2 3/3/3", VertexIndex{0, 0, 0}},
		{"f 1//1 2//2 3//3", VertexIndex{0, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.face, func(t *testing.T) {
			obj := parseFS(t, "tri.obj", map[string]string{
				"tri.obj": lines(
					"v 0 0 0", "v 1 0 0", "v 0 1 0",
					"vt 0 0", "vt 1 0", "vt 0 1",
					"vn 0 0 1", "vn 0 0 1", "vn 0 0 1",
					tt.face,
				),
			})
			if obj.HasErrors() {
				t.Fatalf("unexpected errors: %v", obj.Diagnostics().Errors())
			}
			if len(obj.Triangles) != 1 {
				t.Fatalf("got %d triangles, want 1", len(obj.Triangles))
			}
			if got := obj.Triangles[0].Vertices[0]; got != tt.want {
				t.Errorf("anchor vertex = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadFace_FanCount(t *testing.T) {
	for n := 3; n <= 8; n++ {
		t.Run(fmt.Sprintf("%d-gon", n), func(t *testing.T) {
			src := make([]string, 0, n+1)
			indices := make([]string, 0, n)
			for i := 0; i < n; i++ {
				src = append(src, fmt.Sprintf("v %d %d 0", i, i*i))
				indices = append(indices, fmt.Sprint(i+1))
			}
			src = append(src, "f "+strings.Join(indices, " "))

			obj := parseFS(t, "poly.obj", map[string]string{"poly.obj": lines(src...)})
			if obj.HasErrors() {
				t.Fatalf("unexpected errors: %v", obj.Diagnostics().Errors())
			}
			if len(obj.Triangles) != n-2 {
				t.Errorf("got %d triangles, want %d", len(obj.Triangles), n-2)
			}
		})
	}
}

func TestReadFace_FanOrder(t *testing.T) {
	obj := parseFS(t, "quad.obj", map[string]string{
		"quad.obj": lines(append(quadPositions, "f 1 2 3 4")...),
	})
	if len(obj.Triangles) != 2 {
		t.Fatalf("got %d triangles, want 2", len(obj.Triangles))
	}

	want := [][3]int{{0, 2, 1}, {0, 3, 2}}
	for i, tri := range obj.Triangles {
		for j, v := range tri.Vertices {
			if v.Position != want[i][j] {
				t.Errorf("triangle %d vertex %d = %d, want %d", i, j, v.Position, want[i][j])
			}
		}
	}
}

func TestReadFace_TooFewVertices(t *testing.T) {
	obj := parseFS(t, "line.obj", map[string]string{
		"line.obj": lines("v 0 0 0", "v 1 0 0", "v 0 1 0", "f 1 2"),
	})
	if !obj.HasErrors() {
		t.Fatal("expected an error for a two-vertex face")
	}
	if n := countContaining(obj.Diagnostics().Errors(), "'f' does not take 2 parameter(s) (expected 3)"); n != 1 {
		t.Errorf("errors = %v", obj.Diagnostics().Errors())
	}
	if obj.Triangles != nil {
		t.Error("expected no triangles")
	}
}

func TestReadFace_RelativeIndices(t *testing.T) {
	src := make([]string, 0, 11)
	for i := 0; i < 10; i++ {
		src = append(src, fmt.Sprintf("v %d 0 0", i))
	}
	src = append(src, "f -1 -3 -10")

	obj := parseFS(t, "rel.obj", map[string]string{"rel.obj": lines(src...)})
	if obj.HasErrors() {
		t.Fatalf("unexpected errors: %v", obj.Diagnostics().Errors())
	}

	// -1 -> 9, -3 -> 7, -10 -> 0; fanned as (v0, v2, v1)
	tri := obj.Triangles[0]
	got := [3]int{tri.Vertices[0].Position, tri.Vertices[1].Position, tri.Vertices[2].Position}
	if want := [3]int{9, 0, 7}; got != want {
		t.Errorf("positions = %v, want %v", got, want)
	}
}

func TestResolveVertexGroup_Relative(t *testing.T) {
	sizes := [numSlots]int{10, 10, 10}

	tests := []struct {
		group string
		want  [numSlots]int
		ok    bool
	}{
		// -k addresses the k-th element from the end: with 10 entries -3 is index 7.
		{"-3", [numSlots]int{7, -1, -1}, true},
		{"-1/-10/-3", [numSlots]int{9, 0, 7}, true},
		{"-10//-1", [numSlots]int{0, -1, 9}, true},
		{"4/-3", [numSlots]int{3, 7, -1}, true},
		{"-11", [numSlots]int{-12, -1, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			l := newTestLoader(nil)
			f := newSourceFile("rel.obj", strings.NewReader("f "+tt.group+"\n"), nil)
			f.next()

			idx, ok := parseVertexGroup(tt.group)
			if !ok {
				t.Fatalf("parseVertexGroup(%q) failed", tt.group)
			}
			if got := l.resolveVertexGroup(f, &idx, sizes); got != tt.ok {
				t.Errorf("resolved = %v, want %v", got, tt.ok)
			}
			if idx != tt.want {
				t.Errorf("indices = %v, want %v", idx, tt.want)
			}
			if tt.ok && l.diag.HasErrors() {
				t.Errorf("unexpected errors: %v", l.diag.Errors())
			}
			if !tt.ok && len(l.diag.Errors()) != 1 {
				t.Errorf("errors = %v, want one", l.diag.Errors())
			}
		})
	}
}

func TestReadFace_RelativeUsesSizeAtLine(t *testing.T) {
	obj := parseFS(t, "rel.obj", map[string]string{
		"rel.obj": lines(
			"v 0 0 0", "v 1 0 0", "v 0 1 0",
			"f -3 -2 -1",
			"v 5 5 5",
			"f -3 -2 -1",
		),
	})
	if obj.HasErrors() {
		t.Fatalf("unexpected errors: %v", obj.Diagnostics().Errors())
	}
	if got := obj.Triangles[0].Vertices[0].Position; got != 0 {
		t.Errorf("first face anchor = %d, want 0", got)
	}
	if got := obj.Triangles[1].Vertices[0].Position; got != 1 {
		t.Errorf("second face anchor = %d, want 1", got)
	}
}

func TestReadFace_RelativeOutOfRange(t *testing.T) {
	obj := parseFS(t, "rel.obj", map[string]string{
		"rel.obj": lines("v 0 0 0", "v 1 0 0", "v 0 1 0", "f -4 1 2"),
	})
	errs := obj.Diagnostics().Errors()
	if len(errs) != 1 {
		t.Fatalf("errors = %v, want exactly one", errs)
	}
	want := "rel.obj: Line 4: Relative index -4 is out of defined range for 'v' (size is 3)"
	if errs[0] != want {
		t.Errorf("error = %q, want %q", errs[0], want)
	}
}

func TestReadFace_IndexOutOfRange(t *testing.T) {
	obj := parseFS(t, "oob.obj", map[string]string{
		"oob.obj": lines("v 0 0 0", "v 1 0 0", "v 0 1 0", "f 1 2 5"),
	})
	errs := obj.Diagnostics().Errors()
	if len(errs) != 1 {
		t.Fatalf("errors = %v, want exactly one", errs)
	}
	if !strings.Contains(errs[0], "5") || !strings.Contains(errs[0], "'v'") {
		t.Errorf("error %q should mention 5 and 'v'", errs[0])
	}
	if obj.Positions != nil || obj.Triangles != nil {
		t.Error("geometry must not be materialized when errors were recorded")
	}
}

func TestReadFace_OutOfRangePerComponent(t *testing.T) {
	obj := parseFS(t, "oob.obj", map[string]string{
		"oob.obj": lines("v 0 0 0", "v 1 0 0", "v 0 1 0", "vt 0 0", "f 1/1/1 2/9/1 3/1/1"),
	})
	errs := obj.Diagnostics().Errors()
	if n := countContaining(errs, "Index 9 is out of defined range for 'vt'"); n != 1 {
		t.Errorf("expected one vt error, got %v", errs)
	}
	if n := countContaining(errs, "Index 1 is out of defined range for 'vn'"); n != 3 {
		t.Errorf("expected three vn errors, got %v", errs)
	}
}

func TestReadFace_SyntaxError(t *testing.T) {
	obj := parseFS(t, "bad.obj", map[string]string{
		"bad.obj": lines("v 0 0 0", "v 1 0 0", "v 0 1 0", "f 1/2/3/4 2 3"),
	})
	if n := countContaining(obj.Diagnostics().Errors(), "Syntax error (f v, f v/vt, f v/vt/vn, f v//vn)"); n != 1 {
		t.Errorf("errors = %v", obj.Diagnostics().Errors())
	}
}

func TestReadFace_VertexIndexMismatch(t *testing.T) {
	obj := parseFS(t, "mix.obj", map[string]string{
		"mix.obj": lines("v 0 0 0", "v 1 0 0", "v 0 1 0", "vt 0 0", "f 1/1 2 3"),
	})
	errs := obj.Diagnostics().Errors()
	if len(errs) != 1 || !strings.HasSuffix(errs[0], "Vertex index mismatch") {
		t.Errorf("errors = %v, want one vertex index mismatch", errs)
	}
}

func TestReadFace_MaterialAndGroupStamp(t *testing.T) {
	obj := parseFS(t, "m.obj", map[string]string{
		"m.obj": lines(
			"mtllib m.mtl",
			"v 0 0 0", "v 1 0 0", "v 0 1 0", "v 1 1 0",
			"f 1 2 3",
			"g hull",
			"usemtl blue",
			"f 2 4 3",
			"usemtl red",
			"f 1 2 4",
		),
		"m.mtl": lines("newmtl red", "newmtl blue"),
	})
	if obj.HasErrors() {
		t.Fatalf("unexpected errors: %v", obj.Diagnostics().Errors())
	}

	want := []struct {
		material int
		group    string
	}{
		{-1, "default"},
		{1, "hull"},
		{0, "hull"},
	}
	for i, w := range want {
		tri := obj.Triangles[i]
		if tri.Material != w.material || tri.Group != w.group {
			t.Errorf("triangle %d = (%d, %q), want (%d, %q)", i, tri.Material, tri.Group, w.material, w.group)
		}
	}

	if got := len(obj.GetTrianglesInGroup("hull")); got != 2 {
		t.Errorf("GetTrianglesInGroup(hull) = %d, want 2", got)
	}
}
