package formats

import (
	"testing"
)

// triangleLOD returns lines declaring a LOD with n distinct triangles.
func triangleLOD(rank string, n int) []string {
	out := []string{}
	if rank != "" {
		out = append(out, "lod "+rank)
	}
	out = append(out, "v 0 0 0", "v 1 0 0", "v 0 1 0")
	for i := 0; i < n; i++ {
		out = append(out, "f 1 2 3")
	}
	return out
}

func TestLOD_Ordering(t *testing.T) {
	var src []string
	src = append(src, triangleLOD("", 1)...)
	src = append(src, triangleLOD("2", 3)...)
	src = append(src, triangleLOD("1", 2)...)

	obj := parseFS(t, "lod.obj", map[string]string{"lod.obj": lines(src...)})
	if obj.HasErrors() {
		t.Fatalf("unexpected errors: %v", obj.Diagnostics().Errors())
	}

	chain := obj.LODs()
	if len(chain) != 3 {
		t.Fatalf("chain length = %d, want 3", len(chain))
	}
	// rank 2 (3 triangles), rank 1 (2 triangles), rank 0 (1 triangle)
	want := []int{3, 2, 1}
	for i, lod := range chain {
		if got := len(lod.Triangles); got != want[i] {
			t.Errorf("chain[%d] has %d triangles, want %d", i, got, want[i])
		}
	}
	if chain[2].LOD != nil {
		t.Error("chain must end in nil")
	}
	if got := obj.GetTotalTriangleCount(); got != 6 {
		t.Errorf("total triangles = %d, want 6", got)
	}
}

func TestLOD_EqualRankInsertsFirst(t *testing.T) {
	var src []string
	src = append(src, triangleLOD("", 1)...)
	src = append(src, triangleLOD("0", 2)...)

	obj := parseFS(t, "lod.obj", map[string]string{"lod.obj": lines(src...)})
	chain := obj.LODs()
	if len(chain) != 2 {
		t.Fatalf("chain length = %d, want 2", len(chain))
	}
	if len(chain[0].Triangles) != 2 || len(chain[1].Triangles) != 1 {
		t.Errorf("triangle counts = %d, %d, want 2, 1", len(chain[0].Triangles), len(chain[1].Triangles))
	}
}

func TestLOD_EmptyDiscarded(t *testing.T) {
	src := append([]string{"o ship"}, triangleLOD("3", 1)...)

	obj := parseFS(t, "lod.obj", map[string]string{"lod.obj": lines(src...)})
	warns := obj.Diagnostics().Warnings()
	if len(warns) != 1 || warns[0] != "lod.obj: Line 2: Previous LOD 0 does not contain any relevant data. Skipping..." {
		t.Errorf("warnings = %v", warns)
	}
	if obj.LOD != nil {
		t.Error("empty LOD should not remain in the chain")
	}
	if len(obj.Triangles) != 1 {
		t.Errorf("got %d triangles, want 1", len(obj.Triangles))
	}
	if obj.Object != "ship" {
		t.Errorf("object = %q, want ship", obj.Object)
	}
}

func TestLOD_StateAndMaterialsNotInherited(t *testing.T) {
	files := map[string]string{
		"m.mtl": lines("newmtl hull"),
		"lod.obj": lines(
			"mtllib m.mtl",
			"g body",
			"usemtl hull",
			"v 0 0 0", "v 1 0 0", "v 0 1 0",
			"f 1 2 3",
			"lod 1",
			"v 0 0 0", "v 1 0 0", "v 0 1 0",
			"f 1 2 3",
			"usemtl hull",
		),
	}

	obj := parseFS(t, "lod.obj", files)
	errs := obj.Diagnostics().Errors()
	if len(errs) != 1 || errs[0] != `lod.obj: Line 13: Material "hull" not defined` {
		t.Fatalf("errors = %v", errs)
	}
}

func TestLOD_IndependentGeometry(t *testing.T) {
	files := map[string]string{
		"m.mtl": lines("newmtl hull"),
		"lod.obj": lines(
			"mtllib m.mtl",
			"g body",
			"usemtl hull",
			"v 0 0 0", "v 1 0 0", "v 0 1 0", "v 1 1 0",
			"f 1 2 3 4",
			"lod 1",
			"v 0 0 0", "v 1 0 0", "v 0 1 0",
			"f -3 -2 -1",
		),
	}

	obj := parseFS(t, "lod.obj", files)
	if obj.HasErrors() {
		t.Fatalf("unexpected errors: %v", obj.Diagnostics().Errors())
	}
	chain := obj.LODs()
	if len(chain) != 2 {
		t.Fatalf("chain length = %d, want 2", len(chain))
	}

	// lod 1 ranks above the initial 0 and comes first.
	low, high := chain[0], chain[1]
	if len(low.Positions) != 3 || len(low.Triangles) != 1 || len(low.Materials) != 0 {
		t.Errorf("lod 1: %d positions, %d triangles, %d materials", len(low.Positions), len(low.Triangles), len(low.Materials))
	}
	tri := low.Triangles[0]
	if tri.Material != -1 || tri.Group != DefaultGroup {
		t.Errorf("lod 1 triangle stamped (%d, %q), want (-1, %q)", tri.Material, tri.Group, DefaultGroup)
	}
	if len(high.Positions) != 4 || len(high.Triangles) != 2 || len(high.Materials) != 1 {
		t.Errorf("lod 0: %d positions, %d triangles, %d materials", len(high.Positions), len(high.Triangles), len(high.Materials))
	}
	if high.Triangles[0].Group != "body" {
		t.Errorf("lod 0 group = %q, want body", high.Triangles[0].Group)
	}

	if low.File != obj.File || low.Diagnostics() != obj.Diagnostics() {
		t.Error("LOD nodes must share file name and diagnostics")
	}
}

func TestLOD_NonIntegerRank(t *testing.T) {
	obj := parseFS(t, "lod.obj", map[string]string{
		"lod.obj": lines(append(triangleLOD("", 1), "lod 2.5")...),
	})

	if n := countContaining(obj.Diagnostics().Warnings(), `Malformed parameter "2.5"`); n != 1 {
		t.Errorf("warnings = %v", obj.Diagnostics().Warnings())
	}
	if n := countContaining(obj.Diagnostics().Errors(), "'lod' does not take 0 parameter(s) (expected 1)"); n != 1 {
		t.Errorf("errors = %v", obj.Diagnostics().Errors())
	}
}
