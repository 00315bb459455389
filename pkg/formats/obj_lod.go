package formats

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// parseState is the cursor applied to faces as they are read.
type parseState struct {
	material int    // index into lodContext.materials, -1 if none
	group    string // active group name
}

// lodContext accumulates the geometry and materials of one level of detail.
type lodContext struct {
	rank  int
	state parseState

	positions []mgl32.Vec4
	texCoords []mgl32.Vec3
	normals   []mgl32.Vec3
	materials []Material
	triangles []Triangle
}

func newLODContext(rank int) *lodContext {
	return &lodContext{
		rank:  rank,
		state: parseState{material: -1, group: DefaultGroup},
	}
}

// sizes returns the current position, texture coordinate and normal counts.
func (c *lodContext) sizes() [numSlots]int {
	return [numSlots]int{len(c.positions), len(c.texCoords), len(c.normals)}
}

func (c *lodContext) triangleCount() int {
	return len(c.triangles)
}

// isEmpty reports whether the context holds no positions and no faces.
func (c *lodContext) isEmpty() bool {
	return len(c.positions) == 0 && len(c.triangles) == 0
}

// materialIndex returns the index of the material named name, or -1.
func (c *lodContext) materialIndex(name string) int {
	for i := range c.materials {
		if c.materials[i].Name == name {
			return i
		}
	}
	return -1
}

// addPolygon fans face into triangles (v0, v[i+1], v[i]) for i = 1..n-2.
// The reversed order puts the triangles in the +Z viewing convention.
func (c *lodContext) addPolygon(face [][numSlots]int) {
	for i := 1; i+1 < len(face); i++ {
		c.triangles = append(c.triangles, Triangle{
			Vertices: [3]VertexIndex{
				toVertexIndex(face[0]),
				toVertexIndex(face[i+1]),
				toVertexIndex(face[i]),
			},
			Material: c.state.material,
			Group:    c.state.group,
		})
	}
}

func toVertexIndex(idx [numSlots]int) VertexIndex {
	return VertexIndex{
		Position: idx[slotPosition],
		TexCoord: idx[slotTexCoord],
		Normal:   idx[slotNormal],
	}
}

// readLOD handles 'lod rank'. An empty active LOD is dropped, then a new
// context is inserted before the first pending context whose rank is not
// greater than the new one.
func (l *loader) readLOD(f *sourceFile) {
	v, ok := readParams(l.diag, f, 1, 1, 0, parseInt)
	if !ok {
		return
	}
	rank := v[0]

	if l.cur.isEmpty() {
		l.diag.warnf(f, "Previous LOD %d does not contain any relevant data. Skipping...", l.cur.rank)
		l.logger.Debug("discarding empty LOD", zap.Int("lod", l.cur.rank))
		if i := slices.Index(l.lods, l.cur); i >= 0 {
			l.lods = slices.Delete(l.lods, i, i+1)
		}
	}

	at := len(l.lods)
	for i, ctx := range l.lods {
		if rank >= ctx.rank {
			at = i
			break
		}
	}

	l.cur = newLODContext(rank)
	l.lods = slices.Insert(l.lods, at, l.cur)
}

// seal materializes every pending context into root and the nodes linked
// from it, in chain order.
func (l *loader) seal(root *OBJ) {
	node := root
	for i, ctx := range l.lods {
		if i > 0 {
			node.LOD = &OBJ{File: root.File, Object: root.Object, ShadowObj: root.ShadowObj, diag: root.diag}
			node = node.LOD
		}

		node.Positions = slices.Clip(ctx.positions)
		node.TexCoords = slices.Clip(ctx.texCoords)
		node.Normals = slices.Clip(ctx.normals)
		node.Materials = slices.Clip(ctx.materials)
		node.Triangles = slices.Clip(ctx.triangles)

		l.logger.Debug("sealed LOD",
			zap.Int("lod", ctx.rank),
			zap.Int("positions", len(node.Positions)),
			zap.Int("triangles", len(node.Triangles)),
			zap.Int("materials", len(node.Materials)))
	}
}
