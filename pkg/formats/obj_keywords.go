package formats

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// objHandler applies one mesh file line to the loader.
type objHandler func(l *loader, f *sourceFile)

// objKeywords maps every keyword of the OBJ format to its handler.
// A nil handler marks a keyword that is recognized but not supported.
var objKeywords map[string]objHandler

func init() {
	objKeywords = map[string]objHandler{
		// supported
		"v":          (*loader).readPosition,
		"vt":         (*loader).readTexCoord,
		"vn":         (*loader).readNormal,
		"f":          (*loader).readFace,
		"o":          (*loader).readObjectName,
		"g":          (*loader).readGroup,
		"usemtl":     (*loader).readUseMaterial,
		"mtllib":     (*loader).readMaterialLibrary,
		"shadow_obj": (*loader).readShadowObj,
		"lod":        (*loader).readLOD,

		// free-form geometry
		"vp":     nil,
		"deg":    nil,
		"bmat":   nil,
		"step":   nil,
		"cstype": nil,
		"curv":   nil,
		"curv2":  nil,
		"surf":   nil,
		"parm":   nil,
		"trim":   nil,
		"hole":   nil,
		"scrv":   nil,
		"sp":     nil,
		"end":    nil,
		"con":    nil,

		// other elements and grouping
		"p":  nil,
		"l":  nil,
		"s":  nil,
		"mg": nil,

		// display and render attributes
		"bevel":     nil,
		"c_interp":  nil,
		"d_interp":  nil,
		"trace_obj": nil,
		"ctech":     nil,
		"stech":     nil,
		"maplib":    nil,
		"usemap":    nil,
	}
}

// readPosition handles 'v x y z [w]'.
func (l *loader) readPosition(f *sourceFile) {
	v, ok := readParams(l.diag, f, 3, 4, float32(1), parseFloat)
	if ok {
		l.cur.positions = append(l.cur.positions, mgl32.Vec4{v[0], v[1], v[2], v[3]})
	}
}

// readTexCoord handles 'vt u [v [w]]'.
func (l *loader) readTexCoord(f *sourceFile) {
	v, ok := readParams(l.diag, f, 1, 3, float32(0), parseFloat)
	if ok {
		l.cur.texCoords = append(l.cur.texCoords, mgl32.Vec3{v[0], v[1], v[2]})
	}
}

// readNormal handles 'vn x y z'.
func (l *loader) readNormal(f *sourceFile) {
	v, ok := readParams(l.diag, f, 3, 3, float32(0), parseFloat)
	if ok {
		l.cur.normals = append(l.cur.normals, mgl32.Vec3{v[0], v[1], v[2]})
	}
}

// readObjectName handles 'o name'. The name is shared by every LOD.
func (l *loader) readObjectName(f *sourceFile) {
	l.object = f.params
}

// readShadowObj handles 'shadow_obj file'. The path is shared by every LOD.
func (l *loader) readShadowObj(f *sourceFile) {
	l.shadowObj = f.params
}

// readGroup handles 'g name...'. The whole remainder names the group.
func (l *loader) readGroup(f *sourceFile) {
	group := strings.Join(strings.Fields(f.params), " ")
	if group == "" {
		group = DefaultGroup
	}
	l.cur.state.group = group
}

// readUseMaterial handles 'usemtl name'. Unknown names clear the active material.
func (l *loader) readUseMaterial(f *sourceFile) {
	names, ok := readParams(l.diag, f, 1, 1, "", parseString)
	if !ok {
		return
	}

	idx := l.cur.materialIndex(names[0])
	if idx < 0 {
		l.diag.errorf(f, "Material \"%s\" not defined", names[0])
	}
	l.cur.state.material = idx
}
