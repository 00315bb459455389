package formats

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// mtlHandler applies one property line to the material being defined.
type mtlHandler func(l *loader, f *sourceFile, m *Material)

// mtlKeywords maps every recognized material property keyword to its handler.
// A nil handler marks a keyword that is recognized but not supported.
// "newmtl" is handled by readMaterials itself.
var mtlKeywords map[string]mtlHandler

func init() {
	mtlKeywords = map[string]mtlHandler{
		"Ka":        colorHandler(func(m *Material) *mgl32.Vec3 { return &m.Ambient }),
		"Kd":        colorHandler(func(m *Material) *mgl32.Vec3 { return &m.Diffuse }),
		"Ks":        colorHandler(func(m *Material) *mgl32.Vec3 { return &m.Specular }),
		"Ke":        colorHandler(func(m *Material) *mgl32.Vec3 { return &m.Emissive }),
		"Tf":        colorHandler(func(m *Material) *mgl32.Vec3 { return &m.TransmissionFilter }),
		"Tr":        scalarHandler(func(m *Material) *float32 { return &m.Alpha }),
		"d":         scalarHandler(func(m *Material) *float32 { return &m.Dissolve }),
		"Ns":        scalarHandler(func(m *Material) *float32 { return &m.Shininess }),
		"Ni":        scalarHandler(func(m *Material) *float32 { return &m.OpticalDensity }),
		"sharpness": scalarHandler(func(m *Material) *float32 { return &m.Sharpness }),
		"illum":     readIllum,
		"map_Ka":    mapHandler(func(m *Material) *string { return &m.AmbientMap }),
		"map_Kd":    mapHandler(func(m *Material) *string { return &m.DiffuseMap }),
		"map_Ks":    mapHandler(func(m *Material) *string { return &m.SpecularMap }),
		"map_Ke":    mapHandler(func(m *Material) *string { return &m.EmissiveMap }),
		"map_Tf":    mapHandler(func(m *Material) *string { return &m.TransmissionFilterMap }),
		"disp":      mapHandler(func(m *Material) *string { return &m.Displacement }),
		"decal":     mapHandler(func(m *Material) *string { return &m.Decal }),
		"bump":      mapHandler(func(m *Material) *string { return &m.Bump }),
		"map_Ns":    nil,
		"map_Tr":    nil,
		"map_d":     nil,
	}
}

// readMaterialLibrary handles an 'mtllib' line. Candidates are tried in order
// relative to the mesh file's directory and the first one that opens is read
// into the active LOD.
func (l *loader) readMaterialLibrary(f *sourceFile) {
	files, ok := readParamsAtLeast(l.diag, f, 1, parseString)
	if !ok {
		return
	}

	for _, name := range files {
		rc, err := l.opener.Open(l.workDir + name)
		if err != nil {
			l.diag.warnf(f, "Could not open \"%s\"", name)
			continue
		}

		l.logger.Debug("reading material library",
			zap.String("file", name),
			zap.Int("lod", l.cur.rank))
		l.readMaterials(l.cur, newSourceFile(name, rc, l.enc))
		rc.Close()
		return
	}

	l.diag.errorf(f, "Specified files could not be opened")
}

// readMaterials parses a material library into ctx.
func (l *loader) readMaterials(ctx *lodContext, f *sourceFile) {
	current := -1      // index into ctx.materials of the material being defined
	redefined := false // properties of a rejected redefinition are dropped

	for f.next() {
		if f.isComment() {
			continue
		}

		if f.keyword == "newmtl" {
			current, redefined = l.defineMaterial(ctx, f)
			continue
		}

		handler, known := mtlKeywords[f.keyword]
		switch {
		case !known:
			l.diag.errorf(f, "Unknown type '%s'", f.keyword)
		case redefined:
		case current < 0:
			l.diag.errorf(f, "'%s' operating on undefined material", f.keyword)
		case handler == nil:
			l.diag.warnf(f, "'%s' is not supported at this time", f.keyword)
		default:
			handler(l, f, &ctx.materials[current])
		}
	}

	if err := f.err(); err != nil {
		l.diag.errorf(f, "Read error: %v", err)
	}
}

// defineMaterial handles a 'newmtl' line and returns the index of the new
// material, or -1 if the line did not define one. redefined is true when
// the name was already taken.
func (l *loader) defineMaterial(ctx *lodContext, f *sourceFile) (index int, redefined bool) {
	names, ok := readParams(l.diag, f, 0, 1, DefaultMaterialName, parseString)
	if !ok {
		return -1, false
	}

	name := names[0]
	if ctx.materialIndex(name) >= 0 {
		l.diag.errorf(f, "Redefinition of material \"%s\"", name)
		return -1, true
	}

	ctx.materials = append(ctx.materials, NewMaterial(name))
	return len(ctx.materials) - 1, false
}

func colorHandler(field func(*Material) *mgl32.Vec3) mtlHandler {
	return func(l *loader, f *sourceFile, m *Material) {
		v, ok := readParams(l.diag, f, 3, 3, float32(0), parseFloat)
		if ok {
			*field(m) = mgl32.Vec3{v[0], v[1], v[2]}
		}
	}
}

func scalarHandler(field func(*Material) *float32) mtlHandler {
	return func(l *loader, f *sourceFile, m *Material) {
		v, ok := readParams(l.diag, f, 1, 1, float32(0), parseFloat)
		if ok {
			*field(m) = v[0]
		}
	}
}

func readIllum(l *loader, f *sourceFile, m *Material) {
	v, ok := readParams(l.diag, f, 1, 1, DefaultIllum, parseInt)
	if ok {
		m.Illum = v[0]
	}
}

// mapHandler records the first candidate path the texture probe accepts.
// Candidates are probed relative to the mesh file's directory but stored as written.
func mapHandler(field func(*Material) *string) mtlHandler {
	return func(l *loader, f *sourceFile, m *Material) {
		candidates, ok := readParamsAtLeast(l.diag, f, 1, parseString)
		if !ok {
			return
		}

		*field(m) = ""
		for _, c := range candidates {
			if l.probe(l.workDir + c) {
				*field(m) = c
				return
			}
		}
		l.diag.warnf(f, "Could not open %s for '%s'", quoteAll(candidates), f.keyword)
	}
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "\"" + n + "\""
	}
	return strings.Join(quoted, ", ")
}
