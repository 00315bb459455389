package formats

import (
	"fmt"
	"io"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	textenc "golang.org/x/text/encoding"
	"go.uber.org/zap"

	"github.com/Faultbox/objmesh/pkg/encoding"
	"github.com/Faultbox/objmesh/pkg/texture"
)

// DefaultGroup is the group assigned to faces that appear before any 'g' line.
const DefaultGroup = "default"

// VertexIndex references one corner of a triangle. Each field is a zero-based
// index into the matching OBJ array, or -1 when the file omitted it.
type VertexIndex struct {
	Position int
	TexCoord int
	Normal   int
}

// Triangle is one face of the mesh after polygon fanning.
type Triangle struct {
	Vertices [3]VertexIndex
	Material int    // Index into OBJ.Materials, -1 if none was active
	Group    string // Group active when the face was read
}

// OBJ is a parsed Wavefront OBJ mesh. LOD points to the next lower level of
// detail, forming a finite chain that ends in nil.
//
// Geometry is only populated when the whole parse finished without errors.
// Positions, texture coordinates and normals are stored in the +Z viewing
// convention: Z components are negated relative to the file and triangle
// winding is reversed.
type OBJ struct {
	File      string // Path the mesh was loaded from
	Object    string // Name from the 'o' line
	ShadowObj string // Mesh used for shadow casting, from 'shadow_obj'

	Positions []mgl32.Vec4 // x, y, z, w (w defaults to 1)
	TexCoords []mgl32.Vec3 // u, v, w (v and w default to 0)
	Normals   []mgl32.Vec3 // not necessarily unit length
	Materials []Material
	Triangles []Triangle

	LOD *OBJ

	diag *Diagnostics
}

// ParseOptions controls how a mesh and its referenced files are read.
type ParseOptions struct {
	// Opener opens the mesh, material libraries and (for the default probe)
	// texture maps. Defaults to the local filesystem.
	Opener Opener
	// TextureProbe decides whether a texture map candidate is usable.
	// Defaults to texture.OpenProbe over Opener.
	TextureProbe texture.Probe
	// Encoding names the character set of the source files (see encoding.Names).
	// Empty means UTF-8 passthrough.
	Encoding string
	// Logger receives debug-level progress messages. Defaults to a no-op logger.
	Logger *zap.Logger
}

// normalize fills in defaults for unset options.
func (o *ParseOptions) normalize() ParseOptions {
	var out ParseOptions
	if o != nil {
		out = *o
	}
	if out.Opener == nil {
		out.Opener = DirOpener{}
	}
	if out.TextureProbe == nil {
		out.TextureProbe = texture.OpenProbe(out.Opener)
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	return out
}

// loader holds the state of a single parse. It is not shared between parses.
type loader struct {
	diag    *Diagnostics
	opener  Opener
	probe   texture.Probe
	enc     textenc.Encoding
	logger  *zap.Logger
	workDir string

	object    string
	shadowObj string

	lods []*lodContext // pending LODs in final chain order
	cur  *lodContext   // LOD receiving geometry
}

// ParseOBJFile opens and parses the mesh at path.
//
// The returned OBJ is never nil unless the options are invalid. If path
// cannot be opened, the error wraps ErrOpenOBJ and the OBJ carries the same
// failure in its diagnostics. All other problems are reported only through
// the diagnostics; use HasErrors to check them.
func ParseOBJFile(path string, opt *ParseOptions) (*OBJ, error) {
	opts := opt.normalize()
	if _, err := encoding.Lookup(opts.Encoding); err != nil {
		return nil, err
	}

	rc, err := opts.Opener.Open(path)
	if err != nil {
		obj := &OBJ{File: path, diag: &Diagnostics{}}
		obj.diag.addError(fmt.Sprintf("\"%s\": File could not be opened", path))
		return obj, fmt.Errorf("%w %q: %w", ErrOpenOBJ, path, err)
	}
	defer rc.Close()

	return parseOBJ(rc, path, opts)
}

// ParseOBJ parses a mesh from r. Name is used in diagnostics and as the base
// for resolving material libraries and texture maps through the Opener.
func ParseOBJ(r io.Reader, name string, opt *ParseOptions) (*OBJ, error) {
	return parseOBJ(r, name, opt.normalize())
}

func parseOBJ(r io.Reader, name string, opts ParseOptions) (*OBJ, error) {
	enc, err := encoding.Lookup(opts.Encoding)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	l := &loader{
		diag:    &Diagnostics{},
		opener:  opts.Opener,
		probe:   opts.TextureProbe,
		enc:     enc,
		logger:  opts.Logger.With(zap.String("file", name)),
		workDir: workingDir(name),
	}
	l.cur = newLODContext(0)
	l.lods = []*lodContext{l.cur}

	f := newSourceFile(name, r, enc)
	l.readLines(f)
	if l.cur.triangleCount() == 0 {
		l.diag.addWarning("File does not contain any face definitions")
	}

	obj := &OBJ{File: name, Object: l.object, ShadowObj: l.shadowObj, diag: l.diag}
	if !l.diag.HasErrors() {
		l.seal(obj)
		obj.convertConvention()
	}

	l.logger.Debug("parsed mesh",
		zap.Int("lines", f.lineNo),
		zap.Int("lods", len(l.lods)),
		zap.Int("errors", len(l.diag.errors)),
		zap.Int("warnings", len(l.diag.warnings)),
		zap.Duration("elapsed", time.Since(start)))

	return obj, nil
}

// readLines dispatches every line of f to its keyword handler.
func (l *loader) readLines(f *sourceFile) {
	for f.next() {
		if f.isComment() {
			continue
		}

		handler, known := objKeywords[f.keyword]
		switch {
		case !known:
			l.diag.errorf(f, "Unknown type '%s'", f.keyword)
		case handler == nil:
			l.diag.warnf(f, "'%s' is not supported at this time", f.keyword)
		default:
			handler(l, f)
		}
	}

	if err := f.err(); err != nil {
		l.diag.errorf(f, "Read error: %v", err)
	}
}

// Diagnostics returns the errors and warnings collected while parsing.
// Every LOD of a chain shares the same collector.
func (o *OBJ) Diagnostics() *Diagnostics {
	if o.diag == nil {
		o.diag = &Diagnostics{}
	}
	return o.diag
}

// HasErrors returns true if the parse recorded any error.
func (o *OBJ) HasErrors() bool {
	return o.Diagnostics().HasErrors()
}

// HasWarnings returns true if the parse recorded any warning.
func (o *OBJ) HasWarnings() bool {
	return o.Diagnostics().HasWarnings()
}

// DumpErrors writes at most limit errors to w. See Diagnostics.DumpErrors.
func (o *OBJ) DumpErrors(w io.Writer, limit int) error {
	return o.Diagnostics().DumpErrors(w, limit)
}

// DumpWarnings writes at most limit warnings to w. See Diagnostics.DumpWarnings.
func (o *OBJ) DumpWarnings(w io.Writer, limit int) error {
	return o.Diagnostics().DumpWarnings(w, limit)
}

// LODs returns the chain starting at o, highest detail first.
func (o *OBJ) LODs() []*OBJ {
	var chain []*OBJ
	for lod := o; lod != nil; lod = lod.LOD {
		chain = append(chain, lod)
	}
	return chain
}

// GetTotalTriangleCount returns the number of triangles across the whole chain.
func (o *OBJ) GetTotalTriangleCount() int {
	total := 0
	for _, lod := range o.LODs() {
		total += len(lod.Triangles)
	}
	return total
}

// GetMaterialByName returns the material named name in this LOD, or nil.
func (o *OBJ) GetMaterialByName(name string) *Material {
	for i := range o.Materials {
		if o.Materials[i].Name == name {
			return &o.Materials[i]
		}
	}
	return nil
}

// GetTrianglesInGroup returns the triangles of this LOD that belong to group.
func (o *OBJ) GetTrianglesInGroup(group string) []Triangle {
	var out []Triangle
	for _, t := range o.Triangles {
		if t.Group == group {
			out = append(out, t)
		}
	}
	return out
}
