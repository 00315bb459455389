package formats

import "github.com/go-gl/mathgl/mgl32"

// Material is a named surface description from an MTL library.
type Material struct {
	Name string

	Ambient            mgl32.Vec3 // Ka
	Diffuse            mgl32.Vec3 // Kd
	Specular           mgl32.Vec3 // Ks
	Emissive           mgl32.Vec3 // Ke
	TransmissionFilter mgl32.Vec3 // Tf

	Alpha          float32 // Tr
	Dissolve       float32 // d
	Shininess      float32 // Ns
	OpticalDensity float32 // Ni
	Sharpness      float32 // sharpness of reflections
	Illum          int     // illumination model (0 flat, 1 diffuse, 2 diffuse+specular)

	// Texture maps. Empty when unset or when no candidate path could be used.
	AmbientMap            string // map_Ka
	DiffuseMap            string // map_Kd
	SpecularMap           string // map_Ks
	EmissiveMap           string // map_Ke
	TransmissionFilterMap string // map_Tf
	Displacement          string // disp
	Decal                 string // decal
	Bump                  string // bump
}

// Default material property values.
const (
	DefaultMaterialName   = "default"
	DefaultAlpha          = 1.0
	DefaultDissolve       = 1.0
	DefaultShininess      = 0.0
	DefaultOpticalDensity = 10.0
	DefaultSharpness      = 60.0
	DefaultIllum          = 1
)

// NewMaterial returns a material named name with every property at its default.
func NewMaterial(name string) Material {
	return Material{
		Name:               name,
		Ambient:            mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:            mgl32.Vec3{0.8, 0.8, 0.8},
		Specular:           mgl32.Vec3{1, 1, 1},
		Emissive:           mgl32.Vec3{0, 0, 0},
		TransmissionFilter: mgl32.Vec3{1, 1, 1},
		Alpha:              DefaultAlpha,
		Dissolve:           DefaultDissolve,
		Shininess:          DefaultShininess,
		OpticalDensity:     DefaultOpticalDensity,
		Sharpness:          DefaultSharpness,
		Illum:              DefaultIllum,
	}
}
