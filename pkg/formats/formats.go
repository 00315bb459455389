// Package formats provides parsers for Wavefront OBJ meshes and MTL material libraries.
package formats

// Note: OBJ loading (faces, groups, LOD chains) is implemented in obj*.go
// Note: MTL material libraries are implemented in mtl.go
