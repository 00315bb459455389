package formats

// OBJ files are authored looking down -Z while the consumer looks down +Z.
// Loading negates every Z once and the face fanning already reverses the
// winding, so the three transforms stay coupled.

// convertConvention negates the Z component of every position and normal
// in the chain.
func (o *OBJ) convertConvention() {
	for _, lod := range o.LODs() {
		lod.negateZ()
	}
}

// Reverse flips the mesh chain between the -Z and +Z viewing conventions by
// swapping the first and third vertex of every triangle and negating the Z
// component of every position and normal. Calling it twice restores the
// original data. Reverse must not run concurrently with other access to o.
func (o *OBJ) Reverse() {
	for _, lod := range o.LODs() {
		for i := range lod.Triangles {
			v := &lod.Triangles[i].Vertices
			v[0], v[2] = v[2], v[0]
		}
		lod.negateZ()
	}
}

func (o *OBJ) negateZ() {
	for i := range o.Positions {
		o.Positions[i][2] = -o.Positions[i][2]
	}
	for i := range o.Normals {
		o.Normals[i][2] = -o.Normals[i][2]
	}
}
