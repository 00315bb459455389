package formats

// Summary is a compact description of a parsed mesh chain, suitable for
// YAML or JSON encoding.
type Summary struct {
	File      string       `yaml:"file" json:"file"`
	Object    string       `yaml:"object,omitempty" json:"object,omitempty"`
	ShadowObj string       `yaml:"shadow_obj,omitempty" json:"shadow_obj,omitempty"`
	LODs      []LODSummary `yaml:"lods,omitempty" json:"lods,omitempty"`
	Errors    []string     `yaml:"errors,omitempty" json:"errors,omitempty"`
	Warnings  []string     `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

// LODSummary describes one level of detail.
type LODSummary struct {
	Positions int      `yaml:"positions" json:"positions"`
	TexCoords int      `yaml:"texcoords" json:"texcoords"`
	Normals   int      `yaml:"normals" json:"normals"`
	Triangles int      `yaml:"triangles" json:"triangles"`
	Materials []string `yaml:"materials,omitempty" json:"materials,omitempty"`
	Groups    []string `yaml:"groups,omitempty" json:"groups,omitempty"` // first-seen order
}

// Summary returns counts and names for every LOD plus the diagnostics.
// A mesh that failed to parse has no LOD entries.
func (o *OBJ) Summary() Summary {
	s := Summary{
		File:      o.File,
		Object:    o.Object,
		ShadowObj: o.ShadowObj,
		Errors:    o.Diagnostics().Errors(),
		Warnings:  o.Diagnostics().Warnings(),
	}
	if o.HasErrors() {
		return s
	}

	for _, lod := range o.LODs() {
		ls := LODSummary{
			Positions: len(lod.Positions),
			TexCoords: len(lod.TexCoords),
			Normals:   len(lod.Normals),
			Triangles: len(lod.Triangles),
		}
		for _, m := range lod.Materials {
			ls.Materials = append(ls.Materials, m.Name)
		}
		seen := make(map[string]bool)
		for _, t := range lod.Triangles {
			if !seen[t.Group] {
				seen[t.Group] = true
				ls.Groups = append(ls.Groups, t.Group)
			}
		}
		s.LODs = append(s.LODs, ls)
	}
	return s
}
