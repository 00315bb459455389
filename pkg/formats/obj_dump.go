package formats

import (
	"bufio"
	"fmt"
	"io"
)

// Dump writes a human-readable listing of the whole LOD chain to w.
// Face indices are printed one-based, so omitted components show as 0.
func (o *OBJ) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for n, lod := range o.LODs() {
		fmt.Fprintf(bw, "lod = %d\n", n+1)
		fmt.Fprintf(bw, "o = %s\n", lod.Object)
		fmt.Fprintf(bw, "shadow_obj %s\n", lod.ShadowObj)

		fmt.Fprintf(bw, "num v = %d\n", len(lod.Positions))
		for _, v := range lod.Positions {
			fmt.Fprintf(bw, "v %g %g %g %g\n", v[0], v[1], v[2], v[3])
		}
		fmt.Fprintf(bw, "num vt = %d\n", len(lod.TexCoords))
		for _, vt := range lod.TexCoords {
			fmt.Fprintf(bw, "vt %g %g %g\n", vt[0], vt[1], vt[2])
		}
		fmt.Fprintf(bw, "num vn = %d\n", len(lod.Normals))
		for _, vn := range lod.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", vn[0], vn[1], vn[2])
		}

		fmt.Fprintf(bw, "num f = %d\n", len(lod.Triangles))
		for _, t := range lod.Triangles {
			fmt.Fprintf(bw, "g %s\n", t.Group)
			fmt.Fprintf(bw, "usemtl %d\n", t.Material)
			fmt.Fprint(bw, "f")
			for _, v := range t.Vertices {
				fmt.Fprintf(bw, " %d/%d/%d", v.Position+1, v.TexCoord+1, v.Normal+1)
			}
			fmt.Fprintln(bw)
		}

		fmt.Fprintf(bw, "num newmtl = %d\n", len(lod.Materials))
		for i := range lod.Materials {
			dumpMaterial(bw, &lod.Materials[i])
		}
	}

	return bw.Flush()
}

func dumpMaterial(w io.Writer, m *Material) {
	fmt.Fprintf(w, "newmtl %s\n", m.Name)
	fmt.Fprintf(w, "Ka     %g %g %g\n", m.Ambient[0], m.Ambient[1], m.Ambient[2])
	fmt.Fprintf(w, "Kd     %g %g %g\n", m.Diffuse[0], m.Diffuse[1], m.Diffuse[2])
	fmt.Fprintf(w, "Ks     %g %g %g\n", m.Specular[0], m.Specular[1], m.Specular[2])
	fmt.Fprintf(w, "Ke     %g %g %g\n", m.Emissive[0], m.Emissive[1], m.Emissive[2])
	fmt.Fprintf(w, "Tf     %g %g %g\n", m.TransmissionFilter[0], m.TransmissionFilter[1], m.TransmissionFilter[2])
	fmt.Fprintf(w, "Tr     %g\n", m.Alpha)
	fmt.Fprintf(w, "d      %g\n", m.Dissolve)
	fmt.Fprintf(w, "Ns     %g\n", m.Shininess)
	fmt.Fprintf(w, "Ni     %g\n", m.OpticalDensity)
	fmt.Fprintf(w, "sharpness %g\n", m.Sharpness)
	fmt.Fprintf(w, "illum  %d\n", m.Illum)
	fmt.Fprintf(w, "map_Ka %s\n", m.AmbientMap)
	fmt.Fprintf(w, "map_Kd %s\n", m.DiffuseMap)
	fmt.Fprintf(w, "map_Ks %s\n", m.SpecularMap)
	fmt.Fprintf(w, "map_Ke %s\n", m.EmissiveMap)
	fmt.Fprintf(w, "map_Tf %s\n", m.TransmissionFilterMap)
	fmt.Fprintf(w, "disp   %s\n", m.Displacement)
	fmt.Fprintf(w, "decal  %s\n", m.Decal)
	fmt.Fprintf(w, "bump   %s\n", m.Bump)
}
