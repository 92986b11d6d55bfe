package geom

// Centroid returns the arithmetic mean of a vertex list.
func Centroid(verts []Vec) Vec {
	var c Vec
	for _, v := range verts {
		c[0] += v[0]
		c[1] += v[1]
		c[2] += v[2]
	}
	n := float64(len(verts))
	return Vec{c[0] / n, c[1] / n, c[2] / n}
}

// ProjectPolygon projects a 3D vertex list onto the given plane.
func ProjectPolygon(verts []Vec, p Plane) [][2]float64 {
	out := make([][2]float64, len(verts))
	for i, v := range verts {
		out[i][0], out[i][1] = p.Project(v)
	}
	return out
}

// PolygonContains reports whether the 2D point (x, y) lies inside the simple
// polygon described by poly, using the even-odd ray casting rule.
//
// Edges are treated half-open: a point exactly on an edge shared by two pads
// tiling a region is counted in exactly one of them, never both and never
// neither. Points on a vertex follow the same rule.
func PolygonContains(poly [][2]float64, x, y float64) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := poly[i][0], poly[i][1]
		xj, yj := poly[j][0], poly[j][1]

		if (yi > y) != (yj > y) {
			if x < (xj-xi)*(y-yi)/(yj-yi)+xi {
				inside = !inside
			}
		}
	}
	return inside
}
