// Package mesh describes the uniform rectangular patch geometry the hydro
// core is evaluated over, and the strided dense-array view used to index
// conserved, primitive, and wavespeed field arrays without allocation.
package mesh

import "math"

// Mesh is a uniform rectangular patch of interior cells. Two layers of
// guard zones surround the interior; the guard layers are populated by an
// external collaborator before the core is invoked (§3.1).
type Mesh struct {
	NI, NJ int     // interior extents
	X0, Y0 float64 // origin (lower-left corner of the interior)
	DX, DY float64 // cell spacings
}

// GuardWidth is the number of guard-zone layers surrounding the interior.
// Fixed throughout, not configuration.
const GuardWidth = 2

// CellCenter returns the physical center of interior cell (i, j).
func (m Mesh) CellCenter(i, j int) (x, y float64) {
	x = m.X0 + (float64(i)+0.5)*m.DX
	y = m.Y0 + (float64(j)+0.5)*m.DY
	return
}

// Radius returns the distance from the origin to the center of cell (i, j).
// Convenience used by the zone kernel for the buffer source term, which
// keys off cell-center radius.
func (m Mesh) Radius(i, j int) float64 {
	x, y := m.CellCenter(i, j)
	return math.Hypot(x, y)
}
