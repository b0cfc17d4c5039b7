package hydro

import (
	"github.com/pthm-cable/diskhydro/eos"
	"github.com/pthm-cable/diskhydro/exec"
	"github.com/pthm-cable/diskhydro/mesh"
	"github.com/pthm-cable/diskhydro/pointmass"
)

// PrimitiveToConservedOverPatch applies PrimitiveToConserved to every
// interior cell, reading from the 2-guard pIn view and writing into the
// guardless uOut view (§4.10, §6 entry point 1).
func PrimitiveToConservedOverPatch(m mesh.Mesh, pIn, uOut mesh.View, mode exec.Mode) {
	exec.Dispatch(mode, m.NI, m.NJ, func(i, j int) {
		p := loadPrimitive(pIn, i, j)
		u := PrimitiveToConserved(p)
		uOut.Set(i, j, u[:])
	})
}

// AdvanceRK runs one RK sub-stage over every interior cell (§4.9, §6 entry
// point 2). pRd and pWr must be distinct buffers (double buffering is the
// sole inter-cell data dependency within a sub-stage, §5).
func AdvanceRK(m mesh.Mesh, uRk, pRd, pWr mesh.View, params Params, mode exec.Mode) {
	exec.Dispatch(mode, m.NI, m.NJ, func(i, j int) {
		AdvanceZone(m, uRk, pRd, pWr, params, i, j)
	})
}

// Wavespeed writes max(|vx|+c, |vy|+c) into aOut for every interior cell
// (§4.10, §6 entry point 3). The external driver reduces aOut to a
// patch-wide maximum for CFL.
func Wavespeed(m mesh.Mesh, pIn, aOut mesh.View, e eos.EOS, masses []pointmass.PointMass, mode exec.Mode) {
	exec.Dispatch(mode, m.NI, m.NJ, func(i, j int) {
		p := loadPrimitive(pIn, i, j)
		x, y := m.CellCenter(i, j)
		a := MaxWaveSpeed(p, e, masses, x, y)
		aOut.Set(i, j, []float64{a})
	})
}
