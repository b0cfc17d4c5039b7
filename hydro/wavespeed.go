package hydro

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/pthm-cable/diskhydro/eos"
	"github.com/pthm-cable/diskhydro/mesh"
	"github.com/pthm-cable/diskhydro/pointmass"
)

// MaxWaveSpeed returns max(|vx|+c, |vy|+c) for a single cell (§4.10),
// the per-axis maxima of |vn ± c| collapsed to one scalar.
func MaxWaveSpeed(p Primitive, e eos.EOS, masses []pointmass.PointMass, x, y float64) float64 {
	cs2 := e.SoundSpeedSquared([4]float64(p), masses, x, y)
	c := math.Sqrt(cs2)
	return math.Max(math.Abs(p[IMX])+c, math.Abs(p[IMY])+c)
}

// PatchMax reduces a guardless single-field view (as produced by Wavespeed)
// to its largest value. A convenience summary for tests and example
// programs; it does not itself select a timestep, which remains an
// external driver's job (§1).
func PatchMax(v mesh.View) float64 {
	vals := make([]float64, 0, v.NI*v.NJ)
	for j := 0; j < v.NJ; j++ {
		for i := 0; i < v.NI; i++ {
			vals = append(vals, v.Get(v.LoI+i, v.LoJ+j)[0])
		}
	}
	return floats.Max(vals)
}

// L1Norm returns the mean absolute difference between two equally-shaped
// single- or multi-field views, the error metric used to compare a patch
// against a reference solution (e.g. an advected profile's analytic shift).
func L1Norm(a, b mesh.View) float64 {
	diffs := make([]float64, 0, a.NI*a.NJ*a.NF)
	for j := 0; j < a.NJ; j++ {
		for i := 0; i < a.NI; i++ {
			av := a.Get(a.LoI+i, a.LoJ+j)
			bv := b.Get(b.LoI+i, b.LoJ+j)
			for k := range av {
				diffs = append(diffs, math.Abs(av[k]-bv[k]))
			}
		}
	}
	return floats.Sum(diffs) / float64(len(diffs))
}
