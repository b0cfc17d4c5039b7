package hydro

import (
	"math"
	"testing"

	"github.com/pthm-cable/diskhydro/pointmass"
)

func baseCellState() (Conserved, Primitive) {
	p := Primitive{1.0, 0.1, -0.05, 0.02}
	return PrimitiveToConserved(p), p
}

func TestPointMassSourceInactiveIsNoOp(t *testing.T) {
	u, p := baseCellState()
	masses := []pointmass.PointMass{{X: 2, Y: 0, Mass: 1, SinkRate: 5, Model: pointmass.Inactive}}
	out := PointMassSource(u, p, masses, 1, 0, 0.1, 0.01)
	if out != u {
		t.Errorf("expected Inactive sink to leave state unchanged: got %+v, want %+v", out, u)
	}
}

func TestPointMassSourceForceFreeNoMassLoss(t *testing.T) {
	u, p := baseCellState()
	masses := []pointmass.PointMass{{X: 2, Y: 0, Mass: 1, SinkRate: 5, Model: pointmass.ForceFree}}
	out := PointMassSource(u, p, masses, 1, 0, 0.1, 0.01)
	// The cell sits at r=1, outside the sink region r < 4 r_s = 0.2, so the
	// sink rate is zero and only gravity acts.
	if out[IRho] != u[IRho] {
		t.Errorf("ForceFree outside the sink region must not change density: got %f, want %f", out[IRho], u[IRho])
	}
	// Gravity still pulls momentum toward the mass (at +x relative to cell).
	if out[IMX] <= u[IMX] {
		t.Errorf("expected gravitational pull toward +x mass to increase x-momentum, got %f from %f", out[IMX], u[IMX])
	}
}

func TestPointMassSourceAccelerationFreeRemovesMass(t *testing.T) {
	u, p := baseCellState()
	masses := []pointmass.PointMass{{X: 0.5, Y: 0, Mass: 1, SinkRate: 10, Model: pointmass.AccelerationFree}}
	// h=1 gives r_s=0.5, so the cell at r=0.5 lies inside the 4 r_s sink region.
	out := PointMassSource(u, p, masses, 1, 0, 1.0, 0.01)
	if out[IRho] >= u[IRho] {
		t.Errorf("expected AccelerationFree sink to remove mass, got %f from %f", out[IRho], u[IRho])
	}
}

func TestPointMassSourceTorqueFreeRemovesMass(t *testing.T) {
	u, p := baseCellState()
	masses := []pointmass.PointMass{{X: 0.5, Y: 0, VX: 0, VY: 1, Mass: 1, SinkRate: 10, Model: pointmass.TorqueFree}}
	// h=1 gives r_s=0.5, so the cell at r=0.5 lies inside the 4 r_s sink region.
	out := PointMassSource(u, p, masses, 1, 0, 1.0, 0.01)
	if out[IRho] >= u[IRho] {
		t.Errorf("expected TorqueFree sink to remove mass, got %f from %f", out[IRho], u[IRho])
	}
}

func TestPointMassSourceOriginDoesNotPanic(t *testing.T) {
	u, p := baseCellState()
	masses := []pointmass.PointMass{{X: 0, Y: 0, Mass: 1, SinkRate: 1, Model: pointmass.AccelerationFree}}
	out := PointMassSource(u, p, masses, 0, 0, 0.1, 0.01)
	for k := 0; k < 4; k++ {
		if math.IsNaN(out[k]) || math.IsInf(out[k], 0) {
			t.Fatalf("field %d non-finite at cell coincident with mass: %f", k, out[k])
		}
	}
}

func TestPointMassSourceSumsOverMultipleMasses(t *testing.T) {
	u, p := baseCellState()
	one := []pointmass.PointMass{{X: 2, Y: 0, Mass: 1, Model: pointmass.ForceFree}}
	two := []pointmass.PointMass{
		{X: 2, Y: 0, Mass: 1, Model: pointmass.ForceFree},
		{X: -2, Y: 0, Mass: 1, Model: pointmass.ForceFree},
	}
	outOne := PointMassSource(u, p, one, 1, 0, 0.1, 0.01)
	outTwo := PointMassSource(u, p, two, 1, 0, 0.1, 0.01)

	// The second, symmetric mass pulls in the opposite x-direction,
	// partially canceling the first mass's contribution.
	deltaOne := outOne[IMX] - u[IMX]
	deltaTwo := outTwo[IMX] - u[IMX]
	if math.Abs(deltaTwo) >= math.Abs(deltaOne) {
		t.Errorf("expected a symmetric opposing mass to partially cancel the x-momentum delta: one=%f two=%f", deltaOne, deltaTwo)
	}
}
