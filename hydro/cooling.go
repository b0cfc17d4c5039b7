package hydro

import (
	"math"

	"github.com/pthm-cable/diskhydro/eos"
)

// CoolingSource applies the closed-form β-cooling update to conserved
// state u's internal energy over timestep dt (§4.8): the analytic
// solution of dε/dt = -C ε⁴/ρ² is positivity-preserving and stable for
// any dt >= 0.
func CoolingSource(u Conserved, coolC, dt float64) Conserved {
	if coolC == 0 || dt == 0 {
		return u
	}
	rho := u[IRho]
	ke := 0.5 * (u[IMX]*u[IMX] + u[IMY]*u[IMY]) / rho
	eInternal := u[IE] - ke
	eps := eInternal / rho

	epsNew := eps * math.Pow(1+3*coolC*dt*eps*eps*eps/(rho*rho), -1.0/3.0)
	deltaE := rho * (epsNew - eps)

	out := u
	out[IE] += deltaE
	return out
}

// SpecificInternalEnergy returns ε = p/((γ-1)ρ) for a primitive state,
// the same quantity the point-mass source term computes inline (§4.5).
func SpecificInternalEnergy(p Primitive) float64 {
	return p[IE] / ((eos.Gamma - 1) * p[IRho])
}
