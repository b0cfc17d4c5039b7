// Package hydro implements the per-zone numerical update: PLM
// reconstruction, the HLLE Riemann solver, α-viscosity, point-mass and
// buffer source terms, β-cooling, and the single-stage Runge-Kutta zone
// kernel that assembles them (§4).
package hydro

import (
	"math"

	"github.com/pthm-cable/diskhydro/eos"
)

// Field indices into a Primitive or Conserved tuple (§3.3).
const (
	IRho = 0
	IMX  = 1 // x-momentum (conserved) / x-velocity (primitive)
	IMY  = 2 // y-momentum (conserved) / y-velocity (primitive)
	IE   = 3 // energy (conserved) / pressure (primitive)
)

// Primitive is (ρ, vx, vy, p).
type Primitive [4]float64

// Conserved is (ρ, ρvx, ρvy, E).
type Conserved [4]float64

// PrimitiveToConserved converts a primitive state to conserved form (§4.2):
// E = p/(γ-1) + ½ρ(vx²+vy²).
func PrimitiveToConserved(p Primitive) Conserved {
	rho, vx, vy, pr := p[IRho], p[IMX], p[IMY], p[IE]
	ke := 0.5 * rho * (vx*vx + vy*vy)
	e := pr/(eos.Gamma-1) + ke
	return Conserved{rho, rho * vx, rho * vy, e}
}

// ConservedToPrimitive inverts PrimitiveToConserved with positivity floors
// and a velocity ceiling (§4.2). The energy recomputation in step 3 uses
// the clamped velocities, not the raw momenta, making the operation
// idempotent on any admissible primitive state. Floors and ceilings are
// the failure semantics (§7) — there is no error return.
func ConservedToPrimitive(u Conserved, vCeil, rhoFloor, pFloor float64) Primitive {
	rho := math.Max(u[IRho], rhoFloor)

	vx := clampVelocity(u[IMX]/rho, vCeil)
	vy := clampVelocity(u[IMY]/rho, vCeil)

	ke := 0.5 * rho * (vx*vx + vy*vy)
	p := math.Max((u[IE]-ke)*(eos.Gamma-1), pFloor)

	return Primitive{rho, vx, vy, p}
}

// clampVelocity bounds v to [-vCeil, vCeil] while preserving sign, per
// sign(U1)*min(|U1|/rho, vCeil).
func clampVelocity(v, vCeil float64) float64 {
	if v > vCeil {
		return vCeil
	}
	if v < -vCeil {
		return -vCeil
	}
	return v
}

// PhysicalFlux computes the direction-d physical flux of conserved state u
// with primitive p (§4.4 step 1):
// F = (vn ρ, vn ρvx + p·[d=0], vn ρvy + p·[d=1], vn(E+p)).
func PhysicalFlux(u Conserved, p Primitive, dir int) Conserved {
	vn := p[IMX]
	if dir == 1 {
		vn = p[IMY]
	}
	f := Conserved{
		vn * u[IRho],
		vn * u[IMX],
		vn * u[IMY],
		vn * (u[IE] + p[IE]),
	}
	if dir == 0 {
		f[IMX] += p[IE]
	} else {
		f[IMY] += p[IE]
	}
	return f
}
