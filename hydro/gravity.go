package hydro

import (
	"math"

	"github.com/pthm-cable/diskhydro/eos"
	"github.com/pthm-cable/diskhydro/pointmass"
)

// PointMassSource accumulates the gravity and mass-sink delta to the
// conserved state u over timestep dt, summed over the ordered point-mass
// list (§4.5). h is the disk height at the cell (§4.6), used to set the
// gravitational softening length r_s = h/2.
func PointMassSource(u Conserved, p Primitive, masses []pointmass.PointMass, x, y, h, dt float64) Conserved {
	rho := p[IRho]
	vx, vy := p[IMX], p[IMY]
	eps := p[IE] / ((eos.Gamma - 1) * rho)

	out := u
	for _, m := range masses {
		dx := x - m.X
		dy := y - m.Y
		r := math.Hypot(dx, dy)
		rs := h / 2

		// Gravitational force per unit area on the gas. The numerator
		// uses the unsoftened r (Plummer softening only in the
		// denominator), matching a Plummer-softened potential (§4.5,
		// §9 "Numeric softening" — distinct from the disk-height ε_num).
		denom := (r*r + rs*rs) * r
		var fgx, fgy float64
		if denom > 0 {
			fgx = -rho * m.Mass * dx / denom
			fgy = -rho * m.Mass * dy / denom
		}

		// Sink rate: exponential cutoff within 4 softening lengths.
		var gammaSink float64
		if rs > 0 && r < 4*rs {
			ratio := r / rs
			gammaSink = m.SinkRate * math.Exp(-(ratio * ratio * ratio * ratio))
		}
		mdot := -rho * gammaSink

		var dRho, dPX, dPY, dE float64
		switch m.Model {
		case pointmass.AccelerationFree:
			dRho = dt * mdot
			dPX = dt * (mdot*vx + fgx)
			dPY = dt * (mdot*vy + fgy)
			speed2 := vx*vx + vy*vy
			dE = dt * (mdot*(eps+0.5*speed2) + fgx*vx + fgy*vy)
		case pointmass.TorqueFree:
			dRho = dt * mdot
			rhat := [2]float64{1, 0}
			if r > 0 {
				rhat = [2]float64{dx / r, dy / r}
			}
			relx, rely := vx-m.VX, vy-m.VY
			radial := relx*rhat[0] + rely*rhat[1]
			vsx := radial*rhat[0] + m.VX
			vsy := radial*rhat[1] + m.VY
			dPX = dt * (mdot*vsx + fgx)
			dPY = dt * (mdot*vsy + fgy)
			speedStar2 := vsx*vsx + vsy*vsy
			dE = dt * (mdot*(eps+0.5*speedStar2) + fgx*vx + fgy*vy)
		case pointmass.ForceFree:
			dRho = dt * mdot
			dPX = dt * fgx
			dPY = dt * fgy
			dE = dt * (fgx*vx + fgy*vy)
		case pointmass.Inactive:
			// no contribution
		}

		out[IRho] += dRho
		out[IMX] += dPX
		out[IMY] += dPY
		out[IE] += dE
	}
	return out
}
