package hydro

import (
	"math"

	"github.com/pthm-cable/diskhydro/buffer"
	"github.com/pthm-cable/diskhydro/eos"
)

// BufferSource applies the Keplerian buffer-zone relaxation to conserved
// state u at cell center (x, y) with radius rc (§4.8). A no-op when the
// buffer is inactive or rc is within the onset radius.
func BufferSource(b buffer.Buffer, u Conserved, x, y, rc, dt float64) Conserved {
	if !b.Active(rc) {
		return u
	}

	rOnset := b.OnsetRadius()
	omegaOuter := math.Sqrt(b.MCentral / (rOnset * rOnset * rOnset))

	vKep := math.Sqrt(b.MCentral / rc)
	// Tangent direction at (x,y): (-y, x)/r.
	tx, ty := -y/rc, x/rc
	vx0, vy0 := vKep*tx, vKep*ty

	ke0 := 0.5 * b.Sigma * (vx0*vx0 + vy0*vy0)
	e0 := b.PSurf/(eos.Gamma-1) + ke0
	u0 := Conserved{b.Sigma, b.Sigma * vx0, b.Sigma * vy0, e0}

	rMax := rc
	if rMax < 1 {
		rMax = 1
	}
	rate := b.NuDrive * omegaOuter * rMax * dt

	var out Conserved
	for k := 0; k < 4; k++ {
		out[k] = u[k] - (u[k]-u0[k])*rate
	}
	return out
}
