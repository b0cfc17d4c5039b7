package hydro

import (
	"math"

	"github.com/pthm-cable/diskhydro/eos"
	"github.com/pthm-cable/diskhydro/pointmass"
)

// DiskHeight computes h(x,y,P,masses) = sqrt(p/ρ) / sqrt(Σ m_p/r_p³),
// with r_p² = Δx²+Δy²+ε_num (§4.6). Used to set the gravitational
// softening length r_s = h/2 (§4.5) and the viscosity ν = α h √cs² below.
func DiskHeight(p Primitive, masses []pointmass.PointMass, x, y float64) float64 {
	var denomSum float64
	for _, m := range masses {
		dx := x - m.X
		dy := y - m.Y
		r2 := dx*dx + dy*dy + eos.EpsNum
		r := math.Sqrt(r2)
		denomSum += m.Mass / (r2 * r)
	}
	if denomSum <= 0 {
		return 0
	}
	return math.Sqrt(p[IE]/p[IRho]) / math.Sqrt(denomSum)
}

// Nu returns the α-viscosity kinematic viscosity ν = α h √cs² (§4.6).
func Nu(alpha, h, cs2 float64) float64 {
	return alpha * h * math.Sqrt(cs2)
}

// Strain holds the three independent components of the shear-strain
// tensor at a cell (§4.7); σ_yx = σ_xy by symmetry.
type Strain struct {
	XX, YY, XY float64
}

// ComputeStrain evaluates the strain tensor from the x- and y-direction
// gradient vectors (gx, gy — 4-tuples over the primitive fields as the zone
// kernel computes them, though only the velocity components [IMX],[IMY]
// are used) and mesh spacings:
//
//	σ_xx =  (4/3) gx[1]/dx - (2/3) gy[2]/dy
//	σ_yy = -(2/3) gx[1]/dx + (4/3) gy[2]/dy
//	σ_xy =  gx[2]/dx + gy[1]/dy
func ComputeStrain(gx, gy [4]float64, dx, dy float64) Strain {
	gx1dx := gx[IMX] / dx
	gy2dy := gy[IMY] / dy
	return Strain{
		XX: (4.0/3.0)*gx1dx - (2.0/3.0)*gy2dy,
		YY: (-2.0/3.0)*gx1dx + (4.0/3.0)*gy2dy,
		XY: gx[IMY]/dx + gy[IMX]/dy,
	}
}

// ViscousFaceCorrection returns the (momentum-x, momentum-y, energy)
// correction to subtract from the advective HLLE flux at a face between
// two adjoining cells (§4.7). nuCenter is the central cell's viscosity,
// used for all four faces of that cell — a documented approximation, not
// recomputed per face. rhoA/sigmaA and
// rhoB/sigmaB are the two adjoining cells' density and strain; upwindVel
// is the velocity of whichever cell is upwind on this face.
//
// dir selects which strain component is the "normal" one: for dir=0
// (x-faces) XX is normal and XY is the cross component feeding momentum-y;
// for dir=1 (y-faces) YY is normal and XY feeds momentum-x.
func ViscousFaceCorrection(dir int, rhoA, rhoB float64, sigmaA, sigmaB Strain, nuCenter float64, upwindVel [2]float64) (fx, fy, fe float64) {
	switch dir {
	case 0:
		tauX := nuCenter * 0.5 * (rhoA*sigmaA.XX + rhoB*sigmaB.XX)
		tauY := nuCenter * 0.5 * (rhoA*sigmaA.XY + rhoB*sigmaB.XY)
		return tauX, tauY, upwindVel[0]*tauX + upwindVel[1]*tauY
	default:
		tauY := nuCenter * 0.5 * (rhoA*sigmaA.YY + rhoB*sigmaB.YY)
		tauX := nuCenter * 0.5 * (rhoA*sigmaA.XY + rhoB*sigmaB.XY)
		return tauX, tauY, upwindVel[0]*tauX + upwindVel[1]*tauY
	}
}
