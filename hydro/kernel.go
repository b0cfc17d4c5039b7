package hydro

import (
	"github.com/pthm-cable/diskhydro/buffer"
	"github.com/pthm-cable/diskhydro/eos"
	"github.com/pthm-cable/diskhydro/mesh"
	"github.com/pthm-cable/diskhydro/pointmass"
)

// Params bundles the scalar controls of a single RK sub-stage (§4.9, §6)
// that are constant across the whole dispatch, so the per-cell kernel
// signature stays small. All fields are small value types, copied into
// the kernel's frame per cell — no shared mutable state (§5).
type Params struct {
	EOS      eos.EOS
	Buffer   buffer.Buffer
	Masses   []pointmass.PointMass
	Alpha    float64
	A        float64 // RK convex-combination weight
	DT       float64
	VCeil    float64
	CoolC    float64
	RhoFloor float64
	PFloor   float64
}

func loadPrimitive(v mesh.View, i, j int) Primitive {
	s := v.Get(i, j)
	return Primitive{s[0], s[1], s[2], s[3]}
}

// AdvanceZone performs one RK sub-stage update of a single interior cell
// (i, j) (§4.9): PLM reconstruction, HLLE fluxes on all four faces,
// optional α-viscosity correction, point-mass/buffer/cooling sources, flux
// divergence, and the RK convex combination against uRk, writing the
// result into pWr.
func AdvanceZone(m mesh.Mesh, uRk, pRd, pWr mesh.View, params Params, i, j int) {
	// 1. Stencil.
	c := loadPrimitive(pRd, i, j)
	l := loadPrimitive(pRd, i-1, j)
	r := loadPrimitive(pRd, i+1, j)
	d := loadPrimitive(pRd, i, j-1)
	u := loadPrimitive(pRd, i, j+1)
	ll := loadPrimitive(pRd, i-2, j)
	rr := loadPrimitive(pRd, i+2, j)
	dd := loadPrimitive(pRd, i, j-2)
	uu := loadPrimitive(pRd, i, j+2)

	viscous := params.Alpha != 0

	var dl, dr, ul2, ur Primitive
	if viscous {
		dl = loadPrimitive(pRd, i-1, j-1)
		dr = loadPrimitive(pRd, i+1, j-1)
		ul2 = loadPrimitive(pRd, i-1, j+1)
		ur = loadPrimitive(pRd, i+1, j+1)
	}

	// 2. Gradients.
	gCx := FieldGradient([4]float64(l), [4]float64(c), [4]float64(r))
	gCy := FieldGradient([4]float64(d), [4]float64(c), [4]float64(u))
	gLx := FieldGradient([4]float64(ll), [4]float64(l), [4]float64(c))
	gRx := FieldGradient([4]float64(c), [4]float64(r), [4]float64(rr))
	gDy := FieldGradient([4]float64(dd), [4]float64(d), [4]float64(c))
	gUy := FieldGradient([4]float64(c), [4]float64(u), [4]float64(uu))

	var gLy, gRy, gDx, gUx [4]float64
	if viscous {
		gLy = FieldGradient([4]float64(dl), [4]float64(l), [4]float64(ul2))
		gRy = FieldGradient([4]float64(dr), [4]float64(r), [4]float64(ur))
		gDx = FieldGradient([4]float64(dl), [4]float64(d), [4]float64(dr))
		gUx = FieldGradient([4]float64(ul2), [4]float64(u), [4]float64(ur))
	}

	// 3. Face-reconstructed primitives.
	pLminus := addHalf(l, gLx)  // left neighbor extrapolated toward the L face
	pLplus := subHalf(c, gCx)   // center extrapolated toward the L face
	pRminus := addHalf(c, gCx)  // center extrapolated toward the R face
	pRplus := subHalf(r, gRx)   // right neighbor extrapolated toward the R face
	pDminus := addHalf(d, gDy)  // down neighbor extrapolated toward the D face
	pDplus := subHalf(c, gCy)   // center extrapolated toward the D face
	pUminus := addHalf(c, gCy)  // center extrapolated toward the U face
	pUplus := subHalf(u, gUy)   // up neighbor extrapolated toward the U face

	// 4. Face sound speeds from the neighbor cell — an asymmetric
	// convention kept literally: both the L and R faces use the left
	// neighbor's cs2, both D and U faces use the down neighbor's cs2.
	xl, yl := m.CellCenter(i-1, j)
	xd, yd := m.CellCenter(i, j-1)
	cs2LR := params.EOS.SoundSpeedSquared([4]float64(l), params.Masses, xl, yl)
	cs2DU := params.EOS.SoundSpeedSquared([4]float64(d), params.Masses, xd, yd)

	// 5. HLLE fluxes.
	fL := HLLE(pLminus, pLplus, cs2LR, 0)
	fR := HLLE(pRminus, pRplus, cs2LR, 0)
	gD := HLLE(pDminus, pDplus, cs2DU, 1)
	gU := HLLE(pUminus, pUplus, cs2DU, 1)

	// 6. Viscous correction (skipped entirely when alpha == 0).
	if viscous {
		xc, yc := m.CellCenter(i, j)
		hc := DiskHeight(c, params.Masses, xc, yc)
		cs2c := params.EOS.SoundSpeedSquared([4]float64(c), params.Masses, xc, yc)
		nuC := Nu(params.Alpha, hc, cs2c)

		sigC := ComputeStrain(gCx, gCy, m.DX, m.DY)
		sigL := ComputeStrain(gLx, gLy, m.DX, m.DY)
		sigR := ComputeStrain(gRx, gRy, m.DX, m.DY)
		sigD := ComputeStrain(gDx, gDy, m.DX, m.DY)
		sigU := ComputeStrain(gUx, gUy, m.DX, m.DY)

		applyViscous(&fL, 0, l[IRho], c[IRho], sigL, sigC, nuC, upwindVelocity(pLminus, pLplus, 0, l, c))
		applyViscous(&fR, 0, c[IRho], r[IRho], sigC, sigR, nuC, upwindVelocity(pRminus, pRplus, 0, c, r))
		applyViscous(&gD, 1, d[IRho], c[IRho], sigD, sigC, nuC, upwindVelocity(pDminus, pDplus, 1, d, c))
		applyViscous(&gU, 1, c[IRho], u[IRho], sigC, sigU, nuC, upwindVelocity(pUminus, pUplus, 1, c, u))
	}

	// 7. Start from the centered cell's conserved state.
	xc, yc := m.CellCenter(i, j)
	state := PrimitiveToConserved(c)

	// 8. Sources: buffer, point-mass, cooling (in that order).
	rc := m.Radius(i, j)
	state = BufferSource(params.Buffer, state, xc, yc, rc, params.DT)
	if len(params.Masses) > 0 {
		h := DiskHeight(c, params.Masses, xc, yc)
		state = PointMassSource(state, c, params.Masses, xc, yc, h, params.DT)
	}
	state = CoolingSource(state, params.CoolC, params.DT)

	// 9. Flux divergence.
	for k := 0; k < 4; k++ {
		state[k] -= params.DT * ((fR[k]-fL[k])/m.DX + (gU[k]-gD[k])/m.DY)
	}

	// 10. RK convex combination.
	rk := uRk.Get(i, j)
	a := params.A
	for k := 0; k < 4; k++ {
		state[k] = (1-a)*state[k] + a*rk[k]
	}

	// 11. Write back.
	out := ConservedToPrimitive(state, params.VCeil, params.RhoFloor, params.PFloor)
	pWr.Set(i, j, out[:])
}

func addHalf(p Primitive, g [4]float64) Primitive {
	var out Primitive
	for k := 0; k < 4; k++ {
		out[k] = p[k] + 0.5*g[k]
	}
	return out
}

func subHalf(p Primitive, g [4]float64) Primitive {
	var out Primitive
	for k := 0; k < 4; k++ {
		out[k] = p[k] - 0.5*g[k]
	}
	return out
}

func applyViscous(f *Conserved, dir int, rhoA, rhoB float64, sigA, sigB Strain, nuC float64, vel [2]float64) {
	fx, fy, fe := ViscousFaceCorrection(dir, rhoA, rhoB, sigA, sigB, nuC, vel)
	f[IMX] -= fx
	f[IMY] -= fy
	f[IE] -= fe
}

// upwindVelocity picks the cell-centered velocity of whichever adjoining
// cell (cellA on the low side, cellB on the high side) is upwind at a face,
// based on the sign of the mean face-normal velocity of the two
// reconstructed states.
// The source does not specify a separate convention for the viscous
// energy term beyond the neighbor-cs2 lookup of ambiguity 1, so this
// resolves it the conventional upwind way.
func upwindVelocity(minus, plus Primitive, dir int, cellA, cellB Primitive) [2]float64 {
	vn := 0.5 * (minus[IMX+dir] + plus[IMX+dir])
	if vn >= 0 {
		return [2]float64{cellA[IMX], cellA[IMY]}
	}
	return [2]float64{cellB[IMX], cellB[IMY]}
}
