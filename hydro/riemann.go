package hydro

import "math"

// HLLE computes the two-wave Harten-Lax-van Leer-Einfeldt approximate
// Riemann flux across a face in direction dir, given left/right
// reconstructed primitive states and a squared sound speed shared between
// them (§4.4).
//
// The caller supplies one cs2 for the face, evaluated at whichever
// neighbor cell the zone kernel's convention selects (see kernel.go) —
// this function does not itself decide which side's sound speed is used.
func HLLE(pl, pr Primitive, cs2 float64, dir int) Conserved {
	ul := PrimitiveToConserved(pl)
	ur := PrimitiveToConserved(pr)

	fl := PhysicalFlux(ul, pl, dir)
	fr := PhysicalFlux(ur, pr, dir)

	c := math.Sqrt(cs2)

	vnl := pl[IMX]
	vnr := pr[IMX]
	if dir == 1 {
		vnl = pl[IMY]
		vnr = pr[IMY]
	}

	aLMinus := vnl - c
	aLPlus := vnl + c
	aRMinus := vnr - c
	aRPlus := vnr + c

	am := math.Min(0, math.Min(aLMinus, aRMinus))
	ap := math.Max(0, math.Max(aLPlus, aRPlus))

	var f Conserved
	denom := ap - am
	for k := 0; k < 4; k++ {
		f[k] = (fl[k]*ap - fr[k]*am - (ul[k]-ur[k])*ap*am) / denom
	}
	return f
}
