package hydro

import "math"

// Theta is the generalized-minmod steepness parameter for the PLM slope
// limiter (§4.1). A compile-time constant, not configuration.
const Theta = 1.5

// PLMGradient computes the generalized-minmod slope for one scalar field
// given its left, central, and right neighbor values (§4.1):
//
//	a = θ(y0-yL), b = (yR-yL)/2, c = θ(yR-y0)
//	g = ¼|sgn(a)+sgn(b)|(sgn(a)+sgn(c))·min(|a|,|b|,|c|)
//
// The leading factor zeroes g whenever a and b disagree in sign (extremum
// detection); sgn(0) is defined as +1 (math.Copysign(1, x) convention), so
// ties never introduce a spurious zero.
func PLMGradient(yL, y0, yR float64) float64 {
	a := Theta * (y0 - yL)
	b := 0.5 * (yR - yL)
	c := Theta * (yR - y0)

	sgnA := math.Copysign(1, a)
	sgnB := math.Copysign(1, b)
	sgnC := math.Copysign(1, c)

	minAbs := math.Abs(a)
	if v := math.Abs(b); v < minAbs {
		minAbs = v
	}
	if v := math.Abs(c); v < minAbs {
		minAbs = v
	}

	return 0.25 * math.Abs(sgnA+sgnB) * (sgnA + sgnC) * minAbs
}

// FieldGradient applies PLMGradient independently to every field of a
// 4-tuple (conserved or primitive).
func FieldGradient(yL, y0, yR [4]float64) [4]float64 {
	var g [4]float64
	for k := 0; k < 4; k++ {
		g[k] = PLMGradient(yL[k], y0[k], yR[k])
	}
	return g
}
