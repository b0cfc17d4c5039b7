// Package eos implements the equation-of-state tagged union of §3.5/§4.3:
// the map from a primitive state (and, for the locally-isothermal flavor,
// the multi-mass potential) to a squared sound speed.
package eos

import (
	"math"

	"github.com/pthm-cable/diskhydro/pointmass"
)

// Kind tags which EOS variant is active — a closed sum with small
// by-value payloads rather than an interface, since EOS is evaluated in
// the per-zone hot path.
type Kind uint8

const (
	// GammaLaw takes pressure from the primitive's fourth component.
	GammaLaw Kind = iota
	// Isothermal returns a fixed, stored cs² unchanged.
	Isothermal
	// LocallyIsothermal derives cs² from the softened multi-mass Newtonian
	// potential and a fixed Mach number.
	LocallyIsothermal
)

// Gamma is the fixed adiabatic index used throughout the Euler core (§3.3).
// A compile-time constant, not configuration.
const Gamma = 5.0 / 3.0

// EpsNum regularizes the squared radius used in potential/disk-height
// denominators (§4.6), distinct on purpose from the Plummer softening used
// in gravity (§4.5, §9 "Numeric softening").
const EpsNum = 1e-12

// EOS is a small, by-value tagged-union record. CS2 is the stored sound
// speed squared for Isothermal; Mach2 is the squared Mach number for
// LocallyIsothermal. Both are ignored for GammaLaw.
type EOS struct {
	Kind  Kind
	CS2   float64
	Mach2 float64
}

// NewGammaLaw returns a GammaLaw EOS record.
func NewGammaLaw() EOS { return EOS{Kind: GammaLaw} }

// NewIsothermal returns an Isothermal EOS record with the given fixed cs².
func NewIsothermal(cs2 float64) EOS { return EOS{Kind: Isothermal, CS2: cs2} }

// NewLocallyIsothermal returns a LocallyIsothermal EOS record with the
// given squared Mach number.
func NewLocallyIsothermal(mach2 float64) EOS { return EOS{Kind: LocallyIsothermal, Mach2: mach2} }

// SoundSpeedSquared computes cs² for primitive state p=(ρ, vx, vy, pressure)
// at cell center (x, y), given the ordered point-mass list (§4.3).
func (e EOS) SoundSpeedSquared(p [4]float64, masses []pointmass.PointMass, x, y float64) float64 {
	switch e.Kind {
	case Isothermal:
		return e.CS2
	case LocallyIsothermal:
		phi := Potential(masses, x, y)
		return -phi / e.Mach2
	default: // GammaLaw
		rho, pressure := p[0], p[3]
		return Gamma * pressure / rho
	}
}

// Potential returns the softened multi-mass Newtonian potential
// Φ(x,y) = -Σ m_k / sqrt(r_k² + ε_num) at point (x, y), used by the
// LocallyIsothermal EOS (§4.3) and by the disk-height computation (§4.6).
func Potential(masses []pointmass.PointMass, x, y float64) float64 {
	var phi float64
	for _, m := range masses {
		dx := x - m.X
		dy := y - m.Y
		r2 := dx*dx + dy*dy + EpsNum
		phi -= m.Mass / math.Sqrt(r2)
	}
	return phi
}
