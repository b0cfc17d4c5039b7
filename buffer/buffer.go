// Package buffer defines the record for the optional Keplerian buffer zone
// of §3.6/§4.8 and its onset test. The radial relaxation toward the
// reference Keplerian state is applied by hydro.BufferSource.
package buffer

// Kind tags which buffer variant is active.
type Kind uint8

const (
	// None disables the buffer entirely.
	None Kind = iota
	// Keplerian relaxes the gas toward a reference surface-density,
	// Keplerian-velocity, reference-pressure state outside r_outer-w_onset.
	Keplerian
)

// Buffer is a small by-value tagged-union record. The Keplerian fields are
// ignored when Kind is None.
type Buffer struct {
	Kind Kind

	Sigma    float64 // Σ, reference surface density
	PSurf    float64 // p_surf, reference surface pressure
	MCentral float64 // M_c, central mass used for the Keplerian reference velocity
	NuDrive  float64 // ν_drive, relaxation-rate multiplier
	ROuter   float64 // r_outer
	WOnset   float64 // w_onset
}

// None is the default zero value's Kind, so the zero Buffer is inactive.

// NewKeplerian returns an active Keplerian buffer record.
func NewKeplerian(sigma, pSurf, mCentral, nuDrive, rOuter, wOnset float64) Buffer {
	return Buffer{
		Kind:     Keplerian,
		Sigma:    sigma,
		PSurf:    pSurf,
		MCentral: mCentral,
		NuDrive:  nuDrive,
		ROuter:   rOuter,
		WOnset:   wOnset,
	}
}

// OnsetRadius returns r_onset = r_outer - w_onset.
func (b Buffer) OnsetRadius() float64 {
	return b.ROuter - b.WOnset
}

// Active reports whether the cell-center radius rc triggers the buffer.
func (b Buffer) Active(rc float64) bool {
	return b.Kind == Keplerian && rc > b.OnsetRadius()
}
