// Package pointmass models the array of gravitating point masses that
// source the gas via gravity and mass sinks (§3.4, §4.5).
package pointmass

// SinkModel tags which momentum/energy accounting a mass's sink term uses.
// A closed sum of small variants rather than an interface, kept cheap to
// copy and switch on in the hot per-zone path.
type SinkModel uint8

const (
	// AccelerationFree adds the sink's momentum/energy transfer at the
	// gas's own velocity.
	AccelerationFree SinkModel = iota
	// TorqueFree projects the gas velocity onto the radial direction in
	// the mass's frame before accounting (radial/torque-free accretion).
	TorqueFree
	// ForceFree drops the mass-flux momentum/energy term entirely; only
	// the gravitational force contributes.
	ForceFree
	// Inactive disables the sink: no density, momentum, or energy change.
	Inactive
)

// PointMass is an immutable-during-a-substage record: position, velocity,
// mass, sink rate, and sink-model tag (§3.4). Passed by value — the core
// receives an ordered slice of these; order does not affect physics but is
// fixed for determinism.
type PointMass struct {
	X, Y   float64
	VX, VY float64
	Mass   float64
	SinkRate float64
	Model  SinkModel
}
