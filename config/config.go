// Package config provides configuration loading and access for the disk
// hydrodynamics core, mirroring the embedded-YAML-defaults-plus-overlay
// pattern of the simulation's own config package.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/diskhydro/buffer"
	"github.com/pthm-cable/diskhydro/eos"
	"github.com/pthm-cable/diskhydro/exec"
	"github.com/pthm-cable/diskhydro/hydro"
	"github.com/pthm-cable/diskhydro/pointmass"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the driver-facing knobs of a run: mesh shape, the active
// EOS/buffer/point-mass setup, and the floors/ceilings that bound the
// per-zone kernel. The compile-time physics constants (Theta, Gamma,
// EpsNum, GuardWidth) are not configuration — they stay as Go consts in
// their owning packages.
type Config struct {
	Mesh      MeshConfig      `yaml:"mesh"`
	EOS       EOSConfig       `yaml:"eos"`
	Buffer    BufferConfig    `yaml:"buffer"`
	Masses    []MassConfig    `yaml:"masses"`
	Viscosity ViscosityConfig `yaml:"viscosity"`
	Cooling   CoolingConfig   `yaml:"cooling"`
	Limits    LimitsConfig    `yaml:"limits"`
	RK        RKConfig        `yaml:"rk"`
	Exec      string          `yaml:"exec"`
	Bench     BenchConfig     `yaml:"bench"`
}

// BenchConfig holds the fixed, externally-supplied timestep an example
// program repeatedly feeds into the zone kernel for timing purposes. It is
// a constant the caller picks, not a CFL-derived value — timestep
// selection itself is an external driver's job (§1).
type BenchConfig struct {
	DT         float64 `yaml:"dt"`
	Iterations int     `yaml:"iterations"`
}

// MeshConfig holds the uniform-patch geometry.
type MeshConfig struct {
	NI int     `yaml:"ni"`
	NJ int     `yaml:"nj"`
	X0 float64 `yaml:"x0"`
	Y0 float64 `yaml:"y0"`
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
}

// EOSConfig selects and parameterizes one of the three EOS flavors.
type EOSConfig struct {
	Kind  string  `yaml:"kind"` // "gamma_law", "isothermal", "locally_isothermal"
	CS2   float64 `yaml:"cs2"`
	Mach2 float64 `yaml:"mach2"`
}

// BufferConfig selects and parameterizes the optional Keplerian buffer.
type BufferConfig struct {
	Kind     string  `yaml:"kind"` // "none", "keplerian"
	Sigma    float64 `yaml:"sigma"`
	PSurf    float64 `yaml:"p_surf"`
	MCentral float64 `yaml:"m_central"`
	NuDrive  float64 `yaml:"nu_drive"`
	ROuter   float64 `yaml:"r_outer"`
	WOnset   float64 `yaml:"w_onset"`
}

// MassConfig is one entry of the ordered point-mass list.
type MassConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	VX       float64 `yaml:"vx"`
	VY       float64 `yaml:"vy"`
	Mass     float64 `yaml:"mass"`
	SinkRate float64 `yaml:"sink_rate"`
	Model    string  `yaml:"model"` // "acceleration_free", "torque_free", "force_free", "inactive"
}

// ViscosityConfig holds the α-viscosity coefficient; zero disables the
// whole viscous branch of the zone kernel.
type ViscosityConfig struct {
	Alpha float64 `yaml:"alpha"`
}

// CoolingConfig holds the β-cooling closed-form coefficient; zero disables
// cooling.
type CoolingConfig struct {
	CoolC float64 `yaml:"cool_c"`
}

// LimitsConfig holds the positivity floors and velocity ceiling applied on
// every conserved-to-primitive conversion.
type LimitsConfig struct {
	RhoFloor float64 `yaml:"rho_floor"`
	PFloor   float64 `yaml:"p_floor"`
	VCeil    float64 `yaml:"v_ceil"`
}

// RKConfig holds the convex-combination weights of a multi-stage
// Runge-Kutta scheme, one entry per sub-stage. Driving a multi-stage
// timestep loop across these weights (and choosing dt via a CFL
// condition) is the external driver's job, out of scope here (§1); this
// config only supplies the per-call convex-combination weight the core's
// Params.A expects for a single AdvanceRK invocation.
type RKConfig struct {
	Weights []float64 `yaml:"weights"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// BuildEOS translates the EOS section into an eos.EOS record.
func (c *Config) BuildEOS() (eos.EOS, error) {
	switch c.EOS.Kind {
	case "", "gamma_law":
		return eos.NewGammaLaw(), nil
	case "isothermal":
		return eos.NewIsothermal(c.EOS.CS2), nil
	case "locally_isothermal":
		return eos.NewLocallyIsothermal(c.EOS.Mach2), nil
	default:
		return eos.EOS{}, fmt.Errorf("config: unknown eos.kind %q", c.EOS.Kind)
	}
}

// BuildBuffer translates the Buffer section into a buffer.Buffer.
func (c *Config) BuildBuffer() (buffer.Buffer, error) {
	switch c.Buffer.Kind {
	case "", "none":
		return buffer.Buffer{}, nil
	case "keplerian":
		b := c.Buffer
		return buffer.NewKeplerian(b.Sigma, b.PSurf, b.MCentral, b.NuDrive, b.ROuter, b.WOnset), nil
	default:
		return buffer.Buffer{}, fmt.Errorf("config: unknown buffer.kind %q", c.Buffer.Kind)
	}
}

// BuildMasses translates the Masses section into an ordered point-mass
// slice, in file order.
func (c *Config) BuildMasses() ([]pointmass.PointMass, error) {
	out := make([]pointmass.PointMass, 0, len(c.Masses))
	for _, m := range c.Masses {
		model, err := parseSinkModel(m.Model)
		if err != nil {
			return nil, err
		}
		out = append(out, pointmass.PointMass{
			X: m.X, Y: m.Y,
			VX: m.VX, VY: m.VY,
			Mass:     m.Mass,
			SinkRate: m.SinkRate,
			Model:    model,
		})
	}
	return out, nil
}

func parseSinkModel(s string) (pointmass.SinkModel, error) {
	switch s {
	case "", "acceleration_free":
		return pointmass.AccelerationFree, nil
	case "torque_free":
		return pointmass.TorqueFree, nil
	case "force_free":
		return pointmass.ForceFree, nil
	case "inactive":
		return pointmass.Inactive, nil
	default:
		return 0, fmt.Errorf("config: unknown masses[].model %q", s)
	}
}

// BuildExecMode translates the Exec string into an exec.Mode.
func (c *Config) BuildExecMode() (exec.Mode, error) {
	switch c.Exec {
	case "", "serial":
		return exec.Serial, nil
	case "thread_parallel":
		return exec.ThreadParallel, nil
	case "device_parallel":
		return exec.DeviceParallel, nil
	default:
		return 0, fmt.Errorf("config: unknown exec mode %q", c.Exec)
	}
}

// StageParams builds the per-sub-stage hydro.Params for RK sub-stage idx,
// given dt and the point-mass/EOS/buffer records built once per run.
func (c *Config) StageParams(e eos.EOS, b buffer.Buffer, masses []pointmass.PointMass, dt float64, idx int) hydro.Params {
	a := 0.0
	if idx < len(c.RK.Weights) {
		a = c.RK.Weights[idx]
	}
	return hydro.Params{
		EOS:      e,
		Buffer:   b,
		Masses:   masses,
		Alpha:    c.Viscosity.Alpha,
		A:        a,
		DT:       dt,
		VCeil:    c.Limits.VCeil,
		CoolC:    c.Cooling.CoolC,
		RhoFloor: c.Limits.RhoFloor,
		PFloor:   c.Limits.PFloor,
	}
}
