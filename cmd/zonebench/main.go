// Command zonebench repeatedly invokes the zone kernel over a uniform test
// patch at a fixed, externally-supplied timestep and reports timing and
// field statistics. It exercises the three dispatched hydro entry points
// under a chosen execution mode; choosing dt from a CFL condition and
// driving a multi-stage timestep loop is the job of a real simulation
// driver, out of scope here (§1) — this is a microbenchmark, not a solver.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/diskhydro/config"
	"github.com/pthm-cable/diskhydro/hydro"
	"github.com/pthm-cable/diskhydro/hydroharness"
	"github.com/pthm-cable/diskhydro/mesh"
)

func main() {
	configPath := flag.String("config", "", "Config YAML file (empty = use embedded defaults)")
	iterations := flag.Int("iterations", 0, "Number of kernel invocations (0 = use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	n := *iterations
	if n <= 0 {
		n = cfg.Bench.Iterations
	}

	m := mesh.Mesh{
		NI: cfg.Mesh.NI, NJ: cfg.Mesh.NJ,
		X0: cfg.Mesh.X0, Y0: cfg.Mesh.Y0,
		DX: cfg.Mesh.DX, DY: cfg.Mesh.DY,
	}

	e, err := cfg.BuildEOS()
	if err != nil {
		log.Fatalf("failed to build eos: %v", err)
	}
	buf, err := cfg.BuildBuffer()
	if err != nil {
		log.Fatalf("failed to build buffer: %v", err)
	}
	masses, err := cfg.BuildMasses()
	if err != nil {
		log.Fatalf("failed to build masses: %v", err)
	}
	mode, err := cfg.BuildExecMode()
	if err != nil {
		log.Fatalf("failed to build exec mode: %v", err)
	}

	pRd := mesh.NewPrimitiveView(m.NI, m.NJ)
	pWr := mesh.NewPrimitiveView(m.NI, m.NJ)
	uRk := mesh.NewConservedView(m.NI, m.NJ)
	aOut := mesh.NewWavespeedView(m.NI, m.NJ)

	seedUniform(pRd, 1.0, 0.0, 0.0, 1.0)
	hydro.PrimitiveToConservedOverPatch(m, pRd, uRk, mode)

	hydroharness.Logf("zonebench: %dx%d patch, %d iterations, mode=%v, eos=%v, masses=%d, buffer=%v",
		m.NI, m.NJ, n, mode, e.Kind, len(masses), buf.Kind)

	params := cfg.StageParams(e, buf, masses, cfg.Bench.DT, 0)

	// uRk is held fixed across iterations; this repeatedly re-applies one
	// sub-stage update for timing, not a physically evolving run.
	start := time.Now()
	for i := 0; i < n; i++ {
		hydro.AdvanceRK(m, uRk, pRd, pWr, params, mode)
		hydro.Wavespeed(m, pWr, aOut, e, masses, mode)
		pRd, pWr = pWr, pRd
	}
	elapsed := time.Since(start)

	rho := collectField(pRd, hydro.IRho)
	mean, variance := stat.MeanVariance(rho, nil)

	hydroharness.Logf("done in %s (%.3f ms/iteration)", elapsed.Round(time.Microsecond),
		float64(elapsed.Microseconds())/1000.0/float64(n))
	fmt.Printf("density: mean=%.6f stddev=%.6f\n", mean, math.Sqrt(variance))
}

func seedUniform(p mesh.View, rho, vx, vy, pr float64) {
	for j := 0; j < p.NJ; j++ {
		for i := 0; i < p.NI; i++ {
			p.Set(p.LoI+i, p.LoJ+j, []float64{rho, vx, vy, pr})
		}
	}
}

func collectField(p mesh.View, field int) []float64 {
	out := make([]float64, 0, p.NI*p.NJ)
	for j := 0; j < p.NJ; j++ {
		for i := 0; i < p.NI; i++ {
			out = append(out, p.Get(p.LoI+i, p.LoJ+j)[field])
		}
	}
	return out
}
