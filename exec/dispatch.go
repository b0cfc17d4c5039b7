package exec

import (
	"runtime"
	"sync"
)

// ZoneFunc is a per-cell kernel call: pure with respect to the index
// space, writing only into its own cell's slot of whatever output view it
// closes over (§5 "writes never alias").
type ZoneFunc func(i, j int)

// Dispatch runs fn(i, j) for every (i, j) in [0, ni) x [0, nj) under the
// given mode. No ordering between cells is required or implied; the sole
// inter-cell data dependency is double buffering between read and write
// views, which the caller is responsible for (§5).
func Dispatch(mode Mode, ni, nj int, fn ZoneFunc) {
	switch mode {
	case ThreadParallel:
		dispatchThreadParallel(ni, nj, fn)
	case DeviceParallel:
		dispatchDeviceParallel(ni, nj, fn)
	default:
		dispatchSerial(ni, nj, fn)
	}
}

// dispatchSerial walks the interior row-major: j outer, i inner, matching
// the flat row-major field layout of mesh.View.
func dispatchSerial(ni, nj int, fn ZoneFunc) {
	for j := 0; j < nj; j++ {
		for i := 0; i < ni; i++ {
			fn(i, j)
		}
	}
}

// dispatchThreadParallel partitions rows across worker goroutines, each
// processing an independent contiguous chunk — the same chunked
// fan-out/wg.Wait() shape as game.updateBehaviorAndPhysicsParallel.
func dispatchThreadParallel(ni, nj int, fn ZoneFunc) {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > nj {
		numWorkers = nj
	}
	if numWorkers <= 1 {
		dispatchSerial(ni, nj, fn)
		return
	}

	rowsPerWorker := (nj + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		startJ := w * rowsPerWorker
		endJ := startJ + rowsPerWorker
		if endJ > nj {
			endJ = nj
		}
		if startJ >= endJ {
			continue
		}

		wg.Add(1)
		go func(j0, j1 int) {
			defer wg.Done()
			for j := j0; j < j1; j++ {
				for i := 0; i < ni; i++ {
					fn(i, j)
				}
			}
		}(startJ, endJ)
	}
	wg.Wait()
}

// dispatchDeviceParallel emulates a 2-D grid-stride accelerator launch:
// every interior cell is its own independent "thread" with an in-kernel
// bounds check, covering the interior with a fixed number of CPU workers
// acting as stand-ins for launch-grid blocks. Observable output is
// identical to Serial/ThreadParallel since the zone kernel is a pure
// function of (i, j) (§8 "Execution-mode equivalence").
func dispatchDeviceParallel(ni, nj int, fn ZoneFunc) {
	total := ni * nj
	if total == 0 {
		return
	}
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > total {
		numWorkers = total
	}
	if numWorkers <= 1 {
		dispatchSerial(ni, nj, fn)
		return
	}

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(lane int) {
			defer wg.Done()
			for idx := lane; idx < total; idx += numWorkers {
				i := idx % ni
				j := idx / ni
				if i < ni && j < nj { // in-kernel bounds check
					fn(i, j)
				}
			}
		}(w)
	}
	wg.Wait()
}
