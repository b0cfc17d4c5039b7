package exec

import (
	"sync"
	"testing"
)

func TestDispatchVisitsEveryCellExactlyOnce(t *testing.T) {
	ni, nj := 17, 13 // deliberately not a multiple of GOMAXPROCS
	for _, mode := range []Mode{Serial, ThreadParallel, DeviceParallel} {
		var mu sync.Mutex
		seen := make(map[[2]int]int)

		Dispatch(mode, ni, nj, func(i, j int) {
			mu.Lock()
			seen[[2]int{i, j}]++
			mu.Unlock()
		})

		if got, want := len(seen), ni*nj; got != want {
			t.Errorf("mode %v: visited %d distinct cells, want %d", mode, got, want)
		}
		for cell, count := range seen {
			if count != 1 {
				t.Errorf("mode %v: cell %v visited %d times, want 1", mode, cell, count)
			}
		}
	}
}

func TestDispatchModesProduceEquivalentOutput(t *testing.T) {
	ni, nj := 9, 9
	results := make(map[Mode][]float64)

	for _, mode := range []Mode{Serial, ThreadParallel, DeviceParallel} {
		out := make([]float64, ni*nj)
		Dispatch(mode, ni, nj, func(i, j int) {
			out[j*ni+i] = float64(i*i + 3*j)
		})
		results[mode] = out
	}

	want := results[Serial]
	for _, mode := range []Mode{ThreadParallel, DeviceParallel} {
		got := results[mode]
		for k := range want {
			if got[k] != want[k] {
				t.Fatalf("mode %v diverges from Serial at index %d: got %f, want %f", mode, k, got[k], want[k])
			}
		}
	}
}

func TestDispatchEmptyPatch(t *testing.T) {
	for _, mode := range []Mode{Serial, ThreadParallel, DeviceParallel} {
		called := false
		Dispatch(mode, 0, 0, func(i, j int) { called = true })
		if called {
			t.Errorf("mode %v: expected no calls for an empty patch", mode)
		}
	}
}
