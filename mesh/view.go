package mesh

// NCONS is the number of conserved/primitive fields carried per cell for
// the 2-D Euler system: density, x-momentum (or x-velocity), y-momentum
// (or y-velocity), energy (or pressure). Fixed throughout.
const NCONS = 4

// View is a value-typed, strided window over a backing buffer, a pure
// get/index operation over flat cell storage. It never allocates and
// never mutates its own fields; all state lives in the caller-owned Data
// slice.
//
// Index space: a cell at logical indices (i, j), where i ranges over
// [LoI, LoI+NI) and j over [LoJ, LoJ+NJ), maps to a flat offset into Data
// via StrideI and StrideJ, then NF contiguous scalars starting there.
type View struct {
	Data   []float64
	LoI    int // lower corner, axis I (may be negative, e.g. -GuardWidth)
	LoJ    int // lower corner, axis J
	NI, NJ int // cell counts per axis
	NF     int // fields per cell

	// StrideI/StrideJ are measured in scalars (not cells), so a single
	// NF-wide cell's data always occupies [off, off+NF).
	StrideI int
	StrideJ int
}

// NewView allocates a dense row-major view: fields fastest, then I, then J,
// the same row-major `y*W+x` grid layout used throughout the engine,
// generalized to a guarded index origin and a field count >1.
func NewView(loI, loJ, ni, nj, nf int) View {
	strideI := nf
	strideJ := ni * nf
	return View{
		Data:    make([]float64, ni*nj*nf),
		LoI:     loI,
		LoJ:     loJ,
		NI:      ni,
		NJ:      nj,
		NF:      nf,
		StrideI: strideI,
		StrideJ: strideJ,
	}
}

// offset returns the flat index of the first field of cell (i, j).
func (v View) offset(i, j int) int {
	return (i-v.LoI)*v.StrideI + (j-v.LoJ)*v.StrideJ
}

// Get returns the NF-wide slice of fields at cell (i, j). The returned
// slice aliases Data; mutating it mutates the view.
func (v View) Get(i, j int) []float64 {
	off := v.offset(i, j)
	return v.Data[off : off+v.NF]
}

// Set copies vals into cell (i, j).
func (v View) Set(i, j int, vals []float64) {
	copy(v.Get(i, j), vals)
}

// InBounds reports whether (i, j) lies within the view's index range.
func (v View) InBounds(i, j int) bool {
	return i >= v.LoI && i < v.LoI+v.NI && j >= v.LoJ && j < v.LoJ+v.NJ
}

// NewPrimitiveView allocates a guarded (ni+2*GuardWidth, nj+2*GuardWidth, 4)
// view for primitive state, indexed from -GuardWidth so interior cell (0,0)
// sits GuardWidth cells in from the lower corner (§3.1, §6).
func NewPrimitiveView(ni, nj int) View {
	return NewView(-GuardWidth, -GuardWidth, ni+2*GuardWidth, nj+2*GuardWidth, NCONS)
}

// NewConservedView allocates a guardless (ni, nj, 4) view for conserved
// state, used by the PrimitiveToConservedOverPatch and AdvanceRK entry
// points (§6).
func NewConservedView(ni, nj int) View {
	return NewView(0, 0, ni, nj, NCONS)
}

// NewWavespeedView allocates a guardless (ni, nj, 1) view, the shape of
// entry point 3's output (§6).
func NewWavespeedView(ni, nj int) View {
	return NewView(0, 0, ni, nj, 1)
}
