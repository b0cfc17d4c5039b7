package mesh

import "testing"

func TestViewGetSetRoundTrip(t *testing.T) {
	v := NewView(-2, -2, 8, 8, NCONS)

	want := []float64{1, 2, 3, 4}
	v.Set(1, 2, want)

	got := v.Get(1, 2)
	for k := range want {
		if got[k] != want[k] {
			t.Errorf("field %d = %f, want %f", k, got[k], want[k])
		}
	}
}

func TestViewGetAliasesData(t *testing.T) {
	v := NewView(0, 0, 4, 4, NCONS)
	v.Set(0, 0, []float64{1, 1, 1, 1})

	slice := v.Get(0, 0)
	slice[0] = 99

	if got := v.Get(0, 0)[0]; got != 99 {
		t.Errorf("expected Get to alias Data, got %f after mutation", got)
	}
}

func TestViewDistinctCellsDontAlias(t *testing.T) {
	v := NewView(0, 0, 4, 4, NCONS)
	v.Set(0, 0, []float64{1, 2, 3, 4})
	v.Set(1, 0, []float64{5, 6, 7, 8})

	a := v.Get(0, 0)
	b := v.Get(1, 0)
	if a[0] == b[0] {
		t.Fatalf("expected distinct cells, both read %f", a[0])
	}
}

func TestInBounds(t *testing.T) {
	v := NewPrimitiveView(4, 4)
	cases := []struct {
		i, j int
		want bool
	}{
		{0, 0, true},
		{3, 3, true},
		{-2, -2, true},
		{-3, 0, false},
		{4, 0, true},
		{0, 6, false},
	}
	for _, c := range cases {
		if got := v.InBounds(c.i, c.j); got != c.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", c.i, c.j, got, c.want)
		}
	}
}

func TestNewPrimitiveViewShape(t *testing.T) {
	v := NewPrimitiveView(10, 6)
	if v.NI != 10+2*GuardWidth || v.NJ != 6+2*GuardWidth {
		t.Errorf("shape = (%d,%d), want (%d,%d)", v.NI, v.NJ, 10+2*GuardWidth, 6+2*GuardWidth)
	}
	if v.LoI != -GuardWidth || v.LoJ != -GuardWidth {
		t.Errorf("origin = (%d,%d), want (%d,%d)", v.LoI, v.LoJ, -GuardWidth, -GuardWidth)
	}
}

func TestNewConservedAndWavespeedViews(t *testing.T) {
	u := NewConservedView(5, 5)
	if u.NF != NCONS {
		t.Errorf("conserved view NF = %d, want %d", u.NF, NCONS)
	}
	a := NewWavespeedView(5, 5)
	if a.NF != 1 {
		t.Errorf("wavespeed view NF = %d, want 1", a.NF)
	}
}
