package tensor

import "testing"

func mustFromSlice(t *testing.T, data []float64, shape Shape) *Dense {
	t.Helper()
	d, err := FromSlice(data, shape)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	return d
}

func sliceEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFromSlice(t *testing.T) {
	d := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	if !d.Shape().Equal(Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", d.Shape())
	}
	if got := d.At(1, 2); got != 6 {
		t.Errorf("At(1,2) = %v, want 6", got)
	}

	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2}); err == nil {
		t.Error("element count mismatch accepted")
	}
}

func TestFromSliceScalar(t *testing.T) {
	d := mustFromSlice(t, []float64{7}, Shape{})
	if d.NumElements() != 1 {
		t.Errorf("scalar NumElements = %d, want 1", d.NumElements())
	}
	if got := d.At(); got != 7 {
		t.Errorf("At() = %v, want 7", got)
	}
}

func TestAtSet(t *testing.T) {
	d := Zeros(Shape{2, 3})
	d.Set(5, 1, 1)
	if got := d.At(1, 1); got != 5 {
		t.Errorf("At(1,1) = %v, want 5", got)
	}

	// Row-major layout: element (1, 1) sits at flat offset 4.
	if d.Data()[4] != 5 {
		t.Errorf("flat data = %v, want element 4 set", d.Data())
	}
}

func TestAtPanics(t *testing.T) {
	d := Zeros(Shape{2, 3})

	t.Run("wrong index count", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		d.At(1)
	})

	t.Run("out of bounds", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		d.At(0, 3)
	})
}

func TestClone(t *testing.T) {
	d := mustFromSlice(t, []float64{1, 2, 3, 4}, Shape{2, 2})
	c := d.Clone()
	c.Set(99, 0, 0)
	if d.At(0, 0) != 1 {
		t.Error("Clone shares data with original")
	}
	if !d.Equal(d.Clone()) {
		t.Error("Clone not Equal to original")
	}
}

func TestReshape(t *testing.T) {
	d := Arange(0, 12)

	m, err := d.Reshape(Shape{3, 4})
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	if !m.Shape().Equal(Shape{3, 4}) {
		t.Errorf("shape = %v, want [3 4]", m.Shape())
	}
	if got := m.At(2, 1); got != 9 {
		t.Errorf("At(2,1) = %v, want 9", got)
	}

	if _, err := d.Reshape(Shape{5, 3}); err == nil {
		t.Error("element count mismatch accepted")
	}

	// Reshape copies: writing the view must not touch the original.
	m.Set(99, 0, 0)
	if d.At(0) != 0 {
		t.Error("Reshape shares data with original")
	}
}

func TestTranspose2D(t *testing.T) {
	d := mustFromSlice(t, []float64{0, 1, 2, 3, 4, 5}, Shape{2, 3})

	// Default permutation reverses all axes.
	tr := d.Transpose()
	if !tr.Shape().Equal(Shape{3, 2}) {
		t.Fatalf("shape = %v, want [3 2]", tr.Shape())
	}
	want := []float64{0, 3, 1, 4, 2, 5}
	if !sliceEqual(tr.Data(), want) {
		t.Errorf("data = %v, want %v", tr.Data(), want)
	}
}

func TestTranspose3D(t *testing.T) {
	d, err := Arange(0, 24).Reshape(Shape{2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}

	tr := d.Transpose(2, 0, 1)
	if !tr.Shape().Equal(Shape{4, 2, 3}) {
		t.Fatalf("shape = %v, want [4 2 3]", tr.Shape())
	}
	// out[i, j, k] = in[j, k, i]
	if got := tr.At(1, 1, 2); got != d.At(1, 2, 1) {
		t.Errorf("At(1,1,2) = %v, want %v", got, d.At(1, 2, 1))
	}

	// A permutation followed by its inverse restores the original.
	back := tr.Transpose(1, 2, 0)
	if !back.Equal(d) {
		t.Error("inverse permutation does not restore original")
	}
}

func TestTransposePanics(t *testing.T) {
	d := Zeros(Shape{2, 3})

	cases := []struct {
		name string
		axes []int
	}{
		{"wrong length", []int{0}},
		{"out of range", []int{0, 2}},
		{"duplicate axis", []int{1, 1}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			d.Transpose(tt.axes...)
		})
	}
}
