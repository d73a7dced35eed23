package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLabels(t *testing.T) {
	tests := []struct {
		name    string
		labels  [][]int
		wantErr bool
	}{
		{
			name:   "valid mix of contraction and free labels",
			labels: [][]int{{1, 2, -1}, {1, -2}, {2, -3}},
		},
		{
			name:   "trace pair on a single tensor",
			labels: [][]int{{1, 1, -1}},
		},
		{
			name:    "positive label appears once",
			labels:  [][]int{{1, -1}, {-2}},
			wantErr: true,
		},
		{
			name:    "positive label appears three times",
			labels:  [][]int{{1, 1}, {1, -1}},
			wantErr: true,
		},
		{
			name:    "negative label appears twice",
			labels:  [][]int{{-1, 1}, {1, -1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLabels(tt.labels)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidLabelCount)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPadShadows(t *testing.T) {
	shapes := [][]int{{2, 3}, {3, 4}, {4, 2}}
	labels := [][]int{{-1, 1}, {1, 2}, {2, -2}}

	padShapes, padLabels := padShadows(shapes, labels)

	// Every tensor but the last gains one unit axis; the last gains one
	// per other tensor, with matching fresh labels above the max seen.
	assert.Equal(t, [][]int{{2, 3, 1}, {3, 4, 1}, {4, 2, 1, 1}}, padShapes)
	assert.Equal(t, [][]int{{-1, 1, 3}, {1, 2, 4}, {2, -2, 3, 4}}, padLabels)

	// Inputs are left untouched.
	assert.Equal(t, [][]int{{2, 3}, {3, 4}, {4, 2}}, shapes)
	assert.Equal(t, [][]int{{-1, 1}, {1, 2}, {2, -2}}, labels)
}

func TestPadShadowsSingleTensor(t *testing.T) {
	padShapes, padLabels := padShadows([][]int{{2, 2}}, [][]int{{1, 1}})
	assert.Equal(t, [][]int{{2, 2}}, padShapes)
	assert.Equal(t, [][]int{{1, 1}}, padLabels)
}

func TestMergeLabelRows(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{
			name: "shared label dropped",
			a:    []int{-1, 1, 2},
			b:    []int{2, -2},
			want: []int{-1, 1, -2},
		},
		{
			name: "multiple shared labels dropped",
			a:    []int{1, 3, -1},
			b:    []int{3, 1, -2},
			want: []int{-1, -2},
		},
		{
			name: "in-row duplicate dropped as well",
			a:    []int{1, 1, -1},
			b:    []int{-2},
			want: []int{-1, -2},
		},
		{
			name: "disjoint rows concatenate",
			a:    []int{-1},
			b:    []int{-2},
			want: []int{-1, -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeLabelRows(tt.a, tt.b))
		})
	}
}

func TestAxisPairs(t *testing.T) {
	// Labels 1 and 2 are shared; pairs list a's positions first, then
	// b's matched positions.
	a := []int{-1, 1, 2}
	b := []int{2, 1, -2}
	assert.Equal(t, []int{1, 2, 1, 0}, axisPairs(a, b))

	assert.Empty(t, axisPairs([]int{-1}, []int{-2}))
}

func TestFindRepeated(t *testing.T) {
	pos1, pos2, found := findRepeated([]int{-1, 1, -2, 1})
	require.True(t, found)
	assert.Equal(t, 1, pos1)
	assert.Equal(t, 3, pos2)

	_, _, found = findRepeated([]int{-1, 1, 2})
	assert.False(t, found)
}
