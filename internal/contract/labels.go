package contract

import (
	"github.com/pkg/errors"
)

// validateLabels checks the global occurrence counts of every label
// across all label rows: a positive (contraction) label must appear
// exactly twice, a negative (free) label at most once. Runs before any
// tensor data is touched.
func validateLabels(labels [][]int) error {
	counts := make(map[int]int)
	for _, row := range labels {
		for _, l := range row {
			counts[l]++
		}
	}
	for label, count := range counts {
		if label > 0 && count != 2 {
			return errors.Wrapf(ErrInvalidLabelCount,
				"label %d appears %d time(s), want exactly 2", label, count)
		}
		if label < 0 && count > 1 {
			return errors.Wrapf(ErrInvalidLabelCount,
				"label %d appears %d times, want at most 1", label, count)
		}
	}
	return nil
}

// padShadows appends one synthetic size-1 axis to every tensor except
// the last, and one matching axis per other tensor to the last, so that
// every tensor shares at least a trivial axis with the last one. This
// keeps the planner's score matrix free of all-zero rows. Synthetic
// labels start above the maximum label seen, so they cannot collide
// with real labels. Inputs are not modified.
func padShadows(shapes, labels [][]int) (padShapes, padLabels [][]int) {
	n := len(labels)
	maxLabel := 0
	for _, row := range labels {
		for _, l := range row {
			if l > maxLabel {
				maxLabel = l
			}
		}
	}

	padShapes = make([][]int, n)
	padLabels = make([][]int, n)
	var synthetic []int
	for i := 0; i < n-1; i++ {
		syn := maxLabel + i + 1
		padShapes[i] = append(cloneRow(shapes[i]), 1)
		padLabels[i] = append(cloneRow(labels[i]), syn)
		synthetic = append(synthetic, syn)
	}

	last := n - 1
	padShapes[last] = cloneRow(shapes[last])
	padLabels[last] = cloneRow(labels[last])
	for range synthetic {
		padShapes[last] = append(padShapes[last], 1)
	}
	padLabels[last] = append(padLabels[last], synthetic...)
	return padShapes, padLabels
}

// mergeLabelRows concatenates two label rows and drops every label that
// occurs more than once in the combined row: those are exactly the
// labels consumed by the merge. Relative order of the survivors is
// preserved (row a first, then row b).
func mergeLabelRows(a, b []int) []int {
	counts := make(map[int]int, len(a)+len(b))
	for _, l := range a {
		counts[l]++
	}
	for _, l := range b {
		counts[l]++
	}

	merged := make([]int, 0, len(a)+len(b))
	for _, l := range a {
		if counts[l] == 1 {
			merged = append(merged, l)
		}
	}
	for _, l := range b {
		if counts[l] == 1 {
			merged = append(merged, l)
		}
	}
	return merged
}

// axisPairs maps the labels common to two label rows to their axis
// positions, in the flat layout TensorDot expects: positions in row a
// first, matched positions in row b second.
func axisPairs(a, b []int) []int {
	var axesA, axesB []int
	for pa, l := range a {
		if pb := indexOf(b, l); pb >= 0 {
			axesA = append(axesA, pa)
			axesB = append(axesB, pb)
		}
	}
	return append(axesA, axesB...)
}

// findRepeated returns the first label occupying two axis positions of
// the same row, scanning ascending.
func findRepeated(row []int) (pos1, pos2 int, found bool) {
	for i, l := range row {
		for j := i + 1; j < len(row); j++ {
			if row[j] == l {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func indexOf(row []int, label int) int {
	for i, l := range row {
		if l == label {
			return i
		}
	}
	return -1
}

func cloneRow(row []int) []int {
	return append([]int(nil), row...)
}

func cloneRows(rows [][]int) [][]int {
	out := make([][]int, len(rows))
	for i, row := range rows {
		out[i] = cloneRow(row)
	}
	return out
}

func product(row []int) int {
	p := 1
	for _, v := range row {
		p *= v
	}
	return p
}
