package contract

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"
)

// buildPlan produces a full binary-merge plan reducing n tensors to one
// in n-1 pairwise steps. Selection is greedy: each step picks the pair
// with the largest shared-dimension score relative to the pair's total
// size. Only shape shadows and label rows are consulted; no tensor data
// is touched.
//
// Each emitted pair (a, b) refers to the working list as it stands at
// that step: the merge result lands in slot a and slot b is removed, so
// later pairs use post-removal indexing.
func buildPlan(shapes, labels [][]int) [][2]int {
	shapes = cloneRows(shapes)
	labels = cloneRows(labels)

	var plan [][2]int
	for len(labels) > 1 {
		scores, rowSums := scoreMatrix(shapes, labels)
		a, b := selectPair(scores, rowSums)
		klog.V(2).Infof("plan step %d: merge tensors %d and %d (score %.4g)",
			len(plan), a, b, scores.At(a, b))
		plan = append(plan, [2]int{a, b})
		mergeShadow(&shapes, &labels, a, b)
	}
	return plan
}

// scoreMatrix computes the symmetric pair-score matrix: for each pair
// (i, j), the sum of the shared labels' axis sizes (taken from tensor
// i's side) divided by the product of the two tensors' element counts.
// The diagonal stays zero so self-pairing can never win.
//
// The row sums are taken only over rows holding at least one occurrence
// of the global maximum score, biasing selection toward a row touching
// the single best pairing; all other rows sum to zero.
func scoreMatrix(shapes, labels [][]int) (*mat.Dense, []float64) {
	n := len(labels)
	m := mat.NewDense(n, n, nil)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			shared := 0.0
			for pos, l := range labels[i] {
				if indexOf(labels[j], l) >= 0 {
					shared += float64(shapes[i][pos])
				}
			}
			r := shared / float64(product(shapes[i])*product(shapes[j]))
			m.Set(i, j, r)
			m.Set(j, i, r)
		}
	}

	maxVal := mat.Max(m)
	rowSums := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		hasMax := false
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			sum += v
			if v == maxVal {
				hasMax = true
			}
		}
		if hasMax {
			rowSums[i] = sum
		}
	}
	return m, rowSums
}

// selectPair picks the row with the largest row sum, then the column
// holding the largest score within that row. Ties break on the first
// occurrence in ascending scan order, which keeps plans reproducible.
func selectPair(scores *mat.Dense, rowSums []float64) (int, int) {
	a := 0
	for i := 1; i < len(rowSums); i++ {
		if rowSums[i] > rowSums[a] {
			a = i
		}
	}

	b := 0
	best := math.Inf(-1)
	for j := 0; j < len(rowSums); j++ {
		if v := scores.At(a, j); v > best {
			best = v
			b = j
		}
	}
	return a, b
}

// mergeShadow applies a pairwise merge to the shape shadows and label
// rows: axes whose label occurs more than once in the combined rows are
// dropped from both sides, the remainders are concatenated into slot a,
// and slot b is removed. The same count-based filter drives
// mergeLabelRows on the execution side, keeping planner and executor in
// lockstep.
func mergeShadow(shapes, labels *[][]int, a, b int) {
	la, lb := (*labels)[a], (*labels)[b]
	sa, sb := (*shapes)[a], (*shapes)[b]

	counts := make(map[int]int, len(la)+len(lb))
	for _, l := range la {
		counts[l]++
	}
	for _, l := range lb {
		counts[l]++
	}

	mergedLabels := make([]int, 0, len(la)+len(lb))
	mergedShapes := make([]int, 0, len(sa)+len(sb))
	for pos, l := range la {
		if counts[l] == 1 {
			mergedLabels = append(mergedLabels, l)
			mergedShapes = append(mergedShapes, sa[pos])
		}
	}
	for pos, l := range lb {
		if counts[l] == 1 {
			mergedLabels = append(mergedLabels, l)
			mergedShapes = append(mergedShapes, sb[pos])
		}
	}

	(*labels)[a] = mergedLabels
	(*shapes)[a] = mergedShapes
	*labels = append((*labels)[:b], (*labels)[b+1:]...)
	*shapes = append((*shapes)[:b], (*shapes)[b+1:]...)
}
