// Package contract implements generalized tensor contraction: label
// validation, greedy pairwise planning, and plan execution built from
// two primitives, pairwise tensor dot and tensor trace.
//
// Axes are tagged with integer labels. A positive label names a
// contraction: it must appear on exactly two axes across the whole
// tensor list (on two tensors, or twice on one tensor, which is a
// trace). A negative label names a free axis that survives into the
// output; the output axes are ordered by descending label value.
package contract

import (
	"sort"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/tennet-ml/tennet/internal/tensor"
)

// Engine drives contractions through a compute backend.
type Engine struct {
	backend tensor.Backend
}

// NewEngine creates an Engine bound to the given backend.
func NewEngine(backend tensor.Backend) *Engine {
	return &Engine{backend: backend}
}

// workSlot holds one working tensor and its label row under a stable
// identifier. The executor addresses slots through identifiers so that
// retiring a merged slot never shifts another slot's state; only the
// identifier list shrinks, mirroring the plan's positional indexing.
type workSlot struct {
	t     *tensor.Dense
	order []int
}

// Contract reduces the tensor list to a single tensor according to the
// label rows. It validates labels, pads every tensor with trailing unit
// axes so the planner never sees a degenerate scoring row, builds a
// greedy pairwise plan, executes it (tracing away any label pair that
// lands on one tensor mid-plan), and permutes the final tensor's axes
// into descending label order.
//
// The input tensors are not modified; each step consumes two working
// tensors and produces one.
func (e *Engine) Contract(tensors []*tensor.Dense, labels [][]int) (*tensor.Dense, error) {
	if err := checkArgs(tensors, labels); err != nil {
		return nil, err
	}
	if err := validateLabels(labels); err != nil {
		return nil, err
	}

	padShapes, padLabels := padShadows(shapeRows(tensors), labels)

	slots := make(map[int]*workSlot, len(tensors))
	alive := make([]int, len(tensors))
	for i, t := range tensors {
		slots[i] = &workSlot{
			t:     e.backend.Reshape(t, tensor.Shape(padShapes[i])),
			order: padLabels[i],
		}
		alive[i] = i
	}

	plan := buildPlan(padShapes, padLabels)
	klog.V(1).Infof("contracting %d tensors in %d pairwise steps", len(tensors), len(plan))

	// Plan pairs are positions into the shrinking identifier list; the
	// slots themselves never move.
	for _, step := range plan {
		sa, sb := slots[alive[step[0]]], slots[alive[step[1]]]

		// Labels that became self-paired through earlier merges are
		// traced away before the cross-tensor dot.
		for _, s := range [2]*workSlot{sa, sb} {
			if err := e.traceRepeated(s); err != nil {
				return nil, err
			}
		}

		res, err := e.TensorDot(sa.t, sb.t, axisPairs(sa.order, sb.order))
		if err != nil {
			return nil, err
		}

		sa.t = res
		sa.order = mergeLabelRows(sa.order, sb.order)
		delete(slots, alive[step[1]])
		alive = append(alive[:step[1]], alive[step[1]+1:]...)
	}

	final := slots[alive[0]]

	// A single input tensor can carry its own trace pair; with no merge
	// steps it reaches this point untraced.
	if err := e.traceRepeated(final); err != nil {
		return nil, err
	}
	return e.finalOrder(final.t, final.order), nil
}

// ContractionPlan exposes the planner's output for the given inputs
// without executing any arithmetic. Validation and unit-axis padding
// are replicated exactly as Contract applies them, so the plan is
// representative of a real run.
func (e *Engine) ContractionPlan(tensors []*tensor.Dense, labels [][]int) ([][2]int, error) {
	if err := checkArgs(tensors, labels); err != nil {
		return nil, err
	}
	if err := validateLabels(labels); err != nil {
		return nil, err
	}
	padShapes, padLabels := padShadows(shapeRows(tensors), labels)
	return buildPlan(padShapes, padLabels), nil
}

// traceRepeated sums away every label occupying two axes of the slot's
// tensor, shrinking the tensor and its label row in lockstep. Positions
// are recomputed after each trace since the surviving axes shift.
func (e *Engine) traceRepeated(s *workSlot) error {
	for {
		pos1, pos2, found := findRepeated(s.order)
		if !found {
			return nil
		}
		traced, err := e.Trace(s.t, []int{pos1, pos2})
		if err != nil {
			return err
		}
		s.t = traced

		next := make([]int, 0, len(s.order)-2)
		for k, l := range s.order {
			if k != pos1 && k != pos2 {
				next = append(next, l)
			}
		}
		s.order = next
	}
}

// finalOrder permutes the tensor's axes so its surviving labels run in
// descending numeric order, fixing a canonical output layout that does
// not depend on the contraction path.
func (e *Engine) finalOrder(t *tensor.Dense, order []int) *tensor.Dense {
	if len(order) == 0 {
		return t
	}
	sorted := cloneRow(order)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	perm := make([]int, len(sorted))
	for k, l := range sorted {
		perm[k] = indexOf(order, l)
	}
	return e.backend.Transpose(t, perm...)
}

func checkArgs(tensors []*tensor.Dense, labels [][]int) error {
	if len(tensors) == 0 {
		return errors.New("contract: need at least one tensor")
	}
	if len(tensors) != len(labels) {
		return errors.Errorf("contract: %d tensors but %d label rows", len(tensors), len(labels))
	}
	for i, t := range tensors {
		if len(labels[i]) != len(t.Shape()) {
			return errors.Errorf("contract: tensor %d has rank %d but %d labels",
				i, len(t.Shape()), len(labels[i]))
		}
	}
	return nil
}

func shapeRows(tensors []*tensor.Dense) [][]int {
	rows := make([][]int, len(tensors))
	for i, t := range tensors {
		rows[i] = cloneRow(t.Shape())
	}
	return rows
}
