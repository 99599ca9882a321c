// SPDX-License-Identifier: MIT

package nmf

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnmf/matrix"
)

// Residual returns the Frobenius norm ‖V − W·H‖_F.
// It is pure: none of the operands are modified.
//
// Errors:
//   - ErrNilMatrix for a nil operand.
//   - ErrInvalidShape when V is not W.Rows()×H.Cols() or W.Cols() != H.Rows().
//   - ErrNumericInstability when the product or the norm is not finite.
//
// Complexity: O(m·k·n) for the product, O(m·n) for the norm.
func Residual(v, w, h matrix.Matrix) (float64, error) {
	for _, m := range []matrix.Matrix{v, w, h} {
		if matrix.ValidateNotNil(m) != nil {
			return 0, nmfErrorf(opResidual, ErrNilMatrix)
		}
	}
	if w.Cols() != h.Rows() || v.Rows() != w.Rows() || v.Cols() != h.Cols() {
		return 0, nmfErrorf(opResidual, fmt.Errorf("V %dx%d, W %dx%d, H %dx%d: %w",
			v.Rows(), v.Cols(), w.Rows(), w.Cols(), h.Rows(), h.Cols(), ErrInvalidShape))
	}

	wh, err := matrix.Mul(w, h)
	if err != nil {
		return 0, kernelErrorf(opResidual, err)
	}
	norm, err := matrix.FrobeniusDistance(v, wh)
	if err != nil {
		return 0, kernelErrorf(opResidual, err)
	}

	return norm, nil
}

// Trace is the residual history of one observation, one entry per iteration.
type Trace []float64

// Append adds the residual of the latest iteration.
func (t *Trace) Append(norm float64) { *t = append(*t, norm) }

// Last returns the most recent residual, or NaN for an empty trace.
func (t Trace) Last() float64 {
	if len(t) == 0 {
		return math.NaN()
	}
	return t[len(t)-1]
}

// IsNonIncreasing reports whether every residual is at most its predecessor
// plus relTol times the predecessor. Multiplicative updates guarantee this
// up to floating-point rounding.
func (t Trace) IsNonIncreasing(relTol float64) bool {
	for i := 1; i < len(t); i++ {
		if t[i] > t[i-1]+relTol*math.Abs(t[i-1]) {
			return false
		}
	}
	return true
}

// JointTrace is the residual history of a joint run: one Trace per observation.
type JointTrace []Trace

// newJointTrace allocates count traces with capacity for nIter residuals each.
func newJointTrace(count, nIter int) JointTrace {
	jt := make(JointTrace, count)
	for i := range jt {
		jt[i] = make(Trace, 0, nIter)
	}
	return jt
}

// Last returns the latest residual of every observation.
func (jt JointTrace) Last() []float64 {
	out := make([]float64, len(jt))
	for i, t := range jt {
		out[i] = t.Last()
	}
	return out
}

// Total combines the traces into the residual of the stacked problem:
// entry i is sqrt(Σ_j jt[j][i]²). The joint W update only guarantees that
// this combined residual does not increase; single traces may wobble.
func (jt JointTrace) Total() Trace {
	if len(jt) == 0 {
		return nil
	}
	out := make(Trace, len(jt[0]))
	for i := range out {
		var ss float64
		for _, t := range jt {
			ss += t[i] * t[i]
		}
		out[i] = math.Sqrt(ss)
	}
	return out
}

// Norms converts the traces into the plain n_matrices × n_iter layout.
func (jt JointTrace) Norms() [][]float64 {
	out := make([][]float64, len(jt))
	for i, t := range jt {
		out[i] = []float64(t)
	}
	return out
}
