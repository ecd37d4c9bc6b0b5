package optimizers

import (
	"math"
	"sort"

	"github.com/cuihantao/pysindy/core/parallel"
	"github.com/cuihantao/pysindy/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Prox is an element-wise proximal operator. It maps a coefficient value to
// its shrunk replacement under the regularization strength given by
// threshold. Operators are pure functions and are broadcast independently
// over every entry of a coefficient matrix.
type Prox func(value, threshold float64) float64

// cadUpperMultiple fixes the upper boundary of the cad ramp at a multiple of
// the threshold: a = cadUpperMultiple * threshold.
const cadUpperMultiple = 5.0

// proxL0 is hard thresholding: values with |x| >= threshold are kept
// unchanged, everything else becomes exactly zero. The boundary keeps the
// value; this tie-break is observable and must not change.
func proxL0(x, threshold float64) float64 {
	if math.Abs(x) >= threshold {
		return x
	}
	return 0
}

// proxL1 is soft thresholding, the exact proximal operator of the L1
// penalty: sign(x) * max(|x| - threshold, 0).
func proxL1(x, threshold float64) float64 {
	shrunk := math.Abs(x) - threshold
	if shrunk <= 0 {
		return 0
	}
	return math.Copysign(shrunk, x)
}

// proxCAD is clipped absolute deviation: zero below the threshold, identity
// above a = 5*threshold, and a linear ramp in between chosen so the operator
// is continuous at both boundaries.
func proxCAD(x, threshold float64) float64 {
	upper := cadUpperMultiple * threshold
	ax := math.Abs(x)

	switch {
	case ax < threshold:
		return 0
	case ax > upper:
		return x
	default:
		if upper == threshold {
			// threshold == 0 degenerates the ramp; cad reduces to identity
			return x
		}
		return math.Copysign(upper*(ax-threshold)/(upper-threshold), x)
	}
}

// proxRegistry is the closed set of named proximal operators. Names are
// resolved eagerly at construction so an unknown thresholder fails before
// any fit starts.
var proxRegistry = map[string]Prox{
	"l0":  proxL0,
	"l1":  proxL1,
	"cad": proxCAD,
}

// GetProx resolves a thresholder name to its proximal operator.
// Unknown names return a ValidationError; there is no silent default.
func GetProx(name string) (Prox, error) {
	if prox, ok := proxRegistry[name]; ok {
		return prox, nil
	}
	return nil, errors.NewValidationError("thresholder",
		"unknown proximal operator, must be one of "+thresholderNames(), name)
}

// Thresholders returns the registered operator names in sorted order.
func Thresholders() []string {
	names := make([]string, 0, len(proxRegistry))
	for name := range proxRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func thresholderNames() string {
	quoted := ""
	for i, name := range Thresholders() {
		if i > 0 {
			quoted += ", "
		}
		quoted += "'" + name + "'"
	}
	return quoted
}

// proxParallelThreshold is the row count above which applyProx splits the
// element-wise work across cores. Coefficient matrices are usually small, so
// most fits stay sequential.
const proxParallelThreshold = 512

// applyProx returns prox applied entry-wise to src. The operator is pure and
// rows are processed over disjoint ranges, so the result is deterministic.
func applyProx(src *mat.Dense, prox Prox, threshold float64) *mat.Dense {
	r, c := src.Dims()
	dst := mat.NewDense(r, c, nil)

	parallel.ParallelizeWithThreshold(r, proxParallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				dst.Set(i, j, prox(src.At(i, j), threshold))
			}
		}
	})

	return dst
}
