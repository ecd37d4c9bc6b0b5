package optimizers

import (
	"github.com/cuihantao/pysindy/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// choleskySolver caches the Cholesky factorization of the regularized
// normal-equations matrix M = XᵀX + I/ν. The factorization is computed once
// per fit and reused for every right-hand side, which makes the per-iteration
// full-coefficient update a cheap triangular solve. A cached factorization is
// only valid for the X and ν it was built from.
type choleskySolver struct {
	chol mat.Cholesky
	size int
}

// newCholeskySolver builds M for the given design matrix and relaxation
// parameter and factorizes it. M is symmetric positive definite by
// construction whenever ν > 0, so a factorization failure indicates
// pathological input and is returned as a FactorizationError.
func newCholeskySolver(op string, x mat.Matrix, nu float64) (*choleskySolver, error) {
	_, nFeatures := x.Dims()

	var gram mat.SymDense
	gram.SymOuterK(1, x.T())
	for i := 0; i < nFeatures; i++ {
		gram.SetSym(i, i, gram.At(i, i)+1/nu)
	}

	s := &choleskySolver{size: nFeatures}
	if ok := s.chol.Factorize(&gram); !ok {
		return nil, errors.NewFactorizationError(op, nFeatures, 0)
	}

	return s, nil
}

// Solve returns M⁻¹·rhs using the cached factorization. It may be called
// repeatedly with different right-hand sides without refactorizing.
func (s *choleskySolver) Solve(rhs mat.Matrix) (*mat.Dense, error) {
	var out mat.Dense
	if err := s.chol.SolveTo(&out, rhs); err != nil {
		return nil, errors.Wrap(err, "pysindy: cached Cholesky solve failed")
	}
	return &out, nil
}
