package optimizers

import (
	"github.com/cuihantao/pysindy/core/model"
	"gonum.org/v1/gonum/mat"
)

// BaseOptimizer holds the state every sparse regression optimizer maintains:
// the regularized (sparse) coefficient, the auxiliary unregularized (full)
// coefficient, the append-only history of sparse-coefficient snapshots, and
// the iteration counter. Concrete optimizers embed it and drive the state
// through their own fitting loop.
type BaseOptimizer struct {
	state *model.StateManager

	coef_     *mat.Dense // regularized coefficient v, the reported model
	coefFull_ *mat.Dense // unregularized coefficient w
	history_  []*mat.Dense
	iters     int

	initialGuess *mat.Dense
}

func newBaseOptimizer() BaseOptimizer {
	return BaseOptimizer{state: model.NewStateManager()}
}

// Coef returns the sparse coefficient matrix (n_features × n_targets).
// This is the externally reported model. Returns nil before a fit.
func (b *BaseOptimizer) Coef() mat.Matrix {
	if b.coef_ == nil {
		return nil
	}
	return b.coef_
}

// CoefFull returns the unregularized coefficient matrix
// (n_features × n_targets) from the final iteration. Returns nil before a fit.
func (b *BaseOptimizer) CoefFull() mat.Matrix {
	if b.coefFull_ == nil {
		return nil
	}
	return b.coefFull_
}

// History returns the sparse-coefficient snapshot of every completed
// iteration, in order. The slice grows by exactly one entry per iteration
// and is never truncated.
func (b *BaseOptimizer) History() []mat.Matrix {
	out := make([]mat.Matrix, len(b.history_))
	for i, h := range b.history_ {
		out[i] = h
	}
	return out
}

// NIter returns the number of iterations performed by the last fit.
func (b *BaseOptimizer) NIter() int {
	return b.iters
}

// IsFitted returns whether the optimizer has completed a fit.
func (b *BaseOptimizer) IsFitted() bool {
	return b.state.IsFitted()
}

// SetInitialGuess stores a copy of guess as the starting value of the sparse
// coefficient for the next fit, typically an ordinary least-squares or ridge
// estimate computed by the caller.
func (b *BaseOptimizer) SetInitialGuess(guess mat.Matrix) {
	b.initialGuess = mat.DenseCopyOf(guess)
}

// appendHistory records a snapshot of the sparse coefficient. The stored
// matrix is owned by the history; callers must not mutate v afterwards.
func (b *BaseOptimizer) appendHistory(v *mat.Dense) {
	b.history_ = append(b.history_, v)
}

// resetFitState clears per-fit state so repeated fits with identical inputs
// produce identical results. The initial guess is kept.
func (b *BaseOptimizer) resetFitState() {
	b.coef_ = nil
	b.coefFull_ = nil
	b.history_ = nil
	b.iters = 0
	b.state.Reset()
}
