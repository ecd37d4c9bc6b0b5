package optimizers

import (
	"time"

	"github.com/cuihantao/pysindy/core/model"
	"github.com/cuihantao/pysindy/metrics"
	"github.com/cuihantao/pysindy/pkg/errors"
	"github.com/cuihantao/pysindy/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// SR3 implements sparse relaxed regularized regression.
//
// It attempts to minimize the objective function
//
//	0.5*||y - Xw||²₂ + λ*R(v) + (0.5/ν)*||w - v||²₂
//
// where R(v) is the regularization function selected by the thresholder.
// The reported model is the sparse coefficient v; the unregularized w is
// kept as an auxiliary result.
type SR3 struct {
	BaseOptimizer

	// Hyperparameters, validated at construction and never mutated
	threshold   float64
	nu          float64
	tol         float64
	thresholder string
	maxIter     int

	// prox is the operator resolved from thresholder, bound for the hot loop
	prox Prox

	// Fit outcome
	converged_ bool
	criterion_ float64
}

var _ model.Optimizer = (*SR3)(nil)
var _ model.Predictor = (*SR3)(nil)
var _ model.Scorer = (*SR3)(nil)

// NewSR3 creates a new SR3 optimizer.
//
// Defaults follow the reference hyperparameters: threshold 0.1, ν 1.0,
// tol 1e-5, thresholder "l0", max_iter 30. Invalid hyperparameters or an
// unknown thresholder name return a ValidationError and no usable instance.
func NewSR3(opts ...SR3Option) (*SR3, error) {
	s := &SR3{
		BaseOptimizer: newBaseOptimizer(),
		threshold:     0.1,
		nu:            1.0,
		tol:           1e-5,
		thresholder:   "l0",
		maxIter:       30,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.threshold < 0 {
		return nil, errors.NewValidationError("threshold", "cannot be negative", s.threshold)
	}
	if s.nu <= 0 {
		return nil, errors.NewValidationError("nu", "must be positive", s.nu)
	}
	if s.tol <= 0 {
		return nil, errors.NewValidationError("tol", "must be positive", s.tol)
	}
	if s.maxIter <= 0 {
		return nil, errors.NewValidationError("max_iter", "must be positive", s.maxIter)
	}

	prox, err := GetProx(s.thresholder)
	if err != nil {
		return nil, err
	}
	s.prox = prox

	return s, nil
}

// Converged reports whether the last fit's convergence criterion dropped
// below tol within the iteration budget. A false value is diagnostic only;
// the fitted coefficients are still valid.
func (s *SR3) Converged() bool {
	return s.converged_
}

// Criterion returns the convergence criterion of the last completed
// iteration: the squared Frobenius norm of the difference between the final
// two sparse-coefficient snapshots.
func (s *SR3) Criterion() float64 {
	return s.criterion_
}

// Fit runs the SR3 alternating loop on the design matrix X
// (n_samples × n_features) and response Y (n_samples × n_targets; a vector
// is treated as a single target).
//
// The sparse coefficient starts from the initial guess supplied via
// SetInitialGuess or WithInitialGuess. If none was supplied, the ordinary
// least-squares solution is used. Each iteration solves the relaxed
// least-squares problem for the full coefficient against the cached
// factorization of XᵀX + I/ν, then thresholds it element-wise into the new
// sparse coefficient.
//
// Reaching max_iter without convergence is not an error: a
// ConvergenceWarning is emitted through errors.Warn and the last computed
// coefficient pair is kept.
func (s *SR3) Fit(X, Y mat.Matrix) error {
	start := time.Now()

	nSamples, nFeatures := X.Dims()
	yRows, nTargets := Y.Dims()

	if nSamples == 0 || nFeatures == 0 {
		return errors.NewModelError("SR3.Fit", "empty data", errors.ErrEmptyData)
	}
	if yRows != nSamples {
		return errors.NewDimensionError("SR3.Fit", nSamples, yRows, 0)
	}

	logger := log.GetLoggerWithName("optimizers.sr3")
	logger.Info("Fitting SR3",
		log.OperationKey, log.OperationFit,
		log.ModelNameKey, "SR3",
		log.SamplesKey, nSamples,
		log.FeaturesKey, nFeatures,
		log.TargetsKey, nTargets,
		log.ThresholdKey, s.threshold,
		log.NuKey, s.nu,
		log.TolKey, s.tol,
		log.ThresholderKey, s.thresholder,
		log.MaxIterKey, s.maxIter,
	)

	s.resetFitState()
	s.converged_ = false
	s.criterion_ = 0

	y := mat.DenseCopyOf(Y)

	coefSparse, err := s.initialCoef(X, y, nFeatures, nTargets)
	if err != nil {
		return err
	}

	// Precompute for the upcoming least-squares solves. The factorization
	// depends only on X and ν, both fixed for the whole fit.
	solver, err := newCholeskySolver("SR3.Fit", X, s.nu)
	if err != nil {
		return err
	}
	var xTy mat.Dense
	xTy.Mul(X.T(), y)

	var coefFull *mat.Dense
	for iter := 0; iter < s.maxIter; iter++ {
		coefFull, err = s.updateFullCoef(solver, &xTy, coefSparse)
		if err != nil {
			return err
		}

		coefSparse = s.updateSparseCoef(coefFull)

		s.criterion_ = s.convergenceCriterion()
		logger.Debug("SR3 iteration",
			log.IterationKey, s.iters,
			log.CriterionKey, s.criterion_,
		)
		if s.criterion_ < s.tol {
			// Could not (further) select important features
			s.converged_ = true
			break
		}
	}

	if !s.converged_ {
		warning := errors.NewConvergenceWarning("SR3", s.maxIter, "")
		errors.Warn(warning)
		logger.Warn("SR3 did not converge",
			log.IterationsKey, s.iters,
			log.CriterionKey, s.criterion_,
			log.TolKey, s.tol,
		)
	}

	s.coef_ = coefSparse
	s.coefFull_ = coefFull
	s.state.SetDimensions(nSamples, nFeatures, nTargets)
	s.state.SetFitted()

	logger.Info("SR3 fit complete",
		log.IterationsKey, s.iters,
		log.ConvergedKey, s.converged_,
		log.CriterionKey, s.criterion_,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	return nil
}

// initialCoef returns the starting sparse coefficient: the caller-supplied
// initial guess when present, the ordinary least-squares solution otherwise.
func (s *SR3) initialCoef(X mat.Matrix, y *mat.Dense, nFeatures, nTargets int) (*mat.Dense, error) {
	if s.initialGuess != nil {
		gr, gc := s.initialGuess.Dims()
		if gr != nFeatures {
			return nil, errors.NewDimensionError("SR3.Fit initial guess", nFeatures, gr, 0)
		}
		if gc != nTargets {
			return nil, errors.NewDimensionError("SR3.Fit initial guess", nTargets, gc, 1)
		}
		return mat.DenseCopyOf(s.initialGuess), nil
	}

	var ols mat.Dense
	if err := ols.Solve(X, y); err != nil {
		return nil, errors.NewModelError("SR3.Fit", "least-squares initial guess failed",
			errors.Wrap(err, errors.ErrSingularMatrix.Error()))
	}
	return &ols, nil
}

// updateFullCoef computes the unregularized coefficient
// w ← M⁻¹(XᵀY + v/ν), the exact minimizer of the least-squares-plus-
// relaxation term for fixed v.
func (s *SR3) updateFullCoef(solver *choleskySolver, xTy mat.Matrix, coefSparse *mat.Dense) (*mat.Dense, error) {
	var rhs mat.Dense
	rhs.Scale(1/s.nu, coefSparse)
	rhs.Add(&rhs, xTy)

	coefFull, err := solver.Solve(&rhs)
	if err != nil {
		return nil, err
	}

	r, c := coefFull.Dims()
	if err := errors.CheckMatrix("full_coefficient_update", coefFull, r, c, s.iters); err != nil {
		return nil, err
	}

	s.iters++
	return coefFull, nil
}

// updateSparseCoef thresholds the full coefficient element-wise and records
// the snapshot in the history.
func (s *SR3) updateSparseCoef(coefFull *mat.Dense) *mat.Dense {
	coefSparse := applyProx(coefFull, s.prox, s.threshold)
	s.appendHistory(coefSparse)
	return coefSparse
}

// convergenceCriterion is the squared Frobenius norm of the difference
// between the most recent two history entries, summed over every entry of
// the multi-target coefficient matrix. With a single entry the comparison is
// against the all-zero matrix.
func (s *SR3) convergenceCriterion() float64 {
	n := len(s.history_)
	thisCoef := s.history_[n-1]

	r, c := thisCoef.Dims()
	var lastAt func(i, j int) float64
	if n > 1 {
		lastAt = s.history_[n-2].At
	} else {
		lastAt = func(i, j int) float64 { return 0 }
	}

	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			diff := thisCoef.At(i, j) - lastAt(i, j)
			sum += diff * diff
		}
	}
	return sum
}

// Predict returns X multiplied by the fitted sparse coefficient.
func (s *SR3) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("SR3", "Predict")
	}

	_, nFeatures := X.Dims()
	_, fitFeatures, _ := s.state.GetDimensions()
	if nFeatures != fitFeatures {
		return nil, errors.NewDimensionError("SR3.Predict", fitFeatures, nFeatures, 1)
	}

	var y mat.Dense
	y.Mul(X, s.coef_)
	return &y, nil
}

// Score computes the coefficient of determination R² of the prediction,
// averaged uniformly over targets.
func (s *SR3) Score(X, y mat.Matrix) (float64, error) {
	if !s.IsFitted() {
		return 0, errors.NewNotFittedError("SR3", "Score")
	}

	yPred, err := s.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(y, yPred)
}
