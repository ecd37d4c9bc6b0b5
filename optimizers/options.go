package optimizers

import "gonum.org/v1/gonum/mat"

// SR3Option is a function that configures SR3
type SR3Option func(*SR3)

// WithThreshold sets the strength of the regularization. For the l0 operator
// this is the exact hard-threshold cutoff, for l1 the shrinkage amount, and
// for cad the lower ramp boundary.
func WithThreshold(threshold float64) SR3Option {
	return func(s *SR3) {
		s.threshold = threshold
	}
}

// WithNu sets the level of relaxation. Decreasing ν encourages the full and
// sparse coefficients to be close, increasing ν lets them drift apart.
func WithNu(nu float64) SR3Option {
	return func(s *SR3) {
		s.nu = nu
	}
}

// WithTol sets the tolerance used for determining convergence.
func WithTol(tol float64) SR3Option {
	return func(s *SR3) {
		s.tol = tol
	}
}

// WithThresholder selects the regularization function by name.
// Registered names are "l0", "l1" and "cad".
func WithThresholder(name string) SR3Option {
	return func(s *SR3) {
		s.thresholder = name
	}
}

// WithMaxIter sets the maximum iterations of the optimization loop.
func WithMaxIter(maxIter int) SR3Option {
	return func(s *SR3) {
		s.maxIter = maxIter
	}
}

// WithInitialGuess sets the starting value of the sparse coefficient,
// equivalent to calling SetInitialGuess before Fit.
func WithInitialGuess(guess mat.Matrix) SR3Option {
	return func(s *SR3) {
		s.SetInitialGuess(guess)
	}
}
