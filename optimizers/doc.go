// Package optimizers provides sparse regression optimizers for identifying
// parsimonious linear models.
//
// The central estimator is SR3 (sparse relaxed regularized regression),
// which minimizes
//
//	0.5*||y - Xw||²₂ + λ*R(v) + (0.5/ν)*||w - v||²₂
//
// by alternating an unregularized least-squares update of the full
// coefficient w with a proximal (thresholding) update of the sparse
// coefficient v. R is a regularization function selected by name from a
// closed set of proximal operators ("l0", "l1", "cad"), and ν controls
// how tightly w and v are coupled.
//
// The regularized normal-equations matrix XᵀX + I/ν is symmetric positive
// definite for any ν > 0, so it is Cholesky-factorized once per fit and the
// factorization is reused for every iteration's solve.
package optimizers
