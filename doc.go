// Package pysindy provides sparse regression optimizers for system
// identification, ported from the pysindy optimizer core.
//
// The library follows a scikit-learn-like API on top of gonum matrices:
// estimators are constructed with functional options, trained with
// Fit(X, y), and expose their fitted state through accessors.
//
// # Quick Start
//
// Fit an SR3 optimizer to a regression problem:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/cuihantao/pysindy/optimizers"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 2, []float64{1, 0, 2, 1, 3, 0, 4, 1})
//	    y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})
//
//	    opt, err := optimizers.NewSR3(optimizers.WithThreshold(0.1))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := opt.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(mat.Formatted(opt.Coef()))
//	}
//
// # Error Handling
//
// Invalid hyperparameters surface as construction-time errors, numerical
// failures abort the fit, and non-convergence is reported through the
// non-fatal warning channel in pkg/errors while the fitted coefficients
// remain available.
package pysindy
