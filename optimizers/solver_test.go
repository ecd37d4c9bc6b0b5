package optimizers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/cuihantao/pysindy/pkg/errors"
)

func TestCholeskySolverSolve(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
		2, 1,
	})
	nu := 2.0

	solver, err := newCholeskySolver("test", X, nu)
	require.NoError(t, err)

	// M = XᵀX + I/ν computed directly
	var m mat.Dense
	m.Mul(X.T(), X)
	for i := 0; i < 2; i++ {
		m.Set(i, i, m.At(i, i)+1/nu)
	}

	rhs := mat.NewDense(2, 1, []float64{3, -1})
	got, err := solver.Solve(rhs)
	require.NoError(t, err)

	// Check M * got == rhs
	var back mat.Dense
	back.Mul(&m, got)
	for i := 0; i < 2; i++ {
		assert.InDelta(t, rhs.At(i, 0), back.At(i, 0), 1e-10)
	}
}

func TestCholeskySolverReuse(t *testing.T) {
	// The cached factorization serves many right-hand sides, including
	// multi-column ones, without refactorizing.
	X := mat.NewDense(5, 3, []float64{
		1, 2, 0,
		0, 1, 1,
		3, 0, 1,
		1, 1, 1,
		2, 1, 0,
	})

	solver, err := newCholeskySolver("test", X, 1.0)
	require.NoError(t, err)

	var m mat.Dense
	m.Mul(X.T(), X)
	for i := 0; i < 3; i++ {
		m.Set(i, i, m.At(i, i)+1)
	}

	rhsList := []*mat.Dense{
		mat.NewDense(3, 1, []float64{1, 0, 0}),
		mat.NewDense(3, 1, []float64{0, -2, 5}),
		mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}),
	}

	for _, rhs := range rhsList {
		got, err := solver.Solve(rhs)
		require.NoError(t, err)

		var back mat.Dense
		back.Mul(&m, got)
		r, c := rhs.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				assert.InDelta(t, rhs.At(i, j), back.At(i, j), 1e-10)
			}
		}
	}
}

func TestCholeskySolverNotPositiveDefinite(t *testing.T) {
	// NaN entries make the Gram matrix numerically invalid; the
	// factorization must fail with a FactorizationError rather than
	// producing garbage.
	X := mat.NewDense(2, 2, []float64{
		math.NaN(), 0,
		0, 1,
	})

	solver, err := newCholeskySolver("test", X, 1.0)
	assert.Nil(t, solver)
	require.Error(t, err)

	var facErr *errors.FactorizationError
	require.True(t, errors.As(err, &facErr))
	assert.Equal(t, 2, facErr.Size)
}
