package optimizers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/cuihantao/pysindy/pkg/errors"
)

func TestProxL0(t *testing.T) {
	prox, err := GetProx("l0")
	require.NoError(t, err)

	t.Run("HardThresholding", func(t *testing.T) {
		testCases := []struct {
			value     float64
			threshold float64
			expected  float64
		}{
			{value: 2.0, threshold: 0.5, expected: 2.0},
			{value: -2.0, threshold: 0.5, expected: -2.0},
			{value: 0.3, threshold: 0.5, expected: 0.0},
			{value: -0.3, threshold: 0.5, expected: 0.0},
			{value: 0.0, threshold: 0.5, expected: 0.0},
		}

		for _, tc := range testCases {
			got := prox(tc.value, tc.threshold)
			assert.Equal(t, tc.expected, got,
				"l0 mismatch for value=%.2f, threshold=%.2f", tc.value, tc.threshold)
		}
	})

	t.Run("BoundaryKeepsValue", func(t *testing.T) {
		// |x| == threshold breaks the tie toward keeping the value
		assert.Equal(t, 0.5, prox(0.5, 0.5))
		assert.Equal(t, -0.5, prox(-0.5, 0.5))
	})

	t.Run("ZeroThresholdKeepsEverything", func(t *testing.T) {
		for _, v := range []float64{-3, -0.001, 0, 0.001, 3} {
			assert.Equal(t, v, prox(v, 0))
		}
	})
}

func TestProxL1(t *testing.T) {
	prox, err := GetProx("l1")
	require.NoError(t, err)

	t.Run("SoftThresholding", func(t *testing.T) {
		testCases := []struct {
			value     float64
			threshold float64
			expected  float64
		}{
			{value: 2.0, threshold: 0.5, expected: 1.5},
			{value: -2.0, threshold: 0.5, expected: -1.5},
			{value: 0.3, threshold: 0.5, expected: 0.0},
			{value: -0.3, threshold: 0.5, expected: 0.0},
			{value: 0.5, threshold: 0.5, expected: 0.0},
		}

		for _, tc := range testCases {
			got := prox(tc.value, tc.threshold)
			assert.InDelta(t, tc.expected, got, 1e-15,
				"l1 mismatch for value=%.2f, threshold=%.2f", tc.value, tc.threshold)
		}
	})

	t.Run("MagnitudeAndSignLaw", func(t *testing.T) {
		threshold := 0.7
		for _, v := range []float64{-5, -1.2, -0.7, -0.1, 0, 0.1, 0.7, 1.2, 5} {
			out := prox(v, threshold)

			wantMag := math.Max(math.Abs(v)-threshold, 0)
			assert.InDelta(t, wantMag, math.Abs(out), 1e-15)

			if out != 0 {
				assert.Equal(t, math.Signbit(v), math.Signbit(out),
					"sign flipped for value %.2f", v)
			}
		}
	})
}

func TestProxCAD(t *testing.T) {
	prox, err := GetProx("cad")
	require.NoError(t, err)

	threshold := 0.5
	upper := cadUpperMultiple * threshold

	t.Run("Regions", func(t *testing.T) {
		// Below the threshold: exact zero
		assert.Equal(t, 0.0, prox(0.3, threshold))
		assert.Equal(t, 0.0, prox(-0.3, threshold))

		// Above the upper boundary: identity
		assert.Equal(t, 4.0, prox(4.0, threshold))
		assert.Equal(t, -4.0, prox(-4.0, threshold))

		// In the ramp: between soft and hard thresholding
		mid := prox(1.5, threshold)
		assert.Greater(t, mid, proxL1(1.5, threshold))
		assert.Less(t, mid, 1.5)
	})

	t.Run("ContinuousAtBothBoundaries", func(t *testing.T) {
		const eps = 1e-9
		assert.InDelta(t, prox(threshold-eps, threshold), prox(threshold+eps, threshold), 1e-7)
		assert.InDelta(t, prox(upper-eps, threshold), prox(upper+eps, threshold), 1e-7)

		// Exact boundary values
		assert.InDelta(t, 0.0, prox(threshold, threshold), 1e-15)
		assert.InDelta(t, upper, prox(upper, threshold), 1e-12)
	})

	t.Run("MonotonicallyNonDecreasing", func(t *testing.T) {
		prev := math.Inf(-1)
		for x := 0.0; x <= 2*upper; x += 0.001 {
			out := prox(x, threshold)
			assert.GreaterOrEqual(t, out+1e-12, prev,
				"cad decreased at x=%.3f", x)
			prev = out
		}
	})

	t.Run("ZeroThresholdDegeneratesToIdentity", func(t *testing.T) {
		for _, v := range []float64{-2, -0.1, 0, 0.1, 2} {
			assert.Equal(t, v, prox(v, 0))
		}
	})
}

func TestGetProxUnknownName(t *testing.T) {
	prox, err := GetProx("unknown")
	assert.Nil(t, prox)
	require.Error(t, err)

	var valErr *errors.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "thresholder", valErr.ParamName)
}

func TestThresholders(t *testing.T) {
	assert.Equal(t, []string{"cad", "l0", "l1"}, Thresholders())
}

func TestApplyProx(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{
		2.0, 0.3, -0.8,
		-0.1, 1.0, 0.5,
	})

	got := applyProx(src, proxL0, 0.5)

	want := mat.NewDense(2, 3, []float64{
		2.0, 0.0, -0.8,
		0.0, 1.0, 0.5,
	})
	assert.True(t, mat.Equal(want, got), "applyProx result mismatch:\ngot:\n%v",
		mat.Formatted(got))

	// The source matrix is untouched
	assert.Equal(t, 0.3, src.At(0, 1))
}
