// Package metrics は回帰モデルの評価指標を提供します。
package metrics

import (
	"math"

	"github.com/cuihantao/pysindy/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MSE は平均二乗誤差（Mean Squared Error）を計算する。
// 多ターゲットの場合は全要素で平均する。
func MSE(yTrue, yPred mat.Matrix) (float64, error) {
	r, c := yTrue.Dims()
	rp, cp := yPred.Dims()

	if r == 0 || c == 0 {
		return 0, errors.NewValueError("MSE", "empty matrix")
	}
	if rp != r {
		return 0, errors.NewDimensionError("MSE", r, rp, 0)
	}
	if cp != c {
		return 0, errors.NewDimensionError("MSE", c, cp, 1)
	}

	// MSE = (1/(n*t)) * ΣΣ(yTrue - yPred)²
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			diff := yTrue.At(i, j) - yPred.At(i, j)
			sum += diff * diff
		}
	}

	return sum / float64(r*c), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred mat.Matrix) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// R2Score は決定係数（R²）を計算する。
// 多ターゲットの場合はターゲットごとのR²を一様平均する（scikit-learnの
// uniform_averageと同じ挙動）。
func R2Score(yTrue, yPred mat.Matrix) (float64, error) {
	r, c := yTrue.Dims()
	rp, cp := yPred.Dims()

	if r == 0 || c == 0 {
		return 0, errors.NewValueError("R2Score", "empty matrix")
	}
	if rp != r {
		return 0, errors.NewDimensionError("R2Score", r, rp, 0)
	}
	if cp != c {
		return 0, errors.NewDimensionError("R2Score", c, cp, 1)
	}

	var total float64
	for j := 0; j < c; j++ {
		// ターゲットjの平均
		var yMean float64
		for i := 0; i < r; i++ {
			yMean += yTrue.At(i, j)
		}
		yMean /= float64(r)

		// 全変動（TSS）と残差変動（RSS）
		var tss, rss float64
		for i := 0; i < r; i++ {
			yTrueVal := yTrue.At(i, j)
			yPredVal := yPred.At(i, j)

			tss += (yTrueVal - yMean) * (yTrueVal - yMean)
			rss += (yTrueVal - yPredVal) * (yTrueVal - yPredVal)
		}

		// 全変動が0の場合（すべてのyTrueが同じ値）
		if tss == 0 {
			return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue column %d)", j)
		}

		total += 1 - rss/tss
	}

	return total / float64(c), nil
}
