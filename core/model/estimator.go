package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を行う
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer はモデルの決定係数（R²）を計算できるモデルのインターフェース
type Scorer interface {
	// Score はモデルの決定係数（R²）を計算する
	Score(X, y mat.Matrix) (float64, error)
}

// Optimizer はスパース回帰オプティマイザの基底契約です。
// 構築・fit・学習結果（スパース係数と反復履歴）の保持という外形を定義し、
// 具体的なアルゴリズムはコンポジションで実装されます。
type Optimizer interface {
	Fitter

	// Coef は正則化されたスパース係数 (n_features × n_targets) を返す
	Coef() mat.Matrix

	// History は反復ごとのスパース係数スナップショットを返す
	History() []mat.Matrix

	// NIter は実行された反復回数を返す
	NIter() int
}
