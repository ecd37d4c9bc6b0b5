// Package log defines standard attribute keys for optimizer operations.
//
// Using these keys consistently enables structured log analysis and filtering
// across all fitting and evaluation operations. Keys follow a hierarchical
// naming convention (e.g., "model.name", "data.samples").

package log

// Model and Operation Context
// These attributes identify the model type, instance, and operation being performed.
const (
	// ModelNameKey identifies the type of optimizer or model.
	// Examples: "SR3", "STLSQ"
	ModelNameKey = "model.name"

	// EstimatorIDKey provides a unique identifier for a specific model instance.
	EstimatorIDKey = "estimator.id"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "optimizers", "metrics"
	ComponentKey = "ml.component"
)

// Data Shape and Characteristics
// These attributes describe the structure of data being processed.
const (
	// SamplesKey indicates the number of samples (rows) in the design matrix.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the design matrix.
	FeaturesKey = "data.features"

	// TargetsKey indicates the number of target variables.
	// 1 for single-target problems, >1 for multi-target problems.
	TargetsKey = "data.targets"
)

// Training Progress
// These attributes capture iterative optimization progress and outcomes.
const (
	// IterationKey records the current iteration number during iterative processes.
	IterationKey = "training.iteration"

	// IterationsKey records the total number of iterations performed by a fit.
	IterationsKey = "training.iterations"

	// CriterionKey records the value of the convergence criterion.
	CriterionKey = "training.criterion"

	// ConvergedKey records whether the optimization loop converged within
	// its iteration budget.
	ConvergedKey = "training.converged"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// R2ScoreKey records R² coefficient of determination for regression.
	R2ScoreKey = "metrics.r2_score"
)

// Hyperparameters
// These attributes capture optimizer configuration for reproducibility.
const (
	// ThresholdKey records the regularization threshold.
	ThresholdKey = "hyperparams.threshold"

	// NuKey records the relaxation parameter coupling the full and sparse
	// coefficients.
	NuKey = "hyperparams.nu"

	// TolKey records the convergence tolerance.
	TolKey = "hyperparams.tol"

	// ThresholderKey records the name of the proximal operator in use.
	ThresholderKey = "hyperparams.thresholder"

	// MaxIterKey records the iteration budget.
	MaxIterKey = "hyperparams.max_iter"
)

// Error and Warning Context
const (
	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ValidationError", "FactorizationError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging handler.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute value constants for common operations.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
)
