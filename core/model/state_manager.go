// Package model provides state management for machine learning models.
package model

import "fmt"

// StateManager manages the fitted state of a model.
// It replaces the base-estimator embedding pattern with composition.
type StateManager struct {
	fitted bool

	// Dimensions seen during fitting
	nFeatures int
	nSamples  int
	nTargets  int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager) IsFitted() bool {
	return s.fitted
}

// SetFitted marks the model as fitted.
func (s *StateManager) SetFitted() {
	s.fitted = true
}

// Reset resets the fitted state.
func (s *StateManager) Reset() {
	s.fitted = false
	s.nFeatures = 0
	s.nSamples = 0
	s.nTargets = 0
}

// SetDimensions sets the data dimensions seen during fitting.
func (s *StateManager) SetDimensions(nSamples, nFeatures, nTargets int) {
	s.nSamples = nSamples
	s.nFeatures = nFeatures
	s.nTargets = nTargets
}

// GetDimensions returns the data dimensions seen during fitting.
func (s *StateManager) GetDimensions() (nSamples, nFeatures, nTargets int) {
	return s.nSamples, s.nFeatures, s.nTargets
}

// RequireFitted returns an error if the model has not been fitted.
func (s *StateManager) RequireFitted() error {
	if !s.IsFitted() {
		return fmt.Errorf("model has not been fitted yet. Call Fit() first")
	}
	return nil
}
