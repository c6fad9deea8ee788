package dynamo

import "errors"

var (
	// ErrInvalidState indicates a state vector with NaN or Inf entries.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")
)

// Validate checks x against the dimension of dyn and for non-finite values.
func Validate(dyn System, x State) error {
	if len(x) != dyn.StateDim() {
		return ErrDimensionMismatch
	}
	if !x.IsValid() {
		return ErrInvalidState
	}
	return nil
}
