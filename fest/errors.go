package fest

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by Scatter matches exactly one of
// them under errors.Is.
var (
	// ErrValidation reports input that cannot be scattered. Raised before any mutation.
	ErrValidation = errors.New("invalid assignment input")
	// ErrInvariant reports a caller breaking a Circuit contract.
	ErrInvariant = errors.New("invariant violation")
	// ErrScheduling reports that the engine could not place every juggler.
	ErrScheduling = errors.New("scheduling failure")
)

var (
	ErrNoCircuits   = fmt.Errorf("%w: no circuits provided, cannot scatter jugglers", ErrValidation)
	ErrNotDivisible = fmt.Errorf("%w: number of jugglers not divisible by number of circuits", ErrValidation)
	ErrCircuitFull  = fmt.Errorf("%w: cannot insert juggler, circuit is full", ErrInvariant)
	ErrScattering   = fmt.Errorf("%w: juggler left unplaced while scattering remaining jugglers", ErrScheduling)
	ErrChainTooLong = fmt.Errorf("%w: displacement chain exceeded its bound", ErrScheduling)
)
