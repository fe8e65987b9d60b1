package engine

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Validation errors returned by ValidateEntry. Compare with errors.Is().
var (
	// ErrUnknownScope indicates the entry's scope is not scope1/2/3.
	ErrUnknownScope = constError("unknown emission scope")

	// ErrNoActivityData indicates a missing or zero activity quantity.
	ErrNoActivityData = constError("activity data is required and must be greater than zero")

	// ErrNegativeActivityData indicates a negative activity quantity.
	ErrNegativeActivityData = constError("activity data cannot be negative")

	// ErrMissingFactor indicates the entry has no captured emission factor.
	ErrMissingFactor = constError("emission factor is required")

	// ErrNonFiniteNumber indicates a NaN or infinite numeric field.
	ErrNonFiniteNumber = constError("numeric value must be finite")
)
