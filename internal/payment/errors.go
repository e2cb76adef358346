package payment

// ErrorKind classifies engine failures. Everything is recoverable: the
// session stays open and the operator corrects the input.
type ErrorKind string

const (
	// ErrValidation covers malformed or insufficient operator input and
	// business-rule breaches.
	ErrValidation ErrorKind = "validation"
	// ErrState is an operation attempted in the wrong lifecycle phase.
	ErrState ErrorKind = "state"
	// ErrPrecondition is external data not yet available (e.g. BNPL
	// providers still loading). Not a hard failure; retry once loaded.
	ErrPrecondition ErrorKind = "precondition"
)

// Error is a user-facing engine failure with a human-readable reason.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func validationErr(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}
