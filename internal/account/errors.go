package account

import "fmt"

// ValidationError reports missing or malformed request input.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// ConflictError reports a registration against an already-taken phone.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string { return e.Message }

// AuthError reports failed credential verification. The same message is
// used for a wrong PIN and an unknown phone so the response leaks no
// information about which field was wrong.
type AuthError struct {
	Message string
}

func (e AuthError) Error() string { return e.Message }

// NotFoundError reports a session phone with no matching record.
type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string { return e.Message }

// PolicyError reports a business-rule rejection, currently only the
// first-transfer minimum.
type PolicyError struct {
	Message        string
	RequiredAmount float64
}

func (e PolicyError) Error() string { return e.Message }

// InsufficientFundsError reports a transfer exceeding the sender's
// balance. It carries the current balance for client-side UX.
type InsufficientFundsError struct {
	CurrentBalance float64
	RequiredAmount float64
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("Insufficient funds! Your balance is %s", FormatNaira(e.CurrentBalance))
}
