package domain

import "errors"

// Engine error taxonomy. Callers classify failures with errors.Is; the
// engine wraps these sentinels with context but never logs or retries.
var (
	// ErrInvalidInput indicates a malformed computation input, such as a
	// negative gross income or a negative deduction amount.
	ErrInvalidInput = errors.New("invalid tax input")

	// ErrUnsupportedFiscalYear indicates that no rule table is registered
	// for the requested fiscal year.
	ErrUnsupportedFiscalYear = errors.New("unsupported fiscal year")

	// ErrConfiguration indicates a malformed rule table detected at
	// registration time (overlapping or non-monotonic slabs, invalid
	// rates, negative caps). Requests never trigger it.
	ErrConfiguration = errors.New("invalid rule table configuration")
)
