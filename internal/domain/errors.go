package domain

import "errors"

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. a required field is blank after trimming).
// Nothing is created or persisted when it is returned.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
