package service

import "errors"

// ErrValidation marks payload or parameter constraint failures. Handlers
// translate it to 422; the wrapped message is caller-facing.
var ErrValidation = errors.New("validation failed")
