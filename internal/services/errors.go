package services

import "errors"

// ErrForbidden means the caller is authenticated but is not the owner of
// the record being mutated.
var ErrForbidden = errors.New("forbidden")
