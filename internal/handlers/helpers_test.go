package handlers

import "errors"

// errInternal stands in for unexpected store failures in handler tests.
var errInternal = errors.New("db error")
