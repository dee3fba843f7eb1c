package apperr

import "errors"

// Invalid is returned when the input fails domain validation.
var Invalid = errors.New("invalid input")

// NotFound indicates that the requested resource does not exist.
var NotFound = errors.New("not found")

// AlreadyClaimed indicates a claim on a donation that is already bound
// to a responder (HTTP 409).
var AlreadyClaimed = errors.New("already claimed")

// EmptyPool indicates that no responders are available to score.
var EmptyPool = errors.New("responder pool is empty")
