package apperr

import "errors"

// Invalid is returned when the input fails domain validation.
var Invalid = errors.New("invalid input")

// Conflict indicates a uniqueness or state conflict (HTTP 409).
var Conflict = errors.New("conflict")

// NotFound indicates that the requested resource does not exist.
var NotFound = errors.New("not found")

// DeliveryFailed marks a single notify attempt that did not reach the donor.
// Fanout records it per donor and continues with the rest of the batch.
var DeliveryFailed = errors.New("delivery failed")
