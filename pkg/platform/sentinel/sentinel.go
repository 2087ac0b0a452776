package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: draft does not exist (never created, expired or discarded)
//   - ErrAlreadyInFlight: a submission for the same draft is still pending
//   - ErrUnavailable: the remote registration API could not be reached
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyInFlight = errors.New("already in flight")
	ErrUnavailable     = errors.New("unavailable")
)
