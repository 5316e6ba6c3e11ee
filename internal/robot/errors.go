package robot

import "errors"

var (
	ErrHostsNotFound            = errors.New("no hosts or host table rows not found")
	ErrExpirationLabelMalformed = errors.New("expiration days label does not match the expected pattern")
	ErrInterventionRequired     = errors.New("manual intervention required")
)
