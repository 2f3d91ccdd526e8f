package spotify

import (
	"errors"
	"fmt"
)

// ErrEnrichmentUnavailable is returned when the catalog cannot be used at all,
// as opposed to a single track failing to resolve.
var ErrEnrichmentUnavailable = errors.New("enrichment unavailable")

// errCallerDone marks a fetch abandoned because the request that asked for
// it was cancelled or ran out of time.
var errCallerDone = errors.New("caller context done")

// UnavailableError carries the cause of a catalog outage.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("enrichment unavailable: %v", e.Cause)
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrEnrichmentUnavailable
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
