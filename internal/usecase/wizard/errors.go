package wizard

import (
	"errors"
	"fmt"
)

var (
	ErrNoActiveSession      = errors.New("no active wizard session")
	ErrDuplicateDestination = errors.New("destination already added")
	ErrDestinationIndex     = errors.New("destination index out of range")
	ErrStopIndex            = errors.New("stop index out of range")
)

// PartialFanoutError reports a fan-out insert loop that failed partway.
// Records created before the failure stay in place; the caller must tell the
// user how many succeeded versus how many were requested.
type PartialFanoutError struct {
	Created []CreatedFreight
	Failed  Destination
	Total   int
	Err     error
}

func (e *PartialFanoutError) Error() string {
	return fmt.Sprintf("created %d of %d freight records; insert for %s/%s failed: %v",
		len(e.Created), e.Total, e.Failed.City, e.Failed.State, e.Err)
}

func (e *PartialFanoutError) Unwrap() error {
	return e.Err
}
