package scenario

import "errors"

var (
	// ErrInvalidScenario indicates a scenario document or value that cannot be run.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")
)
